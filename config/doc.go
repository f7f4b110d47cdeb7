// Package config resolves pairwith settings from layered YAML files and the
// environment.
//
// Precedence, highest first:
//  1. Command-line flags (via ResolveWithFlags)
//  2. Environment variables (PAIRWITH_LOG_LEVEL, PAIRWITH_PHRASES, ...)
//  3. Local config (.pairwith.yaml in the git root)
//  4. Global config ($XDG_CONFIG_HOME/pairwith/config.yaml)
//  5. Built-in defaults
//
// # File Format
//
//	phrases:
//	  - pairing with
//	  - mobbing with
//	noreply_domain: users.noreply.github.com
//	log_level: debug
//	aliases:
//	  hundred-acre: [pooh, piglet, eeyore]
//
// Nested maps flatten to dotted keys ("aliases.hundred-acre") and lists to
// comma-separated values, so every setting resolves to a single string with a
// Source recording where it came from.
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.DefaultResolverConfig())
//	cfg := resolver.Resolve()
//
//	ex := pairing.NewExtractor(cfg.Phrases()...)
//	handles := cfg.Aliases().Expand(ex.Extract(msg))
package config
