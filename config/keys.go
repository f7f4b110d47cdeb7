package config

import (
	"strings"

	"github.com/randalmurphal/pairwith/git"
	"github.com/randalmurphal/pairwith/pairing"
)

// Configuration keys.
const (
	KeyPhrases       = "phrases"
	KeyNoreplyDomain = "noreply_domain"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
	KeyNoColor       = "no_color"

	// AliasPrefix prefixes the flattened key of every alias.
	AliasPrefix = "aliases."
)

// Application file locations.
const (
	AppName         = "pairwith"
	LocalConfigName = ".pairwith.yaml"
	EnvPrefix       = "PAIRWITH_"
)

// Defaults returns the built-in value of every known key.
func Defaults() map[string]string {
	return map[string]string{
		KeyPhrases:       strings.Join(pairing.DefaultPhrases, ","),
		KeyNoreplyDomain: git.DefaultNoreplyDomain,
		KeyLogLevel:      "info",
		KeyLogFormat:     "text",
	}
}

// DefaultResolverConfig returns the resolver settings pairwith runs with.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		EnvPrefix:       EnvPrefix,
		GlobalConfigDir: AppName,
		LocalConfigName: LocalConfigName,
		Defaults:        Defaults(),
	}
}

// DefaultSaveConfig returns the save settings matching DefaultResolverConfig.
func DefaultSaveConfig() SaveConfig {
	return SaveConfig{
		GlobalConfigDir: AppName,
		LocalConfigName: LocalConfigName,
	}
}
