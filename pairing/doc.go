// Package pairing extracts collaborator handles from commit messages.
//
// A commit message names its collaborators in a clause introduced by a
// pairing phrase:
//
//	Fix the flaky login test. Pairing with @pooh, @tigger, and @piglet.
//	pairing with: @owl, @roo
//	Working with @eeyore!
//
// The clause runs from the phrase to the next period or line break. Words in
// the clause that start with "@" are handles; everything else ("and", stray
// text) is skipped.
//
// Core types:
//   - Extractor: Finds handles using a fixed set of pairing phrases
//   - Aliases: Expands alias names into the handles they stand for
//
// Example usage:
//
//	handles := pairing.Extract(msg) // ["pooh", "tigger", "piglet"]
//
//	ex := pairing.NewExtractor("mobbing with", "pairing with")
//	handles = ex.Extract(msg)
package pairing
