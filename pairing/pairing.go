package pairing

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// DefaultPhrases are the pairing phrases recognized when none are configured.
var DefaultPhrases = []string{
	"pairing with",
	"collaborating with",
	"working with",
}

const (
	handlePrefix = "@"

	// At most one of these is trimmed from the end of a handle.
	trailingPunctuation = ",;.!?"
)

var defaultExtractor = NewExtractor()

// Extract returns the handles named in message using DefaultPhrases.
func Extract(message string) []string {
	return defaultExtractor.Extract(message)
}

// Extractor finds collaborator handles in commit messages.
// An Extractor is immutable and safe for concurrent use.
type Extractor struct {
	phrases []string
	pattern *regexp.Regexp
}

// NewExtractor creates an extractor recognizing the given phrases.
// Blank and duplicate phrases are dropped; if nothing is left, DefaultPhrases
// are used. Phrases are matched literally and without regard to case.
func NewExtractor(phrases ...string) *Extractor {
	phrases = normalizePhrases(phrases)
	if len(phrases) == 0 {
		phrases = normalizePhrases(DefaultPhrases)
	}

	alternatives := lo.Map(phrases, func(p string, _ int) string {
		return regexp.QuoteMeta(p)
	})

	// phrase, optional colon, at least one space, then the clause up to the
	// next period or line break
	pattern := regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `):? +([^.\r\n]*)`)

	return &Extractor{
		phrases: phrases,
		pattern: pattern,
	}
}

// Phrases returns the phrases this extractor recognizes.
func (e *Extractor) Phrases() []string {
	return append([]string(nil), e.phrases...)
}

// Extract returns the handles named in every pairing clause of message, without
// the leading "@" and trailing punctuation. Each handle appears once, in the
// order it was first mentioned. The result is empty, never nil, when the
// message has no pairing clause.
func (e *Extractor) Extract(message string) []string {
	handles := []string{}
	seen := make(map[string]bool)

	for _, match := range e.pattern.FindAllStringSubmatch(message, -1) {
		for _, token := range strings.Fields(match[1]) {
			handle, ok := normalizeHandle(token)
			if !ok || seen[handle] {
				continue
			}
			seen[handle] = true
			handles = append(handles, handle)
		}
	}

	return handles
}

// normalizeHandle strips the "@" marker and one trailing punctuation mark.
// Tokens that are not handles, or are nothing but the marker and punctuation,
// report false.
func normalizeHandle(token string) (string, bool) {
	handle, ok := strings.CutPrefix(token, handlePrefix)
	if !ok {
		return "", false
	}

	if n := len(handle); n > 0 && strings.IndexByte(trailingPunctuation, handle[n-1]) >= 0 {
		handle = handle[:n-1]
	}

	return handle, handle != ""
}

// normalizePhrases collapses inner whitespace and drops blank or repeated
// phrases, keeping the first spelling of each.
func normalizePhrases(phrases []string) []string {
	cleaned := lo.FilterMap(phrases, func(p string, _ int) (string, bool) {
		p = strings.Join(strings.Fields(p), " ")
		return p, p != ""
	})
	return lo.UniqBy(cleaned, strings.ToLower)
}
