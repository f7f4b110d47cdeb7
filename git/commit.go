package git

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// DefaultNoreplyDomain is the domain GitHub uses for private commit emails.
const DefaultNoreplyDomain = "users.noreply.github.com"

const coAuthorKey = "Co-authored-by"

// scissorsLine marks the start of the diff git appends for "commit --verbose".
// Nothing below it is part of the message.
const scissorsLine = "# ------------------------ >8 ------------------------"

var (
	coAuthorPattern = regexp.MustCompile(`(?i)^co-authored-by:\s*(.*?)\s*<([^>]*)>\s*$`)
	trailerPattern  = regexp.MustCompile(`^[A-Za-z0-9-]+:\s`)
)

// CoAuthor is a collaborator credited on a commit.
type CoAuthor struct {
	Name  string
	Email string
}

// NoreplyCoAuthor credits a handle using its noreply address on domain.
// An empty domain means DefaultNoreplyDomain.
func NoreplyCoAuthor(handle, domain string) CoAuthor {
	if domain == "" {
		domain = DefaultNoreplyDomain
	}
	return CoAuthor{
		Name:  handle,
		Email: handle + "@" + domain,
	}
}

// Trailer formats the co-author as a commit trailer line.
func (a CoAuthor) Trailer() string {
	return fmt.Sprintf("%s: %s <%s>", coAuthorKey, a.Name, a.Email)
}

func (a CoAuthor) key() string {
	return strings.ToLower(a.Trailer())
}

// CommitMessage is a commit message split into subject, body and co-authors.
type CommitMessage struct {
	Subject   string     // Required: first line of the message
	Body      string     // Optional: everything between subject and trailers
	CoAuthors []CoAuthor // Optional: Co-authored-by trailers
}

// NewCommitMessage creates a commit message with the given subject.
func NewCommitMessage(subject string) *CommitMessage {
	return &CommitMessage{Subject: subject}
}

// WithBody adds a body to the commit message.
func (c *CommitMessage) WithBody(body string) *CommitMessage {
	c.Body = body
	return c
}

// WithCoAuthor adds a co-author unless an identical one is already present.
func (c *CommitMessage) WithCoAuthor(author CoAuthor) *CommitMessage {
	if !c.HasCoAuthor(author) {
		c.CoAuthors = append(c.CoAuthors, author)
	}
	return c
}

// WithCoAuthors adds multiple co-authors.
func (c *CommitMessage) WithCoAuthors(authors ...CoAuthor) *CommitMessage {
	for _, a := range authors {
		c.WithCoAuthor(a)
	}
	return c
}

// HasCoAuthor reports whether the message already credits author.
// Trailers are compared without regard to case.
func (c *CommitMessage) HasCoAuthor(author CoAuthor) bool {
	for _, existing := range c.CoAuthors {
		if existing.key() == author.key() {
			return true
		}
	}
	return false
}

// String formats the commit message: subject, body and trailers separated by
// blank lines.
func (c *CommitMessage) String() string {
	var b strings.Builder

	b.WriteString(c.Subject)

	if c.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(c.Body)
	}

	if len(c.CoAuthors) > 0 {
		b.WriteString("\n\n")
		for i, a := range c.CoAuthors {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(a.Trailer())
		}
	}

	return b.String()
}

// Validate checks if the commit message is valid.
func (c *CommitMessage) Validate() error {
	if strings.TrimSpace(c.Subject) == "" {
		return fmt.Errorf("commit subject is required")
	}
	if len(c.Subject) > 100 {
		return fmt.Errorf("commit subject too long (max 100 characters)")
	}
	return nil
}

// ParseCommitMessage splits a raw message, as git hands it to a commit-msg
// hook, into its parts. Comment lines starting with "#" are ignored and
// Co-authored-by trailers are collected wherever they appear.
func ParseCommitMessage(raw string) *CommitMessage {
	msg := &CommitMessage{}

	lines, _ := cutScissors(splitLines(raw))

	var body []string
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		if author, ok := parseCoAuthor(line); ok {
			msg.WithCoAuthor(author)
			continue
		}
		body = append(body, line)
	}

	text := strings.TrimSpace(strings.Join(body, "\n"))
	subject, rest, _ := strings.Cut(text, "\n")
	msg.Subject = strings.TrimSpace(subject)
	msg.Body = strings.TrimSpace(rest)

	return msg
}

// StripComments returns the message text git will keep: comment lines and
// the "commit --verbose" diff are removed.
//
// Only "#" is treated as the comment character. A repository that sets
// core.commentChar keeps its comment lines in the result.
func StripComments(raw string) string {
	lines, _ := cutScissors(splitLines(raw))

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(line, "#") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// AddCoAuthors appends a trailer for every author the raw message does not
// already credit. Trailers go after the message text and before git's
// trailing comment block. The message is returned unchanged when there is
// nothing to add.
func AddCoAuthors(raw string, authors []CoAuthor) string {
	existing := ParseCommitMessage(raw)

	var trailers []string
	for _, a := range authors {
		if existing.HasCoAuthor(a) {
			continue
		}
		existing.WithCoAuthor(a)
		trailers = append(trailers, a.Trailer())
	}
	if len(trailers) == 0 {
		return raw
	}

	lines, verbose := cutScissors(splitLines(raw))
	content, comments := splitTrailingComments(lines)
	content = trimTrailingBlank(content)
	comments = append(slices.Clip(comments), verbose...)

	var b strings.Builder
	if len(content) > 0 {
		b.WriteString(strings.Join(content, "\n"))
		if endsWithTrailerBlock(content) {
			b.WriteString("\n")
		} else {
			b.WriteString("\n\n")
		}
	}
	b.WriteString(strings.Join(trailers, "\n"))
	b.WriteString("\n")

	if len(comments) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(comments, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

func parseCoAuthor(line string) (CoAuthor, bool) {
	m := coAuthorPattern.FindStringSubmatch(line)
	if m == nil {
		return CoAuthor{}, false
	}
	return CoAuthor{Name: m[1], Email: m[2]}, true
}

// endsWithTrailerBlock reports whether the last paragraph, which must not be
// the subject, consists only of "Key: value" trailer lines.
func endsWithTrailerBlock(lines []string) bool {
	start := len(lines)
	for start > 0 && strings.TrimSpace(lines[start-1]) != "" {
		start--
	}
	if start == 0 || start == len(lines) {
		return false
	}
	for _, line := range lines[start:] {
		if !trailerPattern.MatchString(line) {
			return false
		}
	}
	return true
}

// splitLines splits on "\n", dropping carriage returns and the empty line
// after a final newline.
func splitLines(raw string) []string {
	raw = strings.TrimSuffix(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

func cutScissors(lines []string) (message, verbose []string) {
	for i, line := range lines {
		if line == scissorsLine {
			return lines[:i], lines[i:]
		}
	}
	return lines, nil
}

// splitTrailingComments separates the block of comment and blank lines at the
// end of a message from the text before it.
func splitTrailingComments(lines []string) (content, comments []string) {
	start := len(lines)
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if strings.HasPrefix(line, "#") {
			start = i
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		break
	}
	return lines[:start], lines[start:]
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
