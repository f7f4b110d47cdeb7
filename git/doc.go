// Package git formats and edits commit messages.
//
// Core types:
//   - CommitMessage: Subject, body and Co-authored-by trailers of a message
//   - CoAuthor: A credited collaborator, rendered as a trailer line
//
// Example usage:
//
//	authors := []git.CoAuthor{git.NoreplyCoAuthor("pooh", "")}
//	updated := git.AddCoAuthors(raw, authors)
//
// AddCoAuthors understands the message file git passes to a commit-msg hook:
// trailers are placed above git's comment block and the "commit --verbose"
// diff, and authors already credited are not repeated.
package git
