package git

import (
	"testing"
)

func TestNoreplyCoAuthor(t *testing.T) {
	tests := []struct {
		handle string
		domain string
		want   string
	}{
		{"pooh", "", "Co-authored-by: pooh <pooh@users.noreply.github.com>"},
		{"Tigger", "example.com", "Co-authored-by: Tigger <Tigger@example.com>"},
	}
	for _, tt := range tests {
		t.Run(tt.handle, func(t *testing.T) {
			if got := NoreplyCoAuthor(tt.handle, tt.domain).Trailer(); got != tt.want {
				t.Errorf("Trailer() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommitMessage_String(t *testing.T) {
	msg := NewCommitMessage("Fix honey pot overflow").
		WithBody("The pot held more than it should.").
		WithCoAuthors(
			CoAuthor{Name: "Pooh Bear", Email: "pooh@example.com"},
			CoAuthor{Name: "Piglet", Email: "piglet@example.com"},
			CoAuthor{Name: "pooh bear", Email: "POOH@example.com"},
		)

	want := "Fix honey pot overflow\n\n" +
		"The pot held more than it should.\n\n" +
		"Co-authored-by: Pooh Bear <pooh@example.com>\n" +
		"Co-authored-by: Piglet <piglet@example.com>"

	if got := msg.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestCommitMessage_StringSubjectOnly(t *testing.T) {
	if got := NewCommitMessage("Add bounce").String(); got != "Add bounce" {
		t.Errorf("String() = %q, want %q", got, "Add bounce")
	}
}

func TestCommitMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr bool
	}{
		{"valid", "Add bounce", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", string(make([]byte, 101)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCommitMessage(tt.subject).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseCommitMessage(t *testing.T) {
	raw := "Fix honey pot overflow\n" +
		"\n" +
		"Pairing with @piglet.\n" +
		"\n" +
		"Co-authored-by: Piglet <piglet@example.com>\n" +
		"co-authored-by:Owl<owl@example.com>\n" +
		"# Please enter the commit message for your changes.\n"

	msg := ParseCommitMessage(raw)

	if msg.Subject != "Fix honey pot overflow" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.Body != "Pairing with @piglet." {
		t.Errorf("Body = %q", msg.Body)
	}
	if len(msg.CoAuthors) != 2 {
		t.Fatalf("CoAuthors = %v, want 2", msg.CoAuthors)
	}
	if msg.CoAuthors[1] != (CoAuthor{Name: "Owl", Email: "owl@example.com"}) {
		t.Errorf("CoAuthors[1] = %+v", msg.CoAuthors[1])
	}
}

func TestParseCommitMessage_IgnoresVerboseDiff(t *testing.T) {
	raw := "Add bounce\n" +
		scissorsLine + "\n" +
		"diff --git a/tigger.go b/tigger.go\n" +
		"+Co-authored-by: Roo <roo@example.com>\n"

	msg := ParseCommitMessage(raw)

	if msg.Subject != "Add bounce" || msg.Body != "" {
		t.Errorf("got subject %q body %q", msg.Subject, msg.Body)
	}
	if len(msg.CoAuthors) != 0 {
		t.Errorf("CoAuthors = %v, want none", msg.CoAuthors)
	}
}

func TestAddCoAuthors(t *testing.T) {
	pooh := NoreplyCoAuthor("pooh", "")
	piglet := NoreplyCoAuthor("piglet", "")

	tests := []struct {
		name    string
		raw     string
		authors []CoAuthor
		want    string
	}{
		{
			name:    "plain message",
			raw:     "Add honey\n\nPairing with @pooh and @piglet.\n",
			authors: []CoAuthor{pooh, piglet},
			want: "Add honey\n\nPairing with @pooh and @piglet.\n\n" +
				pooh.Trailer() + "\n" + piglet.Trailer() + "\n",
		},
		{
			name:    "no final newline",
			raw:     "Pairing with @pooh",
			authors: []CoAuthor{pooh},
			want:    "Pairing with @pooh\n\n" + pooh.Trailer() + "\n",
		},
		{
			name: "above the comment block",
			raw: "Pairing with @pooh\n\n" +
				"# Please enter the commit message for your changes.\n" +
				"#\n" +
				"# On branch main\n",
			authors: []CoAuthor{pooh},
			want: "Pairing with @pooh\n\n" + pooh.Trailer() + "\n\n" +
				"# Please enter the commit message for your changes.\n" +
				"#\n" +
				"# On branch main\n",
		},
		{
			name: "above the verbose diff",
			raw: "Pairing with @pooh\n" +
				"# Changes to be committed:\n" +
				scissorsLine + "\n" +
				"diff --git a/a b/a\n",
			authors: []CoAuthor{pooh},
			want: "Pairing with @pooh\n\n" + pooh.Trailer() + "\n\n" +
				"# Changes to be committed:\n" +
				scissorsLine + "\n" +
				"diff --git a/a b/a\n",
		},
		{
			name:    "joins an existing trailer block",
			raw:     "Pairing with @pooh, @piglet\n\n" + pooh.Trailer() + "\n",
			authors: []CoAuthor{pooh, piglet},
			want:    "Pairing with @pooh, @piglet\n\n" + pooh.Trailer() + "\n" + piglet.Trailer() + "\n",
		},
		{
			name:    "joins a signed-off-by block",
			raw:     "Add bounce\n\nSigned-off-by: Tigger <tigger@example.com>\n",
			authors: []CoAuthor{pooh},
			want:    "Add bounce\n\nSigned-off-by: Tigger <tigger@example.com>\n" + pooh.Trailer() + "\n",
		},
		{
			name:    "subject that looks like a trailer",
			raw:     "fix: bounce height\n",
			authors: []CoAuthor{pooh},
			want:    "fix: bounce height\n\n" + pooh.Trailer() + "\n",
		},
		{
			name:    "body paragraph that is not all trailers",
			raw:     "Add bounce\n\nNote: springs\nmore text\n",
			authors: []CoAuthor{pooh},
			want:    "Add bounce\n\nNote: springs\nmore text\n\n" + pooh.Trailer() + "\n",
		},
		{
			name:    "duplicate authors are added once",
			raw:     "Pairing with @piglet\n",
			authors: []CoAuthor{piglet, piglet},
			want:    "Pairing with @piglet\n\n" + piglet.Trailer() + "\n",
		},
		{
			name:    "windows line endings",
			raw:     "Pairing with @pooh\r\n",
			authors: []CoAuthor{pooh},
			want:    "Pairing with @pooh\n\n" + pooh.Trailer() + "\n",
		},
		{
			name:    "empty message",
			raw:     "",
			authors: []CoAuthor{pooh},
			want:    pooh.Trailer() + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddCoAuthors(tt.raw, tt.authors); got != tt.want {
				t.Errorf("AddCoAuthors() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestAddCoAuthors_NothingToAdd(t *testing.T) {
	pooh := NoreplyCoAuthor("pooh", "")
	raw := "Pairing with @pooh\r\n\r\n" + pooh.Trailer() + "\r\n# comment\r\n"

	if got := AddCoAuthors(raw, []CoAuthor{pooh}); got != raw {
		t.Errorf("AddCoAuthors() changed message to %q", got)
	}
	if got := AddCoAuthors(raw, nil); got != raw {
		t.Errorf("AddCoAuthors(nil) changed message to %q", got)
	}
}

func TestStripComments(t *testing.T) {
	raw := "Add bounce\r\n" +
		"\n" +
		"Pairing with @tigger.\n" +
		"# Working with @roo is in the template\n" +
		scissorsLine + "\n" +
		"+// pairing with @kanga\n"

	want := "Add bounce\n\nPairing with @tigger."
	if got := StripComments(raw); got != want {
		t.Errorf("StripComments() = %q, want %q", got, want)
	}
}
