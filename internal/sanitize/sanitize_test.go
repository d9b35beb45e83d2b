package sanitize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizer_FileName(t *testing.T) {
	s := Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "special chars stripped", in: "a/b*c.pdf", want: "abc.pdf"},
		{name: "spaces replaced", in: "my report v2.pdf", want: "my_report_v2.pdf"},
		{name: "newlines replaced", in: "a\r\nb.txt", want: "a__b.txt"},
		{name: "accents kept", in: "résumé.pdf", want: "résumé.pdf"},
		{name: "dashes kept", in: "a-b_c.tar.gz", want: "a-b_c.tar.gz"},
		{name: "too short", in: "/", want: "Sans nom"},
		{name: "empty", in: "", want: "Sans nom"},
		{name: "one char", in: "a", want: "Sans nom"},
		{
			name: "truncated",
			in:   strings.Repeat("x", 40),
			want: strings.Repeat("x", 32) + "...",
		},
		{name: "profanity masked", in: "merde.txt", want: "*****.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.FileName(tt.in))
		})
	}
}

func TestSanitizer_Nickname(t *testing.T) {
	s := Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Ana", want: "Ana"},
		{name: "apostrophe and space kept", in: "Jean d'Arc", want: "Jean d'Arc"},
		{name: "symbols stripped", in: "<b>Bob</b>", want: "bBobb"},
		{name: "trimmed", in: "  Eve  ", want: "Eve"},
		{name: "too short", in: "Al", want: "Anonyme"},
		{name: "only symbols", in: "!!!", want: "Anonyme"},
		{
			name: "25 characters truncated",
			in:   "abcdefghijklmnopqrstuvwxy",
			want: "abcdefghijklmnopqr...",
		},
		{name: "profanity case insensitive", in: "MeRdE man", want: "***** man"},
		{name: "longer word masked whole", in: "putain", want: "******"},
		{name: "accented profanity", in: "gros bâtard", want: "gros ******"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Nickname(tt.in))
		})
	}
}

func TestLoadPolicy(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		p, err := LoadPolicy("")
		require.NoError(t, err)
		assert.Equal(t, 18, p.Nickname.MaxLength)
		assert.Equal(t, 32, p.FileName.MaxLength)
		assert.Equal(t, "Anonyme", p.Nickname.Fallback)
		assert.Equal(t, "Sans nom", p.FileName.Fallback)
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		content := `
nickname:
  disallowed: "[^a-zA-Z]"
  maxLength: 5
  minLength: 1
  fallback: "Anonymous"
fileName:
  whitespace: "-"
  disallowed: "[^a-z.-]"
  maxLength: 10
  minLength: 1
  fallback: "untitled"
ellipsis: "~"
profanities: ["darn"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		p, err := LoadPolicy(path)
		require.NoError(t, err)
		s, err := New(p)
		require.NoError(t, err)

		assert.Equal(t, "Bobby~", s.Nickname("Bobby Tables"))
		assert.Equal(t, "****-it", s.FileName("darn it"))
		assert.Equal(t, "Anonymous", s.Nickname("123"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid policy", func(t *testing.T) {
		_, err := ParsePolicy([]byte("nickname:\n  maxLength: 0\n"))
		assert.Error(t, err)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		p, err := DefaultPolicy()
		require.NoError(t, err)
		p.Nickname.Disallowed = "[unterminated"
		_, err = New(p)
		assert.Error(t, err)
	})
}
