package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Word
		wantErr bool
	}{
		{"raise", "RAISE", false},
		{"RAISE", "RAISE", false},
		{" crank\n", "CRANK", false},
		{"MiXeD", "MIXED", false},
		{"rais", "", true},
		{"raises", "", true},
		{"rai5e", "", true},
		{"ra-se", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		w, err := Parse(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidWord, "Parse(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, w)
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	ws, err := ParseAll([]string{"tiger", "QUERY"})
	require.NoError(t, err)
	assert.Equal(t, []Word{"TIGER", "QUERY"}, ws)

	_, err = ParseAll([]string{"tiger", "nope1"})
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestContains(t *testing.T) {
	t.Parallel()

	w := MustParse("PANIC")
	assert.True(t, w.Contains('P'))
	assert.True(t, w.Contains('C'))
	assert.False(t, w.Contains('Z'))
}

func TestEmbeddedDictionary(t *testing.T) {
	t.Parallel()

	dict, err := Embedded()
	require.NoError(t, err)

	answers := dict.Answers()
	require.NotEmpty(t, answers)
	assert.Greater(t, len(dict.Allowed()), len(answers), "allowed pool should include extra guess words")

	// Every answer is a legal guess
	for _, w := range answers {
		assert.True(t, dict.IsAllowed(w), "answer %s should be allowed", w)
	}
	assert.True(t, dict.IsAllowed("RAISE"))
	assert.False(t, dict.IsAllowed("ZZZZZ"))
}

func TestLoadFromFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	answersPath := writeList(t, dir, "answers.txt", "# test list\ncrank\nquery\n\nsiege\n")
	allowedPath := writeList(t, dir, "allowed.txt", "soare\nroate\n")

	dict, err := Load(answersPath, allowedPath)
	require.NoError(t, err)

	assert.Equal(t, []Word{"CRANK", "QUERY", "SIEGE"}, dict.Answers())
	assert.True(t, dict.IsAllowed("SOARE"))
	assert.True(t, dict.IsAllowed("CRANK"))
	assert.False(t, dict.IsAllowed("RAISE"))
}

func TestLoadAllowedOnlyKeepsEmbeddedAnswers(t *testing.T) {
	t.Parallel()

	allowedPath := writeList(t, t.TempDir(), "allowed.txt", "soare\n")

	dict, err := Load("", allowedPath)
	require.NoError(t, err)

	embedded, err := Embedded()
	require.NoError(t, err)
	assert.Equal(t, embedded.Answers(), dict.Answers())
	assert.True(t, dict.IsAllowed("SOARE"))
}

func TestLoadRejectsBadLists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(writeList(t, dir, "short.txt", "cat\n"), "")
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = Load(writeList(t, dir, "empty.txt", "# nothing here\n"), "")
	assert.Error(t, err)

	_, err = Load("does-not-exist.txt", "")
	assert.Error(t, err)
}
