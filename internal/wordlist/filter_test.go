package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	assert.True(t, filter("hello"))
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", "Hello", ""} {
		assert.False(t, filter(word), "expected %q to be rejected", word)
	}
}

func TestFilterUnknownLang(t *testing.T) {
	filter := FilterForLang("xx")
	assert.True(t, filter("résumé"))
	assert.False(t, filter(""))
}

func TestMinLength(t *testing.T) {
	filter := MinLength(FilterForLang("en"), 4)
	assert.False(t, filter("cat"))
	assert.True(t, filter("cats"))
	assert.False(t, filter("Cats"))
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadWordsFilters(t *testing.T) {
	path := writeList(t, "# comment\nalpha\n\n  beta  \nGamma\nco-op\ndelta\n")

	words, err := LoadWords(path, FilterForLang("en"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "delta"}, words)
}

func TestLoadWordsNilFilter(t *testing.T) {
	path := writeList(t, "Gamma\nco-op\n")

	words, err := LoadWords(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gamma", "co-op"}, words)
}

func TestLoadWordsEmpty(t *testing.T) {
	path := writeList(t, "\n# only comments\nÉcole\n")

	_, err := LoadWords(path, FilterForLang("en"))
	require.ErrorIs(t, err, ErrEmptyWordList)
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}
