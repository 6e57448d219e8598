package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for quiz words.
// Unknown languages accept any non-empty word.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return func(word string) bool { return word != "" }
	}
}

// MinLength wraps filter and additionally drops words shorter than n runes.
func MinLength(filter FilterFunc, n int) FilterFunc {
	return func(word string) bool {
		if len([]rune(word)) < n {
			return false
		}
		return filter == nil || filter(word)
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
