// Package wordbank provides the tiered enemy word lists.
package wordbank

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Typeable reports whether every letter of word can be typed on the a-z
// keys. Case is ignored because input is lowercased before matching.
func Typeable(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
