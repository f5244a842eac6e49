package intern

import (
	"strings"
	"unicode"
)

// NormalizeName reformats a candidate's raw name to title case for the
// intern record. Literal dots act as word separators, "john.doe" becomes
// "John Doe". The function is idempotent.
func NormalizeName(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, ".", " "))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
