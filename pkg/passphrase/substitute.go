package passphrase

import "strings"

// vowelSymbols is the vowel substitution alphabet, in vowelReplacer order.
const vowelSymbols = "@31µ0"

var vowelReplacer = strings.NewReplacer(
	"a", "@", "A", "@",
	"e", "3", "E", "3",
	"i", "1", "I", "1",
	"o", "0", "O", "0",
	"u", "µ", "U", "µ",
)

// Substitute swaps every vowel in word for a similar-looking symbol:
// a→@ e→3 i→1 o→0 u→µ. Upper and lower case vowels are treated alike. Other
// characters, including their case, are left alone. Substitute is idempotent.
func Substitute(word string) string {
	return vowelReplacer.Replace(word)
}

// isSubstitutionSymbol reports whether r was produced by Substitute. Those
// runes are never case-mapped; µ in particular would otherwise turn into a
// Greek capital mu.
func isSubstitutionSymbol(r rune) bool {
	return strings.ContainsRune(vowelSymbols, r)
}
