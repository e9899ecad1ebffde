package weather

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes, so
// "Brăila" folds to "braila" after lowercasing.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// cedillaFold handles the Romanian letters explicitly, including the legacy
// cedilla forms some geocoding payloads still carry.
var cedillaFold = strings.NewReplacer(
	"ș", "s", "ş", "s",
	"ț", "t", "ţ", "t",
	"ă", "a", "â", "a",
	"î", "i",
)

// FoldDiacritics lowercases s and strips diacritics, so that "Brăila" and
// "braila" compare equal. Used for candidate matching and cache keys.
func FoldDiacritics(s string) string {
	s = strings.ToLower(s)
	s = cedillaFold.Replace(s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}
