package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes, so
// "Alimentação" becomes "alimentacao" after lower-casing.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases text and strips diacritical marks, producing the
// comparable form used on both the query and the candidate fields. Callers
// must never compare raw text against normalized text. Total function: empty
// in, empty out.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	out, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return lowered
	}
	return out
}
