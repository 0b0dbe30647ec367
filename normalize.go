package numerals

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// separatorReplacer folds the dash and space look-alikes found in scanned or
// word-processed text onto ASCII, which is what the grammars expect.
var separatorReplacer = strings.NewReplacer(
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
	"\u2012", "-", // figure dash
	"\u2013", "-", // en dash
	"\u00ad", "", // soft hyphen
	"\u00a0", " ", // no-break space
	"\u202f", " ", // narrow no-break space
)

// Normalize prepares word for matching: NFC composition (u followed by a
// combining diaeresis becomes ü), language-aware lowercasing, separator folding
// and trimming of surrounding whitespace.
//
// A cases.Caser is stateful, so a new one is made for every call.
func Normalize(tag language.Tag, word string) string {
	word = norm.NFC.String(word)
	word = cases.Lower(tag).String(word)
	word = separatorReplacer.Replace(word)
	return strings.TrimSpace(word)
}
