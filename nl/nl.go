// Package nl recognizes Dutch numerals: single words from "nul" to the
// multiples of a thousand ("negenhonderdnegenennegentigduizend"), their
// ordinals ("derde", "eenentwintigste"), the named powers from "miljoen" to
// "quadriljard", the fraction "driekwart", and space-separated compounds
// ("tweeduizend vijfhonderd").
//
// By default ordinals are matched leniently: "tweeste" is read as 2nd even
// though the standard form is "tweede". Pass numerals.StrictSpelling(true)
// to reject such forms.
package nl

import (
	"strings"

	"github.com/cours-de-latin/numerals"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func init() {
	numerals.Register(New())
}

type parser struct{}

// New returns the Dutch numerals.Parser.
func New() numerals.Parser { return parser{} }

func (parser) Language() language.Tag { return language.Dutch }

func (parser) Table() *numerals.MagnitudeTable { return table }

func (parser) Parse(word string, opts ...numerals.Option) numerals.Result {
	return Parse(word, opts...)
}

// Table returns the Dutch magnitude table.
func Table() *numerals.MagnitudeTable { return table }

// Parse classifies word and determines its value. A word containing spaces
// is read as a compound: see compound.
func Parse(word string, opts ...numerals.Option) numerals.Result {
	o := numerals.Apply(opts...)
	word = numerals.Normalize(language.Dutch, word)
	if strings.Contains(word, " ") {
		return compound(strings.Fields(word), o)
	}
	return parseWord(word, o)
}

// IsNumeral reports whether word is a Dutch cardinal or ordinal numeral.
func IsNumeral(word string, opts ...numerals.Option) bool {
	return Parse(word, opts...).IsNumeral()
}

// IsOrdinal reports whether word is a Dutch ordinal numeral.
func IsOrdinal(word string, opts ...numerals.Option) bool {
	return Parse(word, opts...).IsOrdinal()
}

func parseWord(word string, o numerals.Options) numerals.Result {
	switch word {
	case "":
		return numerals.NotANumeral
	case wordThreeQuarters:
		return numerals.CardinalOf(threeQuarters)
	case wordThreeQuartersOrdinal:
		return numerals.OrdinalOf(threeQuarters)
	}
	if o.StrictSpelling && wrongOrdinals.Match(word) {
		return numerals.NotANumeral
	}
	if r, ok := lookup(word); ok {
		return r
	}
	return numerals.Compose(numerals.Segment(grammar, word), table)
}

// lookup is the fast path: the word itself, or the word without a regular
// ordinal suffix, is in the table.
func lookup(word string) (numerals.Result, bool) {
	if v, ok := table.Lookup(word); ok {
		return numerals.CardinalOf(v), true
	}
	for _, suffix := range []string{"ste", "de"} {
		base, found := strings.CutSuffix(word, suffix)
		if !found {
			continue
		}
		if v, ok := table.Lookup(base); ok {
			return numerals.OrdinalOf(v), true
		}
		break
	}
	return numerals.Result{}, false
}

// compound adds up the values of space-separated words from left to right:
// "tweeduizend vijfhonderd" is 2000 + 500. A named power of a million or
// more multiplies the words before it instead ("twee miljoen" is 2000000).
// Every word must be a numeral and only the last may be an ordinal, which
// makes the whole compound ordinal.
func compound(words []string, o numerals.Options) numerals.Result {
	var total, group decimal.Decimal
	last := numerals.NotANumeral
	for i, w := range words {
		r := parseWord(w, o)
		if !r.IsNumeral() || (r.IsOrdinal() && i < len(words)-1) {
			return numerals.NotANumeral
		}
		if r.Value.GreaterThanOrEqual(scale) {
			if group.IsZero() {
				group = decimal.NewFromInt(1)
			}
			total = total.Add(group.Mul(r.Value))
			group = decimal.Zero
		} else {
			group = group.Add(r.Value)
		}
		last = r
	}
	return numerals.Result{Value: total.Add(group), Class: last.Class}
}
