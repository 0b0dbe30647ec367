// Package fr recognizes French numerals in both the traditional spelling
// ("deux cent vingt et un") and the 1990 hyphenated spelling
// ("deux-cent-vingt-et-un"), with the Belgian and Swiss tens
// (septante, huitante, octante, nonante), ordinals in -ième and the
// long-scale named powers up to "décilliard".
package fr

import (
	"strings"

	"github.com/cours-de-latin/numerals"
	"golang.org/x/text/language"
)

func init() {
	numerals.Register(New())
}

type parser struct{}

// New returns the French numerals.Parser.
func New() numerals.Parser { return parser{} }

func (parser) Language() language.Tag { return language.French }

func (parser) Table() *numerals.MagnitudeTable { return table }

func (parser) Parse(word string, opts ...numerals.Option) numerals.Result {
	return Parse(word, opts...)
}

// Table returns the French magnitude table.
func Table() *numerals.MagnitudeTable { return table }

// Parse classifies word and determines its value. Ordinals glued to -ième
// without their stem change ("cinqième") are always rejected.
func Parse(word string, _ ...numerals.Option) numerals.Result {
	word = numerals.Normalize(language.French, word)
	if word == "" || wrongOrdinals.Match(word) {
		return numerals.NotANumeral
	}
	if r, ok := lookup(word); ok {
		return r
	}
	return numerals.Compose(numerals.Segment(grammar, word), table)
}

// IsNumeral reports whether word is a French cardinal or ordinal numeral.
func IsNumeral(word string, opts ...numerals.Option) bool {
	return Parse(word, opts...).IsNumeral()
}

// IsOrdinal reports whether word is a French ordinal numeral.
func IsOrdinal(word string, opts ...numerals.Option) bool {
	return Parse(word, opts...).IsOrdinal()
}

// lookup is the fast path for words spelled exactly as in the table, and for
// their ordinals. "unième" only exists inside compounds, so it is left to
// the grammar, which rejects it on its own.
func lookup(word string) (numerals.Result, bool) {
	if v, ok := table.Lookup(word); ok {
		return numerals.CardinalOf(v), true
	}
	stem, found := strings.CutSuffix(word, "ièmes")
	if !found {
		stem, found = strings.CutSuffix(word, "ième")
	}
	if !found || stem == "un" {
		return numerals.Result{}, false
	}
	for _, c := range cardinalsOf(stem) {
		if v, ok := table.Lookup(c); ok {
			return numerals.OrdinalOf(v), true
		}
	}
	return numerals.Result{}, false
}
