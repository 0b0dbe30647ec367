// Package de recognizes German numerals written as a single word, from
// "null" to the multiples of a thousand ("neunhundertneunundneunzigtausend"),
// their ordinals ("dritte", "zweiundzwanzigste") and the named powers of ten
// from "million" to "quadrilliarde".
//
// Misformed ordinals of 1, 3, 7 and 8 ("einte", "achtte") are always
// rejected; German has no lenient mode.
package de

import (
	"strings"

	"github.com/cours-de-latin/numerals"
	"golang.org/x/text/language"
)

func init() {
	numerals.Register(New())
}

type parser struct{}

// New returns the German numerals.Parser.
func New() numerals.Parser { return parser{} }

func (parser) Language() language.Tag { return language.German }

func (parser) Table() *numerals.MagnitudeTable { return table }

func (parser) Parse(word string, opts ...numerals.Option) numerals.Result {
	return Parse(word, opts...)
}

// Table returns the German magnitude table.
func Table() *numerals.MagnitudeTable { return table }

// Parse classifies word and determines its value. The input is normalized
// first, so "Dreizehn" and "dreizehn" are the same word. Options are
// accepted for symmetry with the other languages; the German denylist
// applies regardless.
func Parse(word string, _ ...numerals.Option) numerals.Result {
	word = numerals.Normalize(language.German, word)
	if word == "" || wrongOrdinals.Match(word) {
		return numerals.NotANumeral
	}
	if r, ok := lookup(word); ok {
		return r
	}
	return numerals.Compose(numerals.Segment(grammar, word), table)
}

// IsNumeral reports whether word is a German cardinal or ordinal numeral.
func IsNumeral(word string, opts ...numerals.Option) bool {
	return Parse(word, opts...).IsNumeral()
}

// IsOrdinal reports whether word is a German ordinal numeral.
func IsOrdinal(word string, opts ...numerals.Option) bool {
	return Parse(word, opts...).IsOrdinal()
}

// lookup is the fast path: the word itself, or the word without a regular
// ordinal suffix, is in the table.
func lookup(word string) (numerals.Result, bool) {
	if v, ok := table.Lookup(word); ok {
		return numerals.CardinalOf(v), true
	}
	for _, suffix := range []string{"ste", "te"} {
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
