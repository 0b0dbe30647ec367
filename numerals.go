// Package numerals recognizes spelled-out cardinal and ordinal numerals and
// computes the value they denote.
//
// Every supported language lives in its own package (de, fr, nl) and is an
// independent instance of the same pipeline:
//
//	normalize → denylist veto → table fast path → grammar segmentation → compose
//
// This package holds what the languages share: the magnitude table, the slot
// model, the grammar combinators, the composer and the parser registry.
// Everything here is immutable after package initialization and safe for
// concurrent use.
package numerals

import (
	"errors"
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// ErrUnknownLanguage is returned when no parser is registered for a tag.
var ErrUnknownLanguage = errors.New("numerals: unknown language")

// Parser is the contract every language package implements.
type Parser interface {
	// Language returns the base language the parser handles.
	Language() language.Tag
	// Parse classifies word and determines its value.
	Parse(word string, opts ...Option) Result
	// Table returns the language's magnitude table.
	Table() *MagnitudeTable
}

var registry = struct {
	sync.RWMutex
	parsers map[language.Tag]Parser
	matcher language.Matcher
	tags    []language.Tag
}{parsers: make(map[language.Tag]Parser)}

// Register makes p available through Lookup. Language packages call it from
// init; registering a second parser for the same language replaces the first.
func Register(p Parser) {
	registry.Lock()
	defer registry.Unlock()

	tag := p.Language()
	if _, ok := registry.parsers[tag]; !ok {
		registry.tags = append(registry.tags, tag)
		sort.Slice(registry.tags, func(i, j int) bool {
			return registry.tags[i].String() < registry.tags[j].String()
		})
	}
	registry.parsers[tag] = p
	registry.matcher = language.NewMatcher(registry.tags)
}

// Lookup returns the parser registered for tag. Regional variants resolve to
// their base language (de-CH → de, nl-BE → nl); anything the matcher is not
// at least highly confident about is reported as missing.
func Lookup(tag language.Tag) (Parser, bool) {
	registry.RLock()
	defer registry.RUnlock()

	if p, ok := registry.parsers[tag]; ok {
		return p, true
	}
	if registry.matcher == nil {
		return nil, false
	}
	_, idx, conf := registry.matcher.Match(tag)
	if conf < language.High {
		return nil, false
	}
	return registry.parsers[registry.tags[idx]], true
}

// LookupString parses a BCP 47 tag such as "nl" or "fr-BE" and looks it up.
func LookupString(s string) (Parser, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, errors.Join(ErrUnknownLanguage, err)
	}
	p, ok := Lookup(tag)
	if !ok {
		return nil, ErrUnknownLanguage
	}
	return p, nil
}

// Languages returns the registered language tags in lexical order.
func Languages() []language.Tag {
	registry.RLock()
	defer registry.RUnlock()

	out := make([]language.Tag, len(registry.tags))
	copy(out, registry.tags)
	return out
}
