package numerals

import "strings"

// Options configure a single parse.
type Options struct {
	// StrictSpelling rejects forms on the language's denylist even where the
	// language matches leniently by default.
	StrictSpelling bool
}

// Option sets a parse option.
type Option func(*Options)

// StrictSpelling turns strict spelling on or off.
func StrictSpelling(on bool) Option {
	return func(o *Options) { o.StrictSpelling = on }
}

// Apply folds opts into an Options value.
func Apply(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Denylist holds word endings that satisfy a grammar but are not valid
// spellings, such as wrongly suffixed ordinals.
type Denylist []string

// Match reports whether word ends in one of the denied endings.
func (d Denylist) Match(word string) bool {
	for _, suffix := range d {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
