// Backtracking segmentation of numeral words into slots.
package numerals

import (
	"fmt"
	"sort"
	"strings"
)

// Partial is a segmentation in progress: the slots matched so far and the
// text still to consume.
type Partial struct {
	Slots []Slot
	Rest  string
}

// with returns a copy of p extended by s. The full slice expression forces a
// fresh backing array so sibling branches never share appended slots.
func (p Partial) with(s Slot, rest string) Partial {
	n := len(p.Slots)
	return Partial{Slots: append(p.Slots[:n:n], s), Rest: rest}
}

// A Rule extends a partial segmentation in every way it can, most preferred
// first. An empty result means the rule does not apply.
type Rule func(p Partial) []Partial

// Seq applies rules one after another.
func Seq(rules ...Rule) Rule {
	return func(p Partial) []Partial {
		cur := []Partial{p}
		for _, r := range rules {
			var next []Partial
			for _, c := range cur {
				next = append(next, r(c)...)
			}
			if len(next) == 0 {
				return nil
			}
			cur = next
		}
		return cur
	}
}

// Alt offers every alternative, in order.
func Alt(rules ...Rule) Rule {
	return func(p Partial) []Partial {
		var out []Partial
		for _, r := range rules {
			out = append(out, r(p)...)
		}
		return out
	}
}

// Opt tries r and falls back to matching nothing. Matches are greedy: the
// extended partials come before the unchanged one.
func Opt(r Rule) Rule {
	return func(p Partial) []Partial {
		return append(r(p), p)
	}
}

// End only matches once the whole word has been consumed.
func End(p Partial) []Partial {
	if p.Rest != "" {
		return nil
	}
	return []Partial{p}
}

// Fixed matches any of forms as a slot carrying value.
func Fixed(kind SlotKind, value int64, forms ...string) Rule {
	return literal(forms, func(f string) Slot {
		return Slot{Kind: kind, Text: f, Fixed: true, Value: value}
	})
}

func literal(forms []string, slot func(form string) Slot) Rule {
	sorted := append([]string(nil), forms...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return func(p Partial) []Partial {
		var out []Partial
		for _, f := range sorted {
			if strings.HasPrefix(p.Rest, f) {
				out = append(out, p.with(slot(f), p.Rest[len(f):]))
			}
		}
		return out
	}
}

// Builder creates literal rules checked against a magnitude table, so that
// every valued slot the grammar can produce is known to resolve.
type Builder struct {
	table *MagnitudeTable
}

// NewBuilder returns a Builder for t.
func NewBuilder(t *MagnitudeTable) *Builder {
	return &Builder{table: t}
}

// Lit matches any of forms as a slot of kind. Digit, tens and hundreds
// multiplier forms must be in the table; it panics otherwise.
func (b *Builder) Lit(kind SlotKind, forms ...string) Rule {
	switch kind {
	case SlotUnits, SlotTens, SlotHundreds:
		for _, f := range forms {
			if !b.table.Has(f) {
				panic(fmt.Sprintf("numerals: %s form %q is not in the magnitude table", kind, f))
			}
		}
	}
	return literal(forms, func(f string) Slot {
		return Slot{Kind: kind, Text: f}
	})
}

// Teen matches stem+suffix for every stem. Teens missing from the table are
// resolved as ten plus the stem's value, so either must be present.
func (b *Builder) Teen(suffix string, stems ...string) Rule {
	bySurface := make(map[string]string, len(stems))
	forms := make([]string, 0, len(stems))
	for _, stem := range stems {
		f := stem + suffix
		if !b.table.Has(f) && !b.table.Has(stem) {
			panic(fmt.Sprintf("numerals: teen %q and its stem are not in the magnitude table", f))
		}
		bySurface[f] = stem
		forms = append(forms, f)
	}
	return literal(forms, func(f string) Slot {
		return Slot{Kind: SlotTeens, Text: f, Stem: bySurface[f]}
	})
}

// Stem matches an altered stem (French "quatr" in "quatrième") as a slot of
// kind worth the value of cardinal.
func (b *Builder) Stem(kind SlotKind, cardinal, stem string) Rule {
	v, ok := b.table.small(cardinal)
	if !ok {
		panic(fmt.Sprintf("numerals: stem %q: cardinal %q is not in the magnitude table", stem, cardinal))
	}
	return Fixed(kind, v, stem)
}

// Segment runs rule over word. It returns the first complete segmentation
// that contains a value. When there is none, it returns the segmentation that
// got furthest, ending in a SlotLeftover with the text it could not match.
func Segment(rule Rule, word string) Decomposition {
	best := Partial{Rest: word}
	for _, p := range rule(Partial{Rest: word}) {
		d := Decomposition{Slots: p.Slots}
		if p.Rest == "" && d.hasValue() {
			return d
		}
		if len(p.Rest) < len(best.Rest) {
			best = p
		}
	}
	if best.Rest == "" {
		// Matched everything but nothing of value, e.g. a bare suffix.
		return Decomposition{Slots: best.with(Slot{Kind: SlotLeftover, Text: word}, "").Slots}
	}
	return Decomposition{Slots: best.with(Slot{Kind: SlotLeftover, Text: best.Rest}, "").Slots}
}
