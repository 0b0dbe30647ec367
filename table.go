package numerals

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrConflictingForm is returned when one surface form is listed for two
// different magnitudes.
var ErrConflictingForm = errors.New("numerals: surface form maps to two magnitudes")

// Entry is one row of a canonical magnitude table: a value and every surface
// form that spells it. The first form is the canonical one.
type Entry struct {
	Value decimal.Decimal `json:"value"`
	Forms []string        `json:"forms"`
}

// N builds an Entry for a small integer magnitude.
func N(v int64, forms ...string) Entry {
	return Entry{Value: decimal.NewFromInt(v), Forms: forms}
}

// Pow10 builds an Entry for the named power 10^exp.
func Pow10(exp int32, forms ...string) Entry {
	return Entry{Value: decimal.New(1, exp), Forms: forms}
}

// MagnitudeTable maps surface forms to magnitudes and back. It is built once
// and never modified, so it can be shared freely between goroutines.
type MagnitudeTable struct {
	entries []Entry
	byForm  map[string]decimal.Decimal
	// byValue maps Value.String() → index into entries.
	byValue map[string]int
}

// NewMagnitudeTable indexes entries in both directions. Entries with the same
// value are merged. A form listed under two different values is an error.
func NewMagnitudeTable(entries ...Entry) (*MagnitudeTable, error) {
	t := &MagnitudeTable{
		byForm:  make(map[string]decimal.Decimal),
		byValue: make(map[string]int),
	}

	for _, e := range entries {
		if len(e.Forms) == 0 {
			return nil, fmt.Errorf("numerals: magnitude %s has no surface form", e.Value)
		}
		for _, form := range e.Forms {
			if prev, ok := t.byForm[form]; ok && !prev.Equal(e.Value) {
				return nil, fmt.Errorf("%w: %q is %s and %s", ErrConflictingForm, form, prev, e.Value)
			}
			t.byForm[form] = e.Value
		}

		key := e.Value.String()
		if i, ok := t.byValue[key]; ok {
			t.entries[i].Forms = appendMissing(t.entries[i].Forms, e.Forms...)
			continue
		}
		t.byValue[key] = len(t.entries)
		t.entries = append(t.entries, Entry{Value: e.Value, Forms: appendMissing(nil, e.Forms...)})
	}

	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Value.LessThan(t.entries[j].Value)
	})
	for i, e := range t.entries {
		t.byValue[e.Value.String()] = i
	}
	return t, nil
}

// MustMagnitudeTable is like NewMagnitudeTable but panics on error. It is
// meant for package-level tables, where a conflict is a programming error.
func MustMagnitudeTable(entries ...Entry) *MagnitudeTable {
	t, err := NewMagnitudeTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the magnitude spelled by form.
func (t *MagnitudeTable) Lookup(form string) (decimal.Decimal, bool) {
	v, ok := t.byForm[form]
	return v, ok
}

// Has reports whether form is a surface form of the table.
func (t *MagnitudeTable) Has(form string) bool {
	_, ok := t.byForm[form]
	return ok
}

// Forms returns every surface form of v, canonical form first.
func (t *MagnitudeTable) Forms(v decimal.Decimal) []string {
	i, ok := t.byValue[v.String()]
	if !ok {
		return nil
	}
	out := make([]string, len(t.entries[i].Forms))
	copy(out, t.entries[i].Forms)
	return out
}

// Entries returns a copy of the table in ascending order of magnitude.
func (t *MagnitudeTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Value: e.Value, Forms: append([]string(nil), e.Forms...)}
	}
	return out
}

// Len returns the number of distinct surface forms.
func (t *MagnitudeTable) Len() int { return len(t.byForm) }

// small returns the value of form as an int64. Grammar slots only ever refer
// to forms below one thousand, so the conversion cannot overflow.
func (t *MagnitudeTable) small(form string) (int64, bool) {
	v, ok := t.byForm[form]
	if !ok {
		return 0, false
	}
	return v.IntPart(), true
}

// appendMissing appends the forms not yet present in dst, keeping order.
func appendMissing(dst []string, forms ...string) []string {
	for _, f := range forms {
		dup := false
		for _, g := range dst {
			if g == f {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, f)
		}
	}
	return dst
}
