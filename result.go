package numerals

import "github.com/shopspring/decimal"

// Class tells whether a word is a numeral and of which kind.
type Class uint8

const (
	// Absent means the word is not a numeral.
	Absent Class = iota
	// Cardinal numerals denote a quantity ("drei").
	Cardinal
	// Ordinal numerals denote a rank ("dritte").
	Ordinal
)

func (c Class) String() string {
	switch c {
	case Cardinal:
		return "cardinal"
	case Ordinal:
		return "ordinal"
	default:
		return "absent"
	}
}

// Result is the outcome of parsing one word. The zero value is "not a
// numeral"; Value is only meaningful when Class is not Absent.
type Result struct {
	Value decimal.Decimal
	Class Class
}

// NotANumeral is the result for every word that is not a numeral.
var NotANumeral = Result{}

// CardinalOf returns the cardinal result for v.
func CardinalOf(v decimal.Decimal) Result {
	return Result{Value: v, Class: Cardinal}
}

// OrdinalOf returns the ordinal result for v.
func OrdinalOf(v decimal.Decimal) Result {
	return Result{Value: v, Class: Ordinal}
}

// IsNumeral reports whether the word was recognized at all.
func (r Result) IsNumeral() bool { return r.Class != Absent }

// IsOrdinal reports whether the word is an ordinal numeral.
func (r Result) IsOrdinal() bool { return r.Class == Ordinal }

// Int64 returns the value as an integer. ok is false for absent results,
// fractions and values that do not fit in an int64.
func (r Result) Int64() (n int64, ok bool) {
	if r.Class == Absent || !r.Value.IsInteger() {
		return 0, false
	}
	bi := r.Value.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// Float64 returns the value as a float, which may be inexact for the large
// named magnitudes.
func (r Result) Float64() float64 {
	f, _ := r.Value.Float64()
	return f
}

func (r Result) String() string {
	if r.Class == Absent {
		return "absent"
	}
	return r.Value.String() + " (" + r.Class.String() + ")"
}
