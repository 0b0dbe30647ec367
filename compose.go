package numerals

import "github.com/shopspring/decimal"

// Compose turns a decomposition into a result using the magnitudes in t.
//
// Hundreds add 100 times their multiplier (1 when bare). Tens, teens and units
// add their value. The thousand marker multiplies what came before it, or
// stands for 1000 when nothing did; a group after it is added on top. An
// ordinal suffix or suppletive stem makes the result ordinal. Leftover text,
// or a decomposition without any valued slot, yields NotANumeral.
func Compose(d Decomposition, t *MagnitudeTable) Result {
	if d.Leftover() != "" || !d.hasValue() {
		return NotANumeral
	}

	var (
		thousands  int64 // resolved thousand part
		group      int64 // 0–999 accumulator
		multiplier int64 // pending hundreds multiplier
		ordinal    bool
	)
	for _, s := range d.Slots {
		switch s.Kind {
		case SlotHundreds:
			multiplier = resolve(s, t)
		case SlotHundred:
			if multiplier == 0 {
				multiplier = 1
			}
			group += 100 * multiplier
			multiplier = 0
		case SlotTens, SlotTeens, SlotUnits:
			group += resolve(s, t)
		case SlotSuppletive:
			group += s.Value
			ordinal = true
		case SlotOrdinalSuffix:
			ordinal = true
		case SlotThousand:
			if group > 0 {
				thousands += group * 1000
			} else {
				thousands += 1000
			}
			group = 0
		case SlotLeftover:
			return NotANumeral
		}
	}

	v := decimal.NewFromInt(thousands + group)
	if ordinal {
		return OrdinalOf(v)
	}
	return CardinalOf(v)
}

// resolve returns the value of a digit, tens or teens slot. The grammar
// builder guarantees the lookup succeeds; teens missing from the table fall
// back to ten plus their stem.
func resolve(s Slot, t *MagnitudeTable) int64 {
	if s.Fixed {
		return s.Value
	}
	if v, ok := t.small(s.Text); ok {
		return v
	}
	if s.Kind == SlotTeens {
		if v, ok := t.small(s.Stem); ok {
			return 10 + v
		}
	}
	return 0
}
