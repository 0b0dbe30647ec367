package numerals

import "strings"

// SlotKind names the role a piece of a numeral word plays.
type SlotKind uint8

const (
	// SlotHundreds is the digit-word multiplying a following hundred marker.
	SlotHundreds SlotKind = iota + 1
	// SlotHundred is the hundred marker ("hundert", "cent", "honderd").
	SlotHundred
	SlotTens
	// SlotTeens is an 11–19 form; unlisted teens resolve as 10 + Stem.
	SlotTeens
	SlotUnits
	// SlotLink is a connective without value ("und", "en", "et", "-").
	SlotLink
	SlotThousand
	SlotOrdinalSuffix
	// SlotSuppletive is an irregular ordinal stem such as "dritte" or
	// "premier"; it carries its cardinal value and marks the word ordinal.
	SlotSuppletive
	// SlotLeftover holds text the grammar could not consume.
	SlotLeftover
)

var slotKindNames = [...]string{
	SlotHundreds:      "hundreds",
	SlotHundred:       "hundred",
	SlotTens:          "tens",
	SlotTeens:         "teens",
	SlotUnits:         "units",
	SlotLink:          "link",
	SlotThousand:      "thousand",
	SlotOrdinalSuffix: "ordinal-suffix",
	SlotSuppletive:    "suppletive",
	SlotLeftover:      "leftover",
}

func (k SlotKind) String() string {
	if int(k) < len(slotKindNames) && slotKindNames[k] != "" {
		return slotKindNames[k]
	}
	return "unknown"
}

// Slot is one segment of a numeral word.
type Slot struct {
	Kind SlotKind
	// Text is the surface text the slot consumed.
	Text string
	// Stem is the teen stem without its "-zehn"/"-tien" suffix.
	Stem string
	// Fixed slots carry Value themselves instead of looking Text up.
	Fixed bool
	Value int64
}

// valued reports whether the slot contributes a number.
func (s Slot) valued() bool {
	switch s.Kind {
	case SlotHundred, SlotTens, SlotTeens, SlotUnits, SlotThousand, SlotSuppletive:
		return true
	}
	return false
}

// Decomposition is the segmentation of one word into slots. It lives only
// for the duration of a single parse.
type Decomposition struct {
	Slots []Slot
}

// Leftover returns the text nothing in the grammar matched.
func (d Decomposition) Leftover() string {
	for _, s := range d.Slots {
		if s.Kind == SlotLeftover {
			return s.Text
		}
	}
	return ""
}

// Has reports whether a slot of kind k was matched.
func (d Decomposition) Has(k SlotKind) bool {
	for _, s := range d.Slots {
		if s.Kind == k {
			return true
		}
	}
	return false
}

// String renders the decomposition as "kind:text" pairs, for debugging and
// test failure messages.
func (d Decomposition) String() string {
	var b strings.Builder
	for i, s := range d.Slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Kind.String())
		b.WriteByte(':')
		b.WriteString(s.Text)
	}
	return b.String()
}

func (d Decomposition) hasValue() bool {
	for _, s := range d.Slots {
		if s.valued() {
			return true
		}
	}
	return false
}
