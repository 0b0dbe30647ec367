package fr

import (
	"testing"

	"github.com/cours-de-latin/numerals"
	"github.com/shopspring/decimal"
)

func TestTableRoundTrip(t *testing.T) {
	t.Parallel()

	for _, e := range Table().Entries() {
		for _, form := range e.Forms {
			got := Parse(form)
			if got.Class != numerals.Cardinal || !got.Value.Equal(e.Value) {
				t.Errorf("Parse(%q) = %s, want %s (cardinal)", form, got, e.Value)
			}
		}
	}
}

// Every cardinal below a thousand whose ordinal is regular parses back as
// that ordinal once -ième is attached to its stem.
func TestOrdinalRoundTrip(t *testing.T) {
	t.Parallel()

	for _, e := range Table().Entries() {
		if e.Value.GreaterThan(decimal.NewFromInt(1000)) {
			continue
		}
		for _, form := range e.Forms {
			if form == "un" || form == "une" || form == "zéro" {
				continue
			}
			word := ordinalStem(form) + "ième"
			got := Parse(word)
			if got.Class != numerals.Ordinal || !got.Value.Equal(e.Value) {
				t.Errorf("Parse(%q) = %s, want %s (ordinal)", word, got, e.Value)
			}
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word  string
		value int64
		class numerals.Class
	}{
		{"soixante-dix", 70, numerals.Cardinal},
		{"septante", 70, numerals.Cardinal},
		{"Soixante-Dix", 70, numerals.Cardinal},
		{"vingt-et-un", 21, numerals.Cardinal},
		{"vingt et un", 21, numerals.Cardinal},
		{"trente-deux", 32, numerals.Cardinal},
		{"quatre-vingt-dix-sept", 97, numerals.Cardinal},
		{"deux-cents", 200, numerals.Cardinal},
		{"deux cents", 200, numerals.Cardinal},
		{"deux-cent-trois", 203, numerals.Cardinal},
		{"cent-un", 101, numerals.Cardinal},
		{"neuf cent quatre-vingt-dix-neuf", 999, numerals.Cardinal},
		{"deux-mille", 2000, numerals.Cardinal},
		{"dix-mille", 10000, numerals.Cardinal},
		{"trois-mille-quatre-cent-vingt", 3420, numerals.Cardinal},
		{"mille-un", 1001, numerals.Cardinal},
		{"milliard", 1_000_000_000, numerals.Cardinal},

		{"premier", 1, numerals.Ordinal},
		{"première", 1, numerals.Ordinal},
		{"second", 2, numerals.Ordinal},
		{"secondes", 2, numerals.Ordinal},
		{"deuxième", 2, numerals.Ordinal},
		{"quatrième", 4, numerals.Ordinal},
		{"cinquième", 5, numerals.Ordinal},
		{"neuvième", 9, numerals.Ordinal},
		{"onzième", 11, numerals.Ordinal},
		{"seizièmes", 16, numerals.Ordinal},
		{"dix-septième", 17, numerals.Ordinal},
		{"vingt-et-unième", 21, numerals.Ordinal},
		{"trente-cinquième", 35, numerals.Ordinal},
		{"quatre-vingt-dix-septième", 97, numerals.Ordinal},
		{"centième", 100, numerals.Ordinal},
		{"cent-unième", 101, numerals.Ordinal},
		{"millième", 1000, numerals.Ordinal},
		{"deux-millième", 2000, numerals.Ordinal},
		{"millionième", 1_000_000, numerals.Ordinal},

		{"", 0, numerals.Absent},
		{"unième", 0, numerals.Absent},
		{"cinqième", 0, numerals.Absent},
		{"neufième", 0, numerals.Absent},
		{"quatreième", 0, numerals.Absent},
		{"vingtun", 0, numerals.Absent},
		{"vingt-", 0, numerals.Absent},
		{"bonjour", 0, numerals.Absent},
		{"ième", 0, numerals.Absent},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.word)
			if got.Class != tt.class {
				t.Fatalf("Parse(%q) = %s, want class %s", tt.word, got, tt.class)
			}
			if tt.class != numerals.Absent && !got.Value.Equal(decimal.NewFromInt(tt.value)) {
				t.Errorf("Parse(%q) = %s, want %d", tt.word, got.Value, tt.value)
			}
		})
	}
}

func TestBooleanModes(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"trois", "troisième", "cinqième", "", "premier", "mille"} {
		r := Parse(w)
		if IsNumeral(w) != r.IsNumeral() {
			t.Errorf("IsNumeral(%q) = %v, Parse = %s", w, IsNumeral(w), r)
		}
		if IsOrdinal(w) != (r.Class == numerals.Ordinal) {
			t.Errorf("IsOrdinal(%q) = %v, Parse = %s", w, IsOrdinal(w), r)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("quatre-vingt-dix-septième")
	f.Add("deux cents")
	f.Add("et-et-et")
	f.Add("---")
	f.Add("\xff")

	f.Fuzz(func(t *testing.T, s string) {
		r := Parse(s)
		if IsOrdinal(s) && !r.IsNumeral() {
			t.Errorf("IsOrdinal(%q) but Parse = %s", s, r)
		}
	})
}
