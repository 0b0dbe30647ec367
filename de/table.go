package de

import "github.com/cours-de-latin/numerals"

// table lists the German cardinals that are spelled as words of their own.
// The teens 13, 14, 15, 18 and 19 are regular (stem + "zehn") and are
// derived by the composer; 16 and 17 drop a letter of their stem and are
// therefore listed.
var table = numerals.MustMagnitudeTable(
	numerals.N(0, "null"),
	numerals.N(1, "ein", "eins"),
	numerals.N(2, "zwei"),
	numerals.N(3, "drei"),
	numerals.N(4, "vier"),
	numerals.N(5, "fünf"),
	numerals.N(6, "sechs"),
	numerals.N(7, "sieben"),
	numerals.N(8, "acht"),
	numerals.N(9, "neun"),
	numerals.N(10, "zehn"),
	numerals.N(11, "elf"),
	numerals.N(12, "zwölf"),
	numerals.N(16, "sechzehn"),
	numerals.N(17, "siebzehn"),
	numerals.N(20, "zwanzig"),
	numerals.N(30, "dreißig", "dreissig"),
	numerals.N(40, "vierzig"),
	numerals.N(50, "fünfzig"),
	numerals.N(60, "sechzig"),
	numerals.N(70, "siebzig"),
	numerals.N(80, "achtzig"),
	numerals.N(90, "neunzig"),
	numerals.N(100, "hundert"),
	numerals.N(101, "hundertein", "hunderteins"),
	numerals.N(1000, "tausend"),
	numerals.N(1001, "tausendein", "tausendeins"),
	numerals.Pow10(6, "million"),
	numerals.Pow10(9, "milliarde"),
	numerals.Pow10(12, "billion"),
	numerals.Pow10(15, "billiarde"),
	numerals.Pow10(18, "trillion"),
	numerals.Pow10(21, "trilliarde"),
	numerals.Pow10(24, "quadrillion"),
	numerals.Pow10(27, "quadrilliarde"),
)

// wrongOrdinals are regular-looking ordinals of 1, 3, 7 and 8, which German
// forms suppletively (erste, dritte, siebte, achte), with every adjective
// ending.
var wrongOrdinals = inflect("einte", "dreite", "siebente", "achtte")

// inflect adds the adjective endings -r, -s, -n and -m to each ordinal.
func inflect(ordinals ...string) numerals.Denylist {
	out := make(numerals.Denylist, 0, len(ordinals)*5)
	for _, o := range ordinals {
		out = append(out, o, o+"r", o+"s", o+"n", o+"m")
	}
	return out
}
