package de

import "github.com/cours-de-latin/numerals"

// grammar segments a single German numeral word:
//
//	[[2–9] hundert] [[units und] tens | teen | 1–12] [tausend [group]] [ordinal]
//
// where the ordinal is either a suppletive stem ending the word (erste,
// dritte, siebte, achte) or one of the suffixes -te/-ste with an optional
// adjective ending.
var grammar = build()

func build() numerals.Rule {
	b := numerals.NewBuilder(table)

	hundreds := numerals.Seq(
		numerals.Opt(b.Lit(numerals.SlotHundreds, "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun")),
		b.Lit(numerals.SlotHundred, "hundert"),
	)
	unitsUnd := numerals.Seq(
		b.Lit(numerals.SlotUnits, "ein", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun"),
		b.Lit(numerals.SlotLink, "und"),
	)
	tens := b.Lit(numerals.SlotTens,
		"zwanzig", "dreißig", "dreissig", "vierzig", "fünfzig",
		"sechzig", "siebzig", "achtzig", "neunzig")
	teens := b.Teen("zehn", "drei", "vier", "fünf", "sech", "sieb", "acht", "neun")
	upTo12 := b.Lit(numerals.SlotUnits,
		"eins", "ein", "zwei", "drei", "vier", "fünf", "sechs",
		"sieben", "acht", "neun", "zehn", "elf", "zwölf")

	below100 := numerals.Alt(numerals.Seq(numerals.Opt(unitsUnd), tens), teens, upTo12)
	group := numerals.Alt(numerals.Seq(hundreds, numerals.Opt(below100)), below100)
	number := numerals.Seq(
		numerals.Opt(group),
		numerals.Opt(numerals.Seq(b.Lit(numerals.SlotThousand, "tausend"), numerals.Opt(group))),
	)

	suppletive := numerals.Seq(
		numerals.Alt(
			numerals.Fixed(numerals.SlotSuppletive, 1, inflections("erste")...),
			numerals.Fixed(numerals.SlotSuppletive, 3, inflections("dritte")...),
			numerals.Fixed(numerals.SlotSuppletive, 7, inflections("siebte")...),
			numerals.Fixed(numerals.SlotSuppletive, 8, inflections("achte")...),
		),
		numerals.End,
	)
	suffix := numerals.Seq(b.Lit(numerals.SlotOrdinalSuffix, append(inflections("ste"), inflections("te")...)...), numerals.End)

	return numerals.Seq(number, numerals.Opt(numerals.Alt(suppletive, suffix)))
}

// inflections returns an ordinal ending with each adjective ending.
func inflections(base string) []string {
	return []string{base, base + "r", base + "s", base + "n", base + "m"}
}
