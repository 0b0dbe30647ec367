package nl

import "github.com/cours-de-latin/numerals"

// grammar segments a single Dutch numeral word:
//
//	[[2–9] honderd [en]] [[units en] tens | teen | 1–12] [duizend [group]] [ordinal]
//
// Units joined to tens take "en", or "ën" after twee and drie
// (tweeëntwintig). The ordinal is the suppletive eerste or derde, optionally
// after "en" (honderdeneerste), or the suffix -de/-ste.
var grammar = build()

func build() numerals.Rule {
	b := numerals.NewBuilder(table)

	hundreds := numerals.Seq(
		numerals.Opt(b.Lit(numerals.SlotHundreds, "twee", "drie", "vier", "vijf", "zes", "zeven", "acht", "negen")),
		b.Lit(numerals.SlotHundred, "honderd"),
	)
	unitsEn := numerals.Alt(
		numerals.Seq(b.Lit(numerals.SlotUnits, "twee", "drie"), b.Lit(numerals.SlotLink, "ën", "en")),
		numerals.Seq(
			b.Lit(numerals.SlotUnits, "een", "één", "vier", "vijf", "zes", "zeven", "acht", "negen"),
			b.Lit(numerals.SlotLink, "en"),
		),
	)
	tens := b.Lit(numerals.SlotTens,
		"twintig", "dertig", "veertig", "vijftig",
		"zestig", "zeventig", "tachtig", "negentig")
	teens := b.Teen("tien", "der", "veer", "vijf", "zes", "zeven", "acht", "negen")
	upTo12 := b.Lit(numerals.SlotUnits,
		"een", "één", "twee", "drie", "vier", "vijf", "zes",
		"zeven", "acht", "negen", "tien", "elf", "twaalf")
	en := b.Lit(numerals.SlotLink, "en")

	tensUnits := numerals.Seq(numerals.Opt(unitsEn), tens)
	group := numerals.Alt(
		numerals.Seq(hundreds, numerals.Opt(numerals.Alt(
			tensUnits,
			teens,
			numerals.Seq(numerals.Opt(en), upTo12),
		))),
		tensUnits, teens, upTo12,
	)
	number := numerals.Seq(
		numerals.Opt(group),
		numerals.Opt(numerals.Seq(b.Lit(numerals.SlotThousand, "duizend"), numerals.Opt(group))),
	)

	suppletive := numerals.Seq(
		numerals.Opt(en),
		numerals.Alt(
			numerals.Fixed(numerals.SlotSuppletive, 1, "eerste"),
			numerals.Fixed(numerals.SlotSuppletive, 3, "derde"),
		),
		numerals.End,
	)
	suffix := numerals.Seq(b.Lit(numerals.SlotOrdinalSuffix, "ste", "de"), numerals.End)

	return numerals.Seq(number, numerals.Opt(numerals.Alt(suppletive, suffix)))
}
