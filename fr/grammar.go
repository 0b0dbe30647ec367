package fr

import "github.com/cours-de-latin/numerals"

// grammar segments a French numeral whose components are joined by hyphens
// (1990 spelling) or by spaces and hyphens (traditional spelling):
//
//	[[[2–9] cent(s)] [below-100]] mille [[2–9] cent(s)] [below-100]
//
// Only the last component can be ordinal. It takes -ième on its ordinal
// stem (quatr-, cinqu-, neuv-, onz-, trent-, mill-…); "premier" and
// "second" are whole-word suppletive ordinals.
var grammar = build()

type builder struct {
	*numerals.Builder
}

func build() numerals.Rule {
	b := builder{numerals.NewBuilder(table)}

	sep := b.Lit(numerals.SlotLink, "-", " ")
	et := numerals.Seq(b.Lit(numerals.SlotLink, "et"), sep)

	// "unième" only follows a tens or hundreds word: vingt-et-unième,
	// cent-unième. On its own the first is "premier".
	un := b.Lit(numerals.SlotUnits, "un", "une")
	unInCompound := numerals.Alt(b.words(numerals.SlotUnits, "un"), b.Lit(numerals.SlotUnits, "une"))
	unit := b.words(numerals.SlotUnits, "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf")
	teen := b.words(numerals.SlotTeens, "onze", "douze", "treize", "quatorze", "quinze", "seize")
	dix := numerals.Seq(
		b.words(numerals.SlotTens, "dix"),
		numerals.Opt(numerals.Seq(sep, b.words(numerals.SlotUnits, "sept", "huit", "neuf"))),
	)

	// soixante and quatre-vingt count on in steps of ten: soixante-dix-sept,
	// quatre-vingt-onze.
	vigesimal := numerals.Seq(
		b.words(numerals.SlotTens, "soixante", "quatre-vingt"),
		numerals.Opt(numerals.Seq(sep, numerals.Alt(
			numerals.Seq(et, unInCompound),
			numerals.Seq(et, b.words(numerals.SlotTeens, "onze")),
			teen, dix, unInCompound, unit,
		))),
	)
	tensUnits := numerals.Seq(
		b.words(numerals.SlotTens,
			"vingt", "trente", "quarante", "cinquante",
			"septante", "huitante", "octante", "nonante"),
		numerals.Opt(numerals.Seq(sep, numerals.Alt(numerals.Seq(et, unInCompound), unInCompound, unit))),
	)
	below100 := numerals.Alt(
		vigesimal,
		tensUnits,
		b.Lit(numerals.SlotTens, "quatre-vingts"),
		teen, dix, un, unit,
		b.Lit(numerals.SlotUnits, "zéro"),
	)

	hundreds := numerals.Seq(
		numerals.Opt(numerals.Seq(
			b.Lit(numerals.SlotHundreds, "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf"),
			sep,
		)),
		numerals.Alt(b.words(numerals.SlotHundred, "cent"), b.Lit(numerals.SlotHundred, "cents")),
	)
	group := numerals.Alt(
		numerals.Seq(hundreds, numerals.Opt(numerals.Seq(sep, numerals.Alt(below100, unInCompound)))),
		below100,
	)
	number := numerals.Alt(
		numerals.Seq(
			numerals.Opt(numerals.Seq(group, sep)),
			b.words(numerals.SlotThousand, "mille"),
			numerals.Opt(numerals.Seq(sep, group)),
		),
		group,
	)

	suppletive := numerals.Seq(
		numerals.Alt(
			numerals.Fixed(numerals.SlotSuppletive, 1, "premier", "première", "premiers", "premières"),
			numerals.Fixed(numerals.SlotSuppletive, 2, "second", "seconde", "seconds", "secondes"),
		),
		numerals.End,
	)
	return numerals.Alt(suppletive, number)
}

// words matches each cardinal and its ordinal: the ordinal stem followed by
// -ième(s) at the very end of the word.
func (b builder) words(kind numerals.SlotKind, cardinals ...string) numerals.Rule {
	suffix := b.Lit(numerals.SlotOrdinalSuffix, "ième", "ièmes")
	alts := make([]numerals.Rule, 0, 2*len(cardinals))
	for _, c := range cardinals {
		var ordinal numerals.Rule
		if stem := ordinalStem(c); stem != c {
			ordinal = b.Stem(kind, c, stem)
		} else {
			ordinal = b.Lit(kind, c)
		}
		alts = append(alts, b.Lit(kind, c), numerals.Seq(ordinal, suffix, numerals.End))
	}
	return numerals.Alt(alts...)
}
