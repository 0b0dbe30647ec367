package fr

import (
	"strings"

	"github.com/cours-de-latin/numerals"
)

// table lists the French cardinals up to 99 with their Belgian and Swiss
// variants (septante, huitante, octante, nonante), the hundred and thousand
// markers and the long-scale named powers.
var table = numerals.MustMagnitudeTable(
	numerals.N(0, "zéro"),
	numerals.N(1, "un", "une"),
	numerals.N(2, "deux"),
	numerals.N(3, "trois"),
	numerals.N(4, "quatre"),
	numerals.N(5, "cinq"),
	numerals.N(6, "six"),
	numerals.N(7, "sept"),
	numerals.N(8, "huit"),
	numerals.N(9, "neuf"),
	numerals.N(10, "dix"),
	numerals.N(11, "onze"),
	numerals.N(12, "douze"),
	numerals.N(13, "treize"),
	numerals.N(14, "quatorze"),
	numerals.N(15, "quinze"),
	numerals.N(16, "seize"),
	numerals.N(17, "dix-sept"),
	numerals.N(18, "dix-huit"),
	numerals.N(19, "dix-neuf"),
	numerals.N(20, "vingt"),
	numerals.N(30, "trente"),
	numerals.N(40, "quarante"),
	numerals.N(50, "cinquante"),
	numerals.N(60, "soixante"),
	numerals.N(70, "soixante-dix", "septante"),
	numerals.N(71, "soixante-onze", "septante-et-un"),
	numerals.N(72, "soixante-douze", "septante-deux"),
	numerals.N(73, "soixante-treize", "septante-trois"),
	numerals.N(74, "soixante-quatorze", "septante-quatre"),
	numerals.N(75, "soixante-quinze", "septante-cinq"),
	numerals.N(76, "soixante-seize", "septante-six"),
	numerals.N(77, "soixante-dix-sept", "septante-sept"),
	numerals.N(78, "soixante-dix-huit", "septante-huit"),
	numerals.N(79, "soixante-dix-neuf", "septante-neuf"),
	// "quatre-vingt" without s is the form used inside compounds.
	numerals.N(80, "quatre-vingts", "huitante", "octante", "quatre-vingt"),
	numerals.N(81, "quatre-vingt-un", "huitante-et-un", "octante-et-un"),
	numerals.N(82, "quatre-vingt-deux", "huitante-deux", "octante-deux"),
	numerals.N(83, "quatre-vingt-trois", "huitante-trois", "octante-trois"),
	numerals.N(84, "quatre-vingt-quatre", "huitante-quatre", "octante-quatre"),
	numerals.N(85, "quatre-vingt-cinq", "huitante-cinq", "octante-cinq"),
	numerals.N(86, "quatre-vingt-six", "huitante-six", "octante-six"),
	numerals.N(87, "quatre-vingt-sept", "huitante-sept", "octante-sept"),
	numerals.N(88, "quatre-vingt-huit", "huitante-huit", "octante-huit"),
	numerals.N(89, "quatre-vingt-neuf", "huitante-neuf", "octante-neuf"),
	numerals.N(90, "quatre-vingt-dix", "nonante"),
	numerals.N(91, "quatre-vingt-onze", "nonante-et-un"),
	numerals.N(92, "quatre-vingt-douze", "nonante-deux"),
	numerals.N(93, "quatre-vingt-treize", "nonante-trois"),
	numerals.N(94, "quatre-vingt-quatorze", "nonante-quatre"),
	numerals.N(95, "quatre-vingt-quinze", "nonante-cinq"),
	numerals.N(96, "quatre-vingt-seize", "nonante-six"),
	numerals.N(97, "quatre-vingt-dix-sept", "nonante-sept"),
	numerals.N(98, "quatre-vingt-dix-huit", "nonante-huit"),
	numerals.N(99, "quatre-vingt-dix-neuf", "nonante-neuf"),
	numerals.N(100, "cent"),
	numerals.N(1000, "mille"),
	numerals.Pow10(6, "million"),
	numerals.Pow10(9, "milliard"),
	numerals.Pow10(12, "billion"),
	numerals.Pow10(15, "billiard"),
	numerals.Pow10(18, "trillion"),
	numerals.Pow10(21, "trilliard"),
	numerals.Pow10(24, "quadrillion", "quatrillion"),
	numerals.Pow10(27, "quadrilliard"),
	numerals.Pow10(30, "quintillion"),
	numerals.Pow10(33, "quintilliard"),
	numerals.Pow10(36, "sextillion"),
	numerals.Pow10(39, "sextilliard"),
	numerals.Pow10(42, "septillion"),
	numerals.Pow10(45, "septilliard"),
	numerals.Pow10(48, "octillion"),
	numerals.Pow10(51, "octilliard"),
	numerals.Pow10(54, "novillion"),
	numerals.Pow10(57, "novilliard"),
	numerals.Pow10(60, "décillion"),
	numerals.Pow10(63, "décilliard"),
)

// alteredStems are the ordinal stems that do not just drop a final e.
var alteredStems = map[string]string{
	"cinq": "cinqu",
	"neuf": "neuv",
}

// ordinalStem returns the stem "-ième" attaches to: quatre → quatr,
// cinq → cinqu, dix-neuf → dix-neuv, mille → mill, deux → deux.
func ordinalStem(cardinal string) string {
	for c, s := range alteredStems {
		if head, ok := strings.CutSuffix(cardinal, c); ok {
			return head + s
		}
	}
	if n := len(cardinal); n > 0 && cardinal[n-1] == 'e' {
		return cardinal[:n-1]
	}
	return cardinal
}

// cardinalsOf returns the cardinal spellings an ordinal stem may come from.
func cardinalsOf(stem string) []string {
	for c, s := range alteredStems {
		if head, ok := strings.CutSuffix(stem, s); ok {
			return []string{head + c}
		}
	}
	return []string{stem, stem + "e"}
}

// wrongOrdinals are cardinals glued to -ième without the stem change:
// "quatreième", "cinqième", "neufième".
var wrongOrdinals = numerals.Denylist{
	"eième", "eièmes",
	"cinqième", "cinqièmes",
	"neufième", "neufièmes",
}
