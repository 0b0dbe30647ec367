package nl

import (
	"github.com/cours-de-latin/numerals"
	"github.com/shopspring/decimal"
)

// table lists the Dutch cardinals that are words of their own. 15 to 19 are
// regular (stem + "tien") and derived by the composer; dertien and veertien
// alter their stem and are listed.
var table = numerals.MustMagnitudeTable(
	numerals.N(0, "nul"),
	numerals.N(1, "een", "één"),
	numerals.N(2, "twee"),
	numerals.N(3, "drie"),
	numerals.N(4, "vier"),
	numerals.N(5, "vijf"),
	numerals.N(6, "zes"),
	numerals.N(7, "zeven"),
	numerals.N(8, "acht"),
	numerals.N(9, "negen"),
	numerals.N(10, "tien"),
	numerals.N(11, "elf"),
	numerals.N(12, "twaalf"),
	numerals.N(13, "dertien"),
	numerals.N(14, "veertien"),
	numerals.N(20, "twintig"),
	numerals.N(30, "dertig"),
	numerals.N(40, "veertig"),
	numerals.N(50, "vijftig"),
	numerals.N(60, "zestig"),
	numerals.N(70, "zeventig"),
	numerals.N(80, "tachtig"),
	numerals.N(90, "negentig"),
	numerals.N(100, "honderd"),
	numerals.N(1000, "duizend"),
	numerals.Pow10(6, "miljoen"),
	numerals.Pow10(9, "miljard"),
	numerals.Pow10(12, "biljoen"),
	numerals.Pow10(15, "biljard"),
	numerals.Pow10(18, "triljoen"),
	numerals.Pow10(21, "triljard"),
	numerals.Pow10(24, "quadriljoen"),
	numerals.Pow10(27, "quadriljard"),
)

// threeQuarters is the only fraction Dutch writes as one word: driekwart.
var threeQuarters = decimal.New(75, -2)

const (
	wordThreeQuarters        = "driekwart"
	wordThreeQuartersOrdinal = "driekwartste"
)

// scale is the smallest magnitude that multiplies the words before it in a
// space-separated compound ("twee miljoen").
var scale = decimal.New(1, 6)

// wrongOrdinals take the suffix the standard language (Algemeen Nederlands)
// does not use for that number: "tweeste" instead of "tweede", "achtde"
// instead of "achtste". They are only rejected with strict spelling.
var wrongOrdinals = numerals.Denylist{
	"nulste", "eende", "tweeste", "driede", "vierste", "vijfste",
	"zeste", "zesste", "zevenste", "achtde", "negenste", "tienste",
	"honderdde", "duizendde",
}
