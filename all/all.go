// Package all registers every supported language with the numerals
// registry. Import it for its side effects:
//
//	import _ "github.com/cours-de-latin/numerals/all"
package all

import (
	_ "github.com/cours-de-latin/numerals/de"
	_ "github.com/cours-de-latin/numerals/fr"
	_ "github.com/cours-de-latin/numerals/nl"
)
