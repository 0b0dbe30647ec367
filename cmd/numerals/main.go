// Command numerals parses spelled-out numerals from the command line.
//
//	numerals parse --lang fr quatre-vingt-dix-septième
//	echo "tweeduizend vijfhonderd" | numerals parse --lang nl --json
//	numerals table --lang de
package main

import (
	"fmt"
	"os"

	_ "github.com/cours-de-latin/numerals/all"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
