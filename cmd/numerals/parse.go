package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/numerals"
)

type parseOutput struct {
	Word  string           `json:"word"`
	Lang  string           `json:"lang"`
	Class string           `json:"class"`
	Value *decimal.Decimal `json:"value,omitempty"`
}

func newParseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [word...]",
		Short: "Classify words and print their value",
		Long: `Classify each word as cardinal, ordinal or not a numeral and print its value.
With no arguments, words are read from standard input, one per line; a line
may hold a Dutch space-separated compound.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.parser()
			if err != nil {
				return err
			}
			words := args
			if len(words) == 0 {
				if words, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, w := range words {
				r := p.Parse(w, numerals.StrictSpelling(c.strict))
				slog.Debug("parsed", slog.String("word", w), slog.String("result", r.String()))

				if c.json {
					if err := enc.Encode(toParseOutput(w, p, r)); err != nil {
						return fmt.Errorf("encode %q: %w", w, err)
					}
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", w, r)
			}
			return nil
		},
	}
}

func toParseOutput(word string, p numerals.Parser, r numerals.Result) parseOutput {
	o := parseOutput{Word: word, Lang: p.Language().String(), Class: r.Class.String()}
	if r.IsNumeral() {
		v := r.Value
		o.Value = &v
	}
	return o
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			words = append(words, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return words, nil
}
