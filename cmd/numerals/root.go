package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/numerals"
	"github.com/cours-de-latin/numerals/internal/app"
	"github.com/cours-de-latin/numerals/internal/config"
)

// cli holds the global flags and the configuration they fall back to.
type cli struct {
	lang   string
	strict bool
	json   bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "numerals",
		Short:         "Recognize spelled-out German, French and Dutch numerals",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			app.NewLogger(cfg.Log)

			if !cmd.Flags().Changed("lang") {
				c.lang = cfg.Parse.DefaultLanguage
			}
			if !cmd.Flags().Changed("strict") {
				c.strict = cfg.Parse.StrictSpelling
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&c.lang, "lang", "l", "", "language tag: de, fr, nl or a regional variant (default from config)")
	root.PersistentFlags().BoolVar(&c.strict, "strict", false, "reject non-standard ordinal spellings")
	root.PersistentFlags().BoolVar(&c.json, "json", false, "output as JSON")

	root.AddCommand(newParseCmd(c), newTableCmd(c), newVersionCmd())
	return root
}

func (c *cli) parser() (numerals.Parser, error) {
	p, err := numerals.LookupString(c.lang)
	if err != nil {
		return nil, fmt.Errorf("--lang %q: %w", c.lang, err)
	}
	return p, nil
}
