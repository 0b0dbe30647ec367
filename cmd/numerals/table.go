package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTableCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the magnitude table of a language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.parser()
			if err != nil {
				return err
			}
			entries := p.Table().Entries()

			if c.json {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(entries)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", e.Value, strings.Join(e.Forms, ", "))
			}
			return tw.Flush()
		},
	}
}
