package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/numerals/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the numerals version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "numerals", app.BuildVersion())
		},
	}
}
