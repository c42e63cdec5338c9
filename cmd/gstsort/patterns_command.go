package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gstsort/internal/classify"
)

func newPatternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "patterns",
		Short:       "Show the recognized filename patterns",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			rows := make([][]string, 0)
			for _, rule := range classify.Bank() {
				rows = append(rows, []string{
					rule.Name,
					rule.Category,
					strings.Join(rule.Slots, ", "),
					rule.Example,
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Pattern", "Category", "Captures", "Example"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintln(out, "Matching is case-insensitive; a leading \"(N) \" copy counter is ignored.")
			return nil
		},
	}
}
