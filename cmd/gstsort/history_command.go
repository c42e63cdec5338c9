package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded organization runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openRunLog()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			if store == nil {
				return fmt.Errorf("run history is disabled in the configuration")
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.Mode,
					strconv.Itoa(run.Clients),
					strconv.Itoa(run.Copied),
					strconv.Itoa(run.Skipped),
					strconv.Itoa(run.Failed),
					run.RunFolder,
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Run", "Started", "Mode", "Clients", "Copied", "Skipped", "Failed", "Folder"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.AddCommand(newHistoryShowCommand(ctx))
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to list")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the client outcomes recorded for one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openRunLog()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			if store == nil {
				return fmt.Errorf("run history is disabled in the configuration")
			}
			defer store.Close()

			clients, err := store.RunClients(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(clients) == 0 {
				fmt.Fprintf(out, "No clients recorded for run %s.\n", args[0])
				return nil
			}

			rows := make([][]string, 0, len(clients))
			for _, client := range clients {
				rows = append(rows, []string{
					client.Client,
					fmt.Sprintf("%s (%s)", client.Jurisdiction, client.Code),
					strconv.Itoa(client.FileCount),
					humanize.Bytes(uint64(client.TotalSize)),
					fmt.Sprintf("%.1f%%", client.Completeness),
					client.Status,
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Client", "Jurisdiction", "Files", "Size", "Complete", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}
