package main

import (
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"gstsort/internal/organize"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string
	var includeClientName bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Scan the source folder and copy files into the organized tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(modeFlag) != "" {
				cfg.Organize.Mode = modeFlag
			}
			if cmd.Flags().Changed("include-client-name") {
				cfg.Organize.IncludeClientName = includeClientName
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store, err := ctx.openRunLog()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := organize.New(cfg, logger, store).Run(runCtx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderRunSummary(out, result)
			if result.Cancelled {
				fmt.Fprintln(out, "\nRun cancelled; completed clients were organized in full.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "", "Processing mode: fresh, rerun, or resume")
	cmd.Flags().BoolVar(&includeClientName, "include-client-name", false, "Append the client name to every category folder")
	return cmd
}

func renderRunSummary(out io.Writer, result *organize.RunReport) {
	summary := result.Summary

	rows := make([][]string, 0, len(summary.Clients))
	for _, row := range summary.Clients {
		rows = append(rows, []string{
			row.Client,
			fmt.Sprintf("%s (%s)", row.Jurisdiction, row.Code),
			fmt.Sprintf("%d", row.Files),
			fmt.Sprintf("%.1f%%", row.Completeness),
			row.Status,
		})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable(out,
			[]string{"Client", "Jurisdiction", "Files", "Complete", "Status"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		))
	}

	if len(summary.Errors) > 0 {
		fmt.Fprintf(out, "\nErrors (%d):\n", len(summary.Errors))
		for _, row := range summary.Errors {
			if row.Filename != "" {
				fmt.Fprintf(out, "  %s / %s: %s\n", row.Client, row.Filename, row.Detail)
			} else {
				fmt.Fprintf(out, "  %s: %s\n", row.Client, row.Detail)
			}
		}
	}

	skippedNote := ""
	if summary.Skipped > 0 {
		skippedNote = fmt.Sprintf(", %d skipped", summary.Skipped)
	}
	fmt.Fprintf(out, "\n%s: %d clients, %d files copied%s, %d failed\n",
		result.RunFolder,
		result.ClientsProcessed,
		summary.Copied,
		skippedNote,
		summary.Failed)
}
