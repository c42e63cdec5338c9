package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gstsort/internal/registry"
	"gstsort/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var showFiles bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the source folder and report clients, gaps, and naming issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			result, err := scanner.Scan(cmd.Context(), cfg.Paths.SourceDir, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderClients(out, result.Clients)
			if showFiles {
				renderClientFiles(out, result.Clients)
			}
			renderIssues(out, result.Issues)
			renderVariations(out, result)
			renderScanStats(out, result.Stats)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFiles, "files", false, "List every classified file per client")
	return cmd
}

func renderClients(out io.Writer, clients []*registry.ClientRecord) {
	if len(clients) == 0 {
		fmt.Fprintln(out, "No clients found.")
		return
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
}

func renderClientFiles(out io.Writer, clients []*registry.ClientRecord) {
	for _, client := range clients {
		fmt.Fprintf(out, "\n%s:\n", client.Key)
		for _, cf := range client.OrderedFiles() {
			fmt.Fprintf(out, "  %-16s %s\n", cf.Category, cf.File.DisplayName())
		}
	}
}

func renderIssues(out io.Writer, issues []registry.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(out, "\nIssues (%d):\n", len(issues))
	for _, issue := range issues {
		line := fmt.Sprintf("  [%s] %s: %s", issue.Severity, issue.Client, issue.Type)
		if issue.Detail != "" {
			line += " (" + issue.Detail + ")"
		}
		fmt.Fprintln(out, line)
	}
}

func renderVariations(out io.Writer, result *scanner.ScanResult) {
	if len(result.Variations) == 0 {
		return
	}
	fmt.Fprintf(out, "\nUnrecognized files (%d):\n", len(result.Variations))
	for _, variation := range result.Variations {
		fmt.Fprintf(out, "  %s: %s\n", variation.Filename, variation.Issue)
		if variation.Suggestion != "" {
			fmt.Fprintf(out, "    suggestion: %s\n", variation.Suggestion)
		}
	}
}

func renderScanStats(out io.Writer, stats scanner.Stats) {
	fmt.Fprintf(out, "\n%d files, %d classified (%.1f%%), %d clients, %d complete, %s total\n",
		stats.TotalFiles,
		stats.ClassifiedFiles,
		stats.ClassificationRate,
		stats.TotalClients,
		stats.CompleteClients,
		humanize.Bytes(uint64(stats.TotalSize)))
}
