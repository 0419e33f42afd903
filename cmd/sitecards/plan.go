package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/sitecards/internal/config"
	"github.com/gyeh/sitecards/internal/exitcode"
	"github.com/gyeh/sitecards/internal/ingest"
	"github.com/gyeh/sitecards/internal/logging"
	"github.com/gyeh/sitecards/internal/model"
	"github.com/gyeh/sitecards/internal/normalize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run: read and normalize a sheet, print stats (no server)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Sheet path or http(s) URL (required)")
	planCmd.Flags().DurationVar(&cfg.FetchTimeout, "fetch-timeout", envDuration("fetch-timeout", config.DefaultFetchTimeout), "Timeout for fetching a remote sheet")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateFile(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	src := ingest.SourceFromLocation(cfg.FilePath)
	table, summary, err := ingest.Plan(context.Background(), ingest.NewFetcher(cfg.FetchTimeout), src)
	if err != nil {
		log.Error().Err(err).Str("phase", ingest.PhaseOf(err)).Msg("plan failed")
		os.Exit(loadExitCode(err))
	}

	writePlan(cmd.OutOrStdout(), cfg.FilePath, table, summary)
	return nil
}

// writePlan prints the dry-run report for one parsed sheet.
func writePlan(w io.Writer, location string, table *ingest.Table, summary *model.LoadSummary) {
	fmt.Fprintln(w, "=== sitecards plan ===")
	fmt.Fprintf(w, "Source:     %s\n", location)
	fmt.Fprintf(w, "SHA-256:    %s\n", summary.SourceSHA256)
	fmt.Fprintf(w, "Rows read:  %d\n", summary.RowsRead)
	fmt.Fprintf(w, "Kept:       %d\n", summary.RowsKept)
	fmt.Fprintf(w, "Dropped:    %d (no nickname or official name)\n", summary.RowsDropped)
	if len(table.IgnoredColumns) > 0 {
		fmt.Fprintf(w, "Ignored columns: %v\n", table.IgnoredColumns)
	}

	categories := make(map[string]int)
	complexity := make(map[string]int)
	for i := range table.Rows {
		categories[string(normalize.Category(table.Rows[i].ServiceCategory))]++
		complexity[normalize.SimplifyComplexity(table.Rows[i].IntakeComplexity).Label]++
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Category distribution:")
	printCounts(w, categories)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Intake complexity:")
	printCounts(w, complexity)

	if ingest.FormatOf(location) == ingest.FormatParquet {
		fmt.Fprintln(w, "Schema validation: OK")
	}
}

func printCounts(w io.Writer, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-22s %d\n", k, counts[k])
	}
}
