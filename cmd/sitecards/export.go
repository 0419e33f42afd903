package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/sitecards/internal/config"
	"github.com/gyeh/sitecards/internal/exitcode"
	"github.com/gyeh/sitecards/internal/export"
	"github.com/gyeh/sitecards/internal/ingest"
	"github.com/gyeh/sitecards/internal/logging"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the normalized cards of a sheet to an XLSX workbook",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Sheet path or http(s) URL (required)")
	f.StringVar(&cfg.OutPath, "out", "sitecards.xlsx", "Output workbook")
	f.DurationVar(&cfg.FetchTimeout, "fetch-timeout", envDuration("fetch-timeout", config.DefaultFetchTimeout), "Timeout for fetching a remote sheet")
	_ = exportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateFile(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	src := ingest.SourceFromLocation(cfg.FilePath)
	table, summary, err := ingest.Plan(context.Background(), ingest.NewFetcher(cfg.FetchTimeout), src)
	if err != nil {
		log.Error().Err(err).Str("phase", ingest.PhaseOf(err)).Msg("export failed")
		os.Exit(loadExitCode(err))
	}

	if err := export.WriteFile(cfg.OutPath, table.Rows); err != nil {
		log.Error().Err(err).Str("out", cfg.OutPath).Msg("failed to write workbook")
		os.Exit(exitcode.WriteError)
	}

	printf(cmd, "Exported %d cards to %s (%d unnamed rows skipped)\n",
		len(table.Rows), cfg.OutPath, summary.RowsDropped)
	return nil
}
