package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"mvault/internal/ingest"
	"mvault/internal/sourcetable"
)

func newHuntCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var missingReport string

	cmd := &cobra.Command{
		Use:   "hunt [csv]",
		Short: "Batch-ingest every row of the source tables",
		Long: "Reads source CSV tables and ingests each row's target URL. Rows " +
			"without a Target_URL are recorded in the missing report instead of " +
			"searched for.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			pipeline, err := ctx.newPipeline()
			if err != nil {
				return err
			}

			files, err := resolveSourceFiles(cfg.Paths.DataDir, filePath, args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no source tables found in %s", cfg.Paths.DataDir)
			}

			if err := pipeline.AcquireLock(); err != nil {
				return err
			}
			defer pipeline.ReleaseLock()

			pacer := ingest.NewPacer(cfg.Ingest.PacingMinMillis, cfg.Ingest.PacingMaxMillis)
			reportPath := missingReport
			if reportPath == "" {
				reportPath = filepath.Join(cfg.Paths.DataDir, "missing-videos.json")
			}

			out := cmd.OutOrStdout()
			var totals ingest.HuntReport
			for _, file := range files {
				rows, err := sourcetable.ReadFile(file)
				if err != nil {
					return err
				}
				report, err := pipeline.Hunt(cmd.Context(), rows, pacer)
				if err != nil {
					return err
				}
				if err := ingest.WriteMissingReport(reportPath, report); err != nil {
					return err
				}
				totals.Created += report.Created
				totals.Skipped += report.Skipped
				totals.Missing += report.Missing
				totals.Failed += report.Failed
				totals.Entries = append(totals.Entries, report.Entries...)
				fmt.Fprintf(out, "%s: %d rows\n", filepath.Base(file), len(rows))
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Outcome", "Rows"},
				[][]string{
					{"Created", strconv.Itoa(totals.Created)},
					{"Skipped", strconv.Itoa(totals.Skipped)},
					{"Missing", strconv.Itoa(totals.Missing)},
					{"Failed", strconv.Itoa(totals.Failed)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			if totals.Missing > 0 || totals.Failed > 0 {
				fmt.Fprintf(out, "Unresolved rows merged into %s\n", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Single source table to process")
	cmd.Flags().StringVar(&missingReport, "missing-report", "", "Destination for the missing-rows JSON report")
	return cmd
}

func resolveSourceFiles(dataDir, fileFlag string, args []string) ([]string, error) {
	switch {
	case fileFlag != "":
		return []string{fileFlag}, nil
	case len(args) == 1:
		return []string{args[0]}, nil
	default:
		return sourcetable.Discover(dataDir)
	}
}
