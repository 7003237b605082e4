package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mvault/internal/catalog"
	"mvault/internal/reconcile"
	"mvault/internal/sourcetable"
)

func newAuditCommand(ctx *commandContext) *cobra.Command {
	var yearFlag string
	var reportPath string
	var filePath string

	cmd := &cobra.Command{
		Use:   "audit [csv]",
		Short: "Reconcile source tables against the content set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.contentStore()
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

			reconciler := reconcile.New(store, cfg.Paths.CoversDir, ctx.loggerValue())
			var entries []reconcile.Entry
			sourceName := ""
			for _, file := range files {
				fileRows, err := sourcetable.ReadFile(file)
				if err != nil {
					return err
				}
				fileEntries, err := reconciler.Run(fileRows, defaultYearForFile(file, yearFlag))
				if err != nil {
					return err
				}
				entries = append(entries, fileEntries...)
				if sourceName == "" {
					sourceName = filepath.Base(file)
				} else {
					sourceName += "," + filepath.Base(file)
				}
			}

			out := cmd.OutOrStdout()
			summary := reconcile.Summary(entries)
			total := len(entries)
			tableRows := make([][]string, 0, 5)
			for _, status := range []reconcile.Status{
				reconcile.StatusOK,
				reconcile.StatusMissing,
				reconcile.StatusSuspicious,
				reconcile.StatusMismatch,
				reconcile.StatusSkip,
			} {
				count := summary[status]
				percent := 0.0
				if total > 0 {
					percent = float64(count) / float64(total) * 100
				}
				tableRows = append(tableRows, []string{
					string(status),
					strconv.Itoa(count),
					fmt.Sprintf("%.1f%%", percent),
				})
			}
			fmt.Fprintln(out, emphasize(fmt.Sprintf("Audited %d rows from %s", total, sourceName), shouldColorize(out)))
			fmt.Fprintln(out, renderTable(
				[]string{"Status", "Rows", "Share"},
				tableRows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))

			target := reportPath
			if target == "" {
				target = filepath.Join(cfg.Paths.DataDir, "audit-report.md")
			}
			if err := os.WriteFile(target, []byte(reconcile.Report(entries, time.Now())), 0o644); err != nil {
				return fmt.Errorf("writing audit report: %w", err)
			}
			fmt.Fprintf(out, "Report written to %s\n", target)

			db, err := catalog.Open(cfg.Paths.CatalogDB)
			if err != nil {
				return err
			}
			defer db.Close()
			runID, err := db.SaveRun(cmd.Context(), sourceName, entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Recorded audit run %s\n", runID)
			return nil
		},
	}

	cmd.Flags().StringVar(&yearFlag, "year", "", "Default year for rows without one (overrides the filename-derived year)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Destination for the markdown report")
	cmd.Flags().StringVar(&filePath, "file", "", "Single source table to audit")

	cmd.AddCommand(newAuditHistoryCommand(ctx))
	return cmd
}

// defaultYearForFile derives the fallback year for rows without one. An
// explicit flag wins; otherwise a table named after a year ("2024.csv")
// lends its stem.
func defaultYearForFile(path, yearFlag string) string {
	if yearFlag != "" {
		return yearFlag
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if len(stem) != 4 {
		return ""
	}
	for _, r := range stem {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return stem
}

func newAuditHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded audit runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			db, err := catalog.Open(cfg.Paths.CatalogDB)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No audit runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
					run.SourceTable,
					strconv.Itoa(run.Total),
					strconv.Itoa(run.OK),
					strconv.Itoa(run.Missing),
					strconv.Itoa(run.Suspicious),
					strconv.Itoa(run.Mismatch),
					strconv.Itoa(run.Skip),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "When", "Source", "Rows", "OK", "Missing", "Susp", "Mism", "Skip"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}
