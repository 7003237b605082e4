package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mvault/internal/content"
	"mvault/internal/quality"
)

func newQualityCommand(ctx *commandContext) *cobra.Command {
	var verbose bool
	var filePath string

	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Run the metadata quality rule battery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []content.Record
			var malformed []error

			if filePath != "" {
				rec, err := loadRecordFile(filePath)
				if err != nil {
					return err
				}
				records = []content.Record{rec}
			} else {
				store, err := ctx.contentStore()
				if err != nil {
					return err
				}
				records, malformed, err = store.LoadAll()
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, recErr := range malformed {
				fmt.Fprintf(out, "warning: %v\n", recErr)
			}

			summary := quality.AuditAll(records)
			fmt.Fprintf(out, "Records: %d  Clean: %d (%.1f%%)\n",
				summary.TotalRecords, summary.CleanRecords, summary.CleanPercent())
			fmt.Fprintln(out, renderTable(
				[]string{"Severity", "Issues"},
				[][]string{
					{"critical", strconv.Itoa(summary.SeverityCounts[quality.SeverityCritical])},
					{"error", strconv.Itoa(summary.SeverityCounts[quality.SeverityError])},
					{"warning", strconv.Itoa(summary.SeverityCounts[quality.SeverityWarning])},
					{"info", strconv.Itoa(summary.SeverityCounts[quality.SeverityInfo])},
				},
				[]columnAlignment{alignLeft, alignRight},
			))

			if verbose && len(summary.Issues) > 0 {
				rows := make([][]string, 0, len(summary.Issues))
				for _, issue := range summary.Issues {
					rows = append(rows, []string{
						issue.Slug,
						issue.Field,
						string(issue.Severity),
						issue.Description,
						issue.Value,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Record", "Field", "Severity", "Problem", "Value"},
					rows,
					nil,
				))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every issue instead of just the counts")
	cmd.Flags().StringVar(&filePath, "file", "", "Audit a single record file instead of the whole content set")
	return cmd
}

func loadRecordFile(path string) (content.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return content.Record{}, fmt.Errorf("reading record: %w", err)
	}
	slug := strings.TrimSuffix(filepath.Base(path), ".md")
	return content.ParseRecord(slug, data)
}
