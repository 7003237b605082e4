package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mvault/internal/ingest"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var repairCovers bool
	var note string
	var extraTags []string

	cmd := &cobra.Command{
		Use:   "ingest <url>",
		Short: "Ingest a single video URL into the content set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			if err := pipeline.AcquireLock(); err != nil {
				return err
			}
			defer pipeline.ReleaseLock()

			result, err := pipeline.IngestURL(cmd.Context(), args[0], ingest.Options{
				Force:          force,
				RepairCovers:   repairCovers,
				CuratorNote:    note,
				AdditionalTags: extraTags,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch result.Status {
			case ingest.StatusCreated:
				fmt.Fprintf(out, "Created %s (%s - %s)\n", result.Slug, result.Artist, result.Title)
			case ingest.StatusRepaired:
				fmt.Fprintf(out, "Repaired cover for %s\n", result.Slug)
			default:
				fmt.Fprintf(out, "Skipped: %s\n", result.Reason)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing record with the same slug")
	cmd.Flags().BoolVar(&repairCovers, "repair-covers", false, "Only re-download a missing or empty cover")
	cmd.Flags().StringVar(&note, "note", "", "Curator note stored on the record")
	cmd.Flags().StringArrayVar(&extraTags, "tag", nil, "Additional tag (repeatable); overrides derived tags")
	return cmd
}
