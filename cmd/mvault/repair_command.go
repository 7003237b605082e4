package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRepairCommand(ctx *commandContext) *cobra.Command {
	repairCmd := &cobra.Command{
		Use:   "repair",
		Short: "Repair utilities for the content set",
	}

	repairCmd.AddCommand(newRepairCreditsCommand(ctx))
	return repairCmd
}

func newRepairCreditsCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Clear director credits that fail validation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			if !dryRun {
				if err := pipeline.AcquireLock(); err != nil {
					return err
				}
				defer pipeline.ReleaseLock()
			}

			actions, err := pipeline.RepairCredits(dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(actions) == 0 {
				fmt.Fprintln(out, "All director credits pass validation")
				return nil
			}

			verb := "Cleared"
			if dryRun {
				verb = "Would clear"
			}
			for _, action := range actions {
				fmt.Fprintf(out, "%s %s on %s (was %q)\n", verb, action.Field, action.Slug, action.OldValue)
			}
			fmt.Fprintf(out, "%d record(s) affected\n", len(actions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report invalid credits without modifying records")
	return cmd
}
