package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Advance every due campaign by one stage",
	Long:  "Dispatches the current stage of each campaign whose trigger time has elapsed, then moves it to the next stage or completes it. Meant to run on a schedule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("advance"); err != nil {
			return err
		}

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		summary, err := newRunner(env).Run(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("emails sent:         %d\n", summary.EmailsSent)
		fmt.Printf("campaigns processed: %d\n", summary.CampaignsProcessed)
		fmt.Printf("campaigns completed: %d\n", summary.CampaignsCompleted)
		fmt.Printf("skipped:             %d\n", summary.Skipped)
		fmt.Printf("failed:              %d\n", summary.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(advanceCmd)
}
