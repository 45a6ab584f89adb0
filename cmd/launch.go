package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var launchTargets []string

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Discover suppliers and launch outreach campaigns",
	Long:  "Resolves suppliers for each country:category target, then creates a staged campaign for every supplier without an active one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		targets, err := parseTargets(launchTargets)
		if err != nil {
			return err
		}

		env, launcher, err := initLauncher(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		summary, err := launcher.Launch(ctx, targets)
		if err != nil {
			return err
		}

		fmt.Printf("suppliers found:     %d\n", summary.SuppliersFound)
		fmt.Printf("campaigns launched:  %d\n", summary.CampaignsLaunched)
		fmt.Printf("skipped (active):    %d\n", summary.SkippedExisting)
		fmt.Printf("failed:              %d\n", summary.Failed)
		fmt.Printf("countries processed: %d\n", summary.CountriesProcessed)
		fmt.Printf("categories:          %d\n", summary.CategoriesProcessed)
		return nil
	},
}

func init() {
	launchCmd.Flags().StringArrayVar(&launchTargets, "target", nil, "country:category pair (repeatable)")
	rootCmd.AddCommand(launchCmd)
}
