package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/runlog"
)

var discoverTargets []string

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Ingest suppliers without launching campaigns",
	Long:  "Resolves and dedups suppliers for each country:category target into the registry. No campaigns are created.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		targets, err := parseTargets(discoverTargets)
		if err != nil {
			return err
		}

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		runID, err := env.Runs.Start(ctx, runlog.KindDiscover)
		if err != nil {
			return err
		}

		summary, err := env.Ingestor.Discover(ctx, targets)
		if err != nil {
			if fErr := env.Runs.Fail(ctx, runID, err.Error()); fErr != nil {
				zap.L().Warn("failed to record run failure", zap.Error(fErr))
			}
			return err
		}

		if err := env.Runs.Complete(ctx, runID, map[string]int{
			"suppliers_found":   summary.SuppliersFound,
			"suppliers_created": summary.SuppliersCreated,
		}); err != nil {
			zap.L().Warn("failed to record run completion", zap.Error(err))
		}

		fmt.Printf("suppliers found:     %d\n", summary.SuppliersFound)
		fmt.Printf("suppliers created:   %d\n", summary.SuppliersCreated)
		fmt.Printf("countries processed: %d\n", summary.CountriesProcessed)
		fmt.Printf("categories:          %d\n", summary.CategoriesProcessed)
		return nil
	},
}

func init() {
	discoverCmd.Flags().StringArrayVar(&discoverTargets, "target", nil, "country:category pair (repeatable)")
	rootCmd.AddCommand(discoverCmd)
}
