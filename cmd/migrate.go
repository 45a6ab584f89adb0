package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the outreach schema",
	Long:  "Creates the suppliers, campaigns, and outreach_runs tables and their indexes if missing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("store"); err != nil {
			return err
		}

		pool, err := db.NewPool(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			return eris.Wrap(err, "migrate")
		}

		zap.L().Info("schema applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
