package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/outreach-cli/internal/launch"
	"github.com/sells-group/outreach-cli/internal/runlog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show supplier, campaign, and run counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("status"); err != nil {
			return err
		}

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		reporter := launch.NewStatusReporter(env.Registry, env.Campaigns, env.Runs)
		status, err := reporter.Report(ctx, cfg.Advance.RecentRuns)
		if err != nil {
			return err
		}

		formatStatus(os.Stdout, status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func formatStatus(w io.Writer, s *launch.Status) {
	fmt.Fprintf(w, "active campaigns: %d\n", s.ActiveCampaigns)
	fmt.Fprintf(w, "total suppliers:  %d\n", s.TotalSuppliers)

	if len(s.SuppliersByCountry) > 0 {
		fmt.Fprintln(w, "\nsuppliers by country:")
		formatCounts(w, s.SuppliersByCountry)
	}
	if len(s.SuppliersByCategory) > 0 {
		fmt.Fprintln(w, "\nsuppliers by category:")
		formatCounts(w, s.SuppliersByCategory)
	}
	if len(s.RecentRuns) > 0 {
		fmt.Fprintln(w, "\nrecent runs:")
		formatRuns(w, s.RecentRuns)
	}
}

func formatCounts(w io.Writer, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%d\n", k, counts[k])
	}
	tw.Flush()
}

func formatRuns(w io.Writer, runs []runlog.Entry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tKIND\tSTATUS\tSTARTED\tCOMPLETED")
	for _, r := range runs {
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\n",
			r.ID, r.Kind, r.Status, r.StartedAt.Format("2006-01-02 15:04:05"), completed)
	}
	tw.Flush()
}
