package launch

import (
	"context"

	"github.com/sells-group/outreach-cli/internal/campaign"
	"github.com/sells-group/outreach-cli/internal/runlog"
	"github.com/sells-group/outreach-cli/internal/supplier"
)

// Status is a point-in-time operational snapshot of the outreach system.
type Status struct {
	ActiveCampaigns     int            `json:"active_campaigns"`
	TotalSuppliers      int            `json:"total_suppliers"`
	SuppliersByCountry  map[string]int `json:"suppliers_by_country"`
	SuppliersByCategory map[string]int `json:"suppliers_by_category"`
	RecentRuns          []runlog.Entry `json:"recent_runs"`
}

// StatusReporter aggregates counts across the supplier registry, campaign
// store, and run log.
type StatusReporter struct {
	registry  supplier.Registry
	campaigns campaign.Store
	runs      *runlog.Log
}

// NewStatusReporter creates a StatusReporter.
func NewStatusReporter(registry supplier.Registry, campaigns campaign.Store, runs *runlog.Log) *StatusReporter {
	return &StatusReporter{registry: registry, campaigns: campaigns, runs: runs}
}

// Report assembles the current status. recentRuns bounds how many run-log
// entries are included.
func (r *StatusReporter) Report(ctx context.Context, recentRuns int) (*Status, error) {
	active, err := r.campaigns.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	total, err := r.registry.Count(ctx)
	if err != nil {
		return nil, err
	}
	byCountry, err := r.registry.CountByCountry(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := r.registry.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	runs, err := r.runs.Recent(ctx, recentRuns)
	if err != nil {
		return nil, err
	}

	return &Status{
		ActiveCampaigns:     active,
		TotalSuppliers:      total,
		SuppliersByCountry:  byCountry,
		SuppliersByCategory: byCategory,
		RecentRuns:          runs,
	}, nil
}
