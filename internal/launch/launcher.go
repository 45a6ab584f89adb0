// Package launch orchestrates mass-campaign launches: discovery, strategy
// selection, sequence building, and campaign creation per supplier.
package launch

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/outreach-cli/internal/campaign"
	"github.com/sells-group/outreach-cli/internal/discovery"
	"github.com/sells-group/outreach-cli/internal/model"
	"github.com/sells-group/outreach-cli/internal/runlog"
	"github.com/sells-group/outreach-cli/internal/sequence"
	"github.com/sells-group/outreach-cli/internal/strategy"
)

// Summary aggregates one launch run.
type Summary struct {
	SuppliersFound      int `json:"suppliers_found"`
	CampaignsLaunched   int `json:"campaigns_launched"`
	CountriesProcessed  int `json:"countries_processed"`
	CategoriesProcessed int `json:"categories_processed"`
	SkippedExisting     int `json:"skipped_existing"`
	Failed              int `json:"failed"`
}

// Launcher wires the discovery, strategy, sequence, and campaign components.
type Launcher struct {
	ingestor      *discovery.Ingestor
	campaigns     campaign.Store
	selector      *strategy.Selector
	builder       *sequence.Builder
	runs          *runlog.Log
	maxConcurrent int
}

// NewLauncher creates a Launcher. maxConcurrent bounds how many suppliers
// have sequences generated at once.
func NewLauncher(ingestor *discovery.Ingestor, campaigns campaign.Store, selector *strategy.Selector, builder *sequence.Builder, runs *runlog.Log, maxConcurrent int) *Launcher {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &Launcher{
		ingestor:      ingestor,
		campaigns:     campaigns,
		selector:      selector,
		builder:       builder,
		runs:          runs,
		maxConcurrent: maxConcurrent,
	}
}

// Launch discovers suppliers for every target and starts a campaign for each
// supplier that does not already have an active one. Re-running over
// overlapping targets is safe: existing suppliers are not duplicated and
// suppliers with an active campaign are skipped.
func (l *Launcher) Launch(ctx context.Context, targets []discovery.Target) (*Summary, error) {
	if err := discovery.ValidateTargets(targets); err != nil {
		return nil, err
	}

	runID, err := l.runs.Start(ctx, runlog.KindLaunch)
	if err != nil {
		return nil, err
	}

	log := zap.L().With(zap.Int64("run_id", runID))
	summary := &Summary{}
	countries := make(map[string]bool)
	categories := make(map[string]bool)

	var launched, skipped, failed atomic.Int64

	for _, t := range targets {
		t = t.Normalize()

		resolved, err := l.ingestor.DiscoverTarget(ctx, t)
		if err != nil {
			// One bad target does not sink the batch; it is counted and logged.
			log.Error("target discovery failed",
				zap.String("country", t.Country),
				zap.String("category", t.Category),
				zap.Error(err),
			)
			failed.Add(1)
			continue
		}

		summary.SuppliersFound += len(resolved)
		countries[t.Country] = true
		categories[t.Category] = true

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(l.maxConcurrent)

		for _, r := range resolved {
			sup := r.Supplier
			g.Go(func() error {
				ok, err := l.launchOne(gctx, sup)
				switch {
				case err != nil:
					failed.Add(1)
					log.Error("campaign launch failed",
						zap.String("supplier", sup.CompanyName),
						zap.Error(err),
					)
				case ok:
					launched.Add(1)
				default:
					skipped.Add(1)
				}
				return nil // individual failures never abort the batch
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	summary.CampaignsLaunched = int(launched.Load())
	summary.SkippedExisting = int(skipped.Load())
	summary.Failed = int(failed.Load())
	summary.CountriesProcessed = len(countries)
	summary.CategoriesProcessed = len(categories)

	counters := map[string]int{
		"suppliers_found":    summary.SuppliersFound,
		"campaigns_launched": summary.CampaignsLaunched,
		"skipped_existing":   summary.SkippedExisting,
		"failed":             summary.Failed,
	}
	if err := l.runs.Complete(ctx, runID, counters); err != nil {
		log.Warn("failed to record run completion", zap.Error(err))
	}

	log.Info("launch complete",
		zap.Int("suppliers_found", summary.SuppliersFound),
		zap.Int("campaigns_launched", summary.CampaignsLaunched),
		zap.Int("skipped_existing", summary.SkippedExisting),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// launchOne creates a campaign for the supplier unless it already has an
// active one. Returns true when a campaign was created.
func (l *Launcher) launchOne(ctx context.Context, sup *model.Supplier) (bool, error) {
	exists, err := l.campaigns.ActiveExists(ctx, sup.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	snapshot := l.selector.Snapshot(sup.Country)
	stages := l.builder.BuildSequence(ctx, sup, l.selector.ForCountry(sup.Country))

	now := time.Now().UTC()
	c := &model.Campaign{
		SupplierID:        sup.ID,
		Status:            model.CampaignActive,
		CurrentStage:      1,
		Stages:            stages,
		NextTriggerAt:     &now, // first stage is due immediately
		CulturalStrategy:  snapshot,
		DealValueEstimate: sup.PotentialValue,
	}
	if err := l.campaigns.Create(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}
