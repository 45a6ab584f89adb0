package advance

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/campaign"
	"github.com/sells-group/outreach-cli/internal/model"
	"github.com/sells-group/outreach-cli/internal/runlog"
)

// Summary aggregates one advancement run.
type Summary struct {
	EmailsSent         int `json:"emails_sent"`
	CampaignsProcessed int `json:"campaigns_processed"`
	CampaignsCompleted int `json:"campaigns_completed"`
	Skipped            int `json:"skipped"`
	Failed             int `json:"failed"`
}

// Config tunes a Runner.
type Config struct {
	// BatchSize is how many due campaigns are fetched per store query.
	BatchSize int
	// Budget caps the wall-clock duration of a run. Once it elapses no new
	// campaigns are claimed; the one in flight finishes.
	Budget time.Duration
}

// Runner advances every due campaign by exactly one stage per run.
type Runner struct {
	campaigns  campaign.Store
	dispatcher Dispatcher
	runs       *runlog.Log
	cfg        Config
	now        func() time.Time
}

// NewRunner creates a Runner.
func NewRunner(campaigns campaign.Store, dispatcher Dispatcher, runs *runlog.Log, cfg Config) *Runner {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Budget <= 0 {
		cfg.Budget = 5 * time.Minute
	}
	return &Runner{
		campaigns:  campaigns,
		dispatcher: dispatcher,
		runs:       runs,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Run processes due campaigns in batches until none remain, the wall-clock
// budget elapses, or the context is cancelled. Campaigns claimed by a
// concurrent run in the meantime are skipped, not retried. Each campaign is
// attempted at most once per run: a campaign whose dispatch or commit fails
// stays due, and without that bound the batch loop would re-fetch and
// re-dispatch it until the budget ran out.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	runID, err := r.runs.Start(ctx, runlog.KindAdvance)
	if err != nil {
		return nil, err
	}

	log := zap.L().With(zap.Int64("run_id", runID))
	deadline := r.now().Add(r.cfg.Budget)
	summary := &Summary{}
	attempted := make(map[string]bool)

	for {
		if err := ctx.Err(); err != nil {
			r.failRun(ctx, runID, err)
			return summary, err
		}
		if !r.now().Before(deadline) {
			log.Warn("advancement budget elapsed, stopping",
				zap.Duration("budget", r.cfg.Budget),
				zap.Int("processed", summary.CampaignsProcessed),
			)
			break
		}

		now := r.now().UTC()
		due, err := r.campaigns.ListDue(ctx, now, r.cfg.BatchSize)
		if err != nil {
			r.failRun(ctx, runID, err)
			return summary, err
		}
		if len(due) == 0 {
			break
		}

		progressed := false
		for _, c := range due {
			if !r.now().Before(deadline) {
				break
			}
			if attempted[c.ID] {
				continue
			}
			attempted[c.ID] = true
			progressed = true
			r.processOne(ctx, c, summary, log)
		}
		if !progressed {
			// Everything still due has already had its attempt this run.
			break
		}
	}

	counters := map[string]int{
		"emails_sent":         summary.EmailsSent,
		"campaigns_processed": summary.CampaignsProcessed,
		"campaigns_completed": summary.CampaignsCompleted,
		"skipped":             summary.Skipped,
		"failed":              summary.Failed,
	}
	if err := r.runs.Complete(ctx, runID, counters); err != nil {
		log.Warn("failed to record run completion", zap.Error(err))
	}

	log.Info("advancement run complete",
		zap.Int("emails_sent", summary.EmailsSent),
		zap.Int("campaigns_processed", summary.CampaignsProcessed),
		zap.Int("campaigns_completed", summary.CampaignsCompleted),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (r *Runner) failRun(ctx context.Context, runID int64, cause error) {
	if err := r.runs.Fail(context.WithoutCancel(ctx), runID, cause.Error()); err != nil {
		zap.L().Warn("failed to record run failure", zap.Int64("run_id", runID), zap.Error(err))
	}
}

// processOne dispatches the current stage of one campaign and commits the
// transition. Dispatch precedes the commit, so a lost commit re-dispatches on
// the next run rather than silently dropping a stage.
func (r *Runner) processOne(ctx context.Context, c model.Campaign, summary *Summary, log *zap.Logger) {
	stage := c.CurrentStageDefinition()
	if stage == nil {
		// A completed campaign should never come back from ListDue.
		log.Error("due campaign has no current stage",
			zap.String("campaign_id", c.ID),
			zap.Int("current_stage", c.CurrentStage),
		)
		summary.Failed++
		return
	}

	if err := r.dispatcher.Dispatch(ctx, &c, stage); err != nil {
		log.Error("stage dispatch failed",
			zap.String("campaign_id", c.ID),
			zap.Int("stage", stage.StageIndex),
			zap.Error(err),
		)
		summary.Failed++
		return
	}
	summary.EmailsSent++

	next := campaign.Advance(c, r.now().UTC())
	claimed, err := r.campaigns.CommitAdvance(ctx, next, c.CurrentStage)
	if err != nil {
		log.Error("advance commit failed",
			zap.String("campaign_id", c.ID),
			zap.Error(err),
		)
		summary.Failed++
		return
	}
	if !claimed {
		// Another run advanced this campaign between our read and write.
		log.Debug("campaign claimed by a concurrent run",
			zap.String("campaign_id", c.ID),
			zap.Int("stage", c.CurrentStage),
		)
		summary.Skipped++
		return
	}

	summary.CampaignsProcessed++
	if next.Status == model.CampaignCompleted {
		summary.CampaignsCompleted++
	}
}
