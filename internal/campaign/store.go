// Package campaign persists outreach campaigns and applies their stage
// transitions through optimistic, single-row conditional writes.
package campaign

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/sells-group/outreach-cli/internal/db"
	"github.com/sells-group/outreach-cli/internal/model"
)

// Store defines persistence operations for campaigns.
type Store interface {
	Create(ctx context.Context, c *model.Campaign) error
	ActiveExists(ctx context.Context, supplierID string) (bool, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]model.Campaign, error)
	CommitAdvance(ctx context.Context, next model.Campaign, prevStage int) (bool, error)
	CountActive(ctx context.Context) (int, error)
}

// PostgresStore implements Store using pgx.
type PostgresStore struct {
	pool db.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const campaignColumns = `id, supplier_id, status, current_stage, stages,
	next_trigger_at, total_sent, cultural_strategy, deal_value_estimate,
	created_at, updated_at`

// Create persists a campaign with its fully-resolved stage sequence. The
// partial unique index on (supplier_id) WHERE status='active' backs the
// one-active-campaign-per-supplier invariant even under concurrent launches.
func (s *PostgresStore) Create(ctx context.Context, c *model.Campaign) error {
	if len(c.Stages) == 0 {
		return eris.New("campaign: refusing to create campaign with no stages")
	}
	for _, st := range c.Stages {
		if st.Body == "" {
			return eris.Errorf("campaign: stage %d has no body", st.StageIndex)
		}
	}

	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	stagesJSON, err := json.Marshal(c.Stages)
	if err != nil {
		return eris.Wrap(err, "campaign: marshal stages")
	}
	strategyJSON, err := json.Marshal(c.CulturalStrategy)
	if err != nil {
		return eris.Wrap(err, "campaign: marshal strategy")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO campaigns (id, supplier_id, status, current_stage, stages,
			next_trigger_at, total_sent, cultural_strategy, deal_value_estimate)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.SupplierID, string(c.Status), c.CurrentStage, stagesJSON,
		c.NextTriggerAt, c.TotalSent, strategyJSON, c.DealValueEstimate,
	)
	if err != nil {
		return eris.Wrapf(err, "campaign: create for supplier %s", c.SupplierID)
	}
	return nil
}

// ActiveExists reports whether the supplier already has an active campaign.
func (s *PostgresStore) ActiveExists(ctx context.Context, supplierID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM campaigns WHERE supplier_id = $1 AND status = 'active')`,
		supplierID,
	).Scan(&exists)
	if err != nil {
		return false, eris.Wrapf(err, "campaign: check active for supplier %s", supplierID)
	}
	return exists, nil
}

// ListDue returns active campaigns whose trigger time has elapsed, oldest
// trigger first.
func (s *PostgresStore) ListDue(ctx context.Context, now time.Time, limit int) ([]model.Campaign, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns
		 WHERE status = 'active' AND next_trigger_at <= $1
		 ORDER BY next_trigger_at
		 LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "campaign: list due")
	}
	defer rows.Close()

	return scanCampaigns(rows)
}

// CommitAdvance writes an advanced campaign state produced by Advance. The
// update is conditional on the stage the caller read, so when two
// advancement runs race over the same campaign exactly one commit wins;
// the loser gets claimed=false and skips the campaign for this run.
func (s *PostgresStore) CommitAdvance(ctx context.Context, next model.Campaign, prevStage int) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE campaigns
		 SET status = $1, current_stage = $2, next_trigger_at = $3,
			 total_sent = $4, updated_at = $5
		 WHERE id = $6 AND current_stage = $7 AND status = 'active'`,
		string(next.Status), next.CurrentStage, next.NextTriggerAt,
		next.TotalSent, next.UpdatedAt, next.ID, prevStage,
	)
	if err != nil {
		return false, eris.Wrapf(err, "campaign: commit advance %s", next.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// CountActive returns the number of active campaigns.
func (s *PostgresStore) CountActive(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM campaigns WHERE status = 'active'`,
	).Scan(&n)
	if err != nil {
		return 0, eris.Wrap(err, "campaign: count active")
	}
	return n, nil
}

func scanCampaigns(rows pgx.Rows) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	for rows.Next() {
		var c model.Campaign
		var status string
		var stagesJSON, strategyJSON []byte
		if err := rows.Scan(
			&c.ID, &c.SupplierID, &status, &c.CurrentStage, &stagesJSON,
			&c.NextTriggerAt, &c.TotalSent, &strategyJSON, &c.DealValueEstimate,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, eris.Wrap(err, "campaign: scan campaign")
		}
		c.Status = model.CampaignStatus(status)
		if err := json.Unmarshal(stagesJSON, &c.Stages); err != nil {
			return nil, eris.Wrapf(err, "campaign: unmarshal stages for %s", c.ID)
		}
		if err := json.Unmarshal(strategyJSON, &c.CulturalStrategy); err != nil {
			return nil, eris.Wrapf(err, "campaign: unmarshal strategy for %s", c.ID)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
