package campaign

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func TestCreate_AssignsIDAndPersists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO campaigns").
		WithArgs(pgxmock.AnyArg(), "sup-1", "active", 1, pgxmock.AnyArg(),
			pgxmock.AnyArg(), 0, pgxmock.AnyArg(), int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	c := fourStageCampaign(1)
	c.ID = ""

	store := NewPostgresStore(mock)
	require.NoError(t, store.Create(context.Background(), &c))
	assert.NotEmpty(t, c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RejectsIncompleteSequences(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStore(mock)

	empty := fourStageCampaign(1)
	empty.Stages = nil
	assert.Error(t, store.Create(context.Background(), &empty))

	blank := fourStageCampaign(1)
	blank.Stages[2].Body = ""
	assert.Error(t, store.Create(context.Background(), &blank))

	// No writes reach the store.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sup-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	store := NewPostgresStore(mock)
	exists, err := store.ActiveExists(context.Background(), "sup-1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDue_ScansCampaigns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	c := fourStageCampaign(2)
	stagesJSON, err := json.Marshal(c.Stages)
	require.NoError(t, err)
	strategyJSON, err := json.Marshal(c.CulturalStrategy)
	require.NoError(t, err)

	now := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM campaigns").
		WithArgs(now, 50).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "supplier_id", "status", "current_stage", "stages",
			"next_trigger_at", "total_sent", "cultural_strategy",
			"deal_value_estimate", "created_at", "updated_at",
		}).AddRow(
			c.ID, c.SupplierID, string(c.Status), c.CurrentStage, stagesJSON,
			c.NextTriggerAt, c.TotalSent, strategyJSON,
			c.DealValueEstimate, c.CreatedAt, c.UpdatedAt,
		))

	store := NewPostgresStore(mock)
	due, err := store.ListDue(context.Background(), now, 50)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, c.ID, due[0].ID)
	assert.Equal(t, 2, due[0].CurrentStage)
	assert.Len(t, due[0].Stages, 4)
	assert.Equal(t, model.StageValueDemonstration, due[0].Stages[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitAdvance_Claimed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	next := Advance(fourStageCampaign(1), now)

	mock.ExpectExec("UPDATE campaigns").
		WithArgs("active", 2, next.NextTriggerAt, 1, now, "camp-1", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	store := NewPostgresStore(mock)
	claimed, err := store.CommitAdvance(context.Background(), next, 1)
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitAdvance_LostRace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	next := Advance(fourStageCampaign(1), now)

	// A concurrent run already moved the row past stage 1.
	mock.ExpectExec("UPDATE campaigns").
		WithArgs("active", 2, next.NextTriggerAt, 1, now, "camp-1", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	store := NewPostgresStore(mock)
	claimed, err := store.CommitAdvance(context.Background(), next, 1)
	require.NoError(t, err)
	assert.False(t, claimed, "losing the race is a skip, not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM campaigns`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	store := NewPostgresStore(mock)
	n, err := store.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
