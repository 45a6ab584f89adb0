package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/outreach-cli/internal/model"
)

func fourStageCampaign(stage int) model.Campaign {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	trigger := now
	return model.Campaign{
		ID:           "camp-1",
		SupplierID:   "sup-1",
		Status:       model.CampaignActive,
		CurrentStage: stage,
		Stages: []model.StageDefinition{
			{StageIndex: 1, Type: model.StageInitialContact, Subject: "s1", Body: "b1", OffsetDays: 0},
			{StageIndex: 2, Type: model.StageValueDemonstration, Subject: "s2", Body: "b2", OffsetDays: 3},
			{StageIndex: 3, Type: model.StageUrgencyCreation, Subject: "s3", Body: "b3", OffsetDays: 6},
			{StageIndex: 4, Type: model.StageClosingSequence, Subject: "s4", Body: "b4", OffsetDays: 9},
		},
		NextTriggerAt: &trigger,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestAdvance_MidSequence(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fourStageCampaign(1)

	next := Advance(c, now)
	assert.Equal(t, 2, next.CurrentStage)
	assert.Equal(t, model.CampaignActive, next.Status)
	assert.Equal(t, 1, next.TotalSent)
	require.NotNil(t, next.NextTriggerAt)
	assert.Equal(t, now.AddDate(0, 0, 3), *next.NextTriggerAt, "trigger uses the newly current stage's offset")

	// The input snapshot is untouched.
	assert.Equal(t, 1, c.CurrentStage)
	assert.Equal(t, 0, c.TotalSent)
}

func TestAdvance_FinalStageCompletes(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c := fourStageCampaign(4)
	c.TotalSent = 3

	next := Advance(c, now)
	assert.Equal(t, model.CampaignCompleted, next.Status)
	assert.Equal(t, len(c.Stages)+1, next.CurrentStage, "completed campaigns sit past the last stage")
	assert.Nil(t, next.NextTriggerAt)
	assert.Equal(t, 4, next.TotalSent)
}

func TestAdvance_FullWalk(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	c := fourStageCampaign(1)

	now := start
	for i := 0; i < 4; i++ {
		require.Equal(t, model.CampaignActive, c.Status)
		stage := c.CurrentStageDefinition()
		require.NotNil(t, stage)

		c = Advance(c, now)
		if c.NextTriggerAt != nil {
			now = *c.NextTriggerAt
		}
	}

	assert.Equal(t, model.CampaignCompleted, c.Status)
	assert.Equal(t, 5, c.CurrentStage)
	assert.Nil(t, c.NextTriggerAt)
	assert.Equal(t, 4, c.TotalSent)
	assert.Nil(t, c.CurrentStageDefinition())

	// 0 + 3 + 6 + 9 day gaps put the last send 18 days in.
	assert.Equal(t, start.AddDate(0, 0, 18), c.UpdatedAt)
}

func TestCampaignDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fourStageCampaign(1)

	assert.True(t, c.Due(now))
	assert.False(t, c.Due(now.Add(-time.Minute)))

	c.Status = model.CampaignCompleted
	c.NextTriggerAt = nil
	assert.False(t, c.Due(now))
}
