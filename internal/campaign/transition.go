package campaign

import (
	"time"

	"github.com/sells-group/outreach-cli/internal/model"
)

// Advance applies one stage transition to an immutable campaign snapshot and
// returns the next state. It does not touch storage; the caller commits the
// result with a conditional write keyed on the snapshot's CurrentStage.
//
// The caller is responsible for the precondition (status active, due at
// `now`); Advance itself is total and deterministic.
func Advance(c model.Campaign, now time.Time) model.Campaign {
	next := c
	next.TotalSent++
	next.UpdatedAt = now

	if c.CurrentStage >= len(c.Stages) {
		// Sent the last stage: move to the past-the-end sentinel.
		next.CurrentStage = len(c.Stages) + 1
		next.Status = model.CampaignCompleted
		next.NextTriggerAt = nil
		return next
	}

	next.CurrentStage = c.CurrentStage + 1
	trigger := now.AddDate(0, 0, next.Stages[next.CurrentStage-1].OffsetDays)
	next.NextTriggerAt = &trigger
	return next
}
