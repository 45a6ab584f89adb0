// Package advance runs the scheduled stage-advancement batch: it claims due
// campaigns, dispatches the current stage, and commits the transition.
package advance

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
)

// Dispatcher delivers one stage of a campaign to its supplier. Dispatch
// happens before the transition commits, so delivery is at-least-once: a
// commit lost to a conflict or crash means the stage may be dispatched again
// on a later run.
type Dispatcher interface {
	Dispatch(ctx context.Context, c *model.Campaign, stage *model.StageDefinition) error
}

// LogDispatcher records each send as a structured log line. It stands in for
// a real email provider in environments without one.
type LogDispatcher struct{}

// NewLogDispatcher creates a LogDispatcher.
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

// Dispatch logs the outgoing stage.
func (d *LogDispatcher) Dispatch(_ context.Context, c *model.Campaign, stage *model.StageDefinition) error {
	zap.L().Info("dispatching campaign stage",
		zap.String("campaign_id", c.ID),
		zap.String("supplier_id", c.SupplierID),
		zap.Int("stage", stage.StageIndex),
		zap.String("stage_type", string(stage.Type)),
		zap.String("subject", stage.Subject),
	)
	return nil
}
