package model

import "time"

// CampaignStatus represents the campaign state machine: active is the only
// initial state, completed the only terminal one.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// StageType identifies one of the four fixed touchpoints in a sequence.
type StageType string

const (
	StageInitialContact     StageType = "initial_contact"
	StageValueDemonstration StageType = "value_demonstration"
	StageUrgencyCreation    StageType = "urgency_creation"
	StageClosingSequence    StageType = "closing_sequence"
)

// StageDefinition is one planned touchpoint within a campaign. Body is
// resolved once at campaign creation and immutable afterwards.
type StageDefinition struct {
	StageIndex int       `json:"stage_index"`
	Type       StageType `json:"stage_type"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	OffsetDays int       `json:"offset_days"` // days since the previous stage
}

// StrategySnapshot is the cultural strategy persisted verbatim into the
// campaign at creation for audit. It is never recomputed.
type StrategySnapshot struct {
	Country            string   `json:"country"`
	Approach           string   `json:"approach"`
	KeyTalkingPoints   []string `json:"key_talking_points"`
	CommunicationStyle string   `json:"communication_style"`
	PreferredTitles    []string `json:"preferred_titles"`
	CatalogVersion     string   `json:"catalog_version"`
}

// Campaign is the outreach lifecycle for exactly one supplier.
//
// Invariants: 1 <= CurrentStage <= len(Stages)+1; CurrentStage == len+1 only
// when completed with a null trigger; NextTriggerAt is non-nil iff active.
type Campaign struct {
	ID                string            `json:"id"`
	SupplierID        string            `json:"supplier_id"`
	Status            CampaignStatus    `json:"status"`
	CurrentStage      int               `json:"current_stage"`
	Stages            []StageDefinition `json:"stages"`
	NextTriggerAt     *time.Time        `json:"next_trigger_at,omitempty"`
	TotalSent         int               `json:"total_sent"`
	CulturalStrategy  StrategySnapshot  `json:"cultural_strategy"`
	DealValueEstimate int64             `json:"deal_value_estimate"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// CurrentStageDefinition returns the stage the campaign is currently on, or
// nil when the campaign has moved past its last stage.
func (c *Campaign) CurrentStageDefinition() *StageDefinition {
	if c.CurrentStage < 1 || c.CurrentStage > len(c.Stages) {
		return nil
	}
	return &c.Stages[c.CurrentStage-1]
}

// Due reports whether the campaign should be advanced at the given time.
func (c *Campaign) Due(now time.Time) bool {
	return c.Status == CampaignActive && c.NextTriggerAt != nil && !now.Before(*c.NextTriggerAt)
}
