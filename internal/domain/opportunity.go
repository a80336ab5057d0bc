package domain

import "time"

type OpportunityStatus string

const (
	OpportunityOpen OpportunityStatus = "OPEN"
	OpportunityWon  OpportunityStatus = "WON"
	OpportunityLost OpportunityStatus = "LOST"
)

type OpportunitySource string

const (
	OppSourceWebsite     OpportunitySource = "WEBSITE"
	OppSourceReferral    OpportunitySource = "REFERRAL"
	OppSourceSocialMedia OpportunitySource = "SOCIAL_MEDIA"
	OppSourceEvent       OpportunitySource = "EVENT"
	OppSourceOutbound    OpportunitySource = "OUTBOUND"
	OppSourcePartner     OpportunitySource = "PARTNER"
	OppSourceOther       OpportunitySource = "OTHER"
)

// DefaultCurrency is the single currency unit opportunities are created in.
const DefaultCurrency = "USD"

type Opportunity struct {
	ID                int64             `json:"id"`
	TenantID          string            `json:"tenant_id"`
	Name              string            `json:"name"`
	AccountID         int64             `json:"account_id"`
	PipelineID        int64             `json:"pipeline_id"`
	StageID           int64             `json:"stage_id"`
	Amount            *float64          `json:"amount,omitempty"`
	Probability       int               `json:"probability"` // 0-100
	WeightedAmount    *float64          `json:"weighted_amount,omitempty"`
	Currency          string            `json:"currency"`
	Status            OpportunityStatus `json:"status"`
	ExpectedCloseDate *time.Time        `json:"expected_close_date,omitempty"`
	Source            OpportunitySource `json:"source"`
	OwnerID           int64             `json:"owner_id"`
	Metadata          map[string]any    `json:"metadata,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// WeightedAmount is the probability-adjusted expected value. Nil when no
// amount is known.
func WeightedAmount(amount *float64, probability int) *float64 {
	if amount == nil {
		return nil
	}
	w := *amount * float64(probability) / 100
	return &w
}

// StageHistory records an opportunity entering a stage.
type StageHistory struct {
	ID            int64     `json:"id"`
	OpportunityID int64     `json:"opportunity_id"`
	StageID       int64     `json:"stage_id"`
	ChangedBy     int64     `json:"changed_by"`
	ChangedAt     time.Time `json:"changed_at"`
}
