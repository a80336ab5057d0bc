package conversion

import (
	"time"

	"leadhub/internal/domain"
)

// ConvertLeadRequest is the wire shape. Every flag defaults to "do nothing".
// PipelineStage and PipelineValue are the legacy opportunity fields older
// clients still send; either one implies create_opportunity.
type ConvertLeadRequest struct {
	ClientID      *int64 `json:"client_id"`
	CreateClient  bool   `json:"create_client"`
	CreateContact bool   `json:"create_contact"`
	ContactRole   string `json:"contact_role"`
	CreateProject bool   `json:"create_project"`
	ProjectName   string `json:"project_name"`
	OwnerID       *int64 `json:"owner_id"`

	CreateOpportunity      bool       `json:"create_opportunity"`
	PipelineStage          string     `json:"pipeline_stage"` // legacy
	PipelineValue          *float64   `json:"pipeline_value"` // legacy
	OpportunityName        string     `json:"opportunity_name"`
	OpportunityAmount      *float64   `json:"opportunity_amount"`
	OpportunityProbability *int       `json:"opportunity_probability" binding:"omitempty,min=0,max=100"`
	ExpectedCloseDate      *time.Time `json:"expected_close_date"`
}

// conversionRequest is the canonical internal request. Legacy and current
// shapes are folded together here once, so the engine never branches on
// legacy fields.
type conversionRequest struct {
	clientID          *int64
	createClient      bool
	createContact     bool
	contactRole       string
	createProject     bool
	projectName       string
	ownerID           *int64
	createOpportunity bool
	opportunityName   string
	amount            *float64
	probability       *int
	closeDate         *time.Time
}

func (r *ConvertLeadRequest) normalize() conversionRequest {
	if r == nil {
		return conversionRequest{}
	}

	amount := r.OpportunityAmount
	if amount == nil {
		amount = r.PipelineValue
	}

	return conversionRequest{
		clientID:          r.ClientID,
		createClient:      r.CreateClient,
		createContact:     r.CreateContact,
		contactRole:       r.ContactRole,
		createProject:     r.CreateProject,
		projectName:       r.ProjectName,
		ownerID:           r.OwnerID,
		createOpportunity: r.CreateOpportunity || r.PipelineStage != "" || r.PipelineValue != nil,
		opportunityName:   r.OpportunityName,
		amount:            amount,
		probability:       r.OpportunityProbability,
		closeDate:         r.ExpectedCloseDate,
	}
}

// ConversionResult reports the updated lead and every id produced along the
// way. Each id is present only when its branch executed.
type ConversionResult struct {
	Lead          *domain.Lead `json:"lead"`
	ClientID      *int64       `json:"client_id,omitempty"`
	ContactID     *int64       `json:"contact_id,omitempty"`
	ProjectID     *int64       `json:"project_id,omitempty"`
	AccountID     *int64       `json:"account_id,omitempty"`
	OpportunityID *int64       `json:"opportunity_id,omitempty"`
}
