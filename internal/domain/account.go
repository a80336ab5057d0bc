package domain

import "time"

type AccountType string

const (
	AccountProspect AccountType = "PROSPECT"
	AccountCustomer AccountType = "CUSTOMER"
	AccountPartner  AccountType = "PARTNER"
)

// Metadata keys recorded on accounts and opportunities created by lead
// conversion, so sales-side records can be traced back to their origin.
const (
	MetaLegacyClientID = "legacy_client_id"
	MetaSourceLeadID   = "converted_from_lead_id"
	MetaProvenance     = "provenance"

	ProvenanceLeadConversion = "lead_conversion"
)

type Account struct {
	ID       int64       `json:"id"`
	TenantID string      `json:"tenant_id"`
	Name     string      `json:"name" validate:"required"`
	Industry string      `json:"industry,omitempty"`
	Type     AccountType `json:"type"`
	OwnerID  int64       `json:"owner_id"`

	// ClientID is the explicit link to the delivery-side client record.
	// Nullable: accounts may exist for prospects that never had a client.
	ClientID *int64 `json:"client_id,omitempty"`

	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
