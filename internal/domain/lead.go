package domain

import "time"

type LeadStatus string

const (
	LeadNew       LeadStatus = "NEW"
	LeadContacted LeadStatus = "CONTACTED"
	LeadQualified LeadStatus = "QUALIFIED"
	LeadConverted LeadStatus = "CONVERTED" // terminal
	LeadLost      LeadStatus = "LOST"
)

type LeadSource string

const (
	SourceWebsite        LeadSource = "WEBSITE"
	SourceWebsiteContact LeadSource = "WEBSITE_CONTACT"
	SourceReferral       LeadSource = "REFERRAL"
	SourceLinkedIn       LeadSource = "LINKEDIN"
	SourceConference     LeadSource = "CONFERENCE"
	SourceDirect         LeadSource = "DIRECT"
	SourcePartner        LeadSource = "PARTNER"
	SourceOther          LeadSource = "OTHER"
)

type Lead struct {
	ID               int64      `json:"id"`
	TenantID         *string    `json:"tenant_id,omitempty"`
	Email            string     `json:"email" validate:"required,email"`
	Name             string     `json:"name"`
	Company          string     `json:"company,omitempty"`
	ServiceInterest  string     `json:"service_interest,omitempty"`
	Source           LeadSource `json:"source"`
	Status           LeadStatus `json:"status"`
	OwnerID          *int64     `json:"owner_id,omitempty"`
	ClientID         *int64     `json:"client_id,omitempty"`
	PrimaryContactID *int64     `json:"primary_contact_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsConverted reports whether the lead reached its terminal status.
func (l *Lead) IsConverted() bool {
	return l.Status == LeadConverted
}

// DisplayName falls back to the email when no name was captured.
func (l *Lead) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Email
}

// CompanyOrEmail is the label used when naming entities derived from the lead.
func (l *Lead) CompanyOrEmail() string {
	if l.Company != "" {
		return l.Company
	}
	return l.Email
}
