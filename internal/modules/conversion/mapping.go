package conversion

import "leadhub/internal/domain"

// leadSourceMap is total over the legacy lead source enum: every value has
// exactly one CRM-side counterpart.
var leadSourceMap = map[domain.LeadSource]domain.OpportunitySource{
	domain.SourceWebsite:        domain.OppSourceWebsite,
	domain.SourceWebsiteContact: domain.OppSourceWebsite,
	domain.SourceReferral:       domain.OppSourceReferral,
	domain.SourceLinkedIn:       domain.OppSourceSocialMedia,
	domain.SourceConference:     domain.OppSourceEvent,
	domain.SourceDirect:         domain.OppSourceOutbound,
	domain.SourcePartner:        domain.OppSourcePartner,
	domain.SourceOther:          domain.OppSourceOther,
}

func mapLeadSource(s domain.LeadSource) domain.OpportunitySource {
	if mapped, ok := leadSourceMap[s]; ok {
		return mapped
	}
	return domain.OppSourceOther
}
