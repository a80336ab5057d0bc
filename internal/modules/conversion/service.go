package conversion

import (
	"context"
	"errors"
	"time"

	"leadhub/internal/domain"
	"leadhub/internal/repository"
)

// Service turns an inbound lead into its downstream records: client, contact,
// delivery project, sales account, default pipeline and opportunity. The whole
// operation runs inside one database transaction; any step failing rolls back
// everything written before it.
type Service struct {
	store *repository.Store
}

func NewService(store *repository.Store) *Service {
	return &Service{store: store}
}

// convState is threaded through the conversion steps. Each step takes the
// state and returns an updated copy instead of mutating shared locals.
type convState struct {
	lead     *domain.Lead
	tenantID *string
	req      conversionRequest

	clientID      *int64
	contactID     *int64
	projectID     *int64
	accountID     *int64
	opportunityID *int64
}

// ConvertLead executes the conversion. tenantID scopes the lead lookup and
// the sales-side records; when nil, the sales-side bootstrap is skipped
// entirely (opportunities are tenant-scoped).
func (s *Service) ConvertLead(ctx context.Context, leadID int64, tenantID *string, req *ConvertLeadRequest) (*ConversionResult, error) {
	creq := req.normalize()

	var result *ConversionResult
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		lead, err := tx.Leads.GetForTenant(ctx, leadID, tenantID)
		if err != nil {
			return err
		}
		if lead == nil {
			return ErrLeadNotFound
		}
		if lead.IsConverted() {
			return ErrAlreadyConverted
		}

		st := convState{lead: lead, tenantID: tenantID, req: creq}

		st, err = s.materializeEntities(ctx, tx, st)
		if err != nil {
			return err
		}

		st, err = s.bootstrapSalesSide(ctx, tx, st)
		if err != nil {
			return err
		}

		result, err = s.finalizeLead(ctx, tx, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// materializeEntities resolves or creates the client, contact and project.
// Every branch reuses an existing entity when one is already linked, so a
// conversion never produces duplicates.
func (s *Service) materializeEntities(ctx context.Context, tx *repository.Store, st convState) (convState, error) {
	now := time.Now()

	st.clientID = st.req.clientID
	if st.clientID == nil {
		st.clientID = st.lead.ClientID
	}
	if st.clientID == nil && st.req.createClient && st.lead.Company != "" {
		client := &domain.Client{
			Name:      st.lead.Company,
			Notes:     "Created from lead " + st.lead.Email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Clients.Create(ctx, client); err != nil {
			return st, err
		}
		st.clientID = &client.ID
	}

	st.contactID = st.lead.PrimaryContactID
	if st.contactID == nil && st.req.createContact && st.clientID != nil {
		contact := &domain.Contact{
			ClientID:  *st.clientID,
			Name:      st.lead.DisplayName(),
			Email:     st.lead.Email,
			Role:      st.req.contactRole,
			Notes:     "Converted from lead",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Contacts.Create(ctx, contact); err != nil {
			return st, err
		}
		st.contactID = &contact.ID
	}

	if st.req.createProject && st.clientID != nil {
		ownerID, err := s.resolveOwner(st)
		if err != nil {
			return st, err
		}
		name := st.req.projectName
		if name == "" {
			name = defaultDerivedName(st.lead)
		}
		project := &domain.Project{
			ClientID:  *st.clientID,
			OwnerID:   ownerID,
			Name:      name,
			Status:    domain.ProjectPlanning,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Projects.Create(ctx, project); err != nil {
			return st, err
		}
		st.projectID = &project.ID
	}

	return st, nil
}

// bootstrapSalesSide resolves or creates the account, ensures the tenant's
// default pipeline exists, and creates the opportunity plus its first stage
// history entry.
func (s *Service) bootstrapSalesSide(ctx context.Context, tx *repository.Store, st convState) (convState, error) {
	if !st.req.createOpportunity || st.tenantID == nil {
		return st, nil
	}
	tenant := *st.tenantID

	ownerID, err := s.resolveOwner(st)
	if err != nil {
		return st, err
	}

	account, err := s.resolveAccount(ctx, tx, st, tenant, ownerID)
	if err != nil {
		return st, err
	}

	pipeline, err := s.ensureDefaultPipeline(ctx, tx, tenant)
	if err != nil {
		return st, err
	}

	stage := pipeline.InitialStage()
	if stage == nil {
		return st, errors.New("pipeline has no stages")
	}

	probability := stage.Probability
	if st.req.probability != nil {
		probability = *st.req.probability
	}
	amount := st.req.amount

	name := st.req.opportunityName
	if name == "" {
		name = defaultDerivedName(st.lead)
	}

	now := time.Now()
	opp := &domain.Opportunity{
		TenantID:          tenant,
		Name:              name,
		AccountID:         account.ID,
		PipelineID:        pipeline.ID,
		StageID:           stage.ID,
		Amount:            amount,
		Probability:       probability,
		WeightedAmount:    domain.WeightedAmount(amount, probability),
		Currency:          domain.DefaultCurrency,
		Status:            domain.OpportunityOpen,
		ExpectedCloseDate: st.req.closeDate,
		Source:            mapLeadSource(st.lead.Source),
		OwnerID:           ownerID,
		Metadata: map[string]any{
			domain.MetaSourceLeadID: st.lead.ID,
			domain.MetaProvenance:   domain.ProvenanceLeadConversion,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.Opps.Create(ctx, opp); err != nil {
		return st, err
	}

	history := &domain.StageHistory{
		OpportunityID: opp.ID,
		StageID:       stage.ID,
		ChangedBy:     ownerID,
		ChangedAt:     now,
	}
	if err := tx.StageHistory.Create(ctx, history); err != nil {
		return st, err
	}

	st.accountID = &account.ID
	st.opportunityID = &opp.ID
	return st, nil
}

// resolveAccount looks up an existing account by client link first, then by
// exact name against the company name or lead email, and only creates a new
// one when neither matches.
func (s *Service) resolveAccount(ctx context.Context, tx *repository.Store, st convState, tenant string, ownerID int64) (*domain.Account, error) {
	if st.clientID != nil {
		account, err := tx.Accounts.FindByClientID(ctx, tenant, *st.clientID)
		if err != nil {
			return nil, err
		}
		if account != nil {
			return account, nil
		}
	}

	account, err := tx.Accounts.FindByName(ctx, tenant, st.lead.Company, st.lead.Email)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	name := st.lead.CompanyOrEmail()
	industry := ""
	if st.clientID != nil {
		client, err := tx.Clients.GetByID(ctx, *st.clientID)
		if err != nil {
			return nil, err
		}
		if client != nil {
			name = client.Name
			industry = client.Industry
		}
	}

	metadata := map[string]any{
		domain.MetaSourceLeadID: st.lead.ID,
		domain.MetaProvenance:   domain.ProvenanceLeadConversion,
	}
	if st.clientID != nil {
		metadata[domain.MetaLegacyClientID] = *st.clientID
	}

	now := time.Now()
	account = &domain.Account{
		TenantID:  tenant,
		Name:      name,
		Industry:  industry,
		Type:      domain.AccountProspect,
		OwnerID:   ownerID,
		ClientID:  st.clientID,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.Accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// ensureDefaultPipeline is the idempotent bootstrap: reuse the tenant's
// default pipeline or create it with the canonical stages. The partial unique
// index on (tenant_id) WHERE is_default makes concurrent bootstraps resolve
// deterministically: the loser's insert fails and its whole conversion rolls
// back.
func (s *Service) ensureDefaultPipeline(ctx context.Context, tx *repository.Store, tenant string) (*domain.Pipeline, error) {
	pipeline, err := tx.Pipelines.FindDefault(ctx, tenant)
	if err != nil {
		return nil, err
	}
	if pipeline != nil {
		return pipeline, nil
	}

	now := time.Now()
	pipeline = &domain.Pipeline{
		TenantID:  tenant,
		Name:      "Sales Pipeline",
		IsDefault: true,
		IsActive:  true,
		Stages:    domain.DefaultStages(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.Pipelines.Create(ctx, pipeline); err != nil {
		return nil, err
	}
	return pipeline, nil
}

// finalizeLead flips the lead to CONVERTED and links the resolved entities.
// The conditional update is the last word on double conversion: losing it
// here means another transaction won the race after our initial read.
func (s *Service) finalizeLead(ctx context.Context, tx *repository.Store, st convState) (*ConversionResult, error) {
	ok, err := tx.Leads.MarkConverted(ctx, st.lead.ID, st.clientID, st.contactID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyConverted
	}

	updated, err := tx.Leads.GetByID(ctx, st.lead.ID)
	if err != nil {
		return nil, err
	}

	return &ConversionResult{
		Lead:          updated,
		ClientID:      st.clientID,
		ContactID:     st.contactID,
		ProjectID:     st.projectID,
		AccountID:     st.accountID,
		OpportunityID: st.opportunityID,
	}, nil
}

func (s *Service) resolveOwner(st convState) (int64, error) {
	if st.req.ownerID != nil {
		return *st.req.ownerID, nil
	}
	if st.lead.OwnerID != nil {
		return *st.lead.OwnerID, nil
	}
	return 0, ErrMissingOwner
}

// defaultDerivedName is the "{company-or-email} - {service interest}" label
// used for projects and opportunities when no explicit name is supplied.
func defaultDerivedName(lead *domain.Lead) string {
	base := lead.CompanyOrEmail()
	if lead.ServiceInterest == "" {
		return base
	}
	return base + " - " + lead.ServiceInterest
}
