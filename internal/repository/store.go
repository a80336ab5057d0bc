package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles every repository over one database handle so a caller can run
// a multi-aggregate operation atomically: Transaction hands the callback a
// Store rebound to the transaction connection.
type Store struct {
	db *gorm.DB

	Users        *UserRepository
	Leads        *LeadRepository
	Clients      *ClientRepository
	Contacts     *ContactRepository
	Projects     *ProjectRepository
	Accounts     *AccountRepository
	Pipelines    *PipelineRepository
	Opps         *OpportunityRepository
	StageHistory *StageHistoryRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Users:        NewUserRepository(db),
		Leads:        NewLeadRepository(db),
		Clients:      NewClientRepository(db),
		Contacts:     NewContactRepository(db),
		Projects:     NewProjectRepository(db),
		Accounts:     NewAccountRepository(db),
		Pipelines:    NewPipelineRepository(db),
		Opps:         NewOpportunityRepository(db),
		StageHistory: NewStageHistoryRepository(db),
	}
}

// Transaction runs fn inside one database transaction. Returning an error
// rolls back everything fn wrote through the transactional Store.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(txdb *gorm.DB) error {
		return fn(NewStore(txdb))
	})
}
