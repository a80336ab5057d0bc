package repository

import "gorm.io/gorm"

// Migrate creates the schema. The partial unique index on pipelines is what
// makes the default-pipeline bootstrap race-safe: two concurrent conversions
// for the same tenant cannot both insert a default pipeline, the loser's
// transaction fails on the constraint and rolls back.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userRow{},
		&leadRow{},
		&clientRow{},
		&contactRow{},
		&projectRow{},
		&accountRow{},
		&pipelineRow{},
		&stageRow{},
		&opportunityRow{},
		&stageHistoryRow{},
	)
	if err != nil {
		return err
	}

	// Partial index syntax is shared by postgres and sqlite.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_pipelines_tenant_default
		 ON pipelines (tenant_id) WHERE is_default`,
	).Error
}
