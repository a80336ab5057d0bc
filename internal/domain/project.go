package domain

import "time"

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "PLANNING"
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

type Project struct {
	ID        int64         `json:"id"`
	ClientID  int64         `json:"client_id" validate:"required"`
	OwnerID   int64         `json:"owner_id" validate:"required"`
	Name      string        `json:"name" validate:"required"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
