package domain

import "time"

type StageType string

const (
	StageOpen StageType = "OPEN"
	StageWon  StageType = "WON"
	StageLost StageType = "LOST"
)

type Stage struct {
	ID          int64     `json:"id"`
	PipelineID  int64     `json:"pipeline_id"`
	Name        string    `json:"name"`
	SortOrder   int       `json:"sort_order"`
	Probability int       `json:"probability"` // 0-100
	Type        StageType `json:"type"`
	Color       string    `json:"color,omitempty"`
}

type Pipeline struct {
	ID        int64     `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
	IsActive  bool      `json:"is_active"`
	Stages    []Stage   `json:"stages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitialStage picks the stage a new opportunity enters: the first OPEN stage
// in pipeline order. Pipelines without any OPEN stage fall back to the first
// stage regardless of type.
func (p *Pipeline) InitialStage() *Stage {
	if len(p.Stages) == 0 {
		return nil
	}
	for i := range p.Stages {
		if p.Stages[i].Type == StageOpen {
			return &p.Stages[i]
		}
	}
	return &p.Stages[0]
}

// DefaultStages is the canonical stage set a tenant's default pipeline is
// bootstrapped with on first use.
func DefaultStages() []Stage {
	return []Stage{
		{Name: "New Lead", SortOrder: 1, Probability: 10, Type: StageOpen, Color: "#3B82F6"},
		{Name: "Qualified", SortOrder: 2, Probability: 30, Type: StageOpen, Color: "#8B5CF6"},
		{Name: "Proposal", SortOrder: 3, Probability: 50, Type: StageOpen, Color: "#F59E0B"},
		{Name: "Negotiation", SortOrder: 4, Probability: 75, Type: StageOpen, Color: "#F97316"},
		{Name: "Closed Won", SortOrder: 5, Probability: 100, Type: StageWon, Color: "#22C55E"},
		{Name: "Closed Lost", SortOrder: 6, Probability: 0, Type: StageLost, Color: "#EF4444"},
	}
}
