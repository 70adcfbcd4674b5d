package domain

import (
	"context"
	"time"
)

// SimulationRequest é o payload de uma simulação. Input traz o texto completo
// (diagrama, linha em branco, instruções). Quando LayoutID é informado, o diagrama
// vem do layout salvo e Moves traz apenas as instruções.
type SimulationRequest struct {
	Input    string   `json:"input,omitempty"`
	LayoutID string   `json:"layout_id,omitempty"`
	Moves    []string `json:"moves,omitempty"`
	Mode     MoveMode `json:"mode" example:"single"`
}

// Run é o registro de uma simulação concluída.
type Run struct {
	ID         string    `json:"id"`
	LayoutID   *string   `json:"layout_id,omitempty"`
	Mode       MoveMode  `json:"mode"`
	MoveCount  int       `json:"move_count"`
	TopLabels  string    `json:"top_labels" example:"CMZ"`
	FinalState string    `json:"final_state"`
	CreatedAt  time.Time `json:"created_at"`
}

// RunRepository define o contrato de persistência para execuções.
type RunRepository interface {
	SaveRun(ctx context.Context, run Run) (Run, error)
	GetRunByID(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}
