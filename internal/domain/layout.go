package domain

import (
	"context"
	"time"
)

// Layout é um diagrama de armazém salvo com um nome, usado como ponto de partida de simulações.
type Layout struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Diagram   string    `json:"diagram"`
	PileCount int       `json:"pile_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LayoutRepository define o contrato de persistência para layouts.
type LayoutRepository interface {
	CreateLayout(ctx context.Context, layout Layout) (Layout, error)
	GetLayoutByID(ctx context.Context, id string) (Layout, error)
	GetAllLayouts(ctx context.Context) ([]Layout, error)
	UpdateLayout(ctx context.Context, layout Layout) (Layout, error)
	DeleteLayout(ctx context.Context, id string) error
}
