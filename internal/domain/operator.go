package domain

import (
	"context"
	"time"
)

// Operator é quem opera o guindaste pela API.
type Operator struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         OperatorRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// OperatorRole é o papel do operador no sistema.
type OperatorRole string

const (
	// RoleAdmin pode alterar layouts.
	RoleAdmin OperatorRole = "admin"
	// RoleOperator pode executar simulações e consultar layouts.
	RoleOperator OperatorRole = "operator"
)

// OperatorRegistration representa o payload de entrada para o registro.
type OperatorRegistration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OperatorRepository define o contrato de persistência para operadores.
type OperatorRepository interface {
	Save(ctx context.Context, operator Operator) (Operator, error)
	FindByEmail(ctx context.Context, email string) (Operator, error)
}
