package operatorrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/logger"
)

// uniqueViolation é o código SQLSTATE do PostgreSQL para chave única duplicada.
const uniqueViolation = "23505"

// OperatorRepository implementa domain.OperatorRepository.
type OperatorRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

var _ domain.OperatorRepository = (*OperatorRepository)(nil)

// NewOperatorRepository cria uma nova instância do repositório de operadores.
func NewOperatorRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *OperatorRepository {
	return &OperatorRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Save insere um novo operador. E-mail duplicado vira ConflictError.
func (r *OperatorRepository) Save(ctx context.Context, operator domain.Operator) (domain.Operator, error) {
	r.logger.Debug("Iniciando Save de operador no repositório.", map[string]interface{}{"email": operator.Email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	operator.ID = uuid.NewString()
	operator.CreatedAt = time.Now().UTC()
	operator.UpdatedAt = operator.CreatedAt

	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO operators (id, email, password_hash, role, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		operator.ID, operator.Email, operator.PasswordHash, operator.Role, operator.CreatedAt, operator.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.Operator{}, apperror.NewConflictError(fmt.Sprintf("O email '%s' já está em uso.", operator.Email))
		}
		r.logger.Error("Falha ao inserir operador no DB.", err)
		return domain.Operator{}, apperror.NewDBError("Falha ao inserir operador", err)
	}

	r.logger.Info("Operador salvo com sucesso.", map[string]interface{}{"operator_id": operator.ID})
	return operator, nil
}

// FindByEmail busca um operador pelo e-mail.
func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (domain.Operator, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var op domain.Operator
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT id, email, password_hash, role, created_at, updated_at FROM operators WHERE email = $1`, email,
	).Scan(&op.ID, &op.Email, &op.PasswordHash, &op.Role, &op.CreatedAt, &op.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Operator{}, apperror.NewNotFoundError(fmt.Sprintf("Operador com email '%s' não encontrado", email))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar operador por email no DB.", err)
		return domain.Operator{}, apperror.NewDBError("Falha ao buscar operador", err)
	}
	return op, nil
}
