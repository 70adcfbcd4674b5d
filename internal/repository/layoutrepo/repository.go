package layoutrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/logger"
)

// LayoutRepository implementa domain.LayoutRepository sobre o PostgreSQL.
type LayoutRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

var _ domain.LayoutRepository = (*LayoutRepository)(nil)

// NewLayoutRepository cria e retorna uma nova instância do repositório de layouts.
func NewLayoutRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *LayoutRepository {
	return &LayoutRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const layoutColumns = `id, name, diagram, pile_count, created_at, updated_at`

func scanLayout(row interface{ Scan(...interface{}) error }) (domain.Layout, error) {
	var l domain.Layout
	err := row.Scan(&l.ID, &l.Name, &l.Diagram, &l.PileCount, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// CreateLayout insere um novo layout.
func (r *LayoutRepository) CreateLayout(ctx context.Context, layout domain.Layout) (domain.Layout, error) {
	r.logger.Debug("Iniciando CreateLayout no repositório.", map[string]interface{}{"name": layout.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if layout.ID == "" {
		layout.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	layout.CreatedAt = now
	layout.UpdatedAt = now

	query := `
        INSERT INTO layouts (id, name, diagram, pile_count, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + layoutColumns

	created, err := scanLayout(r.DB.QueryRowContext(ctxTimeout, query,
		layout.ID, layout.Name, layout.Diagram, layout.PileCount, layout.CreatedAt, layout.UpdatedAt,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir layout no DB.", err)
		return domain.Layout{}, apperror.NewDBError("Falha ao criar layout", err)
	}

	r.logger.Info("Layout criado com sucesso.", map[string]interface{}{"id": created.ID, "name": created.Name})
	return created, nil
}

// GetLayoutByID busca um layout pelo ID.
func (r *LayoutRepository) GetLayoutByID(ctx context.Context, id string) (domain.Layout, error) {
	r.logger.Debug("Iniciando GetLayoutByID no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + layoutColumns + ` FROM layouts WHERE id = $1`

	layout, err := scanLayout(r.DB.QueryRowContext(ctxTimeout, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Layout não encontrado.", map[string]interface{}{"id": id})
		return domain.Layout{}, apperror.NewNotFoundError(fmt.Sprintf("Layout com ID %s não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar layout no DB.", err)
		return domain.Layout{}, apperror.NewDBError("Falha ao buscar layout", err)
	}
	return layout, nil
}

// GetAllLayouts lista todos os layouts, do mais recente para o mais antigo.
func (r *LayoutRepository) GetAllLayouts(ctx context.Context) ([]domain.Layout, error) {
	r.logger.Debug("Iniciando GetAllLayouts no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + layoutColumns + ` FROM layouts ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao listar layouts no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar layouts", err)
	}
	defer rows.Close()

	layouts := []domain.Layout{}
	for rows.Next() {
		l, err := scanLayout(rows)
		if err != nil {
			r.logger.Error("Falha ao ler linha de layout.", err)
			return nil, apperror.NewDBError("Falha ao ler layout", err)
		}
		layouts = append(layouts, l)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro ao iterar layouts.", err)
		return nil, apperror.NewDBError("Falha ao iterar layouts", err)
	}

	r.logger.Debug("Layouts listados.", map[string]interface{}{"count": len(layouts)})
	return layouts, nil
}

// UpdateLayout atualiza nome e diagrama de um layout existente.
func (r *LayoutRepository) UpdateLayout(ctx context.Context, layout domain.Layout) (domain.Layout, error) {
	r.logger.Debug("Iniciando UpdateLayout no repositório.", map[string]interface{}{"id": layout.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE layouts
        SET name = $1, diagram = $2, pile_count = $3, updated_at = $4
        WHERE id = $5
        RETURNING ` + layoutColumns

	updated, err := scanLayout(r.DB.QueryRowContext(ctxTimeout, query,
		layout.Name, layout.Diagram, layout.PileCount, time.Now().UTC(), layout.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Layout{}, apperror.NewNotFoundError(fmt.Sprintf("Layout com ID %s não encontrado para atualização.", layout.ID))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar layout no DB.", err)
		return domain.Layout{}, apperror.NewDBError("Falha ao atualizar layout", err)
	}

	r.logger.Info("Layout atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// DeleteLayout remove um layout. Execuções antigas mantêm o ID como referência solta.
func (r *LayoutRepository) DeleteLayout(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando DeleteLayout no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM layouts WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar layout no DB.", err)
		return apperror.NewDBError("Falha ao deletar layout", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao verificar exclusão do layout", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Layout com ID %s não encontrado para exclusão.", id))
	}

	r.logger.Info("Layout deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}
