package runrepo

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

// RunRepository implementa domain.RunRepository sobre o PostgreSQL.
type RunRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

var _ domain.RunRepository = (*RunRepository)(nil)

// NewRunRepository cria e retorna uma nova instância do repositório de execuções.
func NewRunRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *RunRepository {
	return &RunRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const runColumns = `id, layout_id, mode, move_count, top_labels, final_state, created_at`

func scanRun(row interface{ Scan(...interface{}) error }) (domain.Run, error) {
	var (
		run      domain.Run
		layoutID sql.NullString
	)
	err := row.Scan(&run.ID, &layoutID, &run.Mode, &run.MoveCount, &run.TopLabels, &run.FinalState, &run.CreatedAt)
	if layoutID.Valid {
		run.LayoutID = &layoutID.String
	}
	return run, err
}

// SaveRun grava uma execução concluída.
func (r *RunRepository) SaveRun(ctx context.Context, run domain.Run) (domain.Run, error) {
	r.logger.Debug("Gravando execução no repositório.", map[string]interface{}{"mode": run.Mode, "moves": run.MoveCount})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO runs (id, layout_id, mode, move_count, top_labels, final_state, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + runColumns

	saved, err := scanRun(r.DB.QueryRowContext(ctxTimeout, query,
		run.ID, run.LayoutID, run.Mode, run.MoveCount, run.TopLabels, run.FinalState, run.CreatedAt,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir execução no DB.", err)
		return domain.Run{}, apperror.NewDBError("Falha ao gravar execução", err)
	}

	r.logger.Info("Execução gravada.", map[string]interface{}{"id": saved.ID, "top_labels": saved.TopLabels})
	return saved, nil
}

// GetRunByID busca uma execução pelo ID.
func (r *RunRepository) GetRunByID(ctx context.Context, id string) (domain.Run, error) {
	r.logger.Debug("Buscando execução no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	run, err := scanRun(r.DB.QueryRowContext(ctxTimeout, `SELECT `+runColumns+` FROM runs WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Run{}, apperror.NewNotFoundError(fmt.Sprintf("Execução com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar execução no DB.", err)
		return domain.Run{}, apperror.NewDBError("Falha ao buscar execução", err)
	}
	return run, nil
}

// ListRuns lista as execuções mais recentes.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+runColumns+` FROM runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error("Falha ao listar execuções no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar execuções", err)
	}
	defer rows.Close()

	runs := []domain.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao ler execução", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar execuções", err)
	}
	return runs, nil
}
