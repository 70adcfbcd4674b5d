package simulationservice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gocrane/internal/crane"
	"gocrane/internal/diagram"
	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/cache"
	"gocrane/internal/pkg/logger"
	"gocrane/internal/puzzle"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// LayoutReader é a parte do repositório de layouts usada aqui.
type LayoutReader interface {
	GetLayoutByID(ctx context.Context, id string) (domain.Layout, error)
}

// Options ajusta o comportamento do serviço.
type Options struct {
	DefaultMode   domain.MoveMode
	CacheTTL      time.Duration
	MaxInputBytes int64
}

// Service executa simulações, grava as execuções e guarda os resultados em cache.
type Service struct {
	runs     domain.RunRepository
	layouts  LayoutReader
	cache    cache.Client
	executor *crane.Executor
	logger   logger.Logger
	opts     Options
}

// NewService cria o serviço. cacheClient pode ser nil: nesse caso toda simulação é executada.
func NewService(runs domain.RunRepository, layouts LayoutReader, cacheClient cache.Client, log logger.Logger, opts Options) *Service {
	if opts.DefaultMode == "" {
		opts.DefaultMode = domain.ModeSingle
	}
	return &Service{
		runs:     runs,
		layouts:  layouts,
		cache:    cacheClient,
		executor: crane.NewExecutor(log),
		logger:   log,
		opts:     opts,
	}
}

// Simulate executa a simulação descrita em req e grava a execução.
// Entradas idênticas (mesmo modo, diagrama e instruções) devolvem a execução já gravada
// enquanto estiverem em cache.
func (s *Service) Simulate(ctx context.Context, req domain.SimulationRequest) (domain.Run, error) {
	mode := s.opts.DefaultMode
	if strings.TrimSpace(string(req.Mode)) != "" {
		parsed, err := domain.ParseMoveMode(string(req.Mode))
		if err != nil {
			return domain.Run{}, apperror.NewValidationError(err.Error())
		}
		mode = parsed
	}
	strategy, err := crane.StrategyFor(mode)
	if err != nil {
		return domain.Run{}, apperror.NewValidationError(err.Error())
	}

	p, layoutID, err := s.resolvePuzzle(ctx, req)
	if err != nil {
		return domain.Run{}, err
	}

	key := cacheKey(mode, layoutID, p)
	if run, ok := s.cached(ctx, key, layoutID); ok {
		s.logger.Info("Simulação servida do cache.", map[string]interface{}{"id": run.ID, "mode": mode})
		return run, nil
	}

	s.logger.Debug("Iniciando simulação.", map[string]interface{}{"mode": mode, "moves": len(p.Moves), "layout_id": layoutID})
	outcome, err := s.executor.Simulate(p, strategy)
	if err != nil {
		s.logger.Warn("Simulação rejeitada.", map[string]interface{}{"mode": mode, "error": err.Error()})
		return domain.Run{}, err
	}

	run := domain.Run{
		Mode:       mode,
		MoveCount:  outcome.MoveCount,
		TopLabels:  outcome.TopLabels,
		FinalState: diagram.RenderText(outcome.Warehouse),
	}
	if layoutID != "" {
		run.LayoutID = &layoutID
	}

	saved, err := s.runs.SaveRun(ctx, run)
	if err != nil {
		s.logger.Error("Falha ao gravar execução.", err)
		return domain.Run{}, apperror.NewInternalError("Falha interna ao gravar a execução.", err)
	}

	s.store(ctx, key, saved)
	s.logger.Info("Simulação concluída.", map[string]interface{}{"id": saved.ID, "mode": mode, "top_labels": saved.TopLabels})
	return saved, nil
}

// GetRun busca uma execução gravada.
func (s *Service) GetRun(ctx context.Context, id string) (domain.Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Run{}, apperror.NewValidationError("O ID da execução deve ser um UUID válido.")
	}
	return s.runs.GetRunByID(ctx, id)
}

// ListRuns lista as execuções mais recentes. limit fora de 1..100 usa o padrão (20) ou o máximo.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	runs, err := s.runs.ListRuns(ctx, limit)
	if err != nil {
		s.logger.Error("Falha ao listar execuções.", err)
		return nil, apperror.NewInternalError("Falha interna ao listar execuções.", err)
	}
	return runs, nil
}

func (s *Service) resolvePuzzle(ctx context.Context, req domain.SimulationRequest) (puzzle.Puzzle, string, error) {
	hasInput := strings.TrimSpace(req.Input) != ""
	switch {
	case hasInput && req.LayoutID != "":
		return puzzle.Puzzle{}, "", apperror.NewValidationError("Informe a entrada completa ou um layout, não ambos.")
	case hasInput:
		if s.opts.MaxInputBytes > 0 && int64(len(req.Input)) > s.opts.MaxInputBytes {
			return puzzle.Puzzle{}, "", apperror.NewValidationError(fmt.Sprintf("A entrada excede o limite de %d bytes.", s.opts.MaxInputBytes))
		}
		p, err := puzzle.LoadString(req.Input)
		return p, "", err
	case req.LayoutID != "":
		if _, err := uuid.Parse(req.LayoutID); err != nil {
			return puzzle.Puzzle{}, "", apperror.NewValidationError("O ID do layout deve ser um UUID válido.")
		}
		layout, err := s.layouts.GetLayoutByID(ctx, req.LayoutID)
		if err != nil {
			return puzzle.Puzzle{}, "", err
		}
		return puzzle.Puzzle{Diagram: diagram.SplitLines(layout.Diagram), Moves: req.Moves}, layout.ID, nil
	}
	return puzzle.Puzzle{}, "", apperror.NewValidationError("A simulação precisa de uma entrada ou de um layout.")
}

// cached devolve a execução em cache para key, desde que ela tenha a mesma origem
// (entrada livre ou o mesmo layout) da requisição atual.
func (s *Service) cached(ctx context.Context, key string, layoutID string) (domain.Run, bool) {
	if s.cache == nil {
		return domain.Run{}, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("Falha ao consultar cache de simulações.", map[string]interface{}{"error": err.Error()})
		}
		return domain.Run{}, false
	}
	var run domain.Run
	if err := json.Unmarshal([]byte(raw), &run); err != nil {
		s.logger.Warn("Entrada de cache corrompida, ignorando.", map[string]interface{}{"key": key})
		return domain.Run{}, false
	}
	if runLayoutID(run) != layoutID {
		return domain.Run{}, false
	}
	return run, true
}

func (s *Service) store(ctx context.Context, key string, run domain.Run) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(run)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.opts.CacheTTL); err != nil {
		s.logger.Warn("Falha ao gravar simulação no cache.", map[string]interface{}{"error": err.Error()})
	}
}

func runLayoutID(run domain.Run) string {
	if run.LayoutID == nil {
		return ""
	}
	return *run.LayoutID
}

// cacheKey identifica a simulação pelo modo, origem (layout ou entrada livre),
// diagrama e instruções.
func cacheKey(mode domain.MoveMode, layoutID string, p puzzle.Puzzle) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n%s\n", mode, layoutID)
	for _, line := range p.Diagram {
		fmt.Fprintf(h, "%s\n", strings.TrimRight(line, " "))
	}
	h.Write([]byte{0})
	for _, line := range p.Moves {
		fmt.Fprintf(h, "%s\n", strings.Join(strings.Fields(line), " "))
	}
	return "simulation:" + hex.EncodeToString(h.Sum(nil))
}
