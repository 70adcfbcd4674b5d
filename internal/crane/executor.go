package crane

import (
	"fmt"

	"gocrane/internal/diagram"
	"gocrane/internal/domain"
	"gocrane/internal/instruction"
	"gocrane/internal/pkg/logger"
	"gocrane/internal/puzzle"
)

// Executor aplica uma sequência de instruções, estritamente na ordem recebida.
type Executor struct {
	logger logger.Logger
}

// NewExecutor cria um Executor.
func NewExecutor(log logger.Logger) *Executor {
	return &Executor{logger: log}
}

// Run aplica todas as instruções. A primeira violação de pré-condição aborta a execução;
// o erro devolvido encapsula o erro original e indica a instrução que falhou.
func (e *Executor) Run(w *domain.Warehouse, moves []domain.MoveInstruction, s Strategy) error {
	e.logger.Debug("Iniciando execução das instruções.", map[string]interface{}{
		"mode":  s.Mode,
		"moves": len(moves),
		"piles": w.PileCount(),
	})

	for i, m := range moves {
		if err := s.Apply(w, m); err != nil {
			e.logger.Warn("Instrução rejeitada, execução abortada.", map[string]interface{}{
				"index":       i + 1,
				"instruction": m.String(),
				"error":       err.Error(),
			})
			return fmt.Errorf("instrução %d (%s): %w", i+1, m, err)
		}
	}

	e.logger.Debug("Execução concluída.", map[string]interface{}{"top_labels": w.TopLabels()})
	return nil
}

// Outcome é o resultado de uma simulação completa.
type Outcome struct {
	Warehouse *domain.Warehouse
	MoveCount int
	TopLabels string
}

// Simulate monta o armazém a partir do diagrama, interpreta as instruções e as executa.
// Erros de diagrama e de instrução são ValidationError; violações durante a execução
// são PreconditionError.
func (e *Executor) Simulate(p puzzle.Puzzle, s Strategy) (Outcome, error) {
	w, err := diagram.Parse(p.Diagram)
	if err != nil {
		return Outcome{}, err
	}
	moves, err := instruction.ParseAll(p.Moves)
	if err != nil {
		return Outcome{}, err
	}
	if err := e.Run(w, moves, s); err != nil {
		return Outcome{}, err
	}
	return Outcome{Warehouse: w, MoveCount: len(moves), TopLabels: w.TopLabels()}, nil
}
