// Package crane aplica instruções de movimento a um armazém.
package crane

import (
	"fmt"

	"gocrane/internal/domain"
)

// Strategy é uma semântica de movimento: como os caixotes levantados chegam ao destino.
type Strategy struct {
	Mode    domain.MoveMode
	arrange domain.Arrangement
}

var (
	// SingleCrate move um caixote por vez. Cada caixote cai sobre o anterior,
	// então o grupo chega invertido. A ordem de saída (topo primeiro) já é a ordem de chegada.
	SingleCrate = Strategy{Mode: domain.ModeSingle, arrange: func(lifted []domain.Crate) []domain.Crate { return lifted }}

	// Bulk levanta o grupo inteiro e o pousa intacto, preservando a ordem relativa.
	Bulk = Strategy{Mode: domain.ModeBulk, arrange: bottomFirst}
)

// StrategyFor retorna a estratégia do modo informado.
func StrategyFor(mode domain.MoveMode) (Strategy, error) {
	switch mode {
	case domain.ModeSingle, "":
		return SingleCrate, nil
	case domain.ModeBulk:
		return Bulk, nil
	}
	return Strategy{}, fmt.Errorf("estratégia desconhecida: %q", mode)
}

// Apply executa uma única instrução sobre o armazém.
func (s Strategy) Apply(w *domain.Warehouse, m domain.MoveInstruction) error {
	return w.Apply(m, s.arrange)
}

func bottomFirst(lifted []domain.Crate) []domain.Crate {
	out := make([]domain.Crate, len(lifted))
	for i, c := range lifted {
		out[len(lifted)-1-i] = c
	}
	return out
}
