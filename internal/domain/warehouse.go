package domain

import (
	"fmt"
	"strings"

	apperror "gocrane/internal/errors"
)

// Warehouse é o conjunto de pilhas do pátio. A quantidade de pilhas é definida
// na construção e nunca muda. Índices são baseados em zero.
type Warehouse struct {
	piles []*Pile
}

// Arrangement recebe os caixotes levantados de uma pilha (o topo primeiro)
// e devolve a sequência em que devem ser empilhados no destino.
type Arrangement func(lifted []Crate) []Crate

// NewWarehouse cria um armazém com n pilhas vazias.
func NewWarehouse(n int) *Warehouse {
	piles := make([]*Pile, n)
	for i := range piles {
		piles[i] = NewPile()
	}
	return &Warehouse{piles: piles}
}

// PileCount retorna a quantidade de pilhas.
func (w *Warehouse) PileCount() int {
	return len(w.piles)
}

// Pile retorna a pilha no índice i.
func (w *Warehouse) Pile(i int) (*Pile, error) {
	if i < 0 || i >= len(w.piles) {
		return nil, apperror.NewPreconditionError(fmt.Sprintf("a pilha %d não existe (o armazém tem %d pilhas)", i+1, len(w.piles)))
	}
	return w.piles[i], nil
}

// AddCrate coloca um caixote no topo da pilha i.
func (w *Warehouse) AddCrate(c Crate, i int) error {
	p, err := w.Pile(i)
	if err != nil {
		return err
	}
	p.Push(c)
	return nil
}

// AddCrates empilha os caixotes na pilha i, na ordem recebida.
func (w *Warehouse) AddCrates(crates []Crate, i int) error {
	p, err := w.Pile(i)
	if err != nil {
		return err
	}
	p.PushMany(crates)
	return nil
}

// MoveCrate move um único caixote do topo de from para o topo de to.
func (w *Warehouse) MoveCrate(from, to int) error {
	src, err := w.Pile(from)
	if err != nil {
		return err
	}
	dst, err := w.Pile(to)
	if err != nil {
		return err
	}
	c, ok := src.PopOne()
	if !ok {
		return apperror.NewPreconditionError(fmt.Sprintf("a pilha %d está vazia", from+1))
	}
	dst.Push(c)
	return nil
}

// Transfer levanta os count caixotes do topo de from e os coloca em to.
// arrange decide a ordem de chegada; nil mantém a ordem de saída (o topo primeiro).
// Nenhuma pilha é alterada se a instrução violar uma pré-condição.
func (w *Warehouse) Transfer(count, from, to int, arrange Arrangement) error {
	src, err := w.Pile(from)
	if err != nil {
		return err
	}
	dst, err := w.Pile(to)
	if err != nil {
		return err
	}
	if count < 1 {
		return apperror.NewPreconditionError(fmt.Sprintf("quantidade de caixotes inválida: %d", count))
	}
	if count > src.Depth() {
		return apperror.NewPreconditionError(fmt.Sprintf("a pilha %d tem %d caixotes, não é possível mover %d", from+1, src.Depth(), count))
	}

	// Levantar e pousar na mesma pilha devolve cada caixote ao seu lugar.
	if from == to {
		return nil
	}

	lifted := src.PopMany(count)
	if arrange != nil {
		lifted = arrange(lifted)
	}
	dst.PushMany(lifted)
	return nil
}

// Apply executa uma instrução de movimento com o arranjo informado.
func (w *Warehouse) Apply(m MoveInstruction, arrange Arrangement) error {
	return w.Transfer(m.Count, m.From, m.To, arrange)
}

// TopLabels concatena o rótulo do topo de cada pilha, em ordem de índice.
// Pilhas vazias não contribuem com nenhum caractere.
func (w *Warehouse) TopLabels() string {
	var b strings.Builder
	for _, p := range w.piles {
		if label, ok := p.Top(); ok {
			b.WriteRune(label)
		}
	}
	return b.String()
}

// Height retorna a profundidade da maior pilha.
func (w *Warehouse) Height() int {
	h := 0
	for _, p := range w.piles {
		if p.Depth() > h {
			h = p.Depth()
		}
	}
	return h
}

// Clone retorna uma cópia independente do armazém.
func (w *Warehouse) Clone() *Warehouse {
	piles := make([]*Pile, len(w.piles))
	for i, p := range w.piles {
		piles[i] = NewPile(p.items...)
	}
	return &Warehouse{piles: piles}
}
