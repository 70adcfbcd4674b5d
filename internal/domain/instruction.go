package domain

import (
	"fmt"
	"strings"
)

// MoveInstruction é um comando já interpretado. From e To são baseados em zero.
type MoveInstruction struct {
	Count int `json:"count"`
	From  int `json:"from"`
	To    int `json:"to"`
}

func (m MoveInstruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.Count, m.From+1, m.To+1)
}

// MoveMode identifica a semântica usada para mover mais de um caixote.
type MoveMode string

const (
	// ModeSingle move um caixote por vez; o grupo chega invertido.
	ModeSingle MoveMode = "single"
	// ModeBulk move o grupo inteiro de uma vez; a ordem é preservada.
	ModeBulk MoveMode = "bulk"
)

// ParseMoveMode converte uma string em MoveMode. String vazia vira ModeSingle.
func ParseMoveMode(s string) (MoveMode, error) {
	switch MoveMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSingle:
		return ModeSingle, nil
	case ModeBulk:
		return ModeBulk, nil
	}
	return "", fmt.Errorf("modo de movimento desconhecido %q (use single ou bulk)", s)
}
