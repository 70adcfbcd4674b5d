// Package diagram converte o desenho ASCII das pilhas em um domain.Warehouse e vice-versa.
//
// O desenho tem uma linha por nível, de cima para baixo, e termina com a linha de índices:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// O rótulo da pilha i fica na posição 1+4*i de cada linha.
package diagram

import (
	"fmt"
	"strings"
	"unicode"

	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
)

const (
	slotOffset = 1
	slotStride = 4
)

// Parse constrói um armazém a partir das linhas do diagrama. A última linha é a de índices.
//
// A quantidade de pilhas vem do último caractere da linha de índices, então diagramas com
// 10 ou mais pilhas não são suportados.
func Parse(lines []string) (*domain.Warehouse, error) {
	if len(lines) == 0 {
		return nil, apperror.NewValidationError("o diagrama está vazio")
	}

	n, err := pileCount(lines[len(lines)-1])
	if err != nil {
		return nil, err
	}

	w := domain.NewWarehouse(n)
	// do fundo para o topo, para que a ordem de push seja a ordem física
	for row := len(lines) - 2; row >= 0; row-- {
		if err := parseRow(w, []rune(lines[row]), row); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// ParseText é um atalho para Parse sobre um bloco de texto com quebras de linha.
func ParseText(text string) (*domain.Warehouse, error) {
	return Parse(SplitLines(text))
}

// SplitLines quebra o texto em linhas, descartando linhas em branco nas pontas.
// Espaços dentro das linhas são preservados, pois definem as colunas.
func SplitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func pileCount(indexRow string) (int, error) {
	trimmed := strings.TrimRightFunc(indexRow, unicode.IsSpace)
	if trimmed == "" {
		return 0, apperror.NewValidationError("a linha de índices do diagrama está vazia")
	}
	last := []rune(trimmed)
	r := last[len(last)-1]
	if r < '1' || r > '9' {
		return 0, apperror.NewValidationError(fmt.Sprintf("linha de índices inválida: %q", indexRow))
	}
	return int(r - '0'), nil
}

func parseRow(w *domain.Warehouse, data []rune, row int) error {
	pile := 0
	for i := slotOffset; i < len(data); i += slotStride {
		c := data[i]
		switch {
		case c == ' ':
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			if pile >= w.PileCount() {
				return apperror.NewValidationError(fmt.Sprintf("linha %d: caixote %q fora das %d pilhas declaradas", row+1, c, w.PileCount()))
			}
			if err := w.AddCrate(domain.NewCrate(c), pile); err != nil {
				return err
			}
		default:
			return apperror.NewValidationError(fmt.Sprintf("linha %d: caractere inválido %q na posição %d", row+1, c, i))
		}
		pile++
	}
	return nil
}
