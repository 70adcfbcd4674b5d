// Package instruction interpreta as linhas "move <count> from <from> to <to>".
package instruction

import (
	"fmt"
	"strconv"
	"strings"

	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
)

// Parse converte uma linha de instrução em domain.MoveInstruction.
// As pilhas na linha são numeradas a partir de 1; o resultado usa índices a partir de 0.
func Parse(line string) (domain.MoveInstruction, error) {
	words := strings.Fields(line)
	if len(words) != 6 || words[0] != "move" || words[2] != "from" || words[4] != "to" {
		return domain.MoveInstruction{}, apperror.NewValidationError(fmt.Sprintf("instrução malformada: %q", line))
	}

	count, err := positive(words[1], "quantidade", line)
	if err != nil {
		return domain.MoveInstruction{}, err
	}
	from, err := positive(words[3], "origem", line)
	if err != nil {
		return domain.MoveInstruction{}, err
	}
	to, err := positive(words[5], "destino", line)
	if err != nil {
		return domain.MoveInstruction{}, err
	}

	return domain.MoveInstruction{Count: count, From: from - 1, To: to - 1}, nil
}

// ParseAll interpreta todas as linhas, ignorando as vazias. A primeira linha inválida
// interrompe a leitura e o erro indica o número da linha.
func ParseAll(lines []string) ([]domain.MoveInstruction, error) {
	moves := make([]domain.MoveInstruction, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("instrução %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func positive(word, field, line string) (int, error) {
	n, err := strconv.Atoi(word)
	if err != nil || n < 1 {
		return 0, apperror.NewValidationError(fmt.Sprintf("%s inválida %q em %q", field, word, line))
	}
	return n, nil
}
