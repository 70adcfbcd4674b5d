// Package puzzle lê a entrada de uma simulação e separa as duas seções:
// o diagrama e, após a primeira linha em branco, as instruções.
package puzzle

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	apperror "gocrane/internal/errors"
)

// Puzzle é a entrada já separada em seções.
type Puzzle struct {
	Diagram []string
	Moves   []string
}

// Load lê a entrada linha a linha. A primeira linha em branco encerra o diagrama;
// linhas em branco na seção de instruções são descartadas.
func Load(r io.Reader) (Puzzle, error) {
	var p Puzzle
	inMoves := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if inMoves {
			if strings.TrimSpace(line) != "" {
				p.Moves = append(p.Moves, line)
			}
			continue
		}
		if line == "" {
			inMoves = true
			continue
		}
		p.Diagram = append(p.Diagram, line)
	}
	if err := scanner.Err(); err != nil {
		return Puzzle{}, apperror.NewInternalError("Falha ao ler a entrada.", err)
	}
	if len(p.Diagram) == 0 {
		return Puzzle{}, apperror.NewValidationError("a entrada não contém diagrama")
	}
	return p, nil
}

// LoadString é um atalho para Load sobre uma string.
func LoadString(s string) (Puzzle, error) {
	return Load(strings.NewReader(s))
}

// LoadFile abre e lê o arquivo em path.
func LoadFile(path string) (Puzzle, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Puzzle{}, apperror.NewNotFoundError(err.Error())
	}
	if err != nil {
		return Puzzle{}, apperror.NewInternalError("falha ao abrir o arquivo de entrada", err)
	}
	defer f.Close()
	return Load(f)
}
