package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"gocrane/internal/crane"
	"gocrane/internal/diagram"
	"gocrane/internal/domain"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	labelColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	diffColor  = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// result é a forma serializada de uma simulação na saída json/yaml.
type result struct {
	Mode       domain.MoveMode `json:"mode" yaml:"mode"`
	MoveCount  int             `json:"move_count" yaml:"move_count"`
	TopLabels  string          `json:"top_labels" yaml:"top_labels"`
	FinalState string          `json:"final_state,omitempty" yaml:"final_state,omitempty"`
}

func newResult(mode domain.MoveMode, o crane.Outcome, withState bool) result {
	r := result{Mode: mode, MoveCount: o.MoveCount, TopLabels: o.TopLabels}
	if withState {
		r.FinalState = diagram.RenderText(o.Warehouse)
	}
	return r
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML, "yml":
		return nil
	}
	return fmt.Errorf("formato %q não suportado (use text, json ou yaml)", format)
}

// encode escreve v em json ou yaml. Para text, quem chama formata a saída.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML, "yml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return validateFormat(format)
}

// colorize só vale para terminais de verdade.
func colorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeSimulation(w io.Writer, r result, colored bool) {
	labels := r.TopLabels
	if colored {
		labels = labelColor(labels)
	}
	fmt.Fprintln(w, labels)
	if r.FinalState != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.FinalState)
	}
}

// writeComparison imprime um modo por linha. Em terminal, destaca os resultados
// quando os modos divergem.
func writeComparison(w io.Writer, results []result, colored bool) {
	differ := len(results) > 1 && results[0].TopLabels != results[1].TopLabels
	for _, r := range results {
		labels := r.TopLabels
		if colored && differ {
			labels = diffColor(labels)
		} else if colored {
			labels = labelColor(labels)
		}
		fmt.Fprintf(w, "%-6s %s\n", r.Mode, labels)
	}
}
