package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gocrane/config"
	"gocrane/internal/crane"
	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/logger"
	"gocrane/internal/puzzle"
)

// stdinPath faz os comandos lerem a entrada padrão.
const stdinPath = "-"

func newRootCmd(cfg config.SimulatorConfig, log logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "crane",
		Short:         "Simula o guindaste sobre as pilhas de caixas do armazém",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimulateCmd(cfg, log), newCompareCmd(cfg, log))
	return root
}

func newSimulateCmd(cfg config.SimulatorConfig, log logger.Logger) *cobra.Command {
	var mode, format string
	var show bool

	cmd := &cobra.Command{
		Use:   "simulate <arquivo>",
		Short: "Executa as instruções e imprime o topo de cada pilha",
		Long: "Lê o diagrama e as instruções de <arquivo> (ou da entrada padrão com \"-\"),\n" +
			"executa no modo escolhido e imprime as etiquetas do topo de cada pilha.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			moveMode, err := domain.ParseMoveMode(mode)
			if err != nil {
				return err
			}
			strategy, err := crane.StrategyFor(moveMode)
			if err != nil {
				return err
			}
			p, err := loadPuzzle(cmd, args[0], cfg.MaxInputBytes)
			if err != nil {
				return err
			}

			outcome, err := crane.NewExecutor(log).Simulate(p, strategy)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := newResult(strategy.Mode, outcome, show)
			if format != formatText {
				return encode(out, format, r)
			}
			writeSimulation(out, r, colorize(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", cfg.DefaultMode, "modo de movimentação: single ou bulk")
	cmd.Flags().BoolVar(&show, "show", false, "imprime também o estado final do armazém")
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "formato de saída: text, json ou yaml")
	return cmd
}

func newCompareCmd(cfg config.SimulatorConfig, log logger.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "compare <arquivo>",
		Short: "Executa a mesma entrada nos dois modos e imprime os dois resultados",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			p, err := loadPuzzle(cmd, args[0], cfg.MaxInputBytes)
			if err != nil {
				return err
			}

			executor := crane.NewExecutor(log)
			results := make([]result, 0, 2)
			for _, s := range []crane.Strategy{crane.SingleCrate, crane.Bulk} {
				outcome, err := executor.Simulate(p, s)
				if err != nil {
					return fmt.Errorf("modo %s: %w", s.Mode, err)
				}
				results = append(results, newResult(s.Mode, outcome, false))
			}

			out := cmd.OutOrStdout()
			if format != formatText {
				return encode(out, format, results)
			}
			writeComparison(out, results, colorize(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatText, "formato de saída: text, json ou yaml")
	return cmd
}

// loadPuzzle lê path, ou a entrada do comando quando path é "-".
// maxBytes > 0 limita o tamanho lido da entrada padrão.
func loadPuzzle(cmd *cobra.Command, path string, maxBytes int64) (puzzle.Puzzle, error) {
	if path != stdinPath {
		return puzzle.LoadFile(path)
	}
	var in io.Reader = cmd.InOrStdin()
	if maxBytes > 0 {
		in = io.LimitReader(in, maxBytes+1)
		data, err := io.ReadAll(in)
		if err != nil {
			return puzzle.Puzzle{}, apperror.NewInternalError("falha ao ler a entrada padrão", err)
		}
		if int64(len(data)) > maxBytes {
			return puzzle.Puzzle{}, apperror.NewValidationError(fmt.Sprintf("entrada maior que %d bytes", maxBytes))
		}
		return puzzle.LoadString(string(data))
	}
	return puzzle.Load(in)
}
