package crane_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocrane/internal/crane"
	"gocrane/internal/diagram"
	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/logger"
	"gocrane/internal/puzzle"
)

var sampleDiagram = []string{
	"    [D]    ",
	"[N] [C]    ",
	"[Z] [M] [P]",
	" 1   2   3 ",
}

var sampleMoves = []domain.MoveInstruction{
	{Count: 1, From: 1, To: 0},
	{Count: 3, From: 0, To: 2},
	{Count: 2, From: 1, To: 0},
	{Count: 1, From: 0, To: 1},
}

func newSample(t *testing.T) *domain.Warehouse {
	t.Helper()
	w, err := diagram.Parse(sampleDiagram)
	require.NoError(t, err)
	return w
}

func TestExecutor_Run_Sample(t *testing.T) {
	tests := []struct {
		name     string
		strategy crane.Strategy
		want     string
	}{
		{"single crate", crane.SingleCrate, "CMZ"},
		{"bulk", crane.Bulk, "MCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newSample(t)
			exec := crane.NewExecutor(logger.NewNop())

			require.NoError(t, exec.Run(w, sampleMoves, tt.strategy))
			assert.Equal(t, tt.want, w.TopLabels())
		})
	}
}

func TestStrategies_DifferOnMultiCrateMoves(t *testing.T) {
	for k := 2; k <= 4; k++ {
		single, err := diagram.Parse([]string{"[D]", "[C]", "[B]", "[A]", " 1   2"})
		require.NoError(t, err)
		bulk := single.Clone()

		m := domain.MoveInstruction{Count: k, From: 0, To: 1}
		require.NoError(t, crane.SingleCrate.Apply(single, m))
		require.NoError(t, crane.Bulk.Apply(bulk, m))

		singleDst, _ := single.Pile(1)
		bulkDst, _ := bulk.Pile(1)
		want := "ABCD"[4-k:]

		assert.Equal(t, want, bulkDst.Labels(), "bulk preserves order for k=%d", k)
		assert.Equal(t, reverse(want), singleDst.Labels(), "single reverses order for k=%d", k)
		assert.NotEqual(t, singleDst.Labels(), bulkDst.Labels())
	}
}

func TestStrategies_AgreeOnSingleCrate(t *testing.T) {
	single := newSample(t)
	bulk := single.Clone()
	m := domain.MoveInstruction{Count: 1, From: 1, To: 2}

	require.NoError(t, crane.SingleCrate.Apply(single, m))
	require.NoError(t, crane.Bulk.Apply(bulk, m))

	assert.Equal(t, single.TopLabels(), bulk.TopLabels())
}

func TestExecutor_Run_CountExceedsDepthIsFatal(t *testing.T) {
	w := newSample(t)
	exec := crane.NewExecutor(logger.NewNop())

	moves := []domain.MoveInstruction{
		{Count: 1, From: 2, To: 0},
		{Count: 5, From: 0, To: 1},
		{Count: 1, From: 1, To: 2},
	}
	err := exec.Run(w, moves, crane.SingleCrate)

	require.Error(t, err)
	var pre *apperror.PreconditionError
	assert.ErrorAs(t, err, &pre)
	assert.Contains(t, err.Error(), "instrução 2")

	// a primeira instrução foi aplicada, a segunda não moveu nada e a terceira nunca rodou
	p0, _ := w.Pile(0)
	p1, _ := w.Pile(1)
	assert.Equal(t, "ZNP", p0.Labels())
	assert.Equal(t, "MCD", p1.Labels())
}

func TestExecutor_Run_UnknownPileIsFatal(t *testing.T) {
	w := newSample(t)
	exec := crane.NewExecutor(logger.NewNop())

	err := exec.Run(w, []domain.MoveInstruction{{Count: 1, From: 0, To: 5}}, crane.Bulk)

	var pre *apperror.PreconditionError
	assert.ErrorAs(t, err, &pre)
}

func TestStrategyFor(t *testing.T) {
	s, err := crane.StrategyFor(domain.ModeBulk)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeBulk, s.Mode)

	s, err = crane.StrategyFor("")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSingle, s.Mode)

	_, err = crane.StrategyFor("sideways")
	assert.Error(t, err)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func TestExecutor_Simulate(t *testing.T) {
	p, err := puzzle.LoadString("    [D]    \n[N] [C]    \n[Z] [M] [P]\n 1   2   3 \n\nmove 1 from 2 to 1\nmove 3 from 1 to 3\nmove 2 from 2 to 1\nmove 1 from 1 to 2\n")
	require.NoError(t, err)
	exec := crane.NewExecutor(logger.NewNop())

	single, err := exec.Simulate(p, crane.SingleCrate)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", single.TopLabels)
	assert.Equal(t, 4, single.MoveCount)

	bulk, err := exec.Simulate(p, crane.Bulk)
	require.NoError(t, err)
	assert.Equal(t, "MCD", bulk.TopLabels)
}

func TestExecutor_Simulate_Errors(t *testing.T) {
	exec := crane.NewExecutor(logger.NewNop())

	_, err := exec.Simulate(puzzle.Puzzle{Diagram: []string{"[A]", " x"}}, crane.SingleCrate)
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = exec.Simulate(puzzle.Puzzle{Diagram: []string{"[A]", " 1"}, Moves: []string{"move a from 1 to 1"}}, crane.SingleCrate)
	var validationErr *apperror.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = exec.Simulate(puzzle.Puzzle{
		Diagram: []string{"[A]", "[B]", "[C]", " 1   2"},
		Moves:   []string{"move 5 from 1 to 2"},
	}, crane.Bulk)
	var pre *apperror.PreconditionError
	assert.ErrorAs(t, err, &pre)
}
