package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
)

func reverse(lifted []domain.Crate) []domain.Crate {
	out := make([]domain.Crate, len(lifted))
	for i, c := range lifted {
		out[len(lifted)-1-i] = c
	}
	return out
}

func newWarehouse(t *testing.T, piles ...string) *domain.Warehouse {
	t.Helper()
	w := domain.NewWarehouse(len(piles))
	for i, labels := range piles {
		require.NoError(t, w.AddCrates(crates(labels), i))
	}
	return w
}

func labelsOf(t *testing.T, w *domain.Warehouse, i int) string {
	t.Helper()
	p, err := w.Pile(i)
	require.NoError(t, err)
	return p.Labels()
}

func TestWarehouse_NewHasEmptyPiles(t *testing.T) {
	w := domain.NewWarehouse(3)

	assert.Equal(t, 3, w.PileCount())
	assert.Equal(t, "", w.TopLabels())
	assert.Equal(t, 0, w.Height())
}

func TestWarehouse_MoveCrate(t *testing.T) {
	w := newWarehouse(t, "", "", "A")

	require.NoError(t, w.MoveCrate(2, 0))

	assert.Equal(t, "A", labelsOf(t, w, 0))
	assert.Equal(t, "", labelsOf(t, w, 2))
}

func TestWarehouse_MoveCrateFromEmptyPile(t *testing.T) {
	w := newWarehouse(t, "", "A")

	err := w.MoveCrate(0, 1)

	assert.IsType(t, &apperror.PreconditionError{}, err)
	assert.Equal(t, "A", labelsOf(t, w, 1))
}

func TestWarehouse_RepeatedMoveCrateInvertsOrder(t *testing.T) {
	w := newWarehouse(t, "AB", "", "")

	require.NoError(t, w.MoveCrate(0, 1))
	require.NoError(t, w.MoveCrate(0, 1))

	assert.Equal(t, "BA", labelsOf(t, w, 1))
}

func TestWarehouse_TransferArrangements(t *testing.T) {
	tests := []struct {
		name    string
		arrange domain.Arrangement
		want    string
	}{
		{"lifted order reverses the group", nil, "XDCB"},
		{"reversed lifted order preserves the group", reverse, "XBCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWarehouse(t, "ABCD", "X")

			require.NoError(t, w.Transfer(3, 0, 1, tt.arrange))

			assert.Equal(t, "A", labelsOf(t, w, 0))
			assert.Equal(t, tt.want, labelsOf(t, w, 1))
		})
	}
}

func TestWarehouse_TransferPreconditions(t *testing.T) {
	tests := []struct {
		name            string
		count, from, to int
	}{
		{"count exceeds depth", 5, 0, 1},
		{"zero count", 0, 0, 1},
		{"source out of range", 1, 3, 1},
		{"destination out of range", 1, 0, 7},
		{"negative index", 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWarehouse(t, "ABC", "D", "")

			err := w.Transfer(tt.count, tt.from, tt.to, nil)

			assert.IsType(t, &apperror.PreconditionError{}, err)
			assert.Equal(t, "ABC", labelsOf(t, w, 0))
			assert.Equal(t, "D", labelsOf(t, w, 1))
		})
	}
}

func TestWarehouse_TransferOntoSamePile(t *testing.T) {
	w := newWarehouse(t, "ABC")

	require.NoError(t, w.Transfer(3, 0, 0, nil))
	assert.Equal(t, "ABC", labelsOf(t, w, 0))

	err := w.Transfer(4, 0, 0, nil)
	assert.IsType(t, &apperror.PreconditionError{}, err)
}

func TestWarehouse_TopLabelsSkipsEmptyPiles(t *testing.T) {
	w := newWarehouse(t, "ZN", "", "MCD", "")

	assert.Equal(t, "ND", w.TopLabels())
	assert.Equal(t, 3, w.Height())
}

func TestWarehouse_CloneIsIndependent(t *testing.T) {
	w := newWarehouse(t, "AB", "")
	clone := w.Clone()

	require.NoError(t, clone.MoveCrate(0, 1))

	assert.Equal(t, "AB", labelsOf(t, w, 0))
	assert.Equal(t, "A", labelsOf(t, clone, 0))
}

func TestWarehouse_Apply(t *testing.T) {
	w := newWarehouse(t, "ZN", "MCD", "P")

	require.NoError(t, w.Apply(domain.MoveInstruction{Count: 1, From: 1, To: 0}, nil))

	assert.Equal(t, "DCP", w.TopLabels())
}

func TestParseMoveMode(t *testing.T) {
	mode, err := domain.ParseMoveMode("")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSingle, mode)

	mode, err = domain.ParseMoveMode(" BULK ")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeBulk, mode)

	_, err = domain.ParseMoveMode("crane9000")
	assert.Error(t, err)
}

func TestMoveInstruction_StringIsOneBased(t *testing.T) {
	m := domain.MoveInstruction{Count: 3, From: 0, To: 2}
	assert.Equal(t, "move 3 from 1 to 3", m.String())
}
