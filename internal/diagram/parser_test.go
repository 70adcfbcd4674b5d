package diagram_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocrane/internal/diagram"
	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
)

var sampleDiagram = []string{
	"    [D]    ",
	"[N] [C]    ",
	"[Z] [M] [P]",
	" 1   2   3 ",
}

func pileLabels(t *testing.T, w *domain.Warehouse) []string {
	t.Helper()
	out := make([]string, w.PileCount())
	for i := range out {
		p, err := w.Pile(i)
		require.NoError(t, err)
		out[i] = p.Labels()
	}
	return out
}

func TestParse_Sample(t *testing.T) {
	w, err := diagram.Parse(sampleDiagram)
	require.NoError(t, err)

	assert.Equal(t, 3, w.PileCount())
	assert.Equal(t, []string{"ZN", "MCD", "P"}, pileLabels(t, w))
	assert.Equal(t, "NDP", w.TopLabels())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "one crate every pile",
			lines: []string{"[A] [B] [C]", " 1   2   3"},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "gap in the middle pile",
			lines: []string{"[D]     [E]", "[A] [B] [C]", " 1   2   3"},
			want:  []string{"AD", "B", "CE"},
		},
		{
			name: "only the last pile is filled",
			lines: []string{
				"        [E]",
				"        [D]",
				"        [C]",
				"        [B]",
				"        [A]",
				" 1   2   3",
			},
			want: []string{"", "", "ABCDE"},
		},
		{
			name:  "short rows without trailing spaces",
			lines: []string{"[B]", "[A]", " 1   2   3"},
			want:  []string{"AB", "", ""},
		},
		{
			name:  "index row only",
			lines: []string{" 1   2"},
			want:  []string{"", ""},
		},
		{
			name:  "digit labels",
			lines: []string{"[1] [2]", " 1   2"},
			want:  []string{"1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := diagram.Parse(tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pileLabels(t, w))
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty", nil},
		{"blank index row", []string{"[A]", "   "}},
		{"index row without digit", []string{"[A]", " a   b"}},
		{"zero piles", []string{" 0"}},
		{"invalid slot character", []string{"[A] [#]", " 1   2"}},
		{"crate beyond declared piles", []string{"[A] [B] [C]", " 1   2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := diagram.Parse(tt.lines)
			assert.IsType(t, &apperror.ValidationError{}, err)
		})
	}
}

func TestParse_TwoDigitIndexRowUsesLastDigit(t *testing.T) {
	// limitação conhecida: " 1 ... 10" é lido como 0 pilhas
	lines := []string{" 1   2   3   4   5   6   7   8   9  10"}

	_, err := diagram.Parse(lines)
	assert.Error(t, err)
}

func TestParseText(t *testing.T) {
	w, err := diagram.ParseText("\n    [D]    \n[N] [C]    \r\n[Z] [M] [P]\n 1   2   3 \n\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"ZN", "MCD", "P"}, pileLabels(t, w))
}

func TestRender_RoundTrip(t *testing.T) {
	w, err := diagram.Parse(sampleDiagram)
	require.NoError(t, err)

	lines := diagram.Render(w)
	assert.Equal(t, []string{
		"    [D]",
		"[N] [C]",
		"[Z] [M] [P]",
		" 1   2   3",
	}, lines)

	again, err := diagram.Parse(lines)
	require.NoError(t, err)
	assert.Equal(t, pileLabels(t, w), pileLabels(t, again))
}

func TestRenderText_EmptyWarehouse(t *testing.T) {
	assert.Equal(t, " 1   2", diagram.RenderText(domain.NewWarehouse(2)))
}

func TestRender_AfterMoves(t *testing.T) {
	w, err := diagram.Parse(sampleDiagram)
	require.NoError(t, err)
	// Três caixotes, um a um, da pilha 2 para a 3: a ordem chega invertida.
	require.NoError(t, w.Transfer(3, 1, 2, nil))

	want := []string{
		"        [M]",
		"        [C]",
		"[N]     [D]",
		"[Z]     [P]",
		" 1   2   3",
	}
	if diff := cmp.Diff(want, diagram.Render(w)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}
