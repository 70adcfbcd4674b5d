package diagram

import (
	"fmt"
	"strings"

	"gocrane/internal/domain"
)

// Render desenha o armazém no mesmo formato aceito por Parse.
// Espaços à direita de cada linha são removidos.
func Render(w *domain.Warehouse) []string {
	n := w.PileCount()
	height := w.Height()
	piles := make([][]domain.Crate, n)
	for i := 0; i < n; i++ {
		p, _ := w.Pile(i)
		piles[i] = p.Items()
	}

	lines := make([]string, 0, height+1)
	for level := height - 1; level >= 0; level-- {
		var b strings.Builder
		for i, items := range piles {
			if i > 0 {
				b.WriteByte(' ')
			}
			if level < len(items) {
				fmt.Fprintf(&b, "[%c]", items[level].Label())
			} else {
				b.WriteString("   ")
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}

	var idx strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			idx.WriteByte(' ')
		}
		fmt.Fprintf(&idx, " %d ", i+1)
	}
	lines = append(lines, strings.TrimRight(idx.String(), " "))
	return lines
}

// RenderText junta o resultado de Render com quebras de linha.
func RenderText(w *domain.Warehouse) string {
	return strings.Join(Render(w), "\n")
}
