package domain

import "fmt"

// Pile é uma pilha ordenada de caixotes. O último elemento de items é o topo,
// ou seja, o primeiro caixote que o guindaste alcança.
type Pile struct {
	items []Crate
}

// NewPile cria uma pilha com os caixotes informados, do fundo para o topo.
func NewPile(crates ...Crate) *Pile {
	items := make([]Crate, len(crates))
	copy(items, crates)
	return &Pile{items: items}
}

// Push coloca um caixote no topo da pilha.
func (p *Pile) Push(c Crate) {
	p.items = append(p.items, c)
}

// PopOne remove e retorna o caixote do topo. O segundo retorno é false se a pilha estiver vazia.
func (p *Pile) PopOne() (Crate, bool) {
	n := len(p.items)
	if n == 0 {
		return Crate{}, false
	}
	c := p.items[n-1]
	p.items = p.items[:n-1]
	return c, true
}

// PopMany remove os count caixotes do topo e os retorna na ordem em que saem da pilha
// (o topo primeiro). Entra em pânico se count for maior que a profundidade: quem chama
// deve validar antes.
func (p *Pile) PopMany(count int) []Crate {
	if count < 0 || count > len(p.items) {
		panic(fmt.Sprintf("pile: não é possível remover %d caixotes de uma pilha com %d", count, len(p.items)))
	}
	out := make([]Crate, 0, count)
	for i := 0; i < count; i++ {
		c, _ := p.PopOne()
		out = append(out, c)
	}
	return out
}

// PushMany empilha os caixotes exatamente na ordem recebida: o último da lista termina no topo.
func (p *Pile) PushMany(crates []Crate) {
	for _, c := range crates {
		p.Push(c)
	}
}

// Depth retorna a quantidade de caixotes na pilha.
func (p *Pile) Depth() int {
	return len(p.items)
}

// Top retorna o rótulo do caixote do topo, se houver.
func (p *Pile) Top() (rune, bool) {
	if len(p.items) == 0 {
		return 0, false
	}
	return p.items[len(p.items)-1].Label(), true
}

// Items retorna uma cópia dos caixotes, do fundo para o topo.
func (p *Pile) Items() []Crate {
	out := make([]Crate, len(p.items))
	copy(out, p.items)
	return out
}

// Labels retorna os rótulos da pilha, do fundo para o topo.
func (p *Pile) Labels() string {
	labels := make([]rune, 0, len(p.items))
	for _, c := range p.items {
		labels = append(labels, c.Label())
	}
	return string(labels)
}
