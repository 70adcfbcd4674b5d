package domain

// Crate é uma unidade rotulada e imutável do armazém.
// Dois caixotes com o mesmo rótulo são considerados iguais.
type Crate struct {
	label rune
}

// NewCrate cria um caixote com o rótulo informado.
func NewCrate(label rune) Crate {
	return Crate{label: label}
}

// Label retorna o rótulo do caixote.
func (c Crate) Label() rune {
	return c.label
}

func (c Crate) String() string {
	return string(c.label)
}
