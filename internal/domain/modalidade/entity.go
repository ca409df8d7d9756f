package modalidade

import "errors"

// ErrInvalida signals that at least one requested modalidade name does not
// exist in the reference set.
var ErrInvalida = errors.New("one or more modalidades do not exist")

// Modalidade is a sport category. Immutable reference data: users tag their
// preferences with it and every atividade belongs to exactly one.
type (
	Modalidade struct {
		ID   int64
		Nome string
	}
	Modalidades []*Modalidade
)

func (ms Modalidades) Nomes() []string {
	nomes := make([]string, len(ms))
	for idx, m := range ms {
		nomes[idx] = m.Nome
	}
	return nomes
}
