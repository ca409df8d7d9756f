package modalidade

import (
	"sportmeet-api/internal/domain/modalidade"
)

func ToResponseModalidades(msDomain modalidade.Modalidades) Modalidades {
	ms := make(Modalidades, len(msDomain))
	for idx, m := range msDomain {
		ms[idx] = Modalidade{Id: m.ID, Nome: m.Nome}
	}

	return ms
}
