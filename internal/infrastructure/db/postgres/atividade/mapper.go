package atividade

import (
	domain "sportmeet-api/internal/domain/atividade"
	"sportmeet-api/internal/domain/user"
)

func fromDBModel(model *Atividade) *domain.Atividade {
	participantes := make([]user.UUID, len(model.Participantes))
	copy(participantes, model.Participantes)

	var a = &domain.Atividade{
		UUID:            model.UUID,
		CriadorUUID:     model.CriadorUUID,
		CriadorNome:     model.CriadorNome,
		CriadorUsername: model.CriadorUsername,
		ModalidadeNome:  model.ModalidadeNome,
		Titulo:          model.Titulo,
		Observacoes:     model.Observacoes,
		Data:            model.Data,
		Horario:         model.Horario,
		Cep:             model.Cep,
		Uf:              model.Uf,
		Street:          model.Street,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		Capacidade:      model.Capacidade,
		SemLimite:       model.SemLimite,
		Status:          domain.Status(model.Status),
		Participantes:   participantes,

		CriadoEm:     model.CriadoEm,
		AtualizadoEm: model.AtualizadoEm,
	}

	return a
}

func fromDBModels(models *Atividades) domain.Atividades {
	as := make(domain.Atividades, len(*models))
	for idx, a := range *models {
		as[idx] = fromDBModel(a)
	}

	return as
}
