package atividade

import (
	"github.com/google/uuid"
)

type (
	Atividade struct {
		Id                 uuid.UUID `json:"id"`
		Titulo             string    `json:"titulo"`
		Observacoes        string    `json:"observacoes"`
		Data               string    `json:"data"`
		Horario            string    `json:"horario"`
		Cep                string    `json:"cep"`
		Uf                 string    `json:"uf"`
		Street             string    `json:"street"`
		Status             string    `json:"status"`
		Capacidade         *int      `json:"capacidade"`
		SemLimite          bool      `json:"semLimite"`
		CriadorId          uuid.UUID `json:"criadorId"`
		CriadorNome        string    `json:"criadorNome"`
		ModalidadeNome     string    `json:"modalidadeNome"`
		ParticipantesCount int       `json:"participantesCount"`
	}
	Atividades []Atividade

	PageResponse struct {
		Content       Atividades `json:"content"`
		CurrentPage   int        `json:"currentPage"`
		TotalElements int64      `json:"totalElements"`
		TotalPages    int        `json:"totalPages"`
	}
)
