package atividade

import (
	"time"

	"github.com/google/uuid"
)

type (
	Atividade struct {
		ID              uint64
		UUID            uuid.UUID
		CriadorUUID     uuid.UUID
		CriadorNome     string
		CriadorUsername string
		ModalidadeNome  string
		Titulo          string
		Observacoes     string
		Data            time.Time
		Horario         string
		Cep             string
		Uf              string
		Street          string
		Latitude        float64
		Longitude       float64
		Capacidade      *int
		SemLimite       bool
		Status          string
		Participantes   []uuid.UUID

		CriadoEm     time.Time
		AtualizadoEm time.Time
	}
	Atividades []*Atividade
)
