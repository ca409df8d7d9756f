package atividade

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"sportmeet-api/internal/domain/user"
)

type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusClosed   Status = "CLOSED"
	StatusCanceled Status = "CANCELED"
)

var (
	ErrNotFound          = errors.New("atividade not found")
	ErrNotCriador        = errors.New("only the criador may change this atividade")
	ErrNotOpen           = errors.New("atividade is not open for subscriptions")
	ErrAlreadySubscribed = errors.New("user is already subscribed to this atividade")
	ErrCapacityReached   = errors.New("atividade has reached its maximum capacity")
	ErrCapacidadeBelow   = errors.New("capacidade is below the current participant count")
)

type (
	Atividade struct {
		UUID            uuid.UUID
		CriadorUUID     user.UUID
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
		Status          Status
		Participantes   []user.UUID

		CriadoEm     time.Time
		AtualizadoEm time.Time
	}
	Atividades []*Atividade

	// Update carries the optional fields of an atividade update; nil fields
	// are left untouched. The criador may flip Status (e.g. to CANCELED) but
	// reopening a closed atividade never happens automatically.
	Update struct {
		Titulo      *string
		Observacoes *string
		Data        *time.Time
		Horario     *string
		Cep         *string
		Uf          *string
		Street      *string
		Capacidade  *int
		SemLimite   *bool
		Status      *Status
	}
)

func (a *Atividade) IsParticipante(u user.UUID) bool {
	for _, p := range a.Participantes {
		if p == u {
			return true
		}
	}
	return false
}

// Inscrever runs the subscription state machine: the atividade must be OPEN,
// the user must not be a participant yet and, when a capacity applies, there
// must be headroom. Reaching the capacity closes the atividade. Callers must
// hold the activity row locked so concurrent subscribers serialize.
func (a *Atividade) Inscrever(u user.UUID) error {
	if a.Status != StatusOpen {
		return ErrNotOpen
	}
	if a.IsParticipante(u) {
		return ErrAlreadySubscribed
	}
	if !a.SemLimite && a.Capacidade != nil && len(a.Participantes) >= *a.Capacidade {
		return ErrCapacityReached
	}

	a.Participantes = append(a.Participantes, u)

	if !a.SemLimite && a.Capacidade != nil && len(a.Participantes) == *a.Capacidade {
		a.Status = StatusClosed
	}

	return nil
}

// Merge copies only the present fields of up onto a.
func (a *Atividade) Merge(up Update) {
	if up.Titulo != nil {
		a.Titulo = *up.Titulo
	}
	if up.Observacoes != nil {
		a.Observacoes = *up.Observacoes
	}
	if up.Data != nil {
		a.Data = *up.Data
	}
	if up.Horario != nil {
		a.Horario = *up.Horario
	}
	if up.Cep != nil {
		a.Cep = *up.Cep
	}
	if up.Uf != nil {
		a.Uf = *up.Uf
	}
	if up.Street != nil {
		a.Street = *up.Street
	}
	if up.Capacidade != nil {
		a.Capacidade = up.Capacidade
	}
	if up.SemLimite != nil {
		a.SemLimite = *up.SemLimite
	}
	if up.Status != nil {
		a.Status = *up.Status
	}
}
