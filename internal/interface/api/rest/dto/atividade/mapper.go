package atividade

import (
	"errors"
	"strings"
	"time"

	"sportmeet-api/internal/domain/atividade"
)

func ToResponseAtividade(aDomain atividade.Atividade) Atividade {
	return Atividade{
		Id:                 aDomain.UUID,
		Titulo:             aDomain.Titulo,
		Observacoes:        aDomain.Observacoes,
		Data:               aDomain.Data.Format("2006-01-02"),
		Horario:            aDomain.Horario,
		Cep:                aDomain.Cep,
		Uf:                 aDomain.Uf,
		Street:             aDomain.Street,
		Status:             string(aDomain.Status),
		Capacidade:         aDomain.Capacidade,
		SemLimite:          aDomain.SemLimite,
		CriadorId:          aDomain.CriadorUUID,
		CriadorNome:        aDomain.CriadorNome,
		ModalidadeNome:     aDomain.ModalidadeNome,
		ParticipantesCount: len(aDomain.Participantes),
	}
}

func ToResponseAtividades(asDomain atividade.Atividades) Atividades {
	as := make(Atividades, len(asDomain))
	for idx, a := range asDomain {
		as[idx] = ToResponseAtividade(*a)
	}

	return as
}

func ToPageResponse(asDomain atividade.Atividades, page, size int, total int64) PageResponse {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return PageResponse{
		Content:       ToResponseAtividades(asDomain),
		CurrentPage:   page,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

func ToDomainAtividade(req CreateRequest) (atividade.Atividade, error) {
	d, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		return atividade.Atividade{}, errors.New("invalid data format, want YYYY-MM-DD")
	}

	return atividade.Atividade{
		Titulo:         req.Titulo,
		Observacoes:    req.Observacoes,
		Data:           d,
		Horario:        req.Horario,
		Cep:            req.Cep,
		Uf:             req.Uf,
		Street:         req.Street,
		Capacidade:     req.Capacidade,
		SemLimite:      req.SemLimite,
		ModalidadeNome: req.Modalidade,
	}, nil
}

func ToDomainUpdate(req UpdateRequest) (atividade.Update, error) {
	up := atividade.Update{
		Titulo:      req.Titulo,
		Observacoes: req.Observacoes,
		Horario:     req.Horario,
		Cep:         req.Cep,
		Uf:          req.Uf,
		Street:      req.Street,
		Capacidade:  req.Capacidade,
		SemLimite:   req.SemLimite,
	}

	if req.Data != nil {
		d, err := time.Parse("2006-01-02", *req.Data)
		if err != nil {
			return atividade.Update{}, errors.New("invalid data format, want YYYY-MM-DD")
		}
		up.Data = &d
	}
	if req.Status != nil {
		s := atividade.Status(strings.ToUpper(*req.Status))
		up.Status = &s
	}

	return up, nil
}
