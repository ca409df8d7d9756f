package services

import (
	"context"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/domain/modalidade"
)

type ModalidadeService struct {
	modalidadeRepository modalidade.Repository
}

func NewModalidadeService(modalidadeRepository modalidade.Repository) ports.ModalidadeService {
	return &ModalidadeService{modalidadeRepository: modalidadeRepository}
}

func (ms *ModalidadeService) FindAll(ctx context.Context) (modalidade.Modalidades, error) {
	return ms.modalidadeRepository.FetchAll(ctx)
}
