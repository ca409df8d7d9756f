package ports

import (
	"context"

	"sportmeet-api/internal/domain/modalidade"
)

type ModalidadeService interface {
	FindAll(ctx context.Context) (modalidade.Modalidades, error)
}
