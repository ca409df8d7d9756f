package ports

import (
	"context"

	"github.com/google/uuid"

	"sportmeet-api/internal/domain/atividade"
)

type AtividadeService interface {
	Create(ctx context.Context, req atividade.Atividade, criadorUsername string) (*atividade.Atividade, error)
	Update(ctx context.Context, atividadeUUID uuid.UUID, up atividade.Update, username string) (*atividade.Atividade, error)
	Inscrever(ctx context.Context, atividadeUUID uuid.UUID, username string) error
	FindNearbyPaginated(ctx context.Context, cep string, distanciaKm float64, page, size int) (atividade.Atividades, int64, error)
	FindAllPaginated(ctx context.Context, page, size int) (atividade.Atividades, int64, error)
	DeleteByUUID(ctx context.Context, atividadeUUID uuid.UUID, username string) error
}
