package atividade

import (
	"context"

	"github.com/google/uuid"

	"sportmeet-api/internal/domain/user"
)

type Repository interface {
	FetchByUUID(ctx context.Context, uuid uuid.UUID) (*Atividade, error)
	FetchPage(ctx context.Context, page, size int) (Atividades, int64, error)
	// FetchNearby ranks atividades by great-circle distance from the given
	// point, keeps those strictly closer than radiusKm and returns the page
	// slice plus the total count under the same predicate.
	FetchNearby(ctx context.Context, lat, lon, radiusKm float64, page, size int) (Atividades, int64, error)
	Create(ctx context.Context, req Atividade) (*Atividade, error)
	Update(ctx context.Context, req Atividade) (*Atividade, error)
	Delete(ctx context.Context, uuid uuid.UUID) error
	DeleteByCriador(ctx context.Context, criador user.UUID) error
	// Inscrever atomically applies the subscription state machine for one
	// participant, serializing against concurrent subscribers of the same
	// atividade.
	Inscrever(ctx context.Context, atividadeUUID uuid.UUID, participante user.UUID) error
}
