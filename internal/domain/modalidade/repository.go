package modalidade

import (
	"context"
)

type Repository interface {
	FetchAll(ctx context.Context) (Modalidades, error)
	FetchByNome(ctx context.Context, nome string) (*Modalidade, error)
	FetchByNomes(ctx context.Context, nomes []string) (Modalidades, error)
}
