package modalidade

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"sportmeet-api/internal/domain/modalidade"
	"sportmeet-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) modalidade.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAll(ctx context.Context) (modalidade.Modalidades, error) {
	rows, err := r.db.Query(ctx, SelectAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (r *Repository) FetchByNome(ctx context.Context, nome string) (*modalidade.Modalidade, error) {
	m := new(modalidade.Modalidade)
	err := r.db.QueryRow(ctx, SelectByNome, nome).Scan(&m.ID, &m.Nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return m, nil
}

func (r *Repository) FetchByNomes(ctx context.Context, nomes []string) (modalidade.Modalidades, error) {
	rows, err := r.db.Query(ctx, SelectByNomes, nomes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows pgx.Rows) (modalidade.Modalidades, error) {
	var ms modalidade.Modalidades
	for rows.Next() {
		m := new(modalidade.Modalidade)
		if err := rows.Scan(&m.ID, &m.Nome); err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ms, nil
}
