package atividade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"sportmeet-api/internal/domain/atividade"
	"sportmeet-api/internal/domain/user"
	"sportmeet-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) atividade.Repository {
	return &Repository{db: db}
}

func scanAtividade(row pgx.Row) (*Atividade, error) {
	a := new(Atividade)
	err := row.Scan(
		&a.ID,
		&a.UUID,
		&a.CriadorUUID,
		&a.CriadorNome,
		&a.CriadorUsername,
		&a.ModalidadeNome,
		&a.Titulo,
		&a.Observacoes,
		&a.Data,
		&a.Horario,
		&a.Cep,
		&a.Uf,
		&a.Street,
		&a.Latitude,
		&a.Longitude,
		&a.Capacidade,
		&a.SemLimite,
		&a.Status,
		&a.Participantes,

		&a.CriadoEm,
		&a.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func collect(rows pgx.Rows) (Atividades, error) {
	var as Atividades
	for rows.Next() {
		a, err := scanAtividade(rows)
		if err != nil {
			return nil, err
		}
		as = append(as, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return as, nil
}

func (r *Repository) FetchByUUID(ctx context.Context, id uuid.UUID) (*atividade.Atividade, error) {
	a, err := scanAtividade(r.db.QueryRow(ctx, SelectAtividadeByUUID, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchPage(ctx context.Context, page, size int) (atividade.Atividades, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, CountAtividades).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, SelectAtividadesPage, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	as, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}

	return fromDBModels(&as), total, nil
}

func (r *Repository) FetchNearby(ctx context.Context, lat, lon, radiusKm float64, page, size int) (atividade.Atividades, int64, error) {
	// count and data share the same distance predicate so the page and the
	// total can never drift apart
	var total int64
	if err := r.db.QueryRow(ctx, CountAtividadesNearby, lat, lon, radiusKm).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, SelectAtividadesNearby, lat, lon, radiusKm, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	as, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}

	return fromDBModels(&as), total, nil
}

func (r *Repository) Create(ctx context.Context, req atividade.Atividade) (*atividade.Atividade, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	a := new(Atividade)
	err = tx.QueryRow(
		ctx,
		InsertAtividade,
		req.CriadorUUID.String(), req.ModalidadeNome,
		req.Titulo, req.Observacoes, req.Data, req.Horario,
		req.Cep, req.Uf, req.Street, req.Latitude, req.Longitude,
		req.Capacidade, req.SemLimite, string(req.Status),
	).Scan(&a.ID, &a.UUID, &a.CriadoEm, &a.AtualizadoEm)
	if err != nil {
		return nil, err
	}

	// the criador is always the first participant
	var criadorID uint64
	if err = tx.QueryRow(ctx, SelectUsuarioIDByUUID, req.CriadorUUID.String()).Scan(&criadorID); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(ctx, InsertParticipante, a.ID, criadorID); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	created := req
	created.UUID = a.UUID
	created.Participantes = []user.UUID{req.CriadorUUID}
	created.CriadoEm = a.CriadoEm
	created.AtualizadoEm = a.AtualizadoEm

	return &created, nil
}

func (r *Repository) Update(ctx context.Context, req atividade.Atividade) (*atividade.Atividade, error) {
	updated := req
	err := r.db.QueryRow(ctx, UpdateAtividadeByUUID,
		req.Titulo, req.Observacoes, req.Data, req.Horario,
		req.Cep, req.Uf, req.Street, req.Capacidade, req.SemLimite,
		string(req.Status), req.UUID.String(),
	).Scan(&updated.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, DeleteAtividadeByUUID, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return atividade.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteByCriador(ctx context.Context, criador user.UUID) error {
	_, err := r.db.Exec(ctx, DeleteByCriadorUUID, criador.String())
	return err
}

// Inscrever applies the subscription state machine inside one transaction.
// The activity row is locked first, so two subscribers racing for the last
// slot serialize and the capacity invariant holds.
func (r *Repository) Inscrever(ctx context.Context, atividadeUUID uuid.UUID, participante user.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	a := new(atividade.Atividade)
	var atividadeID uint64
	err = tx.QueryRow(ctx, LockAtividadeByUUID, atividadeUUID.String()).Scan(
		&atividadeID, &a.Status, &a.SemLimite, &a.Capacidade,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return atividade.ErrNotFound
		}
		return err
	}

	var participanteID uint64
	err = tx.QueryRow(ctx, SelectUsuarioIDByUUID, participante.String()).Scan(&participanteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrNotFound
		}
		return err
	}

	rows, err := tx.Query(ctx, SelectParticipanteUUIDs, atividadeID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var p user.UUID
		if err = rows.Scan(&p); err != nil {
			rows.Close()
			return err
		}
		a.Participantes = append(a.Participantes, p)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return err
	}

	if err = a.Inscrever(participante); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, InsertParticipante, atividadeID, participanteID); err != nil {
		return err
	}
	if a.Status == atividade.StatusClosed {
		if _, err = tx.Exec(ctx, CloseAtividadeByID, atividadeID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
