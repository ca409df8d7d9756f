package user

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sportmeet-api/internal/domain/user"
	"sportmeet-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.UUID,
		&u.Name,
		&u.Genero,
		&u.Username,
		&u.Email,
		&u.DataNascimento,
		&u.PasswordHash,
		&u.Phone,
		&u.Cep,
		&u.Uf,
		&u.Street,
		&u.Modalidades,

		&u.DataCadastro,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) FetchByUUID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByUUID, uuid.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchByUsername(ctx context.Context, username string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByUsername, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchPage(ctx context.Context, page, size int) (user.Users, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, CountUsers).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, SelectUsersPage, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(&us), total, nil
}

func (r *Repository) Create(ctx context.Context, req user.User) (*user.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u := new(User)
	err = tx.QueryRow(
		ctx,
		InsertUser,
		req.Name, req.Genero, req.Username, req.Email, req.DataNascimento,
		req.PasswordHash, req.Phone, req.Cep, req.Uf, req.Street,
	).Scan(&u.ID, &u.UUID, &u.DataCadastro)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	if len(req.Modalidades) > 0 {
		if _, err = tx.Exec(ctx, InsertUserModalidades, u.ID, req.Modalidades); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	created := req
	created.UUID = u.UUID
	created.DataCadastro = u.DataCadastro

	return &created, nil
}

func (r *Repository) Update(ctx context.Context, req user.User) (*user.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id uint64
	err = tx.QueryRow(ctx, UpdateUserByUUID,
		req.Name, req.Genero, req.Username, req.Email, req.DataNascimento,
		req.PasswordHash, req.Phone, req.Cep, req.Uf, req.Street, req.UUID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapUniqueViolation(err)
	}

	if _, err = tx.Exec(ctx, DeleteUserModalidades, id); err != nil {
		return nil, err
	}
	if len(req.Modalidades) > 0 {
		if _, err = tx.Exec(ctx, InsertUserModalidades, id, req.Modalidades); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	updated := req

	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, uuid user.UUID) error {
	tag, err := r.db.Exec(ctx, DeleteUserByUUID, uuid.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

// mapUniqueViolation turns a 23505 on the email or username constraint into
// the matching domain error. The service pre-checks both, so hitting this is
// the race-loser path.
func mapUniqueViolation(err error) error {
	if !postgres.IsPgUniqueViolation(err) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return user.ErrEmailTaken
		}
		if strings.Contains(pgErr.ConstraintName, "username") {
			return user.ErrUsernameTaken
		}
	}
	return err
}
