package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "sportmeet-api/internal/domain/user"
)

func userRow(u *User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "uuid", "name", "genero", "username", "email", "data_nascimento",
		"password_hash", "phone", "cep", "uf", "street", "modalidades", "data_cadastro",
	}).AddRow(
		u.ID, u.UUID, u.Name, u.Genero, u.Username, u.Email, u.DataNascimento,
		u.PasswordHash, u.Phone, u.Cep, u.Uf, u.Street, u.Modalidades, u.DataCadastro,
	)
}

func someDBUser() *User {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	return &User{
		ID:             7,
		UUID:           uuid.New(),
		Name:           "Joana Silva",
		Genero:         "FEMININO",
		Username:       "joana.silva",
		Email:          "joana@example.com",
		DataNascimento: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		PasswordHash:   &hash,
		Phone:          "11999990000",
		Cep:            "01310100",
		Uf:             "SP",
		Street:         "Av. Paulista",
		Modalidades:    []string{"FUTEBOL"},
		DataCadastro:   time.Now().UTC(),
	}
}

func TestRepositoryFetchByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)
	stored := someDBUser()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByUsername)).
			WithArgs("joana.silva").
			WillReturnRows(userRow(stored))

		u, err := repo.FetchByUsername(context.Background(), "joana.silva")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, stored.UUID, u.UUID)
		assert.Equal(t, []string{"FUTEBOL"}, u.Modalidades)
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByUsername)).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		u, err := repo.FetchByUsername(context.Background(), "ghost")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFetchPage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)
	stored := someDBUser()

	mock.ExpectQuery(regexp.QuoteMeta(CountUsers)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(41)))
	mock.ExpectQuery(regexp.QuoteMeta(SelectUsersPage)).
		WithArgs(20, 40).
		WillReturnRows(userRow(stored))

	us, total, err := repo.FetchPage(context.Background(), 2, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(41), total)
	require.Len(t, us, 1)
	assert.Equal(t, stored.Username, us[0].Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate(t *testing.T) {
	stored := someDBUser()

	req := domain.User{
		Name:           stored.Name,
		Genero:         stored.Genero,
		Username:       stored.Username,
		Email:          stored.Email,
		DataNascimento: stored.DataNascimento,
		PasswordHash:   stored.PasswordHash,
		Phone:          stored.Phone,
		Cep:            stored.Cep,
		Uf:             stored.Uf,
		Street:         stored.Street,
		Modalidades:    []string{"FUTEBOL"},
	}

	t.Run("success links modalidades in the same tx", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(
				req.Name, req.Genero, req.Username, req.Email, req.DataNascimento,
				req.PasswordHash, req.Phone, req.Cep, req.Uf, req.Street,
			).
			WillReturnRows(pgxmock.NewRows([]string{"id", "uuid", "data_cadastro"}).
				AddRow(stored.ID, stored.UUID, stored.DataCadastro))
		mock.ExpectExec(regexp.QuoteMeta(InsertUserModalidades)).
			WithArgs(stored.ID, req.Modalidades).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		u, err := NewRepository(mock).Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, stored.UUID, u.UUID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation on email maps to the domain error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(
				req.Name, req.Genero, req.Username, req.Email, req.DataNascimento,
				req.PasswordHash, req.Phone, req.Cep, req.Uf, req.Street,
			).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "usuarios_email_key"})
		mock.ExpectRollback()

		_, err = NewRepository(mock).Create(context.Background(), req)
		require.ErrorIs(t, err, domain.ErrEmailTaken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation on username maps to the domain error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(
				req.Name, req.Genero, req.Username, req.Email, req.DataNascimento,
				req.PasswordHash, req.Phone, req.Cep, req.Uf, req.Street,
			).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "usuarios_username_key"})
		mock.ExpectRollback()

		_, err = NewRepository(mock).Create(context.Background(), req)
		require.ErrorIs(t, err, domain.ErrUsernameTaken)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(DeleteUserByUUID)).
			WithArgs(id.String()).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("missing row is ErrNotFound", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(DeleteUserByUUID)).
			WithArgs(id.String()).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		require.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
