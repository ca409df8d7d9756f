package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already in use")
	ErrUsernameTaken = errors.New("username already in use")
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID           UUID
		Name           string
		Genero         string
		Username       string
		Email          string
		DataNascimento time.Time
		PasswordHash   *string
		Phone          string
		Cep            string
		Uf             string
		Street         string
		Modalidades    []string

		DataCadastro time.Time
	}
	Users []*User

	// Update carries the optional fields of a profile update. A nil field
	// leaves the stored value untouched. Password and ModalidadesNomes are
	// not merged here: the password needs re-hashing and the modalidade list
	// is a total overwrite when present at all, both handled by the service.
	Update struct {
		Name             *string
		Genero           *string
		Username         *string
		Email            *string
		DataNascimento   *time.Time
		Password         *string
		Phone            *string
		Cep              *string
		Uf               *string
		Street           *string
		ModalidadesNomes []string
	}
)

// Merge copies only the present fields of up onto u.
func (u *User) Merge(up Update) {
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.Genero != nil {
		u.Genero = *up.Genero
	}
	if up.Username != nil {
		u.Username = *up.Username
	}
	if up.Email != nil {
		u.Email = *up.Email
	}
	if up.DataNascimento != nil {
		u.DataNascimento = *up.DataNascimento
	}
	if up.Phone != nil {
		u.Phone = *up.Phone
	}
	if up.Cep != nil {
		u.Cep = *up.Cep
	}
	if up.Uf != nil {
		u.Uf = *up.Uf
	}
	if up.Street != nil {
		u.Street = *up.Street
	}
}
