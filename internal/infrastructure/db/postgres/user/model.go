package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID             uint64
		UUID           uuid.UUID
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
)
