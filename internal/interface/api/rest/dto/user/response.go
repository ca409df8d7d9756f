package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		Id          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		Email       string    `json:"email"`
		Username    string    `json:"username"`
		Genero      string    `json:"genero"`
		Phone       string    `json:"phone"`
		Modalidades []string  `json:"modalidades"`
	}
	Users []User

	PageResponse struct {
		Content       Users `json:"content"`
		CurrentPage   int   `json:"currentPage"`
		TotalElements int64 `json:"totalElements"`
		TotalPages    int   `json:"totalPages"`
	}
)
