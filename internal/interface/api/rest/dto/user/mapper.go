package user

import (
	"errors"
	"time"

	"sportmeet-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	modalidades := uDomain.Modalidades
	if modalidades == nil {
		modalidades = []string{}
	}

	return User{
		Id:          uDomain.UUID,
		Name:        uDomain.Name,
		Email:       uDomain.Email,
		Username:    uDomain.Username,
		Genero:      uDomain.Genero,
		Phone:       uDomain.Phone,
		Modalidades: modalidades,
	}
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToPageResponse(usDomain user.Users, page, size int, total int64) PageResponse {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return PageResponse{
		Content:       ToResponseUsers(usDomain),
		CurrentPage:   page,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

func ToDomainUser(uRequest Request) (user.User, error) {
	d, err := time.Parse("2006-01-02", uRequest.DataNascimento)
	if err != nil {
		return user.User{}, errors.New("invalid dataNascimento format, want YYYY-MM-DD")
	}

	return user.User{
		Name:           uRequest.Name,
		Genero:         uRequest.Genero,
		Username:       uRequest.Username,
		Email:          uRequest.Email,
		DataNascimento: d,
		Phone:          uRequest.Phone,
		Cep:            uRequest.Cep,
		Uf:             uRequest.Uf,
		Street:         uRequest.Street,
		Modalidades:    uRequest.ModalidadesNomes,
	}, nil
}

func ToDomainUpdate(uRequest UpdateRequest) (user.Update, error) {
	up := user.Update{
		Name:             uRequest.Name,
		Genero:           uRequest.Genero,
		Username:         uRequest.Username,
		Email:            uRequest.Email,
		Password:         uRequest.Password,
		Phone:            uRequest.Phone,
		Cep:              uRequest.Cep,
		Uf:               uRequest.Uf,
		Street:           uRequest.Street,
		ModalidadesNomes: uRequest.ModalidadesNomes,
	}

	if uRequest.DataNascimento != nil {
		d, err := time.Parse("2006-01-02", *uRequest.DataNascimento)
		if err != nil {
			return user.Update{}, errors.New("invalid dataNascimento format, want YYYY-MM-DD")
		}
		up.DataNascimento = &d
	}

	return up, nil
}
