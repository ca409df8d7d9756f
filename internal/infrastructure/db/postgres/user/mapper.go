package user

import (
	domain "sportmeet-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:           model.UUID,
		Name:           model.Name,
		Genero:         model.Genero,
		Username:       model.Username,
		Email:          model.Email,
		DataNascimento: model.DataNascimento,
		PasswordHash:   model.PasswordHash,
		Phone:          model.Phone,
		Cep:            model.Cep,
		Uf:             model.Uf,
		Street:         model.Street,
		Modalidades:    model.Modalidades,

		DataCadastro: model.DataCadastro,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
