package user

type (
	// Request is the registration payload. Dates travel as YYYY-MM-DD.
	Request struct {
		Name             string   `json:"name"`
		Genero           string   `json:"genero"`
		Username         string   `json:"username"`
		Email            string   `json:"email"`
		DataNascimento   string   `json:"dataNascimento"`
		Password         string   `json:"password"`
		Phone            string   `json:"phone"`
		Cep              string   `json:"cep"`
		Uf               string   `json:"uf"`
		Street           string   `json:"street"`
		ModalidadesNomes []string `json:"modalidadesNomes"`
	}

	// UpdateRequest carries the optional profile fields. Absent fields stay
	// untouched; a present modalidadesNomes fully replaces the stored list.
	UpdateRequest struct {
		Name             *string  `json:"name"`
		Genero           *string  `json:"genero"`
		Username         *string  `json:"username"`
		Email            *string  `json:"email"`
		DataNascimento   *string  `json:"dataNascimento"`
		Password         *string  `json:"password"`
		Phone            *string  `json:"phone"`
		Cep              *string  `json:"cep"`
		Uf               *string  `json:"uf"`
		Street           *string  `json:"street"`
		ModalidadesNomes []string `json:"modalidadesNomes"`
	}
)
