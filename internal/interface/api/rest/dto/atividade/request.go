package atividade

type (
	// CreateRequest is the creation payload. Data travels as YYYY-MM-DD and
	// horario as HH:MM.
	CreateRequest struct {
		Titulo      string `json:"titulo"`
		Observacoes string `json:"observacoes"`
		Data        string `json:"data"`
		Horario     string `json:"horario"`
		Cep         string `json:"cep"`
		Uf          string `json:"uf"`
		Street      string `json:"street"`
		Capacidade  *int   `json:"capacidade"`
		Modalidade  string `json:"modalidade"`
		SemLimite   bool   `json:"semLimite"`
	}

	// UpdateRequest carries the optional fields; absent fields stay untouched.
	// Status lets the criador cancel (reopening a closed atividade is not a
	// thing the API does on its own).
	UpdateRequest struct {
		Titulo      *string `json:"titulo"`
		Observacoes *string `json:"observacoes"`
		Data        *string `json:"data"`
		Horario     *string `json:"horario"`
		Cep         *string `json:"cep"`
		Uf          *string `json:"uf"`
		Street      *string `json:"street"`
		Capacidade  *int    `json:"capacidade"`
		SemLimite   *bool   `json:"semLimite"`
		Status      *string `json:"status"`
	}
)
