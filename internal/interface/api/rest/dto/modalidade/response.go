package modalidade

type (
	Modalidade struct {
		Id   int64  `json:"id"`
		Nome string `json:"nome"`
	}
	Modalidades  []Modalidade
	ResponseData struct {
		Data Modalidades `json:"data"`
	}
)
