package modalidade

const (
	SelectAll = `
		SELECT id, nome
		FROM modalidade
		ORDER BY nome
	`
	SelectByNome = `
		SELECT id, nome
		FROM modalidade
		WHERE nome = $1
	`
	SelectByNomes = `
		SELECT id, nome
		FROM modalidade
		WHERE nome = ANY($1)
		ORDER BY nome
	`
)
