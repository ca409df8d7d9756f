package user

const userColumns = `
		u.id, u.uuid, u.name, u.genero, u.username, u.email, u.data_nascimento,
		u.password_hash, u.phone, u.cep, u.uf, u.street,
		COALESCE(array_agg(m.nome ORDER BY m.nome) FILTER (WHERE m.nome IS NOT NULL), '{}') AS modalidades,
		u.data_cadastro`

const userJoins = `
		FROM usuarios u
		LEFT JOIN user_modalidade um ON um.user_id = u.id
		LEFT JOIN modalidade m ON m.id = um.modalidade_id`

const (
	SelectUserByUUID = `
		SELECT` + userColumns + userJoins + `
		WHERE u.uuid = $1
		GROUP BY u.id
	`
	SelectUserByUsername = `
		SELECT` + userColumns + userJoins + `
		WHERE lower(u.username) = lower($1)
		GROUP BY u.id
	`
	SelectUserByEmail = `
		SELECT` + userColumns + userJoins + `
		WHERE lower(u.email) = lower($1)
		GROUP BY u.id
	`
	SelectUsersPage = `
		SELECT` + userColumns + userJoins + `
		GROUP BY u.id
		ORDER BY u.id
		LIMIT $1 OFFSET $2
	`
	CountUsers = `SELECT count(*) FROM usuarios`

	InsertUser = `
		INSERT INTO usuarios (name, genero, username, email, data_nascimento, password_hash, phone, cep, uf, street)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, uuid, data_cadastro
	`
	UpdateUserByUUID = `
		UPDATE usuarios
		SET name = $1,
		    genero = $2,
		    username = $3,
		    email = $4,
		    data_nascimento = $5,
		    password_hash = $6,
		    phone = $7,
		    cep = $8,
		    uf = $9,
		    street = $10
		WHERE uuid = $11
		RETURNING id
	`
	DeleteUserByUUID = `DELETE FROM usuarios WHERE uuid = $1`

	DeleteUserModalidades = `DELETE FROM user_modalidade WHERE user_id = $1`
	InsertUserModalidades = `
		INSERT INTO user_modalidade (user_id, modalidade_id)
		SELECT $1, id FROM modalidade WHERE nome = ANY($2)
	`
)
