package atividade

// Great-circle distance in km between the query point ($1 lat, $2 lon) and
// the atividade, spherical law of cosines with R = 6371.
const distanceExpr = `
			6371 * acos(
				cos(radians($1)) * cos(radians(a.latitude)) * cos(radians(a.longitude) - radians($2))
				+ sin(radians($1)) * sin(radians(a.latitude))
			)`

const atividadeColumns = `
		a.id, a.uuid, cu.uuid, cu.name, cu.username, m.nome,
		a.titulo, a.observacoes, a.data, to_char(a.horario, 'HH24:MI'),
		a.cep, a.uf, a.street, a.latitude, a.longitude,
		a.capacidade, a.sem_limite, a.status,
		COALESCE(
			(SELECT array_agg(pu.uuid)
			 FROM atividade_participantes ap
			 JOIN usuarios pu ON pu.id = ap.usuario_id
			 WHERE ap.atividade_id = a.id),
			'{}'
		) AS participantes,
		a.criado_em, a.atualizado_em`

const atividadeJoins = `
		FROM atividade a
		JOIN usuarios cu ON cu.id = a.criador_id
		JOIN modalidade m ON m.id = a.modalidade_id`

const (
	SelectAtividadeByUUID = `
		SELECT` + atividadeColumns + atividadeJoins + `
		WHERE a.uuid = $1
	`
	SelectAtividadesPage = `
		SELECT` + atividadeColumns + atividadeJoins + `
		ORDER BY a.data, a.horario, a.id
		LIMIT $1 OFFSET $2
	`
	CountAtividades = `SELECT count(*) FROM atividade`

	SelectAtividadesNearby = `
		SELECT t.id, t.uuid, t.criador_uuid, t.criador_nome, t.criador_username, t.modalidade_nome,
		       t.titulo, t.observacoes, t.data, t.horario, t.cep, t.uf, t.street,
		       t.latitude, t.longitude, t.capacidade, t.sem_limite, t.status,
		       t.participantes, t.criado_em, t.atualizado_em
		FROM (
			SELECT a.id, a.uuid, cu.uuid AS criador_uuid, cu.name AS criador_nome,
			       cu.username AS criador_username, m.nome AS modalidade_nome,
			       a.titulo, a.observacoes, a.data, to_char(a.horario, 'HH24:MI') AS horario,
			       a.cep, a.uf, a.street, a.latitude, a.longitude,
			       a.capacidade, a.sem_limite, a.status,
			       COALESCE(
			           (SELECT array_agg(pu.uuid)
			            FROM atividade_participantes ap
			            JOIN usuarios pu ON pu.id = ap.usuario_id
			            WHERE ap.atividade_id = a.id),
			           '{}'
			       ) AS participantes,
			       a.criado_em, a.atualizado_em,` + distanceExpr + ` AS distancia
			FROM atividade a
			JOIN usuarios cu ON cu.id = a.criador_id
			JOIN modalidade m ON m.id = a.modalidade_id
		) t
		WHERE t.distancia < $3
		ORDER BY t.distancia ASC
		LIMIT $4 OFFSET $5
	`
	CountAtividadesNearby = `
		SELECT count(*)
		FROM atividade a
		WHERE` + distanceExpr + ` < $3
	`

	InsertAtividade = `
		INSERT INTO atividade (criador_id, modalidade_id, titulo, observacoes, data, horario, cep, uf, street, latitude, longitude, capacidade, sem_limite, status)
		VALUES (
			(SELECT id FROM usuarios WHERE uuid = $1),
			(SELECT id FROM modalidade WHERE nome = $2),
			$3, $4, $5, $6::time, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING id, uuid, criado_em, atualizado_em
	`
	InsertParticipante = `
		INSERT INTO atividade_participantes (atividade_id, usuario_id)
		VALUES ($1, $2)
	`
	UpdateAtividadeByUUID = `
		UPDATE atividade
		SET titulo = $1,
		    observacoes = $2,
		    data = $3,
		    horario = $4::time,
		    cep = $5,
		    uf = $6,
		    street = $7,
		    capacidade = $8,
		    sem_limite = $9,
		    status = $10,
		    atualizado_em = now()
		WHERE uuid = $11
		RETURNING atualizado_em
	`
	DeleteAtividadeByUUID = `DELETE FROM atividade WHERE uuid = $1`
	DeleteByCriadorUUID   = `
		DELETE FROM atividade
		WHERE criador_id = (SELECT id FROM usuarios WHERE uuid = $1)
	`

	// Inscrever runs under a transaction; the FOR UPDATE serializes the
	// check-then-act sequence against concurrent subscribers.
	LockAtividadeByUUID = `
		SELECT a.id, a.status, a.sem_limite, a.capacidade
		FROM atividade a
		WHERE a.uuid = $1
		FOR UPDATE
	`
	SelectUsuarioIDByUUID   = `SELECT id FROM usuarios WHERE uuid = $1`
	SelectParticipanteUUIDs = `
		SELECT u.uuid
		FROM atividade_participantes ap
		JOIN usuarios u ON u.id = ap.usuario_id
		WHERE ap.atividade_id = $1
	`
	CloseAtividadeByID = `
		UPDATE atividade
		SET status = 'CLOSED', atualizado_em = now()
		WHERE id = $1
	`
)
