package creations

const (
	queryCreate = `
		INSERT INTO creations (id, user_id, prompt, content, type, publish)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	queryListByUser = `
		SELECT id, user_id, prompt, content, type, publish, likes, created_at
		FROM creations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	queryListPublished = `
		SELECT id, user_id, prompt, content, type, publish, likes, created_at
		FROM creations
		WHERE publish = true
		ORDER BY created_at DESC
	`

	queryFindPublishedByID = `
		SELECT id, user_id, prompt, content, type, publish, likes, created_at
		FROM creations
		WHERE id = $1 AND publish = true
	`

	queryUpdateLikes = `
		UPDATE creations
		SET likes = $1
		WHERE id = $2
		RETURNING id, user_id, prompt, content, type, publish, likes, created_at
	`
)
