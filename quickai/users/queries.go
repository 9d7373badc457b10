package users

const (
	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id, email, provider, provider_id, name, avatar_url, plan, free_usage, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, email, provider, provider_id, name, avatar_url, plan, free_usage, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	// single read-then-write step into the identity store; concurrent
	// requests from the same user may under-count, which is accepted
	queryIncrementFreeUsage = `
		UPDATE users
		SET free_usage = free_usage + 1, updated_at = NOW()
		WHERE id = $1 AND plan = 'free'
	`

	queryUpdatePlan = `
		UPDATE users
		SET plan = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, email, provider, provider_id, name, avatar_url, plan, free_usage, created_at, updated_at
	`
)
