package users

import (
	"context"

	"codeberg.org/quickai/server/internal/quota"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds a user by OAuth provider or creates a new one
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, email, name, avatarURL string,
) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		provider,
		providerID,
		email,
		name,
		avatarURL,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.AvatarURL,
		&user.Plan,
		&user.FreeUsage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByID, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.AvatarURL,
		&user.Plan,
		&user.FreeUsage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// resolves the quota snapshot a generation request is authorized against
func (r *Repository) FindAccount(ctx context.Context, userID string) (quota.Account, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return quota.Account{}, err
	}

	return quota.Account{
		ID:        user.ID,
		Plan:      quota.Plan(user.Plan),
		FreeUsage: user.FreeUsage,
	}, nil
}

// advances the free-tier counter by one. A no-op for premium users: once a
// plan is premium the counter is never read or modified again.
func (r *Repository) IncrementFreeUsage(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, queryIncrementFreeUsage, userID)
	return err
}

// changes a user's subscription plan
func (r *Repository) UpdatePlan(ctx context.Context, userID, plan string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryUpdatePlan, plan, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.AvatarURL,
		&user.Plan,
		&user.FreeUsage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
