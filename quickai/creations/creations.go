package creations

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new creation repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// appends a generation record. Assigns an ID when the caller did not.
func (r *Repository) Create(ctx context.Context, creation *Creation) error {
	if creation.ID == "" {
		creation.ID = uuid.New().String()
	}

	_, err := r.db.Exec(
		ctx,
		queryCreate,
		creation.ID,
		creation.UserID,
		creation.Prompt,
		creation.Content,
		creation.Type,
		creation.Publish,
	)

	return err
}

// lists a user's creations, newest first
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Creation, error) {
	rows, err := r.db.Query(ctx, queryListByUser, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanCreations(rows)
}

// lists all published creations, newest first
func (r *Repository) ListPublished(ctx context.Context) ([]Creation, error) {
	rows, err := r.db.Query(ctx, queryListPublished)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanCreations(rows)
}

// adds or removes the user's like on a published creation
func (r *Repository) ToggleLike(ctx context.Context, creationID, userID string) (*Creation, error) {
	var creation Creation

	err := r.db.QueryRow(ctx, queryFindPublishedByID, creationID).Scan(
		&creation.ID,
		&creation.UserID,
		&creation.Prompt,
		&creation.Content,
		&creation.Type,
		&creation.Publish,
		&creation.Likes,
		&creation.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	if i := slices.Index(creation.Likes, userID); i >= 0 {
		creation.Likes = slices.Delete(creation.Likes, i, i+1)
	} else {
		creation.Likes = append(creation.Likes, userID)
	}

	err = r.db.QueryRow(ctx, queryUpdateLikes, creation.Likes, creation.ID).Scan(
		&creation.ID,
		&creation.UserID,
		&creation.Prompt,
		&creation.Content,
		&creation.Type,
		&creation.Publish,
		&creation.Likes,
		&creation.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &creation, nil
}

type creationRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanCreations(rows creationRows) ([]Creation, error) {
	out := []Creation{}

	for rows.Next() {
		var c Creation

		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Prompt,
			&c.Content,
			&c.Type,
			&c.Publish,
			&c.Likes,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}

		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
