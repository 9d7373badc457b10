package creations

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles creation database operations
type Repository struct {
	db *pgxpool.Pool
}

// a persisted log entry describing one successful generation.
// Rows are append-only: the gateway creates them and never mutates or
// deletes them (likes are community state layered on top).
type Creation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Publish   bool      `json:"publish"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}
