package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Pranav210905/fin/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteProfileRepository implements ProfileRepository on a local SQLite
// file, for running without any remote document store.
type SQLiteProfileRepository struct {
	db *sql.DB
}

// NewSQLiteProfileRepository opens (and if needed creates) the database at path
func NewSQLiteProfileRepository(path string) (*SQLiteProfileRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	r := &SQLiteProfileRepository{db: db}
	if err := r.initDB(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteProfileRepository) initDB() error {
	query := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		username TEXT NOT NULL UNIQUE,
		avatar TEXT,
		bio TEXT,
		joined_at TEXT,
		followers TEXT,
		following TEXT,
		badges TEXT
	);
	`
	_, err := r.db.Exec(query)
	return err
}

func (r *SQLiteProfileRepository) GetProfile(ctx context.Context, id string) (*models.User, error) {
	var (
		user                         models.User
		joinedAt                     string
		followers, following, badges string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, username, avatar, bio, joined_at, followers, following, badges FROM profiles WHERE id = ?`, id,
	).Scan(&user.ID, &user.Name, &user.Username, &user.Avatar, &user.Bio, &joinedAt, &followers, &following, &badges)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}

	if user.JoinedAt, err = time.Parse(time.RFC3339Nano, joinedAt); err != nil {
		return nil, fmt.Errorf("decode profile %s joined_at: %w", id, err)
	}
	for _, f := range []struct {
		raw string
		dst *[]string
	}{{followers, &user.Followers}, {following, &user.Following}, {badges, &user.Badges}} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("decode profile %s: %w", id, err)
		}
	}
	return &user, nil
}

func (r *SQLiteProfileRepository) SaveProfile(ctx context.Context, user *models.User) error {
	followers, _ := json.Marshal(nonNil(user.Followers))
	following, _ := json.Marshal(nonNil(user.Following))
	badges, _ := json.Marshal(nonNil(user.Badges))

	query := `
	INSERT INTO profiles (id, name, username, avatar, bio, joined_at, followers, following, badges)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		username = excluded.username,
		avatar = excluded.avatar,
		bio = excluded.bio,
		joined_at = excluded.joined_at,
		followers = excluded.followers,
		following = excluded.following,
		badges = excluded.badges
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Username,
		user.Avatar,
		user.Bio,
		user.JoinedAt.UTC().Format(time.RFC3339Nano),
		string(followers),
		string(following),
		string(badges),
	)
	return err
}

// Close closes the database connection
func (r *SQLiteProfileRepository) Close() error {
	return r.db.Close()
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
