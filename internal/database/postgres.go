package database

import (
	"context"
	"fmt"
	"time"

	"github.com/MassBabyGeek/FitDaily-backend/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres ouvre le pool de connexions vers PostgreSQL
func ConnectPostgres(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return pool, nil
}

// Migrate crée les tables si elles n'existent pas encore
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			avatar TEXT,
			current_day INT NOT NULL DEFAULT 1,
			current_streak INT NOT NULL DEFAULT 0,
			longest_streak INT NOT NULL DEFAULT 0,
			total_points INT NOT NULL DEFAULT 0,
			total_challenges INT NOT NULL DEFAULT 0,
			success_rate INT NOT NULL DEFAULT 0,
			badges TEXT[] NOT NULL DEFAULT '{}',
			group_ids TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_login_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS challenges (
			id TEXT PRIMARY KEY,
			day INT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			video_url TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '',
			difficulty INT NOT NULL DEFAULT 1,
			points INT NOT NULL DEFAULT 100,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			challenge_id TEXT NOT NULL,
			challenge_day INT NOT NULL,
			type TEXT NOT NULL,
			content TEXT NOT NULL,
			is_success BOOLEAN NOT NULL,
			points INT NOT NULL,
			group_id TEXT,
			reactions JSONB NOT NULL DEFAULT '[]',
			comments JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS groups (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			owner_id TEXT NOT NULL,
			member_ids TEXT[] NOT NULL DEFAULT '{}',
			total_points INT NOT NULL DEFAULT 0,
			is_public BOOLEAN NOT NULL DEFAULT false,
			invite_code TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			type TEXT NOT NULL,
			content TEXT NOT NULL,
			related_id TEXT,
			group_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_user ON submissions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_group ON submissions(group_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_user ON activities(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_group ON activities(group_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
