package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the pipeline's tables if they do not exist. The wider
// dashboard owns its own migrations; only the two tables this service writes
// are managed here.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	createVideos := `
	CREATE TABLE IF NOT EXISTS competitor_videos (
		video_id          TEXT PRIMARY KEY,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		channel_id        TEXT NOT NULL,
		channel_name      TEXT NOT NULL DEFAULT '',
		published_at      TIMESTAMPTZ NOT NULL,
		duration          TEXT NOT NULL DEFAULT '',
		view_count        BIGINT NOT NULL DEFAULT 0,
		like_count        BIGINT NOT NULL DEFAULT 0,
		comment_count     BIGINT NOT NULL DEFAULT 0,
		thumbnail_url     TEXT NOT NULL DEFAULT '',
		performance_ratio DOUBLE PRECISION NOT NULL DEFAULT 1,
		channel_avg_views BIGINT NOT NULL DEFAULT 0,
		data_source       TEXT NOT NULL DEFAULT 'competitor',
		is_competitor     BOOLEAN NOT NULL DEFAULT TRUE,
		imported_by       TEXT NOT NULL,
		import_date       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		metadata          JSONB NOT NULL DEFAULT '{}'::jsonb
	);
	CREATE INDEX IF NOT EXISTS idx_competitor_videos_channel
		ON competitor_videos (channel_id);`

	if _, err := pool.Exec(ctx, createVideos); err != nil {
		return err
	}

	createStatus := `
	CREATE TABLE IF NOT EXISTS channel_import_status (
		id                 UUID PRIMARY KEY,
		channel_id         TEXT NOT NULL UNIQUE,
		channel_name       TEXT NOT NULL DEFAULT '',
		first_import_date  TIMESTAMPTZ NOT NULL,
		last_refresh_date  TIMESTAMPTZ NOT NULL,
		total_videos_found INTEGER NOT NULL DEFAULT 0,
		is_fully_imported  BOOLEAN NOT NULL DEFAULT FALSE
	);`

	_, err := pool.Exec(ctx, createStatus)
	return err
}
