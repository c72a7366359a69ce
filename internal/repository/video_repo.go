package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// UpsertBatch writes the final import batch in a single transaction.
// The write is upsert-by-id: a conflicting row is fully overwritten with the
// new attribute set, including a fresh import_date. Returns the IDs written.
func (r *VideoRepo) UpsertBatch(ctx context.Context, videos []model.VideoRecord) ([]string, error) {
	if len(videos) == 0 {
		return nil, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO competitor_videos (
			video_id, title, description, channel_id, channel_name,
			published_at, duration, view_count, like_count, comment_count,
			thumbnail_url, performance_ratio, channel_avg_views,
			data_source, is_competitor, imported_by, import_date, metadata
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (video_id) DO UPDATE SET
			title             = EXCLUDED.title,
			description       = EXCLUDED.description,
			channel_id        = EXCLUDED.channel_id,
			channel_name      = EXCLUDED.channel_name,
			published_at      = EXCLUDED.published_at,
			duration          = EXCLUDED.duration,
			view_count        = EXCLUDED.view_count,
			like_count        = EXCLUDED.like_count,
			comment_count     = EXCLUDED.comment_count,
			thumbnail_url     = EXCLUDED.thumbnail_url,
			performance_ratio = EXCLUDED.performance_ratio,
			channel_avg_views = EXCLUDED.channel_avg_views,
			data_source       = EXCLUDED.data_source,
			is_competitor     = EXCLUDED.is_competitor,
			imported_by       = EXCLUDED.imported_by,
			import_date       = EXCLUDED.import_date,
			metadata          = EXCLUDED.metadata`

	written := make([]string, 0, len(videos))
	for _, v := range videos {
		meta, err := json.Marshal(v.Metadata)
		if err != nil {
			return nil, fmt.Errorf("marshal metadata for %s: %w", v.ID, err)
		}

		_, err = tx.Exec(ctx, query,
			v.ID, v.Title, v.Description, v.ChannelID, v.ChannelName,
			v.PublishedAt, v.Duration, v.ViewCount, v.LikeCount, v.CommentCount,
			v.ThumbnailURL, v.PerformanceRatio, v.ChannelAvgViews,
			v.DataSource, v.IsCompetitor, v.ImportedBy, v.ImportDate, meta,
		)
		if err != nil {
			return nil, fmt.Errorf("upsert video %s: %w", v.ID, err)
		}
		written = append(written, v.ID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit upsert: %w", err)
	}
	return written, nil
}

// CountByChannel returns the number of stored competitor videos for a channel.
func (r *VideoRepo) CountByChannel(ctx context.Context, channelID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM competitor_videos WHERE channel_id = $1`,
		channelID).Scan(&count)
	return count, err
}
