package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
)

type ImportStatusRepo struct {
	pool *pgxpool.Pool
}

func NewImportStatusRepo(pool *pgxpool.Pool) *ImportStatusRepo {
	return &ImportStatusRepo{pool: pool}
}

// Upsert records an import for a channel as a single atomic statement.
// First import inserts the row with both dates set to now; later imports
// update everything except first_import_date, which is immutable.
// Two concurrent first imports of the same channel cannot both insert.
func (r *ImportStatusRepo) Upsert(ctx context.Context, channelID, channelName string, totalFound int, fullyImported bool) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO channel_import_status (
			id, channel_id, channel_name,
			first_import_date, last_refresh_date,
			total_videos_found, is_fully_imported
		)
		VALUES ($1, $2, $3, $4, $4, $5, $6)
		ON CONFLICT (channel_id) DO UPDATE SET
			channel_name       = EXCLUDED.channel_name,
			last_refresh_date  = EXCLUDED.last_refresh_date,
			total_videos_found = EXCLUDED.total_videos_found,
			is_fully_imported  = EXCLUDED.is_fully_imported`

	_, err := r.pool.Exec(ctx, query,
		uuid.NewString(), channelID, channelName, now, totalFound, fullyImported)
	return err
}

// FindByChannelID returns the bookkeeping row for a channel.
func (r *ImportStatusRepo) FindByChannelID(ctx context.Context, channelID string) (*model.ChannelImportStatus, error) {
	query := `
		SELECT id, channel_id, channel_name, first_import_date,
		       last_refresh_date, total_videos_found, is_fully_imported
		FROM channel_import_status
		WHERE channel_id = $1`

	var st model.ChannelImportStatus
	err := r.pool.QueryRow(ctx, query, channelID).Scan(
		&st.ID, &st.ChannelID, &st.ChannelName, &st.FirstImportDate,
		&st.LastRefreshDate, &st.TotalVideosFound, &st.IsFullyImported,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// ListStale returns channel IDs whose last refresh is older than maxAge,
// oldest first. Used by the background refresh worker.
func (r *ImportStatusRepo) ListStale(ctx context.Context, maxAge time.Duration, limit int) ([]string, error) {
	query := `
		SELECT channel_id
		FROM channel_import_status
		WHERE last_refresh_date < $1
		ORDER BY last_refresh_date ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, time.Now().UTC().Add(-maxAge), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
