package youtube

import (
	"errors"
	"time"
)

// ErrChannelNotFound is returned when the provider resolves zero matches for
// a channel ID. The import fails fast on it, before any write.
var ErrChannelNotFound = errors.New("channel not found")

// UpstreamError wraps a failed provider call. Callers use it to tell catalog
// trouble apart from their own storage failures and to surface the provider's
// message to the client.
type UpstreamError struct {
	Op  string // provider operation, e.g. "playlistItems.list"
	Err error
}

func (e *UpstreamError) Error() string {
	return "youtube " + e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ChannelInfo is the resolved channel plus the reference to its upload
// collection.
type ChannelInfo struct {
	ID              string
	Title           string
	Handle          string
	Thumbnail       string
	SubscriberCount int64
	VideoCount      int64
	ViewCount       int64
	UploadsPlaylist string
}

// PlaylistEntry is one item of the channel's upload listing. Only the video
// ID and publish time are available at this stage; everything else requires
// the detail endpoint.
type PlaylistEntry struct {
	VideoID     string
	PublishedAt time.Time
}

// VideoDetail is the full metadata for one video from the detail endpoint.
type VideoDetail struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	PublishedAt  time.Time
	Duration     string // ISO 8601, verbatim
	Thumbnail    string
	Tags         []string
	CategoryID   string
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}

// ListOptions bounds an upload-listing walk.
type ListOptions struct {
	// PublishedAfter drops entries older than the cutoff. Nil means no
	// date filter ("all time").
	PublishedAfter *time.Time
	// MaxVideos caps the accumulated output. Zero means unbounded; the
	// hard safety cap still applies.
	MaxVideos int
}
