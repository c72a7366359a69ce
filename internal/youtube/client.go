package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// Client fetches channel and video data from the YouTube Data API v3.
type Client struct {
	svc *yt.Service
}

// NewClient creates a Data API client authenticated by API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key required")
	}

	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// LookupChannel resolves a channel ID into its metadata, statistics and
// uploads playlist reference. Zero matches means the channel does not exist.
func (c *Client) LookupChannel(ctx context.Context, channelID string) (*ChannelInfo, error) {
	resp, err := c.svc.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Op: "channels.list", Err: err}
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	ch := resp.Items[0]
	info := &ChannelInfo{ID: ch.Id}

	if ch.Snippet != nil {
		info.Title = ch.Snippet.Title
		info.Handle = ch.Snippet.CustomUrl
		if ch.Snippet.Thumbnails != nil && ch.Snippet.Thumbnails.Default != nil {
			info.Thumbnail = ch.Snippet.Thumbnails.Default.Url
		}
	}
	if ch.Statistics != nil {
		info.SubscriberCount = int64(ch.Statistics.SubscriberCount)
		info.VideoCount = int64(ch.Statistics.VideoCount)
		info.ViewCount = int64(ch.Statistics.ViewCount)
	}
	if ch.ContentDetails != nil && ch.ContentDetails.RelatedPlaylists != nil {
		info.UploadsPlaylist = ch.ContentDetails.RelatedPlaylists.Uploads
	}

	if info.UploadsPlaylist == "" {
		return nil, fmt.Errorf("channel %s has no uploads playlist", channelID)
	}
	return info, nil
}

// ListUploads pages through the channel's upload playlist. Pagination is
// strictly sequential: each page's continuation token comes from the
// previous response.
func (c *Client) ListUploads(ctx context.Context, playlistID string, opts ListOptions) ([]PlaylistEntry, error) {
	fetch := func(pageToken string) (listingPage, error) {
		resp, err := c.svc.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return listingPage{}, &UpstreamError{Op: "playlistItems.list", Err: err}
		}

		page := listingPage{nextToken: resp.NextPageToken}
		for _, item := range resp.Items {
			if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
				continue
			}
			entry := PlaylistEntry{VideoID: item.ContentDetails.VideoId}
			if t, err := time.Parse(time.RFC3339, item.ContentDetails.VideoPublishedAt); err == nil {
				entry.PublishedAt = t
			}
			page.entries = append(page.entries, entry)
		}
		return page, nil
	}

	return collectUploads(fetch, opts)
}

// FetchDetails fetches full metadata for the given video IDs in batches of
// at most 50, the provider's cap per call. IDs that no longer resolve are
// dropped silently; no ordering is guaranteed.
func (c *Client) FetchDetails(ctx context.Context, ids []string) ([]VideoDetail, error) {
	var details []VideoDetail

	for start := 0; start < len(ids); start += pageSize {
		end := min(start+pageSize, len(ids))
		batch := ids[start:end]

		resp, err := c.svc.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(batch...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, &UpstreamError{Op: "videos.list", Err: err}
		}

		for _, item := range resp.Items {
			d := VideoDetail{ID: item.Id}

			if item.Snippet != nil {
				d.Title = item.Snippet.Title
				d.Description = item.Snippet.Description
				d.ChannelID = item.Snippet.ChannelId
				d.ChannelTitle = item.Snippet.ChannelTitle
				d.Tags = item.Snippet.Tags
				d.CategoryID = item.Snippet.CategoryId
				if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
					d.PublishedAt = t
				}
				if item.Snippet.Thumbnails != nil {
					switch {
					case item.Snippet.Thumbnails.High != nil:
						d.Thumbnail = item.Snippet.Thumbnails.High.Url
					case item.Snippet.Thumbnails.Default != nil:
						d.Thumbnail = item.Snippet.Thumbnails.Default.Url
					}
				}
			}
			if item.ContentDetails != nil {
				d.Duration = item.ContentDetails.Duration
			}
			if item.Statistics != nil {
				d.ViewCount = int64(item.Statistics.ViewCount)
				d.LikeCount = int64(item.Statistics.LikeCount)
				d.CommentCount = int64(item.Statistics.CommentCount)
			}

			details = append(details, d)
		}
	}

	return details, nil
}
