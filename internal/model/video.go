package model

import "time"

// DataSourceCompetitor tags rows written by the competitor import pipeline.
const DataSourceCompetitor = "competitor"

// VideoRecord is one imported competitor video. The natural key is the
// source video ID; re-importing the same ID fully overwrites the row.
type VideoRecord struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	ChannelID        string        `json:"channelId"`
	ChannelName      string        `json:"channelName"`
	PublishedAt      time.Time     `json:"publishedAt"`
	Duration         string        `json:"duration"` // ISO 8601, retained verbatim
	ViewCount        int64         `json:"viewCount"`
	LikeCount        int64         `json:"likeCount"`
	CommentCount     int64         `json:"commentCount"`
	ThumbnailURL     string        `json:"thumbnailUrl"`
	PerformanceRatio float64       `json:"performanceRatio"`
	ChannelAvgViews  int64         `json:"channelAvgViews"`
	DataSource       string        `json:"dataSource"`
	IsCompetitor     bool          `json:"isCompetitor"`
	ImportedBy       string        `json:"importedBy"`
	ImportDate       time.Time     `json:"importDate"`
	Metadata         VideoMetadata `json:"metadata"`
}

// VideoMetadata is the nested bag persisted as JSONB alongside each record.
type VideoMetadata struct {
	Tags           []string       `json:"tags,omitempty"`
	CategoryID     string         `json:"categoryId,omitempty"`
	ImportSettings ImportSettings `json:"importSettings"`
	ChannelStats   *ChannelStats  `json:"channelStats,omitempty"`
}

// ImportSettings snapshots the request options that produced the record.
type ImportSettings struct {
	TimePeriod    string `json:"timePeriod"`
	MaxVideos     string `json:"maxVideos"`
	ExcludeShorts bool   `json:"excludeShorts"`
}

// ChannelStats snapshots the channel's statistics at import time.
type ChannelStats struct {
	SubscriberCount int64 `json:"subscriberCount"`
	ViewCount       int64 `json:"viewCount"`
	VideoCount      int64 `json:"videoCount"`
}
