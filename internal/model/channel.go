package model

import "time"

// ChannelImportStatus is the one-row-per-channel bookkeeping record.
// FirstImportDate is set once on creation and never changes; every later
// import of the same channel updates the remaining fields.
type ChannelImportStatus struct {
	ID               string    `json:"id"`
	ChannelID        string    `json:"channelId"`
	ChannelName      string    `json:"channelName"`
	FirstImportDate  time.Time `json:"firstImportDate"`
	LastRefreshDate  time.Time `json:"lastRefreshDate"`
	TotalVideosFound int       `json:"totalVideosFound"` // last-import count, not cumulative
	IsFullyImported  bool      `json:"isFullyImported"`
}

// ChannelSummary describes the resolved channel returned to the caller
// after a successful import.
type ChannelSummary struct {
	ChannelID       string `json:"channelId"`
	Title           string `json:"title"`
	Handle          string `json:"handle,omitempty"`
	SubscriberCount int64  `json:"subscriberCount"`
	VideoCount      int64  `json:"videoCount"`
	ViewCount       int64  `json:"viewCount"`
	Thumbnail       string `json:"thumbnailUrl,omitempty"`
}
