package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Limit is a request bound that is either a positive integer or the literal
// "all". It accepts a JSON number, a numeric string, or "all", matching what
// the dashboard front end sends for timePeriod and maxVideos.
type Limit struct {
	All   bool
	Value int
}

// LimitAll returns the unbounded sentinel.
func LimitAll() Limit {
	return Limit{All: true}
}

// LimitN returns a bounded limit of n.
func LimitN(n int) Limit {
	return Limit{Value: n}
}

// IsZero reports whether the limit was never set. A field absent from the
// request body skips UnmarshalJSON entirely, so the zero value is the only
// way an invalid bound (neither "all" nor positive) can appear.
func (l Limit) IsZero() bool {
	return !l.All && l.Value == 0
}

func (l *Limit) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if strings.EqualFold(s, "all") {
		*l = Limit{All: true}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("limit must be a positive integer or \"all\", got %s", string(data))
	}
	if n <= 0 {
		return fmt.Errorf("limit must be positive, got %d", n)
	}
	*l = Limit{Value: n}
	return nil
}

func (l Limit) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l Limit) String() string {
	if l.All {
		return "all"
	}
	return strconv.Itoa(l.Value)
}

// ImportRequest is the inbound competitor import request. It is transient and
// never persisted.
type ImportRequest struct {
	ChannelID     string `json:"channelId"`
	UserID        string `json:"userId"`
	TimePeriod    Limit  `json:"timePeriod"` // day count or "all"
	MaxVideos     Limit  `json:"maxVideos"`  // video count or "all"
	ExcludeShorts bool   `json:"excludeShorts"`
	Queue         bool   `json:"queue"`
}

// Execution modes reported in the import result.
const (
	ModeDirect         = "direct"
	ModeDelegated      = "delegated"
	ModeFallbackDirect = "fallback_direct"
)

// ImportWarning names a non-fatal failure that occurred after the videos were
// durably written. Warnings never change the success of the import.
type ImportWarning struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// ImportResult is the synchronous outcome of a completed import.
type ImportResult struct {
	Channel       ChannelSummary  `json:"channel"`
	VideosWritten int             `json:"videosWritten"`
	Mode          string          `json:"mode"`
	Warnings      []ImportWarning `json:"warnings,omitempty"`
}

// Import job states for queued execution.
const (
	JobStatusQueued    = "queued"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ImportJob tracks one queued import from acceptance to completion.
type ImportJob struct {
	ID        string        `json:"id"`
	ChannelID string        `json:"channelId"`
	Status    string        `json:"status"`
	Result    *ImportResult `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
