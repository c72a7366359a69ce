package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DelegateRequest is the payload sent to the unified import service. The
// delegate runs the same ingestion with optional extra processing
// (classification, export); it is an optimization layer, never a hard
// dependency.
type DelegateRequest struct {
	Source    string          `json:"source"` // always "competitor"
	ChannelID string          `json:"channelId"`
	UseQueue  bool            `json:"useQueue"`
	Options   DelegateOptions `json:"options"`
}

// DelegateOptions is the options bag forwarded with every delegation.
type DelegateOptions struct {
	BatchSize      int    `json:"batchSize"`
	SkipEmbeddings bool   `json:"skipEmbeddings"`
	SkipExports    bool   `json:"skipExports"`
	TimePeriod     string `json:"timePeriod"`
	MaxVideos      string `json:"maxVideos"`
	ExcludeShorts  bool   `json:"excludeShorts"`
}

// DelegateResponse carries either a job handle (queued) or processing counts
// (sync).
type DelegateResponse struct {
	Success             bool   `json:"success"`
	JobID               string `json:"jobId,omitempty"`
	VideosProcessed     int    `json:"videosProcessed"`
	EmbeddingsGenerated int    `json:"embeddingsGenerated"`
	Message             string `json:"message,omitempty"`
}

// DelegateClient submits imports to the unified import service over HTTP.
type DelegateClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewDelegateClient(baseURL string) *DelegateClient {
	return &DelegateClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Submit sends the import to the delegate and decodes its response. A
// non-2xx status or transport error is returned to the orchestrator, which
// falls back to the direct path rather than failing the request.
func (c *DelegateClient) Submit(ctx context.Context, req DelegateRequest) (*DelegateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal delegate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/video-import/unified", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build delegate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("delegate call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("delegate returned status %d", resp.StatusCode)
	}

	var out DelegateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode delegate response: %w", err)
	}
	return &out, nil
}
