package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
)

// Dispatcher fires the best-effort downstream notifications after a
// successful write: a search/aggregate-view refresh and an embedding batch
// trigger. Each call's failure is caught, logged and recorded as a named
// warning; it never propagates, so downstream enrichment can lag or fail
// without blocking ingestion.
type Dispatcher struct {
	refreshURL   string
	embeddingURL string
	httpClient   *http.Client
	log          zerolog.Logger
}

func NewDispatcher(refreshURL, embeddingURL string, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		refreshURL:   refreshURL,
		embeddingURL: embeddingURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		log:          log,
	}
}

// Dispatch runs both side effects for the newly written video IDs and
// returns one warning per failed effect. An unconfigured endpoint is skipped
// silently.
func (d *Dispatcher) Dispatch(ctx context.Context, videoIDs []string) []model.ImportWarning {
	var warnings []model.ImportWarning

	if d.refreshURL != "" {
		if err := d.triggerRefresh(ctx); err != nil {
			d.log.Warn().Err(err).Msg("search refresh trigger failed")
			warnings = append(warnings, model.ImportWarning{
				Stage:   "search_refresh",
				Message: err.Error(),
			})
		}
	}

	if d.embeddingURL != "" && len(videoIDs) > 0 {
		if err := d.triggerEmbeddings(ctx, videoIDs); err != nil {
			d.log.Warn().Err(err).Int("videos", len(videoIDs)).Msg("embedding trigger failed")
			warnings = append(warnings, model.ImportWarning{
				Stage:   "embeddings",
				Message: err.Error(),
			})
		}
	}

	return warnings
}

// triggerRefresh asks the search layer to rebuild its precomputed aggregate
// view. No payload beyond the trigger itself.
func (d *Dispatcher) triggerRefresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.refreshURL, nil)
	if err != nil {
		return err
	}
	return d.do(req)
}

// triggerEmbeddings queues embedding generation for the written videos.
// Re-embedding is never forced: existing vectors stay untouched.
func (d *Dispatcher) triggerEmbeddings(ctx context.Context, videoIDs []string) error {
	payload := struct {
		VideoIDs     []string `json:"videoIds"`
		ForceReembed bool     `json:"forceReembed"`
	}{VideoIDs: videoIDs}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.embeddingURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return d.do(req)
}

func (d *Dispatcher) do(req *http.Request) error {
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
