package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/youtube"
)

// Request validation errors. These surface before any external call is made.
var (
	ErrMissingChannelID = errors.New("channelId is required")
	ErrMissingUserID    = errors.New("userId is required")
	ErrMissingLimits    = errors.New("timePeriod and maxVideos are required (positive integer or \"all\")")
)

// CatalogProvider is the narrow contract against the external video catalog.
// Implemented by youtube.Client; tests substitute an in-memory fake.
type CatalogProvider interface {
	LookupChannel(ctx context.Context, channelID string) (*youtube.ChannelInfo, error)
	ListUploads(ctx context.Context, playlistID string, opts youtube.ListOptions) ([]youtube.PlaylistEntry, error)
	FetchDetails(ctx context.Context, ids []string) ([]youtube.VideoDetail, error)
}

// VideoStore persists the final import batch.
type VideoStore interface {
	UpsertBatch(ctx context.Context, videos []model.VideoRecord) ([]string, error)
}

// StatusStore maintains the one-row-per-channel bookkeeping record.
type StatusStore interface {
	Upsert(ctx context.Context, channelID, channelName string, totalFound int, fullyImported bool) error
}

// Delegate submits the import to the unified import service.
type Delegate interface {
	Submit(ctx context.Context, req DelegateRequest) (*DelegateResponse, error)
}

// SideEffects fires post-write notifications and reports non-fatal warnings.
type SideEffects interface {
	Dispatch(ctx context.Context, videoIDs []string) []model.ImportWarning
}

// JobRunner accepts an import for background execution.
type JobRunner interface {
	Enqueue(req model.ImportRequest) *model.ImportJob
}

// Outcome is either a synchronous result or a queued-job handle.
type Outcome struct {
	Result *model.ImportResult `json:"result,omitempty"`
	Job    *model.ImportJob    `json:"job,omitempty"`
}

// ImportService orchestrates the competitor channel import pipeline:
// delegation with fallback, catalog pagination, detail fetch, shorts
// filtering, baseline computation, idempotent writes, bookkeeping and
// side-effect dispatch.
type ImportService struct {
	catalog     CatalogProvider
	videos      VideoStore
	status      StatusStore
	delegate    Delegate // nil when no delegate is configured
	sideEffects SideEffects
	jobs        JobRunner // nil disables local queued execution
	log         zerolog.Logger
	now         func() time.Time
}

func NewImportService(catalog CatalogProvider, videos VideoStore, status StatusStore, delegate Delegate, sideEffects SideEffects, log zerolog.Logger) *ImportService {
	return &ImportService{
		catalog:     catalog,
		videos:      videos,
		status:      status,
		delegate:    delegate,
		sideEffects: sideEffects,
		log:         log,
		now:         time.Now,
	}
}

// SetJobRunner wires the local queued-execution runner. Set after
// construction because the runner executes this service's direct path.
func (s *ImportService) SetJobRunner(jobs JobRunner) {
	s.jobs = jobs
}

// Execute runs one import request through the execution-mode state machine.
//
// The orchestrator first attempts delegation. A queued request accepted by
// the delegate returns the job handle immediately; a synchronous delegation
// returns the delegate's counts. Any delegate failure falls back to the
// direct path — the delegate is an optimization layer, and its
// unavailability must not make competitor import unavailable.
func (s *ImportService) Execute(ctx context.Context, req model.ImportRequest) (*Outcome, error) {
	if req.ChannelID == "" {
		return nil, ErrMissingChannelID
	}
	if req.UserID == "" {
		return nil, ErrMissingUserID
	}
	// A body that omits a limit never runs it through Limit's unmarshal
	// validation, and a zero bound would "succeed" writing nothing.
	if req.TimePeriod.IsZero() || req.MaxVideos.IsZero() {
		return nil, ErrMissingLimits
	}

	// Resolve the channel up front in every mode: it fails fast on unknown
	// channels and provides the summary the caller gets back.
	channel, err := s.catalog.LookupChannel(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}

	if s.delegate != nil {
		outcome, err := s.runDelegated(ctx, req, channel)
		if err == nil {
			return outcome, nil
		}
		s.log.Warn().Err(err).
			Str("channel_id", req.ChannelID).
			Msg("delegate import failed, falling back to direct path")

		if req.Queue && s.jobs != nil {
			return &Outcome{Job: s.jobs.Enqueue(req)}, nil
		}

		result, err := s.runDirect(ctx, req, channel, model.ModeFallbackDirect)
		if err != nil {
			return nil, err
		}
		return &Outcome{Result: result}, nil
	}

	if req.Queue && s.jobs != nil {
		return &Outcome{Job: s.jobs.Enqueue(req)}, nil
	}

	result, err := s.runDirect(ctx, req, channel, model.ModeDirect)
	if err != nil {
		return nil, err
	}
	return &Outcome{Result: result}, nil
}

// RunDirect performs the direct path end to end. It is the entry point used
// by the local job runner and the refresh worker.
func (s *ImportService) RunDirect(ctx context.Context, req model.ImportRequest) (*model.ImportResult, error) {
	channel, err := s.catalog.LookupChannel(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	return s.runDirect(ctx, req, channel, model.ModeDirect)
}

// runDelegated submits the request to the unified import service.
func (s *ImportService) runDelegated(ctx context.Context, req model.ImportRequest, channel *youtube.ChannelInfo) (*Outcome, error) {
	resp, err := s.delegate.Submit(ctx, DelegateRequest{
		Source:    model.DataSourceCompetitor,
		ChannelID: req.ChannelID,
		UseQueue:  req.Queue,
		Options: DelegateOptions{
			BatchSize:      50,
			SkipEmbeddings: false,
			SkipExports:    true,
			TimePeriod:     req.TimePeriod.String(),
			MaxVideos:      req.MaxVideos.String(),
			ExcludeShorts:  req.ExcludeShorts,
		},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("delegate rejected import: %s", resp.Message)
	}

	if req.Queue && resp.JobID != "" {
		now := s.now().UTC()
		return &Outcome{Job: &model.ImportJob{
			ID:        resp.JobID,
			ChannelID: req.ChannelID,
			Status:    model.JobStatusQueued,
			CreatedAt: now,
			UpdatedAt: now,
		}}, nil
	}

	return &Outcome{Result: &model.ImportResult{
		Channel:       summarize(channel),
		VideosWritten: resp.VideosProcessed,
		Mode:          model.ModeDelegated,
	}}, nil
}

// runDirect fetches, filters, scores and writes the channel's videos, then
// runs bookkeeping and side effects. Any error before the write aborts with
// nothing written; after the write, only fatal storage errors were possible
// and everything else degrades to warnings.
func (s *ImportService) runDirect(ctx context.Context, req model.ImportRequest, channel *youtube.ChannelInfo, mode string) (*model.ImportResult, error) {
	opts := youtube.ListOptions{}
	if !req.TimePeriod.All {
		cutoff := s.now().UTC().AddDate(0, 0, -req.TimePeriod.Value)
		opts.PublishedAfter = &cutoff
	}
	// When shorts are excluded the bound applies to the post-filter set, so
	// the walk cannot stop early at the raw bound. The hard entry cap still
	// bounds the work.
	if !req.MaxVideos.All && !req.ExcludeShorts {
		opts.MaxVideos = req.MaxVideos.Value
	}

	entries, err := s.catalog.ListUploads(ctx, channel.UploadsPlaylist, opts)
	if err != nil {
		return nil, fmt.Errorf("list uploads for %s: %w", req.ChannelID, err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.VideoID)
	}

	details, err := s.catalog.FetchDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch video details for %s: %w", req.ChannelID, err)
	}

	details = FilterShorts(details, req.ExcludeShorts)
	if !req.MaxVideos.All && len(details) > req.MaxVideos.Value {
		details = details[:req.MaxVideos.Value]
	}

	viewCounts := make([]int64, 0, len(details))
	for _, d := range details {
		viewCounts = append(viewCounts, d.ViewCount)
	}
	baseline := ChannelBaseline(viewCounts)

	records := s.buildRecords(req, channel, details, baseline)

	written, err := s.videos.UpsertBatch(ctx, records)
	if err != nil {
		// Fatal: no bookkeeping update, no side effects.
		return nil, fmt.Errorf("write import batch: %w", err)
	}

	// Bookkeeping is best-effort from here: the videos are durably written.
	fullyImported := req.TimePeriod.All && req.MaxVideos.All
	if err := s.status.Upsert(ctx, channel.ID, channel.Title, len(written), fullyImported); err != nil {
		s.log.Error().Err(err).
			Str("channel_id", channel.ID).
			Msg("channel import status update failed")
	}

	warnings := s.sideEffects.Dispatch(ctx, written)

	s.log.Info().
		Str("channel_id", channel.ID).
		Str("mode", mode).
		Int("videos_written", len(written)).
		Int("warnings", len(warnings)).
		Msg("competitor import complete")

	return &model.ImportResult{
		Channel:       summarize(channel),
		VideosWritten: len(written),
		Mode:          mode,
		Warnings:      warnings,
	}, nil
}

// buildRecords converts detail records into VideoRecords with the batch
// baseline and the request's settings snapshot applied.
func (s *ImportService) buildRecords(req model.ImportRequest, channel *youtube.ChannelInfo, details []youtube.VideoDetail, baseline int64) []model.VideoRecord {
	importDate := s.now().UTC()
	settings := model.ImportSettings{
		TimePeriod:    req.TimePeriod.String(),
		MaxVideos:     req.MaxVideos.String(),
		ExcludeShorts: req.ExcludeShorts,
	}
	stats := &model.ChannelStats{
		SubscriberCount: channel.SubscriberCount,
		ViewCount:       channel.ViewCount,
		VideoCount:      channel.VideoCount,
	}

	records := make([]model.VideoRecord, 0, len(details))
	for _, d := range details {
		channelName := d.ChannelTitle
		if channelName == "" {
			channelName = channel.Title
		}

		records = append(records, model.VideoRecord{
			ID:               d.ID,
			Title:            d.Title,
			Description:      d.Description,
			ChannelID:        channel.ID,
			ChannelName:      channelName,
			PublishedAt:      d.PublishedAt,
			Duration:         d.Duration,
			ViewCount:        d.ViewCount,
			LikeCount:        d.LikeCount,
			CommentCount:     d.CommentCount,
			ThumbnailURL:     d.Thumbnail,
			PerformanceRatio: PerformanceRatio(d.ViewCount, baseline),
			ChannelAvgViews:  baseline,
			DataSource:       model.DataSourceCompetitor,
			IsCompetitor:     true,
			ImportedBy:       req.UserID,
			ImportDate:       importDate,
			Metadata: model.VideoMetadata{
				Tags:           d.Tags,
				CategoryID:     d.CategoryID,
				ImportSettings: settings,
				ChannelStats:   stats,
			},
		})
	}
	return records
}

func summarize(ch *youtube.ChannelInfo) model.ChannelSummary {
	return model.ChannelSummary{
		ChannelID:       ch.ID,
		Title:           ch.Title,
		Handle:          ch.Handle,
		SubscriberCount: ch.SubscriberCount,
		VideoCount:      ch.VideoCount,
		ViewCount:       ch.ViewCount,
		Thumbnail:       ch.Thumbnail,
	}
}
