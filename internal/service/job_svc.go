package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
)

// importFunc runs one import to completion. Wired to ImportService.RunDirect.
type importFunc func(ctx context.Context, req model.ImportRequest) (*model.ImportResult, error)

// JobService runs queued imports in background goroutines and tracks their
// lifecycle in the job store. It serves queued requests when no delegate is
// available to take them.
type JobService struct {
	store      *JobStore
	run        importFunc
	log        zerolog.Logger
	onFinished func(result *model.ImportResult, err error, elapsed time.Duration)
}

func NewJobService(store *JobStore, run importFunc, log zerolog.Logger) *JobService {
	return &JobService{store: store, run: run, log: log}
}

// OnFinished registers an observer invoked after each job finishes, success
// or failure. Used to feed the same import counters the synchronous path
// records; jobs would otherwise be invisible to them.
func (s *JobService) OnFinished(fn func(result *model.ImportResult, err error, elapsed time.Duration)) {
	s.onFinished = fn
}

// Enqueue accepts an import for background execution and returns the job
// handle immediately. Once started, the job runs to completion or failure;
// there is no mid-pipeline abort.
func (s *JobService) Enqueue(req model.ImportRequest) *model.ImportJob {
	now := time.Now().UTC()
	job := model.ImportJob{
		ID:        uuid.NewString(),
		ChannelID: req.ChannelID,
		Status:    model.JobStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx := context.Background()
	if err := s.store.Save(ctx, job); err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("save queued job failed")
	}

	go s.process(job, req)

	return &job
}

// Get returns the job record, or nil if unknown.
func (s *JobService) Get(ctx context.Context, jobID string) (*model.ImportJob, error) {
	return s.store.Get(ctx, jobID)
}

func (s *JobService) process(job model.ImportJob, req model.ImportRequest) {
	// Detached from the request context: the caller already has its handle.
	ctx := context.Background()

	job.Status = model.JobStatusRunning
	job.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, job); err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("save running job failed")
	}

	started := time.Now()
	result, err := s.run(ctx, req)
	job.UpdatedAt = time.Now().UTC()
	if s.onFinished != nil {
		s.onFinished(result, err, time.Since(started))
	}
	if err != nil {
		job.Status = model.JobStatusFailed
		job.Error = err.Error()
		s.log.Error().Err(err).
			Str("job_id", job.ID).
			Str("channel_id", req.ChannelID).
			Msg("queued import failed")
	} else {
		job.Status = model.JobStatusCompleted
		job.Result = result
		s.log.Info().
			Str("job_id", job.ID).
			Str("channel_id", req.ChannelID).
			Int("videos_written", result.VideosWritten).
			Msg("queued import complete")
	}

	if err := s.store.Save(ctx, job); err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("save finished job failed")
	}
}
