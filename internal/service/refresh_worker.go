package service

import (
	"context"
	"log"
	"time"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/repository"
)

const refreshBatchSize = 10

// Refresh scope: recent window only, bounded, shorts kept. A periodic
// refresh must never flip is_fully_imported, so it never requests "all"/"all".
var refreshRequest = model.ImportRequest{
	UserID:     "refresh-worker",
	TimePeriod: model.LimitN(30),
	MaxVideos:  model.LimitN(100),
}

// RefreshWorker periodically re-imports channels whose bookkeeping row has
// gone stale, keeping competitor view counts and performance ratios current
// without manual re-imports.
type RefreshWorker struct {
	statusRepo *repository.ImportStatusRepo
	importSvc  *ImportService
	interval   time.Duration
	maxAge     time.Duration
	stopCh     chan struct{}
}

// NewRefreshWorker creates a worker that ticks every interval and refreshes
// channels not imported within maxAge.
func NewRefreshWorker(statusRepo *repository.ImportStatusRepo, importSvc *ImportService, interval, maxAge time.Duration) *RefreshWorker {
	return &RefreshWorker{
		statusRepo: statusRepo,
		importSvc:  importSvc,
		interval:   interval,
		maxAge:     maxAge,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the periodic refresh loop. It runs one tick immediately,
// then every interval.
func (w *RefreshWorker) Start(ctx context.Context) {
	log.Printf("refresh-worker: starting (interval=%s, max age=%s)", w.interval, w.maxAge)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("refresh-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("refresh-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *RefreshWorker) Stop() {
	close(w.stopCh)
}

// tick refreshes one batch of stale channels, oldest first.
func (w *RefreshWorker) tick(ctx context.Context) {
	start := time.Now()

	channelIDs, err := w.statusRepo.ListStale(ctx, w.maxAge, refreshBatchSize)
	if err != nil {
		log.Printf("refresh-worker: list stale channels: %v", err)
		return
	}
	if len(channelIDs) == 0 {
		return
	}

	refreshed := 0
	for _, chID := range channelIDs {
		req := refreshRequest
		req.ChannelID = chID

		result, err := w.importSvc.RunDirect(ctx, req)
		if err != nil {
			log.Printf("refresh-worker: refresh of %s failed: %v", chID, err)
			continue
		}
		refreshed++
		log.Printf("refresh-worker: refreshed %s (%d videos)", chID, result.VideosWritten)
	}

	elapsed := time.Since(start)
	log.Printf("refresh-worker: tick complete — %d/%d channels refreshed (%s)",
		refreshed, len(channelIDs), elapsed.Round(time.Millisecond))
}
