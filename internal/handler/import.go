package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/middleware"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/service"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/youtube"
)

type ImportHandler struct {
	svc  *service.ImportService
	jobs *service.JobService
}

func NewImportHandler(svc *service.ImportService, jobs *service.JobService) *ImportHandler {
	return &ImportHandler{svc: svc, jobs: jobs}
}

// Submit handles POST /api/competitors/import
func (h *ImportHandler) Submit(c fiber.Ctx) error {
	var req model.ImportRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	// Validate channelId
	channelID, errMsg := middleware.ValidateChannelID(req.ChannelID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.ChannelID = channelID

	// Validate userId
	userID, errMsg := middleware.ValidateUserID(req.UserID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.UserID = userID

	start := time.Now()
	outcome, err := h.svc.Execute(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingChannelID) || errors.Is(err, service.ErrMissingUserID) || errors.Is(err, service.ErrMissingLimits) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", err.Error())
		}
		if errors.Is(err, youtube.ErrChannelNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "CHANNEL_NOT_FOUND", "Channel not found on YouTube")
		}
		// Catalog failures are the provider's problem, not ours; pass the
		// provider's message through so the caller can tell.
		var upstream *youtube.UpstreamError
		if errors.As(err, &upstream) {
			recordImportMetrics(nil, time.Since(start))
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", upstream.Error())
		}
		recordImportMetrics(nil, time.Since(start))
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "IMPORT_FAILED", "Import failed")
	}

	recordImportMetrics(outcome.Result, time.Since(start))

	if outcome.Job != nil {
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"queued": true,
			"job":    outcome.Job,
		})
	}
	return c.JSON(outcome.Result)
}

// Job handles GET /api/competitors/import/jobs/:jobId
func (h *ImportHandler) Job(c fiber.Ctx) error {
	jobID, errMsg := middleware.ValidateJobID(c.Params("jobId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if h.jobs == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Job not found")
	}

	job, err := h.jobs.Get(c.Context(), jobID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load job")
	}
	if job == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Job not found")
	}

	return c.JSON(job)
}

// RecordImportOutcome feeds the import collectors for a finished run. The
// local job runner calls it on completion via JobService.OnFinished; imports
// queued with the delegate run remotely and are counted by that service, not
// here.
func RecordImportOutcome(result *model.ImportResult, err error, elapsed time.Duration) {
	if err != nil {
		recordImportMetrics(nil, elapsed)
		return
	}
	recordImportMetrics(result, elapsed)
}

// recordImportMetrics updates the import collectors for a synchronous run.
// Queued outcomes carry no result yet; the job runner reports them on
// completion through RecordImportOutcome.
func recordImportMetrics(result *model.ImportResult, elapsed time.Duration) {
	if Metrics.ImportsTotal == nil {
		return // metrics not initialized (tests)
	}
	if result == nil {
		Metrics.ImportsTotal.WithLabelValues("unknown", "error").Inc()
		return
	}
	Metrics.ImportsTotal.WithLabelValues(result.Mode, "success").Inc()
	Metrics.VideosImportedTotal.Add(float64(result.VideosWritten))
	Metrics.ImportDuration.Observe(elapsed.Seconds())
	for _, w := range result.Warnings {
		Metrics.SideEffectFailures.WithLabelValues(w.Stage).Inc()
	}
}
