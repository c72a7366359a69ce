package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/middleware"
	"github.com/makeorbreakshop/video-scripter-sub010/internal/repository"
)

type StatusHandler struct {
	statuses *repository.ImportStatusRepo
	videos   *repository.VideoRepo
}

func NewStatusHandler(statuses *repository.ImportStatusRepo, videos *repository.VideoRepo) *StatusHandler {
	return &StatusHandler{statuses: statuses, videos: videos}
}

// Get handles GET /api/competitors/:channelId/status
func (h *StatusHandler) Get(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateChannelID(c.Params("channelId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	st, err := h.statuses.FindByChannelID(c.Context(), channelID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Channel has not been imported")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load import status")
	}

	stored, err := h.videos.CountByChannel(c.Context(), channelID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load import status")
	}

	return c.JSON(fiber.Map{
		"status":       st,
		"videosStored": stored,
	})
}
