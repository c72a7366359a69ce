package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxChannelIDLen = 64 // channel_import_status.channel_id
	MaxUserIDLen    = 64 // competitor_videos.imported_by
	MaxJobIDLen     = 64
)

var (
	// channelIDRe matches YouTube channel IDs: alphanumeric, dash, underscore.
	channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// userIDRe matches user IDs issued by the dashboard's auth layer
	// (UUIDs or opaque tokens).
	userIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// jobIDRe matches job handles (UUIDs, or the delegate's own format).
	jobIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateChannelID checks that a channel ID is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 64 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

// ValidateUserID checks that a requesting user ID is well-formed.
func ValidateUserID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "userId is required"
	}
	if len(id) > MaxUserIDLen {
		return "", "userId must be at most 64 characters"
	}
	if !userIDRe.MatchString(id) {
		return "", "userId contains invalid characters"
	}
	return id, ""
}

// ValidateJobID checks that a job handle is well-formed.
func ValidateJobID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "jobId is required"
	}
	if len(id) > MaxJobIDLen {
		return "", "jobId must be at most 64 characters"
	}
	if !jobIDRe.MatchString(id) {
		return "", "jobId contains invalid characters"
	}
	return id, ""
}
