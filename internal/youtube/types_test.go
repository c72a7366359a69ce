package youtube

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamErrorWrapping(t *testing.T) {
	cause := errors.New("googleapi: Error 503: backendError")
	err := fmt.Errorf("list uploads for UCabc: %w", &UpstreamError{
		Op:  "playlistItems.list",
		Err: cause,
	})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("errors.As failed on %v", err)
	}
	if upstream.Op != "playlistItems.list" {
		t.Errorf("op = %q, want playlistItems.list", upstream.Op)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should remain reachable through Unwrap")
	}

	want := "youtube playlistItems.list: googleapi: Error 503: backendError"
	if got := upstream.Error(); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestUpstreamErrorDistinctFromNotFound(t *testing.T) {
	err := &UpstreamError{Op: "channels.list", Err: errors.New("timeout")}
	if errors.Is(err, ErrChannelNotFound) {
		t.Error("a provider failure must not read as channel-not-found")
	}
}
