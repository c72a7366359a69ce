package service

import (
	"testing"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/youtube"
)

func TestFilterShorts_Excludes(t *testing.T) {
	details := []youtube.VideoDetail{
		{ID: "long-1", Duration: "PT10M3S"},
		{ID: "short-1", Duration: "PT45S"},
		{ID: "long-2", Duration: "PT1M"},
		{ID: "short-2", Duration: "PT59S"},
		{ID: "unparseable", Duration: "live"},
	}

	kept := FilterShorts(details, true)

	want := map[string]bool{"long-1": true, "long-2": true, "unparseable": true}
	if len(kept) != len(want) {
		t.Fatalf("kept %d videos, want %d", len(kept), len(want))
	}
	for _, d := range kept {
		if !want[d.ID] {
			t.Errorf("video %s should have been filtered out", d.ID)
		}
	}
}

func TestFilterShorts_FlagUnsetPassesThrough(t *testing.T) {
	details := []youtube.VideoDetail{
		{ID: "short-1", Duration: "PT30S"},
		{ID: "long-1", Duration: "PT5M"},
	}

	kept := FilterShorts(details, false)
	if len(kept) != 2 {
		t.Errorf("kept %d videos, want 2 (filter disabled)", len(kept))
	}
}

func TestFilterShorts_EmptyInput(t *testing.T) {
	if kept := FilterShorts(nil, true); len(kept) != 0 {
		t.Errorf("kept %d videos from empty input", len(kept))
	}
}
