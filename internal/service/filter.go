package service

import (
	"github.com/makeorbreakshop/video-scripter-sub010/internal/youtube"
	"github.com/makeorbreakshop/video-scripter-sub010/pkg/isoduration"
)

// FilterShorts removes short-form clips (parsed duration under 60 seconds)
// from a detail batch when excludeShorts is set, and passes everything
// through unchanged otherwise. It runs after detail fetch because duration is
// only available from the detail endpoint. A duration that fails to parse is
// treated as long-form and kept.
func FilterShorts(details []youtube.VideoDetail, excludeShorts bool) []youtube.VideoDetail {
	if !excludeShorts {
		return details
	}

	kept := make([]youtube.VideoDetail, 0, len(details))
	for _, d := range details {
		if isoduration.IsShort(d.Duration) {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}
