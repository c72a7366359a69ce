package youtube

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeListing builds a fetch func over n synthetic entries, paged at pageSize.
// Each entry is published one hour after the previous one, oldest last
// (upload playlists are newest-first).
func fakeListing(n int, calls *int) func(string) (listingPage, error) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	return func(token string) (listingPage, error) {
		*calls++
		start := 0
		if token != "" {
			fmt.Sscanf(token, "page-%d", &start)
		}

		var page listingPage
		for i := start; i < n && i < start+pageSize; i++ {
			page.entries = append(page.entries, PlaylistEntry{
				VideoID:     fmt.Sprintf("vid-%04d", i),
				PublishedAt: base.Add(-time.Duration(i) * time.Hour),
			})
		}
		if start+pageSize < n {
			page.nextToken = fmt.Sprintf("page-%d", start+pageSize)
		}
		return page, nil
	}
}

func TestCollectUploads_StopsAtEndOfCollection(t *testing.T) {
	calls := 0
	entries, err := collectUploads(fakeListing(120, &calls), ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 120 {
		t.Errorf("got %d entries, want 120", len(entries))
	}
	if calls != 3 {
		t.Errorf("fetched %d pages, want 3", calls)
	}
}

func TestCollectUploads_MaxVideosBound(t *testing.T) {
	calls := 0
	entries, err := collectUploads(fakeListing(5000, &calls), ListOptions{MaxVideos: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("got %d entries, want 10", len(entries))
	}
	// One page of 50 already satisfies a bound of 10
	if calls != 1 {
		t.Errorf("fetched %d pages, want 1", calls)
	}
}

func TestCollectUploads_HardCapAppliesToUnbounded(t *testing.T) {
	calls := 0
	entries, err := collectUploads(fakeListing(5000, &calls), ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unbounded request against a huge channel still stops at the cap
	if len(entries) != hardEntryCap {
		t.Errorf("got %d entries, want %d", len(entries), hardEntryCap)
	}
	if calls != hardEntryCap/pageSize {
		t.Errorf("fetched %d pages, want %d", calls, hardEntryCap/pageSize)
	}
}

func TestCollectUploads_DateCutoffFiltersButStillExaminesRaw(t *testing.T) {
	calls := 0
	// Entries are one hour apart; a cutoff 72h back keeps 73 of them
	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Add(-72 * time.Hour)
	entries, err := collectUploads(fakeListing(5000, &calls), ListOptions{PublishedAfter: &cutoff})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 73 {
		t.Errorf("got %d entries, want 73", len(entries))
	}
	// The walk keeps examining raw entries until the hard cap even though
	// the filter passes nothing after the cutoff
	if calls != hardEntryCap/pageSize {
		t.Errorf("fetched %d pages, want %d", calls, hardEntryCap/pageSize)
	}
}

func TestCollectUploads_MaxVideosWithCutoff(t *testing.T) {
	calls := 0
	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Add(-200 * time.Hour)
	entries, err := collectUploads(fakeListing(5000, &calls), ListOptions{
		PublishedAfter: &cutoff,
		MaxVideos:      5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("got %d entries, want 5", len(entries))
	}
}

func TestCollectUploads_FetchErrorPropagates(t *testing.T) {
	boom := errors.New("quota exceeded")
	_, err := collectUploads(func(string) (listingPage, error) {
		return listingPage{}, boom
	}, ListOptions{})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want wrapped fetch error", err)
	}
}
