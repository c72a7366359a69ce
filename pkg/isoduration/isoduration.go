// Package isoduration decodes the compact ISO 8601 time-span encoding used by
// the YouTube Data API (contentDetails.duration), e.g. "PT1M30S".
package isoduration

import "regexp"

// durationRe matches PT[nH][nM][nS]. Any subset of the three components may be
// present; "PT" alone is valid and means zero seconds.
var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// Seconds parses an ISO 8601 duration into total whole seconds.
// The second return value reports whether the string matched the expected
// shape. A non-matching string must never abort an import — callers treat it
// as long-form content.
func Seconds(s string) (int, bool) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	total := 0
	total += atoi(m[1]) * 3600
	total += atoi(m[2]) * 60
	total += atoi(m[3])
	return total, true
}

// IsShort reports whether the duration parses to under 60 seconds.
// Unparseable durations are never classified as shorts.
func IsShort(s string) bool {
	secs, ok := Seconds(s)
	return ok && secs < 60
}

// atoi converts a digits-only submatch. Empty (absent component) is zero.
// Inputs are guaranteed numeric by the regexp.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
