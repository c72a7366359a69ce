package service

// ChannelBaseline is the arithmetic mean view count across the current import
// batch, or 0 for an empty batch. It is computed only from the videos in the
// batch, not the channel's full history: downstream consumers expect
// performance ratios relative to the current snapshot.
func ChannelBaseline(viewCounts []int64) int64 {
	if len(viewCounts) == 0 {
		return 0
	}
	var sum int64
	for _, v := range viewCounts {
		sum += v
	}
	return sum / int64(len(viewCounts))
}

// PerformanceRatio relates one video's views to the channel baseline. When
// the baseline is not positive the ratio is exactly 1 for every video: no
// differentiation is possible, which is not an error.
func PerformanceRatio(viewCount, baseline int64) float64 {
	if baseline <= 0 {
		return 1
	}
	return float64(viewCount) / float64(baseline)
}
