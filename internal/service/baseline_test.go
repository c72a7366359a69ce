package service

import (
	"testing"
)

func TestChannelBaseline(t *testing.T) {
	tests := []struct {
		name  string
		views []int64
		want  int64
	}{
		{"typical batch", []int64{100, 200, 300}, 200},
		{"single video", []int64{1500}, 1500},
		{"empty batch", nil, 0},
		{"all zero views", []int64{0, 0, 0}, 0},
		{"truncating mean", []int64{10, 11}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChannelBaseline(tt.views)
			if got != tt.want {
				t.Errorf("ChannelBaseline(%v) = %d, want %d", tt.views, got, tt.want)
			}
		})
	}
}

func TestPerformanceRatio(t *testing.T) {
	// Ratios over the [100, 200, 300] batch: baseline 200
	baseline := ChannelBaseline([]int64{100, 200, 300})

	tests := []struct {
		views int64
		want  float64
	}{
		{100, 0.5},
		{200, 1.0},
		{300, 1.5},
	}

	for _, tt := range tests {
		got := PerformanceRatio(tt.views, baseline)
		if got != tt.want {
			t.Errorf("PerformanceRatio(%d, %d) = %.2f, want %.2f", tt.views, baseline, got, tt.want)
		}
	}
}

func TestPerformanceRatio_ZeroBaselineDefaultsToOne(t *testing.T) {
	// Empty batch: baseline 0, every ratio is exactly 1 — "no
	// differentiation possible" rather than a division error.
	baseline := ChannelBaseline(nil)
	if baseline != 0 {
		t.Fatalf("baseline = %d, want 0", baseline)
	}

	for _, views := range []int64{0, 1, 100000} {
		if got := PerformanceRatio(views, baseline); got != 1 {
			t.Errorf("PerformanceRatio(%d, 0) = %.2f, want 1", views, got)
		}
	}
}
