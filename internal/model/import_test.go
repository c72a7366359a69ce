package model

import (
	"encoding/json"
	"testing"
)

func TestLimitUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Limit
		wantErr bool
	}{
		{"number", `30`, LimitN(30), false},
		{"numeric string", `"100"`, LimitN(100), false},
		{"all lowercase", `"all"`, LimitAll(), false},
		{"all mixed case", `"All"`, LimitAll(), false},
		{"zero", `0`, Limit{}, true},
		{"negative", `-5`, Limit{}, true},
		{"garbage", `"soon"`, Limit{}, true},
		{"float", `2.5`, Limit{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Limit
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLimitRoundTrip(t *testing.T) {
	var req ImportRequest
	body := `{"channelId":"UCabc","userId":"u1","timePeriod":"all","maxVideos":50,"excludeShorts":true}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !req.TimePeriod.All {
		t.Error("timePeriod should be unbounded")
	}
	if req.MaxVideos.All || req.MaxVideos.Value != 50 {
		t.Errorf("maxVideos = %+v, want bounded 50", req.MaxVideos)
	}

	out, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again ImportRequest
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if again.TimePeriod != req.TimePeriod || again.MaxVideos != req.MaxVideos {
		t.Errorf("round trip changed limits: %+v vs %+v", again, req)
	}
}
