package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
)

func waitForJob(t *testing.T, svc *JobService, id, want string) *model.ImportJob {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := svc.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("get job: %v", err)
		}
		if job != nil && job.Status == want {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", id, want)
	return nil
}

func queuedRequest() model.ImportRequest {
	return model.ImportRequest{
		ChannelID:  "UCtestchannel000000000000",
		UserID:     "user-1",
		TimePeriod: model.LimitN(30),
		MaxVideos:  model.LimitN(5),
		Queue:      true,
	}
}

// The completion observer is how queued runs reach the import counters; it
// must fire exactly once per job with the run's result.
func TestJobService_ObserverSeesResult(t *testing.T) {
	result := &model.ImportResult{VideosWritten: 3, Mode: model.ModeDirect}
	run := func(context.Context, model.ImportRequest) (*model.ImportResult, error) {
		return result, nil
	}
	svc := NewJobService(NewJobStore(""), run, zerolog.Nop())

	observed := make(chan *model.ImportResult, 1)
	svc.OnFinished(func(res *model.ImportResult, err error, _ time.Duration) {
		observed <- res
	})

	job := svc.Enqueue(queuedRequest())

	select {
	case res := <-observed:
		if res == nil || res.VideosWritten != 3 {
			t.Errorf("observer got %+v, want the run's result", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("observer was not invoked")
	}

	done := waitForJob(t, svc, job.ID, model.JobStatusCompleted)
	if done.Result == nil || done.Result.VideosWritten != 3 {
		t.Errorf("job result = %+v, want 3 videos written", done.Result)
	}
}

func TestJobService_ObserverSeesFailure(t *testing.T) {
	boom := errors.New("upload walk failed")
	run := func(context.Context, model.ImportRequest) (*model.ImportResult, error) {
		return nil, boom
	}
	svc := NewJobService(NewJobStore(""), run, zerolog.Nop())

	errs := make(chan error, 1)
	svc.OnFinished(func(_ *model.ImportResult, err error, _ time.Duration) {
		errs <- err
	})

	job := svc.Enqueue(queuedRequest())

	select {
	case err := <-errs:
		if !errors.Is(err, boom) {
			t.Errorf("observer got %v, want the run error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("observer was not invoked")
	}

	failed := waitForJob(t, svc, job.ID, model.JobStatusFailed)
	if failed.Error == "" {
		t.Error("failed job should record the error message")
	}
}
