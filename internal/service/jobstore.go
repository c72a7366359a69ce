package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/makeorbreakshop/video-scripter-sub010/internal/model"
)

// Queued job records are retained long enough for the dashboard to poll a
// finished import, then expire.
const jobRecordTTL = 24 * time.Hour

// JobStore persists queued-job records in Redis. If Redis is unavailable it
// degrades to an in-process map, so local queued execution keeps working on a
// single instance.
type JobStore struct {
	rdb *redis.Client

	mu    sync.RWMutex
	local map[string]model.ImportJob
}

// NewJobStore connects to Redis at redisURL. An empty URL or failed
// connection falls back to in-memory storage.
func NewJobStore(redisURL string) *JobStore {
	store := &JobStore{local: make(map[string]model.ImportJob)}

	if redisURL == "" {
		log.Println("redis: no URL configured, job records kept in memory")
		return store
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, job records kept in memory: %v", redisURL, err)
		return store
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, job records kept in memory: %v", err)
		return store
	}

	log.Println("redis: connected, job records persisted")
	store.rdb = rdb
	return store
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (s *JobStore) Client() *redis.Client {
	return s.rdb
}

// Save writes or overwrites a job record.
func (s *JobStore) Save(ctx context.Context, job model.ImportJob) error {
	if s.rdb == nil {
		s.mu.Lock()
		s.local[job.ID] = job
		s.mu.Unlock()
		return nil
	}

	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, jobKey(job.ID), b, jobRecordTTL).Err()
}

// Get returns a job record, or nil if the ID is unknown or expired.
func (s *JobStore) Get(ctx context.Context, jobID string) (*model.ImportJob, error) {
	if s.rdb == nil {
		s.mu.RLock()
		job, ok := s.local[jobID]
		s.mu.RUnlock()
		if !ok {
			return nil, nil
		}
		return &job, nil
	}

	data, err := s.rdb.Get(ctx, jobKey(jobID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var job model.ImportJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Close shuts down the Redis connection.
func (s *JobStore) Close() error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

func jobKey(jobID string) string {
	return fmt.Sprintf("import-job:%s", jobID)
}
