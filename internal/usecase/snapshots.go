package usecase

import (
	"context"
	"log"
	"time"

	"clmi/internal/domain/job"
	"clmi/internal/domain/skill"
	"clmi/internal/domain/university"
	"clmi/internal/marketdata"
)

// Cache keys for the full-collection snapshots used by client-filtered
// listing mode.
const (
	cacheKeyJobs         = "clmi:snapshot:jobs"
	cacheKeySkills       = "clmi:snapshot:skills"
	cacheKeyUniversities = "clmi:snapshot:universities"
	cacheKeyJobStats     = "clmi:snapshot:job_stats"
)

// SnapshotCache is the slice of the Redis wrapper the snapshot layer
// needs. A nil cache disables caching entirely.
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Snapshots fetches and caches the full unfiltered record collections.
// Client-filtered mode re-derives every view from these; the scheduled
// refresher forces them fresh.
type Snapshots struct {
	repo   marketdata.Repository
	cache  SnapshotCache
	ttl    time.Duration
	logger *log.Logger
}

func NewSnapshots(repo marketdata.Repository, cache SnapshotCache, ttl time.Duration, logger *log.Logger) *Snapshots {
	return &Snapshots{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

func (s *Snapshots) Jobs(ctx context.Context) ([]job.Record, error) {
	return loadSnapshot(ctx, s, cacheKeyJobs, func(ctx context.Context) ([]job.Record, error) {
		recs, _, err := s.repo.FetchJobs(ctx, marketdata.Query{})
		return recs, err
	})
}

func (s *Snapshots) Skills(ctx context.Context) ([]skill.Record, error) {
	return loadSnapshot(ctx, s, cacheKeySkills, func(ctx context.Context) ([]skill.Record, error) {
		recs, _, err := s.repo.FetchSkills(ctx, marketdata.Query{})
		return recs, err
	})
}

func (s *Snapshots) Universities(ctx context.Context) ([]university.Record, error) {
	return loadSnapshot(ctx, s, cacheKeyUniversities, func(ctx context.Context) ([]university.Record, error) {
		recs, _, err := s.repo.FetchUniversities(ctx, marketdata.Query{})
		return recs, err
	})
}

func (s *Snapshots) JobStats(ctx context.Context) (job.Stats, error) {
	return loadSnapshot(ctx, s, cacheKeyJobStats, func(ctx context.Context) (job.Stats, error) {
		return s.repo.FetchJobStats(ctx)
	})
}

// Refresh refetches every collection and rewrites the cache, returning
// the names of the collections that refreshed. Partial failure refreshes
// what it can; the first error is reported alongside.
func (s *Snapshots) Refresh(ctx context.Context) ([]string, error) {
	var refreshed []string
	var firstErr error

	note := func(name string, err error) {
		if err != nil {
			s.logf("[Snapshot] Refresh failed | collection=%s err=%v", name, err)
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		refreshed = append(refreshed, name)
	}

	if recs, _, err := s.repo.FetchJobs(ctx, marketdata.Query{}); err == nil {
		s.put(ctx, cacheKeyJobs, recs)
		note("jobs", nil)
	} else {
		note("jobs", err)
	}
	if recs, _, err := s.repo.FetchSkills(ctx, marketdata.Query{}); err == nil {
		s.put(ctx, cacheKeySkills, recs)
		note("skills", nil)
	} else {
		note("skills", err)
	}
	if recs, _, err := s.repo.FetchUniversities(ctx, marketdata.Query{}); err == nil {
		s.put(ctx, cacheKeyUniversities, recs)
		note("universities", nil)
	} else {
		note("universities", err)
	}
	if stats, err := s.repo.FetchJobStats(ctx); err == nil {
		s.put(ctx, cacheKeyJobStats, stats)
		note("job_stats", nil)
	} else {
		note("job_stats", err)
	}

	return refreshed, firstErr
}

func loadSnapshot[T any](ctx context.Context, s *Snapshots, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if s.cache != nil {
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			s.logf("[Snapshot] Cache HIT: %s", key)
			return cached, nil
		}
		s.logf("[Snapshot] Cache MISS: %s", key)
	}

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}
	s.put(ctx, key, value)
	return value, nil
}

func (s *Snapshots) put(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.ttl); err != nil {
		s.logf("[Snapshot] Cache SET failed | key=%s err=%v", key, err)
		return
	}
	s.logf("[Snapshot] Cache SET: %s", key)
}

func (s *Snapshots) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
