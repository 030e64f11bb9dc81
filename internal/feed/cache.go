package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-lines/internal/logger"
	"github.com/yourusername/gridiron-lines/internal/metrics"
	"github.com/yourusername/gridiron-lines/internal/models"
)

// CacheKey identifies a cached feed document
type CacheKey struct {
	Kind  string
	Scope string
}

// String returns string representation of cache key
func (k CacheKey) String() string {
	return k.Kind + ":" + k.Scope
}

func bettingDataKey(week int) CacheKey {
	return CacheKey{Kind: "betting", Scope: fmt.Sprintf("week-%d", week)}
}

func teamKey(abbreviation string) CacheKey {
	return CacheKey{Kind: "team", Scope: strings.ToUpper(abbreviation)}
}

var trendsKey = CacheKey{Kind: "trends", Scope: "all"}

// SnapshotCache wraps a Source with a TTL cache.
// Readers see the last fetched snapshot until it expires or Refresh replaces it.
type SnapshotCache struct {
	source  Source
	cache   *cache.Cache
	ttl     time.Duration
	maxSize int
	logger  *logger.FeedLogger

	mu        sync.Mutex
	hitCount  atomic.Uint64
	missCount atomic.Uint64
}

// NewSnapshotCache creates a new snapshot cache in front of source
func NewSnapshotCache(source Source, ttl time.Duration, maxSize int, log *logrus.Logger) *SnapshotCache {
	return &SnapshotCache{
		source:  source,
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
		logger:  logger.NewFeedLogger(log),
	}
}

// Name returns the wrapped source name
func (c *SnapshotCache) Name() string {
	return c.source.Name()
}

// FetchBettingData returns the cached records for a week, fetching on a miss
func (c *SnapshotCache) FetchBettingData(ctx context.Context, week int) ([]models.BettingData, error) {
	key := bettingDataKey(week)
	if cached, ok := c.get(key); ok {
		if records, ok := cached.([]models.BettingData); ok {
			return records, nil
		}
	}
	return c.refreshBettingData(ctx, week)
}

// FetchTeamPerformance returns the cached team summary, fetching on a miss
func (c *SnapshotCache) FetchTeamPerformance(ctx context.Context, abbreviation string) (*models.TeamPerformance, error) {
	key := teamKey(abbreviation)
	if cached, ok := c.get(key); ok {
		if perf, ok := cached.(*models.TeamPerformance); ok {
			return perf, nil
		}
	}

	perf, err := c.source.FetchTeamPerformance(ctx, abbreviation)
	if err != nil {
		return nil, err
	}
	c.set(key, perf)
	return perf, nil
}

// FetchTrends returns the cached trend series, fetching on a miss
func (c *SnapshotCache) FetchTrends(ctx context.Context) ([]models.WeeklyTrend, error) {
	if cached, ok := c.get(trendsKey); ok {
		if trends, ok := cached.([]models.WeeklyTrend); ok {
			return trends, nil
		}
	}

	trends, err := c.source.FetchTrends(ctx)
	if err != nil {
		return nil, err
	}
	c.set(trendsKey, trends)
	return trends, nil
}

// Refresh fetches the week from the source and replaces the cached snapshot.
// On failure the previous snapshot stays in place.
func (c *SnapshotCache) Refresh(ctx context.Context, week int) (int, error) {
	records, err := c.refreshBettingData(ctx, week)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (c *SnapshotCache) refreshBettingData(ctx context.Context, week int) ([]models.BettingData, error) {
	start := time.Now()
	records, err := c.source.FetchBettingData(ctx, week)
	if err != nil {
		code := ErrorCode(err)
		metrics.RecordFeedFetchError(c.source.Name(), code)
		c.logger.LogFetchError(c.source.Name(), code, week, err)
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecordFeedFetch(c.source.Name(), elapsed.Seconds())
	c.logger.LogFetch(c.source.Name(), week, len(records), elapsed)

	c.set(bettingDataKey(week), records)
	return records, nil
}

func (c *SnapshotCache) get(key CacheKey) (interface{}, bool) {
	value, found := c.cache.Get(key.String())
	if found {
		c.hitCount.Add(1)
	} else {
		c.missCount.Add(1)
	}
	metrics.RecordCacheLookup(found)
	c.logger.LogCacheLookup(key.String(), found)
	return value, found
}

func (c *SnapshotCache) set(key CacheKey, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && c.cache.ItemCount() >= c.maxSize {
		c.cache.DeleteExpired()
	}
	c.cache.Set(key.String(), value, c.ttl)
}

// Ping checks the feed answers. A cached season snapshot counts as an answer.
func (c *SnapshotCache) Ping(ctx context.Context) error {
	_, err := c.FetchBettingData(ctx, AllWeeks)
	return err
}

// Invalidate drops every cached document
func (c *SnapshotCache) Invalidate() {
	c.cache.Flush()
}

// Stats returns cache statistics
func (c *SnapshotCache) Stats() (hits, misses uint64, ratio float64) {
	hits = c.hitCount.Load()
	misses = c.missCount.Load()
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of items in cache
func (c *SnapshotCache) ItemCount() int {
	return c.cache.ItemCount()
}
