package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitrollup/internal/rollup"

	log "github.com/sirupsen/logrus"
)

// Summaries caches computed weekly summaries per feature, owner and reference day.
// Only the configured window size is cached; other sizes are always computed.
// A nil *Summaries disables caching.
//
// Every Invalidate bumps a per feature and owner write epoch. A summary whose
// computation overlapped a write is dropped again right after it is stored.
// Writes made by other instances sharing the cache are bounded by the ttl only.
type Summaries struct {
	cache      Cache
	ttl        time.Duration
	windowSize int

	mu     sync.Mutex
	epochs map[string]uint64
}

func NewSummaries(cache Cache, ttl time.Duration, windowSize int) *Summaries {
	return &Summaries{
		cache:      cache,
		ttl:        ttl,
		windowSize: windowSize,
		epochs:     make(map[string]uint64),
	}
}

func (s *Summaries) epoch(feature, owner string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epochs[feature+"::"+owner]
}

func (s *Summaries) bumpEpoch(feature, owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epochs[feature+"::"+owner]++
}

func SummaryKey(feature, owner string, ref rollup.DayKey, size int) string {
	return fmt.Sprintf("summary::%s::%s::%s::%d", feature, owner, ref, size)
}

// LoadOrCompute returns the cached summary if there is one, otherwise computes and stores it.
// hit reports whether the value came from the cache. Cache failures are logged, never returned.
func LoadOrCompute[T any](
	ctx context.Context,
	s *Summaries,
	feature, owner string,
	ref rollup.DayKey,
	size int,
	compute func(ctx context.Context) (T, error),
) (_ T, hit bool, err error) {
	if s == nil || s.cache == nil || size != s.windowSize {
		v, err := compute(ctx)
		return v, false, err
	}

	key := SummaryKey(feature, owner, ref, size)
	epoch := s.epoch(feature, owner)
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, true, nil
		} else {
			log.Errorf("unmarshal cached summary [%s]: %s", key, err)
		}
	} else if !errors.Is(err, ErrMiss) {
		log.Warnf("get cached summary [%s]: %s", key, err)
	}

	v, err := compute(ctx)
	if err != nil {
		return v, false, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal summary [%s]: %s", key, err)
		return v, false, nil
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		log.Warnf("set cached summary [%s]: %s", key, err)
		return v, false, nil
	}

	// an entry was written while computing, the stored value may already be stale
	if s.epoch(feature, owner) != epoch {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Errorf("drop stale summary [%s]: %s", key, err)
		}
	}

	return v, false, nil
}

// Invalidate drops every cached summary whose window contains day, i.e. the
// summaries referenced on day .. day+windowSize-1.
func (s *Summaries) Invalidate(ctx context.Context, feature, owner string, day rollup.DayKey) {
	if s == nil || s.cache == nil || s.windowSize <= 0 {
		return
	}
	s.bumpEpoch(feature, owner)

	keys := make([]string, 0, s.windowSize)
	for i := 0; i < s.windowSize; i++ {
		keys = append(keys, SummaryKey(feature, owner, day.AddDays(i), s.windowSize))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Errorf("invalidate %s summaries for [%s] from %s: %s", feature, owner, day, err)
	}
}
