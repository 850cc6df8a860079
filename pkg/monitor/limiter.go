package monitor

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore holds one token bucket per floor key ("A:2", see
// common.FloorKey). Buckets are created on first use with the default rate
// and burst.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(floorKey string) *rate.Limiter {
	s.mu.RLock()
	limiter, exists := s.limiters[floorKey]
	s.mu.RUnlock()
	if exists {
		return limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if limiter, exists = s.limiters[floorKey]; !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[floorKey] = limiter
	}
	return limiter
}

// SetLimiter replaces the floor's bucket, so a throttled floor starts with a
// full burst under the new settings.
func (s *RateLimiterStore) SetLimiter(floorKey string, floorRate rate.Limit, floorBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[floorKey] = rate.NewLimiter(floorRate, floorBurst)
}

// Allow is nil-safe: a nil store lets everything through.
func (s *RateLimiterStore) Allow(floorKey string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(floorKey).Allow()
}
