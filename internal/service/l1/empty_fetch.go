package l1_service

import (
	"portfoliotracker/internal/util"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const (
	emptyFetchTTL       = 12 * time.Hour
	emptyFetchCacheSize = 8192
)

// emptyFetchCache remembers business days an upstream had no data for, so
// holidays at the edge of a requested range are not fetched again on every
// request. Entries expire after ttl so late publications are still picked up.
// A nil cache remembers nothing.
type emptyFetchCache struct {
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

func newEmptyFetchCache(ttl time.Duration, now func() time.Time) *emptyFetchCache {
	// only fails for a non-positive size
	cache, _ := lru.New(emptyFetchCacheSize)
	if now == nil {
		now = time.Now
	}
	return &emptyFetchCache{
		cache: cache,
		ttl:   ttl,
		now:   now,
	}
}

func (e *emptyFetchCache) clock() time.Time {
	if e == nil {
		return time.Now().UTC()
	}
	return e.now().UTC()
}

func emptyFetchKey(key string, date time.Time) string {
	return key + "|" + date.Format(time.DateOnly)
}

// record marks every business day in [from, to] that is not in returned.
func (e *emptyFetchCache) record(key string, from, to time.Time, returned []time.Time) {
	if e == nil {
		return
	}
	got := map[string]bool{}
	for _, d := range returned {
		got[util.TruncateToDate(d).Format(time.DateOnly)] = true
	}
	expires := e.clock().Add(e.ttl)
	for _, day := range util.BusinessDays(from, to) {
		if !got[day.Format(time.DateOnly)] {
			e.cache.Add(emptyFetchKey(key, day), expires)
		}
	}
}

func (e *emptyFetchCache) skipped(key string, start, end time.Time) []time.Time {
	out := []time.Time{}
	if e == nil {
		return out
	}
	now := e.clock()
	for _, day := range util.BusinessDays(start, end) {
		k := emptyFetchKey(key, day)
		v, ok := e.cache.Get(k)
		if !ok {
			continue
		}
		if expires, _ := v.(time.Time); now.Before(expires) {
			out = append(out, day)
		} else {
			e.cache.Remove(k)
		}
	}
	return out
}

// missingRange is util.MissingRange over the stored dates plus the days
// recently found empty, with end capped at the last settled date.
func (e *emptyFetchCache) missingRange(key string, stored []time.Time, start, end time.Time) (time.Time, time.Time, bool) {
	settled := util.SettledDate(e.clock())
	if end.After(settled) {
		end = settled
	}
	if end.Before(util.TruncateToDate(start)) {
		return time.Time{}, time.Time{}, false
	}
	observed := append(append([]time.Time{}, stored...), e.skipped(key, start, end)...)
	return util.MissingRange(observed, start, end)
}
