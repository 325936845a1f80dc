package cache

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

// fill creates keys in order through GetOrCreate.
func fill(c *Cache[int, int], keys ...int) {
	for _, k := range keys {
		_, _ = c.GetOrCreate(k, func() (int, error) { return k, nil })
	}
}

// cached reports whether k is present without creating it.
func cached(c *Cache[int, int], k int) bool {
	created := false
	_, _ = c.GetOrCreate(k, func() (int, error) {
		created = true
		return 0, errors.New("absent")
	})
	return !created
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}

	for range 3 {
		v, err := c.GetOrCreate("k", create)
		if err != nil || v != 42 {
			t.Fatalf("GetOrCreate = %d, %v, want 42, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Len != 1 || s.Capacity != 10 {
		t.Errorf("Stats() len/capacity = %d/%d, want 1/10", s.Len, s.Capacity)
	}
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() hits/misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}
}

func TestCacheErrorsNotCached(t *testing.T) {
	c := New[string, int](10)

	errBoom := errors.New("boom")
	if _, err := c.GetOrCreate("bad", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Errorf("GetOrCreate error = %v, want boom", err)
	}
	if got := c.Stats().Len; got != 0 {
		t.Errorf("Stats().Len = %d, want 0", got)
	}

	v, err := c.GetOrCreate("bad", func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("GetOrCreate after failure = %d, %v, want 7, nil", v, err)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	fill(c, 0, 1, 2, 3)
	// Touch 0 so it survives.
	fill(c, 0)
	fill(c, 4)

	// Over the limit: evict down to 3 entries, oldest first.
	if got := c.Stats().Len; got != 3 {
		t.Fatalf("Stats().Len = %d, want 3", got)
	}
	for _, k := range []int{1, 2} {
		if cached(c, k) {
			t.Errorf("key %d should have been evicted", k)
		}
	}
	for _, k := range []int{0, 4} {
		if !cached(c, k) {
			t.Errorf("key %d was evicted", k)
		}
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 1000 {
		fill(c, i)
	}
	if got := c.Stats().Len; got != 1000 {
		t.Errorf("Stats().Len = %d, want 1000", got)
	}
}

func TestCacheGetOrCreateConcurrent(t *testing.T) {
	c := New[string, int](0)
	var calls atomic.Int32

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := strconv.Itoa(i % 5)
			_, _ = c.GetOrCreate(key, func() (int, error) {
				calls.Add(1)
				return i, nil
			})
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 5 {
		t.Errorf("create called %d times, want 5", got)
	}
	if s := c.Stats(); s.Hits+s.Misses != 50 {
		t.Errorf("Stats() hits+misses = %d, want 50", s.Hits+s.Misses)
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](1000)
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_, _ = c.GetOrCreate(strconv.Itoa(i%100), func() (int, error) { return i, nil })
		i++
	}
}
