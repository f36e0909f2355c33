package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"receipt-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type MerchantMapCacheSuite struct {
	suite.Suite
	clock  *fakeClock
	cache  *MerchantMapCache
	tenant uuid.UUID
}

func (s *MerchantMapCacheSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	s.cache = NewMerchantMapCache(Config{TTL: 30 * time.Minute, MaxSize: 3, SweepInterval: time.Minute}, WithClock(s.clock.Now))
	s.tenant = uuid.New()
}

func TestMerchantMapCacheSuite(t *testing.T) {
	suite.Run(t, new(MerchantMapCacheSuite))
}

func newMapping(tenantID uuid.UUID, merchant, category string) *models.MerchantMapping {
	return &models.MerchantMapping{
		ID:                     uuid.New(),
		TenantID:               tenantID,
		NormalizedMerchantName: models.NormalizeMerchantName(merchant),
		Category:               category,
	}
}

func (s *MerchantMapCacheSuite) TestGet_EmptyCacheIsMiss() {
	result := s.cache.Get(s.tenant, "Starbucks")

	s.True(result.IsMiss())
	s.Nil(result.Mapping)

	stats := s.cache.Stats()
	s.Equal(int64(1), stats.TotalRequests)
	s.Equal(int64(0), stats.Hits)
	s.Equal(int64(1), stats.Misses)
	s.Equal(0.0, stats.HitRate)
}

func (s *MerchantMapCacheSuite) TestSetThenGet_Hit() {
	mapping := newMapping(s.tenant, "Starbucks", "Dining")
	s.cache.Set(s.tenant, "starbucks", mapping)

	result := s.cache.Get(s.tenant, "starbucks")

	s.Require().True(result.IsHit())
	s.Equal(mapping.ID, result.Mapping.ID)
	s.Equal("Dining", result.Mapping.Category)
	s.Equal(int64(1), s.cache.Stats().Hits)
}

func (s *MerchantMapCacheSuite) TestSetNil_NegativeHit() {
	s.cache.Set(s.tenant, "unknown shop", nil)

	result := s.cache.Get(s.tenant, "unknown shop")

	s.True(result.IsNegative())
	s.Nil(result.Mapping)
	s.Equal(int64(1), s.cache.Stats().Hits)
}

func (s *MerchantMapCacheSuite) TestKeysAreNormalized() {
	s.cache.Set(s.tenant, "Target Corp", newMapping(s.tenant, "Target Corp", "Shopping"))

	result := s.cache.Get(s.tenant, "  TARGET   CORPORATION ")

	s.True(result.IsHit())
	s.Equal(1, s.cache.Len())
}

func (s *MerchantMapCacheSuite) TestTenantsAreIsolated() {
	other := uuid.New()
	s.cache.Set(s.tenant, "starbucks", newMapping(s.tenant, "starbucks", "Dining"))

	s.True(s.cache.Get(other, "starbucks").IsMiss())
}

func (s *MerchantMapCacheSuite) TestReturnedMappingIsACopy() {
	s.cache.Set(s.tenant, "starbucks", newMapping(s.tenant, "starbucks", "Dining"))

	first := s.cache.Get(s.tenant, "starbucks")
	first.Mapping.Category = "Mutated"

	second := s.cache.Get(s.tenant, "starbucks")
	s.Equal("Dining", second.Mapping.Category)
}

func (s *MerchantMapCacheSuite) TestExpiredEntry_MissAndRemoved() {
	s.cache.Set(s.tenant, "starbucks", newMapping(s.tenant, "starbucks", "Dining"))

	s.clock.Advance(30*time.Minute + time.Second)
	result := s.cache.Get(s.tenant, "starbucks")

	s.True(result.IsMiss())
	s.Equal(0, s.cache.Len())
	stats := s.cache.Stats()
	s.Equal(int64(1), stats.Misses)
	s.Equal(int64(0), stats.Hits)
}

func (s *MerchantMapCacheSuite) TestEntryAtExactTTL_StillValid() {
	s.cache.Set(s.tenant, "starbucks", nil)

	s.clock.Advance(30 * time.Minute)

	s.True(s.cache.Get(s.tenant, "starbucks").IsNegative())
}

func (s *MerchantMapCacheSuite) TestSetResetsTimestamp() {
	s.cache.Set(s.tenant, "starbucks", nil)
	s.clock.Advance(20 * time.Minute)
	s.cache.Set(s.tenant, "starbucks", newMapping(s.tenant, "starbucks", "Dining"))
	s.clock.Advance(20 * time.Minute)

	s.True(s.cache.Get(s.tenant, "starbucks").IsHit())
}

func (s *MerchantMapCacheSuite) TestEviction_LowestHitCountFirst() {
	s.cache.Set(s.tenant, "a", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "b", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "c", nil)

	s.cache.Get(s.tenant, "a")
	s.cache.Get(s.tenant, "a")
	s.cache.Get(s.tenant, "b")
	s.cache.Get(s.tenant, "c")
	s.cache.Get(s.tenant, "c")

	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "d", nil)

	s.Equal(3, s.cache.Len())
	s.True(s.cache.Get(s.tenant, "b").IsMiss())
	s.True(s.cache.Get(s.tenant, "a").IsNegative())
	s.True(s.cache.Get(s.tenant, "c").IsNegative())
	s.True(s.cache.Get(s.tenant, "d").IsNegative())
}

func (s *MerchantMapCacheSuite) TestEviction_TieBrokenByOldest() {
	s.cache.Set(s.tenant, "a", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "b", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "c", nil)
	s.clock.Advance(time.Second)

	s.cache.Set(s.tenant, "d", nil)

	s.Equal(3, s.cache.Len())
	s.True(s.cache.Get(s.tenant, "a").IsMiss())
	s.True(s.cache.Get(s.tenant, "b").IsNegative())
}

func (s *MerchantMapCacheSuite) TestOverwriteAtCapacity_NoEviction() {
	s.cache.Set(s.tenant, "a", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "b", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "c", nil)

	s.cache.Set(s.tenant, "a", newMapping(s.tenant, "a", "Dining"))

	s.Equal(3, s.cache.Len())
	s.True(s.cache.Get(s.tenant, "a").IsHit())
	s.True(s.cache.Get(s.tenant, "b").IsNegative())
	s.True(s.cache.Get(s.tenant, "c").IsNegative())
}

func (s *MerchantMapCacheSuite) TestSetResetsHitCount() {
	s.cache.Set(s.tenant, "a", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "b", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "c", nil)

	for i := 0; i < 5; i++ {
		s.cache.Get(s.tenant, "c")
	}
	s.cache.Get(s.tenant, "a")
	s.cache.Get(s.tenant, "b")

	// rewriting c drops its hits back to zero, making it the eviction victim
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "c", nil)
	s.clock.Advance(time.Second)
	s.cache.Set(s.tenant, "d", nil)

	s.True(s.cache.Get(s.tenant, "c").IsMiss())
	s.True(s.cache.Get(s.tenant, "a").IsNegative())
}

func (s *MerchantMapCacheSuite) TestInvalidate() {
	s.cache.Set(s.tenant, "starbucks", nil)
	s.cache.Set(s.tenant, "target", nil)

	s.cache.Invalidate(s.tenant, "Starbucks Inc.")

	s.True(s.cache.Get(s.tenant, "starbucks").IsMiss())
	s.True(s.cache.Get(s.tenant, "target").IsNegative())
}

func (s *MerchantMapCacheSuite) TestInvalidateTenant() {
	other := uuid.New()
	s.cache.Set(s.tenant, "starbucks", nil)
	s.cache.Set(s.tenant, "target", newMapping(s.tenant, "target", "Shopping"))
	s.cache.Set(other, "starbucks", nil)

	removed := s.cache.InvalidateTenant(s.tenant)

	s.Equal(2, removed)
	s.Equal(1, s.cache.Len())
	s.True(s.cache.Get(s.tenant, "starbucks").IsMiss())
	s.True(s.cache.Get(s.tenant, "target").IsMiss())
	s.True(s.cache.Get(other, "starbucks").IsNegative())
}

func (s *MerchantMapCacheSuite) TestClear_ResetsCounters() {
	s.cache.Set(s.tenant, "starbucks", nil)
	s.cache.Get(s.tenant, "starbucks")
	s.cache.Get(s.tenant, "target")

	s.cache.Clear()

	stats := s.cache.Stats()
	s.Equal(Stats{}, stats)
}

func (s *MerchantMapCacheSuite) TestStats() {
	s.cache.Set(s.tenant, "starbucks", nil)
	s.cache.Set(s.tenant, "target", newMapping(s.tenant, "target", "Shopping"))

	s.cache.Get(s.tenant, "starbucks")
	s.cache.Get(s.tenant, "target")
	s.cache.Get(s.tenant, "walmart")

	stats := s.cache.Stats()
	s.Equal(int64(3), stats.TotalRequests)
	s.Equal(int64(2), stats.Hits)
	s.Equal(int64(1), stats.Misses)
	s.Equal(66.67, stats.HitRate)
	s.Equal(2, stats.EntryCount)
	s.Equal(int64(2*EstimatedEntryBytes), stats.EstimatedMemoryBytes)
}

func (s *MerchantMapCacheSuite) TestCleanExpired() {
	s.cache.Set(s.tenant, "old", nil)
	s.clock.Advance(20 * time.Minute)
	s.cache.Set(s.tenant, "new", nil)
	s.clock.Advance(11 * time.Minute)

	removed := s.cache.CleanExpired()

	s.Equal(1, removed)
	s.Equal(1, s.cache.Len())
	s.True(s.cache.Get(s.tenant, "new").IsNegative())
}

func TestNewMerchantMapCache_Defaults(t *testing.T) {
	c := NewMerchantMapCache(Config{})

	assert.Equal(t, DefaultConfig(), c.config)
	assert.Equal(t, 30*time.Minute, c.config.TTL)
	assert.Equal(t, 1000, c.config.MaxSize)
	assert.Equal(t, 5*time.Minute, c.config.SweepInterval)
}

func TestLookupKind_String(t *testing.T) {
	assert.Equal(t, "miss", Miss.String())
	assert.Equal(t, "negative_hit", NegativeHit.String())
	assert.Equal(t, "hit", Hit.String())
}

func TestMerchantMapCache_SweepRemovesExpiredEntries(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewMerchantMapCache(Config{TTL: time.Minute, MaxSize: 10, SweepInterval: 10 * time.Millisecond}, WithClock(clock.Now))
	tenant := uuid.New()

	c.Set(tenant, "starbucks", nil)
	clock.Advance(2 * time.Minute)

	c.Start(context.Background())
	defer c.Stop()

	require.Eventually(t, func() bool {
		return c.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestMerchantMapCache_StopIsIdempotent(t *testing.T) {
	c := NewMerchantMapCache(Config{SweepInterval: 10 * time.Millisecond})

	c.Stop()
	c.Start(context.Background())
	c.Start(context.Background())
	c.Stop()
	c.Stop()
}

func TestMerchantMapCache_StopsWhenContextCancelled(t *testing.T) {
	c := NewMerchantMapCache(Config{SweepInterval: 10 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	c.Start(ctx)
	done := c.sweepDone
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not exit after context cancellation")
	}
	c.Stop()
}

func TestMerchantMapCache_ConcurrentAccess(t *testing.T) {
	c := NewMerchantMapCache(Config{MaxSize: 50})
	tenants := []uuid.UUID{uuid.New(), uuid.New()}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			tenant := tenants[worker%len(tenants)]
			for j := 0; j < 100; j++ {
				merchant := fmt.Sprintf("merchant %d", j%75)
				if c.Get(tenant, merchant).IsMiss() {
					c.Set(tenant, merchant, nil)
				}
				if j%30 == 0 {
					c.Invalidate(tenant, merchant)
				}
			}
		}(i)
	}
	wg.Wait()

	stats := c.Stats()
	assert.LessOrEqual(t, stats.EntryCount, 50)
	assert.Equal(t, int64(20*100), stats.TotalRequests)
	assert.Equal(t, stats.TotalRequests, stats.Hits+stats.Misses)
}
