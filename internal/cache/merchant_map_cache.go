package cache

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"receipt-tracker/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultMaxSize       = 1000
	DefaultSweepInterval = 5 * time.Minute

	// EstimatedEntryBytes is a fixed per-entry approximation used by Stats.
	EstimatedEntryBytes = 256
)

// Config controls expiry, capacity and the background sweep.
type Config struct {
	TTL           time.Duration
	MaxSize       int
	SweepInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		TTL:           DefaultTTL,
		MaxSize:       DefaultMaxSize,
		SweepInterval: DefaultSweepInterval,
	}
}

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	TotalRequests        int64   `json:"total_requests"`
	Hits                 int64   `json:"hits"`
	Misses               int64   `json:"misses"`
	HitRate              float64 `json:"hit_rate"`
	EntryCount           int     `json:"entry_count"`
	EstimatedMemoryBytes int64   `json:"estimated_memory_bytes"`
}

type entry struct {
	tenantID   uuid.UUID
	mapping    *models.MerchantMapping
	insertedAt time.Time
	hitCount   int64
}

// Option customizes a MerchantMapCache.
type Option func(*MerchantMapCache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *MerchantMapCache) {
		c.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *MerchantMapCache) {
		c.logger = logger
	}
}

// MerchantMapCache memoizes merchant mapping lookups per tenant, including
// negative results. Entries expire after the TTL and, at capacity, the entry
// with the fewest hits (oldest first on ties) is evicted.
//
// Two concurrent misses for the same key may both go to the store and both
// Set; the second write wins and the results are identical, so no
// single-flight coordination is done.
type MerchantMapCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	config  Config
	now     func() time.Time
	logger  *slog.Logger

	totalRequests int64
	hits          int64
	misses        int64

	lifecycleMu sync.Mutex
	cancel      context.CancelFunc
	sweepDone   chan struct{}
}

func NewMerchantMapCache(cfg Config, opts ...Option) *MerchantMapCache {
	defaults := DefaultConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = defaults.TTL
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaults.MaxSize
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaults.SweepInterval
	}

	c := &MerchantMapCache{
		entries: make(map[string]*entry),
		config:  cfg,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func cacheKey(tenantID uuid.UUID, merchantName string) string {
	return tenantID.String() + ":" + models.NormalizeMerchantName(merchantName)
}

// Get returns the cached lookup for a tenant and merchant. Expired entries are
// removed and reported as a miss.
func (c *MerchantMapCache) Get(tenantID uuid.UUID, merchantName string) LookupResult {
	key := cacheKey(tenantID, merchantName)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalRequests++

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return LookupResult{Kind: Miss}
	}

	if c.expired(e) {
		delete(c.entries, key)
		c.misses++
		return LookupResult{Kind: Miss}
	}

	e.hitCount++
	c.hits++

	if e.mapping == nil {
		return LookupResult{Kind: NegativeHit}
	}

	mapping := *e.mapping
	return LookupResult{Kind: Hit, Mapping: &mapping}
}

// Set stores a mapping, or a negative result when mapping is nil. The entry
// timestamp and hit count are reset.
func (c *MerchantMapCache) Set(tenantID uuid.UUID, merchantName string, mapping *models.MerchantMapping) {
	key := cacheKey(tenantID, merchantName)

	var stored *models.MerchantMapping
	if mapping != nil {
		cp := *mapping
		stored = &cp
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.config.MaxSize {
		c.evictLocked()
	}

	c.entries[key] = &entry{
		tenantID:   tenantID,
		mapping:    stored,
		insertedAt: c.now(),
	}
}

func (c *MerchantMapCache) Invalidate(tenantID uuid.UUID, merchantName string) {
	key := cacheKey(tenantID, merchantName)

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// InvalidateTenant drops every entry, positive or negative, for the tenant.
func (c *MerchantMapCache) InvalidateTenant(tenantID uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if e.tenantID == tenantID {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Clear drops all entries and resets the counters.
func (c *MerchantMapCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
	c.totalRequests = 0
	c.hits = 0
	c.misses = 0
}

func (c *MerchantMapCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if c.totalRequests > 0 {
		hitRate = math.Round(float64(c.hits)/float64(c.totalRequests)*10000) / 100
	}

	return Stats{
		TotalRequests:        c.totalRequests,
		Hits:                 c.hits,
		Misses:               c.misses,
		HitRate:              hitRate,
		EntryCount:           len(c.entries),
		EstimatedMemoryBytes: int64(len(c.entries)) * EstimatedEntryBytes,
	}
}

func (c *MerchantMapCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// CleanExpired removes every entry older than the TTL and returns how many
// were removed.
func (c *MerchantMapCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Start launches the periodic sweep. It stops when ctx is cancelled or Stop
// is called. Calling Start on a running cache is a no-op.
func (c *MerchantMapCache) Start(ctx context.Context) {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.cancel != nil {
		return
	}

	sweepCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.sweepDone = make(chan struct{})

	go c.sweep(sweepCtx, c.sweepDone)
}

// Stop cancels the sweep and waits for it to exit.
func (c *MerchantMapCache) Stop() {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.cancel == nil {
		return
	}

	c.cancel()
	<-c.sweepDone
	c.cancel = nil
	c.sweepDone = nil
}

func (c *MerchantMapCache) sweep(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := c.CleanExpired(); removed > 0 {
				c.logger.Debug("merchant map cache sweep",
					slog.Int("removed", removed),
					slog.Int("remaining", c.Len()))
			}
		}
	}
}

func (c *MerchantMapCache) expired(e *entry) bool {
	return c.now().Sub(e.insertedAt) > c.config.TTL
}

// evictLocked removes the entry with the lowest hit count, breaking ties by
// the oldest insertion time. Callers must hold c.mu.
func (c *MerchantMapCache) evictLocked() {
	var victimKey string
	var victim *entry

	for key, e := range c.entries {
		if victim == nil ||
			e.hitCount < victim.hitCount ||
			(e.hitCount == victim.hitCount && e.insertedAt.Before(victim.insertedAt)) {
			victimKey = key
			victim = e
		}
	}

	if victim != nil {
		delete(c.entries, victimKey)
	}
}
