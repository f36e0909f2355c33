package cache

import "receipt-tracker/internal/models"

// LookupKind distinguishes the three outcomes of a cache read.
type LookupKind int

const (
	// Miss means the cache knows nothing and the store must be consulted.
	Miss LookupKind = iota
	// NegativeHit means the store was consulted recently and had no mapping.
	NegativeHit
	// Hit means a mapping is cached.
	Hit
)

func (k LookupKind) String() string {
	switch k {
	case Hit:
		return "hit"
	case NegativeHit:
		return "negative_hit"
	default:
		return "miss"
	}
}

// LookupResult is the outcome of Get. Mapping is only set when Kind is Hit.
type LookupResult struct {
	Kind    LookupKind
	Mapping *models.MerchantMapping
}

func (r LookupResult) IsMiss() bool {
	return r.Kind == Miss
}

func (r LookupResult) IsNegative() bool {
	return r.Kind == NegativeHit
}

func (r LookupResult) IsHit() bool {
	return r.Kind == Hit
}
