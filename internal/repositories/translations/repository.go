// Package translations caches localized display names keyed by language and
// resource URL.
package translations

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=translationsmock github.com/KirkDiggler/pokedex/internal/repositories/translations Repository

// CachedName is one resolved localized name
type CachedName struct {
	// Resource the name was read from (e.g. "https://pokeapi.co/api/v2/type/10/")
	URL string `json:"url"`

	// Language code the name is in (e.g. "fr")
	Language string `json:"language"`

	// Localized name. Empty when Found is false.
	Name string `json:"name"`

	// Found is false when the resource has no variant in Language
	Found bool `json:"found"`

	CachedAt time.Time `json:"cached_at"`
}

// Repository stores resolved names. Only successful lookups are stored;
// upstream failures must not be cached.
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}

// GetInput identifies a cached name
type GetInput struct {
	URL      string
	Language string
}

// GetOutput carries the cached name
type GetOutput struct {
	Name *CachedName
}

// SetInput stores a resolved name
type SetInput struct {
	URL      string
	Language string
	Name     string
	Found    bool

	// TTL overrides the repository default when non-zero
	TTL time.Duration
}

// SetOutput echoes what was stored
type SetOutput struct {
	Name *CachedName
}
