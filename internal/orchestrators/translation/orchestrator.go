// Package translation resolves localized display names for PokeAPI resources.
// Lookups never fail the caller: any error degrades to an empty name.
package translation

//go:generate mockgen -destination=mock/mock_service.go -package=translationmock github.com/KirkDiggler/pokedex/internal/orchestrators/translation Service

import (
	"context"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/repositories/translations"
)

// DefaultMaxConcurrency bounds ResolveAll when the config leaves it unset
const DefaultMaxConcurrency = 16

// Service defines the translation operations
type Service interface {
	Resolve(ctx context.Context, input *ResolveInput) *ResolveOutput
	ResolveAll(ctx context.Context, input *ResolveAllInput) *ResolveAllOutput
}

// Config holds the dependencies for the translation orchestrator
type Config struct {
	Client pokeapi.Client

	// Cache is optional. When nil every lookup goes upstream.
	Cache translations.Repository

	// MaxConcurrency bounds the lookups ResolveAll runs at once
	MaxConcurrency int

	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.MaxConcurrency < 0 {
		vb.Field("MaxConcurrency", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	client         pokeapi.Client
	cache          translations.Repository
	maxConcurrency int
	logger         *zap.Logger
}

// NewOrchestrator creates a new translation orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency == 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		client:         cfg.Client,
		cache:          cfg.Cache,
		maxConcurrency: maxConcurrency,
		logger:         logger.Named("translation"),
	}, nil
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) *ResolveOutput {
	if input == nil || input.URL == "" || input.Language == "" {
		return &ResolveOutput{Err: errors.InvalidArgument("resource URL and language are required")}
	}

	if cached, ok := o.lookupCache(ctx, input); ok {
		return cached
	}

	name, err := o.client.GetLocalizedName(ctx, input.URL, input.Language)
	if err != nil {
		fields := []zap.Field{
			zap.String("url", input.URL),
			zap.String("language", input.Language),
			zap.Error(err),
		}
		// a client that navigated away cancels every pending lookup
		if errors.IsCanceled(err) {
			o.logger.Debug("translation abandoned", fields...)
		} else {
			o.logger.Warn("translation unavailable", fields...)
		}
		return &ResolveOutput{Err: err}
	}

	o.storeCache(ctx, input, name)

	if !name.Found {
		return &ResolveOutput{}
	}
	return &ResolveOutput{Name: name.Name, Found: true}
}

func (o *orchestrator) ResolveAll(ctx context.Context, input *ResolveAllInput) *ResolveAllOutput {
	if input == nil || len(input.URLs) == 0 {
		return &ResolveAllOutput{Names: []string{}}
	}

	mapper := iter.Mapper[string, string]{MaxGoroutines: o.maxConcurrency}
	names := mapper.Map(input.URLs, func(url *string) string {
		return o.Resolve(ctx, &ResolveInput{URL: *url, Language: input.Language}).Name
	})

	return &ResolveAllOutput{Names: names}
}

func (o *orchestrator) lookupCache(ctx context.Context, input *ResolveInput) (*ResolveOutput, bool) {
	if o.cache == nil {
		return nil, false
	}

	out, err := o.cache.Get(ctx, translations.GetInput{URL: input.URL, Language: input.Language})
	if err != nil {
		if !errors.IsNotFound(err) {
			o.logger.Debug("translation cache read failed", zap.String("url", input.URL), zap.Error(err))
		}
		return nil, false
	}

	if !out.Name.Found {
		return &ResolveOutput{}, true
	}
	return &ResolveOutput{Name: out.Name.Name, Found: true}, true
}

func (o *orchestrator) storeCache(ctx context.Context, input *ResolveInput, name *pokeapi.LocalizedName) {
	if o.cache == nil {
		return
	}

	_, err := o.cache.Set(ctx, translations.SetInput{
		URL:      input.URL,
		Language: input.Language,
		Name:     name.Name,
		Found:    name.Found,
	})
	if err != nil {
		o.logger.Debug("translation cache write failed", zap.String("url", input.URL), zap.Error(err))
	}
}
