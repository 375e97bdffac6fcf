package translations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokedex/internal/redis"
)

const (
	// Key pattern: translation:{language}:{url}
	keyPrefix = "translation:"

	// DefaultTTL applies when neither the config nor the input sets one
	DefaultTTL = 24 * time.Hour

	errURLEmpty      = "resource URL cannot be empty"
	errLanguageEmpty = "language cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL for stored names (optional, defaults to DefaultTTL)
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed translation cache
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.URL, input.Language); err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, buildKey(input.Language, input.URL)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("translation not cached").
				WithMeta("url", input.URL).
				WithMeta("language", input.Language)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read translation from redis")
	}

	var name CachedName
	if err := json.Unmarshal([]byte(raw), &name); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal cached translation")
	}

	return &GetOutput{Name: &name}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if err := validateKey(input.URL, input.Language); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	name := &CachedName{
		URL:      input.URL,
		Language: input.Language,
		Name:     input.Name,
		Found:    input.Found,
		CachedAt: r.clock.Now(),
	}

	data, err := json.Marshal(name)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to marshal translation")
	}

	if err := r.client.Set(ctx, buildKey(input.Language, input.URL), data, ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store translation in redis")
	}

	return &SetOutput{Name: name}, nil
}

func validateKey(url, language string) error {
	if url == "" {
		return errors.InvalidArgument(errURLEmpty)
	}
	if language == "" {
		return errors.InvalidArgument(errLanguageEmpty)
	}
	return nil
}

func buildKey(language, url string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, language, url)
}
