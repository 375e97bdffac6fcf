// Package pokeapi is the read-only client for the public PokeAPI
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "pokedex/1.0 (+https://github.com/KirkDiggler/pokedex)"

	// typeVocabularyLimit is larger than the number of types PokeAPI serves
	typeVocabularyLimit = 100

	maxBodyBytes = 8 << 20
)

// Client defines the upstream calls the catalog makes
type Client interface {
	// ListPokemon returns one window of the pokemon collection with the total count
	ListPokemon(ctx context.Context, input *ListPokemonInput) (*ResourceList, error)

	// GetPokemon fetches a pokemon by numeric ID or name
	GetPokemon(ctx context.Context, idOrName string) (*Pokemon, error)

	// GetPokemonByURL fetches a pokemon from a resource URL returned by the API
	GetPokemonByURL(ctx context.Context, resourceURL string) (*Pokemon, error)

	// GetSpeciesByURL fetches the species sub-resource of a pokemon
	GetSpeciesByURL(ctx context.Context, resourceURL string) (*Species, error)

	// ListTypes returns the full type vocabulary
	ListTypes(ctx context.Context) (*ResourceList, error)

	// GetLocalizedName fetches any resource with a names collection and
	// extracts the variant for language. Found is false when the resource
	// has no such variant.
	GetLocalizedName(ctx context.Context, resourceURL, language string) (*LocalizedName, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL for the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for each request (optional, defaults to 15 seconds)
	HTTPTimeout time.Duration
	// UserAgent sent on every request (optional)
	UserAgent string
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
	// Logger for request diagnostics (optional)
	Logger *zap.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateAbsoluteURL("BaseURL", cfg.BaseURL, vb)
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	logger     *zap.Logger
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid pokeapi config")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid pokeapi base URL")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		httpClient: httpClient,
		baseURL:    base,
		userAgent:  cfg.UserAgent,
		logger:     cfg.Logger.Named("pokeapi"),
	}, nil
}

func (c *client) ListPokemon(ctx context.Context, input *ListPokemonInput) (*ResourceList, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit <= 0 {
		return nil, errors.InvalidArgumentf("limit must be positive, got %d", input.Limit)
	}
	if input.Offset < 0 {
		return nil, errors.InvalidArgumentf("offset must not be negative, got %d", input.Offset)
	}

	endpoint := c.endpoint(url.Values{
		"limit":  {strconv.Itoa(input.Limit)},
		"offset": {strconv.Itoa(input.Offset)},
	}, "pokemon")

	var list ResourceList
	if err := c.getJSON(ctx, endpoint, &list); err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon")
	}
	return &list, nil
}

func (c *client) GetPokemon(ctx context.Context, idOrName string) (*Pokemon, error) {
	if idOrName == "" {
		return nil, errors.InvalidArgument("pokemon id is required")
	}
	return c.GetPokemonByURL(ctx, c.endpoint(nil, "pokemon", idOrName))
}

func (c *client) GetPokemonByURL(ctx context.Context, resourceURL string) (*Pokemon, error) {
	var pokemon Pokemon
	if err := c.getJSON(ctx, resourceURL, &pokemon); err != nil {
		return nil, errors.Wrap(err, "failed to get pokemon")
	}
	return &pokemon, nil
}

func (c *client) GetSpeciesByURL(ctx context.Context, resourceURL string) (*Species, error) {
	var species Species
	if err := c.getJSON(ctx, resourceURL, &species); err != nil {
		return nil, errors.Wrap(err, "failed to get pokemon species")
	}
	return &species, nil
}

func (c *client) ListTypes(ctx context.Context) (*ResourceList, error) {
	endpoint := c.endpoint(url.Values{"limit": {strconv.Itoa(typeVocabularyLimit)}}, "type")

	var list ResourceList
	if err := c.getJSON(ctx, endpoint, &list); err != nil {
		return nil, errors.Wrap(err, "failed to list types")
	}
	return &list, nil
}

func (c *client) GetLocalizedName(ctx context.Context, resourceURL, language string) (*LocalizedName, error) {
	if language == "" {
		return nil, errors.InvalidArgument("language is required")
	}

	body, err := c.fetch(ctx, resourceURL)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.Internal("resource is not valid JSON").WithMeta("url", resourceURL)
	}

	result := gjson.GetBytes(body, namesQuery(language))
	return &LocalizedName{
		Name:  result.String(),
		Found: result.Exists(),
	}, nil
}

// namesQuery selects the first names[] entry whose language.name equals language
func namesQuery(language string) string {
	return fmt.Sprintf(`names.#(language.name==%q).name`, language)
}

// endpoint builds a canonical API URL (trailing slash, like the URLs the API returns)
func (c *client) endpoint(query url.Values, elem ...string) string {
	u := c.baseURL.JoinPath(elem...)
	u.Path += "/"
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *client) getJSON(ctx context.Context, resourceURL string, v any) error {
	body, err := c.fetch(ctx, resourceURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode response").
			WithMeta("url", resourceURL)
	}
	return nil
}

// fetch performs a GET and maps transport and status failures onto error codes
func (c *client) fetch(ctx context.Context, resourceURL string) ([]byte, error) {
	if resourceURL == "" {
		return nil, errors.InvalidArgument("resource URL is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resourceURL, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid resource URL").
			WithMeta("url", resourceURL)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := errors.FromContext(err, "pokeapi request interrupted"); ctxErr != nil {
			return nil, ctxErr.WithMeta("url", resourceURL)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "pokeapi request failed").
			WithMeta("url", resourceURL)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body already consumed
	}()

	c.logger.Debug("pokeapi request",
		zap.String("url", resourceURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, statusError(resp.StatusCode).
			WithMeta("url", resourceURL).
			WithMeta("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := errors.FromContext(err, "pokeapi response interrupted"); ctxErr != nil {
			return nil, ctxErr.WithMeta("url", resourceURL)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read pokeapi response").
			WithMeta("url", resourceURL)
	}
	return body, nil
}

func statusError(status int) *errors.Error {
	switch {
	case status == http.StatusNotFound:
		return errors.NotFound("pokeapi resource not found")
	case status == http.StatusTooManyRequests || status >= 500:
		return errors.Unavailablef("pokeapi answered %d", status)
	default:
		return errors.Internalf("unexpected pokeapi status %d", status)
	}
}
