package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/handlers/api/v1alpha1"
)

// apiClient calls the server's JSON API
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// get fetches path and returns the raw body. API error bodies come back as
// *errors.Error with the server's code and message.
func (c *apiClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.baseURL + v1alpha1.PathPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", c.baseURL, err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body already consumed
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr v1alpha1.ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Code == "" {
			return nil, errors.Newf(errors.CodeInternal, "server answered %d", resp.StatusCode)
		}
		return nil, errors.New(errors.Code(apiErr.Error.Code), apiErr.Error.Message).
			WithMeta("status", resp.StatusCode)
	}
	return body, nil
}

func (c *apiClient) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *apiClient) ListPokemon(ctx context.Context, page int, search, typeName, lang string) (*v1alpha1.ListPokemonResponse, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", fmt.Sprint(page))
	}
	setIf(query, "q", search)
	setIf(query, "type", typeName)
	setIf(query, "lang", lang)

	var resp v1alpha1.ListPokemonResponse
	if err := c.getJSON(ctx, "/pokemon", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *apiClient) GetPokemon(ctx context.Context, id, lang string) (*v1alpha1.GetPokemonResponse, error) {
	query := url.Values{}
	setIf(query, "lang", lang)

	var resp v1alpha1.GetPokemonResponse
	if err := c.getJSON(ctx, "/pokemon/"+url.PathEscape(id), query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *apiClient) ListTypes(ctx context.Context, lang string) (*v1alpha1.ListTypesResponse, error) {
	query := url.Values{}
	setIf(query, "lang", lang)

	var resp v1alpha1.ListTypesResponse
	if err := c.getJSON(ctx, "/types", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func setIf(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

// printJSON pretty-prints any response for --json output
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
