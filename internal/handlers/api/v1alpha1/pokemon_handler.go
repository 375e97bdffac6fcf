// Package v1alpha1 serves the catalog as JSON
package v1alpha1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/catalog"
)

// PathPrefix is where RegisterRoutes mounts the API
const PathPrefix = "/api/v1alpha1"

// PokemonHandlerConfig holds dependencies for the pokemon handler
type PokemonHandlerConfig struct {
	Catalog catalog.Service
	Logger  *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *PokemonHandlerConfig) Validate() error {
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog service is required")
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// PokemonHandler implements the JSON catalog endpoints
type PokemonHandler struct {
	catalog catalog.Service
	logger  *zap.Logger
}

// NewPokemonHandler creates a new pokemon handler with the given configuration
func NewPokemonHandler(cfg *PokemonHandlerConfig) (*PokemonHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PokemonHandler{
		catalog: cfg.Catalog,
		logger:  cfg.Logger.Named("api"),
	}, nil
}

// RegisterRoutes mounts the endpoints under PathPrefix
func (h *PokemonHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix(PathPrefix).Subrouter()
	api.HandleFunc("/pokemon", h.ListPokemon).Methods(http.MethodGet)
	api.HandleFunc("/pokemon/{id}", h.GetPokemon).Methods(http.MethodGet)
	api.HandleFunc("/types", h.ListTypes).Methods(http.MethodGet)
}

// ListPokemon serves one filtered page of summaries
func (h *PokemonHandler) ListPokemon(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, errors.InvalidArgumentf("page must be a number, got %q", raw))
			return
		}
		page = n
	}

	out, err := h.catalog.BrowsePokemon(r.Context(), &catalog.BrowsePokemonInput{
		Page:     page,
		Search:   query.Get("q"),
		Type:     query.Get("type"),
		Language: query.Get("lang"),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	summaries := make([]PokemonSummary, len(out.Summaries))
	for i, s := range out.Summaries {
		summaries[i] = toSummary(s)
	}

	respondJSON(w, http.StatusOK, ListPokemonResponse{
		Pokemon:  summaries,
		Loaded:   out.Loaded,
		Page:     toPage(out.Page),
		Search:   out.Search,
		Type:     out.Filter.Selected,
		Language: out.Language,
	})
}

// GetPokemon serves one detail record
func (h *PokemonHandler) GetPokemon(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.GetPokemon(r.Context(), &catalog.GetPokemonInput{
		ID:       mux.Vars(r)["id"],
		Language: r.URL.Query().Get("lang"),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, GetPokemonResponse{
		Pokemon:  toDetail(out.Pokemon),
		Language: out.Language,
	})
}

// ListTypes serves the translated type menu
func (h *PokemonHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.ListTypes(r.Context(), &catalog.ListTypesInput{
		Language: r.URL.Query().Get("lang"),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	types := make([]TypeOption, len(out.Options))
	for i, opt := range out.Options {
		types[i] = TypeOption{Key: opt.Key, Name: opt.Name}
	}
	respondJSON(w, http.StatusOK, ListTypesResponse{Types: types})
}

// respondError maps err onto its HTTP status. Internal details stay in the log.
func (h *PokemonHandler) respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	message := errors.GetMessage(err)
	if code == errors.CodeInternal {
		h.logger.Error("request failed", zap.Error(err))
		message = "internal error"
	}

	respondJSON(w, code.HTTPStatus(), ErrorResponse{
		Error: ErrorBody{Code: code.String(), Message: message},
	})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) // nolint:errcheck // headers already sent
}
