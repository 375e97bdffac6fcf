// Package web serves the server-rendered catalog pages
package web

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokedex/internal/views"
)

const themeCookieMaxAge = 365 * 24 * time.Hour

// HandlerConfig holds dependencies for the page handler
type HandlerConfig struct {
	Catalog  catalog.Service
	Renderer *views.Renderer

	// Language used when a request does not pass ?lang= (optional, defaults to fr)
	Language string

	Logger *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Language == "" {
		c.Language = catalog.DefaultLanguage
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	return vb.Build()
}

// Handler renders the landing, list and detail pages
type Handler struct {
	catalog  catalog.Service
	renderer *views.Renderer
	language string
	logger   *zap.Logger
}

// NewHandler creates a new page handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		catalog:  cfg.Catalog,
		renderer: cfg.Renderer,
		language: cfg.Language,
		logger:   cfg.Logger.Named("web"),
	}, nil
}

// RegisterRoutes mounts the pages on router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Landing).Methods(http.MethodGet)
	router.HandleFunc("/pokemon", h.List).Methods(http.MethodGet)
	router.HandleFunc("/pokemon/{id}", h.Detail).Methods(http.MethodGet)
	router.HandleFunc("/theme", h.ToggleTheme).Methods(http.MethodGet)
}

// Landing renders the home page
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	common := h.common(r, "")
	h.render(w, r, http.StatusOK, views.PageLanding, views.LandingPage{
		Common:   common,
		ListHref: listHref(1, "", "", common.Lang),
	})
}

// List renders one page of cards. A malformed page number means page 1.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil {
		page = 1
	}

	out, err := h.catalog.BrowsePokemon(r.Context(), &catalog.BrowsePokemonInput{
		Page:     page,
		Search:   query.Get("q"),
		Type:     query.Get("type"),
		Language: h.requestLanguage(r),
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	common := h.common(r, out.Language)

	selectedKey := ""
	for _, opt := range out.Filter.Options {
		if opt.Name == out.Filter.Selected {
			selectedKey = opt.Key
			break
		}
	}

	h.render(w, r, http.StatusOK, views.PageList, views.ListPage{
		Common:       common,
		Cards:        views.NewCards(out.Summaries, out.Language),
		Page:         out.Page,
		Search:       out.Search,
		Filter:       out.Filter,
		SelectedKey:  selectedKey,
		PreviousHref: listHref(out.Page.Number-1, out.Search, selectedKey, out.Language),
		NextHref:     listHref(out.Page.Number+1, out.Search, selectedKey, out.Language),
	})
}

// Detail renders one pokemon
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.GetPokemon(r.Context(), &catalog.GetPokemonInput{
		ID:       strings.ToLower(mux.Vars(r)["id"]),
		Language: h.requestLanguage(r),
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	common := h.common(r, out.Language)
	h.render(w, r, http.StatusOK, views.PageDetail,
		views.NewDetailPage(common, out.Pokemon, backHref(r, out.Language)))
}

// ToggleTheme flips the theme cookie and sends the visitor back to ?next=
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	current := views.ThemeLight
	if c, err := r.Cookie(views.ThemeCookie); err == nil {
		current = views.ParseTheme(c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     views.ThemeCookie,
		Value:    string(current.Toggle()),
		Path:     "/",
		MaxAge:   int(themeCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, localPath(r.URL.Query().Get("next")), http.StatusSeeOther)
}

func (h *Handler) requestLanguage(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return h.language
}

// common builds the shared page model. lang is the resolved language when
// the catalog has already canonicalized it.
func (h *Handler) common(r *http.Request, lang string) views.Common {
	if lang == "" {
		lang = strings.ToLower(h.requestLanguage(r))
	}

	theme := views.ThemeLight
	if c, err := r.Cookie(views.ThemeCookie); err == nil {
		theme = views.ParseTheme(c.Value)
	}

	labels := views.LabelsFor(lang)
	return views.Common{
		Title:     labels.SiteTitle,
		Lang:      lang,
		Theme:     theme,
		Labels:    labels,
		ThemeHref: "/theme?next=" + url.QueryEscape(r.URL.RequestURI()),
	}
}

// renderError shows the error page with the status of the error code.
// Nothing from a failed request is rendered besides the message.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	message := errors.GetMessage(err)

	switch code {
	case errors.CodeCanceled:
		h.logger.Debug("request abandoned", zap.String("path", r.URL.Path))
	case errors.CodeInternal:
		h.logger.Error("page failed", zap.String("path", r.URL.Path), zap.Error(err))
		message = http.StatusText(http.StatusInternalServerError)
	default:
		h.logger.Warn("page failed", zap.String("path", r.URL.Path), zap.Error(err))
	}

	h.render(w, r, code.HTTPStatus(), views.PageError, views.ErrorPage{
		Common:  h.common(r, ""),
		Status:  code.HTTPStatus(),
		Message: message,
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.logger.Error("render failed", zap.String("path", r.URL.Path), zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w) // nolint:errcheck // client went away
}

func listHref(page int, search, typeKey, lang string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(max(page, 1)))
	if search != "" {
		q.Set("q", search)
	}
	if typeKey != "" {
		q.Set("type", typeKey)
	}
	if lang != "" {
		q.Set("lang", lang)
	}
	return "/pokemon?" + q.Encode()
}

// backHref returns to the list page the visitor came from, if any
func backHref(r *http.Request, lang string) string {
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Host == r.Host && ref.Path == "/pokemon" {
		return ref.RequestURI()
	}
	return listHref(1, "", "", lang)
}

// localPath keeps redirects on this site
func localPath(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
