package web_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/handlers/web"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/catalog"
	catalogmock "github.com/KirkDiggler/pokedex/internal/orchestrators/catalog/mock"
	"github.com/KirkDiggler/pokedex/internal/views"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockService
	router      *mux.Router
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)

	renderer, err := views.NewRenderer()
	s.Require().NoError(err)

	handler, err := web.NewHandler(&web.HandlerConfig{
		Catalog:  s.mockCatalog,
		Renderer: renderer,
	})
	s.Require().NoError(err)

	s.router = mux.NewRouter()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) serve(req *http.Request) (*httptest.ResponseRecorder, *goquery.Document) {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	s.Require().NoError(err)
	return rec, doc
}

func browseOutput(page entities.Page, loaded int, filtered []entities.Summary) *catalog.BrowsePokemonOutput {
	return &catalog.BrowsePokemonOutput{
		Summaries: filtered,
		Loaded:    loaded,
		Page:      page,
		Filter: entities.TypeFilter{
			Options: []entities.TypeOption{{Key: "fire", Name: "Feu"}, {Key: "water", Name: "Eau"}},
		},
		Language: "fr",
	}
}

func summaries(n int) []entities.Summary {
	out := make([]entities.Summary, n)
	for i := range out {
		out[i] = entities.Summary{ID: i + 1, Name: fmt.Sprintf("pokémon %d", i+1), TypeKeys: []string{"water"}}
	}
	return out
}

func (s *HandlerTestSuite) TestNewHandler() {
	_, err := web.NewHandler(nil)
	s.Error(err)

	_, err = web.NewHandler(&web.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Catalog: is required; Renderer: is required")
}

func (s *HandlerTestSuite) TestLanding() {
	rec, doc := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	s.Equal("/pokemon?lang=fr&page=1", doc.Find("a.explore").AttrOr("href", ""))
	s.Equal("fr", doc.Find("html").AttrOr("lang", ""))
}

func (s *HandlerTestSuite) TestListCardCountMatchesFilteredSummaries() {
	s.mockCatalog.EXPECT().
		BrowsePokemon(gomock.Any(), &catalog.BrowsePokemonInput{Page: 1, Language: "fr"}).
		Return(browseOutput(entities.NewPage(1, 20, 45), 20, summaries(20)), nil)

	rec, doc := s.serve(httptest.NewRequest(http.MethodGet, "/pokemon", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(20, doc.Find(".card").Length())
	s.Equal("Pokémon 1", doc.Find(".card .card-name").First().Text())
	s.Equal("/pokemon/1", doc.Find(".card").First().AttrOr("href", ""))
	s.True(doc.Find(".card").First().HasClass("bg-blue-200"))
}

func (s *HandlerTestSuite) TestListWithFilters() {
	filtered := []entities.Summary{{ID: 4, Name: "Salamèche", Types: []string{"Feu"}, TypeKeys: []string{"fire"}}}
	out := browseOutput(entities.NewPage(2, 20, 45), 20, filtered)
	out.Filter.Selected = "Feu"
	out.Search = "sala"

	s.mockCatalog.EXPECT().
		BrowsePokemon(gomock.Any(), &catalog.BrowsePokemonInput{Page: 2, Search: "sala", Type: "fire", Language: "fr"}).
		Return(out, nil)

	_, doc := s.serve(httptest.NewRequest(http.MethodGet, "/pokemon?page=2&q=sala&type=fire&lang=fr", nil))

	s.Equal(1, doc.Find(".card").Length())
	s.Equal("fire", doc.Find("option[selected]").AttrOr("value", ""))

	prev, err := url.Parse(doc.Find("a.nav-prev").First().AttrOr("href", ""))
	s.Require().NoError(err)
	s.Equal("/pokemon", prev.Path)
	s.Equal(url.Values{"page": {"1"}, "q": {"sala"}, "type": {"fire"}, "lang": {"fr"}}, prev.Query())

	next, err := url.Parse(doc.Find("a.nav-next").First().AttrOr("href", ""))
	s.Require().NoError(err)
	s.Equal("3", next.Query().Get("page"))
}

func (s *HandlerTestSuite) TestListDisablesNavigationAtEnds() {
	s.mockCatalog.EXPECT().
		BrowsePokemon(gomock.Any(), gomock.Any()).
		Return(browseOutput(entities.NewPage(1, 20, 45), 20, summaries(20)), nil)
	_, doc := s.serve(httptest.NewRequest(http.MethodGet, "/pokemon?page=1", nil))
	s.Equal(2, doc.Find("button.nav-prev[disabled]").Length())
	s.Equal(2, doc.Find("a.nav-next").Length())

	s.mockCatalog.EXPECT().
		BrowsePokemon(gomock.Any(), gomock.Any()).
		Return(browseOutput(entities.NewPage(3, 20, 45), 5, summaries(5)), nil)
	_, doc = s.serve(httptest.NewRequest(http.MethodGet, "/pokemon?page=3", nil))
	s.Equal(2, doc.Find("a.nav-prev").Length())
	s.Equal(2, doc.Find("button.nav-next[disabled]").Length())
	s.Equal(5, doc.Find(".card").Length())
}

func (s *HandlerTestSuite) TestListMalformedPageMeansFirstPage() {
	s.mockCatalog.EXPECT().
		BrowsePokemon(gomock.Any(), &catalog.BrowsePokemonInput{Page: 1, Language: "fr"}).
		Return(browseOutput(entities.NewPage(1, 20, 45), 20, summaries(20)), nil)

	rec, _ := s.serve(httptest.NewRequest(http.MethodGet, "/pokemon?page=abc", nil))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestListFailureRendersErrorOnly() {
	s.mockCatalog.EXPECT().
		BrowsePokemon(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("failed to list pokemon"))

	rec, doc := s.serve(httptest.NewRequest(http.MethodGet, "/pokemon", nil))

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Zero(doc.Find(".card").Length())
	s.Equal("failed to list pokemon", doc.Find(".error-message").Text())
}

func (s *HandlerTestSuite) TestDetail() {
	s.mockCatalog.EXPECT().
		GetPokemon(gomock.Any(), &catalog.GetPokemonInput{ID: "25", Language: "fr"}).
		Return(&catalog.GetPokemonOutput{
			Pokemon: &entities.Detail{
				Summary:     entities.Summary{ID: 25, Name: "Pikachu", Types: []string{"Électrik"}, TypeKeys: []string{"electric"}},
				Abilities:   []string{"Statik"},
				Stats:       []entities.Stat{{Key: "hp", Label: "PV", Value: 35}},
				HeightCM:    70,
				WeightKG:    6.9,
				Description: catalog.DefaultDescriptionPlaceholder,
			},
			Language: "fr",
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/pokemon/25", nil)
	req.Header.Set("Referer", "http://example.com/pokemon?page=2")
	req.AddCookie(&http.Cookie{Name: views.ThemeCookie, Value: "dark"})
	rec, doc := s.serve(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("dark", doc.Find("html").AttrOr("class", ""))
	s.Equal("Pikachu", doc.Find(".detail-name").Text())
	s.Equal("Taille: 70 cm", doc.Find(".height").Text())
	s.Equal("Poids: 6.9 kg", doc.Find(".weight").Text())
	s.Equal("Description non disponible", doc.Find(".detail-description").Text())
	s.Equal("/pokemon?page=2", doc.Find("a.back").AttrOr("href", ""))
}

func (s *HandlerTestSuite) TestDetailErrors() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid identifier", err: errors.InvalidArgument(`invalid pokemon identifier "x y"`), wantStatus: http.StatusBadRequest},
		{name: "unknown pokemon", err: errors.NotFound("failed to get pokemon"), wantStatus: http.StatusNotFound},
		{name: "internal", err: errors.Internal("template exploded"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCatalog.EXPECT().GetPokemon(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec, doc := s.serve(httptest.NewRequest(http.MethodGet, "/pokemon/9999", nil))

			s.Equal(tc.wantStatus, rec.Code)
			s.Zero(doc.Find(".detail").Length())
			s.Equal(fmt.Sprint(tc.wantStatus), doc.Find(".error").AttrOr("data-status", ""))
			s.NotContains(doc.Find(".error-message").Text(), "exploded")
		})
	}
}

func (s *HandlerTestSuite) TestToggleTheme() {
	req := httptest.NewRequest(http.MethodGet, "/theme?next=%2Fpokemon%3Fpage%3D2", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/pokemon?page=2", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(views.ThemeCookie, cookies[0].Name)
	s.Equal("dark", cookies[0].Value)

	req = httptest.NewRequest(http.MethodGet, "/theme?next=https://evil.example/", nil)
	req.AddCookie(&http.Cookie{Name: views.ThemeCookie, Value: "dark"})
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal("/", rec.Header().Get("Location"))
	s.Equal("light", rec.Result().Cookies()[0].Value)
}
