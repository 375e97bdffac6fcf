package pokeapi_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/testutils"
)

type ClientTestSuite struct {
	suite.Suite
	fake   *testutils.FakePokeAPI
	client pokeapi.Client
	ctx    context.Context
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.fake = testutils.NewFakePokeAPI(s.T())
	testutils.SeedCatalog(s.fake)
	s.ctx = context.Background()

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     s.fake.BaseURL(),
		HTTPTimeout: 5 * time.Second,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TestNew() {
	testCases := []struct {
		name    string
		config  *pokeapi.Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "defaults fill an empty config",
			config: &pokeapi.Config{},
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "relative base URL",
			config:  &pokeapi.Config{BaseURL: "/api/v2/"},
			wantErr: true,
			errMsg:  "BaseURL: must be an absolute http(s) URL",
		},
		{
			name:    "negative timeout",
			config:  &pokeapi.Config{HTTPTimeout: -time.Second},
			wantErr: true,
			errMsg:  "HTTPTimeout: must not be negative",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := pokeapi.New(tc.config)
			if tc.wantErr {
				s.Require().Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.True(errors.IsInvalidArgument(err))
				s.Nil(client)
				return
			}
			s.NoError(err)
			s.NotNil(client)
		})
	}
}

func (s *ClientTestSuite) TestListPokemon() {
	list, err := s.client.ListPokemon(s.ctx, &pokeapi.ListPokemonInput{Limit: 20, Offset: 20})
	s.Require().NoError(err)

	s.Equal(testutils.SeededPokemonCount, list.Count)
	s.Require().Len(list.Results, 5)
	s.Equal("fearow", list.Results[1].Name)
	s.Equal(s.fake.URL("pokemon/25/"), list.Results[4].URL)
}

func (s *ClientTestSuite) TestListPokemonValidation() {
	_, err := s.client.ListPokemon(s.ctx, &pokeapi.ListPokemonInput{Limit: 0})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.ListPokemon(s.ctx, &pokeapi.ListPokemonInput{Limit: 20, Offset: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.ListPokemon(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	s.Zero(s.fake.TotalHits())
}

func (s *ClientTestSuite) TestGetPokemon() {
	pokemon, err := s.client.GetPokemon(s.ctx, "25")
	s.Require().NoError(err)

	s.Equal(testutils.PikachuID, pokemon.ID)
	s.Equal("pikachu", pokemon.Name)
	s.Equal(4, pokemon.Height)
	s.Equal(60, pokemon.Weight)
	s.Equal(testutils.ArtworkURL(25), pokemon.ArtworkURL())
	s.Require().Len(pokemon.Types, 1)
	s.Equal(s.fake.URL("type/electric/"), pokemon.Types[0].Type.URL)
	s.Require().Len(pokemon.Abilities, 2)
	s.Equal("static", pokemon.Abilities[0].Ability.Name)
	s.Require().Len(pokemon.Stats, 6)
	s.Equal(90, pokemon.Stats[5].BaseStat)
	s.Equal(s.fake.URL("pokemon-species/25/"), pokemon.Species.URL)

	byName, err := s.client.GetPokemon(s.ctx, "pikachu")
	s.Require().NoError(err)
	s.Equal(pokemon, byName)
}

func (s *ClientTestSuite) TestArtworkFallsBackToDefaultSprite() {
	p := &pokeapi.Pokemon{Sprites: pokeapi.Sprites{FrontDefault: "front.png"}}
	s.Equal("front.png", p.ArtworkURL())
}

func (s *ClientTestSuite) TestGetPokemonNotFound() {
	_, err := s.client.GetPokemon(s.ctx, "9999")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(s.fake.URL("pokemon/9999/"), errors.GetMeta(err)["url"])
	s.Equal(http.StatusNotFound, errors.GetMeta(err)["status"])
}

func (s *ClientTestSuite) TestServerErrorIsUnavailable() {
	s.fake.FailPath("/api/v2/pokemon/", http.StatusServiceUnavailable)

	_, err := s.client.ListPokemon(s.ctx, &pokeapi.ListPokemonInput{Limit: 20})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestUnexpectedStatusIsInternal() {
	s.fake.FailPath("/api/v2/type/", http.StatusForbidden)

	_, err := s.client.ListTypes(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *ClientTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.GetPokemon(ctx, "25")
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *ClientTestSuite) TestGetSpeciesByURL() {
	species, err := s.client.GetSpeciesByURL(s.ctx, s.fake.URL("pokemon-species/25/"))
	s.Require().NoError(err)

	s.Equal("pikachu", species.Name)
	s.Require().Len(species.FlavorTextEntries, 4)
	s.Equal("fr", species.FlavorTextEntries[1].Language.Name)
	s.Equal(testutils.PikachuFlavorFR, species.FlavorTextEntries[1].FlavorText)
}

func (s *ClientTestSuite) TestListTypes() {
	list, err := s.client.ListTypes(s.ctx)
	s.Require().NoError(err)

	s.Len(list.Results, len(testutils.SeededTypes))
	s.Equal("normal", list.Results[0].Name)
	s.Equal(s.fake.URL("type/normal/"), list.Results[0].URL)
}

func (s *ClientTestSuite) TestGetLocalizedName() {
	testCases := []struct {
		name      string
		url       string
		language  string
		wantName  string
		wantFound bool
	}{
		{
			name:      "type in french",
			url:       s.fake.URL("type/electric/"),
			language:  "fr",
			wantName:  "Électrik",
			wantFound: true,
		},
		{
			name:      "species in english",
			url:       s.fake.URL("pokemon-species/4/"),
			language:  "en",
			wantName:  "Charmander",
			wantFound: true,
		},
		{
			name:      "type without a french variant",
			url:       s.fake.URL("type/stellar/"),
			language:  "fr",
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := s.client.GetLocalizedName(s.ctx, tc.url, tc.language)
			s.Require().NoError(err)
			s.Equal(tc.wantFound, got.Found)
			s.Equal(tc.wantName, got.Name)
		})
	}
}

func (s *ClientTestSuite) TestGetLocalizedNameErrors() {
	_, err := s.client.GetLocalizedName(s.ctx, s.fake.URL("type/electric/"), "")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.GetLocalizedName(s.ctx, "", "fr")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.GetLocalizedName(s.ctx, s.fake.URL("ability/unknown/"), "fr")
	s.True(errors.IsNotFound(err))
}
