package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/translation"
	translationmock "github.com/KirkDiggler/pokedex/internal/orchestrators/translation/mock"
)

const speciesURL = "https://pokeapi.co/api/v2/pokemon-species/132/"

type FallbackTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockClient     *pokeapimock.MockClient
	mockTranslator *translationmock.MockService
	service        catalog.Service
	ctx            context.Context
}

func TestFallbackTestSuite(t *testing.T) {
	suite.Run(t, new(FallbackTestSuite))
}

func (s *FallbackTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.mockTranslator = translationmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	service, err := catalog.NewOrchestrator(&catalog.Config{
		Client:                 s.mockClient,
		Translator:             s.mockTranslator,
		DescriptionPlaceholder: "n/a",
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *FallbackTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func ditto() *pokeapi.Pokemon {
	return &pokeapi.Pokemon{
		ID:     132,
		Name:   "ditto",
		Height: 3,
		Weight: 40,
		Types: []pokeapi.PokemonType{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "normal", URL: "type/normal"}},
		},
		Abilities: []pokeapi.PokemonAbility{
			{Slot: 1, Ability: pokeapi.NamedResource{Name: "limber", URL: "ability/limber"}},
			{Slot: 3, IsHidden: true, Ability: pokeapi.NamedResource{Name: "imposter", URL: "ability/imposter"}},
		},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 48, Stat: pokeapi.NamedResource{Name: "hp", URL: "stat/hp"}},
		},
		Species: pokeapi.NamedResource{Name: "ditto", URL: speciesURL},
	}
}

func (s *FallbackTestSuite) TestUntranslatedDetailFallsBackToAPINames() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "132").Return(ditto(), nil)
	s.mockClient.EXPECT().
		GetSpeciesByURL(gomock.Any(), speciesURL).
		Return(&pokeapi.Species{ID: 132, Name: "ditto"}, nil)

	s.mockTranslator.EXPECT().
		ResolveAll(gomock.Any(), &translation.ResolveAllInput{URLs: []string{"type/normal"}, Language: "fr"}).
		Return(&translation.ResolveAllOutput{Names: []string{""}})
	s.mockTranslator.EXPECT().
		ResolveAll(gomock.Any(), &translation.ResolveAllInput{URLs: []string{"ability/limber", "ability/imposter"}, Language: "fr"}).
		Return(&translation.ResolveAllOutput{Names: []string{"Échauffement", ""}})
	s.mockTranslator.EXPECT().
		ResolveAll(gomock.Any(), &translation.ResolveAllInput{URLs: []string{"stat/hp"}, Language: "fr"}).
		Return(&translation.ResolveAllOutput{Names: []string{""}})

	out, err := s.service.GetPokemon(s.ctx, &catalog.GetPokemonInput{ID: "132"})
	s.Require().NoError(err)

	p := out.Pokemon
	s.Equal("ditto", p.Name)
	s.Equal([]string{""}, p.Types)
	s.Equal([]string{"normal"}, p.TypeKeys)
	s.Equal([]string{"Échauffement", "imposter"}, p.Abilities)
	s.Equal("hp", p.Stats[0].Label)
	s.Equal(48, p.Stats[0].Value)
	s.Equal(30, p.HeightCM)
	s.Equal(4.0, p.WeightKG)
	s.Equal("n/a", p.Description)
}

func (s *FallbackTestSuite) TestListSummaryUsesTranslator() {
	s.mockClient.EXPECT().
		ListPokemon(gomock.Any(), &pokeapi.ListPokemonInput{Limit: 20, Offset: 0}).
		Return(&pokeapi.ResourceList{
			Count:   1,
			Results: []pokeapi.NamedResource{{Name: "ditto", URL: "pokemon/132"}},
		}, nil)
	s.mockClient.EXPECT().GetPokemonByURL(gomock.Any(), "pokemon/132").Return(ditto(), nil)
	s.mockTranslator.EXPECT().
		Resolve(gomock.Any(), &translation.ResolveInput{URL: speciesURL, Language: "fr"}).
		Return(&translation.ResolveOutput{Name: "Métamorph", Found: true})
	s.mockTranslator.EXPECT().
		ResolveAll(gomock.Any(), &translation.ResolveAllInput{URLs: []string{"type/normal"}, Language: "fr"}).
		Return(&translation.ResolveAllOutput{Names: []string{"Normal"}})

	out, err := s.service.ListPokemon(s.ctx, &catalog.ListPokemonInput{Page: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Summaries, 1)
	s.Equal("Métamorph", out.Summaries[0].Name)
	s.Equal([]string{"Normal"}, out.Summaries[0].Types)
	s.False(out.Page.HasNext())
}
