// Package catalog assembles list and detail records from the upstream API.
// Every fetch runs under the caller's context, so abandoning a request
// cancels all of its in-flight sub-requests.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/pokedex/internal/orchestrators/catalog Service

import (
	"context"
	"regexp"
	"strings"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/translation"
)

const (
	// DefaultPageSize is the number of entries on a list page
	DefaultPageSize = 20

	// DefaultLanguage is used when neither the config nor the request names one
	DefaultLanguage = "fr"

	// DefaultDescriptionPlaceholder replaces a missing flavor text
	DefaultDescriptionPlaceholder = "Description non disponible"

	defaultMaxConcurrency = 16
)

var idPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Service defines the catalog operations
type Service interface {
	// ListPokemon loads one page of summaries. Any failed primary fetch
	// fails the whole page.
	ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error)

	// ListTypes loads the translated type menu. Untranslated types are omitted.
	ListTypes(ctx context.Context, input *ListTypesInput) (*ListTypesOutput, error)

	// BrowsePokemon loads a page and the type menu together and applies the
	// search and type filters to the loaded page.
	BrowsePokemon(ctx context.Context, input *BrowsePokemonInput) (*BrowsePokemonOutput, error)

	// GetPokemon assembles the detail record for one pokemon
	GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Client     pokeapi.Client
	Translator translation.Service

	// Optional settings, defaulted by Validate
	PageSize               int
	Language               string
	DescriptionPlaceholder string
	MaxConcurrency         int

	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided and fills defaults
func (c *Config) Validate() error {
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.DescriptionPlaceholder == "" {
		c.DescriptionPlaceholder = DefaultDescriptionPlaceholder
	}
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = defaultMaxConcurrency
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Translator == nil {
		vb.RequiredField("Translator")
	}
	errors.ValidateRange("PageSize", c.PageSize, 1, 100, vb)
	if c.MaxConcurrency < 0 {
		vb.Field("MaxConcurrency", "must not be negative")
	}
	if _, err := language.Parse(c.Language); err != nil {
		vb.Fieldf("Language", "not a language tag: %q", c.Language)
	}

	return vb.Build()
}

type orchestrator struct {
	client         pokeapi.Client
	translator     translation.Service
	pageSize       int
	language       string
	placeholder    string
	maxConcurrency int
	logger         *zap.Logger
}

// NewOrchestrator creates a new catalog orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	lang, _ := language.Parse(cfg.Language)

	return &orchestrator{
		client:         cfg.Client,
		translator:     cfg.Translator,
		pageSize:       cfg.PageSize,
		language:       lang.String(),
		placeholder:    cfg.DescriptionPlaceholder,
		maxConcurrency: cfg.MaxConcurrency,
		logger:         cfg.Logger.Named("catalog"),
	}, nil
}

func (o *orchestrator) ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	lang, err := o.resolveLanguage(input.Language)
	if err != nil {
		return nil, err
	}

	number := max(input.Page, 1)
	list, err := o.client.ListPokemon(ctx, &pokeapi.ListPokemonInput{
		Limit:  o.pageSize,
		Offset: (number - 1) * o.pageSize,
	})
	if err != nil {
		return nil, o.primaryFailure(err, "failed to list pokemon", zap.Int("page", number))
	}

	page := entities.NewPage(number, o.pageSize, list.Count)
	if page.Number != number && list.Count > 0 {
		// past the end: serve the last page instead
		list, err = o.client.ListPokemon(ctx, &pokeapi.ListPokemonInput{
			Limit:  o.pageSize,
			Offset: page.Offset(),
		})
		if err != nil {
			return nil, o.primaryFailure(err, "failed to list pokemon", zap.Int("page", page.Number))
		}
	}

	summaries, err := o.loadSummaries(ctx, list.Results, lang)
	if err != nil {
		return nil, o.primaryFailure(err, "failed to load pokemon", zap.Int("page", page.Number))
	}
	if err := interrupted(ctx); err != nil {
		return nil, err
	}

	return &ListPokemonOutput{
		Summaries: summaries,
		Page:      page,
	}, nil
}

// loadSummaries fetches every entry concurrently. Results keep input order.
func (o *orchestrator) loadSummaries(ctx context.Context, refs []pokeapi.NamedResource, lang string) ([]entities.Summary, error) {
	summaries := make([]entities.Summary, len(refs))

	p := pool.New().
		WithMaxGoroutines(o.maxConcurrency).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for i, ref := range refs {
		p.Go(func(ctx context.Context) error {
			pokemon, err := o.client.GetPokemonByURL(ctx, ref.URL)
			if err != nil {
				return errors.Wrapf(err, "failed to load %s", ref.Name)
			}
			summaries[i] = o.summarize(ctx, pokemon, lang)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// summarize resolves the species name and type names concurrently
func (o *orchestrator) summarize(ctx context.Context, pokemon *pokeapi.Pokemon, lang string) entities.Summary {
	typeKeys := make([]string, len(pokemon.Types))
	typeURLs := make([]string, len(pokemon.Types))
	for i, t := range pokemon.Types {
		typeKeys[i] = t.Type.Name
		typeURLs[i] = t.Type.URL
	}

	var (
		wg    conc.WaitGroup
		name  string
		types []string
	)
	wg.Go(func() {
		name = o.translator.Resolve(ctx, &translation.ResolveInput{
			URL:      pokemon.Species.URL,
			Language: lang,
		}).Name
	})
	wg.Go(func() {
		types = o.translator.ResolveAll(ctx, &translation.ResolveAllInput{
			URLs:     typeURLs,
			Language: lang,
		}).Names
	})
	wg.Wait()

	if name == "" {
		name = pokemon.Name
	}

	return entities.Summary{
		ID:       pokemon.ID,
		Name:     name,
		Image:    pokemon.ArtworkURL(),
		Types:    types,
		TypeKeys: typeKeys,
	}
}

func (o *orchestrator) ListTypes(ctx context.Context, input *ListTypesInput) (*ListTypesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	lang, err := o.resolveLanguage(input.Language)
	if err != nil {
		return nil, err
	}

	list, err := o.client.ListTypes(ctx)
	if err != nil {
		return nil, o.primaryFailure(err, "failed to list types")
	}

	urls := make([]string, len(list.Results))
	for i, ref := range list.Results {
		urls[i] = ref.URL
	}
	names := o.translator.ResolveAll(ctx, &translation.ResolveAllInput{URLs: urls, Language: lang}).Names

	options := make([]entities.TypeOption, 0, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		options = append(options, entities.TypeOption{Key: list.Results[i].Name, Name: name})
	}
	if err := interrupted(ctx); err != nil {
		return nil, err
	}

	return &ListTypesOutput{Options: options}, nil
}

func (o *orchestrator) BrowsePokemon(ctx context.Context, input *BrowsePokemonInput) (*BrowsePokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	lang, err := o.resolveLanguage(input.Language)
	if err != nil {
		return nil, err
	}

	var (
		list  *ListPokemonOutput
		types *ListTypesOutput
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		list, err = o.ListPokemon(ctx, &ListPokemonInput{Page: input.Page, Language: lang})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		types, err = o.ListTypes(ctx, &ListTypesInput{Language: lang})
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	filter := entities.TypeFilter{Selected: strings.TrimSpace(input.Type), Options: types.Options}.Normalize()
	search := strings.TrimSpace(input.Search)

	return &BrowsePokemonOutput{
		Summaries: entities.FilterSummaries(list.Summaries, search, filter.Selected),
		Loaded:    len(list.Summaries),
		Page:      list.Page,
		Filter:    filter,
		Search:    search,
		Language:  lang,
	}, nil
}

func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	id := strings.ToLower(input.ID)
	if !idPattern.MatchString(id) {
		return nil, errors.InvalidArgumentf("invalid pokemon identifier %q", input.ID)
	}
	lang, err := o.resolveLanguage(input.Language)
	if err != nil {
		return nil, err
	}

	pokemon, err := o.client.GetPokemon(ctx, id)
	if err != nil {
		return nil, o.primaryFailure(err, "failed to get pokemon", zap.String("id", id))
	}

	var (
		species    *pokeapi.Species
		types      []string
		abilities  []string
		statLabels []string
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		species, err = o.client.GetSpeciesByURL(ctx, pokemon.Species.URL)
		return err
	})
	p.Go(func(ctx context.Context) error {
		types = o.resolveRefs(ctx, lang, len(pokemon.Types), func(i int) string { return pokemon.Types[i].Type.URL })
		return nil
	})
	p.Go(func(ctx context.Context) error {
		abilities = o.resolveRefs(ctx, lang, len(pokemon.Abilities), func(i int) string { return pokemon.Abilities[i].Ability.URL })
		return nil
	})
	p.Go(func(ctx context.Context) error {
		statLabels = o.resolveRefs(ctx, lang, len(pokemon.Stats), func(i int) string { return pokemon.Stats[i].Stat.URL })
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, o.primaryFailure(err, "failed to get pokemon species", zap.String("id", id))
	}
	if err := interrupted(ctx); err != nil {
		return nil, err
	}

	summary := entities.Summary{
		ID:       pokemon.ID,
		Name:     speciesName(species, lang),
		Image:    pokemon.ArtworkURL(),
		Types:    types,
		TypeKeys: make([]string, len(pokemon.Types)),
	}
	if summary.Name == "" {
		summary.Name = pokemon.Name
	}
	for i, t := range pokemon.Types {
		summary.TypeKeys[i] = t.Type.Name
	}

	for i, a := range pokemon.Abilities {
		if abilities[i] == "" {
			abilities[i] = a.Ability.Name
		}
	}

	stats := make([]entities.Stat, len(pokemon.Stats))
	for i, st := range pokemon.Stats {
		label := statLabels[i]
		if label == "" {
			label = st.Stat.Name
		}
		stats[i] = entities.Stat{Key: st.Stat.Name, Label: label, Value: st.BaseStat}
	}

	description := flavorText(species, lang)
	if description == "" {
		description = o.placeholder
	}

	return &GetPokemonOutput{
		Pokemon: &entities.Detail{
			Summary:     summary,
			Abilities:   abilities,
			Stats:       stats,
			Height:      pokemon.Height,
			Weight:      pokemon.Weight,
			HeightCM:    entities.HeightCentimeters(pokemon.Height),
			WeightKG:    entities.WeightKilograms(pokemon.Weight),
			Description: description,
		},
		Language: lang,
	}, nil
}

func (o *orchestrator) resolveRefs(ctx context.Context, lang string, n int, urlAt func(int) string) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = urlAt(i)
	}
	return o.translator.ResolveAll(ctx, &translation.ResolveAllInput{URLs: urls, Language: lang}).Names
}

// resolveLanguage canonicalizes a request language, falling back to the default
func (o *orchestrator) resolveLanguage(lang string) (string, error) {
	if lang == "" {
		return o.language, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", errors.InvalidArgumentf("unsupported language %q", lang)
	}
	return tag.String(), nil
}

// primaryFailure logs and wraps a failed upstream fetch. Cancellation is
// expected when a client navigates away and is not logged as an error.
func (o *orchestrator) primaryFailure(err error, msg string, fields ...zap.Field) error {
	if errors.IsCanceled(err) {
		o.logger.Debug(msg, append(fields, zap.Error(err))...)
	} else {
		o.logger.Error(msg, append(fields, zap.Error(err))...)
	}
	return errors.Wrap(err, msg)
}

// interrupted reports a cancelled or expired request context. Results
// assembled after that point are stale and must not be returned.
func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext(err, "request abandoned")
	}
	return nil
}

func speciesName(species *pokeapi.Species, lang string) string {
	for _, n := range species.Names {
		if n.Language.Name == lang {
			return n.Name
		}
	}
	return ""
}

// flavorText returns the first entry in lang with its line and page breaks
// collapsed to single spaces
func flavorText(species *pokeapi.Species, lang string) string {
	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name == lang {
			return strings.Join(strings.Fields(entry.FlavorText), " ")
		}
	}
	return ""
}
