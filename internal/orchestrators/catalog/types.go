package catalog

import "github.com/KirkDiggler/pokedex/internal/entities"

// ListPokemonInput selects one page of the catalog
type ListPokemonInput struct {
	// Page is 1-based and clamped into the valid range
	Page int

	// Language for names and types (optional, defaults to the configured language)
	Language string
}

// ListPokemonOutput is a page of summaries in upstream order
type ListPokemonOutput struct {
	Summaries []entities.Summary
	Page      entities.Page
}

// ListTypesInput requests the type menu
type ListTypesInput struct {
	Language string
}

// ListTypesOutput holds the translated type menu in upstream order
type ListTypesOutput struct {
	Options []entities.TypeOption
}

// BrowsePokemonInput is the full list view request
type BrowsePokemonInput struct {
	Page     int
	Search   string
	Type     string // option key or localized name
	Language string
}

// BrowsePokemonOutput is everything the list view renders
type BrowsePokemonOutput struct {
	// Summaries after the search and type filters
	Summaries []entities.Summary

	// Loaded is the size of the page before filtering
	Loaded int

	Page     entities.Page
	Filter   entities.TypeFilter
	Search   string
	Language string
}

// GetPokemonInput identifies one pokemon by numeric ID or name
type GetPokemonInput struct {
	ID       string
	Language string
}

// GetPokemonOutput carries the assembled detail record
type GetPokemonOutput struct {
	Pokemon  *entities.Detail
	Language string
}
