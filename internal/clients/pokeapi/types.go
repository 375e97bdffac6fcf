package pokeapi

// NamedResource is PokeAPI's {name, url} reference to another resource
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ResourceList is a page of a collection endpoint
type ResourceList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// Pokemon is the subset of /pokemon/{id}/ the catalog reads
type Pokemon struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Height    int              `json:"height"` // decimetres
	Weight    int              `json:"weight"` // hectograms
	Sprites   Sprites          `json:"sprites"`
	Types     []PokemonType    `json:"types"`
	Abilities []PokemonAbility `json:"abilities"`
	Stats     []PokemonStat    `json:"stats"`
	Species   NamedResource    `json:"species"`
}

// ArtworkURL returns the official artwork, falling back to the default sprite
func (p *Pokemon) ArtworkURL() string {
	if art := p.Sprites.Other.OfficialArtwork.FrontDefault; art != "" {
		return art
	}
	return p.Sprites.FrontDefault
}

// Sprites holds image URLs for a pokemon
type Sprites struct {
	FrontDefault string       `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds the non-game sprite sets
type OtherSprites struct {
	OfficialArtwork Artwork `json:"official-artwork"`
}

// Artwork is a single sprite set
type Artwork struct {
	FrontDefault string `json:"front_default"`
}

// PokemonType references one of a pokemon's types
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonAbility references one of a pokemon's abilities
type PokemonAbility struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// PokemonStat is a base stat value
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// Species is the subset of /pokemon-species/{id}/ the catalog reads
type Species struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	Names             []Name       `json:"names"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

// Name is one localized name variant
type Name struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// FlavorText is one localized description, per game version
type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// LocalizedName is the result of a names lookup
type LocalizedName struct {
	Name  string
	Found bool
}

// ListPokemonInput selects a window of the pokemon collection
type ListPokemonInput struct {
	Limit  int
	Offset int
}
