package v1alpha1

import "github.com/KirkDiggler/pokedex/internal/entities"

// PokemonSummary is one list entry
type PokemonSummary struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Types    []string `json:"types"`
	TypeKeys []string `json:"type_keys"`
}

// Stat is one base stat
type Stat struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PokemonDetail is the full record
type PokemonDetail struct {
	PokemonSummary
	Abilities   []string `json:"abilities"`
	Stats       []Stat   `json:"stats"`
	HeightCM    int      `json:"height_cm"`
	WeightKG    float64  `json:"weight_kg"`
	Description string   `json:"description"`
}

// Page describes the pagination state of a list response
type Page struct {
	Number      int  `json:"number"`
	Size        int  `json:"size"`
	TotalPages  int  `json:"total_pages"`
	Count       int  `json:"count"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// TypeOption is one type menu entry
type TypeOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ListPokemonResponse is the body of GET /pokemon
type ListPokemonResponse struct {
	Pokemon  []PokemonSummary `json:"pokemon"`
	Loaded   int              `json:"loaded"`
	Page     Page             `json:"page"`
	Search   string           `json:"search,omitempty"`
	Type     string           `json:"type,omitempty"`
	Language string           `json:"language"`
}

// GetPokemonResponse is the body of GET /pokemon/{id}
type GetPokemonResponse struct {
	Pokemon  PokemonDetail `json:"pokemon"`
	Language string        `json:"language"`
}

// ListTypesResponse is the body of GET /types
type ListTypesResponse struct {
	Types []TypeOption `json:"types"`
}

// ErrorBody is the payload of every failed request
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorBody
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func toSummary(s entities.Summary) PokemonSummary {
	return PokemonSummary{
		ID:       s.ID,
		Name:     s.Name,
		Image:    s.Image,
		Types:    nonNil(s.Types),
		TypeKeys: nonNil(s.TypeKeys),
	}
}

func toDetail(d *entities.Detail) PokemonDetail {
	stats := make([]Stat, len(d.Stats))
	for i, st := range d.Stats {
		stats[i] = Stat{Key: st.Key, Label: st.Label, Value: st.Value}
	}

	return PokemonDetail{
		PokemonSummary: toSummary(d.Summary),
		Abilities:      nonNil(d.Abilities),
		Stats:          stats,
		HeightCM:       d.HeightCM,
		WeightKG:       d.WeightKG,
		Description:    d.Description,
	}
}

func toPage(p entities.Page) Page {
	return Page{
		Number:      p.Number,
		Size:        p.Size,
		TotalPages:  p.Total,
		Count:       p.Count,
		HasPrevious: p.HasPrevious(),
		HasNext:     p.HasNext(),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
