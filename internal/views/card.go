package views

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

// DefaultCardColor is used when the first type has no pastel colour
const DefaultCardColor = "bg-gray-300"

var pastelTypeColors = map[string]string{
	"electric": "bg-yellow-200",
	"grass":    "bg-green-200",
	"fire":     "bg-red-200",
	"water":    "bg-blue-200",
	"bug":      "bg-green-300",
	"normal":   "bg-gray-300",
	"poison":   "bg-purple-200",
	"fairy":    "bg-pink-200",
	"fighting": "bg-orange-200",
	"flying":   "bg-blue-300",
	"psychic":  "bg-pink-300",
	"rock":     "bg-gray-400",
	"ground":   "bg-amber-200",
	"steel":    "bg-gray-500",
	"ghost":    "bg-indigo-200",
	"ice":      "bg-blue-100",
	"dragon":   "bg-purple-300",
	"dark":     "bg-gray-600",
}

// Card is the view model of one list entry
type Card struct {
	ID         int
	Name       string
	Image      string
	Types      []string
	ColorClass string
	Href       string
}

// NewCard capitalizes the display strings of a summary and picks its
// background from the first type.
func NewCard(s entities.Summary, lang string) Card {
	title := cases.Title(language.Make(lang), cases.NoLower)

	types := make([]string, len(s.Types))
	for i, t := range s.Types {
		types[i] = title.String(t)
	}

	return Card{
		ID:         s.ID,
		Name:       title.String(s.Name),
		Image:      s.Image,
		Types:      types,
		ColorClass: TypeColor(s.TypeKeys),
		Href:       "/pokemon/" + strconv.Itoa(s.ID),
	}
}

// NewCards maps summaries to cards, keeping their order
func NewCards(summaries []entities.Summary, lang string) []Card {
	cards := make([]Card, len(summaries))
	for i, s := range summaries {
		cards[i] = NewCard(s, lang)
	}
	return cards
}

// TypeColor returns the pastel class of the first type key
func TypeColor(typeKeys []string) string {
	if len(typeKeys) == 0 {
		return DefaultCardColor
	}
	if color, ok := pastelTypeColors[typeKeys[0]]; ok {
		return color
	}
	return DefaultCardColor
}
