package views

import "github.com/KirkDiggler/pokedex/internal/entities"

// Common is shared by every page
type Common struct {
	Title     string
	Lang      string
	Theme     Theme
	Labels    Labels
	ThemeHref string // toggles the theme and comes back to this page
}

// ThemeLabel names the theme the toggle switches to
func (c Common) ThemeLabel() string {
	if c.Theme.Toggle() == ThemeDark {
		return c.Labels.ThemeDark
	}
	return c.Labels.ThemeLight
}

// LandingPage is the home page
type LandingPage struct {
	Common
	ListHref string
}

// ListPage is one page of cards with search, type filter and pagination
type ListPage struct {
	Common
	Cards  []Card
	Page   entities.Page
	Search string
	Filter entities.TypeFilter

	// SelectedKey is the option key of Filter.Selected, empty for no filter
	SelectedKey string

	PreviousHref string
	NextHref     string
}

// DetailPage shows one pokemon
type DetailPage struct {
	Common
	Pokemon    *entities.Detail
	Name       string
	Types      []string
	ColorClass string
	BackHref   string
}

// NewDetailPage capitalizes the display strings of a detail record
func NewDetailPage(common Common, detail *entities.Detail, backHref string) DetailPage {
	card := NewCard(detail.Summary, common.Lang)
	return DetailPage{
		Common:     common,
		Pokemon:    detail,
		Name:       card.Name,
		Types:      card.Types,
		ColorClass: card.ColorClass,
		BackHref:   backHref,
	}
}

// ErrorPage reports a failed request
type ErrorPage struct {
	Common
	Status  int
	Message string
}
