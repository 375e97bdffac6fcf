package views

// Labels holds the UI strings of one language
type Labels struct {
	SiteTitle    string
	Tagline      string
	Explore      string
	Search       string
	SearchButton string
	FilterByType string
	AllTypes     string
	Previous     string
	Next         string
	PageOf       string // printf format taking page number and total
	NoResults    string
	Back         string
	Types        string
	Measures     string
	Height       string
	Weight       string
	Stats        string
	Abilities    string
	Description  string
	ErrorTitle   string
	ThemeLight   string
	ThemeDark    string
}

var labels = map[string]Labels{
	"fr": {
		SiteTitle:    "Pokédex",
		Tagline:      "Tous les Pokémon, leurs types et leurs statistiques.",
		Explore:      "Voir les Pokémon",
		Search:       "Cherchez un Pokémon...",
		SearchButton: "Rechercher",
		FilterByType: "Filtrer par Type",
		AllTypes:     "Tous les types",
		Previous:     "Précédent",
		Next:         "Suivant",
		PageOf:       "Page %d sur %d",
		NoResults:    "Aucun Pokémon ne correspond à cette recherche sur cette page.",
		Back:         "Retour",
		Types:        "Types",
		Measures:     "Mesures",
		Height:       "Taille",
		Weight:       "Poids",
		Stats:        "Statistiques",
		Abilities:    "Capacités",
		Description:  "Description",
		ErrorTitle:   "Une erreur est survenue",
		ThemeLight:   "Mode clair",
		ThemeDark:    "Mode sombre",
	},
	"en": {
		SiteTitle:    "Pokédex",
		Tagline:      "Every Pokémon, with its types and stats.",
		Explore:      "Browse Pokémon",
		Search:       "Search for a Pokémon...",
		SearchButton: "Search",
		FilterByType: "Filter by Type",
		AllTypes:     "All types",
		Previous:     "Previous",
		Next:         "Next",
		PageOf:       "Page %d of %d",
		NoResults:    "No Pokémon on this page matches the search.",
		Back:         "Back",
		Types:        "Types",
		Measures:     "Measurements",
		Height:       "Height",
		Weight:       "Weight",
		Stats:        "Stats",
		Abilities:    "Abilities",
		Description:  "Description",
		ErrorTitle:   "Something went wrong",
		ThemeLight:   "Light mode",
		ThemeDark:    "Dark mode",
	},
}

// LabelsFor returns the UI strings for lang. Languages without a UI
// translation get the English strings; data stays in the requested language.
func LabelsFor(lang string) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels["en"]
}
