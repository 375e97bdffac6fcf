package testutils

import "fmt"

// Seeded fixture facts that tests assert against
const (
	// SeededPokemonCount is how many pokemon SeedCatalog adds
	SeededPokemonCount = 25

	// PikachuID has a French flavor text; BulbasaurID has none
	PikachuID   = 25
	BulbasaurID = 1

	// PikachuFlavorFR is stored with the line breaks the API really returns
	PikachuFlavorFR = "Il lui arrive de remettre\nen forme un PIKACHU\fblessé."
)

type seedRow struct {
	key   string
	fr    string
	en    string
	types []string
}

var seedRows = []seedRow{
	{"bulbasaur", "Bulbizarre", "Bulbasaur", []string{"grass", "poison"}},
	{"ivysaur", "Herbizarre", "Ivysaur", []string{"grass", "poison"}},
	{"venusaur", "Florizarre", "Venusaur", []string{"grass", "poison"}},
	{"charmander", "Salamèche", "Charmander", []string{"fire"}},
	{"charmeleon", "Reptincel", "Charmeleon", []string{"fire"}},
	{"charizard", "Dracaufeu", "Charizard", []string{"fire", "flying"}},
	{"squirtle", "Carapuce", "Squirtle", []string{"water"}},
	{"wartortle", "Carabaffe", "Wartortle", []string{"water"}},
	{"blastoise", "Tortank", "Blastoise", []string{"water"}},
	{"caterpie", "Chenipan", "Caterpie", []string{"bug"}},
	{"metapod", "Chrysacier", "Metapod", []string{"bug"}},
	{"butterfree", "Papilusion", "Butterfree", []string{"bug", "flying"}},
	{"weedle", "Aspicot", "Weedle", []string{"bug", "poison"}},
	{"kakuna", "Coconfort", "Kakuna", []string{"bug", "poison"}},
	{"beedrill", "Dardargnan", "Beedrill", []string{"bug", "poison"}},
	{"pidgey", "Roucool", "Pidgey", []string{"normal", "flying"}},
	{"pidgeotto", "Roucoups", "Pidgeotto", []string{"normal", "flying"}},
	{"pidgeot", "Roucarnage", "Pidgeot", []string{"normal", "flying"}},
	{"rattata", "Rattata", "Rattata", []string{"normal"}},
	{"raticate", "Rattatac", "Raticate", []string{"normal"}},
	{"spearow", "Piafabec", "Spearow", []string{"normal", "flying"}},
	{"fearow", "Rapasdepic", "Fearow", []string{"normal", "flying"}},
	{"ekans", "Abo", "Ekans", []string{"poison"}},
	{"arbok", "Arbok", "Arbok", []string{"poison"}},
	{"pikachu", "Pikachu", "Pikachu", []string{"electric"}},
}

// SeededTypes maps type keys to their French names. "stellar" has no French
// name, like several real PokeAPI types.
var SeededTypes = map[string]string{
	"normal":   "Normal",
	"fire":     "Feu",
	"water":    "Eau",
	"grass":    "Plante",
	"electric": "Électrik",
	"bug":      "Insecte",
	"poison":   "Poison",
	"flying":   "Vol",
	"stellar":  "",
}

// SeedCatalog fills f with pokemon 1..25 plus their types, abilities and species.
// Pikachu carries the French flavor text; Bulbasaur only has an English one.
func SeedCatalog(f *FakePokeAPI) {
	for _, key := range []string{"normal", "fire", "water", "grass", "electric", "bug", "poison", "flying", "stellar"} {
		names := map[string]string{"en": key}
		if fr := SeededTypes[key]; fr != "" {
			names["fr"] = fr
		}
		f.AddType(key, names)
	}

	f.AddAbility("static", map[string]string{"fr": "Statik", "en": "Static"})
	f.AddAbility("lightning-rod", map[string]string{"fr": "Paratonnerre", "en": "Lightning Rod"})
	f.AddAbility("overgrow", map[string]string{"fr": "Engrais", "en": "Overgrow"})
	f.AddAbility("chlorophyll", map[string]string{"fr": "Chlorophylle", "en": "Chlorophyll"})

	for i, row := range seedRows {
		id := i + 1
		p := FakePokemon{
			ID:        id,
			Key:       row.key,
			Names:     map[string]string{"fr": row.fr, "en": row.en},
			Types:     row.types,
			Abilities: []string{"overgrow", "chlorophyll"},
			Height:    id,
			Weight:    id * 10,
			Stats:     [6]int{45, 49, 49, 65, 65, 45},
			Flavor: []FakeFlavorText{
				{Language: "en", Text: fmt.Sprintf("%s english entry.", row.en)},
			},
		}

		if id == PikachuID {
			p.Abilities = []string{"static", "lightning-rod"}
			p.Height = 4
			p.Weight = 60
			p.Stats = [6]int{35, 55, 40, 50, 50, 90}
			p.Flavor = []FakeFlavorText{
				{Language: "ja", Text: "ピカチュウ"},
				{Language: "fr", Text: PikachuFlavorFR},
				{Language: "fr", Text: "Une seconde entrée ignorée."},
				{Language: "en", Text: "When several of these POKéMON gather."},
			}
		}

		f.AddPokemon(p)
	}
}
