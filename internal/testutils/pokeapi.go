package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// statKeys lists PokeAPI's six base stats in response order
var statKeys = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

var statNames = map[string]map[string]string{
	"hp":              {"fr": "PV", "en": "HP"},
	"attack":          {"fr": "Attaque", "en": "Attack"},
	"defense":         {"fr": "Défense", "en": "Defense"},
	"special-attack":  {"fr": "Attaque Spéciale", "en": "Special Attack"},
	"special-defense": {"fr": "Défense Spéciale", "en": "Special Defense"},
	"speed":           {"fr": "Vitesse", "en": "Speed"},
}

// FakePokemon seeds one entity (and its species) in a FakePokeAPI
type FakePokemon struct {
	ID        int
	Key       string            // API name, e.g. "pikachu"
	Names     map[string]string // species names by language
	Types     []string          // type keys, e.g. "electric"
	Abilities []string          // ability keys
	Height    int
	Weight    int
	Stats     [6]int // hp, attack, defense, special-attack, special-defense, speed
	Flavor    []FakeFlavorText
}

// FakeFlavorText is one species flavor text entry
type FakeFlavorText struct {
	Language string
	Text     string
}

// FakePokeAPI is an in-process stand-in for the PokeAPI endpoints the catalog uses.
// Resource URLs it returns point back at itself.
type FakePokeAPI struct {
	Server *httptest.Server

	mu        sync.Mutex
	pokemon   map[int]FakePokemon
	types     []string
	typeNames map[string]map[string]string
	abilities map[string]map[string]string
	failures  map[string]int
	hits      map[string]int
}

// NewFakePokeAPI starts a fake PokeAPI closed automatically at test cleanup
func NewFakePokeAPI(t *testing.T) *FakePokeAPI {
	t.Helper()

	f := &FakePokeAPI{
		pokemon:   make(map[int]FakePokemon),
		typeNames: make(map[string]map[string]string),
		abilities: make(map[string]map[string]string),
		failures:  make(map[string]int),
		hits:      make(map[string]int),
	}

	r := mux.NewRouter()
	r.Use(f.countAndFail)
	api := r.PathPrefix("/api/v2").Subrouter()
	api.HandleFunc("/pokemon/", f.handleListPokemon).Methods(http.MethodGet)
	api.HandleFunc("/pokemon/{id}/", f.handleGetPokemon).Methods(http.MethodGet)
	api.HandleFunc("/pokemon-species/{id}/", f.handleGetSpecies).Methods(http.MethodGet)
	api.HandleFunc("/type/", f.handleListTypes).Methods(http.MethodGet)
	api.HandleFunc("/type/{key}/", f.handleNamed(f.typeNames)).Methods(http.MethodGet)
	api.HandleFunc("/ability/{key}/", f.handleNamed(f.abilities)).Methods(http.MethodGet)
	api.HandleFunc("/stat/{key}/", f.handleNamed(statNames)).Methods(http.MethodGet)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

// BaseURL is the API root to hand to the client under test
func (f *FakePokeAPI) BaseURL() string {
	return f.Server.URL + "/api/v2/"
}

// URL returns the absolute URL of an API path such as "type/fire/"
func (f *FakePokeAPI) URL(path string) string {
	return f.BaseURL() + path
}

// AddType seeds a type and its localized names
func (f *FakePokeAPI) AddType(key string, names map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.typeNames[key]; !ok {
		f.types = append(f.types, key)
	}
	f.typeNames[key] = names
}

// AddAbility seeds an ability and its localized names
func (f *FakePokeAPI) AddAbility(key string, names map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abilities[key] = names
}

// AddPokemon seeds a pokemon and its species
func (f *FakePokeAPI) AddPokemon(p FakePokemon) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pokemon[p.ID] = p
}

// FailPath makes every request to path (e.g. "/api/v2/type/fire/") answer status
func (f *FakePokeAPI) FailPath(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = status
}

// Hits reports how many requests reached path
func (f *FakePokeAPI) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

// TotalHits reports how many requests the fake has served
func (f *FakePokeAPI) TotalHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.hits {
		total += n
	}
	return total
}

func (f *FakePokeAPI) countAndFail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.URL.Path]++
		status, fail := f.failures[r.URL.Path]
		f.mu.Unlock()

		if fail {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakePokeAPI) handleListPokemon(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	f.mu.Lock()
	ids := make([]int, 0, len(f.pokemon))
	for id := range f.pokemon {
		ids = append(ids, id)
	}
	f.mu.Unlock()
	sort.Ints(ids)

	results := make([]map[string]string, 0, limit)
	for i := offset; i < len(ids) && i < offset+limit; i++ {
		p := f.lookup(strconv.Itoa(ids[i]))
		results = append(results, map[string]string{
			"name": p.Key,
			"url":  f.URL(fmt.Sprintf("pokemon/%d/", p.ID)),
		})
	}

	writeJSON(w, map[string]any{"count": len(ids), "results": results})
}

func (f *FakePokeAPI) handleGetPokemon(w http.ResponseWriter, r *http.Request) {
	p, ok := f.find(mux.Vars(r)["id"])
	if !ok {
		http.NotFound(w, r)
		return
	}

	types := make([]map[string]any, 0, len(p.Types))
	for i, key := range p.Types {
		types = append(types, map[string]any{
			"slot": i + 1,
			"type": map[string]string{"name": key, "url": f.URL("type/" + key + "/")},
		})
	}
	abilities := make([]map[string]any, 0, len(p.Abilities))
	for i, key := range p.Abilities {
		abilities = append(abilities, map[string]any{
			"slot":      i + 1,
			"is_hidden": false,
			"ability":   map[string]string{"name": key, "url": f.URL("ability/" + key + "/")},
		})
	}
	stats := make([]map[string]any, 0, len(statKeys))
	for i, key := range statKeys {
		stats = append(stats, map[string]any{
			"base_stat": p.Stats[i],
			"stat":      map[string]string{"name": key, "url": f.URL("stat/" + key + "/")},
		})
	}

	writeJSON(w, map[string]any{
		"id":     p.ID,
		"name":   p.Key,
		"height": p.Height,
		"weight": p.Weight,
		"sprites": map[string]any{
			"front_default": fmt.Sprintf("https://img.example/sprites/%d.png", p.ID),
			"other": map[string]any{
				"official-artwork": map[string]string{
					"front_default": ArtworkURL(p.ID),
				},
			},
		},
		"types":     types,
		"abilities": abilities,
		"stats":     stats,
		"species": map[string]string{
			"name": p.Key,
			"url":  f.URL(fmt.Sprintf("pokemon-species/%d/", p.ID)),
		},
	})
}

func (f *FakePokeAPI) handleGetSpecies(w http.ResponseWriter, r *http.Request) {
	p, ok := f.find(mux.Vars(r)["id"])
	if !ok {
		http.NotFound(w, r)
		return
	}

	flavor := make([]map[string]any, 0, len(p.Flavor))
	for _, entry := range p.Flavor {
		flavor = append(flavor, map[string]any{
			"flavor_text": entry.Text,
			"language":    languageRef(entry.Language),
			"version":     map[string]string{"name": "red", "url": f.URL("version/1/")},
		})
	}

	writeJSON(w, map[string]any{
		"id":                  p.ID,
		"name":                p.Key,
		"names":               namesPayload(p.Names),
		"flavor_text_entries": flavor,
	})
}

func (f *FakePokeAPI) handleListTypes(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	keys := append([]string(nil), f.types...)
	f.mu.Unlock()

	results := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		results = append(results, map[string]string{"name": key, "url": f.URL("type/" + key + "/")})
	}
	writeJSON(w, map[string]any{"count": len(keys), "results": results})
}

func (f *FakePokeAPI) handleNamed(table map[string]map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]

		f.mu.Lock()
		names, ok := table[key]
		f.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, map[string]any{"name": key, "names": namesPayload(names)})
	}
}

// find resolves an ID or API name
func (f *FakePokeAPI) find(idOrName string) (FakePokemon, bool) {
	p := f.lookup(idOrName)
	return p, p.ID != 0
}

func (f *FakePokeAPI) lookup(idOrName string) FakePokemon {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id, err := strconv.Atoi(idOrName); err == nil {
		return f.pokemon[id]
	}
	for _, p := range f.pokemon {
		if p.Key == idOrName {
			return p
		}
	}
	return FakePokemon{}
}

// ArtworkURL is the official artwork URL the fake serves for a pokemon ID
func ArtworkURL(id int) string {
	return fmt.Sprintf("https://img.example/artwork/%d.png", id)
}

func namesPayload(names map[string]string) []map[string]any {
	langs := make([]string, 0, len(names))
	for lang := range names {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	out := make([]map[string]any, 0, len(langs))
	for _, lang := range langs {
		out = append(out, map[string]any{"name": names[lang], "language": languageRef(lang)})
	}
	return out
}

func languageRef(lang string) map[string]string {
	return map[string]string{"name": lang, "url": "https://pokeapi.co/api/v2/language/" + lang + "/"}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v) // nolint:errcheck // test server
}
