// Package pokeapitest serves a small in-memory PokeAPI for tests.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
)

var knownNames = []string{
	"bulbasaur", "ivysaur", "venusaur",
	"charmander", "charmeleon", "charizard",
	"squirtle", "wartortle", "blastoise",
	"caterpie", "metapod", "butterfree",
	"weedle", "kakuna", "beedrill",
	"pidgey", "pidgeotto", "pidgeot",
	"rattata", "raticate",
}

// Server is a fake PokeAPI with failure injection.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	pokemon    []pokeapi.Pokemon
	listStatus int
	detailFail map[int]int
	malformed  map[int]bool
	delays     map[int]time.Duration

	listCalls   atomic.Int32
	detailCalls atomic.Int32
}

// New starts a server holding count generated Pokemon with ids 1..count.
// It is closed when the test finishes.
func New(t testing.TB, count int) *Server {
	t.Helper()

	s := &Server{
		pokemon:    Generate(count),
		detailFail: make(map[int]int),
		malformed:  make(map[int]bool),
		delays:     make(map[int]time.Duration),
	}

	r := chi.NewRouter()
	r.Get("/pokemon", s.handleList)
	r.Get("/pokemon/{id}", s.handleDetail)
	r.Get("/pokemon/{id}/", s.handleDetail)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Generate builds count Pokemon; the first twenty carry real names.
func Generate(count int) []pokeapi.Pokemon {
	out := make([]pokeapi.Pokemon, count)
	for i := range out {
		id := i + 1
		name := fmt.Sprintf("pokemon-%03d", id)
		if i < len(knownNames) {
			name = knownNames[i]
		}
		out[i] = pokeapi.Pokemon{
			ID:             id,
			Name:           name,
			Height:         id % 20,
			Weight:         id * 10,
			BaseExperience: 50 + id,
			Types: []pokeapi.TypeSlot{
				{Slot: 1, Type: pokeapi.NamedResource{Name: "normal"}},
			},
			Stats: []pokeapi.StatEntry{
				{BaseStat: 40 + id%50, Stat: pokeapi.NamedResource{Name: "hp"}},
				{BaseStat: 45 + id%40, Stat: pokeapi.NamedResource{Name: "attack"}},
				{BaseStat: 35 + id%30, Stat: pokeapi.NamedResource{Name: "defense"}},
				{BaseStat: 50 + id%20, Stat: pokeapi.NamedResource{Name: "speed"}},
			},
			Abilities: []pokeapi.AbilitySlot{
				{Slot: 1, Ability: pokeapi.NamedResource{Name: "run-away"}},
				{Slot: 3, IsHidden: true, Ability: pokeapi.NamedResource{Name: "guts"}},
			},
		}
	}
	return out
}

// FailList makes the list endpoint answer with status.
func (s *Server) FailList(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listStatus = status
}

// FailDetail makes the detail endpoint for id answer with status.
func (s *Server) FailDetail(id, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailFail[id] = status
}

// MalformDetail makes the detail endpoint for id return an undecodable body.
func (s *Server) MalformDetail(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.malformed[id] = true
}

// DelayDetail holds the detail response for id for d.
func (s *Server) DelayDetail(id int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[id] = d
}

// Reset clears all injected failures and delays.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listStatus = 0
	s.detailFail = make(map[int]int)
	s.malformed = make(map[int]bool)
	s.delays = make(map[int]time.Duration)
}

// ListCalls reports how many list requests were served.
func (s *Server) ListCalls() int { return int(s.listCalls.Load()) }

// DetailCalls reports how many detail requests were served.
func (s *Server) DetailCalls() int { return int(s.detailCalls.Load()) }

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.listCalls.Add(1)

	s.mu.Lock()
	status := s.listStatus
	total := len(s.pokemon)
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	limit := intParam(r, "limit", 20)
	offset := intParam(r, "offset", 0)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	results := make([]pokeapi.IndexEntry, 0, end-offset)
	for i := offset; i < end; i++ {
		s.mu.Lock()
		name := s.pokemon[i].Name
		s.mu.Unlock()
		results = append(results, pokeapi.IndexEntry{
			Name: name,
			URL:  fmt.Sprintf("%s/pokemon/%d/", s.URL, i+1),
		})
	}

	writeJSON(w, pokeapi.ListResponse{Count: total, Results: results})
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	s.detailCalls.Add(1)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	status := s.detailFail[id]
	malformed := s.malformed[id]
	delay := s.delays[id]
	var p pokeapi.Pokemon
	found := id >= 1 && id <= len(s.pokemon)
	if found {
		p = s.pokemon[id-1]
	}
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	switch {
	case status != 0:
		http.Error(w, http.StatusText(status), status)
	case !found:
		http.NotFound(w, r)
	case malformed:
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "not-a-number",`))
	default:
		writeJSON(w, p)
	}
}

func intParam(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
