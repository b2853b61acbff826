package views

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pokeio/internal/application"
	"pokeio/internal/domain"
	"pokeio/internal/ports"
)

const testBase = "https://api.test/api/v2/"

type cannedTransport struct {
	mu     sync.Mutex
	bodies map[string]string
}

func (c *cannedTransport) Get(_ context.Context, url string) (ports.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if body, ok := c.bodies[url]; ok {
		return ports.Response{Status: 200, Body: []byte(body)}, nil
	}
	return ports.Response{Status: 404}, nil
}

type memStore struct {
	values map[string]string
}

func (m *memStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func newServices() *application.Services {
	endpoints := application.NewEndpoints(testBase)
	tr := &cannedTransport{bodies: map[string]string{
		endpoints.PokemonList(application.DefaultRosterCeiling): `{"count":4,"results":[
			{"name":"bulbasaur","url":"` + testBase + `pokemon/1/"},
			{"name":"charmander","url":"` + testBase + `pokemon/4/"},
			{"name":"charmeleon","url":"` + testBase + `pokemon/5/"},
			{"name":"chikorita","url":"` + testBase + `pokemon/152/"}]}`,
		testBase + "pokemon/4/": `{"id":4,"name":"charmander","height":6,"weight":85,
			"species":{"name":"charmander","url":"` + testBase + `pokemon-species/4/"},
			"types":[{"slot":1,"type":{"name":"fire"}}],
			"stats":[{"base_stat":39,"stat":{"name":"hp"}},{"base_stat":60,"stat":{"name":"special-attack"}}],
			"sprites":{"front_default":"basic.png","front_shiny":"basic-shiny.png",
				"other":{"official-artwork":{"front_default":"art.png","front_shiny":"art-shiny.png"}}}}`,
		testBase + "pokemon-species/4/": `{"id":4,"name":"charmander",
			"evolution_chain":{"url":"` + testBase + `evolution-chain/2/"},
			"flavor_text_entries":[{"flavor_text":"A flame burns\fon its tail.","language":{"name":"en"}}]}`,
		testBase + "evolution-chain/2/": `{"id":2,"chain":{"species":{"name":"charmander"},
			"evolves_to":[{"species":{"name":"charmeleon"},"evolves_to":[{"species":{"name":"charizard"}}]}]}}`,
	}}
	return application.NewServices(tr, &memStore{values: map[string]string{}}, application.Options{BaseURL: testBase}, nil)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedRoster(t *testing.T) *RosterModel {
	t.Helper()
	m := NewRosterModel(newServices())
	m.loading = true
	m.Update(m.loadRoster())
	if !m.loaded {
		t.Fatalf("roster did not load: %s", m.Message)
	}
	return m
}

func visibleNames(m *RosterModel) string {
	var names []string
	for _, s := range m.Visible() {
		names = append(names, s.Name)
	}
	return strings.Join(names, ",")
}

func TestRosterModel_LoadAndFilter(t *testing.T) {
	m := loadedRoster(t)

	if got := visibleNames(m); got != "bulbasaur,charmander,charmeleon,chikorita" {
		t.Errorf("unexpected roster %s", got)
	}

	m.Update(runes("]"))
	if got := visibleNames(m); got != "bulbasaur,charmander,charmeleon" {
		t.Errorf("generation 1 should hide chikorita, got %s", got)
	}
	m.Update(runes("]"))
	if got := visibleNames(m); got != "chikorita" {
		t.Errorf("generation 2 should show chikorita only, got %s", got)
	}
	m.Update(runes("["))
	m.Update(runes("["))
	if m.Filter().Generation != 0 {
		t.Errorf("expected all generations again, got %d", m.Filter().Generation)
	}
	m.Update(runes("["))
	if m.Filter().Generation != len(domain.Generations) {
		t.Errorf("expected wrap to the last generation, got %d", m.Filter().Generation)
	}
}

func TestRosterModel_Search(t *testing.T) {
	m := loadedRoster(t)

	m.Update(runes("/"))
	for _, r := range "char" {
		m.Update(runes(string(r)))
	}
	if got := visibleNames(m); got != "charmander,charmeleon" {
		t.Errorf("expected char matches, got %s", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Error("enter should leave search mode")
	}
	if m.Filter().Query != "char" {
		t.Errorf("query should stay applied, got %q", m.Filter().Query)
	}

	m.Update(runes("/"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := visibleNames(m); got != "bulbasaur,charmander,charmeleon,chikorita" {
		t.Errorf("esc should clear the search, got %s", got)
	}
}

func TestRosterModel_FavoritesOnly(t *testing.T) {
	m := loadedRoster(t)

	m.Update(runes("j"))
	_, cmd := m.Update(runes("*"))
	if cmd == nil {
		t.Fatal("expected a toggle command")
	}
	toggled, ok := cmd().(FavoriteToggledMsg)
	if !ok || !toggled.Favorite || toggled.Err != nil {
		t.Fatalf("unexpected toggle result %+v", toggled)
	}
	m.Update(toggled)

	m.Update(runes("f"))
	if got := visibleNames(m); got != "charmander" {
		t.Errorf("expected only the favorite, got %s", got)
	}
	if !m.services.Favorites.Has(testBase + "pokemon/4/") {
		t.Error("expected charmander in the ledger")
	}
}

func TestRosterModel_EnterOpensDetail(t *testing.T) {
	m := loadedRoster(t)
	m.Update(runes("j"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a switch command")
	}
	msg, ok := cmd().(SwitchToDetailMsg)
	if !ok || msg.Stub.Name != "charmander" {
		t.Errorf("expected switch to charmander, got %+v", msg)
	}
}

func TestRosterModel_LoadFailure(t *testing.T) {
	m := NewRosterModel(application.NewServices(&cannedTransport{}, &memStore{values: map[string]string{}}, application.Options{BaseURL: testBase}, nil))
	m.loading = true
	m.Update(m.loadRoster())

	if !m.MessageErr || !strings.Contains(m.Message, "retry") {
		t.Errorf("expected retry hint, got %q", m.Message)
	}
}

type recordingOpener struct {
	opened []string
	err    error
}

func (r *recordingOpener) Open(url string) error {
	r.opened = append(r.opened, url)
	return r.err
}

func openDetail(t *testing.T, services *application.Services, stub domain.Stub) *DetailModel {
	t.Helper()
	m := NewDetailModel(services, &recordingOpener{})
	if cmd := m.Open(stub); cmd == nil {
		t.Fatal("expected a resolve command for an uncached entry")
	}
	m.Update(m.resolve(stub.Reference)())
	return m
}

func TestDetailModel_RendersResolvedEntry(t *testing.T) {
	stub := domain.Stub{ID: 4, Name: "charmander", Reference: testBase + "pokemon/4/"}
	m := openDetail(t, newServices(), stub)

	if m.loading || m.err != nil {
		t.Fatalf("expected loaded detail, got loading=%v err=%v", m.loading, m.err)
	}
	view := m.View()
	for _, want := range []string{"#004 Charmander", "A flame burns on its tail.", "special attack", "Charizard", "art.png"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if !strings.Contains(view, "Type data unavailable") {
		t.Error("the type list is unavailable, matchups should say so")
	}
}

func TestDetailModel_ShinyAndCopy(t *testing.T) {
	var copied string
	original := copyToClipboard
	t.Cleanup(func() { copyToClipboard = original })
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	stub := domain.Stub{ID: 4, Name: "charmander", Reference: testBase + "pokemon/4/"}
	m := openDetail(t, newServices(), stub)

	m.Update(runes("s"))
	if m.ArtURL() != "art-shiny.png" {
		t.Errorf("expected shiny art, got %s", m.ArtURL())
	}
	m.Update(runes("y"))
	if copied != "art-shiny.png" {
		t.Errorf("expected shiny URL copied, got %q", copied)
	}

	copyToClipboard = func(string) error { return errors.New("no display") }
	m.Update(runes("y"))
	if !m.MessageErr {
		t.Error("expected clipboard failure message")
	}
}

func TestDetailModel_OpenArtAndCry(t *testing.T) {
	stub := domain.Stub{ID: 4, Name: "charmander", Reference: testBase + "pokemon/4/"}
	m := openDetail(t, newServices(), stub)
	opener := &recordingOpener{}
	m.opener = opener

	_, cmd := m.Update(runes("o"))
	if cmd == nil {
		t.Fatal("expected an open command")
	}
	m.Update(cmd())
	if len(opener.opened) != 1 || opener.opened[0] != "art.png" {
		t.Errorf("expected the artwork to be opened, got %v", opener.opened)
	}
	if m.Message != "Opened artwork" {
		t.Errorf("unexpected message %q", m.Message)
	}

	// the fixture has no cries
	if _, cmd := m.Update(runes("p")); cmd != nil {
		t.Error("no cry means nothing to play")
	}

	opener.err = errors.New("xdg-open missing")
	_, cmd = m.Update(runes("o"))
	m.Update(cmd())
	if !m.MessageErr {
		t.Error("expected an error message when the opener fails")
	}

	m.opener = nil
	if _, cmd := m.Update(runes("o")); cmd != nil || !m.MessageErr {
		t.Error("without an opener the key should only report it is unavailable")
	}
}

func TestDetailModel_CachedEntryOpensImmediately(t *testing.T) {
	services := newServices()
	stub := domain.Stub{ID: 4, Name: "charmander", Reference: testBase + "pokemon/4/"}
	openDetail(t, services, stub)

	m := NewDetailModel(services, nil)
	if cmd := m.Open(stub); cmd != nil {
		t.Error("a cached entry should not trigger a resolve")
	}
	if m.detail == nil {
		t.Error("expected the cached detail")
	}
}

func TestDetailModel_IgnoresStaleResult(t *testing.T) {
	services := newServices()
	m := NewDetailModel(services, nil)
	m.Open(domain.Stub{ID: 1, Name: "bulbasaur", Reference: testBase + "pokemon/1/"})
	m.Open(domain.Stub{ID: 4, Name: "charmander", Reference: testBase + "pokemon/4/"})

	m.Update(detailLoadedMsg{reference: testBase + "pokemon/1/", err: errors.New("late")})
	if m.err != nil || !m.loading {
		t.Error("a result for a previous entry must not replace the current one")
	}
}

func TestDetailModel_FailureOffersRetry(t *testing.T) {
	stub := domain.Stub{ID: 1, Name: "bulbasaur", Reference: testBase + "pokemon/1/"}
	m := openDetail(t, newServices(), stub)

	if m.err == nil {
		t.Fatal("expected the missing primary record to fail")
	}
	if !strings.Contains(m.View(), "retry") {
		t.Error("expected retry hint in the error view")
	}
	if _, cmd := m.Update(runes("r")); cmd == nil {
		t.Error("retry should start a new resolve")
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"pikachu": "Pikachu",
		"mr-mime": "Mr-Mime",
		"ho-oh":   "Ho-Oh",
		"":        "",
	}
	for in, want := range tests {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
