package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokeio/internal/application"
	"pokeio/internal/ports"
)

const base = "https://api.test/api/v2/"

type jsonTransport map[string]string

func (j jsonTransport) Get(_ context.Context, url string) (ports.Response, error) {
	if body, ok := j[url]; ok {
		return ports.Response{Status: 200, Body: []byte(body)}, nil
	}
	return ports.Response{Status: 404}, nil
}

type memStore map[string]string

func (m memStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func newServices() *application.Services {
	endpoints := application.NewEndpoints(base)
	tr := jsonTransport{
		endpoints.PokemonList(application.DefaultRosterCeiling): `{"count":3,"results":[
			{"name":"pikachu","url":"` + base + `pokemon/25/"},
			{"name":"raichu","url":"` + base + `pokemon/26/"},
			{"name":"chikorita","url":"` + base + `pokemon/152/"}]}`,
		base + "pokemon/25/": `{"id":25,"name":"pikachu","height":4,"weight":60,
			"species":{"name":"pikachu","url":"` + base + `pokemon-species/25/"},
			"types":[{"slot":1,"type":{"name":"electric"}}],
			"stats":[{"base_stat":90,"stat":{"name":"speed"}}]}`,
		base + "pokemon-species/25/": `{"id":25,"name":"pikachu",
			"evolution_chain":{"url":"` + base + `evolution-chain/10/"},
			"flavor_text_entries":[{"flavor_text":"It keeps its tail raised.","language":{"name":"en"}}]}`,
		base + "evolution-chain/10/": `{"id":10,"chain":{"species":{"name":"pichu"},
			"evolves_to":[{"species":{"name":"pikachu"},"evolves_to":[{"species":{"name":"raichu"}}]}]}}`,
		endpoints.TypeList(application.DefaultTypeLimit): `{"count":2,"results":[
			{"name":"electric","url":"` + base + `type/13/"},
			{"name":"flying","url":"` + base + `type/3/"}]}`,
		base + "type/13/": `{"id":13,"name":"electric","damage_relations":{
			"double_damage_from":[{"name":"ground"}],
			"half_damage_from":[{"name":"flying"},{"name":"steel"},{"name":"electric"}]}}`,
		base + "type/3/": `{"id":3,"name":"flying","damage_relations":{
			"double_damage_from":[{"name":"electric"},{"name":"ice"},{"name":"rock"}],
			"half_damage_from":[{"name":"grass"},{"name":"fighting"},{"name":"bug"}],
			"no_damage_from":[{"name":"ground"}]}}`,
	}
	return application.NewServices(tr, memStore{}, application.Options{BaseURL: base}, nil)
}

func call(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	require.NoError(t, err, "tool failures are reported in the result")
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text, result.IsError
}

func TestListHandler(t *testing.T) {
	services := newServices()

	out, isErr := call(t, listHandler(services), map[string]any{"generation": float64(1)})
	assert.False(t, isErr)
	assert.Equal(t, "#025  pikachu\n#026  raichu\n", out)

	out, _ = call(t, listHandler(services), map[string]any{"query": "chi"})
	assert.Equal(t, "#152  chikorita\n", out)

	out, _ = call(t, listHandler(services), map[string]any{"query": "zzz"})
	assert.Equal(t, "No results.", out)

	_, isErr = call(t, listHandler(services), map[string]any{"generation": float64(42)})
	assert.True(t, isErr)
}

func TestShowHandler(t *testing.T) {
	services := newServices()

	out, isErr := call(t, showHandler(services), map[string]any{"query": "#025"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "#025 pikachu\n")
	assert.Contains(t, out, "Types: electric")
	assert.Contains(t, out, "It keeps its tail raised.")
	assert.Contains(t, out, "Weak to:   ground\n", "types are preloaded before the first resolve")
	assert.NotContains(t, out, "Type data unavailable.")
	assert.Contains(t, out, "  pichu\n    pikachu\n      raichu\n")

	out, isErr = call(t, showHandler(services), map[string]any{"query": "pkchu"})
	assert.True(t, isErr)
	assert.Contains(t, out, "pikachu")

	_, isErr = call(t, showHandler(services), map[string]any{})
	assert.True(t, isErr)
}

func TestShowHandler_PreloadFailureDegradesMatchups(t *testing.T) {
	services := newServices()
	offline := application.NewServices(jsonTransport{}, memStore{}, application.Options{BaseURL: base}, nil)

	// roster and detail come from services, types from an offline preloader
	services.Types = offline.Types
	out, isErr := call(t, showHandler(services), map[string]any{"query": "25"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Type data unavailable.")
}

func TestToggleFavoriteAndFavoritesHandlers(t *testing.T) {
	services := newServices()

	out, _ := call(t, favoritesHandler(services), nil)
	assert.Equal(t, "No favorites yet.", out)

	out, isErr := call(t, toggleFavoriteHandler(services), map[string]any{"query": "raichu"})
	require.False(t, isErr, out)
	assert.Equal(t, "Added #026 raichu to favorites", out)

	out, _ = call(t, favoritesHandler(services), nil)
	assert.Equal(t, "#026  raichu\n", out)

	out, _ = call(t, listHandler(services), map[string]any{"query": "rai"})
	assert.Equal(t, "#026  raichu  ★\n", out)
}

func TestMatchupHandler(t *testing.T) {
	services := newServices()

	out, isErr := call(t, matchupHandler(services), map[string]any{"types": "electric, flying"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Defending as electric/flying:")
	assert.Contains(t, out, "Weak to:   ice, rock")
	assert.Contains(t, out, "Immune to: ground")

	out, isErr = call(t, matchupHandler(services), map[string]any{"types": "cosmic"})
	assert.True(t, isErr)
	assert.Contains(t, out, "unknown type")

	_, isErr = call(t, matchupHandler(services), map[string]any{"types": "electric flying water"})
	assert.True(t, isErr)
}

func TestSearchHandler(t *testing.T) {
	services := newServices()

	out, isErr := call(t, searchHandler(services), map[string]any{"query": "rai"})
	require.False(t, isErr)
	assert.Contains(t, out, "#026  raichu")

	_, isErr = call(t, searchHandler(services), map[string]any{})
	assert.True(t, isErr)
}

func TestGenerationsHandler(t *testing.T) {
	out, _ := call(t, generationsHandler(), nil)
	assert.Contains(t, out, "1  Generation 1 (#001-#151)\n")
	assert.Contains(t, out, "9  Generation 9")
}
