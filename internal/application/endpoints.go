package application

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the public API root
const DefaultBaseURL = "https://pokeapi.co/api/v2/"

// Endpoints builds the URLs that are not discovered through links.
// Species, evolution chains and abilities are always followed from the
// references the API returns.
type Endpoints struct {
	BaseURL string
}

// NewEndpoints normalizes base so it always ends with a slash
func NewEndpoints(base string) Endpoints {
	if base == "" {
		base = DefaultBaseURL
	}
	return Endpoints{BaseURL: strings.TrimRight(base, "/") + "/"}
}

// PokemonList is the bulk roster request
func (e Endpoints) PokemonList(limit int) string {
	return fmt.Sprintf("%spokemon?limit=%d&offset=0", e.BaseURL, limit)
}

// Pokemon is the primary record for one id
func (e Endpoints) Pokemon(id int) string {
	return fmt.Sprintf("%spokemon/%d/", e.BaseURL, id)
}

// TypeList is the bulk elemental type request
func (e Endpoints) TypeList(limit int) string {
	return fmt.Sprintf("%stype?limit=%d&offset=0", e.BaseURL, limit)
}
