package ports

// NamedResource is the {name, url} link the API uses everywhere
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ResourceList is the response of a bulk list endpoint
// (e.g., /pokemon?limit=1025&offset=0)
type ResourceList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// PokemonRecord is the response of /pokemon/{id}
type PokemonRecord struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Species   NamedResource `json:"species"`
	Abilities []AbilitySlot `json:"abilities"`
	Types     []TypeSlot    `json:"types"`
	Stats     []StatEntry   `json:"stats"`
	Sprites   SpriteSet     `json:"sprites"`
	Cries     CrySet        `json:"cries"`
}

// AbilitySlot links an ability to a pokemon
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// TypeSlot links a type to a pokemon
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatEntry is one base stat
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// SpriteSet holds the sprite URLs. Every field may be null in the API, which
// decodes to an empty string.
type SpriteSet struct {
	FrontDefault string         `json:"front_default"`
	FrontShiny   string         `json:"front_shiny"`
	Other        SpriteOther    `json:"other"`
	Versions     SpriteVersions `json:"versions"`
}

// SpriteOther holds the high resolution artwork
type SpriteOther struct {
	OfficialArtwork SpritePair `json:"official-artwork"`
}

// SpriteVersions holds per-game sprites; only the animated gen V set is used
type SpriteVersions struct {
	GenerationV struct {
		BlackWhite struct {
			Animated SpritePair `json:"animated"`
		} `json:"black-white"`
	} `json:"generation-v"`
}

// SpritePair is a default/shiny pair of front sprites
type SpritePair struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

// CrySet holds the cry audio URLs
type CrySet struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

// SpeciesRecord is the response of /pokemon-species/{id}
type SpeciesRecord struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	EvolutionChain    APIResource       `json:"evolution_chain"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

// APIResource is a link without a name
type APIResource struct {
	URL string `json:"url"`
}

// FlavorTextEntry is one localized dex entry
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// EvolutionChainRecord is the response of /evolution-chain/{id}
type EvolutionChainRecord struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one recursive step of an evolution chain
type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}

// AbilityRecord is the response of /ability/{id}
type AbilityRecord struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// EffectEntry is one localized ability effect
type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// TypeRecord is the response of /type/{id}
type TypeRecord struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	DamageRelations DamageRelations `json:"damage_relations"`
}

// DamageRelations lists the attacking types by multiplier
type DamageRelations struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	NoDamageTo       []NamedResource `json:"no_damage_to"`
}
