package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pokeio/internal/domain"
	"pokeio/internal/ports"
)

// abilityFanOut bounds the concurrent ability description requests
const abilityFanOut = 4

// Caches is the process-wide lookup state. It is built once at startup,
// handed to every component that needs it and never torn down mid-session.
type Caches struct {
	Details   *Memo[*domain.Detail]
	Abilities *Memo[ports.AbilityRecord]
	Types     *Memo[domain.TypeRelations]
}

// NewCaches creates empty caches
func NewCaches() *Caches {
	return &Caches{
		Details:   NewMemo[*domain.Detail](),
		Abilities: NewMemo[ports.AbilityRecord](),
		Types:     NewMemo[domain.TypeRelations](),
	}
}

// Aggregator turns a primary reference into a fully populated Detail by
// following the species, evolution chain and ability links. Results are
// memoized per reference for the rest of the session.
type Aggregator struct {
	transport ports.Transport
	caches    *Caches
	logger    *zap.Logger
}

// NewAggregator creates an aggregator over the shared caches
func NewAggregator(transport ports.Transport, caches *Caches, logger *zap.Logger) *Aggregator {
	if caches == nil {
		caches = NewCaches()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		transport: transport,
		caches:    caches,
		logger:    logger,
	}
}

// Cached returns the detail for reference without touching the network
func (a *Aggregator) Cached(reference string) (*domain.Detail, bool) {
	return a.caches.Details.Get(reference)
}

// Resolve returns the detail for reference.
//
// The primary, species and evolution chain requests run in sequence and any
// failure among them fails the call without caching anything. Ability
// descriptions are fetched in parallel and a failed one degrades to
// domain.DescriptionUnavailable unless ctx itself was cancelled, in which case
// the call fails and nothing is cached. Type relations come only from the preloaded
// type cache; a missing type keeps a nil Relations.
func (a *Aggregator) Resolve(ctx context.Context, reference string) (*domain.Detail, error) {
	if d, ok := a.caches.Details.Get(reference); ok {
		a.logger.Debug("detail cache hit", zap.String("reference", reference))
		return d, nil
	}

	primary, err := Fetch[ports.PokemonRecord](ctx, a.transport, reference, nil, "")
	if err != nil {
		return nil, fmt.Errorf("primary record: %w", err)
	}

	species, err := Fetch[ports.SpeciesRecord](ctx, a.transport, primary.Species.URL, nil, "")
	if err != nil {
		return nil, fmt.Errorf("species of %s: %w", primary.Name, err)
	}

	chain, err := Fetch[ports.EvolutionChainRecord](ctx, a.transport, species.EvolutionChain.URL, nil, "")
	if err != nil {
		return nil, fmt.Errorf("evolution chain of %s: %w", primary.Name, err)
	}

	abilities := make([]domain.Ability, len(primary.Abilities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(abilityFanOut)
	for i, slot := range primary.Abilities {
		abilities[i] = domain.Ability{
			Name:        slot.Ability.Name,
			Hidden:      slot.IsHidden,
			Description: domain.DescriptionUnavailable,
		}
		g.Go(func() error {
			if desc, ok := a.abilityDescription(gctx, slot.Ability); ok {
				abilities[i].Description = desc.ShortEffect
			}
			return nil
		})
	}

	// Type lookups are memory reads and proceed while abilities are in flight
	types := make([]domain.TypeSlot, len(primary.Types))
	for i, slot := range primary.Types {
		types[i] = domain.TypeSlot{Name: slot.Type.Name}
		if rel, ok := a.caches.Types.Get(slot.Type.Name); ok {
			types[i].Relations = &rel
		} else {
			a.logger.Debug("type relations not preloaded", zap.String("type", slot.Type.Name))
		}
	}

	_ = g.Wait()

	// A cancelled fan-out degrades every ability, so nothing is cached
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("abilities of %s: %w", primary.Name, err)
	}

	detail := &domain.Detail{
		Reference:        reference,
		ID:               primary.ID,
		Name:             primary.Name,
		HeightDecimetres: primary.Height,
		WeightHectograms: primary.Weight,
		Description:      englishFlavorText(species.FlavorTextEntries),
		Types:            types,
		Abilities:        abilities,
		Stats:            stats(primary.Stats),
		Evolution:        evolutionTree(chain.Chain),
		Sprites:          sprites(primary.Sprites),
		Cry:              domain.FirstAvailable("", primary.Cries.Latest, primary.Cries.Legacy),
		Matchups:         matchups(types),
	}

	a.caches.Details.Put(reference, detail)
	a.logger.Debug("detail resolved",
		zap.String("reference", reference),
		zap.String("name", detail.Name),
		zap.Int("abilities", len(abilities)),
	)
	return detail, nil
}

func (a *Aggregator) abilityDescription(ctx context.Context, ability ports.NamedResource) (domain.AbilityDescription, bool) {
	record, err := Fetch(ctx, a.transport, ability.URL, a.caches.Abilities, ability.URL)
	if err != nil {
		a.logger.Warn("ability description unavailable",
			zap.String("ability", ability.Name),
			zap.Error(err),
		)
		return domain.AbilityDescription{}, false
	}
	for _, e := range record.EffectEntries {
		if e.Language.Name == "en" && e.ShortEffect != "" {
			return domain.AbilityDescription{Reference: ability.URL, ShortEffect: e.ShortEffect}, true
		}
	}
	return domain.AbilityDescription{}, false
}

func englishFlavorText(entries []ports.FlavorTextEntry) string {
	for _, e := range entries {
		if e.Language.Name == "en" {
			return domain.CleanFlavorText(e.FlavorText)
		}
	}
	return domain.NoDescription
}

func stats(entries []ports.StatEntry) []domain.Stat {
	out := make([]domain.Stat, len(entries))
	for i, e := range entries {
		out[i] = domain.Stat{Name: e.Stat.Name, Base: e.BaseStat}
	}
	return out
}

// sprites applies official artwork -> animated -> basic -> placeholder,
// separately for the default and shiny variants
func sprites(s ports.SpriteSet) domain.Sprites {
	animated := s.Versions.GenerationV.BlackWhite.Animated
	return domain.Sprites{
		Default: domain.FirstAvailable(domain.PlaceholderSprite,
			s.Other.OfficialArtwork.FrontDefault,
			animated.FrontDefault,
			s.FrontDefault,
		),
		Shiny: domain.FirstAvailable(domain.PlaceholderSprite,
			s.Other.OfficialArtwork.FrontShiny,
			animated.FrontShiny,
			s.FrontShiny,
		),
	}
}

func evolutionTree(root ports.ChainLink) domain.EvolutionTree {
	var tree domain.EvolutionTree
	var add func(parent int, link ports.ChainLink)
	add = func(parent int, link ports.ChainLink) {
		idx := tree.Add(parent, link.Species.Name, link.Species.URL)
		for _, next := range link.EvolvesTo {
			add(idx, next)
		}
	}
	add(-1, root)
	return tree
}

func matchups(types []domain.TypeSlot) domain.Effectiveness {
	var known []domain.TypeRelations
	for _, t := range types {
		if t.Relations != nil {
			known = append(known, *t.Relations)
		}
	}
	return domain.Combine(known...)
}
