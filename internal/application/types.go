package application

import "pokeio/internal/domain"

// Re-export domain types for use by adapters
type (
	Stub          = domain.Stub
	Detail        = domain.Detail
	Generation    = domain.Generation
	TypeRelations = domain.TypeRelations
	Effectiveness = domain.Effectiveness
)
