package domain

import "slices"

// TypeRelations holds the attacking types that deal double, half or no
// damage to one elemental type. It is keyed by type name and never changes
// within a session.
type TypeRelations struct {
	Name       string
	DoubleFrom []string
	HalfFrom   []string
	NoneFrom   []string
}

// Effectiveness is the combined defensive profile of one or more types.
// Every list is sorted alphabetically and free of duplicates.
type Effectiveness struct {
	Weaknesses  []string
	Resistances []string
	Immunities  []string
}

// IsEmpty reports whether nothing was classified
func (e Effectiveness) IsEmpty() bool {
	return len(e.Weaknesses) == 0 && len(e.Resistances) == 0 && len(e.Immunities) == 0
}

// Combine merges the damage relations of a dual (or single) typing.
//
// Precedence is zero > cancellation > single direction: an attacking type in
// any NoneFrom set is an immunity no matter what else says; a type present in
// both the double and half unions cancels out and is omitted; otherwise
// double is a weakness and half a resistance.
func Combine(relations ...TypeRelations) Effectiveness {
	double := map[string]struct{}{}
	half := map[string]struct{}{}
	zero := map[string]struct{}{}

	for _, r := range relations {
		addAll(double, r.DoubleFrom)
		addAll(half, r.HalfFrom)
		addAll(zero, r.NoneFrom)
	}

	var eff Effectiveness
	for name := range zero {
		eff.Immunities = append(eff.Immunities, name)
	}
	for name := range double {
		if _, ok := zero[name]; ok {
			continue
		}
		if _, ok := half[name]; ok {
			continue
		}
		eff.Weaknesses = append(eff.Weaknesses, name)
	}
	for name := range half {
		if _, ok := zero[name]; ok {
			continue
		}
		if _, ok := double[name]; ok {
			continue
		}
		eff.Resistances = append(eff.Resistances, name)
	}

	slices.Sort(eff.Weaknesses)
	slices.Sort(eff.Resistances)
	slices.Sort(eff.Immunities)
	return eff
}

func addAll(set map[string]struct{}, names []string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
}
