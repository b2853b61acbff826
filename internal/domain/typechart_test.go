package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name      string
		relations []TypeRelations
		want      Effectiveness
	}{
		{
			name: "double and half cancel",
			relations: []TypeRelations{
				{DoubleFrom: []string{"fire"}},
				{HalfFrom: []string{"fire"}},
			},
			want: Effectiveness{},
		},
		{
			name: "zero overrides double",
			relations: []TypeRelations{
				{DoubleFrom: []string{"water"}},
				{NoneFrom: []string{"water"}},
			},
			want: Effectiveness{Immunities: []string{"water"}},
		},
		{
			name: "zero overrides cancellation",
			relations: []TypeRelations{
				{DoubleFrom: []string{"ground"}, HalfFrom: []string{"ground"}},
				{NoneFrom: []string{"ground"}},
			},
			want: Effectiveness{Immunities: []string{"ground"}},
		},
		{
			name: "single type",
			relations: []TypeRelations{
				{
					Name:       "grass",
					DoubleFrom: []string{"flying", "poison", "bug", "fire", "ice"},
					HalfFrom:   []string{"ground", "water", "grass", "electric"},
				},
			},
			want: Effectiveness{
				Weaknesses:  []string{"bug", "fire", "flying", "ice", "poison"},
				Resistances: []string{"electric", "grass", "ground", "water"},
			},
		},
		{
			name: "dual type dedupes shared weaknesses",
			relations: []TypeRelations{
				{Name: "rock", DoubleFrom: []string{"fighting", "ground", "steel", "water", "grass"}, HalfFrom: []string{"normal", "flying", "poison", "fire"}},
				{Name: "ground", DoubleFrom: []string{"water", "grass", "ice"}, HalfFrom: []string{"poison", "rock"}, NoneFrom: []string{"electric"}},
			},
			want: Effectiveness{
				Weaknesses:  []string{"fighting", "grass", "ground", "ice", "steel", "water"},
				Resistances: []string{"fire", "flying", "normal", "poison", "rock"},
				Immunities:  []string{"electric"},
			},
		},
		{
			name: "no input",
			want: Effectiveness{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.relations...)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCombine_CancelledTypeAppearsNowhere(t *testing.T) {
	eff := Combine(
		TypeRelations{DoubleFrom: []string{"fire"}},
		TypeRelations{HalfFrom: []string{"fire"}},
	)

	for _, list := range [][]string{eff.Weaknesses, eff.Resistances, eff.Immunities} {
		for _, name := range list {
			if name == "fire" {
				t.Errorf("fire should be cancelled, got %+v", eff)
			}
		}
	}
	if !eff.IsEmpty() {
		t.Errorf("expected empty effectiveness, got %+v", eff)
	}
}
