package domain

import (
	"math"
	"testing"
)

func TestStat_LabelAndPercent(t *testing.T) {
	tests := []struct {
		stat        Stat
		wantLabel   string
		wantPercent float64
	}{
		{Stat{Name: "special-attack", Base: 51}, "special attack", 20},
		{Stat{Name: "hp", Base: 255}, "hp", 100},
		{Stat{Name: "hp", Base: 300}, "hp", 100},
		{Stat{Name: "speed", Base: 0}, "speed", 0},
	}

	for _, tt := range tests {
		t.Run(tt.stat.Name, func(t *testing.T) {
			if got := tt.stat.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
			if got := tt.stat.Percent(); math.Abs(got-tt.wantPercent) > 1e-9 {
				t.Errorf("Percent() = %v, want %v", got, tt.wantPercent)
			}
		})
	}
}

func TestCleanFlavorText(t *testing.T) {
	in := "When several of\nthese POKéMON\fgather, their\relectricity"
	want := "When several of these POKéMON gather, their electricity"
	if got := CleanFlavorText(in); got != want {
		t.Errorf("CleanFlavorText() = %q, want %q", got, want)
	}
}

func TestFirstAvailable(t *testing.T) {
	if got := FirstAvailable(PlaceholderSprite, "", "b.gif", "c.png"); got != "b.gif" {
		t.Errorf("expected first non-empty candidate, got %q", got)
	}
	if got := FirstAvailable(PlaceholderSprite, "", ""); got != PlaceholderSprite {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestDetail_Derived(t *testing.T) {
	d := &Detail{
		ID:               25,
		HeightDecimetres: 4,
		WeightHectograms: 60,
		Types:            []TypeSlot{{Name: "electric"}},
		Stats:            []Stat{{"hp", 35}, {"attack", 55}},
	}

	if d.DisplayID() != "#025" {
		t.Errorf("DisplayID() = %q", d.DisplayID())
	}
	if d.HeightMetres() != 0.4 || d.WeightKilograms() != 6 {
		t.Errorf("unexpected conversions: %v m, %v kg", d.HeightMetres(), d.WeightKilograms())
	}
	if d.StatTotal() != 90 {
		t.Errorf("StatTotal() = %d, want 90", d.StatTotal())
	}
	if d.HasCry() {
		t.Error("detail without cry should report HasCry() = false")
	}
	if names := d.TypeNames(); len(names) != 1 || names[0] != "electric" {
		t.Errorf("TypeNames() = %v", names)
	}
}
