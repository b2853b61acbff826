package domain

import (
	"testing"
)

func TestParseStubID(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      int
		wantErr   bool
	}{
		{
			name:      "trailing slash",
			reference: "https://pokeapi.co/api/v2/pokemon/25/",
			want:      25,
		},
		{
			name:      "no trailing slash",
			reference: "https://pokeapi.co/api/v2/pokemon/1025",
			want:      1025,
		},
		{
			name:      "form id above national range",
			reference: "https://pokeapi.co/api/v2/pokemon/10001/",
			want:      10001,
		},
		{
			name:      "name instead of id",
			reference: "https://pokeapi.co/api/v2/pokemon/pikachu/",
			wantErr:   true,
		},
		{
			name:      "empty",
			reference: "",
			wantErr:   true,
		},
		{
			name:      "zero id",
			reference: "https://pokeapi.co/api/v2/pokemon/0/",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStubID(tt.reference)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStubID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStubID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeneration_Contains(t *testing.T) {
	gen1, ok := LookupGeneration(1)
	if !ok {
		t.Fatal("generation 1 missing")
	}
	gen2, _ := LookupGeneration(2)

	if !gen1.Contains(1) || !gen1.Contains(151) {
		t.Error("generation 1 should span #001-#151")
	}
	if gen1.Contains(152) {
		t.Error("#152 belongs to generation 2")
	}
	if !gen2.Contains(152) || !gen2.Contains(251) || gen2.Contains(252) {
		t.Errorf("generation 2 bounds wrong: %s", gen2)
	}
}

func TestGenerations_AreContiguous(t *testing.T) {
	for i := 1; i < len(Generations); i++ {
		prev, cur := Generations[i-1], Generations[i]
		if cur.First() != prev.Last()+1 {
			t.Errorf("gap between generation %d and %d: %d -> %d",
				prev.Number, cur.Number, prev.Last(), cur.First())
		}
	}
}

func TestLookupGeneration_Unknown(t *testing.T) {
	if _, ok := LookupGeneration(42); ok {
		t.Error("expected generation 42 to be unknown")
	}
}

func TestStub_DisplayAndSprite(t *testing.T) {
	s := Stub{ID: 7, Name: "squirtle", Reference: "https://pokeapi.co/api/v2/pokemon/7/"}

	if got := s.DisplayID(); got != "#007" {
		t.Errorf("DisplayID() = %q, want #007", got)
	}

	want := "https://sprites.example/pokemon/7.png"
	if got := s.SpriteURL("https://sprites.example/pokemon/"); got != want {
		t.Errorf("SpriteURL() = %q, want %q", got, want)
	}

	if got := (Stub{}).SpriteURL("https://sprites.example"); got != PlaceholderSprite {
		t.Errorf("SpriteURL() for zero stub = %q, want placeholder", got)
	}
}
