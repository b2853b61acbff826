package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// eeveeTree builds eevee -> {vaporeon, jolteon, flareon}
func eeveeTree() EvolutionTree {
	var tree EvolutionTree
	root := tree.Add(-1, "eevee", "species/133")
	tree.Add(root, "vaporeon", "species/134")
	tree.Add(root, "jolteon", "species/135")
	tree.Add(root, "flareon", "species/136")
	return tree
}

func TestEvolutionTree_PreservesBranches(t *testing.T) {
	tree := eeveeTree()

	if tree.Len() != 4 {
		t.Fatalf("expected 4 nodes, got %d", tree.Len())
	}

	want := [][]string{
		{"eevee", "vaporeon"},
		{"eevee", "jolteon"},
		{"eevee", "flareon"},
	}
	if diff := cmp.Diff(want, tree.Chains()); diff != "" {
		t.Errorf("Chains() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"eevee", "vaporeon"}, tree.FirstChain()); diff != "" {
		t.Errorf("FirstChain() mismatch (-want +got):\n%s", diff)
	}
}

func TestEvolutionTree_WalkDepths(t *testing.T) {
	var tree EvolutionTree
	root := tree.Add(-1, "oddish", "")
	gloom := tree.Add(root, "gloom", "")
	tree.Add(gloom, "vileplume", "")
	tree.Add(gloom, "bellossom", "")

	type visit struct {
		Depth int
		Name  string
	}
	var got []visit
	tree.Walk(func(depth int, node EvolutionNode) {
		got = append(got, visit{depth, node.SpeciesName})
	})

	want := []visit{
		{0, "oddish"},
		{1, "gloom"},
		{2, "vileplume"},
		{2, "bellossom"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestEvolutionTree_Empty(t *testing.T) {
	var tree EvolutionTree

	if _, ok := tree.Root(); ok {
		t.Error("empty tree should have no root")
	}
	if tree.Chains() != nil || tree.FirstChain() != nil {
		t.Error("empty tree should have no chains")
	}
	called := false
	tree.Walk(func(int, EvolutionNode) { called = true })
	if called {
		t.Error("Walk should not visit anything on an empty tree")
	}
}
