package domain

// EvolutionNode is one species in a lineage. Children are indexes into the
// owning tree's node arena, in the order the API lists them.
type EvolutionNode struct {
	SpeciesReference string
	SpeciesName      string
	Children         []int
}

// EvolutionTree is an arena of nodes; node 0 is the root of the lineage.
// Every branch is kept, even though most views only render the first chain.
type EvolutionTree struct {
	Nodes []EvolutionNode
}

// Add appends a node under parent (or as the root when parent < 0) and
// returns its index.
func (t *EvolutionTree) Add(parent int, name, reference string) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, EvolutionNode{
		SpeciesReference: reference,
		SpeciesName:      name,
	})
	if parent >= 0 && parent < idx {
		t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	}
	return idx
}

// Len returns the number of species in the tree
func (t EvolutionTree) Len() int {
	return len(t.Nodes)
}

// Root returns the first species of the lineage
func (t EvolutionTree) Root() (EvolutionNode, bool) {
	if len(t.Nodes) == 0 {
		return EvolutionNode{}, false
	}
	return t.Nodes[0], true
}

// Walk visits every node depth-first, parents before children
func (t EvolutionTree) Walk(fn func(depth int, node EvolutionNode)) {
	if len(t.Nodes) == 0 {
		return
	}
	t.walk(0, 0, fn)
}

func (t EvolutionTree) walk(idx, depth int, fn func(int, EvolutionNode)) {
	node := t.Nodes[idx]
	fn(depth, node)
	for _, child := range node.Children {
		t.walk(child, depth+1, fn)
	}
}

// Chains returns every root-to-leaf path as species names
func (t EvolutionTree) Chains() [][]string {
	if len(t.Nodes) == 0 {
		return nil
	}
	var chains [][]string
	var visit func(idx int, path []string)
	visit = func(idx int, path []string) {
		node := t.Nodes[idx]
		path = append(path, node.SpeciesName)
		if len(node.Children) == 0 {
			chains = append(chains, append([]string(nil), path...))
			return
		}
		for _, child := range node.Children {
			visit(child, path)
		}
	}
	visit(0, nil)
	return chains
}

// FirstChain follows the first child at every step
func (t EvolutionTree) FirstChain() []string {
	if len(t.Nodes) == 0 {
		return nil
	}
	var chain []string
	idx := 0
	for {
		node := t.Nodes[idx]
		chain = append(chain, node.SpeciesName)
		if len(node.Children) == 0 {
			return chain
		}
		idx = node.Children[0]
	}
}
