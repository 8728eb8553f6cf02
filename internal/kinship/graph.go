// Package kinship infers the kinship label and display path between two
// members of a family tree.
//
// All queries read an immutable Graph built from one tree snapshot. A Graph
// carries no identity beyond the query that built it and is safe to share
// between goroutines once constructed.
package kinship

import (
	"slices"
)

// EdgeKind distinguishes the two relationship edges a tree records.
type EdgeKind string

// Edge kinds as stored by the relationships table.
const (
	EdgeSpouse      EdgeKind = "spouse"
	EdgeParentChild EdgeKind = "parent-child"
)

// Member is a person in one tree. Name is only used for display.
type Member struct {
	ID     string
	Name   string
	Gender string
}

// Edge is a single relationship. For EdgeParentChild, A is the parent and B the child.
// Spouse edges are undirected.
type Edge struct {
	Kind EdgeKind
	A    string
	B    string
}

// Graph is the adjacency view of one tree snapshot.
type Graph struct {
	members  map[string]Member
	ids      []string
	spouses  map[string][]string
	parents  map[string][]string // child -> parents
	children map[string][]string // parent -> children
	skipped  int
}

// NewGraph builds a Graph in O(V+E). Self-referential, duplicate, dangling and
// unknown-kind edges are skipped and counted rather than rejected. Adjacency
// lists are kept in member-id order so every traversal is deterministic.
func NewGraph(members []Member, edges []Edge) *Graph {
	g := &Graph{
		members:  make(map[string]Member, len(members)),
		ids:      make([]string, 0, len(members)),
		spouses:  make(map[string][]string),
		parents:  make(map[string][]string),
		children: make(map[string][]string),
	}

	for _, m := range members {
		if _, dup := g.members[m.ID]; dup {
			continue
		}

		g.members[m.ID] = m
		g.ids = append(g.ids, m.ID)
	}

	slices.Sort(g.ids)

	seen := make(map[Edge]bool, len(edges))

	for _, e := range edges {
		if e.A == e.B || !g.Has(e.A) || !g.Has(e.B) {
			g.skipped++
			continue
		}

		key := e
		if e.Kind == EdgeSpouse && key.A > key.B {
			key.A, key.B = key.B, key.A
		}

		if seen[key] {
			g.skipped++
			continue
		}

		seen[key] = true

		switch e.Kind {
		case EdgeSpouse:
			g.spouses[e.A] = append(g.spouses[e.A], e.B)
			g.spouses[e.B] = append(g.spouses[e.B], e.A)
		case EdgeParentChild:
			g.children[e.A] = append(g.children[e.A], e.B)
			g.parents[e.B] = append(g.parents[e.B], e.A)
		default:
			g.skipped++
		}
	}

	for _, adj := range []map[string][]string{g.spouses, g.parents, g.children} {
		for _, list := range adj {
			slices.Sort(list)
		}
	}

	return g
}

// Has reports whether id is a member of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.members[id]
	return ok
}

// Member returns the member with the given id.
func (g *Graph) Member(id string) (Member, bool) {
	m, ok := g.members[id]
	return m, ok
}

// Len returns the number of members.
func (g *Graph) Len() int { return len(g.ids) }

// IDs returns all member ids in ascending order.
func (g *Graph) IDs() []string { return slices.Clone(g.ids) }

// Skipped returns how many input edges were dropped as malformed.
func (g *Graph) Skipped() int { return g.skipped }

// Spouses returns the spouses of id in ascending id order.
func (g *Graph) Spouses(id string) []string { return slices.Clone(g.spouses[id]) }

// Parents returns the recorded parents of id in ascending id order.
func (g *Graph) Parents(id string) []string { return slices.Clone(g.parents[id]) }

// Children returns the recorded children of id in ascending id order.
func (g *Graph) Children(id string) []string { return slices.Clone(g.children[id]) }

func (g *Graph) isSpouse(a, b string) bool {
	_, ok := slices.BinarySearch(g.spouses[a], b)
	return ok
}

// isParent reports whether p is a recorded parent of c.
func (g *Graph) isParent(p, c string) bool {
	_, ok := slices.BinarySearch(g.parents[c], p)
	return ok
}

func (g *Graph) sameParents(a, b string) bool {
	pa, pb := g.parents[a], g.parents[b]
	return len(pa) > 0 && slices.Equal(pa, pb)
}
