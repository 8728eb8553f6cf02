package kinship

import (
	"cmp"
	"slices"
)

// Distances maps an ancestor id to its minimal generation distance from the
// start member (1 = parent, 2 = grandparent, ...). The start member is never
// present.
type Distances map[string]int

// Ancestors walks parent edges breadth-first from start. The visited set bounds
// the walk on cyclic data, and because each hop is expanded level by level the
// first distance recorded for an ancestor is the minimal one.
func (g *Graph) Ancestors(start string) Distances {
	dist := make(Distances)
	visited := map[string]bool{start: true}
	frontier := []string{start}

	for hop := 1; len(frontier) > 0; hop++ {
		var next []string

		for _, id := range frontier {
			for _, p := range g.parents[id] {
				if visited[p] {
					continue
				}

				visited[p] = true
				dist[p] = hop
				next = append(next, p)
			}
		}

		frontier = next
	}

	return dist
}

// ancestorEntry is one row of a Distances map in canonical order.
type ancestorEntry struct {
	id       string
	distance int
}

// sorted returns the entries ordered by distance, then id.
func (d Distances) sorted() []ancestorEntry {
	out := make([]ancestorEntry, 0, len(d))
	for id, dist := range d {
		out = append(out, ancestorEntry{id: id, distance: dist})
	}

	slices.SortFunc(out, func(a, b ancestorEntry) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}

		return cmp.Compare(a.id, b.id)
	})

	return out
}

// PathUp returns the shortest path from -> ... -> to following parent edges,
// or nil when to is not reachable within maxDepth hops. The path is for
// display only; labels never depend on it.
func (g *Graph) PathUp(from, to string, maxDepth int) []string {
	return boundedPath(g.parents, from, to, maxDepth)
}

// PathDown is PathUp following child edges.
func (g *Graph) PathDown(from, to string, maxDepth int) []string {
	return boundedPath(g.children, from, to, maxDepth)
}

func boundedPath(adj map[string][]string, from, to string, maxDepth int) []string {
	if from == to {
		return []string{from}
	}

	if maxDepth <= 0 {
		return nil
	}

	visited := map[string]bool{from: true}
	prev := map[string]string{}
	frontier := []string{from}
	found := false

	for hop := 0; hop < maxDepth && !found && len(frontier) > 0; hop++ {
		var next []string

		for _, id := range frontier {
			for _, n := range adj[id] {
				if visited[n] {
					continue
				}

				visited[n] = true
				prev[n] = id
				next = append(next, n)

				if n == to {
					found = true
				}
			}
		}

		frontier = next
	}

	if !found {
		return nil
	}

	trail := []string{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		trail = append(trail, cur)
	}

	slices.Reverse(trail)

	return trail
}
