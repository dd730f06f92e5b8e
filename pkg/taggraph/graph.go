package taggraph

import (
	"slices"

	"github.com/matzehuels/frameglass/pkg/tags"
)

// Graph is an undirected graph over node positions 0..Len()-1.
// The zero value is an empty graph.
type Graph struct {
	adj   [][]int
	edges int
}

// Build creates the adjacency graph for sets, where node i stands for sets[i].
// Nodes i and j are joined when some tag is held by exactly sets i and j.
func Build(sets []tags.Set) *Graph {
	holders := make(map[tags.ID][]int)
	for i, s := range sets {
		for _, id := range s {
			holders[id] = append(holders[id], i)
		}
	}

	g := &Graph{adj: make([][]int, len(sets))}
	for _, hs := range holders {
		if len(hs) != 2 {
			continue
		}
		u, v := hs[0], hs[1]
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}

	for i := range g.adj {
		slices.Sort(g.adj[i])
		g.adj[i] = slices.Compact(g.adj[i])
		g.edges += len(g.adj[i])
	}
	g.edges /= 2
	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Neighbors returns the neighbors of v in ascending order.
// The returned slice must not be modified.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// Traverse returns every node exactly once in depth-first order.
//
// Components are started from their lowest unvisited node. Within a
// component an explicit stack is used; neighbors are pushed in ascending
// order, so the highest-numbered unvisited neighbor is explored first.
func (g *Graph) Traverse() []int {
	visited := make([]bool, len(g.adj))
	order := make([]int, 0, len(g.adj))
	var stack []int

	for start := range g.adj {
		if visited[start] {
			continue
		}
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			order = append(order, cur)
			for _, nb := range g.adj[cur] {
				if !visited[nb] {
					stack = append(stack, nb)
				}
			}
		}
	}
	return order
}

// Components returns the number of connected components, counting
// isolated nodes.
func (g *Graph) Components() int {
	visited := make([]bool, len(g.adj))
	n := 0
	var stack []int
	for start := range g.adj {
		if visited[start] {
			continue
		}
		n++
		visited[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range g.adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}
	return n
}
