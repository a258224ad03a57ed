// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: Breadth-first reachability used by connectivity checks.

package planar

// Reachable returns every vertex reachable from start (start included),
// visited breadth-first. Unknown start yields nil.
// Complexity: O(V + E).
func (g *Graph) Reachable(start VertexID) map[VertexID]struct{} {
	if !g.HasVertex(start) {
		return nil
	}
	visited := map[VertexID]struct{}{start: {}}
	queue := []VertexID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for n := range g.adjacency[cur] {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}

	return visited
}

// Connected reports whether every vertex is reachable from every other.
// The empty graph is connected.
func (g *Graph) Connected() bool {
	if len(g.positions) == 0 {
		return true
	}
	return len(g.Reachable(g.Vertices()[0])) == len(g.positions)
}
