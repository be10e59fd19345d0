package suggestive

import "slices"

// Edge is an unordered vertex pair stored canonically with A <= B.
type Edge struct {
	A, B int
}

// MakeEdge returns the canonical edge joining a and b.
func MakeEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// EdgeInfo records the faces incident to an edge. Valence counts every
// incident face; Faces holds the first two of them.
type EdgeInfo struct {
	Edge
	Faces   [2]int
	Valence int
}

// Boundary reports whether exactly one face references the edge.
func (e *EdgeInfo) Boundary() bool {
	return e.Valence == 1
}

// EdgeTable lists the edges of the mesh in the order they are first met while
// walking the faces (ab, bc, ca per face) and returns the index of each edge
// in that list.
func (m *Mesh) EdgeTable() ([]EdgeInfo, map[Edge]int) {
	edges := make([]EdgeInfo, 0, len(m.Faces)*3/2+1)
	index := make(map[Edge]int, len(m.Faces)*3/2+1)

	for f, tri := range m.Faces {
		for k := 0; k < 3; k++ {
			e := MakeEdge(tri[k], tri[(k+1)%3])
			i, ok := index[e]
			if !ok {
				i = len(edges)
				index[e] = i
				edges = append(edges, EdgeInfo{Edge: e})
			}
			info := &edges[i]
			if info.Valence < 2 {
				info.Faces[info.Valence] = f
			}
			info.Valence++
		}
	}

	return edges, index
}

// Adjacency is the one-ring of every vertex in compressed form: the
// neighbours of v are Indices[Offsets[v]:Offsets[v+1]], sorted and unique.
type Adjacency struct {
	Offsets []int
	Indices []int
}

// Of returns the one-ring of v. The slice aliases the adjacency storage.
func (a *Adjacency) Of(v int) []int {
	return a.Indices[a.Offsets[v]:a.Offsets[v+1]]
}

// Valence returns the number of distinct neighbours of v.
func (a *Adjacency) Valence(v int) int {
	return a.Offsets[v+1] - a.Offsets[v]
}

// Len returns the number of vertices covered.
func (a *Adjacency) Len() int {
	return len(a.Offsets) - 1
}

// Neighbors builds the one-ring adjacency from the faces. A vertex is never
// its own neighbour, even when a degenerate face repeats it.
func (m *Mesh) Neighbors() *Adjacency {
	n := len(m.Points)

	start := make([]int, n+1)
	for _, tri := range m.Faces {
		for _, v := range tri {
			start[v+1] += 2
		}
	}
	for i := 1; i <= n; i++ {
		start[i] += start[i-1]
	}

	raw := make([]int, start[n])
	fill := append([]int(nil), start[:n]...)
	for _, tri := range m.Faces {
		for k, v := range tri {
			raw[fill[v]] = tri[(k+1)%3]
			raw[fill[v]+1] = tri[(k+2)%3]
			fill[v] += 2
		}
	}

	adj := &Adjacency{
		Offsets: make([]int, n+1),
		Indices: make([]int, 0, len(raw)),
	}
	for v := 0; v < n; v++ {
		ring := raw[start[v]:start[v+1]]
		slices.Sort(ring)
		ring = slices.Compact(ring)
		for _, u := range ring {
			if u != v {
				adj.Indices = append(adj.Indices, u)
			}
		}
		adj.Offsets[v+1] = len(adj.Indices)
	}

	return adj
}
