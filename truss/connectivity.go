package truss

// Components groups node indices into connected components over the beams.
//
// Components are discovered breadth-first, seeded from the lowest unvisited
// node index; inside a component nodes appear in visit order and neighbors
// are visited in beam order, so the result is deterministic.
// The Structure must be resolved.
//
// Complexity: O(N + B).
func (s *Structure) Components() [][]int {
	n := len(s.Nodes)
	if n == 0 {
		return nil
	}
	adj := make([][]int, n)
	for i := range s.Beams {
		a, b := s.Beams[i].Ends()
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	var out [][]int
	for seed := 0; seed < n; seed++ {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		queue = append(queue[:0], seed)
		comp := make([]int, 0, 1)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nbr := range adj[cur] {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		out = append(out, comp)
	}

	return out
}

// Disconnected returns the ids of nodes outside the component that contains
// the first node, in node order. An empty result means the structure is
// connected.
func (s *Structure) Disconnected() []int {
	comps := s.Components()
	if len(comps) <= 1 {
		return nil
	}
	inMain := make([]bool, len(s.Nodes))
	for _, idx := range comps[0] {
		inMain[idx] = true
	}
	var ids []int
	for i := range s.Nodes {
		if !inMain[i] {
			ids = append(ids, s.Nodes[i].ID)
		}
	}

	return ids
}
