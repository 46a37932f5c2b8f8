package internal

// Assign each real leaf triangle below from a color in 0..3 such that no two
// triangles sharing an edge get the same color. Ghost triangles are left
// uncolored.
//
// A triangle has at most three neighbors, so greedily taking the lowest color
// not used by an already colored neighbor never runs out. Leaves are colored in
// graph order, which keeps the result deterministic.
func (g *LocationGraph) FourColor(from NodeID) {
	leaves := g.LeafNodes(from)
	for _, id := range leaves {
		g.nodes[id].Color = -1
	}
	for _, id := range leaves {
		node := g.nodes[id]
		if node.Triangle.HasGhost() {
			continue
		}
		var used [4]bool
		for _, neighbor := range g.Neighbors(id) {
			if c := g.nodes[neighbor].Color; c >= 0 {
				used[c] = true
			}
		}
		for c := range used {
			if !used[c] {
				node.Color = c
				break
			}
		}
		g.tracer.Tracef("colored %s %d", nodeName{g, id}, node.Color)
	}
}
