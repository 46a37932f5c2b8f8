package internal

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/pkg/errors"
)

// Write the history below the root as a Graphviz DOT document. Leaves are
// green, ghost triangles gray, replaced triangles black.
func (g *LocationGraph) WriteDOT(w io.Writer) (err error) {
	gv := graphviz.New()
	defer gv.Close()
	graph, err := gv.Graph()
	if err != nil {
		return errors.Wrap(err, "creating graphviz graph")
	}
	defer graph.Close()

	nodes := make(map[NodeID]*cgraph.Node)
	var order []NodeID
	g.Walk(g.root, func(id NodeID, node *Node) {
		if err != nil {
			return
		}
		var n *cgraph.Node
		n, err = graph.CreateNode(fmt.Sprintf("n%d", id))
		if err != nil {
			err = errors.Wrapf(err, "creating node %d", id)
			return
		}
		n.SetLabel(node.Triangle.String())
		switch {
		case node.Triangle.HasGhost():
			n.SetColor("gray")
		case len(node.Children) == 0:
			n.SetColor("green")
		}
		nodes[id] = n
		order = append(order, id)
	})
	if err != nil {
		return err
	}

	for _, id := range order {
		for _, child := range g.nodes[id].Children {
			if _, err := graph.CreateEdge(fmt.Sprintf("e%d_%d", id, child), nodes[id], nodes[child]); err != nil {
				return errors.Wrapf(err, "creating edge %d→%d", id, child)
			}
		}
	}

	if err := gv.Render(graph, graphviz.XDOT, w); err != nil {
		return errors.Wrap(err, "rendering DOT")
	}
	return nil
}
