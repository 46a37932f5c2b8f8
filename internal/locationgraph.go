package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

// The location graph is the history of the triangulation. Every triangle that
// has ever existed is a node; when a triangle is split or flipped away, the
// triangles that replace it become its children. The leaves are the current
// triangulation, and walking down from the root finds the leaf containing any
// point.
//
// A node can have two parents (both triangles involved in a flip), so this is a
// DAG rather than a tree. Nodes live in an arena and refer to each other by
// index, which keeps the many-to-many links cheap and the graph trivially
// copyable.

type NodeID int

const NoNode NodeID = -1

type NodeState int

const (
	Leaf NodeState = iota
	Internal
)

type Node struct {
	Triangle Triangle
	Parents  []NodeID
	Children []NodeID
	// Neighbors[i] is the leaf across Triangle.Edges()[i]. Only maintained
	// while the node is a leaf.
	Neighbors [3]NodeID
	// Four-coloring result, -1 if uncolored.
	Color int

	visited bool
}

type LocationGraph struct {
	nodes  []*Node
	root   NodeID
	tracer Tracer
}

func NewLocationGraph(root Triangle) *LocationGraph {
	g := &LocationGraph{root: NoNode, tracer: NopTracer{}}
	g.root = g.AddNode(root)
	return g
}

func (g *LocationGraph) Root() NodeID {
	return g.root
}

func (g *LocationGraph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		invariantf("node %d does not exist", id)
	}
	return g.nodes[id]
}

// Number of nodes ever created, leaves and internal nodes alike.
func (g *LocationGraph) Len() int {
	return len(g.nodes)
}

func (g *LocationGraph) State(id NodeID) NodeState {
	if len(g.Node(id).Children) == 0 {
		return Leaf
	}
	return Internal
}

// Add a node for the triangle and register it as a child of every parent.
func (g *LocationGraph) AddNode(t Triangle, parents ...NodeID) NodeID {
	id := NodeID(len(g.nodes))
	node := &Node{
		Triangle:  t,
		Parents:   append([]NodeID(nil), parents...),
		Neighbors: [3]NodeID{NoNode, NoNode, NoNode},
		Color:     -1,
	}
	g.nodes = append(g.nodes, node)
	for _, parent := range parents {
		p := g.Node(parent)
		p.Children = append(p.Children, id)
	}
	return id
}

// Find the leaf whose triangle contains v, starting the descent at from. A
// point strictly inside a child is always preferred; a point sitting on an edge
// shared by two children goes to the first child whose closed region holds it.
// Returns false if no child contains the point, which means the graph is
// broken.
func (g *LocationGraph) FindNodeContaining(from NodeID, v Vertex) (NodeID, bool) {
	current := from
	for {
		node := g.Node(current)
		if len(node.Children) == 0 {
			return current, true
		}
		next := NoNode
		for _, child := range node.Children {
			if g.nodes[child].Triangle.Contains(v) {
				next = child
				break
			}
		}
		if next == NoNode {
			for _, child := range node.Children {
				if g.nodes[child].Triangle.ContainsClosed(v) {
					next = child
					break
				}
			}
		}
		if next == NoNode {
			g.tracer.Tracef("no child of %s contains %v", nodeName{g, current}, v)
			return NoNode, false
		}
		current = next
	}
}

// The neighbor recorded across edge e of node id, or NoNode. Also NoNode if e
// is not an edge of the node's triangle.
func (g *LocationGraph) NeighborAcross(id NodeID, e Edge) NodeID {
	node := g.Node(id)
	i := node.Triangle.EdgeIndex(e)
	if i < 0 {
		return NoNode
	}
	return node.Neighbors[i]
}

func (g *LocationGraph) SetNeighborAcross(id NodeID, e Edge, other NodeID) {
	node := g.Node(id)
	i := node.Triangle.EdgeIndex(e)
	if i < 0 {
		invariantf("edge %v is not part of %v", e, node.Triangle)
	}
	node.Neighbors[i] = other
}

// Record a and b as neighbors across e, in both directions. b may be NoNode,
// in which case only a is updated.
func (g *LocationGraph) link(a NodeID, e Edge, b NodeID) {
	g.SetNeighborAcross(a, e, b)
	if b != NoNode {
		g.SetNeighborAcross(b, e, a)
	}
}

// The recorded neighbors of a node, skipping missing ones.
func (g *LocationGraph) Neighbors(id NodeID) []NodeID {
	var result []NodeID
	for _, n := range g.Node(id).Neighbors {
		if n != NoNode {
			result = append(result, n)
		}
	}
	return result
}

// Search the history for the leaf on the other side of edge e from node
// adjacentTo, without using neighbor links. Siblings of the node are tried
// first, then siblings of its parents; a candidate carrying the edge is
// followed down through children that also carry it until a leaf is reached.
func (g *LocationGraph) FindTriangleIncident(e Edge, adjacentTo NodeID) (NodeID, bool) {
	node := g.Node(adjacentTo)

	var siblings []NodeID
	seen := make(map[NodeID]struct{})
	for _, parent := range node.Parents {
		for _, child := range g.nodes[parent].Children {
			if _, ok := seen[child]; ok || child == adjacentTo {
				continue
			}
			seen[child] = struct{}{}
			siblings = append(siblings, child)
		}
	}
	for _, sibling := range siblings {
		if !g.nodes[sibling].Triangle.HasEdge(e) {
			continue
		}
		if leaf, ok := g.descendAlongEdge(e, sibling); ok {
			g.tracer.Tracef("edge %v found on sibling %s", e, nodeName{g, leaf})
			return leaf, true
		}
	}

	isParent := func(id NodeID) bool {
		for _, parent := range node.Parents {
			if parent == id {
				return true
			}
		}
		return false
	}
	for _, parent := range node.Parents {
		for _, grandparent := range g.nodes[parent].Parents {
			for _, parentSibling := range g.nodes[grandparent].Children {
				if isParent(parentSibling) || !g.nodes[parentSibling].Triangle.HasEdge(e) {
					continue
				}
				if leaf, ok := g.descendAlongEdge(e, parentSibling); ok {
					g.tracer.Tracef("edge %v found below parent sibling %s", e, nodeName{g, leaf})
					return leaf, true
				}
			}
		}
	}

	return NoNode, false
}

func (g *LocationGraph) descendAlongEdge(e Edge, from NodeID) (NodeID, bool) {
	current := from
	for len(g.nodes[current].Children) > 0 {
		next := NoNode
		for _, child := range g.nodes[current].Children {
			if g.nodes[child].Triangle.HasEdge(e) {
				next = child
				break
			}
		}
		if next == NoNode {
			return NoNode, false
		}
		current = next
	}
	return current, true
}

// Visit every node reachable from from through child links, each exactly once,
// in depth first preorder.
func (g *LocationGraph) Walk(from NodeID, fn func(id NodeID, node *Node)) {
	var touched []NodeID
	defer func() {
		for _, id := range touched {
			g.nodes[id].visited = false
		}
	}()

	stack := []NodeID{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := g.Node(id)
		if node.visited {
			continue
		}
		node.visited = true
		touched = append(touched, id)
		fn(id, node)
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
}

// All leaves reachable from from, ghost triangles included, in visiting order.
func (g *LocationGraph) LeafNodes(from NodeID) []NodeID {
	var leaves []NodeID
	g.Walk(from, func(id NodeID, node *Node) {
		if len(node.Children) == 0 {
			leaves = append(leaves, id)
		}
	})
	return leaves
}

// The current triangulation below from: every leaf triangle without a ghost
// vertex.
func (g *LocationGraph) LeafTriangles(from NodeID) TriangleSet {
	result := make(TriangleSet)
	for _, id := range g.LeafNodes(from) {
		t := g.nodes[id].Triangle
		if !t.HasGhost() {
			result.Add(t)
		}
	}
	return result
}

// Indented dump of the history below from. A node with two parents is printed
// once under each of them.
func (g *LocationGraph) TreeString(from NodeID) string {
	var b strings.Builder
	g.writeTree(&b, from, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func (g *LocationGraph) writeTree(b *strings.Builder, id NodeID, depth int) {
	node := g.Node(id)
	fmt.Fprintf(b, "%stri: %v\n", strings.Repeat("\t", depth), node.Triangle)
	for _, child := range node.Children {
		g.writeTree(b, child, depth+1)
	}
}

// Defers DbgName until a trace line is actually formatted, so that the
// process-wide name table is only touched when someone is listening.
type nodeName struct {
	g  *LocationGraph
	id NodeID
}

func (n nodeName) String() string {
	return n.g.DbgName(n.id)
}

// Readable, colored name for a node: cyan for ghost triangles, green for
// leaves, red for triangles that have been replaced.
func (g *LocationGraph) DbgName(id NodeID) string {
	if id == NoNode {
		return "Ø"
	}
	node := g.Node(id)
	name := dbg.Name(node)
	switch {
	case node.Triangle.HasGhost():
		return aurora.Cyan(name).String()
	case len(node.Children) == 0:
		return aurora.Green(name).String()
	default:
		return aurora.Red(name).String()
	}
}
