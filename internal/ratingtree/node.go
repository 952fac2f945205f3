package ratingtree

// Node is a read-only view of one bucket, used to draw the tree.
// A Node stays valid while its Tree lives; later inserts show through.
type Node struct {
	tree  *Tree
	index int
}

// Root returns the root bucket, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.node(t.root)
}

func (t *Tree) node(i int) *Node {
	if i == nilIndex {
		return nil
	}
	return &Node{tree: t, index: i}
}

// Rating returns the bucket key.
func (n *Node) Rating() int {
	return n.tree.buckets[n.index].rating
}

// Songs returns a copy of the bucket's names in insertion order.
func (n *Node) Songs() []string {
	return append([]string(nil), n.tree.buckets[n.index].songs...)
}

// Left returns the smaller-rating child, or nil.
func (n *Node) Left() *Node {
	return n.tree.node(n.tree.buckets[n.index].left)
}

// Right returns the larger-rating child, or nil.
func (n *Node) Right() *Node {
	return n.tree.node(n.tree.buckets[n.index].right)
}
