/*
Package tree implements a generic, payload-carrying tree together with a
depth-first walker. Every box-tree, stacking-context, and DOM-adapter type
in this module embeds tree.Node for its parent/child/sibling links, exactly
the way the teacher codebase this module is derived from does it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package tree

import "sync"

// Node is one node of a tree. Any type that wants tree membership embeds
// Node and sets Payload to itself, so that a tree walk can always recover
// the concrete type from a bare *Node.
type Node struct {
	Payload  interface{}
	parent   *Node
	children []*Node
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns the direct children of n, in order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i-th child and true, or nil and false if out of range.
func (n *Node) Child(i int) (*Node, bool) {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// AddChild appends child as the last child of n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.parent = n
	n.children = append(n.children, child)
}

// SetChildAt places child at position i, growing the child slice with nils
// if needed. Used when boxes are constructed out of document order (e.g.
// a marker box inserted before its list-item's principal box).
func (n *Node) SetChildAt(i int, child *Node) {
	if i < 0 {
		return
	}
	for len(n.children) <= i {
		n.children = append(n.children, nil)
	}
	if child != nil {
		child.parent = n
	}
	n.children[i] = child
}

// InsertChildAt inserts child at position i, shifting existing children
// from i onward one slot to the right. Used when a box (e.g. a list-item
// marker) must be prepended to already-built children without disturbing
// their relative order.
func (n *Node) InsertChildAt(i int, child *Node) {
	if i < 0 || child == nil {
		return
	}
	if i > len(n.children) {
		i = len(n.children)
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// IndexOfChild returns the index of child among n's children, or -1.
func (n *Node) IndexOfChild(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// RemoveChild detaches child from the slot it occupies in n's children, if
// present. It only clears child.parent when child is still actually
// parented by n — a caller may have already re-parented child elsewhere
// (e.g. into a wrapper node) before getting around to cleaning up n's
// now-stale slot, and that reassignment must not be undone here.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			if child.parent == n {
				child.parent = nil
			}
			return true
		}
	}
	return false
}

// NextSibling returns the sibling immediately following n, or nil.
func (n *Node) NextSibling() *Node {
	if n == nil || n.parent == nil {
		return nil
	}
	idx := n.parent.IndexOfChild(n)
	if idx < 0 {
		return nil
	}
	if sib, ok := n.parent.Child(idx + 1); ok {
		return sib
	}
	return nil
}

// PrevSibling returns the sibling immediately preceding n, or nil.
func (n *Node) PrevSibling() *Node {
	if n == nil || n.parent == nil {
		return nil
	}
	idx := n.parent.IndexOfChild(n)
	if idx <= 0 {
		return nil
	}
	sib, _ := n.parent.Child(idx - 1)
	return sib
}

// --- Walker -----------------------------------------------------------------

// Action is applied to every node during a walk. It receives the node, its
// parent (nil for the root), and the node's positional index among its
// parent's children, and returns a (possibly different) node to continue
// the walk from plus an error. Returning (nil, nil) prunes descent into
// this node's children (used for "display:none" subtrees).
type Action func(node, parent *Node, childIndex int) (*Node, error)

// Walker drives a single traversal of a tree rooted at root.
type Walker struct {
	root *Node
}

// NewWalker creates a walker for the given root node.
func NewWalker(root *Node) *Walker {
	return &Walker{root: root}
}

// TopDown starts a pre-order (parent before children) traversal, applying
// action to each node. It returns a Future; call Future.Promise() to
// obtain a function that blocks for completion. The walk runs on a
// goroutine of its own, one node at a time, and a caller that calls
// Promise()() straight away sees it as a synchronous walk — this exists so
// that call sites can be written in the promise-based style of the
// teacher's own box-tree builder without any parallel work, which spec.md
// explicitly rules out for layout.
func (w *Walker) TopDown(action Action) *Future {
	f := &Future{}
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		var visited []*Node
		var walk func(node, parent *Node, idx int) error
		walk = func(node, parent *Node, idx int) error {
			if node == nil {
				return nil
			}
			next, err := action(node, parent, idx)
			if err != nil {
				return err
			}
			if next == nil {
				return nil // pruned
			}
			visited = append(visited, next)
			for i, child := range next.Children() {
				if err := walk(child, next, i); err != nil {
					return err
				}
			}
			return nil
		}
		f.err = walk(w.root, nil, 0)
		f.nodes = visited
	}()
	return f
}

// BottomUp starts a post-order (children before parent) traversal.
func (w *Walker) BottomUp(action Action) *Future {
	f := &Future{}
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		var visited []*Node
		var walk func(node, parent *Node, idx int) error
		walk = func(node, parent *Node, idx int) error {
			if node == nil {
				return nil
			}
			for i, child := range node.Children() {
				if err := walk(child, node, i); err != nil {
					return err
				}
			}
			next, err := action(node, parent, idx)
			if err != nil {
				return err
			}
			if next != nil {
				visited = append(visited, next)
			}
			return nil
		}
		f.err = walk(w.root, nil, 0)
		f.nodes = visited
	}()
	return f
}

// Future is the result of an in-flight tree walk.
type Future struct {
	wg    sync.WaitGroup
	nodes []*Node
	err   error
}

// Promise returns a blocking function yielding the walk's visited nodes and
// error, once it completes.
func (f *Future) Promise() func() ([]*Node, error) {
	return func() ([]*Node, error) {
		f.wg.Wait()
		return f.nodes, f.err
	}
}
