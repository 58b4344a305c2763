package boxtree

import (
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// NormalizeAnonymousBoxes enforces CSS 2.2 §9.2.1.1: "if a block
// container box has a block-level box inside it, then we force it to have
// only block-level boxes inside it" — every maximal run of children whose
// outer display mode differs from the majority is wrapped in a single
// AnonymousBox establishing the minority mode. Applied bottom-up so a
// parent's own anonymous-wrapping decision sees its children's final
// (already-normalized) display modes.
//
// The pass is idempotent: an AnonymousBox's own children are already
// homogeneous by construction, and an AnonymousBox left by an earlier pass
// is kept as it is rather than wrapped again, so re-running normalization
// over an already-normalized tree leaves it untouched (see boxtree_test.go).
func NormalizeAnonymousBoxes(root *PrincipalBox) {
	if root == nil {
		return
	}
	tree.NewWalker(root.TreeNode()).BottomUp(func(node, parent *tree.Node, idx int) (*tree.Node, error) {
		if pbox, ok := node.Payload.(*PrincipalBox); ok {
			normalizeChildrenOf(pbox.TreeNode())
		}
		return node, nil
	}).Promise()()
}

func normalizeChildrenOf(parent *tree.Node) {
	children := parent.Children()
	if len(children) < 2 {
		return
	}
	majority := majorityMode(children)
	if majority == css.NoMode {
		return
	}
	var rebuilt []*tree.Node
	i := 0
	for i < len(children) {
		c := children[i]
		if outerModeOf(c) == majority || outerModeOf(c) == css.NoMode || isAnonymous(c) {
			rebuilt = append(rebuilt, c)
			i++
			continue
		}
		// Start of a minority run: collect it and wrap in one anonymous box.
		minority := outerModeOf(c)
		run := []*tree.Node{c}
		j := i + 1
		for j < len(children) && outerModeOf(children[j]) == minority && !isAnonymous(children[j]) {
			run = append(run, children[j])
			j++
		}
		anon := NewAnonymousBox(minority)
		for _, r := range run {
			anon.TreeNode().AddChild(r)
		}
		rebuilt = append(rebuilt, anon.TreeNode())
		i = j
	}
	replaceChildren(parent, rebuilt)
}

// majorityMode returns the block/inline outer mode that most children of
// the run already have, breaking ties toward block (CSS 2.2's default
// "force block-level" direction when a container is itself block-level).
func majorityMode(children []*tree.Node) css.DisplayMode {
	var block, inline int
	for _, c := range children {
		switch outerModeOf(c) {
		case css.BlockMode:
			block++
		case css.InlineMode:
			inline++
		}
	}
	if block == 0 && inline == 0 {
		return css.NoMode
	}
	if block >= inline {
		return css.BlockMode
	}
	return css.InlineMode
}

func outerModeOf(n *tree.Node) css.DisplayMode {
	if n == nil || n.Payload == nil {
		return css.NoMode
	}
	c, ok := n.Payload.(frame.Container)
	if !ok {
		return css.NoMode
	}
	return c.DisplayMode().Outer()
}

// isAnonymous reports whether n holds an AnonymousBox, i.e. a wrapper an
// earlier normalization pass already created.
func isAnonymous(n *tree.Node) bool {
	if n == nil {
		return false
	}
	_, ok := n.Payload.(*AnonymousBox)
	return ok
}

// replaceChildren overwrites parent's child list in place with rebuilt,
// fixing up parent pointers and child indices.
func replaceChildren(parent *tree.Node, rebuilt []*tree.Node) {
	existing := append([]*tree.Node(nil), parent.Children()...)
	for _, n := range existing {
		parent.RemoveChild(n)
	}
	for i, n := range rebuilt {
		parent.SetChildAt(i, n)
		if cb, ok := n.Payload.(*PrincipalBox); ok {
			cb.ChildInx = uint32(i)
		}
	}
}
