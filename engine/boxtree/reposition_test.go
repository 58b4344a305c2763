package boxtree

import (
	"testing"

	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
	"github.com/stretchr/testify/assert"
)

// stylerFor builds a StyleResolver keyed by DOM tree-node identity. Tests in
// this file give every PrincipalBox its own throwaway DOM node purely to
// have something distinct to key on, since there is no real cascade here.
func stylerFor(styles map[*tree.Node]*testStyler) StyleResolver {
	return func(n *tree.Node) Styler {
		if s, ok := styles[n]; ok {
			return s
		}
		return &testStyler{}
	}
}

func newTestBox(mode css.DisplayMode) (*PrincipalBox, *tree.Node) {
	domNode := &tree.Node{}
	return NewPrincipalBox(domNode, mode), domNode
}

func TestReorderBoxTreeMovesFixedBoxToRoot(t *testing.T) {
	root, _ := newTestBox(css.BlockMode)
	section, _ := newTestBox(css.BlockMode)
	fixedBox, fixedDOM := newTestBox(css.BlockMode)
	root.TreeNode().AddChild(section.TreeNode())
	section.TreeNode().AddChild(fixedBox.TreeNode())

	resolveFn := stylerFor(map[*tree.Node]*testStyler{
		fixedDOM: {props: map[string]string{"position": "fixed"}},
	})

	ReorderBoxTree(root, resolveFn)

	assert.Equal(t, 0, section.TreeNode().ChildCount())
	var found bool
	for _, c := range root.TreeNode().Children() {
		if c == fixedBox.TreeNode() {
			found = true
		}
	}
	assert.True(t, found, "fixed box should be reattached directly under root")
}

func TestReorderBoxTreeMovesAbsoluteBoxToPositionedAncestor(t *testing.T) {
	root, _ := newTestBox(css.BlockMode)
	positionedAncestor, posDOM := newTestBox(css.BlockMode)
	middle, _ := newTestBox(css.BlockMode)
	absBox, absDOM := newTestBox(css.BlockMode)
	root.TreeNode().AddChild(positionedAncestor.TreeNode())
	positionedAncestor.TreeNode().AddChild(middle.TreeNode())
	middle.TreeNode().AddChild(absBox.TreeNode())

	resolveFn := stylerFor(map[*tree.Node]*testStyler{
		posDOM: {props: map[string]string{"position": "relative"}},
		absDOM: {props: map[string]string{"position": "absolute"}},
	})

	ReorderBoxTree(root, resolveFn)

	assert.Equal(t, 0, middle.TreeNode().ChildCount())
	var found bool
	for _, c := range positionedAncestor.TreeNode().Children() {
		if c == absBox.TreeNode() {
			found = true
		}
	}
	assert.True(t, found)
}

func TestReorderBoxTreeLeavesStaticBoxesInPlace(t *testing.T) {
	root, _ := newTestBox(css.BlockMode)
	child, _ := newTestBox(css.BlockMode)
	root.TreeNode().AddChild(child.TreeNode())

	resolveFn := stylerFor(map[*tree.Node]*testStyler{})

	ReorderBoxTree(root, resolveFn)

	assert.Equal(t, 1, root.TreeNode().ChildCount())
	first, _ := root.TreeNode().Child(0)
	assert.Same(t, child.TreeNode(), first)
}

func TestReorderBoxTreeMovesFloatToFlowRootAncestor(t *testing.T) {
	root, _ := newTestBox(css.BlockMode)
	flowRoot, _ := newTestBox(css.BlockMode.Set(css.FlowRootMode))
	middle, _ := newTestBox(css.BlockMode)
	floatBox, floatDOM := newTestBox(css.BlockMode)
	root.TreeNode().AddChild(flowRoot.TreeNode())
	flowRoot.TreeNode().AddChild(middle.TreeNode())
	middle.TreeNode().AddChild(floatBox.TreeNode())

	resolveFn := stylerFor(map[*tree.Node]*testStyler{
		floatDOM: {props: map[string]string{"float": "left"}},
	})

	ReorderBoxTree(root, resolveFn)

	assert.Equal(t, 0, middle.TreeNode().ChildCount())
	var found bool
	for _, c := range flowRoot.TreeNode().Children() {
		if c == floatBox.TreeNode() {
			found = true
		}
	}
	assert.True(t, found)
}
