package boxtree

import (
	"testing"

	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
	"github.com/stretchr/testify/assert"
)

func TestMajorityModeTiesTowardBlock(t *testing.T) {
	block := NewPrincipalBox(nil, css.BlockMode)
	inline := NewPrincipalBox(nil, css.InlineMode)
	mode := majorityMode([]*tree.Node{block.TreeNode(), inline.TreeNode()})
	assert.Equal(t, css.BlockMode, mode)
}

func TestMajorityModeEmptyIsNoMode(t *testing.T) {
	textOnly := NewTextBox(nil, "x")
	// A lone text box is inline, not NoMode, but a node with no payload is.
	bare := &tree.Node{}
	mode := majorityMode([]*tree.Node{bare})
	assert.Equal(t, css.NoMode, mode)
	assert.Equal(t, css.InlineMode, outerModeOf(textOnly.TreeNode()))
}

func TestNormalizeChildrenOfWrapsMinorityRun(t *testing.T) {
	parent := NewPrincipalBox(nil, css.BlockMode)
	block1 := NewPrincipalBox(nil, css.BlockMode)
	inlineChild := NewPrincipalBox(nil, css.InlineMode)
	block2 := NewPrincipalBox(nil, css.BlockMode)
	parent.TreeNode().AddChild(block1.TreeNode())
	parent.TreeNode().AddChild(inlineChild.TreeNode())
	parent.TreeNode().AddChild(block2.TreeNode())

	normalizeChildrenOf(parent.TreeNode())

	children := parent.TreeNode().Children()
	assert.Len(t, children, 3)
	_, isAnon := children[1].Payload.(*AnonymousBox)
	assert.True(t, isAnon, "the lone inline child should be wrapped in an anonymous box")
	assert.Equal(t, 1, children[1].ChildCount())
}

func TestNormalizeChildrenOfLeavesHomogeneousRunsAlone(t *testing.T) {
	parent := NewPrincipalBox(nil, css.BlockMode)
	a := NewPrincipalBox(nil, css.BlockMode)
	b := NewPrincipalBox(nil, css.BlockMode)
	parent.TreeNode().AddChild(a.TreeNode())
	parent.TreeNode().AddChild(b.TreeNode())

	normalizeChildrenOf(parent.TreeNode())

	children := parent.TreeNode().Children()
	assert.Len(t, children, 2)
	assert.Same(t, a.TreeNode(), children[0])
	assert.Same(t, b.TreeNode(), children[1])
}
