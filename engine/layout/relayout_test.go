package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/layout"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// TestRelayoutGrowsAncestorWhenChildHeightChanges exercises spec.md §4.3.8's
// bubble-until-stable rule: growing a leaf's content height must grow every
// ancestor whose own height was derived from it, all the way to root.
func TestRelayoutGrowsAncestorWhenChildHeightChanges(t *testing.T) {
	root := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	child := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	root.TreeNode().AddChild(child.TreeNode())

	viewport := dimen.Rect{W: 40, H: 24}
	assert.NoError(t, layout.Layout(root, flowResolver(), viewport))
	assert.Equal(t, 0, int(root.CSSBox().ContentHeight().Unwrap()))

	grandchild := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	grandchild.CSSBox().FixContentHeight(5)
	child.TreeNode().AddChild(grandchild.TreeNode())

	assert.NoError(t, layout.Relayout(root, child, flowResolver()))
	assert.Equal(t, 5, int(child.CSSBox().ContentHeight().Unwrap()))
	assert.Equal(t, 5, int(root.CSSBox().ContentHeight().Unwrap()))
}

// TestRelayoutStopsWhenSizeIsUnchanged confirms a no-op mutation does not
// bubble at all (the common case: most edits never reach the root).
func TestRelayoutStopsWhenSizeIsUnchanged(t *testing.T) {
	root := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	child := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	root.TreeNode().AddChild(child.TreeNode())

	viewport := dimen.Rect{W: 40, H: 24}
	assert.NoError(t, layout.Layout(root, flowResolver(), viewport))
	assert.NoError(t, layout.Relayout(root, child, flowResolver()))
	assert.Equal(t, 40, int(child.CSSBox().ContentWidth().Unwrap()))
}
