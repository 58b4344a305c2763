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

func TestLayoutResolvesSimpleTree(t *testing.T) {
	root := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	child := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	root.TreeNode().AddChild(child.TreeNode())

	viewport := dimen.Rect{W: 40, H: 24}
	err := layout.Layout(root, flowResolver(), viewport)
	assert.NoError(t, err)
	assert.Equal(t, 40, int(root.CSSBox().ContentWidth().Unwrap()))
	assert.Equal(t, 40, int(child.CSSBox().ContentWidth().Unwrap()))
}
