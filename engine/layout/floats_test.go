package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/layout"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

type floatPropStyler struct{ float string }

func (s floatPropStyler) Display() css.DisplayMode { return css.BlockMode }
func (s floatPropStyler) Property(name string) string {
	if name == "float" {
		return s.float
	}
	return ""
}

func TestLayoutFloatsPlacesLeftAndRightFloats(t *testing.T) {
	root := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	left := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	right := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	left.CSSBox().W = css.JustDimen(3)
	left.CSSBox().H = css.JustDimen(2)
	right.CSSBox().W = css.JustDimen(4)
	right.CSSBox().H = css.JustDimen(2)

	ctx := frame.NewBlockContext(root)
	ctx.AddFloat(left)
	ctx.AddFloat(right)
	root.SetContext(ctx)

	resolve := func(n *tree.Node) boxtree.Styler {
		if n == left.DOMTreeNode() {
			return floatPropStyler{float: "left"}
		}
		return floatPropStyler{float: "right"}
	}

	region, err := layout.LayoutFloats(root, resolve, 20, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, int(left.CSSBox().TopL.X))
	assert.Equal(t, 16, int(right.CSSBox().TopL.X)) // 20 - width 4
	assert.NotNil(t, region)
}

func TestLayoutFloatsNoBlockContextReturnsFullRegion(t *testing.T) {
	root := boxtree.NewPrincipalBox(&tree.Node{}, css.InlineMode)
	ctx := frame.NewInlineContext(root)
	root.SetContext(ctx)

	region, err := layout.LayoutFloats(root, func(n *tree.Node) boxtree.Styler { return nil }, 20, 10)
	assert.NoError(t, err)
	assert.False(t, region.Empty())
}
