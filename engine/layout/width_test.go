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

// boxModelSum asserts CSS 2.2's box-model invariant: the full margin box
// of box exactly accounts for the containing block's width.
func boxModelSum(t *testing.T, box *frame.Box, containingWidth int) {
	t.Helper()
	actual := box.Margins[frame.Left].Unwrap() +
		box.BorderWidth[frame.Left].Unwrap() +
		box.Padding[frame.Left].Unwrap() +
		box.ContentWidth().Unwrap() +
		box.Padding[frame.Right].Unwrap() +
		box.BorderWidth[frame.Right].Unwrap() +
		box.Margins[frame.Right].Unwrap()
	assert.Equal(t, containingWidth, int(actual))
}

func TestResolveWidthSplitsAutoMarginsEqually(t *testing.T) {
	box := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	cssBox := box.CSSBox()
	cssBox.W = css.JustDimen(10)
	cssBox.Margins[frame.Left] = css.Auto()
	cssBox.Margins[frame.Right] = css.Auto()

	err := layout.ResolveWidth(box, 30)
	assert.NoError(t, err)
	assert.Equal(t, 10, int(cssBox.Margins[frame.Left].Unwrap()))
	assert.Equal(t, 10, int(cssBox.Margins[frame.Right].Unwrap()))
	boxModelSum(t, cssBox, 30)
}

func TestResolveWidthSplitsOddRemainderRoundingLeftDown(t *testing.T) {
	box := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	cssBox := box.CSSBox()
	cssBox.W = css.JustDimen(9)
	cssBox.Margins[frame.Left] = css.Auto()
	cssBox.Margins[frame.Right] = css.Auto()

	err := layout.ResolveWidth(box, 30)
	assert.NoError(t, err)
	assert.Equal(t, 10, int(cssBox.Margins[frame.Left].Unwrap()))
	assert.Equal(t, 11, int(cssBox.Margins[frame.Right].Unwrap()))
	boxModelSum(t, cssBox, 30)
}

func TestResolveWidthGivesRemainderToSoleAutoMargin(t *testing.T) {
	box := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	cssBox := box.CSSBox()
	cssBox.W = css.JustDimen(10)
	cssBox.Margins[frame.Left] = css.Auto()
	cssBox.Margins[frame.Right] = css.JustDimen(4)

	err := layout.ResolveWidth(box, 30)
	assert.NoError(t, err)
	assert.Equal(t, 16, int(cssBox.Margins[frame.Left].Unwrap()))
	assert.Equal(t, 4, int(cssBox.Margins[frame.Right].Unwrap()))
	boxModelSum(t, cssBox, 30)
}

func TestResolveWidthOverConstrainedFarMarginAbsorbsRemainder(t *testing.T) {
	box := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	cssBox := box.CSSBox()
	cssBox.W = css.JustDimen(10)
	cssBox.Margins[frame.Left] = css.JustDimen(5)
	cssBox.Margins[frame.Right] = css.JustDimen(5) // 10+5+5=20, but containing block is 30

	err := layout.ResolveWidth(box, 30)
	assert.NoError(t, err)
	assert.Equal(t, 5, int(cssBox.Margins[frame.Left].Unwrap()))
	assert.Equal(t, 15, int(cssBox.Margins[frame.Right].Unwrap()))
	boxModelSum(t, cssBox, 30)
}

func TestResolveWidthAutoWidthZeroesAutoMargins(t *testing.T) {
	box := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	cssBox := box.CSSBox()
	cssBox.Margins[frame.Left] = css.Auto()
	cssBox.Margins[frame.Right] = css.Auto()

	err := layout.ResolveWidth(box, 30)
	assert.NoError(t, err)
	assert.Equal(t, 0, int(cssBox.Margins[frame.Left].Unwrap()))
	assert.Equal(t, 0, int(cssBox.Margins[frame.Right].Unwrap()))
	assert.Equal(t, 30, int(cssBox.ContentWidth().Unwrap()))
	boxModelSum(t, cssBox, 30)
}
