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

type offsetStyler struct{ props map[string]string }

func (s offsetStyler) Display() css.DisplayMode { return css.BlockMode }
func (s offsetStyler) Property(name string) string { return s.props[name] }

func TestResolvePositionedUsesLeftTopOffsets(t *testing.T) {
	box := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	box.CSSBox().W = css.JustDimen(5)
	style := offsetStyler{props: map[string]string{"position": "absolute", "left": "2", "top": "3"}}
	resolve := func(n *tree.Node) boxtree.Styler { return style }

	containingBlock := dimen.Rect{TopL: dimen.Point{X: 10, Y: 10}, W: 30, H: 20}
	err := layout.ResolvePositioned(box, resolve, containingBlock)
	assert.NoError(t, err)
	assert.Equal(t, 12, int(box.CSSBox().TopL.X))
	assert.Equal(t, 13, int(box.CSSBox().TopL.Y))
}

func TestResolvePositionedUsesRightBottomWhenLeftTopAuto(t *testing.T) {
	box := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	box.CSSBox().W = css.JustDimen(5)
	style := offsetStyler{props: map[string]string{"position": "absolute", "right": "2", "bottom": "1"}}
	resolve := func(n *tree.Node) boxtree.Styler { return style }

	containingBlock := dimen.Rect{TopL: dimen.Point{X: 0, Y: 0}, W: 30, H: 20}
	err := layout.ResolvePositioned(box, resolve, containingBlock)
	assert.NoError(t, err)
	assert.Equal(t, 23, int(box.CSSBox().TopL.X)) // 30 - 2 - 5
	assert.Equal(t, 19, int(box.CSSBox().TopL.Y)) // 20 - 1
}

func TestLayoutPositionedDescendantsSkipsStaticBoxes(t *testing.T) {
	root := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	child := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	root.TreeNode().AddChild(child.TreeNode())
	root.CSSBox().W = css.JustDimen(30)
	root.CSSBox().H = css.JustDimen(20)

	static := offsetStyler{props: map[string]string{"position": "static"}}
	resolve := func(n *tree.Node) boxtree.Styler { return static }

	err := layout.LayoutPositionedDescendants(root, resolve)
	assert.NoError(t, err)
	assert.Equal(t, 0, int(child.CSSBox().TopL.X))
	assert.Equal(t, 0, int(child.CSSBox().TopL.Y))
}
