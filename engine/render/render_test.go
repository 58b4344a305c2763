package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/page"
	"github.com/foilterm/foil/engine/render"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// propStyler is a minimal boxtree.Styler backed by a plain property map,
// enough to drive engine/render's position/z-index classification without
// a real cascade.
type propStyler map[string]string

func (s propStyler) Display() css.DisplayMode  { return css.BlockMode }
func (s propStyler) Property(name string) string { return s[name] }

func resolverFor(byDom map[*tree.Node]boxtree.Styler) boxtree.StyleResolver {
	return func(n *tree.Node) boxtree.Styler {
		if s, ok := byDom[n]; ok {
			return s
		}
		return propStyler{}
	}
}

func bordered(width, height int, style frame.LineStyle) *boxtree.PrincipalBox {
	dom := &tree.Node{}
	pbox := boxtree.NewPrincipalBox(dom, css.BlockMode)
	pbox.CSSBox().FixContentWidth(dimen.DU(width))
	pbox.CSSBox().FixContentHeight(dimen.DU(height))
	for _, edge := range [4]int{frame.Top, frame.Right, frame.Bottom, frame.Left} {
		pbox.CSSBox().BorderWidth[edge] = css.JustDimen(1)
	}
	pbox.StyledBox.Styles = frame.DefaultStyling()
	for i := range pbox.StyledBox.Styles.Borders {
		pbox.StyledBox.Styles.Borders[i].Style = style
	}
	return pbox
}

// TestPaintOverlappingPositionedBoxesPaintsHigherZIndexLast exercises CSS
// 2.1 Appendix E's ordering: two absolutely positioned siblings occupying
// the identical rect, one with z-index -1 and one with z-index 1, must
// leave the higher z-index box's border fully on top — its glyphs are all
// that remain in the grid, since the lower one painted first and was
// completely overwritten.
func TestPaintOverlappingPositionedBoxesPaintsHigherZIndexLast(t *testing.T) {
	rootDom := &tree.Node{}
	root := boxtree.NewPrincipalBox(rootDom, css.BlockMode)
	root.CSSBox().FixContentWidth(6)
	root.CSSBox().FixContentHeight(6)

	behind := bordered(3, 3, frame.LSSolid)
	front := bordered(3, 3, frame.LSDouble)
	root.TreeNode().AddChild(behind.TreeNode())
	root.TreeNode().AddChild(front.TreeNode())

	resolve := resolverFor(map[*tree.Node]boxtree.Styler{
		behind.DOMTreeNode(): propStyler{"position": "absolute", "z-index": "-1"},
		front.DOMTreeNode():  propStyler{"position": "absolute", "z-index": "1"},
	})

	var buf bytes.Buffer
	surface := page.NewGridPage(6, 6, &buf)
	assert.NoError(t, render.Paint(root, resolve, surface))
	assert.NoError(t, surface.Expose())

	out := buf.String()
	assert.Contains(t, out, "╔")
	assert.NotContains(t, out, "┌")
}

// TestPaintMarkerSitsLeftOfContentOrigin checks spec.md §8 scenario 2's
// "outside" default list-item marker position: rendered flush against the
// left edge of its owner's content area, at content_rect.left − its width.
func TestPaintMarkerSitsLeftOfContentOrigin(t *testing.T) {
	rootDom := &tree.Node{}
	root := boxtree.NewPrincipalBox(rootDom, css.BlockMode)
	root.CSSBox().FixContentWidth(10)
	root.CSSBox().FixContentHeight(2)

	li := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	li.CSSBox().TopL = dimen.Point{X: 2, Y: 0}
	li.CSSBox().FixContentWidth(6)
	li.CSSBox().FixContentHeight(1)
	marker := boxtree.NewMarkerBox("* ", li.TreeNode())
	li.TreeNode().InsertChildAt(0, marker.TreeNode())
	root.TreeNode().AddChild(li.TreeNode())

	var buf bytes.Buffer
	surface := page.NewGridPage(10, 2, &buf)
	assert.NoError(t, render.Paint(root, resolverFor(nil), surface))
	assert.NoError(t, surface.Expose())
	assert.Contains(t, buf.String(), "*")
}

// TestInvalidateRdrboxRepaintsEnclosingContext confirms it finds the
// nearest ancestor stacking context (falling back to root) without erroring
// on a plain in-flow tree with no positioned boxes at all.
func TestInvalidateRdrboxRepaintsEnclosingContext(t *testing.T) {
	root := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	root.CSSBox().FixContentWidth(4)
	root.CSSBox().FixContentHeight(4)
	child := boxtree.NewPrincipalBox(&tree.Node{}, css.BlockMode)
	root.TreeNode().AddChild(child.TreeNode())

	var buf bytes.Buffer
	surface := page.NewGridPage(4, 4, &buf)
	err := render.InvalidateRdrbox(child, root, resolverFor(nil), surface)
	assert.NoError(t, err)
}
