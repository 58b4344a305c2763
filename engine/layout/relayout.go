package layout

import (
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/style/css"
)

// Relayout implements spec.md §4.3.8's relayout_rdrtree: re-run width and
// height resolution (and, transitively, the block/line/float passes inside
// them) on the subtree rooted at box, bubbling once to its containing-block
// creator — box's parent principal box — each time box's own border-box
// size changes, until the size stabilizes or the walk reaches root. Callers
// (engine/udom's mutation dispatch) only invoke this for crux-changing
// edits; cosmetic edits re-run pre-layout locally without calling this.
//
// Grounded directly on spec.md §4.3.8's five numbered steps; there is no
// equivalent routine in the teacher (engine/frame/layout/layout.go never
// reaches an incremental-relayout stage), so this reuses this package's own
// ResolveWidth/layoutChildren/ResolveHeight building blocks in the same
// sequence LayoutBlockContainer already establishes.
func Relayout(root, box *boxtree.PrincipalBox, resolve boxtree.StyleResolver) error {
	if root == nil || box == nil {
		return nil
	}

	current := box
	for {
		before := current.CSSBox().BorderBoxRect()
		// A height an earlier layout fixed from content is stale; only a
		// height the style states explicitly is kept.
		if style := resolve(current.DOMTreeNode()); style == nil || style.Property("height") == "" || style.Property("height") == "auto" {
			current.CSSBox().H = css.Dimen()
		}

		if current != root {
			parent, ok := current.TreeNode().Parent().Payload.(*boxtree.PrincipalBox)
			if !ok {
				break
			}
			contentWidth := parent.CSSBox().ContentWidth().Unwrap()
			if err := ResolveWidth(current, contentWidth); err != nil {
				return err
			}
		}

		height, err := layoutChildren(current.TreeNode(), current, resolve, current.CSSBox().ContentWidth().Unwrap())
		if err != nil {
			return err
		}
		ResolveHeight(current, 0, false)
		if !current.CSSBox().H.IsAbsolute() {
			current.CSSBox().FixContentHeight(height)
		}

		after := current.CSSBox().BorderBoxRect()
		if current == root || (after.W == before.W && after.H == before.H) {
			break
		}
		parent, ok := current.TreeNode().Parent().Payload.(*boxtree.PrincipalBox)
		if !ok {
			break
		}
		current = parent
	}

	return LayoutPositionedDescendants(root, resolve)
}
