/*
Package render paints a laid-out box tree onto a page.Surface, following
CSS 2.1 Appendix E's stacking-context paint order: background/border of the
context's own box, negative z-index child contexts, in-flow block-level
descendants, non-positioned floats, in-flow inline-level descendants (line
boxes), positioned descendants with z-index auto/0, then positive z-index
child contexts.

Grounded on original_source/Source/Executables/purc/udom-render.c,
rdrbox-render.c and stacking-context.c for the walk order and on
engine/stacking for the forest structure itself (no teacher equivalent:
tyse never paints, it stops at layout — see engine/stacking's own doc
comment).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package render

import (
	"strconv"

	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/linebreak"
	"github.com/foilterm/foil/engine/page"
	"github.com/foilterm/foil/engine/stacking"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
)

// Paint walks root's laid-out box tree and draws it onto surface, in CSS
// 2.1 Appendix E stacking order. Callers commit the result by calling
// surface.Expose() themselves — Paint only ever fills the in-memory grid,
// mirroring page.Surface's own set-pen/draw/commit split.
func Paint(root *boxtree.PrincipalBox, resolve boxtree.StyleResolver, surface page.Surface) error {
	if root == nil {
		return nil
	}
	forest, reg := buildForest(root, resolve)
	return paintContext(forest.Root, resolve, surface, reg, dimen.Point{})
}

// InvalidateRdrbox repaints the smallest stacking context that encloses
// changed, once engine/udom's incremental-relayout dispatch (spec.md
// §4.3.8) has recomputed its geometry. It walks up to the nearest ancestor
// establishing a stacking context (falling back to root) and repaints that
// whole context, rather than clipping to changed's own border rect: a
// coarser repaint, but a correct one, and page.Surface's only commit
// primitive (Expose) already flushes the entire grid in one pass, so a
// finer clip would not save the caller anything. The caller is still
// responsible for calling surface.Expose() afterward.
func InvalidateRdrbox(changed, root *boxtree.PrincipalBox, resolve boxtree.StyleResolver, surface page.Surface) error {
	if changed == nil || root == nil {
		return nil
	}
	forest, reg := buildForest(root, resolve)
	owner := nearestContextOwner(changed, root, reg)
	ctx := reg.ctxOf[owner]
	if ctx == nil {
		ctx = forest.Root
		owner = root
	}
	if owner == root {
		return paintContext(ctx, resolve, surface, reg, dimen.Point{})
	}
	rootContentOrigin := root.CSSBox().TopL.Add(insetOf(root.CSSBox()))
	origin := parentContentOriginOf(owner, rootContentOrigin, root)
	return paintContext(ctx, resolve, surface, reg, origin)
}

// nearestContextOwner walks up from changed's tree position to the nearest
// PrincipalBox that owns a stacking context in reg, falling back to root.
func nearestContextOwner(changed, root *boxtree.PrincipalBox, reg *stackRegistry) *boxtree.PrincipalBox {
	n := changed.TreeNode()
	for n != nil {
		if pbox, ok := n.Payload.(*boxtree.PrincipalBox); ok {
			if _, owns := reg.ctxOf[pbox]; owns {
				return pbox
			}
			if pbox == root {
				return root
			}
		}
		n = n.Parent()
	}
	return root
}

// stackRegistry records, alongside the stacking.Forest itself, the z-index
// each stacked container was registered under (stacking.Context.PaintOrder
// returns containers in order but without their z-index, so a caller that
// needs to re-split negative from non-negative buckets — paintContext does,
// to interleave steps 2 and 6-7 around the box tree's own steps 3-5 — has
// to keep this side table) and the reverse owner -> Context map
// InvalidateRdrbox needs to find the context enclosing an arbitrary box.
type stackRegistry struct {
	zIndexOf map[frame.Container]int
	ctxOf    map[*boxtree.PrincipalBox]*stacking.Context
}

// buildForest walks root's box tree, creating a nested stacking.Context for
// every PrincipalBox that establishes one (the root itself, and any
// positioned box with a numeric z-index — CSS 2.1 Appendix E), and
// registering every other positioned box (z-index: auto, or unparseable)
// into its nearest ancestor context at the z=0 layer, per the spec's note
// that 'z-index: auto' orders as 'z-index: 0' without establishing a new
// context of its own.
func buildForest(root *boxtree.PrincipalBox, resolve boxtree.StyleResolver) (*stacking.Forest, *stackRegistry) {
	forest := stacking.NewForest(root)
	reg := &stackRegistry{
		zIndexOf: make(map[frame.Container]int),
		ctxOf:    map[*boxtree.PrincipalBox]*stacking.Context{root: forest.Root},
	}
	var walk func(node *tree.Node, ctx *stacking.Context)
	walk = func(node *tree.Node, ctx *stacking.Context) {
		for _, child := range node.Children() {
			pbox, ok := child.Payload.(*boxtree.PrincipalBox)
			if !ok {
				walk(child, ctx)
				continue
			}
			role, z := stackingRoleOf(pbox, resolve)
			switch role {
			case roleNewContext:
				childCtx := stacking.NewContext(pbox)
				reg.ctxOf[pbox] = childCtx
				reg.zIndexOf[pbox] = z
				ctx.AddChildContext(z, childCtx)
				walk(child, childCtx)
			case rolePositioned:
				reg.zIndexOf[pbox] = 0
				ctx.AddStacked(0, pbox)
				walk(child, ctx)
			default:
				walk(child, ctx)
			}
		}
	}
	walk(root.TreeNode(), forest.Root)
	return forest, reg
}

type stackingRole int

const (
	roleNone stackingRole = iota
	rolePositioned
	roleNewContext
)

// stackingRoleOf classifies pbox per CSS 2.1 Appendix E: a positioned box
// (position other than static) with a valid numeric z-index establishes a
// new stacking context keyed by that value; a positioned box with z-index
// auto or no z-index participates in its ancestor context without
// establishing one; anything else plays no role in stacking at all.
func stackingRoleOf(pbox *boxtree.PrincipalBox, resolve boxtree.StyleResolver) (stackingRole, int) {
	style := resolve(pbox.DOMTreeNode())
	if style == nil {
		return roleNone, 0
	}
	switch style.Property("position") {
	case "relative", "absolute", "fixed", "sticky":
	default:
		return roleNone, 0
	}
	z := style.Property("z-index")
	if z == "" || z == "auto" {
		return rolePositioned, 0
	}
	n, err := strconv.Atoi(z)
	if err != nil {
		return rolePositioned, 0
	}
	return roleNewContext, n
}

// paintContext paints one stacking context's full CSS 2.1 Appendix E order:
// ctx.Owner's own background/border, its negative-z-index child contexts,
// the box tree's own in-flow content (block descendants, non-positioned
// floats, inline line boxes — interleaved in document order by
// paintNormalChildren), ctx's z-index auto/0 positioned descendants, and
// finally its positive-z-index child contexts. parentContentOrigin is the
// absolute page coordinate of the content area ctx.Owner's own TopL is
// measured against (dimen.Point{} for the document root, whose TopL is
// already absolute).
func paintContext(ctx *stacking.Context, resolve boxtree.StyleResolver, surface page.Surface, reg *stackRegistry, parentContentOrigin dimen.Point) error {
	owner, ok := ctx.Owner.(*boxtree.PrincipalBox)
	if !ok {
		return nil
	}
	absTopL := parentContentOrigin.Add(owner.CSSBox().TopL)
	paintOwnBox(owner, surface, absTopL)
	ownerContentOrigin := absTopL.Add(insetOf(owner.CSSBox()))

	order := ctx.PaintOrder()
	negative, nonNegative := splitByZ(order, reg.zIndexOf)

	for _, c := range negative {
		if childCtx, ok := reg.ctxOf[c.(*boxtree.PrincipalBox)]; ok {
			if err := paintContext(childCtx, resolve, surface, reg, ownerContentOrigin); err != nil {
				return err
			}
		}
	}

	if err := paintNormalChildren(owner.TreeNode(), owner, resolve, surface, reg, ownerContentOrigin); err != nil {
		return err
	}

	// Step 6: z-index auto/0 positioned descendants — including boxes that
	// establish their own stacking context at z-index 0, which paint their
	// own nested forest via paintContext rather than being flattened.
	for _, c := range nonNegative {
		pbox, ok := c.(*boxtree.PrincipalBox)
		if !ok {
			continue
		}
		childCtx, isNewCtx := reg.ctxOf[pbox]
		if isNewCtx && reg.zIndexOf[pbox] > 0 {
			continue // positive-z contexts paint in step 7 below
		}
		if !isNewCtx {
			childCtx = nil
		}
		if err := paintPositionedDescendant(pbox, childCtx, resolve, surface, reg, owner, ownerContentOrigin); err != nil {
			return err
		}
	}
	// Step 7: positive z-index child contexts, ascending.
	for _, c := range nonNegative {
		pbox, ok := c.(*boxtree.PrincipalBox)
		if !ok {
			continue
		}
		childCtx, isNewCtx := reg.ctxOf[pbox]
		if !isNewCtx || reg.zIndexOf[pbox] <= 0 {
			continue
		}
		if err := paintPositionedDescendant(pbox, childCtx, resolve, surface, reg, owner, ownerContentOrigin); err != nil {
			return err
		}
	}
	return nil
}

// paintPositionedDescendant paints a positioned descendant pbox of ctx's
// owner, recovering its absolute position via parentContentOriginOf since
// it may sit arbitrarily deep below owner in the real tree. When childCtx
// is non-nil, pbox establishes its own nested stacking context and is
// painted through paintContext (so its own stacked descendants still paint
// in the right order); otherwise it is plain positioned content painted
// like any other box.
func paintPositionedDescendant(pbox *boxtree.PrincipalBox, childCtx *stacking.Context, resolve boxtree.StyleResolver, surface page.Surface, reg *stackRegistry, owner *boxtree.PrincipalBox, ownerContentOrigin dimen.Point) error {
	origin := parentContentOriginOf(pbox, ownerContentOrigin, owner)
	if childCtx != nil {
		return paintContext(childCtx, resolve, surface, reg, origin)
	}
	return paintBoxAndNormalChildren(pbox, resolve, surface, reg, origin)
}

// splitByZ re-derives stacking.Context.PaintOrder's negative/non-negative
// split using the side table buildForest populated, since PaintOrder's
// return type carries no per-entry z-index of its own.
func splitByZ(order []frame.Container, zIndexOf map[frame.Container]int) (negative, nonNegative []frame.Container) {
	for _, c := range order {
		if zIndexOf[c] < 0 {
			negative = append(negative, c)
		} else {
			nonNegative = append(nonNegative, c)
		}
	}
	return negative, nonNegative
}

// parentContentOriginOf returns the absolute content origin of box's
// immediate tree parent, given that ancestorOwner's own content origin is
// ancestorContentOrigin. It walks the chain of boxes between box and
// ancestorOwner (exclusive of ancestorOwner, inclusive of box's parent),
// accumulating each one's TopL (parent-content-relative, per
// engine/layout's convention) plus its left/top border+padding inset.
func parentContentOriginOf(box *boxtree.PrincipalBox, ancestorContentOrigin dimen.Point, ancestorOwner *boxtree.PrincipalBox) dimen.Point {
	var chain []*boxtree.PrincipalBox
	n := box.TreeNode().Parent()
	for n != nil {
		pbox, ok := n.Payload.(*boxtree.PrincipalBox)
		if ok {
			chain = append(chain, pbox)
			if pbox == ancestorOwner {
				break
			}
		}
		n = n.Parent()
	}
	origin := ancestorContentOrigin
	for i := len(chain) - 2; i >= 0; i-- {
		origin = origin.Add(chain[i].CSSBox().TopL).Add(insetOf(chain[i].CSSBox()))
	}
	return origin
}

// paintNormalChildren paints node's children in document order, the way
// ordinary (non-positioned, non-floated) flow content paints: recursing
// into principal/anonymous boxes and drawing accumulated line boxes, while
// skipping MarkerBox children (painted separately via paintMarker, since
// nothing ever assigns one layout geometry of its own) and any container
// already registered in reg (painted out of turn, as part of a stacking
// step elsewhere in paintContext).
func paintNormalChildren(node *tree.Node, owner *boxtree.PrincipalBox, resolve boxtree.StyleResolver, surface page.Surface, reg *stackRegistry, contentOrigin dimen.Point) error {
	for _, child := range node.Children() {
		switch box := child.Payload.(type) {
		case *boxtree.PrincipalBox:
			if _, stacked := reg.zIndexOf[box]; stacked {
				continue
			}
			if err := paintContainer(box, resolve, surface, reg, contentOrigin); err != nil {
				return err
			}
		case *boxtree.AnonymousBox:
			if err := paintContainer(box, resolve, surface, reg, contentOrigin); err != nil {
				return err
			}
		case *boxtree.MarkerBox:
			continue
		}
	}
	paintMarkers(node, owner, surface, contentOrigin)
	return nil
}

// paintContainer dispatches to the right paint routine for c's concrete
// box-tree type. contentOrigin is the absolute content-area origin of c's
// parent, the coordinate space c's own CSSBox().TopL is measured against
// (engine/layout's convention — every box's TopL is relative to its
// immediate parent's content-box origin, except the document root, whose
// TopL is already absolute).
func paintContainer(c frame.Container, resolve boxtree.StyleResolver, surface page.Surface, reg *stackRegistry, contentOrigin dimen.Point) error {
	switch box := c.(type) {
	case *boxtree.PrincipalBox:
		return paintBoxAndNormalChildren(box, resolve, surface, reg, contentOrigin)
	case *boxtree.AnonymousBox:
		absTopL := contentOrigin.Add(box.CSSBox().TopL)
		return paintAnonymous(box, resolve, surface, reg, absTopL)
	}
	return nil
}

// paintBoxAndNormalChildren paints pbox's own background/border and
// recurses into its children. parentContentOrigin is the absolute content
// origin of pbox's parent, per paintContainer's doc comment.
func paintBoxAndNormalChildren(pbox *boxtree.PrincipalBox, resolve boxtree.StyleResolver, surface page.Surface, reg *stackRegistry, parentContentOrigin dimen.Point) error {
	absTopL := parentContentOrigin.Add(pbox.CSSBox().TopL)
	paintOwnBox(pbox, surface, absTopL)
	contentOrigin := absTopL.Add(insetOf(pbox.CSSBox()))
	return paintNormalChildren(pbox.TreeNode(), pbox, resolve, surface, reg, contentOrigin)
}

// paintAnonymous paints an anonymous box's accumulated line boxes (it is
// never bordered or backgrounded — CSS 2.2 §9.2.2.1, it never overrides
// style) and recurses into its children, if it wraps block-level ones
// rather than carrying lines of its own.
func paintAnonymous(anon *boxtree.AnonymousBox, resolve boxtree.StyleResolver, surface page.Surface, reg *stackRegistry, absTopL dimen.Point) error {
	if anon.DisplayMode().IsInline() {
		paintLines(anon, surface, absTopL)
		return nil
	}
	return paintNormalChildren(anon.TreeNode(), ownerPrincipalOf(anon.TreeNode()), resolve, surface, reg, absTopL)
}

// ownerPrincipalOf returns the nearest PrincipalBox ancestor of node,
// walking up from node itself — used to re-anchor the "owner" argument
// paintNormalChildren's marker-painting pass needs when recursing through
// an anonymous box wrapping block-level children.
func ownerPrincipalOf(node *tree.Node) *boxtree.PrincipalBox {
	n := node
	for n != nil {
		if pbox, ok := n.Payload.(*boxtree.PrincipalBox); ok {
			return pbox
		}
		n = n.Parent()
	}
	return nil
}

// paintMarkers paints any MarkerBox among node's direct children — list
// markers are inserted by engine/udom's AttachMarker call after
// NormalizeAnonymousBoxes has already run, so they are always an unwrapped
// index-0 child of their owning list-item's principal box rather than
// participating in the type switch paintNormalChildren otherwise drives.
func paintMarkers(node *tree.Node, owner *boxtree.PrincipalBox, surface page.Surface, contentOrigin dimen.Point) {
	for _, child := range node.Children() {
		marker, ok := child.Payload.(*boxtree.MarkerBox)
		if !ok {
			continue
		}
		paintMarker(marker, owner, surface, contentOrigin)
	}
}

// paintMarker draws a list-item's marker text flush against the left edge
// of its owner's content area, spec.md §8 scenario 2's "outside" default
// marker position: "● " rendered starting at column content_rect.left −
// width(marker).
func paintMarker(marker *boxtree.MarkerBox, owner *boxtree.PrincipalBox, surface page.Surface, contentOrigin dimen.Point) {
	width := dimen.DU(linebreak.CellWidth(marker.Content))
	x := contentOrigin.X - width
	var styles *frame.Styling
	if owner != nil {
		styles = owner.StyledBox.Styles
	}
	applyTextStyle(surface, styles)
	surface.DrawString(x, contentOrigin.Y, marker.Content)
}

// paintLines draws every line box anon's inline formatting context
// accumulated, at its own X offset (set by engine/layout when shaping text
// around a float) relative to contentOrigin.
func paintLines(anon *boxtree.AnonymousBox, surface page.Surface, contentOrigin dimen.Point) {
	styles := inheritedStylingOf(anon.TreeNode())
	applyTextStyle(surface, styles)
	for _, ln := range anon.CSSBox().Lines {
		surface.DrawString(contentOrigin.X+ln.X, contentOrigin.Y+ln.Y, ln.Text)
	}
}

// inheritedStylingOf walks up from node looking for the nearest
// PrincipalBox ancestor with resolved Styles, since an AnonymousBox never
// has styling of its own (CSS 2.2 §9.2.2.1) but its text still paints with
// whatever color/text-style its nearest styled ancestor resolved to.
func inheritedStylingOf(node *tree.Node) *frame.Styling {
	n := node
	for n != nil {
		if pbox, ok := n.Payload.(*boxtree.PrincipalBox); ok && pbox.StyledBox.Styles != nil {
			return pbox.StyledBox.Styles
		}
		n = n.Parent()
	}
	return nil
}

// applyTextStyle sets surface's pen to styles' foreground color and text
// attributes, or the page defaults when styles is nil (nothing in the
// ancestor chain set any visual style).
func applyTextStyle(surface page.Surface, styles *frame.Styling) {
	if styles == nil {
		surface.SetForeground(page.DefaultForeground)
		surface.SetTextStyle(frame.TextStyle{})
		return
	}
	fg := styles.Colors.Foreground
	if fg == frame.NoColor {
		fg = page.DefaultForeground
	}
	surface.SetForeground(fg)
	surface.SetTextStyle(styles.Text)
}

// insetOf returns a box's left/top content-edge inset: the sum of its
// left/top padding and border widths, the offset from a box's border-box
// origin to its content-box origin.
func insetOf(box *frame.Box) dimen.Point {
	return dimen.Point{
		X: edgeOf(box.Padding[frame.Left]) + edgeOf(box.BorderWidth[frame.Left]),
		Y: edgeOf(box.Padding[frame.Top]) + edgeOf(box.BorderWidth[frame.Top]),
	}
}

func edgeOf(d css.DimenT) dimen.DU {
	if d.IsAbsolute() {
		return d.Unwrap()
	}
	return dimen.Zero
}
