package udom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/layout"
	"github.com/foilterm/foil/engine/render"
	"github.com/foilterm/foil/engine/tree"
)

// cruxProperties are the declarations original_source/.../udom.c's
// compare_and_update_properties classifies as "crux-changing": anything
// that can move a box's edges, change what formatting context it
// establishes, or change whether it participates in layout at all. Any
// other property is cosmetic — a repaint-only change per spec.md §4.3.8.
var cruxProperties = map[string]bool{
	"width": true, "height": true, "min-width": true, "min-height": true,
	"max-width": true, "max-height": true,
	"margin-top": true, "margin-right": true, "margin-bottom": true, "margin-left": true,
	"margin": true,
	"padding-top": true, "padding-right": true, "padding-bottom": true, "padding-left": true,
	"padding": true,
	"border-top-width": true, "border-right-width": true, "border-bottom-width": true, "border-left-width": true,
	"border-width": true, "border": true,
	"display": true, "position": true, "float": true, "clear": true,
	"top": true, "right": true, "bottom": true, "left": true,
	"box-sizing": true, "white-space": true, "overflow": true,
}

// ErrNodeNotFound is returned by SetProperty/SetAttribute when ref is not
// (or no longer) part of u's DOM tree.
var ErrNodeNotFound = errors.New("udom: node not found in document")

// SetProperty is UpdateRdrbox's CSS-property entry point (spec.md §6): it
// rewrites ref's inline `style` declaration for property, invalidates the
// cached computed style for ref and its descendants, and re-renders —
// running a full Relayout when property is crux-changing, or only
// repainting ref's rendered subtree otherwise.
func (u *UDOM) SetProperty(ref *tree.Node, property, value string) error {
	w := dom.Node(ref)
	if w == nil {
		return ErrNodeNotFound
	}
	style, _ := w.Attr("style")
	w.SetAttr("style", mergeStyleDeclaration(style, property, value))
	u.styles.invalidate(ref)

	box := findBoxFor(u.Root, ref)
	if box == nil {
		return nil // not part of the rendered box tree (e.g. a display:none ancestor) — nothing to redraw
	}
	if cruxProperties[property] {
		if err := layout.Relayout(u.Root, box, u.Resolve); err != nil {
			return fmt.Errorf("udom: relayout after setting %s: %w", property, err)
		}
		if err := render.Paint(u.Root, u.Resolve, u.Surface); err != nil {
			return err
		}
		return u.Surface.Expose()
	}
	if err := render.InvalidateRdrbox(box, u.Root, u.Resolve, u.Surface); err != nil {
		return err
	}
	return u.Surface.Expose()
}

// SetAttribute rewrites a non-style attribute on ref (e.g. `class`, `id`,
// `lang`) and re-evaluates the cascade and box tree from scratch — an
// attribute used in a selector can change which rules match, which this
// module does not attempt to diff incrementally, unlike a single property
// write's narrower crux/cosmetic split.
func (u *UDOM) SetAttribute(ref *tree.Node, name, value string) (Status, error) {
	w := dom.Node(ref)
	if w == nil {
		return StatusInsufficientStorage, ErrNodeNotFound
	}
	w.SetAttr(name, value)
	u.styles.invalidate(u.DOMRoot)

	root, err := boxtree.BuildBoxTree(u.DOMRoot, u.Resolve)
	if err != nil {
		if errors.Is(err, boxtree.ErrNoBoxTreeCreated) {
			return StatusNoContent, nil
		}
		return StatusInsufficientStorage, err
	}
	attachGeneratedContent(root, u.Resolve)
	boxtree.NormalizeAnonymousBoxes(root)
	if err := layout.Layout(root, u.Resolve, u.Viewport); err != nil {
		return StatusInsufficientStorage, err
	}
	u.Root = root
	if err := u.Redraw(); err != nil {
		return StatusInsufficientStorage, err
	}
	return StatusOK, nil
}

// mergeStyleDeclaration returns style with property set to value, replacing
// any existing declaration for the same property (a bare string edit, since
// the inline style attribute is itself just CSS declaration-list text).
func mergeStyleDeclaration(style, property, value string) string {
	var kept []string
	found := false
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := strings.IndexByte(part, ':')
		if i < 0 {
			kept = append(kept, part)
			continue
		}
		name := strings.TrimSpace(part[:i])
		if name == property {
			found = true
			kept = append(kept, property+": "+value)
			continue
		}
		kept = append(kept, part)
	}
	if !found {
		kept = append(kept, property+": "+value)
	}
	return strings.Join(kept, "; ")
}

// findBoxFor returns the principal box generated for domNode, or nil if
// domNode's subtree computed to display:none (so it has no box) or domNode
// is a pseudo-element's owner rather than a real DOM node.
func findBoxFor(root *boxtree.PrincipalBox, domNode *tree.Node) *boxtree.PrincipalBox {
	if root == nil {
		return nil
	}
	var found *boxtree.PrincipalBox
	walker := tree.NewWalker(root.TreeNode())
	action := func(node, parent *tree.Node, childIndex int) (*tree.Node, error) {
		if pbox, ok := node.Payload.(*boxtree.PrincipalBox); ok {
			if pbox.DOMTreeNode() == domNode && !pbox.IsPseudo() {
				found = pbox
			}
		}
		return node, nil
	}
	walker.TopDown(action).Promise()()
	return found
}
