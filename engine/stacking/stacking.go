/*
Package stacking implements CSS 2.1 Appendix E stacking contexts: a forest
parallel to the box tree, where every box that establishes a new stacking
context (the root, positioned boxes with a z-index other than auto, and a
few other triggers spec.md §3.4 enumerates) becomes a node, and its
stacked children are kept in a z-index-ordered multimap so painting can
walk them back-to-front without a sort at render time.

No equivalent exists in the teacher codebase (tyse never implements
compositing/paint order — it stops at layout); this package follows
spec.md's own description of the algorithm, using the teacher's general
box-tree idiom (tree.Node-embedding, gtrace tracer accessor) and the rest
of the example pack's sorted-map library.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package stacking

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/tree"
)

// Context is one node of the stacking-context forest: the Container that
// established it, plus every stacked child keyed by z-index.
type Context struct {
	tree.Node
	Owner    frame.Container
	byZIndex *treemap.Map // int -> []frame.Container, ascending key order
}

// NewContext creates a stacking context rooted at owner.
func NewContext(owner frame.Container) *Context {
	ctx := &Context{
		Owner:    owner,
		byZIndex: treemap.NewWith(utils.IntComparator),
	}
	ctx.Payload = ctx
	return ctx
}

// NodeContext recovers the stacking Context payload of a generic tree node.
func NodeContext(n *tree.Node) *Context {
	if n == nil {
		return nil
	}
	c, _ := n.Payload.(*Context)
	return c
}

// AddStacked registers a positioned descendant at the given z-index. Boxes
// added at the same z-index are kept in the order they were added, which
// callers must drive in tree (document) order — CSS 2.1 Appendix E's
// tiebreaker for same-z-index siblings.
func (ctx *Context) AddStacked(zIndex int, c frame.Container) {
	var bucket []frame.Container
	if v, ok := ctx.byZIndex.Get(zIndex); ok {
		bucket = v.([]frame.Container)
	}
	bucket = append(bucket, c)
	ctx.byZIndex.Put(zIndex, bucket)
}

// AddChildContext attaches a nested stacking context as a child of ctx in
// the forest, keyed by the z-index its owner was given.
func (ctx *Context) AddChildContext(zIndex int, child *Context) {
	ctx.AddChild(&child.Node)
	ctx.AddStacked(zIndex, child.Owner)
}

// PaintOrder returns ctx's stacked descendants in CSS 2.1 Appendix E order:
// negative z-index entries first (ascending), then z-index 0 and positive
// entries (ascending), same-z-index entries in the order they were added.
// The owner's own in-flow content (layers 3-5) is not part of the result:
// the box tree paints it, between the negative and the non-negative group.
// A positioned box with 'z-index: auto' orders as 'z-index: 0' without
// establishing a new context itself, so callers register it at z-index 0.
func (ctx *Context) PaintOrder() []frame.Container {
	var negative, nonNegative []frame.Container
	it := ctx.byZIndex.Iterator()
	for it.Next() {
		z := it.Key().(int)
		bucket := it.Value().([]frame.Container)
		if z < 0 {
			negative = append(negative, bucket...)
		} else {
			nonNegative = append(nonNegative, bucket...)
		}
	}
	order := make([]frame.Container, 0, len(negative)+len(nonNegative))
	order = append(order, negative...)
	order = append(order, nonNegative...)
	return order
}

// Forest roots a stacking-context tree at the document's initial
// containing block, which always establishes the outermost context
// (CSS 2.1 Appendix E, "the root element").
type Forest struct {
	Root *Context
}

// NewForest creates a forest rooted at owner (the document root box).
func NewForest(owner frame.Container) *Forest {
	return &Forest{Root: NewContext(owner)}
}

// Walker returns a tree.Walker over the forest, for traversals that need
// the generic tree machinery (e.g. dumping the forest for diagnostics).
func (f *Forest) Walker() *tree.Walker {
	return tree.NewWalker(&f.Root.Node)
}
