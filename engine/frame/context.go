package frame

import (
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Context establishes a CSS formatting context. Boxes in the normal flow
// belong to one formatting context, which is either block or inline, never
// both (CSS 2.2 §9.2.1).
type Context interface {
	TreeNode() *tree.Node
	IsBlock() bool
}

// ContextBase is embedded by BlockContext and InlineContext.
type ContextBase struct {
	tree.Node
	Container Container
}

// TreeNode returns the formatting context's tree node (contexts live in
// their own parallel tree, paralleling the box tree one level down).
func (ctx *ContextBase) TreeNode() *tree.Node { return &ctx.Node }

// --- Block context -----------------------------------------------------------

// BlockContext establishes a CSS block formatting context: the principal
// box's children stack vertically, one per line, margins between adjacent
// siblings collapse per CSS 2.2 §8.3.1.
type BlockContext struct {
	ContextBase
	Floats FloatList
}

// NewBlockContext creates a block formatting context rooted at c.
func NewBlockContext(c Container) *BlockContext {
	ctx := &BlockContext{}
	ctx.Container = c
	ctx.Payload = ctx
	return ctx
}

// IsBlock always reports true for a BlockContext.
func (ctx *BlockContext) IsBlock() bool { return true }

// Block asserts that ctx is a block formatting context, panicking
// otherwise — used at call sites that structurally cannot be reached with
// the wrong context kind.
func Block(ctx Context) *BlockContext {
	if block, ok := ctx.(*BlockContext); ok {
		return block
	}
	panic("frame: context is not a block context")
}

// AddBox appends c as a new child of this context. An inline-level c is
// appended as it is: AddBox does not wrap it in an anonymous box, it only
// traces the fact (CSS 2.2 §9.2.1.1 wrapping of inline runs is done by
// engine/boxtree's NormalizeAnonymousBoxes).
func (ctx *BlockContext) AddBox(c Container) {
	if c.DisplayMode().Outer() == css.InlineMode {
		T().P("context", "block").Infof("inline child added to block context without anonymous wrapper")
	}
	if ctx.Container.TreeNode().IndexOfChild(c.TreeNode()) >= 0 {
		T().P("context", "block").Errorf("child container cannot have 2 parents")
		panic("frame: container is already a child; cannot have 2 parents")
	}
	ctx.AddChild(c.TreeNode())
}

// AddFloat registers a float with this context's exclusion bookkeeping
// without inserting it into the normal in-flow child list (CSS 2.2
// §9.5: floats are taken out of normal flow).
func (ctx *BlockContext) AddFloat(c Container) {
	ctx.Floats.AppendFloat(c)
}

// --- Inline context ----------------------------------------------------------

// InlineContext establishes a CSS inline formatting context: children lay
// out left-to-right (or per bidi direction) within line boxes built by
// engine/linebreak.
type InlineContext struct {
	ContextBase
}

// NewInlineContext creates an inline formatting context rooted at c.
func NewInlineContext(c Container) *InlineContext {
	ctx := &InlineContext{}
	ctx.Container = c
	ctx.Payload = ctx
	return ctx
}

// IsBlock always reports false for an InlineContext.
func (ctx *InlineContext) IsBlock() bool { return false }

// Inline asserts that ctx is an inline formatting context.
func Inline(ctx Context) *InlineContext {
	if inline, ok := ctx.(*InlineContext); ok {
		return inline
	}
	panic("frame: context is not an inline context")
}

// AddLineBox appends c as a participant of this inline formatting context.
// Only inline-level containers may be added directly; a block-level
// container added here would violate CSS 2.2 §9.2.1 and is a programmer
// error, not a data error — it panics.
func (ctx *InlineContext) AddLineBox(c Container) {
	if c.DisplayMode().Outer() != css.InlineMode {
		T().P("context", "inline").Errorf("attempt to add block-level child to inline context")
		panic("frame: illegal argument for InlineContext.AddLineBox")
	}
	if ctx.Container.TreeNode().IndexOfChild(c.TreeNode()) >= 0 {
		T().P("context", "inline").Errorf("child container cannot have 2 parents")
		panic("frame: container is already a child; cannot have 2 parents")
	}
	ctx.AddChild(c.TreeNode())
}

// --- Factory -----------------------------------------------------------------

// CreateContextForContainer builds the formatting context c's children
// should attach to: inline if c itself is inline-level or has only
// inline-level children so far, block otherwise.
func CreateContextForContainer(c Container) Context {
	mode := c.DisplayMode().BlockOrInline(c.DisplayMode().IsBlock())
	if mode == css.InlineMode {
		return NewInlineContext(c)
	}
	if c.TreeNode().ChildCount() > 0 {
		var modes css.DisplayMode
		for _, ch := range c.TreeNode().Children() {
			if childContainer, ok := ch.Payload.(Container); ok {
				modes = modes.Set(childContainer.DisplayMode().BlockOrInline(childContainer.DisplayMode().IsBlock()))
			}
		}
		if !modes.Contains(css.BlockMode) && modes != 0 {
			return NewInlineContext(c)
		}
	}
	return NewBlockContext(c)
}

// T traces to the engine tracer, in the idiom of the teacher's per-package
// T()/CT() tracer accessors.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
