package frame_test

import (
	"testing"

	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/stretchr/testify/assert"
)

func TestBlockContextIsBlock(t *testing.T) {
	c := newFakeContainer()
	ctx := frame.NewBlockContext(c)
	assert.True(t, ctx.IsBlock())
	assert.Same(t, ctx, frame.Block(ctx))
}

func TestInlineContextIsNotBlock(t *testing.T) {
	c := newFakeContainer()
	c.Display = css.InlineMode
	ctx := frame.NewInlineContext(c)
	assert.False(t, ctx.IsBlock())
	assert.Same(t, ctx, frame.Inline(ctx))
}

func TestBlockAssertPanicsOnInlineContext(t *testing.T) {
	c := newFakeContainer()
	c.Display = css.InlineMode
	ctx := frame.NewInlineContext(c)
	assert.Panics(t, func() { frame.Block(ctx) })
}

func TestCreateContextForContainerInline(t *testing.T) {
	c := newFakeContainer()
	c.Display = css.InlineMode
	ctx := frame.CreateContextForContainer(c)
	assert.False(t, ctx.IsBlock())
}

func TestCreateContextForContainerBlock(t *testing.T) {
	c := newFakeContainer()
	c.Display = css.BlockMode
	ctx := frame.CreateContextForContainer(c)
	assert.True(t, ctx.IsBlock())
}

func TestAddLineBoxRejectsBlockChild(t *testing.T) {
	parent := newFakeContainer()
	parent.Display = css.InlineMode
	ctx := frame.NewInlineContext(parent)
	child := newFakeContainer()
	child.Display = css.BlockMode
	assert.Panics(t, func() { ctx.AddLineBox(child) })
}

func TestAddLineBoxAcceptsInlineChild(t *testing.T) {
	parent := newFakeContainer()
	parent.Display = css.InlineMode
	ctx := frame.NewInlineContext(parent)
	child := newFakeContainer()
	child.Display = css.InlineMode
	ctx.AddLineBox(child)
	assert.Equal(t, 1, ctx.ChildCount())
}
