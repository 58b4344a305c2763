package frame_test

import (
	"testing"

	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/frame"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/stretchr/testify/assert"
)

type fakeContainer struct {
	frame.ContainerBase
}

func (f *fakeContainer) Type() frame.ContainerType { return frame.TypePrincipal }
func (f *fakeContainer) DOMNode() *dom.W3Node       { return nil }
func (f *fakeContainer) CSSBox() *frame.Box         { return &frame.Box{} }

func newFakeContainer() *fakeContainer {
	c := &fakeContainer{}
	c.Payload = c
	c.Display = css.BlockMode
	return c
}

func TestFloatListAppendContainsRemove(t *testing.T) {
	var l frame.FloatList
	c := newFakeContainer()
	assert.False(t, l.Contains(c))
	l.AppendFloat(c)
	assert.True(t, l.Contains(c))
	assert.Len(t, l.Floats(), 1)
	assert.True(t, l.Remove(c))
	assert.False(t, l.Contains(c))
}
