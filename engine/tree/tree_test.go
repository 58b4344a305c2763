package tree_test

import (
	"testing"

	"github.com/foilterm/foil/engine/tree"
	"github.com/stretchr/testify/assert"
)

func TestAddChildAndParent(t *testing.T) {
	root := &tree.Node{}
	child := &tree.Node{}
	root.AddChild(child)
	assert.Equal(t, root, child.Parent())
	assert.Equal(t, 1, root.ChildCount())
}

func TestSetChildAtGrowsSlice(t *testing.T) {
	root := &tree.Node{}
	marker := &tree.Node{Payload: "marker"}
	root.SetChildAt(1, marker)
	assert.Equal(t, 2, root.ChildCount())
	got, ok := root.Child(1)
	assert.True(t, ok)
	assert.Equal(t, "marker", got.Payload)
	missing, ok := root.Child(0)
	assert.True(t, ok)
	assert.Nil(t, missing)
}

func TestIndexOfChildAndSiblings(t *testing.T) {
	root := &tree.Node{}
	a, b, c := &tree.Node{}, &tree.Node{}, &tree.Node{}
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)
	assert.Equal(t, 1, root.IndexOfChild(b))
	assert.Equal(t, c, b.NextSibling())
	assert.Equal(t, a, b.PrevSibling())
	assert.Nil(t, a.PrevSibling())
	assert.Nil(t, c.NextSibling())
}

func TestTopDownVisitsParentBeforeChildren(t *testing.T) {
	root := &tree.Node{Payload: "root"}
	child := &tree.Node{Payload: "child"}
	root.AddChild(child)
	var order []string
	walker := tree.NewWalker(root)
	future := walker.TopDown(func(n, parent *tree.Node, idx int) (*tree.Node, error) {
		order = append(order, n.Payload.(string))
		return n, nil
	}).Promise()
	visited, err := future()
	assert.NoError(t, err)
	assert.Equal(t, []string{"root", "child"}, order)
	assert.Len(t, visited, 2)
}

func TestTopDownPruneOnNilReturn(t *testing.T) {
	root := &tree.Node{Payload: "root"}
	hidden := &tree.Node{Payload: "display:none"}
	visible := &tree.Node{Payload: "visible-child"}
	hidden.AddChild(visible)
	root.AddChild(hidden)
	var order []string
	walker := tree.NewWalker(root)
	future := walker.TopDown(func(n, parent *tree.Node, idx int) (*tree.Node, error) {
		if n.Payload == "display:none" {
			return nil, nil
		}
		order = append(order, n.Payload.(string))
		return n, nil
	}).Promise()
	_, err := future()
	assert.NoError(t, err)
	assert.Equal(t, []string{"root"}, order)
}

func TestInsertChildAtShiftsRight(t *testing.T) {
	root := &tree.Node{}
	a, b := &tree.Node{Payload: "a"}, &tree.Node{Payload: "b"}
	root.AddChild(a)
	root.AddChild(b)
	marker := &tree.Node{Payload: "marker"}
	root.InsertChildAt(0, marker)
	assert.Equal(t, 3, root.ChildCount())
	first, _ := root.Child(0)
	second, _ := root.Child(1)
	third, _ := root.Child(2)
	assert.Equal(t, "marker", first.Payload)
	assert.Equal(t, "a", second.Payload)
	assert.Equal(t, "b", third.Payload)
}

func TestRemoveChild(t *testing.T) {
	root := &tree.Node{}
	child := &tree.Node{}
	root.AddChild(child)
	assert.True(t, root.RemoveChild(child))
	assert.Equal(t, 0, root.ChildCount())
	assert.Nil(t, child.Parent())
}

func TestRemoveChildDoesNotClobberReparentedChild(t *testing.T) {
	oldParent := &tree.Node{}
	newParent := &tree.Node{}
	child := &tree.Node{}
	oldParent.AddChild(child)
	newParent.AddChild(child) // child.parent is now newParent; oldParent's slot is stale
	oldParent.RemoveChild(child)
	assert.Equal(t, newParent, child.Parent())
}
