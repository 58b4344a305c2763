package boxtree

import (
	"testing"

	"github.com/foilterm/foil/engine/style/counters"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/style/quotes"
	"github.com/stretchr/testify/assert"
)

func TestParseContentLiteralAndQuotes(t *testing.T) {
	tokens := ParseContent(`open-quote "-" close-quote`)
	assert.Len(t, tokens, 3)
	assert.Equal(t, ContentOpenQuote, tokens[0].Kind)
	assert.Equal(t, ContentLiteral, tokens[1].Kind)
	assert.Equal(t, "-", tokens[1].Text)
	assert.Equal(t, ContentCloseQuote, tokens[2].Kind)
}

func TestParseContentNoneAndNormal(t *testing.T) {
	assert.Nil(t, ParseContent("none"))
	assert.Nil(t, ParseContent("normal"))
	assert.Nil(t, ParseContent(""))
}

func TestParseContentCounterCall(t *testing.T) {
	tokens := ParseContent(`counter(section, upper-roman)`)
	assert.Len(t, tokens, 1)
	assert.Equal(t, ContentCounter, tokens[0].Kind)
	assert.Equal(t, "section", tokens[0].Text)
	assert.Equal(t, counters.UpperRoman, tokens[0].Style)
}

func TestParseContentCountersCall(t *testing.T) {
	tokens := ParseContent(`counters(item, ".")`)
	assert.Len(t, tokens, 1)
	assert.Equal(t, ContentCounters, tokens[0].Kind)
	assert.Equal(t, "item", tokens[0].Text)
	assert.Equal(t, ".", tokens[0].Sep)
}

func TestParseContentAttrCall(t *testing.T) {
	tokens := ParseContent(`attr(href)`)
	assert.Len(t, tokens, 1)
	assert.Equal(t, ContentAttr, tokens[0].Kind)
	assert.Equal(t, "href", tokens[0].Text)
}

func TestResolveContentQuoteNesting(t *testing.T) {
	table := quotes.Lookup("en")
	depth := &quotes.Depth{}
	cc := &ContentContext{Quotes: table, Depth: depth}
	tokens := ParseContent(`open-quote`)
	out := ResolveContent(tokens, nil, cc)
	assert.Equal(t, "“", out)
}

func TestResolveContentCounter(t *testing.T) {
	scope := counters.NewScope()
	scope.Reset("section", 0)
	scope.Increment("section", 1)
	cc := &ContentContext{Counters: scope}
	tokens := ParseContent(`counter(section)`)
	out := ResolveContent(tokens, nil, cc)
	assert.Equal(t, "1", out)
}

func TestGeneratePseudoBoxBeforeInsertsFirst(t *testing.T) {
	owner := NewPrincipalBox(nil, css.BlockMode)
	existing := NewPrincipalBox(nil, css.BlockMode)
	owner.TreeNode().AddChild(existing.TreeNode())

	pseudo := GeneratePseudoBox(owner, "before", css.InlineMode, "» ")
	assert.NotNil(t, pseudo)
	assert.True(t, pseudo.IsPseudo())
	assert.Equal(t, "before", pseudo.PseudoKind())

	first, _ := owner.TreeNode().Child(0)
	assert.Same(t, pseudo.TreeNode(), first)
}

func TestGeneratePseudoBoxEmptyContentProducesNothing(t *testing.T) {
	owner := NewPrincipalBox(nil, css.BlockMode)
	pseudo := GeneratePseudoBox(owner, "after", css.InlineMode, "")
	assert.Nil(t, pseudo)
	assert.Equal(t, 0, owner.TreeNode().ChildCount())
}
