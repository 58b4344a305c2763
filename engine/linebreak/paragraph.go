package linebreak

import (
	"strings"

	"github.com/npillmayer/cords"
	sty "github.com/npillmayer/cords/styled"

	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/tree"
)

// StyleTag carries the originating box for a run of paragraph text, so a
// line's runs can be painted with the right box's resolved colors/text
// decoration. A zero StyleTag (Box == nil) means "inherit the paragraph's
// own default style" — the case for text synthesized outside any box, such
// as a list-item separator.
type StyleTag struct {
	Box *boxtree.PrincipalBox
}

// String is part of cords/styled.Style.
func (s StyleTag) String() string { return "" }

// Equals is part of cords/styled.Style.
func (s StyleTag) Equals(other sty.Style) bool {
	o, ok := other.(StyleTag)
	return ok && o.Box == s.Box
}

var _ sty.Style = StyleTag{}

// textLeaf is the cords.Leaf implementation backing a Paragraph's rope: one
// leaf per contiguous run of same-origin text, mirroring the teacher's
// pLeaf but without a W3C DOM dependency, since foil's box tree is its own
// node type.
type textLeaf struct {
	content string
}

func (l textLeaf) Weight() uint64 { return uint64(len(l.content)) }
func (l textLeaf) String() string { return l.content }

func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return textLeaf{content: l.content[:i]}, textLeaf{content: l.content[i:]}
}

func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = textLeaf{}

// Run is one same-style span of a Paragraph's text.
type Run struct {
	Text  string
	Style StyleTag
}

// Paragraph is a rope of runes ready for UAX#14 line breaking, built up
// from the TextBox leaves a box-tree walk collects (engine/boxtree's
// inline-level content), analogous to the teacher's styled.Paragraph but
// sourced from foil's box tree instead of a raw W3C DOM subtree.
type Paragraph struct {
	text *sty.Text
	raw  string
}

// NewParagraph builds a Paragraph from an ordered sequence of styled runs.
func NewParagraph(runs []Run) *Paragraph {
	b := cords.NewBuilder()
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		b.Append(textLeaf{content: r.Text})
	}
	cord := b.Cord()
	text := sty.TextFromCord(cord)

	var raw strings.Builder
	var pos uint64
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		w := uint64(len(r.Text))
		text.Style(r.Style, pos, pos+w)
		raw.WriteString(r.Text)
		pos += w
	}
	return &Paragraph{text: text, raw: raw.String()}
}

// ParagraphFromString builds a single-style Paragraph from plain text, the
// common case for synthesized content (pseudo-element text, list markers)
// that carries no box of its own.
func ParagraphFromString(s string) *Paragraph {
	return NewParagraph([]Run{{Text: s}})
}

// CollectParagraph walks a box-tree subtree in document order and collects
// every TextBox descendant into one Paragraph, stopping at nested
// block-level boxes — mirroring the teacher's collectBoxText/
// paragraphTextFromBox split between inline content and new block
// formatting contexts (engine/frame/inline/paragraph.go), minus the
// bidi-run bookkeeping that function interleaves: foil only carries
// `direction`/`unicode_bidi` as plumbing (spec.md's bidi Non-goal), so
// there is no embedding-level computation to do here.
//
// root is the tree node to start from — a PrincipalBox's own node, or an
// AnonymousBox's node wrapping a run of inline-level siblings owner does
// not itself establish (CSS 2.2 §9.2.2.1: an anonymous box has no style of
// its own). owner is the PrincipalBox text runs directly under root
// inherit their StyleTag from; it is updated while descending into a
// nested PrincipalBox, and left unchanged while descending into a nested
// AnonymousBox.
func CollectParagraph(root *tree.Node, owner *boxtree.PrincipalBox) *Paragraph {
	var runs []Run
	var walk func(node *tree.Node, owner *boxtree.PrincipalBox)
	walk = func(node *tree.Node, owner *boxtree.PrincipalBox) {
		for _, child := range node.Children() {
			switch box := child.Payload.(type) {
			case *boxtree.TextBox:
				runs = append(runs, Run{Text: box.Text, Style: StyleTag{Box: owner}})
			case *boxtree.PrincipalBox:
				if box.DisplayMode().IsInline() {
					walk(child, box)
				}
				// Block-level descendants start their own paragraph elsewhere;
				// a line-breaking pass never reaches across a block boundary.
			case *boxtree.AnonymousBox:
				if box.DisplayMode().IsInline() {
					walk(child, owner)
				}
			}
		}
	}
	walk(root, owner)
	return NewParagraph(runs)
}

// String returns the paragraph's full plain text.
func (p *Paragraph) String() string { return p.raw }

// Len returns the paragraph's length in bytes.
func (p *Paragraph) Len() int { return len(p.raw) }

// EachRun applies f to every maximal same-style run in the paragraph.
func (p *Paragraph) EachRun(f func(Run) error) error {
	return p.text.EachStyleRun(func(content string, style sty.Style, pos uint64) error {
		tag, _ := style.(StyleTag)
		return f(Run{Text: content, Style: tag})
	})
}

// StyleAt returns the style in effect at byte position pos.
func (p *Paragraph) StyleAt(pos int) StyleTag {
	s, _, err := p.text.StyleAt(uint64(pos))
	if err != nil {
		return StyleTag{}
	}
	tag, _ := s.(StyleTag)
	return tag
}
