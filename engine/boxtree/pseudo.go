package boxtree

import (
	"strings"

	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/style/counters"
	"github.com/foilterm/foil/engine/style/css"
	"github.com/foilterm/foil/engine/style/quotes"
	"github.com/foilterm/foil/engine/tree"
)

// ContentToken is one piece of a parsed `content` property value (CSS 2.2
// §12.1/§12.2): a literal string, a quote-nesting instruction, a counter
// reference, or an attribute reference.
type ContentToken struct {
	Kind  ContentKind
	Text  string       // literal text, attr() name, or counter() name
	Sep   string       // counters() separator
	Style counters.Style
}

// ContentKind tags a ContentToken's variant.
type ContentKind int

const (
	ContentLiteral ContentKind = iota
	ContentOpenQuote
	ContentCloseQuote
	ContentNoOpenQuote
	ContentNoCloseQuote
	ContentCounter
	ContentCounters
	ContentAttr
)

// ParseContent parses a `content` property value into a sequence of tokens.
// Supported grammar: a run of one or more of "<string>" | open-quote |
// close-quote | no-open-quote | no-close-quote | counter(name[, style]) |
// counters(name, "sep"[, style]) | attr(name) | none | normal, matching the
// subset of CSS 2.2 §12.1's <content> production spec.md's generated-content
// Non-goal leaves in scope.
func ParseContent(value string) []ContentToken {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" || value == "normal" {
		return nil
	}
	var tokens []ContentToken
	for len(value) > 0 {
		value = strings.TrimSpace(value)
		if value == "" {
			break
		}
		switch {
		case value[0] == '"' || value[0] == '\'':
			lit, rest := scanQuoted(value)
			tokens = append(tokens, ContentToken{Kind: ContentLiteral, Text: lit})
			value = rest
		case strings.HasPrefix(value, "open-quote"):
			tokens = append(tokens, ContentToken{Kind: ContentOpenQuote})
			value = value[len("open-quote"):]
		case strings.HasPrefix(value, "close-quote"):
			tokens = append(tokens, ContentToken{Kind: ContentCloseQuote})
			value = value[len("close-quote"):]
		case strings.HasPrefix(value, "no-open-quote"):
			tokens = append(tokens, ContentToken{Kind: ContentNoOpenQuote})
			value = value[len("no-open-quote"):]
		case strings.HasPrefix(value, "no-close-quote"):
			tokens = append(tokens, ContentToken{Kind: ContentNoCloseQuote})
			value = value[len("no-close-quote"):]
		case strings.HasPrefix(value, "counters("):
			args, rest := scanCall(value, "counters(")
			tokens = append(tokens, parseCountersCall(args))
			value = rest
		case strings.HasPrefix(value, "counter("):
			args, rest := scanCall(value, "counter(")
			tokens = append(tokens, parseCounterCall(args))
			value = rest
		case strings.HasPrefix(value, "attr("):
			args, rest := scanCall(value, "attr(")
			tokens = append(tokens, ContentToken{Kind: ContentAttr, Text: strings.TrimSpace(args)})
			value = rest
		default:
			// Unrecognized token: stop rather than loop forever.
			return tokens
		}
	}
	return tokens
}

func scanQuoted(s string) (lit, rest string) {
	quote := s[0]
	i := 1
	var b strings.Builder
	for i < len(s) && s[i] != quote {
		b.WriteByte(s[i])
		i++
	}
	if i < len(s) {
		i++ // consume closing quote
	}
	return b.String(), s[i:]
}

func scanCall(s, prefix string) (args, rest string) {
	s = s[len(prefix):]
	depth := 1
	i := 0
	for i < len(s) && depth > 0 {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[:i], s[i+1:]
			}
		}
		i++
	}
	return s, ""
}

func parseCounterCall(args string) ContentToken {
	parts := splitArgs(args)
	tok := ContentToken{Kind: ContentCounter}
	if len(parts) > 0 {
		tok.Text = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		tok.Style = styleKeyword(strings.TrimSpace(parts[1]))
	}
	return tok
}

func parseCountersCall(args string) ContentToken {
	parts := splitArgs(args)
	tok := ContentToken{Kind: ContentCounters}
	if len(parts) > 0 {
		tok.Text = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		tok.Sep = trimQuotes(strings.TrimSpace(parts[1]))
	}
	if len(parts) > 2 {
		tok.Style = styleKeyword(strings.TrimSpace(parts[2]))
	}
	return tok
}

func splitArgs(s string) []string {
	var parts []string
	var b strings.Builder
	inQuote := byte(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote != 0:
			b.WriteByte(c)
			if c == inQuote {
				inQuote = 0
			}
		case c == '"' || c == '\'':
			inQuote = c
			b.WriteByte(c)
		case c == ',':
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	parts = append(parts, b.String())
	return parts
}

func trimQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// StyleKeyword maps a `list-style-type` (or counter() style argument)
// keyword to its counters.Style, for callers outside this package that
// need the same mapping to format a marker (engine/udom).
func StyleKeyword(s string) counters.Style { return styleKeyword(s) }

func styleKeyword(s string) counters.Style {
	switch s {
	case "decimal-leading-zero":
		return counters.DecimalLeadingZero
	case "lower-roman":
		return counters.LowerRoman
	case "upper-roman":
		return counters.UpperRoman
	case "lower-alpha", "lower-latin":
		return counters.LowerAlpha
	case "upper-alpha", "upper-latin":
		return counters.UpperAlpha
	case "disc":
		return counters.Disc
	case "circle":
		return counters.Circle
	case "square":
		return counters.Square
	default:
		return counters.Decimal
	}
}

// ContentContext bundles the per-branch state content resolution needs:
// the quote table/nesting depth in effect (CSS 2.2 §12.2) and the counter
// scope in effect (CSS 2.2 §12.4).
type ContentContext struct {
	Quotes   *quotes.Table
	Depth    *quotes.Depth
	Counters *counters.Scope
}

// ResolveContent renders tokens to their final string, given the owning
// element's DOM node (for attr()) and the active quote/counter state.
func ResolveContent(tokens []ContentToken, owner *tree.Node, cc *ContentContext) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case ContentLiteral:
			b.WriteString(tok.Text)
		case ContentOpenQuote:
			if cc != nil && cc.Quotes != nil && cc.Depth != nil {
				b.WriteString(cc.Depth.Open(cc.Quotes, false))
			}
		case ContentCloseQuote:
			if cc != nil && cc.Quotes != nil && cc.Depth != nil {
				b.WriteString(cc.Depth.Close(cc.Quotes, false))
			}
		case ContentNoOpenQuote:
			if cc != nil && cc.Quotes != nil && cc.Depth != nil {
				cc.Depth.Open(cc.Quotes, true)
			}
		case ContentNoCloseQuote:
			if cc != nil && cc.Quotes != nil && cc.Depth != nil {
				cc.Depth.Close(cc.Quotes, true)
			}
		case ContentCounter:
			if cc != nil && cc.Counters != nil {
				v, _ := cc.Counters.Value(tok.Text)
				b.WriteString(counters.Format(v, tok.Style))
			}
		case ContentCounters:
			if cc != nil && cc.Counters != nil {
				chain := cc.Counters.Chain(tok.Text)
				rendered := make([]string, len(chain))
				for i, v := range chain {
					rendered[i] = counters.Format(v, tok.Style)
				}
				b.WriteString(strings.Join(rendered, tok.Sep))
			}
		case ContentAttr:
			if owner != nil {
				if w := dom.Node(owner); w != nil {
					if v, ok := w.Attr(tok.Text); ok {
						b.WriteString(v)
					}
				}
			}
		}
	}
	return b.String()
}

// GeneratePseudoBox builds the principal box for a `::before`/`::after`
// pseudo-element (CSS 2.2 §12.1): it has no DOM node of its own, inherits
// style from owner (left to the caller's Styler), and wraps its resolved
// content in a single anonymous text-box child. content == "" produces no
// box at all, matching `content: none`/`normal`'s default of generating
// nothing on an element that declares no content.
func GeneratePseudoBox(owner *PrincipalBox, kind string, mode css.DisplayMode, content string) *PrincipalBox {
	if owner == nil || content == "" {
		return nil
	}
	pbox := &PrincipalBox{dom: owner.dom, pseudo: kind}
	pbox.Display = mode
	pbox.Payload = pbox
	text := NewTextBox(owner.dom, content)
	pbox.TreeNode().AddChild(text.TreeNode())

	switch kind {
	case "before":
		owner.TreeNode().InsertChildAt(0, pbox.TreeNode())
	default: // "after"
		owner.TreeNode().AddChild(pbox.TreeNode())
	}
	return pbox
}
