package udom

import (
	"os"
	"strings"
	"sync"

	"github.com/foilterm/foil/engine/css"
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/tree"
	"golang.org/x/net/html"
)

// UAStylesheetSource is the fixed literal user-agent stylesheet spec.md §6
// requires: a selector set covering CSS 2.1 Appendix D's sample style sheet
// plus HTML 5 block elements foil additionally renders as blocks. It is
// the sole CSS_ORIGIN_UA sheet — every cascade built by LoadEDOM starts
// from exactly this text.
const UAStylesheetSource = `
html, address, blockquote, body, div, dl, dt, fieldset, form, frame,
frameset, h1, h2, h3, h4, h5, h6, noframes, ol, p, ul, center, dir, hr,
menu, pre, article, aside, details, figcaption, figure, footer, header,
hgroup, main, nav, section, table { display: block; }
dd { display: block; margin-left: 4em; }
head, script, style, title, link, meta, base { display: none; }
li { display: list-item; }
table { display: table; }
tr { display: table-row; }
thead, tbody, tfoot { display: block; }
td, th { display: table-cell; }
caption { display: table-caption; text-align: center; }
span, a, em, strong, b, i, u, s, small, sub, sup, code, kbd, samp, var,
q, cite, abbr, dfn, time, mark, label { display: inline; }
h1 { font-size: 2em; margin-top: 0.67em; margin-bottom: 0.67em; font-weight: bold; }
h2 { font-size: 1.5em; margin-top: 0.83em; margin-bottom: 0.83em; font-weight: bold; }
h3 { font-size: 1.17em; margin-top: 1em; margin-bottom: 1em; font-weight: bold; }
h4 { margin-top: 1.33em; margin-bottom: 1.33em; font-weight: bold; }
h5 { font-size: 0.83em; margin-top: 1.67em; margin-bottom: 1.67em; font-weight: bold; }
h6 { font-size: 0.67em; margin-top: 2.33em; margin-bottom: 2.33em; font-weight: bold; }
body { margin: 1em; }
p, blockquote, dl, ol, ul, pre, fieldset, form, hr, table { margin-top: 1em; margin-bottom: 1em; }
blockquote { margin-left: 4em; margin-right: 4em; }
pre { white-space: pre; }
ul, menu, dir { list-style-type: disc; margin-left: 4em; padding-left: 0; }
ol { list-style-type: decimal; margin-left: 4em; padding-left: 0; }
ul ul, ol ul { list-style-type: circle; }
ol ol, ul ol { list-style-type: lower-roman; }
li { counter-increment: list-item; }
ol, ul { counter-reset: list-item; }
b, strong { font-weight: bold; }
i, em, var, address, dfn, cite { font-style: italic; }
u, ins { text-decoration: underline; }
s, strike, del { text-decoration: line-through; }
a { color: blue; text-decoration: underline; }
th { font-weight: bold; text-align: center; }
hr { border-style: solid; }
`

var (
	uaOnce  sync.Once
	uaSheet *css.Stylesheet
)

// UAStylesheet returns the process-wide singleton user-agent stylesheet,
// parsed once on first use (spec.md §5: "the initial user-agent stylesheet
// is a process-wide singleton created at module init"). It never returns
// nil; a parse failure of the literal source (which should never happen)
// leaves it empty rather than panicking.
func UAStylesheet() *css.Stylesheet {
	uaOnce.Do(func() {
		sheet, err := css.Parse(UAStylesheetSource)
		if err != nil {
			sheet = &css.Stylesheet{}
		}
		uaSheet = sheet
	})
	return uaSheet
}

// AuthorStylesheetFrom scans domRoot's <head> for <style> text and
// <link rel="stylesheet" href=...> references, per spec.md §6: "relative
// URLs resolve against <base href> when its scheme is file, otherwise
// remote loads are not performed." It returns an empty (never nil)
// Stylesheet when there is no <head> or no stylesheet-producing children.
func AuthorStylesheetFrom(domRoot *tree.Node) *css.Stylesheet {
	combined := &css.Stylesheet{}
	head := findHead(domRoot)
	if head == nil {
		return combined
	}
	base := baseHref(head)
	for _, child := range head.Children() {
		w := dom.Node(child)
		if w == nil {
			continue
		}
		switch w.TagName() {
		case "style":
			if text := textContentOf(child); text != "" {
				if sheet, err := css.Parse(text); err == nil {
					combined.Append(sheet)
				}
			}
		case "link":
			rel, _ := w.Attr("rel")
			href, ok := w.Attr("href")
			if !ok || !strings.Contains(rel, "stylesheet") {
				continue
			}
			if path, ok := fileSchemePath(href, base); ok {
				if data, err := os.ReadFile(path); err == nil {
					if sheet, err := css.Parse(string(data)); err == nil {
						combined.Append(sheet)
					}
				}
			}
			// A non-file scheme (http, https, ...) is never fetched —
			// spec.md §6 explicitly scopes remote loads out.
		}
	}
	return combined
}

func findHead(root *tree.Node) *tree.Node {
	if dom.IsElement(root, "head") {
		return root
	}
	for _, c := range root.Children() {
		if h := findHead(c); h != nil {
			return h
		}
	}
	return nil
}

// baseHref returns the <base href> declared in head, or "" if none.
func baseHref(head *tree.Node) string {
	for _, c := range head.Children() {
		if w := dom.Node(c); w != nil && w.TagName() == "base" {
			if href, ok := w.Attr("href"); ok {
				return href
			}
		}
	}
	return ""
}

// fileSchemePath resolves href against base and reports the local
// filesystem path to read, or false if either scheme is not "file".
func fileSchemePath(href, base string) (string, bool) {
	if strings.HasPrefix(href, "file://") {
		return strings.TrimPrefix(href, "file://"), true
	}
	if strings.Contains(href, "://") {
		return "", false // a non-file absolute URL
	}
	if base == "" {
		return "", false // a relative href needs a file:// base to resolve against
	}
	if !strings.HasPrefix(base, "file://") {
		return "", false
	}
	dir := strings.TrimPrefix(base, "file://")
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		dir = dir[:i]
	}
	return dir + "/" + href, true
}

// textContentOf concatenates the text of every text-node descendant of n
// (a <style> element's content is always flat text in a parsed document).
func textContentOf(n *tree.Node) string {
	w := dom.Node(n)
	if w != nil && w.NodeType() == html.TextNode {
		return w.Text()
	}
	var b strings.Builder
	for _, c := range n.Children() {
		b.WriteString(textContentOf(c))
	}
	return b.String()
}
