/*
Package udom is the "ultimate DOM" driver: it glues engine/dom's element
tree, engine/css's author/UA stylesheet cascade, engine/boxtree's box
generation, engine/layout's geometry resolution and engine/render's painter
together into the single entry point spec.md §2 calls load_edom, and
dispatches the mutation operations spec.md §6/§4.3.8 name against an
already-loaded document.

Grounded on original_source/Source/Executables/purc/udom.c/udom.h: the
load/build/layout/render pipeline order, the page-level status codes
LoadEDOM returns, and compare_and_update_properties's crux-changing/
cosmetic split UpdateRdrbox's mutation dispatch implements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package udom

import (
	"errors"
	"strings"

	"github.com/foilterm/foil/core/dimen"
	"github.com/foilterm/foil/engine/boxtree"
	"github.com/foilterm/foil/engine/css"
	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/layout"
	"github.com/foilterm/foil/engine/page"
	"github.com/foilterm/foil/engine/render"
	"github.com/foilterm/foil/engine/tree"
	"golang.org/x/net/html"
)

// Status is the page-level outcome of LoadEDOM, spec.md §6's exposed uDOM
// API return codes.
type Status int

const (
	// StatusOK means a usable box tree was built and laid out.
	StatusOK Status = iota
	// StatusNoContent means the document had no renderable root element
	// (e.g. the document root itself computed to display:none).
	StatusNoContent
	// StatusNotAcceptable means the supplied markup could not be parsed.
	StatusNotAcceptable
	// StatusInsufficientStorage means box-tree construction or layout
	// failed for a reason other than an empty document — the closest
	// local analogue to the C source's allocation-failure path.
	StatusInsufficientStorage
)

// ErrNilSurface is returned by LoadEDOM when handed a nil page.Surface.
var ErrNilSurface = errors.New("udom: surface is nil")

// UDOM is a loaded, laid-out document: its DOM tree, its resolved styles,
// its box tree, and the page surface it paints to. Every mutation entry
// point in mutate.go operates on one of these.
type UDOM struct {
	Surface  page.Surface
	DOMRoot  *tree.Node
	Root     *boxtree.PrincipalBox
	Resolve  boxtree.StyleResolver
	Viewport dimen.Rect

	styles *cascadedStyles
}

// LoadEDOM parses htmlSource, builds the UA-plus-author cascade (scanning
// <head> for <link rel="stylesheet"> and <style> text per spec.md §6, in
// addition to any extraCSS sheets the caller already has in hand), builds
// and lays out the box tree against the surface's current size, paints it,
// and returns the resulting UDOM — mirroring foil_udom_load_edom's
// parse-style-build-layout-render pipeline.
func LoadEDOM(surface page.Surface, htmlSource string, extraCSS ...string) (*UDOM, Status, error) {
	if surface == nil {
		return nil, StatusInsufficientStorage, ErrNilSurface
	}

	doc, err := html.Parse(strings.NewReader(htmlSource))
	if err != nil {
		return nil, StatusNotAcceptable, err
	}
	domRoot := dom.BuildTree(doc)

	sheet := &css.Stylesheet{}
	sheet.Append(UAStylesheet())
	sheet.Append(AuthorStylesheetFrom(domRoot))
	for _, src := range extraCSS {
		if extra, err := css.Parse(src); err == nil {
			sheet.Append(extra)
		}
	}

	styles := newCascadedStyles(sheet)
	resolve := styles.resolverFor(domRoot)

	root, err := boxtree.BuildBoxTree(domRoot, resolve)
	if err != nil {
		if errors.Is(err, boxtree.ErrNoBoxTreeCreated) {
			return nil, StatusNoContent, nil
		}
		return nil, StatusInsufficientStorage, err
	}

	attachGeneratedContent(root, resolve)
	boxtree.NormalizeAnonymousBoxes(root) // idempotent; re-run to fold in new pseudo/marker boxes

	cols, rows := surface.Size()
	viewport := dimen.RectFromSize(dimen.Point{}, dimen.DU(cols), dimen.DU(rows))
	if err := layout.Layout(root, resolve, viewport); err != nil {
		return nil, StatusInsufficientStorage, err
	}
	if err := render.Paint(root, resolve, surface); err != nil {
		return nil, StatusInsufficientStorage, err
	}

	return &UDOM{
		Surface:  surface,
		DOMRoot:  domRoot,
		Root:     root,
		Resolve:  resolve,
		Viewport: viewport,
		styles:   styles,
	}, StatusOK, nil
}

// Redraw repaints u's current box tree onto its surface and commits the
// frame, without re-running layout — the final step of any mutation path
// that already called relayout (or none at all, for a pure cosmetic edit).
func (u *UDOM) Redraw() error {
	if err := render.Paint(u.Root, u.Resolve, u.Surface); err != nil {
		return err
	}
	return u.Surface.Expose()
}
