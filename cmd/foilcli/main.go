/*
Command foilcli is a small interactive shell around engine/udom: it loads
an HTML document onto a terminal-sized grid and lets an operator poke at
it — set a property, set an attribute, reload, redraw — watching the
effect on the next repaint. Grounded on the teacher's
core/font/opentype/otcli command: the pterm-styled prefixes set up in
initDisplay, the schuko trace setup in main, and the flag/REPL/dispatch
shape of Intp.REPL/execute all carry over; the domain being
poked is an HTML document instead of an OpenType font file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/foilterm/foil/engine/dom"
	"github.com/foilterm/foil/engine/page"
	"github.com/foilterm/foil/engine/tree"
	"github.com/foilterm/foil/engine/udom"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// T traces to the engine tracer, matching the package-level tracer
// accessor every engine/... package uses.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

func main() {
	initDisplay()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.foil":      "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gtrace.EngineTracer = tracing.Select("foil")

	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	htmlfile := flag.String("html", "", "HTML file to load")
	cssfile := flag.String("css", "", "Extra CSS file to apply")
	cols := flag.Int("cols", 80, "Terminal columns")
	rows := flag.Int("rows", 24, "Terminal rows")
	flag.Parse()

	T().SetTraceLevel(traceLevelFor(*tlevel))
	pterm.Info.Println("Welcome to foilcli")

	if *htmlfile == "" {
		pterm.Error.Println("no -html file given")
		os.Exit(2)
	}

	intp, err := newInterp(*htmlfile, *cssfile, *cols, *rows)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}

	pterm.Info.Println("Quit with 'quit' or <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output, same prefixes the teacher's
// otcli sets up.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevelFor(name string) tracing.TraceLevel {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

// Intp is foilcli's interpreter object: one loaded document, one input
// scanner, one set of source files to reload from.
type Intp struct {
	u        *udom.UDOM
	scanner  *bufio.Scanner
	htmlfile string
	cssfile  string
	cols     int
	rows     int
}

func newInterp(htmlfile, cssfile string, cols, rows int) (*Intp, error) {
	intp := &Intp{
		scanner:  bufio.NewScanner(os.Stdin),
		htmlfile: htmlfile,
		cssfile:  cssfile,
		cols:     cols,
		rows:     rows,
	}
	if err := intp.load(); err != nil {
		return nil, err
	}
	return intp, nil
}

// load (re-)reads htmlfile and cssfile from disk and replaces intp.u with
// a freshly parsed, laid out and painted document.
func (intp *Intp) load() error {
	html, err := os.ReadFile(intp.htmlfile)
	if err != nil {
		return fmt.Errorf("foilcli: reading %s: %w", intp.htmlfile, err)
	}
	var extra []string
	if intp.cssfile != "" {
		css, err := os.ReadFile(intp.cssfile)
		if err != nil {
			return fmt.Errorf("foilcli: reading %s: %w", intp.cssfile, err)
		}
		extra = append(extra, string(css))
	}
	surface := page.NewGridPage(intp.cols, intp.rows, os.Stdout)
	u, status, err := udom.LoadEDOM(surface, string(html), extra...)
	if err != nil {
		return fmt.Errorf("foilcli: %w", err)
	}
	if status != udom.StatusOK {
		return fmt.Errorf("foilcli: document did not load (status %d)", status)
	}
	intp.u = u
	T().Infof("loaded %s: %s", intp.htmlfile, surfaceDims(surface))
	return surface.Expose()
}

func surfaceDims(s page.Surface) string {
	cols, rows := s.Size()
	return fmt.Sprintf("%dx%d", cols, rows)
}

// REPL starts interactive mode: one command per line, until 'quit' or EOF.
func (intp *Intp) REPL() {
	for {
		fmt.Print("foil > ")
		if !intp.scanner.Scan() {
			break
		}
		line := strings.TrimSpace(intp.scanner.Text())
		if line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute dispatches one REPL line. Recognized commands:
//
//	quit                       leave the REPL
//	help                       list commands
//	reload                     re-parse htmlfile/cssfile from disk
//	redraw                     repaint the current box tree
//	set <id> <prop> <value>    set a CSS property on the element with id=<id>
//	attr <id> <name> <value>   set an attribute on the element with id=<id>
func (intp *Intp) execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "help":
		printHelp()
		return false, nil
	case "reload":
		return false, intp.load()
	case "redraw":
		return false, intp.u.Redraw()
	case "set":
		if len(fields) < 4 {
			return false, fmt.Errorf("usage: set <id> <property> <value>")
		}
		node := findByID(intp.u, fields[1])
		if node == nil {
			return false, fmt.Errorf("no element with id=%s", fields[1])
		}
		return false, intp.u.SetProperty(node, fields[2], strings.Join(fields[3:], " "))
	case "attrib", "attr":
		if len(fields) < 4 {
			return false, fmt.Errorf("usage: attr <id> <name> <value>")
		}
		node := findByID(intp.u, fields[1])
		if node == nil {
			return false, fmt.Errorf("no element with id=%s", fields[1])
		}
		_, err := intp.u.SetAttribute(node, fields[2], strings.Join(fields[3:], " "))
		return false, err
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
}

// findByID walks u's DOM tree for the element carrying id, or nil.
func findByID(u *udom.UDOM, id string) *tree.Node {
	return findByIDRec(u.DOMRoot, id)
}

func findByIDRec(n *tree.Node, id string) *tree.Node {
	if w := dom.Node(n); w != nil && w.ID() == id {
		return n
	}
	for _, c := range n.Children() {
		if found := findByIDRec(c, id); found != nil {
			return found
		}
	}
	return nil
}

func printHelp() {
	pterm.Println(`
commands:
  reload                      re-read the HTML/CSS source files
  redraw                      repaint without re-running layout
  set  <id> <prop> <value>    set a CSS property on #id
  attr <id> <name> <value>    set an attribute on #id
  quit                        leave the REPL
`)
}
