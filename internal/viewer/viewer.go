// Package viewer renders the visible viewport: either the first lines of
// the loaded document or the welcome screen when nothing is loaded. It is
// a pure transform over (document, size); every byte it produces flows
// through the terminal port.
package viewer

import (
	"log"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"peruse/internal/document"
	"peruse/internal/terminal"
	"peruse/internal/util"
)

// Name and Version identify the viewer in the welcome banner.
const (
	Name    = "peruse"
	Version = "0.1.0"
)

const (
	fillerGlyph = "~"
	lineBreak   = "\r\n"
)

// View holds the document being displayed.
type View struct {
	Buffer document.Document

	// ShowWelcome controls whether the centered banner row is drawn over
	// an empty document. Disabled via the show_welcome config key.
	ShowWelcome bool
}

// NewView returns a View with an empty document and the welcome banner
// enabled.
func NewView() *View {
	return &View{ShowWelcome: true}
}

// Load replaces the buffer with the contents of the file at path. A failed
// load is a soft condition: the view keeps an empty buffer and the session
// renders the welcome screen instead of aborting.
func (v *View) Load(path string) {
	doc, err := document.Load(path)
	if err != nil {
		log.Printf("load %s: %v; starting with an empty document", path, err)
		return
	}
	v.Buffer = doc
}

// Render enqueues a full redraw of the viewport: exactly size.Height rows,
// each preceded by a line clear, separated by (not terminated with) line
// breaks. Rows past the end of the document get the filler glyph.
func (v *View) Render(t *terminal.Terminal, size terminal.Size) error {
	welcomeRow := size.Height / 3
	for row := 0; row < size.Height; row++ {
		if err := t.ClearLine(); err != nil {
			return err
		}

		var content string
		switch {
		case !v.Buffer.IsEmpty():
			if line, ok := v.Buffer.Line(row); ok {
				content = line
			} else {
				content = fillerGlyph
			}
		case v.ShowWelcome && row == welcomeRow:
			content = bannerRow(size.Width)
		default:
			content = fillerGlyph
		}

		if err := t.Print(content); err != nil {
			return err
		}
		if row+1 < size.Height {
			if err := t.Print(lineBreak); err != nil {
				return err
			}
		}
	}
	return nil
}

// bannerRow builds the centered welcome row for the given width: the
// filler glyph, then padding, then the banner text, truncated to the
// viewport width when it would overflow. Centering is approximate; the
// glyph occupies one cell of the left padding.
func bannerRow(width int) string {
	banner := Name + " editor -- version " + Version
	padding := util.SatSub(width, ansi.StringWidth(banner)) / 2
	row := fillerGlyph + strings.Repeat(" ", util.SatSub(padding, 1)) + banner
	return ansi.Truncate(row, width, "")
}
