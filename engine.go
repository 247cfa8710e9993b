package sxui

import (
	"github.com/gdamore/tcell/v2"

	"sxui/sexp"
)

// Engine owns a terminal screen and repaints it from expression values.
// One Render call is one frame: the expression is built into a layer, the
// layer painted into an off-screen buffer sized to the terminal, and the
// buffer flushed to the screen. The engine holds no UI state between frames.
type Engine struct {
	screen tcell.Screen
	buf    *Buffer
}

// NewEngine creates an engine on the real terminal, entering the alternate
// screen and raw mode.
func NewEngine() (*Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Engine{screen: screen}, nil
}

// NewEngineScreen creates an engine on an already-initialized screen.
// Tests use this with a tcell simulation screen.
func NewEngineScreen(screen tcell.Screen) *Engine {
	return &Engine{screen: screen}
}

// Screen returns the underlying screen, for event polling.
func (e *Engine) Screen() tcell.Screen {
	return e.screen
}

// Size returns the current screen dimensions.
func (e *Engine) Size() (width, height int) {
	return e.screen.Size()
}

// Render builds the expression into a layer and paints one frame. On a
// build failure the screen is left untouched and the error returned; the
// caller decides how to surface it (typically by rendering a diagnostic
// layer instead).
func (e *Engine) Render(exp sexp.Exp) error {
	layer, err := BuildLayer(exp)
	if err != nil {
		return err
	}
	e.RenderLayer(layer)
	return nil
}

// RenderLayer paints one frame from an already-built layer.
func (e *Engine) RenderLayer(layer *Layer) {
	width, height := e.screen.Size()
	if e.buf == nil {
		e.buf = NewBuffer(width, height)
	} else {
		e.buf.Resize(width, height)
		e.buf.Clear()
	}
	layer.Render(e.buf, Rect{Width: width, Height: height})
	e.flush()
}

// flush copies the buffer to the screen cell by cell and shows the result.
func (e *Engine) flush() {
	width, height := e.buf.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := e.buf.Get(x, y)
			if c.Rune == 0 {
				// continuation cell of a wide rune
				continue
			}
			e.screen.SetContent(x, y, c.Rune, nil, tcellStyle(c.Style))
		}
	}
	e.screen.Show()
}

// Sync forces a full screen redraw, typically after a resize event.
func (e *Engine) Sync() {
	e.screen.Sync()
}

// Close restores the terminal.
func (e *Engine) Close() {
	e.screen.Fini()
}

// tcellStyle converts a cell style to the tcell representation.
func tcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(s.FG)).
		Background(tcellColor(s.BG))
	if s.Attr.Has(AttrBold) {
		st = st.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		st = st.Dim(true)
	}
	if s.Attr.Has(AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attr.Has(AttrInverse) {
		st = st.Reverse(true)
	}
	return st
}

func tcellColor(c Color) tcell.Color {
	switch c.Mode {
	case Color16:
		return tcell.PaletteColor(int(c.Index))
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}
