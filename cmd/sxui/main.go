// Command sxui renders an s-expression UI description on the terminal.
//
// With a file argument the description is read from disk and re-read on an
// interval, so edits to the file show up live. Without one an embedded
// sample is shown. Quit with q, Esc or Ctrl-C.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"sxui"
	"sxui/sexp"
)

const sampleSource = `
(layer
    (block "sxui"
        (stack vertical
            ((length 3) (block "header" "declarative terminal layout" (style (border all) (title_align center))))
            ((fill 1) (stack horizontal
                ((percentage 30) (block "nav" "one\ntwo\nthree" (style (border all))))
                ((fill 1) (block "body" "edit a .sx file and pass it as an argument" (style (border all))))))
            ((length 1) "q quits"))
        (style (border none))))
`

var tick time.Duration

func main() {
	root := &cobra.Command{
		Use:   "sxui [file]",
		Short: "Render an s-expression UI description on the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return run(path)
		},
		SilenceUsage: true,
	}
	root.Flags().DurationVar(&tick, "tick", 500*time.Millisecond, "re-read interval for the file argument")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger writes structured logs to the file named by SXUI_LOG. The
// terminal belongs to the UI while the program runs, so there is no stderr
// fallback; without the variable logs are discarded.
func newLogger() *slog.Logger {
	out := io.Writer(io.Discard)
	if path := os.Getenv("SXUI_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			out = f
		}
	}
	return slog.New(slog.NewTextHandler(out, nil))
}

func run(path string) error {
	log := newLogger()

	engine, err := sxui.NewEngine()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer engine.Close()

	render := func() {
		src := sampleSource
		if path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				renderError(engine, err)
				return
			}
			src = string(data)
		}
		exp, err := sexp.Read(src)
		if err != nil {
			renderError(engine, err)
			return
		}
		if err := engine.Render(exp); err != nil {
			log.Warn("build failed", "error", err)
			renderError(engine, err)
		}
	}
	render()

	// Re-read the file on a timer by posting interrupt events into the
	// screen's event stream.
	if path != "" {
		done := make(chan struct{})
		defer close(done)
		go func() {
			ticker := time.NewTicker(tick)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					engine.Screen().PostEvent(tcell.NewEventInterrupt(nil))
				case <-done:
					return
				}
			}
		}()
	}

	for {
		switch ev := engine.Screen().PollEvent().(type) {
		case *tcell.EventResize:
			engine.Sync()
			render()
		case *tcell.EventInterrupt:
			render()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case nil:
			// screen finalized
			return nil
		}
	}
}

// renderError paints a diagnostic panel in place of the intended UI, so a
// bad description never crashes the viewer.
func renderError(engine *sxui.Engine, err error) {
	layer := &sxui.Layer{}
	layer.Add(sxui.Block{
		Title: "error",
		Style: sxui.BlockStyle{Borders: sxui.BordersAll},
		Content: sxui.Text{
			Content: err.Error(),
		},
	})
	engine.RenderLayer(layer)
}
