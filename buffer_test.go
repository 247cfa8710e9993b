package sxui

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				if c := buf.Get(x, y); c.Rune != ' ' {
					t.Fatalf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			if got := buf.InBounds(tt.x, tt.y); got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Foreground(Red))

		buf.Set(5, 5, cell)
		if got := buf.Get(5, 5); got != cell {
			t.Errorf("got %+v, want %+v", got, cell)
		}

		// Out of bounds writes are dropped, reads return an empty cell.
		buf.Set(-1, -1, cell)
		if oob := buf.Get(-1, -1); oob.Rune != ' ' {
			t.Error("expected empty cell for out of bounds")
		}
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		buf := NewBuffer(4, 1)
		buf.Set(0, 0, NewCell(BoxHorizontal, DefaultStyle()))
		buf.Set(0, 0, NewCell(BoxVertical, DefaultStyle()))
		if got := buf.Get(0, 0).Rune; got != BoxVertical {
			t.Errorf("got %q, want plain overwrite", got)
		}
	})

	t.Run("WriteStringClipped", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		n := buf.WriteStringClipped(0, 0, "hello world", DefaultStyle(), 5)
		if n != 5 {
			t.Errorf("wrote %d columns, want 5", n)
		}
		if got := buf.StringTrimmed(); got != "hello" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("WriteStringWideRunes", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		n := buf.WriteString(0, 0, "日本", DefaultStyle())
		if n != 4 {
			t.Errorf("wrote %d columns, want 4", n)
		}
		if buf.Get(0, 0).Rune != '日' || buf.Get(2, 0).Rune != '本' {
			t.Errorf("wide runes misplaced: %q %q", buf.Get(0, 0).Rune, buf.Get(2, 0).Rune)
		}
		// continuation cells hold a zero rune
		if buf.Get(1, 0).Rune != 0 || buf.Get(3, 0).Rune != 0 {
			t.Error("expected zero-rune continuation cells")
		}

		// a wide rune that doesn't fit the clip width is dropped whole
		buf2 := NewBuffer(10, 1)
		if n := buf2.WriteStringClipped(0, 0, "a日", DefaultStyle(), 2); n != 1 {
			t.Errorf("wrote %d columns, want 1", n)
		}
	})

	t.Run("FillRect", func(t *testing.T) {
		buf := NewBuffer(6, 4)
		buf.FillRect(NewRect(1, 1, 3, 2), NewCell('#', DefaultStyle()))
		want := "" +
			"\n" +
			" ###\n" +
			" ###"
		if got := buf.StringTrimmed(); got != want {
			t.Errorf("got:\n%s", got)
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.WriteString(0, 0, "abcd", DefaultStyle())
		buf.Resize(6, 3)
		if buf.Width() != 6 || buf.Height() != 3 {
			t.Fatalf("got %dx%d", buf.Width(), buf.Height())
		}
		if got := buf.GetLine(0); got != "abcd" {
			t.Errorf("content not preserved: %q", got)
		}
		buf.Resize(2, 1)
		if got := buf.GetLine(0); got != "ab" {
			t.Errorf("content not cropped: %q", got)
		}
	})
}

func TestDrawBorders(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		buf := NewBuffer(5, 3)
		buf.DrawBorders(buf.Bounds(), BordersAll, BorderSingle, DefaultStyle())
		want := "" +
			"┌───┐\n" +
			"│   │\n" +
			"└───┘"
		if got := buf.String(); got != want {
			t.Errorf("got:\n%s", got)
		}
	})

	t.Run("TopOnly", func(t *testing.T) {
		buf := NewBuffer(5, 3)
		buf.DrawBorders(buf.Bounds(), BorderTop, BorderSingle, DefaultStyle())
		if got := buf.StringTrimmed(); got != "─────" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("LeftAndTop", func(t *testing.T) {
		buf := NewBuffer(4, 3)
		buf.DrawBorders(buf.Bounds(), BorderTop|BorderLeft, BorderSingle, DefaultStyle())
		want := "" +
			"┌───\n" +
			"│\n" +
			"│"
		if got := buf.StringTrimmed(); got != want {
			t.Errorf("got:\n%s", got)
		}
	})

	t.Run("None", func(t *testing.T) {
		buf := NewBuffer(4, 3)
		buf.DrawBorders(buf.Bounds(), BordersNone, BorderSingle, DefaultStyle())
		if got := buf.StringTrimmed(); got != "" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Rounded", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.DrawBorders(buf.Bounds(), BordersAll, BorderRounded, DefaultStyle())
		want := "" +
			"╭──╮\n" +
			"╰──╯"
		if got := buf.String(); got != want {
			t.Errorf("got:\n%s", got)
		}
	})
}
