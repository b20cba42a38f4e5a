package core

import "testing"

func TestNewScreenClampsSize(t *testing.T) {
	s := NewScreen(-3, 4)
	if s.Width() != 0 || s.Height() != 4 {
		t.Errorf("size = %dx%d, expected 0x4", s.Width(), s.Height())
	}
	// Writes to an empty row are dropped, not panics.
	s.SetCell(0, 0, 'x', ColorRed)
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColor(1, 1, "ab", ColorYellow)

	cell := s.GetCell(2, 1)
	if cell.Rune != 'b' || cell.Color != ColorYellow {
		t.Errorf("GetCell(2, 1) = %+v, expected yellow 'b'", cell)
	}

	s.Clear()
	if c := s.GetCell(2, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear should reset color, got %+v", c)
	}

	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("out of bounds GetCell should be a space, got %+v", c)
	}
}

func TestScreenTextClipsAtEdge(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColor(2, 0, "Score", ColorWhite)

	if s.GetCell(2, 0).Rune != 'S' || s.GetCell(3, 0).Rune != 'c' {
		t.Errorf("visible part not drawn: %+v %+v", s.GetCell(2, 0), s.GetCell(3, 0))
	}
	if s.GetCell(1, 0).Rune != ' ' {
		t.Error("text should not draw left of its start")
	}
}

// The terminal host resizes the play area when the window changes; the next
// frame redraws everything, but the kept corner must not be garbage.
func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, FillGlyph, ColorGreen)
	s.SetCell(3, 2, FillGlyph, ColorGreen)

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != FillGlyph || c.Color != ColorGreen {
		t.Errorf("kept cell = %+v, expected green fill", c)
	}

	s.Resize(5, 4)
	if c := s.GetCell(3, 2); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("grown area should be blank, got %+v", c)
	}
	if c := s.GetCell(1, 1); c.Rune != FillGlyph {
		t.Error("content should survive growing")
	}

	s.Resize(5, 4)
	if s.Width() != 5 || s.Height() != 4 {
		t.Error("same-size resize should be a no-op")
	}
}
