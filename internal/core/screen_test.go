package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetWithColor(1, 1, '█', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red block", cell)
	}

	s.Set(1, 1, 'x')
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("Set should reset color, got %v", got)
	}

	if got := s.GetCell(9, 9); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorBlue)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Hello")
	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}

	// Multi-byte runes occupy a single cell each.
	s.DrawTextWithColor(0, 2, "→x", ColorYellow)
	if s.Get(0, 2) != '→' || s.Get(1, 2) != 'x' {
		t.Errorf("Row(2) = %q, expected arrow then x", s.Row(2))
	}
	if s.GetCell(1, 2).Color != ColorYellow {
		t.Errorf("expected yellow text")
	}

	// Clipped at the right edge
	s.DrawText(17, 3, "abcdef")
	if got := s.Row(3); got[17:] != "abc" {
		t.Errorf("clipped row = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected %q", got, "    abc    ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorWhite)

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 3, '▀', ColorGray)

	if got := s.Row(0); got != " ▀▀▀  " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(2, 0).Color != ColorGray {
		t.Error("expected gray line")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetWithColor(1, 1, 'A', ColorGreen)
	s.Set(3, 0, 'B')

	s.Resize(2, 3)

	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if cell := s.GetCell(1, 1); cell.Rune != 'A' || cell.Color != ColorGreen {
		t.Errorf("preserved cell = %+v", cell)
	}
	if s.Get(1, 2) != ' ' {
		t.Error("new rows should be blank")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
