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

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, '@', ColorBlue)
	cell := s.GetCell(5, 5)
	if cell.Rune != '@' || cell.Color != ColorBlue {
		t.Errorf("GetCell(5, 5) = %+v, expected '@' in blue", cell)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(2, 1, "WIN", ColorGreen)

	if got := strings.TrimSpace(s.Row(1)); got != "WIN" {
		t.Errorf("Row(1) = %q, expected %q", got, "WIN")
	}
	if s.GetCell(3, 1).Color != ColorGreen {
		t.Error("DrawTextColor should color every rune")
	}

	// Clipped text must not panic
	s.DrawText(18, 0, "overflow")
	if s.Get(19, 0) != 'v' {
		t.Errorf("Get(19, 0) = %q, expected 'v'", s.Get(19, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(15, 2)
	s.DrawTextCentered(NewRect(4, 0, 11, 2), 0, "abc", ColorDefault)
	if s.Row(0) != "        abc    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}

	s.DrawTextCentered(NewRect(4, 0, 3, 2), 1, "toolong", ColorDefault)
	if s.Row(1) != "    toolong    " {
		t.Errorf("Row(1) = %q, expected text to start at the rect edge", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Resize() gave %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

func TestColorByName(t *testing.T) {
	for c, name := range colorNames {
		got, ok := ColorByName(name)
		if !ok || got != c {
			t.Errorf("ColorByName(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ColorByName("plaid"); ok {
		t.Error("ColorByName should reject unknown names")
	}
}
