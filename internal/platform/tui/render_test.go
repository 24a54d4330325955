package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColor(6, 0, "red", core.ColorRed)
	s.DrawTextColor(0, 1, "second", core.ColorBlue)

	out := RenderScreen(s)
	for _, want := range []string{"plain", "red", "second"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q in %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short line", 20, []string{"short line"}},
		{"breaks on space", "one two three", 8, []string{"one two", "three"}},
		{"long word kept whole", "abcdefghij", 4, []string{"abcdefghij"}},
		{"empty", "", 10, nil},
		{"zero width", "text", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
