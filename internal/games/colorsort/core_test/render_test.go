package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
)

func TestRenderASCII(t *testing.T) {
	s := load(t, row(
		cell(3, core.Red, core.Red, core.Blue),
		cell(2),
		cell(2, core.Blue),
	))
	s.SelectBase(0)

	expected := strings.Join([]string{
		"Bases: 3 | Objects: 4 | Selected: #0 (1) | Undo: no | Complete: no",
		"------------",
		" b",
		" R   .   .",
		" R   .   B",
		"[0] [1] [2]",
		"",
	}, "\n")

	if got := core.RenderASCII(s); got != expected {
		t.Errorf("RenderASCII() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestRenderASCIIMultipleRows(t *testing.T) {
	s := load(t,
		row(cell(1, core.Green), cell(1)),
		row(cell(2, core.Green)),
	)
	s.SelectBase(0)
	s.SelectBase(1)

	got := core.RenderASCII(s)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	if !strings.Contains(lines[0], "Selected: none | Undo: yes | Complete: no") {
		t.Errorf("header = %q", lines[0])
	}
	expected := []string{" .   G", "[0] [1]", " .", " G", "[2]"}
	if len(lines) != 2+len(expected) {
		t.Fatalf("got %d lines:\n%s", len(lines), got)
	}
	for i, want := range expected {
		if lines[2+i] != want {
			t.Errorf("line %d = %q, expected %q", 2+i, lines[2+i], want)
		}
	}
}

func TestColorChar(t *testing.T) {
	tests := []struct {
		color    core.Color
		expected rune
	}{
		{core.Red, 'R'},
		{core.Pink, 'K'},
		{core.Gray, 'A'},
		{core.Color("teal"), 'T'},
		{core.Color(""), '?'},
	}
	for _, tc := range tests {
		if got := tc.color.Char(); got != tc.expected {
			t.Errorf("%q.Char() = %q, expected %q", tc.color, got, tc.expected)
		}
	}

	if core.ParseColor("blue") != core.Blue {
		t.Error(`ParseColor("blue") should be Blue`)
	}
	if got := core.ParseColor("Blue"); got == core.Blue || got.String() != "Blue" {
		t.Errorf(`ParseColor("Blue") = %q, expected the name verbatim`, got)
	}
}
