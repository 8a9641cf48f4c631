package buffer

import "testing"

func TestExpand(t *testing.T) {
	tabs := NewTabExpander(8)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no tabs", "hello", "hello"},
		{"leading tab", "\tx", "        x"},
		{"tab after one char", "a\tb", "a       b"},
		{"tab at stop boundary", "12345678\tx", "12345678        x"},
		{"consecutive tabs", "\t\t", "                "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tabs.Expand(tt.raw); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRawToRender(t *testing.T) {
	tabs := NewTabExpander(8)

	tests := []struct {
		raw    string
		rawIdx int
		want   int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"abc", 3, 3},
		{"\tx", 0, 0},
		{"\tx", 1, 8},
		{"\tx", 2, 9},
		{"a\tb", 2, 8},
		{"\t\tz", 2, 16},
	}

	for _, tt := range tests {
		if got := tabs.RawToRender(tt.raw, tt.rawIdx); got != tt.want {
			t.Errorf("RawToRender(%q, %d) = %d, want %d", tt.raw, tt.rawIdx, got, tt.want)
		}
	}
}

func TestRenderToRaw(t *testing.T) {
	tabs := NewTabExpander(8)

	tests := []struct {
		raw       string
		renderCol int
		want      int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"abc", 99, 3},
		{"\tx", 0, 0},
		{"\tx", 5, 0}, // inside the tab's padding
		{"\tx", 8, 1},
		{"a\tb", 4, 1},
		{"a\tb", 8, 2},
	}

	for _, tt := range tests {
		if got := tabs.RenderToRaw(tt.raw, tt.renderCol); got != tt.want {
			t.Errorf("RenderToRaw(%q, %d) = %d, want %d", tt.raw, tt.renderCol, got, tt.want)
		}
	}
}

func TestMappingInverse(t *testing.T) {
	tabs := NewTabExpander(8)

	rows := []string{
		"",
		"plain text",
		"\tindented",
		"a\tb\tc",
		"\t\t\tdeep",
		"mix\ted \t content\t",
	}

	for _, raw := range rows {
		for i := 0; i <= len(raw); i++ {
			col := tabs.RawToRender(raw, i)
			back := tabs.RenderToRaw(raw, col)
			if back != i {
				t.Errorf("round trip failed for %q at %d: render %d, back %d", raw, i, col, back)
			}
		}
	}
}

func TestNonDefaultWidth(t *testing.T) {
	tabs := NewTabExpander(4)
	if got := tabs.Expand("\tx"); got != "    x" {
		t.Errorf("Expand with width 4 = %q", got)
	}
	if got := tabs.RawToRender("ab\tc", 3); got != 4 {
		t.Errorf("RawToRender with width 4 = %d, want 4", got)
	}
}

func TestInvalidWidthFallsBack(t *testing.T) {
	tabs := NewTabExpander(0)
	if tabs.Width() != DefaultTabWidth {
		t.Errorf("expected fallback to %d, got %d", DefaultTabWidth, tabs.Width())
	}
}
