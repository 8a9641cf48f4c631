package renderer

import (
	"github.com/dshills/shim/internal/engine/highlight"
	"github.com/dshills/shim/internal/renderer/core"
)

// Theme maps highlight classes to terminal styles.
type Theme struct {
	styles [highlight.Error + 1]core.Style
	gutter core.Style
	status core.Style
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	var t Theme
	t.styles[highlight.Normal] = core.DefaultStyle()
	t.styles[highlight.Comment] = core.NewStyle(core.ColorFromRGB(0x00, 0x88, 0xff)).Italic()
	t.styles[highlight.BlockComment] = t.styles[highlight.Comment]
	t.styles[highlight.Keyword1] = core.NewStyle(core.ColorFromRGB(0xff, 0x9d, 0x00)).Bold()
	t.styles[highlight.Keyword2] = core.NewStyle(core.ColorFromRGB(0x80, 0xff, 0xbb))
	t.styles[highlight.String] = core.NewStyle(core.ColorFromRGB(0x3a, 0xd9, 0x00))
	t.styles[highlight.Number] = core.NewStyle(core.ColorFromRGB(0xff, 0x00, 0x44))
	t.styles[highlight.Match] = core.DefaultStyle().WithBackground(core.ColorFromRGB(0x1e, 0x96, 0xc8))
	t.styles[highlight.Special] = core.NewStyle(core.ColorFromRGB(0x80, 0xff, 0xbb))
	t.styles[highlight.Error] = core.DefaultStyle().WithBackground(core.ColorFromRGB(0x82, 0x00, 0x00))
	t.gutter = core.NewStyle(core.ColorFromRGB(0x60, 0x60, 0x60))
	t.status = core.DefaultStyle().Reverse()
	return t
}

// Style returns the style for a highlight class.
func (t Theme) Style(c highlight.Class) core.Style {
	if int(c) < len(t.styles) {
		return t.styles[c]
	}
	return core.DefaultStyle()
}

// GutterStyle returns the style for the line-number column.
func (t Theme) GutterStyle() core.Style { return t.gutter }

// StatusStyle returns the inverted style for the status bar.
func (t Theme) StatusStyle() core.Style { return t.status }
