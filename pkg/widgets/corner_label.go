package widgets

import (
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
)

// CornerLabelConfig configures a CornerLabel.
type CornerLabelConfig struct {
	StartHidden bool
	Value       string
	// Offset from the bottom-right corner. Default -40,70.
	Offset *Offset
	// Color defaults to white. Zero selects the default; see SetColor.
	Color graphics.Color
	// Size defaults to DefaultCornerSize.
	Size      float64
	Resources *resources.Table
}

// CornerLabel displays text in the bottom-right corner.
type CornerLabel struct {
	core.Object
	value  string
	offset Offset
	color  graphics.Color
	size   float64
	font   string
}

// NewCornerLabel creates a corner label.
func NewCornerLabel(cfg CornerLabelConfig) *CornerLabel {
	l := &CornerLabel{
		Object: core.NewObject(cfg.StartHidden),
		value:  cfg.Value,
		offset: offsetOr(cfg.Offset, DefaultCornerOffset),
		color:  cfg.Color,
		size:   orFloat(cfg.Size, DefaultCornerSize),
		font:   resources.Or(cfg.Resources).Fonts.Default,
	}
	if l.color.IsZero() {
		l.color = graphics.ColorWhite
	}
	return l
}

// Value returns the text.
func (l *CornerLabel) Value() string { return l.value }

// Set replaces the text.
func (l *CornerLabel) Set(v string) { l.value = v }

// SetColor replaces the text colour. The zero colour is applied as given.
func (l *CornerLabel) SetColor(c graphics.Color) { l.color = c }

// Render implements core.Widget.
func (l *CornerLabel) Render(key string) render.Node {
	return cornerText(key, l.value, l.font, l.size, l.color, l.offset, l.Display())
}
