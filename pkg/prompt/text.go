package prompt

import (
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
)

// DefaultTextSize is the font size of prompt text.
const DefaultTextSize = 15

// TextConfig configures a Text.
type TextConfig struct {
	StartHidden bool
	Value       string
	// X and Y offset the text from the prompt centre. Positive Y moves up.
	X, Y float64
	// Color defaults to white on dark prompts and black on light ones. Zero
	// selects the default; see Text.SetColor.
	Color graphics.Color
	// Size defaults to DefaultTextSize.
	Size float64
}

// Text is a label inside a prompt.
type Text struct {
	core.InContainer

	// Element is the label as rendered, minus its display. It may be
	// adjusted after construction.
	Element render.Node
}

func newText(cfg TextConfig, promptVisible bool, defColor graphics.Color, res *resources.Table) *Text {
	color := cfg.Color
	if color.IsZero() {
		color = defColor
	}
	size := cfg.Size
	if size == 0 {
		size = DefaultTextSize
	}
	return &Text{
		InContainer: core.NewInContainer(cfg.StartHidden, promptVisible),
		Element: render.Node{
			Kind: render.KindLabel,
			Label: &render.Label{
				Value:     cfg.Value,
				Font:      res.Fonts.Default,
				FontSize:  size,
				Color:     color,
				TextAlign: render.AlignMiddleCenter,
			},
			Transform: render.Transform{
				MaxWidth:     render.Pct(100),
				PositionType: render.PositionAbsolute,
				Position:     render.Edges{Top: render.Pct(50), Left: render.Pct(50)},
				Margin:       render.Edges{Left: render.Px(cfg.X), Top: render.Px(-cfg.Y)},
			},
		},
	}
}

// Value returns the text.
func (t *Text) Value() string { return t.Element.Label.Value }

// SetValue replaces the text.
func (t *Text) SetValue(v string) { t.Element.Label.Value = v }

// SetColor replaces the text colour. Unlike TextConfig.Color, the zero
// colour is applied as given.
func (t *Text) SetColor(c graphics.Color) { t.Element.Label.Color = c }

// Render implements core.Widget.
func (t *Text) Render(key string) render.Node {
	n := t.Element
	label := *n.Label
	n.Label = &label
	n.Key = key
	n.Transform.Display = t.Display()
	return n
}
