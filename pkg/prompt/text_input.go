package prompt

import (
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
)

// Text box geometry and defaults.
const (
	TextInputWidth    = 312
	TextInputHeight   = 46
	TextInputTextSize = 22

	DefaultPlaceholder = "Fill in"
)

// TextInputConfig configures a TextInput.
type TextInputConfig struct {
	StartHidden bool
	// Placeholder defaults to DefaultPlaceholder.
	Placeholder string
	// X and Y place the box from the prompt edges; see the package
	// documentation.
	X, Y float64
	// OnChange receives every edit.
	OnChange func(value string)
}

// TextInput is a single-line text box inside a prompt.
type TextInput struct {
	core.InContainer

	// Element is the input as rendered, minus its display and change
	// handler.
	Element render.Node

	value    string
	onChange func(string)
}

func newTextInput(cfg TextInputConfig, promptVisible bool, b box, res *resources.Table) *TextInput {
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &TextInput{
		InContainer: core.NewInContainer(cfg.StartHidden, promptVisible),
		onChange:    cfg.OnChange,
		Element: render.Node{
			Kind: render.KindInput,
			Input: &render.Input{
				Placeholder: placeholder,
				Font:        res.Fonts.Default,
				FontSize:    TextInputTextSize,
				Color:       graphics.ColorBlack,
				TextAlign:   render.AlignMiddleCenter,
			},
			Transform: render.Transform{
				Width:        render.Px(TextInputWidth),
				Height:       render.Px(TextInputHeight),
				PositionType: render.PositionAbsolute,
				Position:     b.edgeOffset(TextInputWidth, TextInputHeight, cfg.X, cfg.Y),
			},
		},
	}
}

// Value returns the last text reported by the renderer.
func (t *TextInput) Value() string { return t.value }

// Change records an edit and forwards it to OnChange.
func (t *TextInput) Change(value string) {
	t.value = value
	if t.onChange != nil {
		t.onChange(value)
	}
}

// Render implements core.Widget.
func (t *TextInput) Render(key string) render.Node {
	n := t.Element
	in := *n.Input
	in.OnChange = t.Change
	n.Input = &in
	n.Key = key
	n.Transform.Display = t.Display()
	return n
}
