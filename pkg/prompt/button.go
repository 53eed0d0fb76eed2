package prompt

import (
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/input"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
	"github.com/go-drift/sceneui/pkg/theme"
)

// Button geometry.
const (
	ButtonWidth    = 174
	ButtonHeight   = 46
	ButtonTextSize = 20

	glyphSize        = 26
	actionLabelShift = 25
)

// ButtonConfig configures a Button.
type ButtonConfig struct {
	StartHidden bool
	Text        string
	// X and Y place the button from the prompt edges; see the package
	// documentation.
	X, Y float64
	// OnMouseDown runs on click and on the bound action key.
	OnMouseDown func()
	// Style defaults to theme.ButtonRoundSilver.
	Style theme.ButtonStyle
}

// Button is a clickable button inside a prompt. E and F styled buttons
// show the key glyph and bind the primary or secondary action while they
// are displayed.
type Button struct {
	core.InContainer

	// Image, Glyph and Caption are the button's parts as rendered. They may
	// be adjusted after construction.
	Image   render.Node
	Glyph   render.Node
	Caption render.Node

	style       theme.ButtonStyle
	position    render.Edges
	onMouseDown func()
	disabled    bool
	grayColor   graphics.Color

	registry input.ActionRegistry
	binding  input.BindingID
}

func newButton(cfg ButtonConfig, promptVisible bool, b box, registry input.ActionRegistry, res *resources.Table) *Button {
	style := cfg.Style
	if style == "" {
		style = theme.ButtonRoundSilver
	}
	labelShift := 0.0
	if style.IsAction() {
		labelShift = actionLabelShift
	}
	textColor := graphics.ColorWhite
	if style.LightFace() {
		textColor = graphics.ColorBlack
	}
	texture := res.Texture(false)

	btn := &Button{
		InContainer: core.NewInContainer(cfg.StartHidden, promptVisible),
		style:       style,
		position:    b.edgeOffset(ButtonWidth, ButtonHeight, cfg.X, cfg.Y),
		onMouseDown: cfg.OnMouseDown,
		grayColor:   res.Colors.Disabled,
		registry:    registry,
		Image: render.Node{
			Kind: render.KindEntity,
			Transform: render.Transform{
				Width:        render.Pct(100),
				Height:       render.Pct(100),
				PositionType: render.PositionAbsolute,
				Position:     render.Edges{Top: render.Px(0), Left: render.Px(0)},
			},
			Background: &render.Background{
				Texture:     texture,
				TextureMode: render.TextureStretch,
				UVs:         res.UVs(resources.GroupButtons, style.Region()),
			},
		},
		Caption: render.Node{
			Kind: render.KindLabel,
			Label: &render.Label{
				Value:     cfg.Text,
				Font:      res.Fonts.Default,
				FontSize:  ButtonTextSize,
				Color:     textColor,
				TextAlign: render.AlignMiddleCenter,
			},
			Transform: render.Transform{
				Width:  render.Pct(100),
				Height: render.Pct(100),
				Margin: render.Edges{Left: render.Px(labelShift)},
			},
		},
	}
	if style.IsAction() {
		btn.Glyph = render.Node{
			Kind: render.KindEntity,
			Transform: render.Transform{
				Width:        render.Px(glyphSize),
				Height:       render.Px(glyphSize),
				PositionType: render.PositionAbsolute,
				Position:     render.Edges{Top: render.Pct(50), Left: render.Pct(50)},
				Margin: render.Edges{
					Top:  render.Px(-glyphSize / 2),
					Left: render.Px(glyphOffset(cfg.Text) - glyphSize/2),
				},
			},
			Background: &render.Background{
				Texture:     texture,
				TextureMode: render.TextureStretch,
				UVs:         res.UVs(resources.GroupButtons, style.GlyphRegion()),
			},
		}
	}
	btn.syncBinding()
	return btn
}

// glyphOffset is the key glyph's distance left of centre, moving further
// out for longer labels up to a limit.
func glyphOffset(text string) float64 {
	return float64(max(-20-4*runewidth.StringWidth(text), -65))
}

// Show makes the button visible and binds its action if displayed.
func (b *Button) Show() {
	b.InContainer.Show()
	b.syncBinding()
}

// Hide hides the button and releases its action binding.
func (b *Button) Hide() {
	b.InContainer.Hide()
	b.syncBinding()
}

// ContainerVisibilityChanged records the prompt's visibility and binds or
// releases the action to match.
func (b *Button) ContainerVisibilityChanged(visible bool) {
	b.InContainer.ContainerVisibilityChanged(visible)
	b.syncBinding()
}

// GrayOut disables the button. Clicks and key presses are ignored until
// Enable is called.
func (b *Button) GrayOut() { b.disabled = true }

// Enable re-enables a grayed out button.
func (b *Button) Enable() { b.disabled = false }

// Disabled reports whether the button is grayed out.
func (b *Button) Disabled() bool { return b.disabled }

// Style returns the button style.
func (b *Button) Style() theme.ButtonStyle { return b.style }

// Bound reports whether the button currently holds an action binding.
func (b *Button) Bound() bool { return b.binding.Valid() }

// Click runs the handler unless the button is grayed out.
func (b *Button) Click() {
	if b.disabled || b.onMouseDown == nil {
		return
	}
	b.onMouseDown()
}

func (b *Button) action() input.Action {
	if b.style == theme.ButtonF {
		return input.ActionSecondary
	}
	return input.ActionPrimary
}

// syncBinding keeps exactly one registration while the button is displayed
// and none otherwise.
func (b *Button) syncBinding() {
	want := b.registry != nil && b.style.IsAction() && b.EffectiveVisible()
	switch {
	case want && !b.binding.Valid():
		b.binding = b.registry.Register(b.action(), b.Click)
	case !want && b.binding.Valid():
		b.registry.Unregister(b.binding)
		b.binding = input.NoBinding
	}
}

// Render implements core.Widget.
func (b *Button) Render(key string) render.Node {
	caption := b.Caption
	if b.disabled && caption.Label != nil {
		label := *caption.Label
		label.Color = b.grayColor
		caption.Label = &label
	}

	children := []render.Node{b.Image}
	if b.style.IsAction() {
		glyph := b.Glyph
		glyph.Transform.Display = render.DisplayIf(!b.disabled)
		children = append(children, glyph)
	}
	children = append(children, caption)

	n := render.Entity(key, render.Transform{
		Display:        b.Display(),
		FlexDirection:  render.FlexRow,
		AlignItems:     render.AlignCenter,
		JustifyContent: render.JustifyCenter,
		Width:          render.Px(ButtonWidth),
		Height:         render.Px(ButtonHeight),
		PositionType:   render.PositionAbsolute,
		Position:       b.position,
	}, children...)
	n.OnMouseDown = b.Click
	return n
}
