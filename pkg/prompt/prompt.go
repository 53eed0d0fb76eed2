package prompt

import (
	"fmt"

	"github.com/go-drift/sceneui/pkg/atlas"
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/input"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
	"github.com/go-drift/sceneui/pkg/theme"
)

// Config configures a Prompt.
type Config struct {
	StartHidden bool

	// Style selects the background, close icon and default text colour.
	// Default theme.PromptLight. An unknown style keeps the light defaults.
	Style theme.PromptStyle

	// Width and Height override the background's natural size.
	Width, Height float64

	// OnClose runs when the close icon is pressed, before the prompt hides.
	OnClose func()

	// HideCloseIcon keeps the close icon hidden for the prompt's lifetime,
	// across Show and Hide. Hiding the icon through CloseIcon only lasts
	// until the prompt is next shown.
	HideCloseIcon bool

	// Registry receives the action bindings of E and F buttons. Nil
	// disables key bindings.
	Registry input.ActionRegistry

	Resources *resources.Table
}

// Prompt is a modal box with a themed background and an ordered list of
// controls. The close icon is always the first control.
type Prompt struct {
	core.Object

	theme    theme.PromptTheme
	width    float64
	height   float64
	onClose  func()
	registry input.ActionRegistry
	res      *resources.Table

	background []float64
	components []component
	closeIcon  *CloseIcon
}

// NewPrompt creates a prompt with its close icon.
func NewPrompt(cfg Config) *Prompt {
	res := resources.Or(cfg.Resources)
	th := theme.DefaultPromptTheme()
	if cfg.Style != "" {
		// An unknown style leaves the defaults in place.
		th, _ = theme.ResolvePrompt(cfg.Style)
	}
	section := res.Section(resources.GroupBackgrounds, th.Background)

	p := &Prompt{
		Object:     core.NewObject(cfg.StartHidden),
		theme:      th,
		width:      cfg.Width,
		height:     cfg.Height,
		onClose:    cfg.OnClose,
		registry:   cfg.Registry,
		res:        res,
		background: atlas.UVs(&section),
	}
	if p.width == 0 {
		p.width = section.SourceWidth
	}
	if p.height == 0 {
		p.height = section.SourceHeight
	}

	p.closeIcon = newCloseIcon(closeIconConfig{
		style:   th.CloseIcon,
		x:       th.CloseOffset,
		y:       DefaultCloseIconTop,
		onPress: p.Close,
		pinned:  cfg.HideCloseIcon,
	}, p.Visible(), res)
	p.components = append(p.components, component{kind: kindCloseIcon, closeIcon: p.closeIcon})
	return p
}

// Show displays the prompt and every control, in insertion order.
func (p *Prompt) Show() {
	p.Object.Show()
	for _, c := range p.components {
		c.setContainerVisible(true)
	}
}

// Hide hides the prompt and every control, in insertion order.
func (p *Prompt) Hide() {
	p.Object.Hide()
	for _, c := range p.components {
		c.setContainerVisible(false)
	}
}

// Close runs the OnClose callback and hides the prompt.
func (p *Prompt) Close() {
	if p.onClose != nil {
		p.onClose()
	}
	p.Hide()
}

// Width returns the prompt width in pixels.
func (p *Prompt) Width() float64 { return p.width }

// Height returns the prompt height in pixels.
func (p *Prompt) Height() float64 { return p.height }

// DarkTheme reports whether the prompt uses the dark background.
func (p *Prompt) DarkTheme() bool { return p.theme.Dark() }

// Theme returns the resolved theme.
func (p *Prompt) Theme() theme.PromptTheme { return p.theme }

// CloseIcon returns the close control, for example to hide it.
func (p *Prompt) CloseIcon() *CloseIcon { return p.closeIcon }

// Len returns the number of controls including the close icon.
func (p *Prompt) Len() int { return len(p.components) }

func (p *Prompt) box() box {
	return box{width: p.width, height: p.height}
}

func (p *Prompt) textColor() graphics.Color {
	return p.res.TextColor(p.theme.Dark())
}

// AddText adds a text label and returns it.
func (p *Prompt) AddText(cfg TextConfig) *Text {
	t := newText(cfg, p.Visible(), p.textColor(), p.res)
	p.components = append(p.components, component{kind: kindText, text: t})
	return t
}

// AddIcon adds an image and returns it.
func (p *Prompt) AddIcon(cfg IconConfig) *Icon {
	i := newIcon(cfg, p.Visible(), p.box())
	p.components = append(p.components, component{kind: kindIcon, icon: i})
	return i
}

// AddButton adds a button and returns it.
func (p *Prompt) AddButton(cfg ButtonConfig) *Button {
	b := newButton(cfg, p.Visible(), p.box(), p.registry, p.res)
	p.components = append(p.components, component{kind: kindButton, button: b})
	return b
}

// AddCheckbox adds a checkbox and returns it.
func (p *Prompt) AddCheckbox(cfg CheckboxConfig) *Checkbox {
	c := newCheckbox(cfg, p.Visible(), p.box(), p.theme.Brightness, p.textColor(), p.res)
	p.components = append(p.components, component{kind: kindCheckbox, checkbox: c})
	return c
}

// AddSwitch adds a switch and returns it.
func (p *Prompt) AddSwitch(cfg SwitchConfig) *Switch {
	s := newSwitch(cfg, p.Visible(), p.box(), p.textColor(), p.res)
	p.components = append(p.components, component{kind: kindSwitch, sw: s})
	return s
}

// AddTextBox adds a text input and returns it.
func (p *Prompt) AddTextBox(cfg TextInputConfig) *TextInput {
	t := newTextInput(cfg, p.Visible(), p.box(), p.res)
	p.components = append(p.components, component{kind: kindTextInput, textInput: t})
	return t
}

// Render implements core.Widget. The background comes first and controls
// follow in insertion order, so later controls draw over earlier ones.
func (p *Prompt) Render(key string) render.Node {
	children := make([]render.Node, 0, len(p.components)+1)
	children = append(children, render.Node{
		Kind: render.KindEntity,
		Transform: render.Transform{
			PositionType: render.PositionAbsolute,
			Position:     render.Edges{Top: render.Px(0), Left: render.Px(0)},
			Width:        render.Pct(100),
			Height:       render.Pct(100),
		},
		Background: &render.Background{
			Texture:     p.res.Texture(p.theme.Dark()),
			TextureMode: render.TextureStretch,
			UVs:         p.background,
		},
	})
	for i, c := range p.components {
		children = append(children, c.render(fmt.Sprintf("prompt-component-%d", i)))
	}
	return render.Entity(key, render.Transform{
		Display:        p.Display(),
		FlexDirection:  render.FlexColumn,
		AlignItems:     render.AlignCenter,
		JustifyContent: render.JustifyCenter,
		PositionType:   render.PositionAbsolute,
		Position:       render.Edges{Top: render.Pct(50), Left: render.Pct(50)},
		Margin:         render.Edges{Top: render.Px(-p.height / 2), Left: render.Px(-p.width / 2)},
		Width:          render.Px(p.width),
		Height:         render.Px(p.height),
	}, children...)
}

// box is the prompt size handed to controls measured from its edges.
type box struct {
	width, height float64
}

// edgeOffset converts a control's relative position into the bottom/right
// distances used to place it inside the prompt.
func (b box) edgeOffset(w, h, x, y float64) render.Edges {
	absX := -b.width/2 + w/2 + x
	absY := b.height/2 - h/2 + y
	return render.Edges{Bottom: render.Px(absY), Right: render.Px(-absX)}
}
