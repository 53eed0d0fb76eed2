package prompt

import (
	"github.com/go-drift/sceneui/pkg/atlas"
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
	"github.com/go-drift/sceneui/pkg/theme"
)

// DefaultCloseIconTop is the close icon's distance from the prompt top.
const DefaultCloseIconTop = 10

type closeIconConfig struct {
	style   theme.CloseIconStyle
	x, y    float64
	onPress func()
	pinned  bool
}

// CloseIcon is the close control in a prompt's top-right corner. Pressing
// it closes the prompt.
type CloseIcon struct {
	core.InContainer
	width, height float64
	x, y          float64
	texture       string
	uvs           []float64
	onPress       func()

	// pinned keeps the icon hidden whatever the prompt does.
	pinned bool
}

func newCloseIcon(cfg closeIconConfig, promptVisible bool, res *resources.Table) *CloseIcon {
	section := res.Section(resources.GroupIcons, cfg.style.Region())
	return &CloseIcon{
		InContainer: core.NewInContainer(cfg.pinned, promptVisible),
		width:       section.SourceWidth,
		height:      section.SourceHeight,
		x:           cfg.x,
		y:           cfg.y,
		texture:     res.Texture(false),
		uvs:         atlas.UVs(&section),
		onPress:     cfg.onPress,
		pinned:      cfg.pinned,
	}
}

// Show displays the icon unless the prompt was built with HideCloseIcon.
func (c *CloseIcon) Show() {
	if c.pinned {
		return
	}
	c.InContainer.Show()
}

// Pinned reports whether the icon stays hidden for the prompt's lifetime.
func (c *CloseIcon) Pinned() bool { return c.pinned }

// Press closes the prompt as a click would. A pinned icon ignores presses.
func (c *CloseIcon) Press() {
	if !c.pinned && c.onPress != nil {
		c.onPress()
	}
}

// Render implements core.Widget.
func (c *CloseIcon) Render(key string) render.Node {
	n := render.Entity(key, render.Transform{
		Display:      c.Display(),
		Width:        render.Px(c.width),
		Height:       render.Px(c.height),
		PositionType: render.PositionAbsolute,
		Position:     render.Edges{Top: render.Px(c.y), Right: render.Px(c.x)},
	})
	n.Background = &render.Background{
		Texture:     c.texture,
		TextureMode: render.TextureStretch,
		UVs:         c.uvs,
	}
	n.OnMouseDown = c.Press
	return n
}
