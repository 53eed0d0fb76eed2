package widgets

import (
	"github.com/go-drift/sceneui/pkg/atlas"
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/theme"
)

// DefaultPresetOffset is where the sized icon presets sit, measured from
// the bottom-right of the screen.
var DefaultPresetOffset = Offset{X: -30, Y: 50}

// IconConfig configures an Icon.
type IconConfig struct {
	StartHidden bool
	// Image is the texture path.
	Image string
	// Size is the square preset. Default theme.IconLarge.
	Size theme.IconSize
	// Width and Height override the preset size.
	Width, Height float64
	// Offset from the bottom-right corner. Default 0,0 for NewIcon and
	// -30,50 for the sized presets.
	Offset *Offset
	// Section cuts a region out of Image. Nil draws the whole image.
	Section *atlas.Section
}

// Icon draws an image anchored to the bottom-right corner of the screen.
type Icon struct {
	core.Object
	image         string
	width, height float64
	offset        Offset
	uvs           []float64
}

// NewIcon creates an icon.
func NewIcon(cfg IconConfig) *Icon {
	return newIcon(cfg, Offset{})
}

// NewSmallIcon creates a 32x32 icon.
func NewSmallIcon(cfg IconConfig) *Icon {
	cfg.Size = theme.IconSmall
	return newIcon(cfg, DefaultPresetOffset)
}

// NewMediumIcon creates a 64x64 icon.
func NewMediumIcon(cfg IconConfig) *Icon {
	cfg.Size = theme.IconMedium
	return newIcon(cfg, DefaultPresetOffset)
}

// NewLargeIcon creates a 128x128 icon.
func NewLargeIcon(cfg IconConfig) *Icon {
	cfg.Size = theme.IconLarge
	return newIcon(cfg, DefaultPresetOffset)
}

func newIcon(cfg IconConfig, defOffset Offset) *Icon {
	size := cfg.Size
	if size == 0 {
		size = theme.IconLarge
	}
	return &Icon{
		Object: core.NewObject(cfg.StartHidden),
		image:  cfg.Image,
		width:  orFloat(cfg.Width, float64(size)),
		height: orFloat(cfg.Height, float64(size)),
		offset: offsetOr(cfg.Offset, defOffset),
		uvs:    atlas.UVs(cfg.Section),
	}
}

// Size returns the drawn size.
func (i *Icon) Size() (width, height float64) { return i.width, i.height }

// Render implements core.Widget.
func (i *Icon) Render(key string) render.Node {
	n := render.Entity(key, render.Transform{
		Display:      i.Display(),
		Width:        render.Px(i.width),
		Height:       render.Px(i.height),
		PositionType: render.PositionAbsolute,
		Position:     render.Edges{Bottom: render.Px(i.offset.Y), Right: render.Px(-i.offset.X)},
	})
	n.Background = &render.Background{
		Texture:     i.image,
		TextureMode: render.TextureStretch,
		UVs:         i.uvs,
	}
	return n
}
