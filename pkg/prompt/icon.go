package prompt

import (
	"github.com/go-drift/sceneui/pkg/atlas"
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/render"
)

// DefaultIconSize is the width and height of a prompt icon.
const DefaultIconSize = 128

// IconConfig configures an Icon.
type IconConfig struct {
	StartHidden bool
	// Image is the texture path.
	Image string
	// Width and Height default to DefaultIconSize.
	Width, Height float64
	// X and Y place the icon from the prompt edges; see the package
	// documentation.
	X, Y float64
	// Section cuts a region out of Image. Nil draws the whole image.
	Section *atlas.Section
}

// Icon is an image inside a prompt.
type Icon struct {
	core.InContainer

	// Element is the image as rendered, minus its display.
	Element render.Node
}

func newIcon(cfg IconConfig, promptVisible bool, b box) *Icon {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = DefaultIconSize
	}
	if h == 0 {
		h = DefaultIconSize
	}
	return &Icon{
		InContainer: core.NewInContainer(cfg.StartHidden, promptVisible),
		Element: render.Node{
			Kind: render.KindEntity,
			Transform: render.Transform{
				Width:        render.Px(w),
				Height:       render.Px(h),
				PositionType: render.PositionAbsolute,
				Position:     b.edgeOffset(w, h, cfg.X, cfg.Y),
			},
			Background: &render.Background{
				Texture:     cfg.Image,
				TextureMode: render.TextureStretch,
				UVs:         atlas.UVs(cfg.Section),
			},
		},
	}
}

// Render implements core.Widget.
func (i *Icon) Render(key string) render.Node {
	n := i.Element
	n.Key = key
	n.Transform.Display = i.Display()
	return n
}
