package widgets

import (
	"time"

	"github.com/go-drift/sceneui/pkg/atlas"
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/frame"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
)

// CenterImage default size.
const (
	CenterImageSize = 512
)

// Loading indicator size at scale 1.
const (
	LoadingWidth  = 50
	LoadingHeight = 66

	loadingRegion = "TimerLarge"
)

// CenterImageConfig configures a CenterImage.
type CenterImageConfig struct {
	StartHidden bool
	Image       string
	// Duration hides the image after it has been shown this long. Zero
	// keeps it up until hidden.
	Duration time.Duration
	// Width and Height default to CenterImageSize.
	Width, Height float64
	// Offset from the screen centre; positive Y moves up.
	Offset    *Offset
	Section   *atlas.Section
	Scheduler frame.Scheduler
}

// CenterImage shows an image in the middle of the screen, optionally for a
// limited time.
type CenterImage struct {
	core.DelayedHiding
	image         string
	width, height float64
	offset        Offset
	uvs           []float64
}

// NewCenterImage creates a centre image.
func NewCenterImage(cfg CenterImageConfig) *CenterImage {
	c := &CenterImage{
		image:  cfg.Image,
		width:  orFloat(cfg.Width, CenterImageSize),
		height: orFloat(cfg.Height, CenterImageSize),
		offset: offsetOr(cfg.Offset, Offset{}),
		uvs:    atlas.UVs(cfg.Section),
	}
	c.Init(cfg.StartHidden, cfg.Duration, cfg.Scheduler)
	return c
}

// Render implements core.Widget.
func (c *CenterImage) Render(key string) render.Node {
	return centered(key, c.Display(), c.width, c.height, c.offset, &render.Background{
		Texture:     c.image,
		TextureMode: render.TextureStretch,
		UVs:         c.uvs,
	})
}

// LoadingConfig configures a Loading indicator.
type LoadingConfig struct {
	StartHidden bool
	// Duration hides the indicator after it has been shown this long. Zero
	// keeps it up until hidden.
	Duration time.Duration
	Offset   *Offset
	// Scale multiplies the 50x66 size. Default 1.
	Scale     float64
	Scheduler frame.Scheduler
	Resources *resources.Table
}

// Loading shows the timer glyph in the middle of the screen.
type Loading struct {
	core.DelayedHiding
	width, height float64
	offset        Offset
	texture       string
	uvs           []float64
}

// NewLoading creates a loading indicator.
func NewLoading(cfg LoadingConfig) *Loading {
	res := resources.Or(cfg.Resources)
	scale := orFloat(cfg.Scale, 1)
	l := &Loading{
		width:   LoadingWidth * scale,
		height:  LoadingHeight * scale,
		offset:  offsetOr(cfg.Offset, Offset{}),
		texture: res.Texture(false),
		uvs:     res.UVs(resources.GroupIcons, loadingRegion),
	}
	l.Init(cfg.StartHidden, cfg.Duration, cfg.Scheduler)
	return l
}

// Render implements core.Widget.
func (l *Loading) Render(key string) render.Node {
	return centered(key, l.Display(), l.width, l.height, l.offset, &render.Background{
		Texture:     l.texture,
		TextureMode: render.TextureStretch,
		UVs:         l.uvs,
	})
}

func centered(key string, display render.Display, w, h float64, offset Offset, bg *render.Background) render.Node {
	n := render.Entity(key, render.Transform{
		Display:      display,
		Width:        render.Px(w),
		Height:       render.Px(h),
		PositionType: render.PositionAbsolute,
		Position:     render.Edges{Top: render.Pct(50), Left: render.Pct(50)},
		Margin:       render.Edges{Top: render.Px(-offset.Y - h/2), Left: render.Px(offset.X - w/2)},
	})
	n.Background = bg
	return n
}
