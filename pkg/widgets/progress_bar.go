package widgets

import (
	"math"

	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
	"github.com/go-drift/sceneui/pkg/theme"
)

// Progress bar geometry at scale 1.
const (
	BarWidth  = 128
	BarHeight = 32

	// BarStep is the change applied by Increase and Decrease.
	BarStep = 0.1
)

// DefaultBarOffset is the default position measured from the bottom-right
// of the screen.
var DefaultBarOffset = Offset{X: -30, Y: 60}

// ProgressBarConfig configures a ProgressBar.
type ProgressBarConfig struct {
	StartHidden bool
	// Value is the initial fill, clamped to [0,1].
	Value float64
	// Scale multiplies the 128x32 size. Default 1.
	Scale float64
	// Color is the fill colour. Default red; zero selects the default, see
	// SetColor.
	Color graphics.Color
	// Offset from the bottom-right corner. Default -30,60.
	Offset *Offset
	// Style is the frame look. Default BarRoundSilver.
	Style     theme.BarStyle
	Resources *resources.Table
}

// ProgressBar is a framed bar filled to a fraction between 0 and 1.
type ProgressBar struct {
	core.Object
	value  float64
	scale  float64
	color  graphics.Color
	offset Offset
	style  theme.BarStyle
	res    *resources.Table

	padTop, padBottom, padLeft, padRight float64
}

// NewProgressBar creates a progress bar.
func NewProgressBar(cfg ProgressBarConfig) *ProgressBar {
	b := &ProgressBar{
		Object: core.NewObject(cfg.StartHidden),
		scale:  orFloat(cfg.Scale, 1),
		color:  cfg.Color,
		offset: offsetOr(cfg.Offset, DefaultBarOffset),
		style:  cfg.Style,
		res:    resources.Or(cfg.Resources),
	}
	if b.color.IsZero() {
		b.color = graphics.ColorRed
	}
	if b.style == "" {
		b.style = theme.BarRoundSilver
	}
	if b.style.EvenBorder() {
		b.padTop, b.padBottom, b.padLeft, b.padRight = 3, 3, 3, 3
	} else {
		b.padTop, b.padBottom, b.padLeft, b.padRight = 2, 4, 2, 2
	}
	b.padTop *= b.scale
	b.padBottom *= b.scale
	b.padLeft *= b.scale
	b.padRight *= b.scale
	b.Set(cfg.Value)
	return b
}

// SetColor replaces the fill colour. The zero colour is applied as given.
func (b *ProgressBar) SetColor(c graphics.Color) { b.color = c }

// Read returns the fill fraction.
func (b *ProgressBar) Read() float64 { return b.value }

// Set replaces the fill, clamped to [0,1]. NaN is ignored.
func (b *ProgressBar) Set(v float64) {
	if math.IsNaN(v) {
		return
	}
	b.value = clamp01(v)
}

// Increase adds BarStep.
func (b *ProgressBar) Increase() { b.IncreaseBy(BarStep) }

// IncreaseBy adds amount, saturating at 1. Non-finite amounts are ignored.
func (b *ProgressBar) IncreaseBy(amount float64) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return
	}
	b.Set(b.value + amount)
}

// Decrease subtracts BarStep.
func (b *ProgressBar) Decrease() { b.DecreaseBy(BarStep) }

// DecreaseBy subtracts amount, saturating at 0. Non-finite amounts are
// ignored.
func (b *ProgressBar) DecreaseBy(amount float64) { b.IncreaseBy(-amount) }

// Size returns the bar's outer size.
func (b *ProgressBar) Size() (width, height float64) {
	return BarWidth * b.scale, BarHeight * b.scale
}

// FillWidth returns the width of the coloured fill for the current value.
func (b *ProgressBar) FillWidth() float64 {
	w, _ := b.Size()
	return max(w*b.value-b.padLeft-b.padRight, 0)
}

// Render implements core.Widget.
func (b *ProgressBar) Render(key string) render.Node {
	w, h := b.Size()
	texture := b.res.Texture(false)
	frameNode := render.Node{
		Kind:      render.KindEntity,
		Transform: render.Transform{Width: render.Pct(100), Height: render.Pct(100)},
		Background: &render.Background{
			Texture:     texture,
			TextureMode: render.TextureStretch,
			UVs:         b.res.UVs(resources.GroupButtons, b.style.Region()),
		},
	}
	fill := render.Node{
		Kind: render.KindEntity,
		Transform: render.Transform{
			Width:        render.Px(b.FillWidth()),
			Height:       render.Px(h - b.padTop - b.padBottom),
			PositionType: render.PositionAbsolute,
			Position:     render.Edges{Top: render.Px(b.padTop), Left: render.Px(b.padLeft)},
		},
		Background: &render.Background{
			Color:       b.color,
			Texture:     texture,
			TextureMode: render.TextureStretch,
			UVs:         b.res.UVs(resources.GroupButtons, b.style.FillRegion()),
		},
	}
	return render.Entity(key, render.Transform{
		Display:      b.Display(),
		Width:        render.Px(w),
		Height:       render.Px(h),
		PositionType: render.PositionAbsolute,
		Position:     render.Edges{Bottom: render.Px(b.offset.Y), Right: render.Px(-b.offset.X)},
	}, frameNode, fill)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
