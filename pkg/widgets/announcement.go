package widgets

import (
	"time"

	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/frame"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
)

// Announcement defaults.
const (
	DefaultAnnouncementDuration = 3 * time.Second
	DefaultAnnouncementSize     = 50
)

// AnnouncementConfig configures an Announcement.
type AnnouncementConfig struct {
	StartHidden bool
	Value       string

	// Duration is how long the text stays up once shown. Zero means
	// DefaultAnnouncementDuration; a negative value never hides.
	Duration time.Duration

	// Offset from the screen centre. Default 0,0.
	Offset *Offset
	// Color defaults to yellow. Zero selects the default; see SetColor.
	Color graphics.Color
	// Size defaults to DefaultAnnouncementSize.
	Size float64

	// Scheduler runs the auto-hide countdown. Without one the text stays
	// until hidden.
	Scheduler frame.Scheduler
	Resources *resources.Table
}

// Announcement shows large text in the centre of the screen and hides it
// again after a delay.
type Announcement struct {
	core.DelayedHiding
	value  string
	offset Offset
	color  graphics.Color
	size   float64
	font   string
}

// NewAnnouncement creates an announcement.
func NewAnnouncement(cfg AnnouncementConfig) *Announcement {
	duration := cfg.Duration
	if duration == 0 {
		duration = DefaultAnnouncementDuration
	}
	a := &Announcement{
		value:  cfg.Value,
		offset: offsetOr(cfg.Offset, Offset{}),
		color:  cfg.Color,
		size:   orFloat(cfg.Size, DefaultAnnouncementSize),
		font:   resources.Or(cfg.Resources).Fonts.Default,
	}
	if a.color.IsZero() {
		a.color = graphics.ColorYellow
	}
	a.Init(cfg.StartHidden, duration, cfg.Scheduler)
	return a
}

// Value returns the text.
func (a *Announcement) Value() string { return a.value }

// SetValue replaces the text.
func (a *Announcement) SetValue(v string) { a.value = v }

// SetColor replaces the text colour. The zero colour is applied as given.
func (a *Announcement) SetColor(c graphics.Color) { a.color = c }

// Render implements core.Widget.
func (a *Announcement) Render(key string) render.Node {
	return render.Node{
		Kind: render.KindLabel,
		Key:  key,
		Label: &render.Label{
			Value:     a.value,
			Font:      a.font,
			FontSize:  a.size,
			Color:     a.color,
			TextAlign: render.AlignBottomCenter,
		},
		Transform: render.Transform{
			Display:      a.Display(),
			PositionType: render.PositionAbsolute,
			Position:     render.Edges{Bottom: render.Pct(50), Left: render.Pct(50)},
			Margin:       render.Edges{Left: render.Px(a.offset.X), Bottom: render.Px(a.offset.Y)},
		},
	}
}
