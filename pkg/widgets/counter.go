package widgets

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
)

// Corner text defaults shared by Counter and CornerLabel.
const (
	DefaultCornerSize = 25
)

// DefaultCornerOffset is the default position of corner text, measured from
// the bottom-right of the screen.
var DefaultCornerOffset = Offset{X: -40, Y: 70}

// CounterConfig configures a Counter.
type CounterConfig struct {
	StartHidden bool
	Value       float64

	// Offset from the bottom-right corner. Default -40,70.
	Offset *Offset
	// Color defaults to white. Zero selects the default; see SetColor.
	Color graphics.Color
	// Size defaults to DefaultCornerSize.
	Size float64
	// FixedDigits pads the integer part with leading zeros to this many
	// digits. Zero disables padding.
	FixedDigits int

	Resources *resources.Table
}

// Counter displays a number in the bottom-right corner.
//
// The value is kept exactly, so IncreaseBy followed by DecreaseBy with the
// same amount always restores the previous value.
type Counter struct {
	core.Object
	value       big.Rat
	offset      Offset
	color       graphics.Color
	size        float64
	fixedDigits int
	font        string
}

// NewCounter creates a counter.
func NewCounter(cfg CounterConfig) *Counter {
	c := &Counter{
		Object:      core.NewObject(cfg.StartHidden),
		offset:      offsetOr(cfg.Offset, DefaultCornerOffset),
		color:       cfg.Color,
		size:        orFloat(cfg.Size, DefaultCornerSize),
		fixedDigits: cfg.FixedDigits,
		font:        resources.Or(cfg.Resources).Fonts.Default,
	}
	if c.color.IsZero() {
		c.color = graphics.ColorWhite
	}
	c.Set(cfg.Value)
	return c
}

// Read returns the current value.
func (c *Counter) Read() float64 {
	f, _ := c.value.Float64()
	return f
}

// Set replaces the value. Non-finite values are ignored.
func (c *Counter) Set(v float64) {
	var r big.Rat
	if r.SetFloat64(v) == nil {
		return
	}
	c.value.Set(&r)
}

// Increase adds one.
func (c *Counter) Increase() { c.IncreaseBy(1) }

// IncreaseBy adds amount. Non-finite amounts are ignored.
func (c *Counter) IncreaseBy(amount float64) {
	var r big.Rat
	if r.SetFloat64(amount) == nil {
		return
	}
	c.value.Add(&c.value, &r)
}

// Decrease subtracts one.
func (c *Counter) Decrease() { c.DecreaseBy(1) }

// DecreaseBy subtracts amount. Non-finite amounts are ignored.
func (c *Counter) DecreaseBy(amount float64) {
	c.IncreaseBy(-amount)
}

// SetColor replaces the text colour. The zero colour is applied as given.
func (c *Counter) SetColor(col graphics.Color) { c.color = col }

// Text returns the value as displayed.
func (c *Counter) Text() string {
	return padDigits(strconv.FormatFloat(c.Read(), 'f', -1, 64), c.fixedDigits)
}

// Render implements core.Widget.
func (c *Counter) Render(key string) render.Node {
	return cornerText(key, c.Text(), c.font, c.size, c.color, c.offset, c.Display())
}

// padDigits left-pads the integer part of a formatted number with zeros.
func padDigits(s string, digits int) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart := s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
	}
	if n := digits - len(intPart); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return sign + s
}

func cornerText(key, value, font string, size float64, color graphics.Color, offset Offset, display render.Display) render.Node {
	return render.Node{
		Kind: render.KindLabel,
		Key:  key,
		Label: &render.Label{
			Value:     value,
			Font:      font,
			FontSize:  size,
			Color:     color,
			TextAlign: render.AlignBottomRight,
		},
		Transform: render.Transform{
			Display:      display,
			PositionType: render.PositionAbsolute,
			Position:     render.Edges{Bottom: render.Px(offset.Y), Right: render.Px(-offset.X)},
		},
	}
}
