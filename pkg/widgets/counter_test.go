package widgets

import (
	"math"
	"testing"

	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	scenetest "github.com/go-drift/sceneui/pkg/testing"
)

func TestCounter_IncreaseDecrease(t *testing.T) {
	c := NewCounter(CounterConfig{Value: 123})
	c.Increase()
	if got := c.Read(); got != 124 {
		t.Errorf("Read() = %v, want 124", got)
	}
	c.Decrease()
	c.Decrease()
	if got := c.Read(); got != 122 {
		t.Errorf("Read() = %v, want 122", got)
	}
}

// TestCounter_RoundTrip checks that adding and removing the same amount
// restores the exact previous value, even for amounts that are not exact
// in binary.
func TestCounter_RoundTrip(t *testing.T) {
	for _, amount := range []float64{0.1, 0.2, 1e-9, 3.3, 1e15} {
		c := NewCounter(CounterConfig{Value: 0.7})
		before := c.Read()
		c.IncreaseBy(amount)
		c.DecreaseBy(amount)
		if got := c.Read(); got != before {
			t.Errorf("amount %v: Read() = %v, want %v", amount, got, before)
		}
	}
}

func TestCounter_IgnoresNonFinite(t *testing.T) {
	c := NewCounter(CounterConfig{Value: 5})
	c.Set(math.NaN())
	c.IncreaseBy(math.Inf(1))
	if got := c.Read(); got != 5 {
		t.Errorf("Read() = %v, want 5", got)
	}
}

func TestCounter_Text(t *testing.T) {
	tests := []struct {
		value  float64
		digits int
		want   string
	}{
		{123, 0, "123"},
		{7, 3, "007"},
		{-7, 3, "-007"},
		{1.5, 3, "001.5"},
		{12345, 3, "12345"},
	}
	for _, tt := range tests {
		c := NewCounter(CounterConfig{Value: tt.value, FixedDigits: tt.digits})
		if got := c.Text(); got != tt.want {
			t.Errorf("Text(%v, %d) = %q, want %q", tt.value, tt.digits, got, tt.want)
		}
	}
}

func TestCounter_Render(t *testing.T) {
	c := NewCounter(CounterConfig{Value: 123})
	st := scenetest.NewSceneTester(t, c)
	st.ExpectVisible(scenetest.ByText("123"))

	n := st.Root()
	if n.Kind != render.KindLabel || n.Label.TextAlign != render.AlignBottomRight {
		t.Errorf("unexpected node %v", n)
	}
	if n.Transform.Position.Bottom != render.Px(70) || n.Transform.Position.Right != render.Px(40) {
		t.Errorf("position = %+v, want bottom 70px right 40px", n.Transform.Position)
	}

	c.Increase()
	st.Pump()
	st.ExpectVisible(scenetest.ByText("124"))
	c.Hide()
	st.Pump()
	st.ExpectHidden(scenetest.ByText("124"))
}

func TestCornerLabel(t *testing.T) {
	l := NewCornerLabel(CornerLabelConfig{Value: "Label", Offset: &Offset{X: -300, Y: 70}})
	st := scenetest.NewSceneTester(t, l)
	st.ExpectVisible(scenetest.ByText("Label"))
	if got := st.Root().Transform.Position.Right; got != render.Px(300) {
		t.Errorf("right = %v, want 300px", got)
	}
	l.Set("Other")
	st.Pump()
	st.ExpectVisible(scenetest.ByText("Other"))
}

func TestSetColor_ZeroIsTransparent(t *testing.T) {
	c := NewCounter(CounterConfig{Value: 1, Color: graphics.ColorTransparent})
	l := NewCornerLabel(CornerLabelConfig{Value: "x"})
	a := NewAnnouncement(AnnouncementConfig{Value: "y"})
	if n := c.Render("c"); n.Label.Color != graphics.ColorWhite {
		t.Errorf("zero config colour = %v, want the white default", n.Label.Color)
	}

	c.SetColor(graphics.ColorTransparent)
	l.SetColor(graphics.ColorTransparent)
	a.SetColor(graphics.ColorTransparent)
	for _, n := range []render.Node{c.Render("c"), l.Render("l"), a.Render("a")} {
		if n.Label.Color != graphics.ColorTransparent {
			t.Errorf("%s colour = %v, want transparent", n.Key, n.Label.Color)
		}
	}

	b := NewProgressBar(ProgressBarConfig{Value: 1})
	b.SetColor(graphics.ColorTransparent)
	if fill := b.Render("b").Children[1]; fill.Background.Color != graphics.ColorTransparent {
		t.Errorf("fill colour = %v, want transparent", fill.Background.Color)
	}
}
