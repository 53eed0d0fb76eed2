package prompt

import (
	"testing"

	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/input"
	"github.com/go-drift/sceneui/pkg/render"
	scenetest "github.com/go-drift/sceneui/pkg/testing"
	"github.com/go-drift/sceneui/pkg/theme"
)

func TestButton_Position(t *testing.T) {
	tests := []struct {
		x, y        float64
		right, bott float64
	}{
		// A centred button in a 400x250 prompt: -200+87 = -113, 125-23 = 102.
		{0, 0, 113, 102},
		{0, -70, 113, 32},
		{-100, -120, 213, -18},
		{100, 10, 13, 112},
	}
	for _, tt := range tests {
		p := NewPrompt(Config{})
		b := p.AddButton(ButtonConfig{X: tt.x, Y: tt.y})
		n := b.Render("b")
		want := render.Edges{Bottom: render.Px(tt.bott), Right: render.Px(tt.right)}
		if n.Transform.Position != want {
			t.Errorf("(%v,%v): position = %+v, want %+v", tt.x, tt.y, n.Transform.Position, want)
		}
	}
}

func TestButton_GlyphOffset(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", -20},
		{"Ok", -28},
		{"Submit", -44},
		{"A very long label", -65},
		{"確認", -36},
	}
	for _, tt := range tests {
		if got := glyphOffset(tt.text); got != tt.want {
			t.Errorf("glyphOffset(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestButton_Styles(t *testing.T) {
	tests := []struct {
		style     theme.ButtonStyle
		children  int
		textColor graphics.Color
		shift     float64
	}{
		{"", 2, graphics.ColorWhite, 0},
		{theme.ButtonE, 3, graphics.ColorWhite, 25},
		{theme.ButtonF, 3, graphics.ColorWhite, 25},
		{theme.ButtonRoundWhite, 2, graphics.ColorBlack, 0},
		{theme.ButtonSquareWhite, 2, graphics.ColorBlack, 0},
		{theme.ButtonRed, 2, graphics.ColorWhite, 0},
	}
	for _, tt := range tests {
		p := NewPrompt(Config{})
		b := p.AddButton(ButtonConfig{Text: "Go", Style: tt.style})
		n := b.Render("b")
		if len(n.Children) != tt.children {
			t.Errorf("%q: children = %d, want %d", tt.style, len(n.Children), tt.children)
			continue
		}
		caption := n.Children[len(n.Children)-1]
		if caption.Label.Color != tt.textColor {
			t.Errorf("%q: text colour = %v, want %v", tt.style, caption.Label.Color, tt.textColor)
		}
		if caption.Transform.Margin.Left != render.Px(tt.shift) {
			t.Errorf("%q: caption shift = %v", tt.style, caption.Transform.Margin.Left)
		}
	}
}

func TestButton_GrayOut(t *testing.T) {
	clicks := 0
	p := NewPrompt(Config{})
	b := p.AddButton(ButtonConfig{Text: "Go", Style: theme.ButtonE, OnMouseDown: func() { clicks++ }})
	st := scenetest.NewSceneTester(t, p)

	b.GrayOut()
	st.Pump()
	if err := st.Tap(scenetest.ByText("Go")); err != nil {
		t.Fatal(err)
	}
	if clicks != 0 {
		t.Error("grayed out button should ignore clicks")
	}
	n := st.Find(scenetest.ByText("Go")).First()
	if n.Label.Color != graphics.ColorGray {
		t.Errorf("disabled colour = %v, want gray", n.Label.Color)
	}
	if st.Find(scenetest.Visible(scenetest.ByPredicate(func(n *render.Node) bool {
		return n.Transform.Width == render.Px(glyphSize)
	}))).Exists() {
		t.Error("glyph should be hidden while disabled")
	}

	b.Enable()
	st.Pump()
	if err := st.Tap(scenetest.ByText("Go")); err != nil {
		t.Fatal(err)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

// TestButton_BindingFollowsVisibility checks a button holds exactly one
// action binding while displayed and none otherwise.
func TestButton_BindingFollowsVisibility(t *testing.T) {
	reg := input.NewRegistry()
	p := NewPrompt(Config{StartHidden: true, Registry: reg})
	pressed := 0
	b := p.AddButton(ButtonConfig{Text: "Go", Style: theme.ButtonE, OnMouseDown: func() { pressed++ }})

	if b.EffectiveVisible() || b.Bound() || reg.Active(input.ActionPrimary) != 0 {
		t.Fatal("button in a hidden prompt must not be bound")
	}
	if reg.Dispatch(input.ActionPrimary) != 0 || pressed != 0 {
		t.Fatal("dispatch reached a hidden button")
	}

	p.Show()
	if !b.EffectiveVisible() || reg.Active(input.ActionPrimary) != 1 {
		t.Fatalf("after Show: visible=%v bindings=%d", b.EffectiveVisible(), reg.Active(input.ActionPrimary))
	}
	reg.Dispatch(input.ActionPrimary)
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}

	b.Show()
	p.Show()
	if got := reg.Active(input.ActionPrimary); got != 1 {
		t.Errorf("repeated Show left %d bindings", got)
	}

	b.Hide()
	if reg.Len() != 0 {
		t.Error("Hide should release the binding")
	}
	b.Show()
	p.Hide()
	if reg.Len() != 0 {
		t.Error("hiding the prompt should release the binding")
	}

	b.GrayOut()
	p.Show()
	if reg.Active(input.ActionPrimary) != 1 {
		t.Error("graying out must not affect the binding")
	}
	reg.Dispatch(input.ActionPrimary)
	if pressed != 1 {
		t.Error("disabled button ran on key press")
	}
}

func TestButton_SecondaryAndPlain(t *testing.T) {
	reg := input.NewRegistry()
	p := NewPrompt(Config{Registry: reg})
	p.AddButton(ButtonConfig{Style: theme.ButtonF})
	p.AddButton(ButtonConfig{Style: theme.ButtonRoundGold})
	if reg.Active(input.ActionSecondary) != 1 || reg.Active(input.ActionPrimary) != 0 {
		t.Errorf("bindings: primary=%d secondary=%d", reg.Active(input.ActionPrimary), reg.Active(input.ActionSecondary))
	}
}

func TestButton_CaptionOverride(t *testing.T) {
	p := NewPrompt(Config{})
	b := p.AddButton(ButtonConfig{Text: "Yeah", Style: theme.ButtonE})
	b.Caption.Label.Color = graphics.ColorYellow

	caption := func() graphics.Color {
		n := b.Render("b")
		return n.Children[len(n.Children)-1].Label.Color
	}
	if got := caption(); got != graphics.ColorYellow {
		t.Errorf("colour = %v, want yellow", got)
	}
	b.GrayOut()
	if got := caption(); got != graphics.ColorGray {
		t.Errorf("disabled colour = %v, want gray", got)
	}
	b.Enable()
	if got := caption(); got != graphics.ColorYellow {
		t.Errorf("re-enabled colour = %v, want yellow", got)
	}
}

func TestButton_ReplacedPartsRender(t *testing.T) {
	p := NewPrompt(Config{})
	b := p.AddButton(ButtonConfig{Text: "Go", Style: theme.ButtonE})
	b.Caption = render.Node{Kind: render.KindEntity}
	b.Image = render.Node{Kind: render.KindEntity}
	b.GrayOut()

	n := b.Render("b")
	if len(n.Children) != 3 {
		t.Fatalf("children = %d, want image, glyph and caption", len(n.Children))
	}
	if n.Children[2].Label != nil {
		t.Error("a replaced caption without a label should render as given")
	}
}
