package prompt

import (
	"testing"

	"github.com/go-drift/sceneui/pkg/errors"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
	scenetest "github.com/go-drift/sceneui/pkg/testing"
	"github.com/go-drift/sceneui/pkg/theme"
	"github.com/google/go-cmp/cmp"
)

func TestNewPrompt_Defaults(t *testing.T) {
	p := NewPrompt(Config{})
	if !p.Visible() {
		t.Error("prompt should start visible")
	}
	if p.Width() != 400 || p.Height() != 250 {
		t.Errorf("size = %vx%v, want 400x250", p.Width(), p.Height())
	}
	if p.DarkTheme() {
		t.Error("default prompt should be light")
	}
	if p.Len() != 1 || p.CloseIcon() == nil {
		t.Errorf("want only the close icon, got %d controls", p.Len())
	}
}

func TestNewPrompt_Styles(t *testing.T) {
	tests := []struct {
		style         theme.PromptStyle
		width, height float64
		dark          bool
		closeRight    float64
	}{
		{theme.PromptLight, 400, 250, false, 10},
		{theme.PromptDark, 400, 250, true, 10},
		{theme.PromptLightLarge, 480, 384, false, 10},
		{theme.PromptDarkLarge, 480, 384, true, 10},
		{theme.PromptLightSlanted, 480, 300, false, 15},
		{theme.PromptDarkSlanted, 480, 300, true, 15},
		{"no-such-style", 400, 250, false, 10},
	}
	res := resources.Default()
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			p := NewPrompt(Config{Style: tt.style})
			if p.Width() != tt.width || p.Height() != tt.height {
				t.Errorf("size = %vx%v, want %vx%v", p.Width(), p.Height(), tt.width, tt.height)
			}
			if p.DarkTheme() != tt.dark {
				t.Errorf("DarkTheme() = %v, want %v", p.DarkTheme(), tt.dark)
			}
			n := p.Render("p")
			if got := n.Children[0].Background.Texture; got != res.Texture(tt.dark) {
				t.Errorf("background texture = %q", got)
			}
			closeNode := n.Find("prompt-component-0")
			if closeNode == nil || closeNode.Transform.Position.Right != render.Px(tt.closeRight) {
				t.Errorf("close icon = %v, want right %v", closeNode, tt.closeRight)
			}
		})
	}
}

func TestPrompt_ExplicitSize(t *testing.T) {
	p := NewPrompt(Config{Style: theme.PromptLightLarge, Width: 600, Height: 100})
	n := p.Render("p")
	want := render.Transform{
		Display:        render.DisplayFlex,
		FlexDirection:  render.FlexColumn,
		AlignItems:     render.AlignCenter,
		JustifyContent: render.JustifyCenter,
		PositionType:   render.PositionAbsolute,
		Position:       render.Edges{Top: render.Pct(50), Left: render.Pct(50)},
		Margin:         render.Edges{Top: render.Px(-50), Left: render.Px(-300)},
		Width:          render.Px(600),
		Height:         render.Px(100),
	}
	if diff := cmp.Diff(want, n.Transform); diff != "" {
		t.Errorf("transform mismatch (-want +got):\n%s", diff)
	}
}

// TestPrompt_RenderOrder checks the background comes first and controls
// follow in insertion order with stable keys.
func TestPrompt_RenderOrder(t *testing.T) {
	p := NewPrompt(Config{})
	p.AddText(TextConfig{Value: "a"})
	p.AddButton(ButtonConfig{Text: "b"})
	p.AddTextBox(TextInputConfig{})

	n := p.Render("p")
	if len(n.Children) != 5 {
		t.Fatalf("children = %d, want 5", len(n.Children))
	}
	if n.Children[0].Key != "" || n.Children[0].Background == nil {
		t.Error("first child should be the background")
	}
	for i, c := range n.Children[1:] {
		want := []string{"prompt-component-0", "prompt-component-1", "prompt-component-2", "prompt-component-3"}[i]
		if c.Key != want {
			t.Errorf("child %d key = %q, want %q", i+1, c.Key, want)
		}
	}
	if n.Children[2].Label.Value != "a" || n.Children[4].Kind != render.KindInput {
		t.Error("controls out of insertion order")
	}
}

func TestPrompt_HideShowRoundTrip(t *testing.T) {
	p := NewPrompt(Config{})
	text := p.AddText(TextConfig{Value: "Hi"})
	icon := p.AddIcon(IconConfig{Image: "a.png"})
	btn := p.AddButton(ButtonConfig{Text: "Go"})
	box := p.AddCheckbox(CheckboxConfig{Text: "c"})
	sw := p.AddSwitch(SwitchConfig{Text: "s"})
	in := p.AddTextBox(TextInputConfig{})

	effective := []func() bool{
		text.EffectiveVisible, icon.EffectiveVisible, btn.EffectiveVisible,
		box.EffectiveVisible, sw.EffectiveVisible, in.EffectiveVisible,
		p.CloseIcon().EffectiveVisible,
	}
	p.Hide()
	for i, ev := range effective {
		if ev() {
			t.Errorf("control %d still displayed after Hide", i)
		}
	}
	p.Show()
	for i, ev := range effective {
		if !ev() {
			t.Errorf("control %d not displayed after Show", i)
		}
	}
}

func TestPrompt_AddToHidden(t *testing.T) {
	p := NewPrompt(Config{StartHidden: true})
	text := p.AddText(TextConfig{Value: "late"})
	if text.Visible() || text.EffectiveVisible() {
		t.Error("control added to a hidden prompt must start hidden")
	}
	st := scenetest.NewSceneTester(t, p)
	st.ExpectHidden(scenetest.ByText("late"))
	p.Show()
	st.Pump()
	st.ExpectVisible(scenetest.ByText("late"))
}

func TestPrompt_DarkText(t *testing.T) {
	p := NewPrompt(Config{Style: theme.PromptDark, Width: 400, Height: 250})
	p.AddText(TextConfig{Value: "Hi", Y: 90})
	st := scenetest.NewSceneTester(t, p)

	n := st.Find(scenetest.Visible(scenetest.ByText("Hi"))).First()
	if n.Label.Color != graphics.ColorWhite {
		t.Errorf("colour = %v, want white", n.Label.Color)
	}
	if n.Transform.Margin.Top != render.Px(-90) {
		t.Errorf("margin top = %v, want -90px", n.Transform.Margin.Top)
	}
	if n.Transform.Position != (render.Edges{Top: render.Pct(50), Left: render.Pct(50)}) {
		t.Errorf("position = %+v", n.Transform.Position)
	}
}

func TestPrompt_Close(t *testing.T) {
	closed := 0
	p := NewPrompt(Config{OnClose: func() { closed++ }})
	st := scenetest.NewSceneTester(t, p)
	if err := st.Tap(scenetest.ByKey("prompt-component-0")); err != nil {
		t.Fatal(err)
	}
	if closed != 1 {
		t.Errorf("OnClose ran %d times", closed)
	}
	if p.Visible() || st.Root().Visible() {
		t.Error("prompt should hide after close")
	}
}

func TestPrompt_HiddenCloseIconStaysHiddenUntilShow(t *testing.T) {
	p := NewPrompt(Config{})
	p.CloseIcon().Hide()
	st := scenetest.NewSceneTester(t, p)
	st.ExpectHidden(scenetest.ByKey("prompt-component-0"))
	if err := st.Tap(scenetest.ByKey("prompt-component-0")); err == nil {
		t.Error("hidden close icon should not be tappable")
	}
}

func TestPrompt_CloseIconHiddenByCallerReturnsOnShow(t *testing.T) {
	p := NewPrompt(Config{})
	p.CloseIcon().Hide()
	p.Hide()
	p.Show()
	if !p.CloseIcon().EffectiveVisible() {
		t.Error("Show should display a close icon hidden through CloseIcon")
	}
}

func TestPrompt_HideCloseIcon(t *testing.T) {
	closed := 0
	p := NewPrompt(Config{HideCloseIcon: true, OnClose: func() { closed++ }})
	if !p.CloseIcon().Pinned() {
		t.Fatal("close icon should be pinned")
	}
	st := scenetest.NewSceneTester(t, p)
	st.ExpectHidden(scenetest.ByKey("prompt-component-0"))

	for i := 0; i < 2; i++ {
		p.Hide()
		p.Show()
		if p.CloseIcon().EffectiveVisible() {
			t.Fatal("pinned close icon reappeared after Show")
		}
		if !p.CloseIcon().ContainerVisible() {
			t.Error("close icon should still track the prompt's visibility")
		}
	}
	st.Pump()
	st.ExpectHidden(scenetest.ByKey("prompt-component-0"))
	if err := st.Tap(scenetest.ByKey("prompt-component-0")); err == nil {
		t.Error("pinned close icon should not be tappable")
	}
	p.CloseIcon().Press()
	if closed != 0 || !p.Visible() {
		t.Error("pinned close icon should ignore presses")
	}
}

type recordingHandler struct {
	errs []*errors.UIError
}

func (h *recordingHandler) HandleError(err *errors.UIError)    { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}

func record(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

func TestPrompt_MissingBackgroundReported(t *testing.T) {
	custom, err := resources.Parse([]byte(`
version: v1.0.0
atlas: {width: 100, height: 100}
textures: {light: l.png, dark: d.png}
regions:
  icons:
    closeD: {sourceLeft: 0, sourceTop: 0, sourceWidth: 10, sourceHeight: 10}
`))
	if err != nil {
		t.Fatal(err)
	}
	h := record(t)
	p := NewPrompt(Config{Resources: custom, Width: 100, Height: 50})
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindAtlas || h.errs[0].Key != "backgrounds/promptBackground" {
		t.Fatalf("errors = %v, want one atlas lookup failure", h.errs)
	}
	if p.Width() != 100 || p.Height() != 50 {
		t.Errorf("size = %vx%v", p.Width(), p.Height())
	}
	if uvs := p.Render("p").Children[0].Background.UVs; uvs != nil {
		t.Errorf("missing background should map to no UVs, got %v", uvs)
	}
}
