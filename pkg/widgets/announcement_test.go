package widgets

import (
	"testing"
	"time"

	"github.com/go-drift/sceneui/pkg/frame"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/render"
	scenetest "github.com/go-drift/sceneui/pkg/testing"
)

// TestAnnouncement_AutoHide drives the default three second countdown
// through a frame loop attached to the tester's clock.
func TestAnnouncement_AutoHide(t *testing.T) {
	loop := frame.NewLoop()
	a := NewAnnouncement(AnnouncementConfig{
		StartHidden: true,
		Value:       "Text center",
		Scheduler:   loop,
	})
	st := scenetest.NewSceneTester(t, a)
	st.Clock().Attach(loop)

	st.ExpectHidden(scenetest.ByText("Text center"))
	a.Show()
	st.Pump()
	st.ExpectVisible(scenetest.ByText("Text center"))

	st.Clock().AdvanceFrames(170, 16*time.Millisecond)
	st.Pump()
	st.ExpectVisible(scenetest.ByText("Text center"))

	st.Advance(500 * time.Millisecond)
	st.ExpectHidden(scenetest.ByText("Text center"))
}

func TestAnnouncement_ShowRestarts(t *testing.T) {
	loop := frame.NewLoop()
	a := NewAnnouncement(AnnouncementConfig{Value: "hi", Duration: time.Second, Scheduler: loop})
	loop.Step(600 * time.Millisecond)
	a.Hide()
	a.Show()
	loop.Step(600 * time.Millisecond)
	if !a.Visible() {
		t.Fatal("re-showing should restart the countdown")
	}
	loop.Step(400 * time.Millisecond)
	if a.Visible() {
		t.Error("should hide a full duration after the last Show")
	}
}

func TestAnnouncement_NeverHides(t *testing.T) {
	loop := frame.NewLoop()
	a := NewAnnouncement(AnnouncementConfig{Value: "stay", Duration: -1, Scheduler: loop})
	loop.Step(time.Hour)
	if !a.Visible() || loop.Len() != 0 {
		t.Error("negative duration should never hide")
	}
}

func TestAnnouncement_Render(t *testing.T) {
	a := NewAnnouncement(AnnouncementConfig{Value: "hello", Offset: &Offset{Y: 400}})
	n := a.Render("a")
	if n.Label.Color != graphics.ColorYellow || n.Label.FontSize != DefaultAnnouncementSize {
		t.Errorf("label = %+v", n.Label)
	}
	if n.Transform.Margin.Bottom != render.Px(400) {
		t.Errorf("margin bottom = %v, want 400px", n.Transform.Margin.Bottom)
	}
	a.SetValue("bye")
	a.SetColor(graphics.ColorBlue)
	n = a.Render("a")
	if n.Label.Value != "bye" || n.Label.Color != graphics.ColorBlue {
		t.Errorf("label = %+v", n.Label)
	}
}
