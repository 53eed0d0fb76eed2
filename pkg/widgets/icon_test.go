package widgets

import (
	"testing"
	"time"

	"github.com/go-drift/sceneui/pkg/atlas"
	"github.com/go-drift/sceneui/pkg/frame"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
	"github.com/google/go-cmp/cmp"
)

func TestIcon_Presets(t *testing.T) {
	tests := []struct {
		name string
		icon *Icon
		size float64
		off  Offset
	}{
		{"default", NewIcon(IconConfig{Image: "a.png"}), 128, Offset{}},
		{"small", NewSmallIcon(IconConfig{Image: "a.png"}), 32, DefaultPresetOffset},
		{"medium", NewMediumIcon(IconConfig{Image: "a.png", Offset: &Offset{Y: 210}}), 64, Offset{Y: 210}},
		{"large", NewLargeIcon(IconConfig{Image: "a.png"}), 128, DefaultPresetOffset},
		{"explicit", NewIcon(IconConfig{Image: "a.png", Width: 10, Height: 20}), 0, Offset{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.icon.Render("icon")
			w, h := tt.icon.Size()
			if tt.size != 0 && (w != tt.size || h != tt.size) {
				t.Errorf("size = %vx%v, want %v", w, h, tt.size)
			}
			if n.Transform.Width != render.Px(w) || n.Transform.Height != render.Px(h) {
				t.Errorf("transform size = %v x %v", n.Transform.Width, n.Transform.Height)
			}
			want := render.Edges{Bottom: render.Px(tt.off.Y), Right: render.Px(-tt.off.X)}
			if n.Transform.Position != want {
				t.Errorf("position = %+v, want %+v", n.Transform.Position, want)
			}
			if n.Background.Texture != "a.png" {
				t.Errorf("texture = %q", n.Background.Texture)
			}
		})
	}
}

func TestIcon_Section(t *testing.T) {
	sec := atlas.Section{AtlasWidth: 100, AtlasHeight: 100, SourceWidth: 50, SourceHeight: 50}
	i := NewIcon(IconConfig{Image: "a.png", Section: &sec})
	if diff := cmp.Diff(atlas.UVs(&sec), i.Render("i").Background.UVs); diff != "" {
		t.Errorf("UVs mismatch (-want +got):\n%s", diff)
	}
	if NewIcon(IconConfig{Image: "a.png"}).Render("i").Background.UVs != nil {
		t.Error("icon without section should draw the whole image")
	}
}

func TestCenterImage(t *testing.T) {
	loop := frame.NewLoop()
	c := NewCenterImage(CenterImageConfig{Image: "big.png", Duration: time.Second, Scheduler: loop})
	n := c.Render("center")
	want := render.Edges{Top: render.Px(-256), Left: render.Px(-256)}
	if n.Transform.Margin != want {
		t.Errorf("margin = %+v, want %+v", n.Transform.Margin, want)
	}
	loop.Step(time.Second)
	if c.Visible() {
		t.Error("should hide after its duration")
	}

	still := NewCenterImage(CenterImageConfig{Image: "big.png", Offset: &Offset{X: 10, Y: 20}, Width: 100, Height: 50})
	n = still.Render("center")
	want = render.Edges{Top: render.Px(-45), Left: render.Px(-40)}
	if n.Transform.Margin != want {
		t.Errorf("margin = %+v, want %+v", n.Transform.Margin, want)
	}
	if still.Counting() {
		t.Error("zero duration should not count down")
	}
}

func TestLoading(t *testing.T) {
	res := resources.Default()
	l := NewLoading(LoadingConfig{Scale: 2, Offset: &Offset{Y: 300}})
	n := l.Render("loading")
	if n.Transform.Width != render.Px(100) || n.Transform.Height != render.Px(132) {
		t.Errorf("size = %v x %v", n.Transform.Width, n.Transform.Height)
	}
	if n.Background.Texture != res.Texture(false) {
		t.Errorf("texture = %q", n.Background.Texture)
	}
	if diff := cmp.Diff(res.UVs(resources.GroupIcons, "TimerLarge"), n.Background.UVs); diff != "" {
		t.Errorf("UVs mismatch (-want +got):\n%s", diff)
	}
	if got := n.Transform.Margin.Top; got != render.Px(-300-66) {
		t.Errorf("margin top = %v", got)
	}
}
