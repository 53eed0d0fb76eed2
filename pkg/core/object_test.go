package core

import (
	"testing"

	"github.com/go-drift/sceneui/pkg/render"
)

func TestObject_ShowHide(t *testing.T) {
	o := NewObject(true)
	if o.Visible() || o.Display() != render.DisplayNone {
		t.Error("startHidden object should be hidden")
	}
	o.Show()
	o.Show()
	if !o.Visible() || o.Display() != render.DisplayFlex {
		t.Error("Show should make the object visible")
	}
	o.Hide()
	if o.Visible() {
		t.Error("Hide should make the object invisible")
	}
}

func TestNewInContainer(t *testing.T) {
	tests := []struct {
		name             string
		startHidden      bool
		containerVisible bool
		wantOwn          bool
		wantEffective    bool
	}{
		{"visible container", false, true, true, true},
		{"hidden request", true, true, false, false},
		{"hidden container forces hidden", false, false, false, false},
		{"both hidden", true, false, false, false},
	}
	for _, tt := range tests {
		c := NewInContainer(tt.startHidden, tt.containerVisible)
		if c.Visible() != tt.wantOwn || c.EffectiveVisible() != tt.wantEffective {
			t.Errorf("%s: own=%v effective=%v, want %v/%v",
				tt.name, c.Visible(), c.EffectiveVisible(), tt.wantOwn, tt.wantEffective)
		}
	}
}

// TestInContainer_RoundTrip verifies a container hide/show cycle restores the
// child's effective visibility when the child's own flag never changed.
func TestInContainer_RoundTrip(t *testing.T) {
	c := NewInContainer(false, true)
	c.ContainerVisibilityChanged(false)
	if c.EffectiveVisible() || c.Display() != render.DisplayNone {
		t.Error("child of hidden container must not be displayed")
	}
	if !c.Visible() {
		t.Error("own flag should be untouched by container changes")
	}
	c.ContainerVisibilityChanged(true)
	if !c.EffectiveVisible() {
		t.Error("effective visibility not restored")
	}

	c.Hide()
	c.ContainerVisibilityChanged(false)
	c.ContainerVisibilityChanged(true)
	if c.EffectiveVisible() {
		t.Error("own hidden flag must survive container round trip")
	}
}
