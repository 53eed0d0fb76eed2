package testing

import (
	"strings"
	"testing"

	"github.com/go-drift/sceneui/pkg/render"
)

func TestTap(t *testing.T) {
	taps := 0
	root := render.Entity("root", render.Transform{},
		render.Node{Key: "button", OnMouseDown: func() { taps++ }},
		render.Node{Key: "hidden", Transform: render.Transform{Display: render.DisplayNone}, OnMouseDown: func() { taps += 10 }},
		render.Node{Key: "inert"},
		render.Node{Key: "face", OnMouseDown: func() { taps += 100 },
			Children: []render.Node{{Kind: render.KindLabel, Key: "caption", Label: &render.Label{Value: "Ok"}}}},
	)

	if err := Tap(&root, ByKey("button")); err != nil {
		t.Fatalf("Tap: %v", err)
	}
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"hidden", "only hidden"},
		{"inert", "no mouse-down"},
		{"nothing", "matched nothing"},
	}
	for _, tt := range tests {
		err := Tap(&root, ByKey(tt.key))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Tap(%s) error = %v, want %q", tt.key, err, tt.want)
		}
	}
	if taps != 1 {
		t.Errorf("hidden handler ran: taps = %d", taps)
	}

	// A press on a label reaches its clickable parent.
	if err := Tap(&root, ByText("Ok")); err != nil {
		t.Fatalf("Tap(Ok): %v", err)
	}
	if taps != 101 {
		t.Errorf("taps = %d, want 101", taps)
	}
}

func TestEnterText(t *testing.T) {
	var got string
	root := render.Entity("root", render.Transform{},
		render.Node{Kind: render.KindInput, Key: "box", Input: &render.Input{OnChange: func(v string) { got = v }}},
	)
	if err := EnterText(&root, ByKey("box"), "abc"); err != nil {
		t.Fatalf("EnterText: %v", err)
	}
	if got != "abc" {
		t.Errorf("OnChange received %q", got)
	}
	if err := EnterText(&root, ByKey("root"), "x"); err == nil {
		t.Error("expected error for non-input node")
	}
}
