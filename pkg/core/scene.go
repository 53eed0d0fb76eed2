package core

import (
	"fmt"

	"github.com/go-drift/sceneui/pkg/errors"
	"github.com/go-drift/sceneui/pkg/render"
)

type sceneEntry struct {
	key    string
	widget Widget
}

// Scene is the root of a UI: an ordered list of top-level widgets, each
// rendered under its own key. Later widgets paint over earlier ones.
type Scene struct {
	entries []sceneEntry
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends w under key. Keys must be unique; a duplicate is reported and
// ignored.
func (s *Scene) Add(key string, w Widget) *Scene {
	if s.Widget(key) != nil {
		errors.Report(&errors.UIError{
			Op:   "core.Scene.Add",
			Kind: errors.KindConfig,
			Key:  key,
			Err:  fmt.Errorf("duplicate widget key"),
		})
		return s
	}
	s.entries = append(s.entries, sceneEntry{key: key, widget: w})
	return s
}

// Widget returns the widget registered under key, or nil.
func (s *Scene) Widget(key string) Widget {
	for _, e := range s.entries {
		if e.key == key {
			return e.widget
		}
	}
	return nil
}

// Keys returns the widget keys in paint order.
func (s *Scene) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.key
	}
	return keys
}

// Render returns a full-screen root holding every widget's tree.
func (s *Scene) Render(key string) render.Node {
	children := make([]render.Node, 0, len(s.entries))
	for _, e := range s.entries {
		children = append(children, e.widget.Render(e.key))
	}
	return render.Entity(key, render.Transform{
		Display:      render.DisplayFlex,
		PositionType: render.PositionAbsolute,
		Width:        render.Pct(100),
		Height:       render.Pct(100),
	}, children...)
}
