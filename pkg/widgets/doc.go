// Package widgets provides the freestanding scene widgets: announcements,
// counters, progress bars, corner labels, icons, centre images and the
// loading indicator.
//
// # Construction
//
// Every widget is built from a flat config struct with NewX. Zero-valued
// fields take the documented default, so only the interesting fields need
// to be set:
//
//	counter := widgets.NewCounter(widgets.CounterConfig{Value: 123})
//	bar := widgets.NewProgressBar(widgets.ProgressBarConfig{
//	    Value:  0.5,
//	    Offset: &widgets.Offset{X: -500, Y: 60},
//	})
//
// Offsets are pointers because several widgets default to a non-zero
// position; nil keeps the default and a non-nil value is used exactly.
//
// Widgets are visible unless StartHidden is set. Shared constant tables come
// from the Resources field, defaulting to [resources.Default].
//
// # Rendering
//
// Widgets implement [core.Widget]. Render only reads state, and returns a
// [render.Node] anchored against the screen edges.
package widgets

// Offset moves a widget away from its anchor, in pixels. Positive Y moves
// up; the sign of X follows each widget's anchor.
type Offset struct {
	X, Y float64
}

func offsetOr(o *Offset, def Offset) Offset {
	if o == nil {
		return def
	}
	return *o
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
