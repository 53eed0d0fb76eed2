package core

import (
	"github.com/go-drift/sceneui/pkg/render"
)

// Widget is a visual element that renders itself each frame.
type Widget interface {
	// Render describes the widget. It must not change widget state.
	Render(key string) render.Node
	Show()
	Hide()
}

// Object is the base visual element. The zero value is hidden.
type Object struct {
	visible bool
}

// NewObject returns an element that is visible unless startHidden is set.
func NewObject(startHidden bool) Object {
	return Object{visible: !startHidden}
}

// Show makes the element visible.
func (o *Object) Show() { o.visible = true }

// Hide makes the element invisible.
func (o *Object) Hide() { o.visible = false }

// Visible reports the element's own visibility flag.
func (o *Object) Visible() bool { return o.visible }

// Display returns the render display value for the element.
func (o *Object) Display() render.Display {
	return render.DisplayIf(o.visible)
}

// InContainer is an element owned by a container such as a prompt. It is
// displayed only while both it and its container are visible.
type InContainer struct {
	Object
	containerVisible bool
}

// NewInContainer returns an element added to a container whose visibility
// is containerVisible. An element added to a hidden container starts hidden
// whatever startHidden says.
func NewInContainer(startHidden, containerVisible bool) InContainer {
	return InContainer{
		Object:           NewObject(startHidden || !containerVisible),
		containerVisible: containerVisible,
	}
}

// ContainerVisibilityChanged records the container's new visibility. The
// container calls it on every child from its own Show and Hide.
func (c *InContainer) ContainerVisibilityChanged(visible bool) {
	c.containerVisible = visible
}

// ContainerVisible reports the last visibility the container announced.
func (c *InContainer) ContainerVisible() bool { return c.containerVisible }

// EffectiveVisible reports whether the element is actually displayed.
func (c *InContainer) EffectiveVisible() bool {
	return c.visible && c.containerVisible
}

// Display returns the render display value for the element.
func (c *InContainer) Display() render.Display {
	return render.DisplayIf(c.EffectiveVisible())
}
