package prompt

import (
	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/render"
)

type componentKind uint8

const (
	kindCloseIcon componentKind = iota
	kindText
	kindIcon
	kindButton
	kindCheckbox
	kindSwitch
	kindTextInput
)

// component is one entry in a prompt's child list. Exactly the field
// matching kind is set.
type component struct {
	kind      componentKind
	closeIcon *CloseIcon
	text      *Text
	icon      *Icon
	button    *Button
	checkbox  *Checkbox
	sw        *Switch
	textInput *TextInput
}

func (c component) render(key string) render.Node {
	switch c.kind {
	case kindCloseIcon:
		return c.closeIcon.Render(key)
	case kindText:
		return c.text.Render(key)
	case kindIcon:
		return c.icon.Render(key)
	case kindButton:
		return c.button.Render(key)
	case kindCheckbox:
		return c.checkbox.Render(key)
	case kindSwitch:
		return c.sw.Render(key)
	case kindTextInput:
		return c.textInput.Render(key)
	}
	return render.Node{Key: key}
}

// setContainerVisible announces the prompt's new visibility and then
// applies it to the control itself.
func (c component) setContainerVisible(visible bool) {
	switch c.kind {
	case kindCloseIcon:
		c.closeIcon.ContainerVisibilityChanged(visible)
		if visible {
			c.closeIcon.Show()
		} else {
			c.closeIcon.Hide()
		}
		return
	case kindButton:
		c.button.ContainerVisibilityChanged(visible)
		if visible {
			c.button.Show()
		} else {
			c.button.Hide()
		}
		return
	}
	elem := c.element()
	elem.ContainerVisibilityChanged(visible)
	if visible {
		elem.Show()
	} else {
		elem.Hide()
	}
}

func (c component) element() *core.InContainer {
	switch c.kind {
	case kindCloseIcon:
		return &c.closeIcon.InContainer
	case kindText:
		return &c.text.InContainer
	case kindIcon:
		return &c.icon.InContainer
	case kindButton:
		return &c.button.InContainer
	case kindCheckbox:
		return &c.checkbox.InContainer
	case kindSwitch:
		return &c.sw.InContainer
	case kindTextInput:
		return &c.textInput.InContainer
	}
	panic("prompt: unknown component kind")
}
