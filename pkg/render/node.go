// Package render describes the UI tree handed to the external renderer each
// frame. Widgets build these values; they never draw.
//
// A [Node] is a plain value. Renderers diff and paint it, and route pointer
// and text events back through the OnMouseDown and Input.OnChange handlers.
package render

import (
	"fmt"
	"strconv"
)

// Kind selects which payload of a Node is meaningful.
type Kind int

const (
	// KindEntity is a box with an optional background and children.
	KindEntity Kind = iota
	// KindLabel is a run of text.
	KindLabel
	// KindInput is an editable single-line text box.
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindInput:
		return "input"
	default:
		return "entity"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is one element of the render tree.
type Node struct {
	Kind       Kind        `yaml:"kind"`
	Key        string      `yaml:"key,omitempty"`
	Transform  Transform   `yaml:"transform,omitempty"`
	Background *Background `yaml:"background,omitempty"`
	Label      *Label      `yaml:"label,omitempty"`
	Input      *Input      `yaml:"input,omitempty"`
	Children   []Node      `yaml:"children,omitempty"`

	// OnMouseDown is invoked by the renderer when the node is pressed.
	OnMouseDown func() `yaml:"-"`
}

// Visible reports whether the node itself is displayed. Ancestors are not
// considered; see [Node.Walk].
func (n *Node) Visible() bool {
	return n.Transform.Display != DisplayNone
}

// Clickable reports whether the node has a mouse-down handler.
func (n *Node) Clickable() bool {
	return n.OnMouseDown != nil
}

// Text returns the label value or input placeholder carried by the node.
func (n *Node) Text() string {
	switch {
	case n.Label != nil:
		return n.Label.Value
	case n.Input != nil:
		return n.Input.Placeholder
	}
	return ""
}

// Walk visits n and its descendants depth-first in paint order. visible is
// false for nodes hidden directly or through an ancestor. Returning false
// from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, visible bool) bool) {
	n.walk(true, fn)
}

func (n *Node) walk(parentVisible bool, fn func(*Node, bool) bool) {
	visible := parentVisible && n.Visible()
	if !fn(n, visible) {
		return
	}
	for i := range n.Children {
		n.Children[i].walk(visible, fn)
	}
}

// Find returns the first node with the given key, or nil.
func (n *Node) Find(key string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ bool) bool {
		if found != nil {
			return false
		}
		if node.Key == key {
			found = node
			return false
		}
		return true
	})
	return found
}

func (n Node) String() string {
	s := n.Kind.String()
	if n.Key != "" {
		s += " " + strconv.Quote(n.Key)
	}
	if t := n.Text(); t != "" {
		s += fmt.Sprintf(" text=%q", t)
	}
	if !n.Visible() {
		s += " hidden"
	}
	return s
}

// Entity returns an entity node.
func Entity(key string, t Transform, children ...Node) Node {
	return Node{Kind: KindEntity, Key: key, Transform: t, Children: children}
}
