package testing

import (
	"fmt"

	"github.com/go-drift/sceneui/pkg/render"
)

// Tap presses the first displayed node matched by f. The press goes to the
// nearest node with a mouse-down handler, starting at the match and moving
// up through its ancestors, so a button can be tapped by its label. Hidden
// nodes cannot be tapped, as with a real renderer.
func Tap(root *render.Node, f Finder) error {
	matches := Find(root, Visible(f)).All()
	if len(matches) == 0 {
		if Find(root, f).Exists() {
			return fmt.Errorf("tap: %s matched only hidden nodes", f.Description())
		}
		return fmt.Errorf("tap: %s matched nothing", f.Description())
	}
	for _, n := range matches {
		if target := clickTarget(root, n); target != nil {
			target.OnMouseDown()
			return nil
		}
	}
	return fmt.Errorf("tap: %s has no mouse-down handler", f.Description())
}

// clickTarget returns the deepest clickable node on the path from root to
// target, or nil.
func clickTarget(root, target *render.Node) *render.Node {
	var path []*render.Node
	var search func(n *render.Node) bool
	search = func(n *render.Node) bool {
		path = append(path, n)
		if n == target {
			return true
		}
		for i := range n.Children {
			if search(&n.Children[i]) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !search(root) {
		return nil
	}
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Clickable() {
			return path[i]
		}
	}
	return nil
}

// EnterText replaces the value of the first displayed input matched by f,
// firing its change handler.
func EnterText(root *render.Node, f Finder, text string) error {
	for _, n := range Find(root, Visible(f)).All() {
		if n.Input == nil {
			continue
		}
		if n.Input.OnChange != nil {
			n.Input.OnChange(text)
		}
		return nil
	}
	return fmt.Errorf("enter text: %s matched no displayed input", f.Description())
}
