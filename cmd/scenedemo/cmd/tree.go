package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/go-drift/sceneui/pkg/render"
)

var (
	rootStyle   = lipgloss.NewStyle().Bold(true)
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	clickStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// renderTree draws a render tree. Hidden subtrees are left out unless all
// is set, in which case they are drawn dimmed.
func renderTree(root render.Node, all bool) string {
	t := buildTree(&root, true, all)
	if t == nil {
		return hiddenStyle.Render("(nothing displayed)")
	}
	return t.RootStyle(rootStyle).String()
}

func buildTree(n *render.Node, parentVisible, all bool) *tree.Tree {
	visible := parentVisible && n.Visible()
	if !visible && !all {
		return nil
	}
	t := tree.Root(describe(n, visible)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(branchStyle)
	for i := range n.Children {
		if child := buildTree(&n.Children[i], visible, all); child != nil {
			t.Child(child)
		}
	}
	return t
}

// describe summarises one node on a single line.
func describe(n *render.Node, visible bool) string {
	var b strings.Builder
	b.WriteString(n.Kind.String())
	if n.Key != "" {
		fmt.Fprintf(&b, " %s", n.Key)
	}
	if size := sizeOf(n.Transform); size != "" {
		fmt.Fprintf(&b, " %s", size)
	}
	line := b.String()

	if text := n.Text(); text != "" {
		line += " " + textStyle.Render(fmt.Sprintf("%q", text))
	}
	if n.Clickable() || (n.Input != nil && n.Input.OnChange != nil) {
		line += " " + clickStyle.Render("*")
	}
	if !visible {
		return hiddenStyle.Render(line + " (hidden)")
	}
	return line
}

func sizeOf(t render.Transform) string {
	if t.Width.IsZero() && t.Height.IsZero() {
		return ""
	}
	return t.Width.String() + "x" + t.Height.String()
}
