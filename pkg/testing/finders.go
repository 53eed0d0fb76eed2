package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/sceneui/pkg/render"
)

// Finder locates nodes in a render tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *render.Node) []*render.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*render.Node
	finder Finder
}

// Find evaluates f against root.
func Find(root *render.Node, f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(root), finder: f}
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *render.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *render.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *render.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*render.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists reports whether at least one node matched.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// --- Concrete finders ---

type keyFinder struct {
	key string
}

func (f *keyFinder) Evaluate(root *render.Node) []*render.Node {
	return collectMatches(root, func(n *render.Node, _ bool) bool {
		return n.Key == f.key
	})
}

func (f *keyFinder) Description() string {
	return fmt.Sprintf("ByKey(%q)", f.key)
}

// ByKey matches nodes with the given key.
func ByKey(key string) Finder {
	return &keyFinder{key: key}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(root *render.Node) []*render.Node {
	return collectMatches(root, func(n *render.Node, _ bool) bool {
		if n.Label == nil {
			return false
		}
		if f.contains {
			return strings.Contains(n.Label.Value, f.text)
		}
		return n.Label.Value == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText matches label nodes with exactly the given value.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining matches label nodes whose value contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type kindFinder struct {
	kind render.Kind
}

func (f *kindFinder) Evaluate(root *render.Node) []*render.Node {
	return collectMatches(root, func(n *render.Node, _ bool) bool {
		return n.Kind == f.kind
	})
}

func (f *kindFinder) Description() string {
	return fmt.Sprintf("ByKind(%s)", f.kind)
}

// ByKind matches nodes of the given kind.
func ByKind(kind render.Kind) Finder {
	return &kindFinder{kind: kind}
}

type predicateFinder struct {
	fn   func(*render.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *render.Node) []*render.Node {
	return collectMatches(root, func(n *render.Node, _ bool) bool {
		return f.fn(n)
	})
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate matches nodes for which fn returns true.
func ByPredicate(fn func(*render.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

type visibleFinder struct {
	inner Finder
}

func (f *visibleFinder) Evaluate(root *render.Node) []*render.Node {
	visible := map[*render.Node]bool{}
	root.Walk(func(n *render.Node, v bool) bool {
		visible[n] = v
		return true
	})
	var out []*render.Node
	for _, n := range f.inner.Evaluate(root) {
		if visible[n] {
			out = append(out, n)
		}
	}
	return out
}

func (f *visibleFinder) Description() string {
	return fmt.Sprintf("Visible(%s)", f.inner.Description())
}

// Visible keeps only matches that are displayed, taking ancestors into
// account.
func Visible(f Finder) Finder {
	return &visibleFinder{inner: f}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *render.Node) []*render.Node {
	seen := map[*render.Node]bool{}
	var out []*render.Node
	for _, ancestor := range f.of.Evaluate(root) {
		for i := range ancestor.Children {
			for _, n := range f.matching.Evaluate(&ancestor.Children[i]) {
				if !seen[n] {
					seen[n] = true
					out = append(out, n)
				}
			}
		}
	}
	return out
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant matches nodes satisfying matching that lie strictly below a
// node satisfying of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root *render.Node, predicate func(*render.Node, bool) bool) []*render.Node {
	if root == nil {
		return nil
	}
	var out []*render.Node
	root.Walk(func(n *render.Node, visible bool) bool {
		if predicate(n, visible) {
			out = append(out, n)
		}
		return true
	})
	return out
}
