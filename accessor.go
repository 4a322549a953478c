package weba

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/antchfx/xpath"
)

// accessor is the type-independent side of Accessor[T].
type accessor interface {
	resolve(c *Component) *Node
}

// Accessor binds a node inside a component's tree to a name. It is
// resolved once per instance, on first use or when the instance is built,
// and the result is cached for the lifetime of the instance.
type Accessor[T any] struct {
	name    string
	sel     selector
	extract bool
	clear   bool
	root    bool
	bind    func(T, *Node) *Node
}

// TagOption configures an accessor.
type TagOption func(*tagOptions)

type tagOptions struct {
	extract bool
	clear   bool
	root    bool
}

// Extract detaches the matched node from the component's tree before it is
// handed to the binder. When nothing matches, a detached placeholder
// element is created instead, so the binder can still fill it in and the
// component can append it later.
func Extract() TagOption {
	return func(o *tagOptions) { o.extract = true }
}

// Clear empties the matched node before it is handed to the binder.
func Clear() TagOption {
	return func(o *tagOptions) { o.clear = true }
}

// AsRoot makes the accessor's final node the component root: its name,
// attributes and children replace the root's, as when Render returns a
// node. The accessor then resolves to the root itself. A node containing
// the root is ignored.
func AsRoot() TagOption {
	return func(o *tagOptions) { o.root = true }
}

// Tag registers an accessor named name on the definition.
//
// selector locates the node:
//   - "" is the component root
//   - "<!-- marker -->" is the node following a comment containing marker
//   - a selector starting with "/" or "(" is an XPath expression
//   - anything else is a CSS selector
//
// binder runs once per instance with the resolved node, which is nil when
// nothing matched. It is one of:
//
//	nil
//	func(T)
//	func(T, *weba.Node)
//	func(T) *weba.Node
//	func(T, *weba.Node) *weba.Node
//
// A binder returning a non-nil node replaces the resolved node as the
// accessor's value.
//
// Tag panics on an invalid selector, an unsupported binder or a duplicate
// name.
func (d *Definition[T]) Tag(name, selector string, binder any, opts ...TagOption) *Accessor[T] {
	if _, exists := d.core.byName[name]; exists {
		panic(fmt.Sprintf("weba: component (%s): accessor %q registered twice", d.core.name, name))
	}
	sel, err := compileSelector(selector)
	if err != nil {
		panic(fmt.Sprintf("weba: component (%s): accessor %q: %v", d.core.name, name, err))
	}
	var o tagOptions
	for _, opt := range opts {
		opt(&o)
	}

	a := &Accessor[T]{
		name:    name,
		sel:     sel,
		extract: o.extract,
		clear:   o.clear,
		root:    o.root,
		bind:    normalizeBinder[T](d.core.name, name, binder),
	}
	d.core.accessors = append(d.core.accessors, a)
	d.core.byName[name] = a
	return a
}

func normalizeBinder[T any](component, name string, binder any) func(T, *Node) *Node {
	switch b := binder.(type) {
	case nil:
		return nil
	case func(T):
		return func(t T, _ *Node) *Node {
			b(t)
			return nil
		}
	case func(T, *Node):
		return func(t T, n *Node) *Node {
			b(t, n)
			return nil
		}
	case func(T) *Node:
		return func(t T, _ *Node) *Node {
			return b(t)
		}
	case func(T, *Node) *Node:
		return b
	}
	panic(fmt.Sprintf("weba: component (%s): accessor %q: unsupported binder %T", component, name, binder))
}

// Name returns the accessor name.
func (a *Accessor[T]) Name() string {
	return a.name
}

// Get returns the node bound to the accessor on instance t. It returns nil
// if t has not been built.
func (a *Accessor[T]) Get(t T) *Node {
	c := componentOf(t)
	if c == nil {
		return nil
	}
	return a.resolve(c)
}

// Set replaces the accessor's node in t's tree with n and caches n as its
// new value. A previously resolved node that is detached is simply
// forgotten.
func (a *Accessor[T]) Set(t T, n *Node) error {
	c := componentOf(t)
	if c == nil {
		return fmt.Errorf("weba: accessor %q: instance not built", a.name)
	}
	old := a.resolve(c)
	if old != nil && n != nil && old != n {
		if _, err := old.ReplaceWith(n); err != nil && !errors.Is(err, ErrNoParent) {
			return err
		}
	}
	c.cache[a.name] = n
	return nil
}

func (a *Accessor[T]) resolve(c *Component) *Node {
	if n, ok := c.cache[a.name]; ok {
		return n
	}

	n := a.sel.find(c.Node)
	if n == nil && a.extract {
		n = newElement(a.sel.placeholder)
	}
	if n != nil && a.extract {
		n.Extract()
	}
	if n != nil && a.clear {
		n.Clear()
	}

	result := n
	if a.bind != nil {
		t, _ := c.self.(T)
		if r := a.bind(t, n); r != nil {
			result = r
		}
	}
	if a.root && result != nil && result != c.Node && !result.contains(c.Node) {
		c.Node.adopt(result)
		result = c.Node
	}
	c.cache[a.name] = result
	return result
}

func componentOf(v any) *Component {
	e, ok := v.(embedsComponent)
	if !ok {
		return nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	return e.component()
}

type selectorKind int

const (
	selectRoot selectorKind = iota
	selectComment
	selectXPath
	selectCSS
)

// selector is a compiled accessor selector.
type selector struct {
	kind        selectorKind
	marker      string
	css         cascadia.SelectorGroup
	xpath       *xpath.Expr
	placeholder string
}

var simpleTag = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

func compileSelector(s string) (selector, error) {
	s = strings.TrimSpace(s)
	sel := selector{placeholder: "div"}
	switch {
	case s == "":
		sel.kind = selectRoot
	case strings.HasPrefix(s, "<!--"):
		sel.kind = selectComment
		sel.marker = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, "<!--"), "-->"))
	case strings.HasPrefix(s, "/"), strings.HasPrefix(s, "("):
		x, err := compileXPath(s)
		if err != nil {
			return sel, err
		}
		sel.kind = selectXPath
		sel.xpath = x
	default:
		css, err := compileCSS(s)
		if err != nil {
			return sel, err
		}
		sel.kind = selectCSS
		sel.css = css
		if simpleTag.MatchString(s) {
			sel.placeholder = strings.ToLower(s)
		}
	}
	return sel, nil
}

func (s selector) find(root *Node) *Node {
	switch s.kind {
	case selectRoot:
		return root
	case selectComment:
		return root.CommentAnchor(s.marker)
	case selectXPath:
		return root.xpathOne(s.xpath)
	default:
		return root.match(s.css)
	}
}
