package weba

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node wraps one node of an x/net/html tree: an element, a text run, a
// comment, a doctype or an invisible fragment.
//
// A Node keeps its own list of children next to the html tree it fronts.
// Every mutation method updates both in the same call, so children[i]
// always wraps the i-th html child and every child points back to its
// parent. Each html node reachable from a Node has exactly one wrapper;
// searches return those wrappers rather than fresh copies.
type Node struct {
	elem     *html.Node
	parent   *Node
	children []*Node
}

// wrap builds wrappers for h and its whole subtree.
func wrap(h *html.Node) *Node {
	n := &Node{elem: h}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		child := wrap(c)
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

func newElement(name string) *Node {
	name = strings.ToLower(name)
	return &Node{elem: &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}}
}

func newText(s string) *Node {
	return &Node{elem: &html.Node{Type: html.TextNode, Data: s}}
}

func newComment(s string) *Node {
	return &Node{elem: &html.Node{Type: html.CommentNode, Data: s}}
}

func newDoctype(name string) *Node {
	return &Node{elem: &html.Node{Type: html.DoctypeNode, Data: name}}
}

func newFragment() *Node {
	return &Node{elem: &html.Node{Type: html.DocumentNode}}
}

// AsNode returns n. Components embed *Node, so any component value can be
// passed where a node is expected through this method.
func (n *Node) AsNode() *Node {
	return n
}

// Type returns the type of the underlying html node.
func (n *Node) Type() html.NodeType {
	return n.elem.Type
}

// IsElement reports whether n is an element.
func (n *Node) IsElement() bool {
	return n.elem.Type == html.ElementNode
}

// IsText reports whether n is a text run.
func (n *Node) IsText() bool {
	return n.elem.Type == html.TextNode
}

// IsFragment reports whether n is an invisible fragment wrapper.
func (n *Node) IsFragment() bool {
	return n.elem.Type == html.DocumentNode
}

// Name returns the tag name of an element, and "" for any other node.
func (n *Node) Name() string {
	if n.elem.Type != html.ElementNode {
		return ""
	}
	return n.elem.Data
}

// SetName renames an element. Renaming a fragment turns it into an element.
func (n *Node) SetName(name string) *Node {
	switch n.elem.Type {
	case html.ElementNode, html.DocumentNode:
		name = strings.ToLower(name)
		n.elem.Type = html.ElementNode
		n.elem.Data = name
		n.elem.DataAtom = atom.Lookup([]byte(name))
	}
	return n
}

// Data returns the raw text of a text, comment or doctype node.
func (n *Node) Data() string {
	if n.elem.Type == html.ElementNode {
		return ""
	}
	return n.elem.Data
}

// Text returns the concatenated text of n and all of its descendants.
// Verbatim text kept by Parse is returned unescaped.
func (n *Node) Text() string {
	if n.elem.Type == html.TextNode && n.elem.Data != absentText {
		return n.elem.Data
	}
	var sb strings.Builder
	n.walk(func(d *Node) bool {
		switch {
		case d.elem.Type == html.TextNode && d.elem.Data != absentText:
			sb.WriteString(d.elem.Data)
		case d.elem.Type == html.RawNode:
			sb.WriteString(html.UnescapeString(d.elem.Data))
		}
		return true
	})
	return sb.String()
}

// SetText replaces the content of n with a single text run holding
// fmt.Sprint(v). On a text or comment node it replaces the node's own data.
func (n *Node) SetText(v any) *Node {
	s := stringify(v)
	switch n.elem.Type {
	case html.TextNode, html.CommentNode:
		n.elem.Data = s
		return n
	}
	n.Clear()
	n.Append(newText(s))
	return n
}

// Parent returns the node n is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list, text and comments included.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Elements returns the element children of n.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.IsElement() {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Index returns the position of n in its parent, or -1 when detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return n.parent.indexOf(n)
}

// NextSibling returns the node following n in its parent, or nil.
func (n *Node) NextSibling() *Node {
	i := n.Index()
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// PrevSibling returns the node preceding n in its parent, or nil.
func (n *Node) PrevSibling() *Node {
	i := n.Index()
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

// Descendants returns every node below n in document order.
func (n *Node) Descendants() []*Node {
	var out []*Node
	n.walk(func(d *Node) bool {
		if d != n {
			out = append(out, d)
		}
		return true
	})
	return out
}

// Clone returns a detached deep copy of n.
func (n *Node) Clone() *Node {
	return wrap(cloneHTML(n.elem))
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// walk visits n and its descendants depth first until fn returns false.
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

func cloneHTML(h *html.Node) *html.Node {
	c := &html.Node{
		Type:      h.Type,
		DataAtom:  h.DataAtom,
		Data:      h.Data,
		Namespace: h.Namespace,
	}
	if len(h.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(h.Attr))
		copy(c.Attr, h.Attr)
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(cloneHTML(ch))
	}
	return c
}

// stringify converts content values to text. A nil value produces the
// absent-value sentinel, which renders as empty text.
func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}
