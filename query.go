package weba

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Find returns the first descendant element named name, or nil.
func (n *Node) Find(name string) *Node {
	name = strings.ToLower(name)
	var found *Node
	n.walk(func(d *Node) bool {
		if d != n && d.IsElement() && d.elem.Data == name {
			found = d
			return false
		}
		return true
	})
	return found
}

// FindAll returns every descendant element named name, in document order.
func (n *Node) FindAll(name string) []*Node {
	name = strings.ToLower(name)
	var out []*Node
	n.walk(func(d *Node) bool {
		if d != n && d.IsElement() && d.elem.Data == name {
			out = append(out, d)
		}
		return true
	})
	return out
}

// Select returns the descendants of n matching the CSS selector group css.
func (n *Node) Select(css string) ([]*Node, error) {
	sel, err := compileCSS(css)
	if err != nil {
		return nil, err
	}
	return n.matchAll(sel), nil
}

// SelectOne returns the first descendant of n matching css, or nil.
func (n *Node) SelectOne(css string) (*Node, error) {
	sel, err := compileCSS(css)
	if err != nil {
		return nil, err
	}
	return n.match(sel), nil
}

// XPath evaluates expr with n as the document root and returns the matched
// nodes. Attribute and computed results are skipped.
func (n *Node) XPath(expr string) ([]*Node, error) {
	x, err := compileXPath(expr)
	if err != nil {
		return nil, err
	}
	return n.xpathAll(x), nil
}

// XPathOne is like XPath but returns only the first match, or nil.
func (n *Node) XPathOne(expr string) (*Node, error) {
	x, err := compileXPath(expr)
	if err != nil {
		return nil, err
	}
	return n.xpathOne(x), nil
}

// CommentAnchor returns the node that follows the first comment containing
// marker, or nil.
//
// Whitespace-only text between the comment and its target is skipped. A
// comment followed by nothing, or by another comment, anchors nothing.
func (n *Node) CommentAnchor(marker string) *Node {
	var found *Node
	n.walk(func(d *Node) bool {
		if t := anchorTarget(d, marker); t != nil {
			found = t
			return false
		}
		return true
	})
	return found
}

// CommentAnchors returns the node following every comment containing
// marker, in document order.
func (n *Node) CommentAnchors(marker string) []*Node {
	var out []*Node
	n.walk(func(d *Node) bool {
		if t := anchorTarget(d, marker); t != nil {
			out = append(out, t)
		}
		return true
	})
	return out
}

func anchorTarget(c *Node, marker string) *Node {
	if c.elem.Type != html.CommentNode || !strings.Contains(strings.TrimSpace(c.elem.Data), marker) {
		return nil
	}
	for s := c.NextSibling(); s != nil; s = s.NextSibling() {
		switch s.elem.Type {
		case html.ElementNode:
			return s
		case html.TextNode:
			if strings.TrimSpace(s.elem.Data) != "" {
				return s
			}
		default:
			return nil
		}
	}
	return nil
}

func compileCSS(css string) (cascadia.SelectorGroup, error) {
	sel, err := cascadia.ParseGroup(css)
	if err != nil {
		return nil, fmt.Errorf("%w: css %q: %v", ErrInvalidSelector, css, err)
	}
	return sel, nil
}

func compileXPath(expr string) (*xpath.Expr, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: xpath %q: %v", ErrInvalidSelector, expr, err)
	}
	return x, nil
}

func (n *Node) matchAll(m cascadia.Matcher) []*Node {
	return n.wrappers(cascadia.QueryAll(n.elem, m))
}

func (n *Node) match(m cascadia.Matcher) *Node {
	if h := cascadia.Query(n.elem, m); h != nil {
		return n.lookup(h)
	}
	return nil
}

func (n *Node) xpathAll(x *xpath.Expr) []*Node {
	return n.wrappers(htmlquery.QuerySelectorAll(n.elem, x))
}

func (n *Node) xpathOne(x *xpath.Expr) *Node {
	if h := htmlquery.QuerySelector(n.elem, x); h != nil {
		return n.lookup(h)
	}
	return nil
}

// lookup returns the wrapper of h inside n's subtree.
func (n *Node) lookup(h *html.Node) *Node {
	var found *Node
	n.walk(func(d *Node) bool {
		if d.elem == h {
			found = d
			return false
		}
		return true
	})
	return found
}

// wrappers maps html nodes back to their wrappers, keeping the input order
// and dropping nodes that have none.
func (n *Node) wrappers(hs []*html.Node) []*Node {
	if len(hs) == 0 {
		return nil
	}
	index := make(map[*html.Node]*Node)
	n.walk(func(d *Node) bool {
		index[d.elem] = d
		return true
	})
	out := make([]*Node, 0, len(hs))
	for _, h := range hs {
		if w, ok := index[h]; ok {
			out = append(out, w)
		}
	}
	return out
}
