package weba

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Noder is implemented by *Node and by every component, which embeds one.
type Noder interface {
	AsNode() *Node
}

// El creates an element named name and attaches it to the current target
// of ctx, if there is one.
//
// Arguments can be:
//   - nil, which is ignored (allows conditional arguments)
//   - templ.Attributer (templ.Attributes, templ.OrderedAttributes)
//   - templ.KeyValue with a string key, for a single attribute
//   - *Node, []*Node or any Noder (components), appended as children
//   - anything else, appended as text formatted with fmt.Sprint
//
// Attribute keys are written the Go way and converted: a trailing
// underscore is dropped and other underscores become hyphens, so "class_"
// sets class and "hx_get" sets hx-get. A trailing underscore on the tag
// name is dropped too.
func El(ctx context.Context, name string, args ...any) *Node {
	n := newElement(strings.TrimSuffix(name, "_"))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case templ.Attributer:
			for _, kv := range v.Items() {
				n.SetAttr(attrKey(kv.Key), kv.Value)
			}
		case templ.KeyValue[string, any]:
			n.SetAttr(attrKey(v.Key), v.Value)
		case templ.KeyValue[string, string]:
			n.SetAttr(attrKey(v.Key), v.Value)
		case templ.KeyValue[string, bool]:
			n.SetAttr(attrKey(v.Key), v.Value)
		case *Node:
			n.Append(v)
		case []*Node:
			n.Append(v...)
		case Noder:
			n.Append(v.AsNode())
		default:
			n.Append(newText(stringify(v)))
		}
	}
	return attach(ctx, n)
}

// Fragment creates an invisible container: it renders only its children.
func Fragment(ctx context.Context, children ...any) *Node {
	n := newFragment()
	for _, c := range children {
		switch v := c.(type) {
		case nil:
		case *Node:
			n.Append(v)
		case Noder:
			n.Append(v.AsNode())
		default:
			n.Append(newText(stringify(v)))
		}
	}
	return attach(ctx, n)
}

// Text creates a text node holding fmt.Sprint(v).
func Text(ctx context.Context, v any) *Node {
	return attach(ctx, newText(stringify(v)))
}

// Comment creates a comment node.
func Comment(ctx context.Context, text string) *Node {
	return attach(ctx, newComment(text))
}

// Doctype creates a doctype node; an empty name means "html".
func Doctype(ctx context.Context, name string) *Node {
	if name == "" {
		name = "html"
	}
	return attach(ctx, newDoctype(name))
}

// Raw parses markup and attaches the result. Unlike text content, markup
// passed to Raw is not escaped.
func Raw(ctx context.Context, markup string) (*Node, error) {
	n, err := parseMarkup(markup, ModeFragment)
	if err != nil {
		return nil, err
	}
	return attach(ctx, n), nil
}

// Templ renders c with ctx and attaches the parsed output, so templ
// components can be mixed into a tree.
func Templ(ctx context.Context, c templ.Component) (*Node, error) {
	var buf bytes.Buffer
	if err := c.Render(Detach(ctx), &buf); err != nil {
		return nil, fmt.Errorf("weba: render templ component: %w", err)
	}
	n, err := parseMarkup(buf.String(), ModeAuto)
	if err != nil {
		return nil, err
	}
	return attach(ctx, n), nil
}

// Class returns a class attribute for El.
func Class(names ...string) templ.KeyValue[string, any] {
	return templ.KV[string, any]("class", names)
}

// ID returns an id attribute for El.
func ID(id string) templ.KeyValue[string, any] {
	return templ.KV[string, any]("id", id)
}

// Attr returns an attribute for El, converting key like El does.
func Attr(key string, v any) templ.KeyValue[string, any] {
	return templ.KV(key, v)
}

func attach(ctx context.Context, n *Node) *Node {
	if cur := Current(ctx); cur != nil {
		cur.Append(n)
	}
	return n
}
