package weba

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// Get returns the value of attribute key.
//
// It fails with ErrUnsupportedKeyAccess on nodes that are not elements and
// with ErrUnknownAttribute when the attribute is not set.
func (n *Node) Get(key string) (string, error) {
	if n.elem.Type != html.ElementNode {
		return "", fmt.Errorf("%w: %q on a %s node", ErrUnsupportedKeyAccess, key, nodeKind(n.elem.Type))
	}
	if i := n.attrIndex(key); i >= 0 {
		return n.elem.Attr[i].Val, nil
	}
	return "", fmt.Errorf("%w: %q on <%s>", ErrUnknownAttribute, key, n.elem.Data)
}

// Attr returns the value of attribute key, or "" when it is not set.
func (n *Node) Attr(key string) string {
	v, _ := n.Get(key)
	return v
}

// HasAttr reports whether attribute key is set.
func (n *Node) HasAttr(key string) bool {
	return n.attrIndex(key) >= 0
}

// SetAttr sets attribute key from v.
//
//   - true sets a valueless attribute; false and nil remove it
//   - string slices and templ.CSSClasses are joined with spaces
//   - maps, slices and structs are stored as JSON
//   - anything else is formatted with fmt.Sprint
//
// SetAttr does nothing on nodes that are not elements.
func (n *Node) SetAttr(key string, v any) *Node {
	if n.elem.Type != html.ElementNode {
		return n
	}
	val, ok := formatAttr(v)
	if !ok {
		return n.RemoveAttr(key)
	}
	if i := n.attrIndex(key); i >= 0 {
		n.elem.Attr[i].Val = val
		return n
	}
	n.elem.Attr = append(n.elem.Attr, html.Attribute{Key: key, Val: val})
	return n
}

// RemoveAttr deletes attribute key if present.
func (n *Node) RemoveAttr(key string) *Node {
	if i := n.attrIndex(key); i >= 0 {
		n.elem.Attr = slices.Delete(n.elem.Attr, i, i+1)
	}
	return n
}

// Attrs returns a copy of the attributes in document order.
func (n *Node) Attrs() []html.Attribute {
	return slices.Clone(n.elem.Attr)
}

func (n *Node) attrIndex(key string) int {
	if n.elem.Type != html.ElementNode {
		return -1
	}
	for i, a := range n.elem.Attr {
		if a.Namespace == "" && a.Key == key {
			return i
		}
	}
	return -1
}

// Classes returns a live view of the class attribute.
func (n *Node) Classes() (*ClassList, error) {
	if n.elem.Type != html.ElementNode {
		return nil, fmt.Errorf("%w: class on a %s node", ErrUnsupportedKeyAccess, nodeKind(n.elem.Type))
	}
	return &ClassList{node: n}, nil
}

// ClassList is an ordered view of an element's class attribute. Every
// mutation is written back to the attribute immediately; an empty list
// removes it.
type ClassList struct {
	node *Node
}

// Values returns the class names in order.
func (c *ClassList) Values() []string {
	return strings.Fields(c.node.Attr("class"))
}

// Len returns the number of classes.
func (c *ClassList) Len() int {
	return len(c.Values())
}

// Has reports whether name is in the list.
func (c *ClassList) Has(name string) bool {
	return slices.Contains(c.Values(), name)
}

// Add appends names that are not already present.
func (c *ClassList) Add(names ...string) *ClassList {
	vals := c.Values()
	for _, name := range names {
		for _, f := range strings.Fields(name) {
			if !slices.Contains(vals, f) {
				vals = append(vals, f)
			}
		}
	}
	return c.set(vals)
}

// Remove deletes names from the list.
func (c *ClassList) Remove(names ...string) *ClassList {
	vals := slices.DeleteFunc(c.Values(), func(v string) bool {
		return slices.Contains(names, v)
	})
	return c.set(vals)
}

// Toggle adds name when absent and removes it when present. It reports
// whether name is present afterwards.
func (c *ClassList) Toggle(name string) bool {
	if c.Has(name) {
		c.Remove(name)
		return false
	}
	c.Add(name)
	return true
}

// Set replaces the whole list.
func (c *ClassList) Set(names ...string) *ClassList {
	var vals []string
	for _, name := range names {
		vals = append(vals, strings.Fields(name)...)
	}
	return c.set(vals)
}

func (c *ClassList) String() string {
	return strings.Join(c.Values(), " ")
}

func (c *ClassList) set(vals []string) *ClassList {
	if len(vals) == 0 {
		c.node.RemoveAttr("class")
	} else {
		c.node.SetAttr("class", strings.Join(vals, " "))
	}
	return c
}

// formatAttr converts v to an attribute value. ok is false when the
// attribute should be omitted.
func formatAttr(v any) (val string, ok bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case bool:
		return "", v
	case string:
		return v, true
	case []string:
		return strings.Join(v, " "), true
	case templ.CSSClasses:
		return v.String(), true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), true
		}
		return string(b), true
	case reflect.Pointer:
		if reflect.ValueOf(v).IsNil() {
			return "", false
		}
	}
	return fmt.Sprint(v), true
}

// attrKey converts a Go-friendly key to markup: a trailing underscore is
// dropped and remaining underscores become hyphens, so "class_" is "class"
// and "data_id" is "data-id".
func attrKey(key string) string {
	key = strings.TrimSuffix(key, "_")
	return strings.ReplaceAll(key, "_", "-")
}

func nodeKind(t html.NodeType) string {
	switch t {
	case html.TextNode:
		return "text"
	case html.DocumentNode:
		return "fragment"
	case html.ElementNode:
		return "element"
	case html.CommentNode:
		return "comment"
	case html.DoctypeNode:
		return "doctype"
	case html.RawNode:
		return "raw"
	}
	return "error"
}
