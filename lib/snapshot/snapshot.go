// Package snapshot stores parsed markup trees in a compact binary form.
//
// Parsing a template is far more expensive than rebuilding a tree from an
// already parsed copy, and every component instance needs a tree of its
// own. A snapshot is taken once per template and decoded into a fresh,
// unshared tree for each instance.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// version is written as the first field of every snapshot so stale cache
// entries from an older layout are rejected instead of misread.
const version = 1

// ErrVersion is returned when a snapshot was written by a different layout.
var ErrVersion = errors.New("snapshot: unsupported version")

// Node is the serialized form of one html.Node.
type Node struct {
	Type      uint32 `msgpack:"t"`
	Data      string `msgpack:"d,omitempty"`
	Namespace string `msgpack:"ns,omitempty"`
	Attr      []Attr `msgpack:"a,omitempty"`
	Children  []Node `msgpack:"c,omitempty"`
}

// Attr is the serialized form of one html.Attribute.
type Attr struct {
	Namespace string `msgpack:"ns,omitempty"`
	Key       string `msgpack:"k"`
	Val       string `msgpack:"v,omitempty"`
}

type envelope struct {
	Version int  `msgpack:"v"`
	Root    Node `msgpack:"r"`
}

// Encode serializes h and its subtree. The parent and siblings of h are
// not part of the snapshot.
func Encode(h *html.Node) ([]byte, error) {
	if h == nil {
		return nil, errors.New("snapshot: nil node")
	}
	b, err := msgpack.Marshal(envelope{Version: version, Root: fromHTML(h)})
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return b, nil
}

// Decode rebuilds a detached tree from a snapshot produced by Encode.
func Decode(b []byte) (*html.Node, error) {
	var env envelope
	if err := msgpack.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if env.Version != version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, env.Version)
	}
	return toHTML(&env.Root), nil
}

func fromHTML(h *html.Node) Node {
	n := Node{
		Type:      uint32(h.Type),
		Data:      h.Data,
		Namespace: h.Namespace,
	}
	if len(h.Attr) > 0 {
		n.Attr = make([]Attr, len(h.Attr))
		for i, a := range h.Attr {
			n.Attr[i] = Attr{Namespace: a.Namespace, Key: a.Key, Val: a.Val}
		}
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		n.Children = append(n.Children, fromHTML(c))
	}
	return n
}

func toHTML(n *Node) *html.Node {
	h := &html.Node{
		Type:      html.NodeType(n.Type),
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if h.Type == html.ElementNode {
		h.DataAtom = atom.Lookup([]byte(h.Data))
	}
	if len(n.Attr) > 0 {
		h.Attr = make([]html.Attribute, len(n.Attr))
		for i, a := range n.Attr {
			h.Attr[i] = html.Attribute{Namespace: a.Namespace, Key: a.Key, Val: a.Val}
		}
	}
	for i := range n.Children {
		h.AppendChild(toHTML(&n.Children[i]))
	}
	return h
}
