package weba

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// absentText is what fmt.Sprint produces for nil. Text nodes holding it
// render as empty.
const absentText = "<nil>"

// String renders n as markup.
func (n *Node) String() string {
	var sb strings.Builder
	_ = renderNode(&sb, n.elem)
	return sb.String()
}

// WriteTo renders n to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: bufio.NewWriter(w)}
	if err := renderNode(cw, n.elem); err != nil {
		return cw.n, err
	}
	return cw.n, cw.w.Flush()
}

// Templ adapts n to a templ.Component so it can be used inside templ
// templates or served with templ.Handler.
func (n *Node) Templ() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := n.WriteTo(w)
		return err
	})
}

type stringWriter interface {
	io.Writer
	WriteString(string) (int, error)
}

type countWriter struct {
	w *bufio.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	k, err := c.w.Write(p)
	c.n += int64(k)
	return k, err
}

func (c *countWriter) WriteString(s string) (int, error) {
	k, err := c.w.WriteString(s)
	c.n += int64(k)
	return k, err
}

func renderNode(w stringWriter, h *html.Node) error {
	switch h.Type {
	case html.ElementNode:
		return renderElement(w, h)
	case html.TextNode:
		return renderText(w, h)
	case html.DocumentNode:
		return renderChildren(w, h)
	case html.CommentNode:
		_, err := w.WriteString("<!--" + h.Data + "-->")
		return err
	case html.DoctypeNode:
		_, err := w.WriteString("<!DOCTYPE " + h.Data + ">")
		return err
	case html.RawNode:
		_, err := w.WriteString(h.Data)
		return err
	}
	return nil
}

func renderText(w stringWriter, h *html.Node) error {
	if h.Data == absentText {
		return nil
	}
	if p := h.Parent; p != nil && p.Type == html.ElementNode && rawTextElements[p.Data] {
		_, err := w.WriteString(h.Data)
		return err
	}
	_, err := w.WriteString(escapeText(h.Data))
	return err
}

func renderChildren(w stringWriter, h *html.Node) error {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if err := renderNode(w, c); err != nil {
			return err
		}
	}
	return nil
}

func renderElement(w stringWriter, h *html.Node) error {
	if _, err := w.WriteString("<" + h.Data); err != nil {
		return err
	}
	for _, a := range h.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + key
		}
		if _, err := w.WriteString(" " + key); err != nil {
			return err
		}
		if a.Val == "" {
			continue
		}
		if _, err := w.WriteString(`="` + escapeAttr(a.Val) + `"`); err != nil {
			return err
		}
	}
	if _, err := w.WriteString(">"); err != nil {
		return err
	}
	if voidElements[h.Data] {
		return nil
	}
	if err := renderChildren(w, h); err != nil {
		return err
	}
	_, err := w.WriteString("</" + h.Data + ">")
	return err
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// voidElements cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// rawTextElements hold text that is written without escaping.
var rawTextElements = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"xmp":       true,
}
