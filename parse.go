package weba

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParserMode selects how markup is parsed.
type ParserMode int

const (
	// ModeAuto parses whole documents (input starting with a doctype,
	// <html>, <head> or <body>) as documents and everything else as a
	// fragment.
	ModeAuto ParserMode = iota

	// ModeFragment parses markup as the content of an element, so no
	// <html>, <head> or <body> wrappers are synthesized.
	ModeFragment

	// ModeDocument parses markup as a complete document.
	ModeDocument
)

func (m ParserMode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeFragment:
		return "fragment"
	case ModeDocument:
		return "document"
	}
	return fmt.Sprintf("ParserMode(%d)", int(m))
}

// ParseParserMode converts a mode name ("auto", "fragment", "document").
func ParseParserMode(s string) (ParserMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ModeAuto, nil
	case "fragment":
		return ModeFragment, nil
	case "document":
		return ModeDocument, nil
	}
	return ModeAuto, fmt.Errorf("weba: unknown parser mode %q", s)
}

// Parse parses markup into a detached Node.
//
// Markup with exactly one root element (ignoring whitespace around it)
// yields that element. Anything else, including several roots or plain
// text, yields a fragment node that renders only its children. Blank
// markup fails with ErrSourceMissing.
func Parse(markup string, opts ...Option) (*Node, error) {
	cfg := newConfig(opts)
	return parseMarkup(markup, cfg.Parser)
}

// ParseBytes decodes b and parses it like Parse.
//
// The encoding is taken from a byte order mark or a <meta charset>
// declaration. Undeclared input must be valid UTF-8; otherwise ParseBytes
// fails with ErrEncoding.
func ParseBytes(b []byte, opts ...Option) (*Node, error) {
	s, err := decodeMarkup(b)
	if err != nil {
		return nil, err
	}
	return Parse(s, opts...)
}

// MustParse is like Parse but panics on error. It is meant for markup
// literals in package-level variables and tests.
func MustParse(markup string) *Node {
	n, err := Parse(markup)
	if err != nil {
		panic(err)
	}
	return n
}

// declaredCharset spots a <meta> charset declaration in the prescan window.
var declaredCharset = regexp.MustCompile(`(?i)<meta[^>]*charset`)

func decodeMarkup(b []byte) (string, error) {
	e, name, certain := charset.DetermineEncoding(b, "")
	if !certain && name == "windows-1252" && !declaredCharset.Match(b[:min(len(b), 1024)]) {
		// DetermineEncoding falls back to windows-1252 when it finds
		// nothing. Only accept that for input that is already UTF-8.
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: no charset declared and input is not utf-8", ErrEncoding)
		}
		e = encoding.Nop
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(e.NewDecoder()), b)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrEncoding, name, err)
	}
	return string(out), nil
}

func parseMarkup(markup string, mode ParserMode) (*Node, error) {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return nil, ErrSourceMissing
	}
	if mode == ModeAuto {
		mode = detectMode(trimmed)
	}

	var nodes []*html.Node
	switch mode {
	case ModeDocument:
		doc, err := html.Parse(strings.NewReader(markup))
		if err != nil {
			return nil, fmt.Errorf("weba: parse document: %w", err)
		}
		for c := doc.FirstChild; c != nil; c = doc.FirstChild {
			doc.RemoveChild(c)
			nodes = append(nodes, c)
		}
	default:
		var err error
		nodes, err = html.ParseFragment(strings.NewReader(markup), fragmentContext(trimmed))
		if err != nil {
			return nil, fmt.Errorf("weba: parse fragment: %w", err)
		}
	}
	return pickRoot(markup, nodes)
}

func detectMode(trimmed string) ParserMode {
	lower := strings.ToLower(trimmed[:min(len(trimmed), 16)])
	for _, prefix := range []string{"<!doctype", "<html", "<head", "<body"} {
		if strings.HasPrefix(lower, prefix) {
			return ModeDocument
		}
	}
	return ModeFragment
}

// fragmentContext picks the element fragment markup is parsed inside.
// Table parts and options are dropped by the parser unless their context
// allows them.
func fragmentContext(trimmed string) *html.Node {
	ctx := atom.Body
	if strings.HasPrefix(trimmed, "<") {
		end := strings.IndexAny(trimmed[1:], " \t\r\n/>")
		if end > 0 {
			switch atom.Lookup([]byte(strings.ToLower(trimmed[1 : end+1]))) {
			case atom.Tr:
				ctx = atom.Tbody
			case atom.Td, atom.Th:
				ctx = atom.Tr
			case atom.Thead, atom.Tbody, atom.Tfoot, atom.Caption, atom.Colgroup:
				ctx = atom.Table
			case atom.Col:
				ctx = atom.Colgroup
			case atom.Option, atom.Optgroup:
				ctx = atom.Select
			}
		}
	}
	return &html.Node{Type: html.ElementNode, Data: ctx.String(), DataAtom: ctx}
}

// pickRoot returns the single root element of nodes, or a fragment holding
// all of them. Markup that parsed to text only is kept verbatim, so the
// fragment renders exactly as it was written.
func pickRoot(markup string, nodes []*html.Node) (*Node, error) {
	var root *html.Node
	single := true
	for _, h := range nodes {
		switch {
		case h.Type == html.ElementNode && root == nil:
			root = h
		case h.Type == html.TextNode && strings.TrimSpace(h.Data) == "":
		default:
			single = false
		}
	}
	if single && root != nil {
		return wrap(root), nil
	}
	if len(nodes) == 0 {
		return nil, ErrSourceMissing
	}
	frag := &html.Node{Type: html.DocumentNode}
	if textOnly(nodes) {
		frag.AppendChild(&html.Node{Type: html.RawNode, Data: markup})
		return wrap(frag), nil
	}
	for _, h := range nodes {
		frag.AppendChild(h)
	}
	return wrap(frag), nil
}

func textOnly(nodes []*html.Node) bool {
	for _, h := range nodes {
		if h.Type != html.TextNode {
			return false
		}
	}
	return true
}
