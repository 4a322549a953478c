package weba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseRoots(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		fragment bool
		want     string
	}{
		{"single element", `<div class='a'>x</div>`, false, `<div class="a">x</div>`},
		{"surrounding whitespace", "\n  <p>x</p>\n", false, `<p>x</p>`},
		{"several roots", `<li>a</li><li>b</li>`, true, `<li>a</li><li>b</li>`},
		{"plain text", `just text`, true, `just text`},
		{"text with ampersand", `a & b`, true, `a & b`},
		{"text with less-than", `1 < 2`, true, `1 < 2`},
		{"text with entity", `a &amp; b`, true, `a &amp; b`},
		{"text and element", `a <b>b</b>`, true, `a <b>b</b>`},
		{"comment and element", `<!-- c --><p></p>`, true, `<!-- c --><p></p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.markup)
			require.NoError(t, err)
			assert.Equal(t, tt.fragment, n.IsFragment())
			assert.Nil(t, n.Parent())
			assert.Equal(t, tt.want, n.String())
			requireSynced(t, n)
		})
	}
}

func TestParseTextKeepsValue(t *testing.T) {
	n := MustParse(`a &amp; b < c`)
	assert.Equal(t, `a & b < c`, n.Text())
	assert.Equal(t, `a &amp; b < c`, n.String())
}

func TestParseBlank(t *testing.T) {
	for _, markup := range []string{"", "   ", "\n\t"} {
		_, err := Parse(markup)
		assert.ErrorIs(t, err, ErrSourceMissing)
		assert.True(t, IsTemplateError(err))
	}
}

func TestParseTableParts(t *testing.T) {
	tests := []struct {
		markup string
		name   string
	}{
		{`<tr><td>1</td></tr>`, "tr"},
		{`<td>1</td>`, "td"},
		{`<th>h</th>`, "th"},
		{`<tbody><tr></tr></tbody>`, "tbody"},
		{`<option value="1">one</option>`, "option"},
		{`<col span="2">`, "col"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.markup)
			require.NoError(t, err)
			assert.Equal(t, tt.name, n.Name())
		})
	}
}

func TestParseModes(t *testing.T) {
	doc := `<!DOCTYPE html><html><head><title>t</title></head><body><p>x</p></body></html>`

	n, err := Parse(doc)
	require.NoError(t, err)
	assert.True(t, n.IsFragment())
	assert.Equal(t, html.DoctypeNode, n.Children()[0].Type())
	assert.Equal(t, "html", n.Elements()[0].Name())
	assert.Equal(t, `<!DOCTYPE html><html><head><title>t</title></head><body><p>x</p></body></html>`, n.String())

	// Document mode synthesizes the document structure.
	n, err = Parse(`<p>x</p>`, WithParser(ModeDocument))
	require.NoError(t, err)
	assert.Equal(t, `<html><head></head><body><p>x</p></body></html>`, n.String())

	// Fragment mode drops document wrappers.
	n, err = Parse(`<html><body><p>x</p></body></html>`, WithParser(ModeFragment))
	require.NoError(t, err)
	assert.Equal(t, `<p>x</p>`, n.String())
}

func TestParseParserMode(t *testing.T) {
	for _, m := range []ParserMode{ModeAuto, ModeFragment, ModeDocument} {
		got, err := ParseParserMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseParserMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAuto, got)

	_, err = ParseParserMode("xml")
	assert.Error(t, err)
}

func TestParseBytesCharsets(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		text  string
	}{
		{"utf-8", []byte("<p>café</p>"), "café"},
		{"ascii", []byte("<p>plain</p>"), "plain"},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "<p>café</p>"...), "café"},
		{"utf-16le bom", []byte{0xFF, 0xFE, '<', 0, 'p', 0, '>', 0, 'h', 0, 'i', 0, '<', 0, '/', 0, 'p', 0, '>', 0}, "hi"},
		{"meta latin-1", []byte("<meta charset=\"iso-8859-1\"><p>caf\xe9</p>"), "café"},
		{"meta http-equiv", []byte("<meta http-equiv=\"Content-Type\" content=\"text/html; charset=windows-1252\"><p>\x93q\x94</p>"), "“q”"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseBytes(tt.input)
			require.NoError(t, err)
			p := n.Find("p")
			if p == nil {
				p = n
			}
			assert.Equal(t, tt.text, p.Text())
		})
	}
}

func TestParseBytesUndetectable(t *testing.T) {
	_, err := ParseBytes([]byte("<p>caf\xe9</p>"))
	assert.ErrorIs(t, err, ErrEncoding)
	assert.True(t, IsTemplateError(err))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("  ") })
}
