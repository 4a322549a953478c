package weba

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Card is loaded from testdata/card.html next to this file.
type Card struct {
	*Component
	Title string
	Body  string
}

var cardDef = Define[*Card]("testdata/card.html")

var (
	cardTitle = cardDef.Tag("title", "h2", func(c *Card, n *Node) { n.SetText(c.Title) })
	cardBody  = cardDef.Tag("body", "<!-- body -->", func(c *Card, n *Node) { n.SetText(c.Body) })
)

func TestFileTemplate(t *testing.T) {
	c, err := cardDef.Build(context.Background(), &Card{Title: "Hello", Body: "World"})
	require.NoError(t, err)
	assert.Equal(t, "article", c.Name())
	assert.Equal(t, "Hello", cardTitle.Get(c).Text())
	assert.Equal(t, "<p>World</p>", cardBody.Get(c).String())
	assert.Contains(t, c.String(), `<article class="card">`)
}

func TestFileTemplateInstancesAreIndependent(t *testing.T) {
	a, err := cardDef.Build(context.Background(), &Card{Title: "A"})
	require.NoError(t, err)
	b, err := cardDef.Build(context.Background(), &Card{Title: "B"})
	require.NoError(t, err)

	a.SetAttr("id", "a")
	assert.NotSame(t, a.Node, b.Node)
	assert.False(t, b.HasAttr("id"))
	assert.Equal(t, "B", cardTitle.Get(b).Text())
}

// Page is a full document with a content slot.
type Page struct {
	*Component
}

var pageDef = Define[*Page]("testdata/layout.html")

var pageContent = pageDef.Tag("content", "<!-- content -->", nil)

func TestDocumentTemplate(t *testing.T) {
	p, err := pageDef.BuildWith(context.Background(), nil, func(ctx context.Context, p *Page) error {
		return pageContent.Get(p).With(ctx, func(ctx context.Context) error {
			H1(ctx, "Welcome")
			return nil
		})
	})
	require.NoError(t, err)
	out := p.String()
	assert.Regexp(t, `^<!DOCTYPE html><html lang="en">`, out)
	assert.Contains(t, out, "<main><h1>Welcome</h1></main>")
	assert.Contains(t, out, "<title>Layout</title>")
}

func TestMissingTemplate(t *testing.T) {
	_, err := Define[*Card]("testdata/missing.html").Build(context.Background(), nil)
	require.ErrorIs(t, err, ErrTemplateNotFound)
	assert.True(t, IsTemplateError(err))
	assert.ErrorContains(t, err, "missing.html")
}

func TestUndeclaredEncodingFile(t *testing.T) {
	_, err := Define[*Card]("testdata/undeclared.htm").Build(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestFSTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"views/card.html": {Data: []byte(`<div class="fs"><h2></h2></div>`)},
	}
	def := Define[*Card]("views/card.html", WithFS(fsys))
	def.Tag("title", "h2", func(c *Card, n *Node) { n.SetText(c.Title) })

	c, err := def.Build(context.Background(), &Card{Title: "From FS"})
	require.NoError(t, err)
	assert.Equal(t, `<div class="fs"><h2>From FS</h2></div>`, c.String())

	// Same path, different FS.
	other := Define[*Card]("views/card.html", WithFS(fstest.MapFS{
		"views/card.html": {Data: []byte(`<span>other</span>`)},
	}))
	o, err := other.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, `<span>other</span>`, o.String())

	_, err = Define[*Card]("views/nope.html", WithFS(fsys)).Build(context.Background(), nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestTemplateReloadsWhenModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reload.html")
	require.NoError(t, os.WriteFile(path, []byte(`<p>v1</p>`), 0o644))

	def := Define[*Card](path)
	c, err := def.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>v1</p>", c.String())

	require.NoError(t, os.WriteFile(path, []byte(`<p>v2</p>`), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	c, err = def.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>v2</p>", c.String())
}

func TestBytesSource(t *testing.T) {
	def := Define[*Card]([]byte("<meta charset=\"iso-8859-1\"><p class=\"x\">caf\xe9</p>"))
	c, err := def.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "café", c.Find("p").Text())
}

func TestTemplSource(t *testing.T) {
	renders := 0
	src := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		renders++
		_, err := io.WriteString(w, `<div class="templ">rendered</div>`)
		return err
	})
	def := Define[*Card](src)

	for range 2 {
		c, err := def.Build(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, `<div class="templ">rendered</div>`, c.String())
	}
	assert.Equal(t, 2, renders, "templ sources render for every instance")
}

func TestWithoutCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nocache.html")
	require.NoError(t, os.WriteFile(path, []byte(`<p>v1</p>`), 0o644))
	stamp := time.Now()
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	def := Define[*Card](path, WithoutCache())
	_, err := def.Build(context.Background(), nil)
	require.NoError(t, err)

	// Same modification time, so only an uncached load sees the change.
	require.NoError(t, os.WriteFile(path, []byte(`<p>v2</p>`), 0o644))
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	c, err := def.Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>v2</p>", c.String())
}

func TestClearTemplateCache(t *testing.T) {
	_, err := Define[*Card](`<p>cached</p>`).Build(context.Background(), nil)
	require.NoError(t, err)

	ClearTemplateCache()
	templates.mu.RLock()
	n := len(templates.entries)
	templates.mu.RUnlock()
	assert.Equal(t, 0, n)
}

func TestTemplateCacheBound(t *testing.T) {
	cache := &templateCache{entries: make(map[string]cachedTemplate), maxSize: 2}
	log := newConfig(nil).Logger
	parses := 0
	parse := func() (*Node, error) {
		parses++
		return Parse(`<p>x</p>`)
	}

	for _, key := range []string{"a", "b", "c"} {
		_, err := cache.load(log, key, time.Time{}, false, parse)
		require.NoError(t, err)
	}
	assert.Len(t, cache.entries, 2)

	n, err := cache.load(log, "c", time.Time{}, false, parse)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", n.String())
	assert.Equal(t, 3, parses, "cached entries are decoded, not reparsed")
}

func TestClassifySource(t *testing.T) {
	tests := []struct {
		src  any
		kind sourceKind
		path string
	}{
		{"<p>x</p>", sourceInline, ""},
		{"card.html", sourceFile, filepath.Join("/base", "card.html")},
		{"CARD.HTM", sourceFile, filepath.Join("/base", "CARD.HTM")},
		{"/abs/card.html", sourceFile, "/abs/card.html"},
		{"<a href='x.html'>", sourceInline, ""},
		{[]byte("<p></p>"), sourceBytes, ""},
	}
	for _, tt := range tests {
		s := classifySource(tt.src, "/base")
		require.NoError(t, s.err)
		assert.Equal(t, tt.kind, s.kind, "%v", tt.src)
		assert.Equal(t, tt.path, s.path, "%v", tt.src)
	}
}
