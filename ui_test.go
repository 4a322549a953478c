package weba

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElArguments(t *testing.T) {
	ctx := context.Background()
	child := Span(nil, "child")

	n := El(ctx, "div",
		templ.Attributes{"data_id": "7"},
		templ.KV("hx_get", "/items"),
		templ.KV("hidden", true),
		templ.KV("open", false),
		Class("a", "b"),
		nil,
		"text ",
		42,
		child,
		[]*Node{Em(nil, "x")},
	)
	assert.Equal(t, `<div data-id="7" hx-get="/items" hidden class="a b">text 42<span>child</span><em>x</em></div>`, n.String())
	requireSynced(t, n)
}

func TestElOrderedAttributes(t *testing.T) {
	n := A(nil, templ.OrderedAttributes{
		{Key: "href", Value: "/x"},
		{Key: "class_", Value: []string{"btn", "primary"}},
		{Key: "data_meta", Value: map[string]any{"id": 1}},
	}, "link")
	assert.Equal(t, `<a href="/x" class="btn primary" data-meta="{&quot;id&quot;:1}">link</a>`, n.String())
}

func TestElTagNames(t *testing.T) {
	assert.Equal(t, "<select></select>", El(nil, "select_").String())
	assert.Equal(t, "<custom-el></custom-el>", El(nil, "Custom-El").String())
	assert.Equal(t, `<option value="1">one</option>`, OptionEl(nil, Attr("value", 1), "one").String())
	assert.Equal(t, "<h3></h3>", H3(nil).String())
}

func TestElAttachesToCurrent(t *testing.T) {
	ctx := context.Background()
	ul := Ul(ctx)
	err := ul.With(ctx, func(ctx context.Context) error {
		for _, s := range []string{"one", "two", "three"} {
			Li(ctx, s)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>one</li><li>two</li><li>three</li></ul>", ul.String())
}

func TestElTextIsEscaped(t *testing.T) {
	assert.Equal(t, "<p>&lt;script&gt;</p>", P(nil, "<script>").String())
}

func TestTextCommentDoctype(t *testing.T) {
	ctx := context.Background()
	frag := Fragment(ctx)
	_ = frag.With(ctx, func(ctx context.Context) error {
		Doctype(ctx, "")
		Comment(ctx, " generated ")
		Text(ctx, "a & b")
		Text(ctx, nil)
		return nil
	})
	assert.Equal(t, "<!DOCTYPE html><!-- generated -->a &amp; b", frag.String())
	assert.Equal(t, 4, frag.Len())
}

func TestRaw(t *testing.T) {
	ctx := context.Background()
	div := Div(ctx)
	err := div.With(ctx, func(ctx context.Context) error {
		_, err := Raw(ctx, `<b>bold</b> &amp; more`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "<div><b>bold</b> &amp; more</div>", div.String())

	_, err = Raw(nil, "  ")
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestTemplComponent(t *testing.T) {
	greeting := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		assert.Nil(t, Current(ctx), "templ components render detached")
		_, err := io.WriteString(w, `<p class="greeting">Hello</p>`)
		return err
	})

	ctx := context.Background()
	div := Div(ctx)
	err := div.With(ctx, func(ctx context.Context) error {
		n, err := Templ(ctx, greeting)
		if err != nil {
			return err
		}
		n.SetText("Hi")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, `<div><p class="greeting">Hi</p></div>`, div.String())

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("boom")
	})
	_, err = Templ(ctx, failing)
	assert.ErrorContains(t, err, "boom")
}

func TestAttributeHelpers(t *testing.T) {
	n := Div(nil, ID("main"), Class("x"), Attr("aria_label", "Main"), Attr("data_n", 3))
	assert.Equal(t, `<div id="main" class="x" aria-label="Main" data-n="3"></div>`, n.String())
}
