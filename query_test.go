package weba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const queryDoc = `<div id="root">
  <ul class="menu">
    <li class="item active"><a href="/a">A</a></li>
    <li class="item"><a href="/b">B</a></li>
  </ul>
  <p>text</p>
</div>`

func TestFind(t *testing.T) {
	root := MustParse(queryDoc)
	assert.Equal(t, "ul", root.Find("UL").Name())
	assert.Len(t, root.FindAll("li"), 2)
	assert.Nil(t, root.Find("table"))
	assert.Nil(t, root.Find("div"), "Find searches descendants only")
}

func TestSelect(t *testing.T) {
	root := MustParse(queryDoc)

	items, err := root.Select("li.item")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Text())

	active, err := root.SelectOne("ul > li.active a")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "/a", active.Attr("href"))

	// Results are the tree's own wrappers.
	assert.Same(t, root.Find("ul"), items[0].Parent())
	active.SetText("changed")
	assert.Contains(t, root.String(), `<a href="/a">changed</a>`)

	none, err := root.SelectOne("table")
	require.NoError(t, err)
	assert.Nil(t, none)

	group, err := root.Select("p, a")
	require.NoError(t, err)
	assert.Len(t, group, 3)
}

func TestXPath(t *testing.T) {
	root := MustParse(queryDoc)

	links, err := root.XPath("//li/a")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "B", links[1].Text())

	second, err := root.XPathOne("//li[2]")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Same(t, root.FindAll("li")[1], second)

	hrefs, err := root.XPath("//a/@href")
	require.NoError(t, err)
	assert.Empty(t, hrefs, "attribute results are skipped")
}

func TestInvalidSelectors(t *testing.T) {
	root := MustParse(queryDoc)

	_, err := root.Select("li[")
	assert.ErrorIs(t, err, ErrInvalidSelector)
	_, err = root.SelectOne("a[href")
	assert.ErrorIs(t, err, ErrInvalidSelector)
	_, err = root.XPath("//li[")
	assert.ErrorIs(t, err, ErrInvalidSelector)
	_, err = root.XPathOne("")
	assert.ErrorIs(t, err, ErrInvalidSelector)
}

func TestCommentAnchor(t *testing.T) {
	root := MustParse(`<div>
  <!-- header -->
  <h1>Title</h1>
  <section>
    <!-- header --> inline text
    <!-- empty -->
  </section>
  <!-- footer --><!-- other --><p>x</p>
</div>`)

	h1 := root.CommentAnchor("header")
	require.NotNil(t, h1)
	assert.Equal(t, "h1", h1.Name())

	all := root.CommentAnchors("header")
	require.Len(t, all, 2)
	assert.True(t, all[1].IsText())
	assert.Contains(t, all[1].Text(), "inline text")

	assert.Nil(t, root.CommentAnchor("empty"), "trailing marker anchors nothing")
	assert.Nil(t, root.CommentAnchor("footer"), "a comment is not an anchor target")
	assert.Equal(t, "p", root.CommentAnchor("other").Name())
	assert.Nil(t, root.CommentAnchor("missing"))
	assert.Empty(t, root.CommentAnchors("missing"))
}
