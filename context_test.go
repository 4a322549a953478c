package weba

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestEnterExit(t *testing.T) {
	base := context.Background()
	assert.Nil(t, Current(base))
	assert.Nil(t, Current(nil))

	div := newElement("div")
	ctx, tok := Enter(base, div)
	assert.Same(t, div, Current(ctx))
	assert.Same(t, div, tok.Node())

	p := newElement("p")
	inner, innerTok := Enter(ctx, p)
	assert.Same(t, p, Current(inner))

	assert.Same(t, div, Current(Exit(innerTok)))
	assert.Nil(t, Current(Exit(tok)))
	assert.Equal(t, base, tok.Context())
}

func TestExitReattachesOnce(t *testing.T) {
	ul := newElement("ul")
	li := newElement("li")
	ul.Append(li)

	_, tok := Enter(context.Background(), li)
	Exit(tok)
	Exit(tok)
	assert.Equal(t, 1, ul.Len())
	assert.Same(t, ul, li.Parent())
}

func TestWithNests(t *testing.T) {
	ctx := context.Background()
	div := Div(ctx)
	err := div.With(ctx, func(ctx context.Context) error {
		H1(ctx, "Title")
		return Ul(ctx).With(ctx, func(ctx context.Context) error {
			Li(ctx, "a")
			Li(ctx, "b")
			return nil
		})
	})
	require.NoError(t, err)

	P(ctx, "detached")
	assert.Equal(t, "<div><h1>Title</h1><ul><li>a</li><li>b</li></ul></div>", div.String())
	requireSynced(t, div)
}

func TestWithRestoresOnError(t *testing.T) {
	ctx := context.Background()
	div := Div(ctx)
	boom := errors.New("boom")

	var seen context.Context
	err := div.With(ctx, func(inner context.Context) error {
		seen = inner
		Span(inner)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Same(t, div, Current(seen))
	assert.Nil(t, Current(ctx))
	assert.Equal(t, "<div><span></span></div>", div.String())
}

func TestWithRestoresOnPanic(t *testing.T) {
	ctx := context.Background()
	outer := Div(ctx)
	_ = outer.With(ctx, func(ctx context.Context) error {
		inner := Section(ctx)
		assert.Panics(t, func() {
			_ = inner.With(ctx, func(ctx context.Context) error {
				panic("boom")
			})
		})
		P(ctx, "after")
		return nil
	})
	assert.Equal(t, "<div><section></section><p>after</p></div>", outer.String())
}

func TestDetach(t *testing.T) {
	ctx := context.Background()
	div := Div(ctx)
	_ = div.With(ctx, func(ctx context.Context) error {
		loose := Span(Detach(ctx), "loose")
		assert.Nil(t, loose.Parent())
		assert.Nil(t, Current(Detach(ctx)))
		return nil
	})
	assert.Equal(t, "<div></div>", div.String())
	assert.Equal(t, ctx, Detach(ctx), "detaching an unscoped context is a no-op")
	assert.NotNil(t, Detach(nil))
}

func TestConcurrentBuildersAreIsolated(t *testing.T) {
	const builders, items = 16, 50

	roots := make([]*Node, builders)
	var g errgroup.Group
	for i := range builders {
		g.Go(func() error {
			ctx := context.Background()
			root := Ul(ctx, ID(fmt.Sprint(i)))
			roots[i] = root
			return root.With(ctx, func(ctx context.Context) error {
				for range items {
					Li(ctx, i)
					runtime.Gosched()
				}
				return nil
			})
		})
	}
	require.NoError(t, g.Wait())

	for i, root := range roots {
		require.Equal(t, items, root.Len())
		for _, li := range root.Children() {
			require.Equal(t, fmt.Sprint(i), li.Text(), "builder %d saw another builder's node", i)
		}
		requireSynced(t, root)
	}
}

func TestScopeSurvivesGoroutineHandoff(t *testing.T) {
	ctx := context.Background()
	div := Div(ctx)
	err := div.With(ctx, func(ctx context.Context) error {
		var g errgroup.Group
		made := make([]*Node, 4)
		for i := range made {
			// Each goroutine builds into its own detached node.
			g.Go(func() error {
				made[i] = Span(Detach(ctx), i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, n := range made {
			Current(ctx).Append(n)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "<div><span>0</span><span>1</span><span>2</span><span>3</span></div>", div.String())
}
