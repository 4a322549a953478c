package weba

import "context"

type currentKey struct{}

// Current returns the node new elements are attached to, or nil when no
// scope is open in ctx.
//
// The insertion target travels inside the context rather than in global
// state, so goroutines building separate trees never observe each other's
// target.
func Current(ctx context.Context) *Node {
	if ctx == nil {
		return nil
	}
	n, _ := ctx.Value(currentKey{}).(*Node)
	return n
}

// Token identifies one scope activation created by Enter.
type Token struct {
	node *Node
	prev context.Context
}

// Node returns the node the scope was opened for.
func (t Token) Node() *Node {
	return t.node
}

// Context returns the context that was active before Enter.
func (t Token) Context() context.Context {
	return t.prev
}

// Enter makes n the insertion target of the returned context.
func Enter(ctx context.Context, n *Node) (context.Context, Token) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, currentKey{}, n), Token{node: n, prev: ctx}
}

// Exit closes the scope opened by Enter and returns the previous context.
// If the node has a parent it is appended to it; appending a node that is
// already a child is a no-op, so Exit never duplicates it.
func Exit(tok Token) context.Context {
	if tok.node != nil && tok.node.parent != nil {
		tok.node.parent.Append(tok.node)
	}
	return tok.prev
}

// Detach returns a context with no insertion target. Nodes created with it
// stay detached.
func Detach(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	if Current(ctx) == nil {
		return ctx
	}
	return context.WithValue(ctx, currentKey{}, (*Node)(nil))
}

// With runs fn with n as the insertion target. The scope is closed when fn
// returns, including when it returns an error or panics.
//
//	err := weba.Div(ctx).With(ctx, func(ctx context.Context) error {
//	    weba.H1(ctx, "Hello, World!")
//	    return nil
//	})
func (n *Node) With(ctx context.Context, fn func(ctx context.Context) error) error {
	inner, tok := Enter(ctx, n)
	defer Exit(tok)
	return fn(inner)
}
