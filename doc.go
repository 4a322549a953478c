// Package weba builds HTML documents on the server from reusable,
// template-backed components and a small tree API over golang.org/x/net/html.
//
// weba lets a Go program compose a page the way a UI framework composes a
// view: components own a subtree loaded from markup, expose named handles to
// the interesting parts of that subtree, and run lifecycle hooks that fill it
// in. The result is a plain tree that renders to HTML.
//
// # Nodes
//
// A *Node wraps one html.Node. Mutations (Append, Insert, ReplaceWith,
// Extract, Clear, Pop) keep the wrapper tree and the underlying html tree in
// step, and moving a node detaches it from its previous parent first. Nodes
// are queried with CSS selectors (Select), XPath (XPath) or comment markers
// (CommentAnchor):
//
//	root, _ := weba.Parse(`<ul><!-- items --><li>one</li></ul>`)
//	li := root.CommentAnchor("items")
//
// # Building with a context
//
// Element factories such as Div, Li or Button append the node they create to
// the current target stored in a context.Context. Nest scopes with With:
//
//	ul := weba.Ul(ctx)
//	ul.With(ctx, func(ctx context.Context) error {
//	    weba.Li(ctx, "first")
//	    weba.Li(ctx, weba.Class("active"), "second")
//	    return nil
//	})
//
// Each context carries its own target, so independent builds on different
// goroutines never observe each other.
//
// # Components
//
// Component types embed *weba.Component and are described once with Define.
// The source may be inline markup, a .html file next to the calling file, a
// []byte document whose charset is detected, or a templ.Component.
//
//	type Button struct {
//	    *weba.Component
//	    Label string
//	}
//
//	var button = weba.Define[*Button](`<div><button class="btn">Example</button></div>`)
//
//	var buttonLabel = button.Tag("label", "button", func(b *Button, n *weba.Node) {
//	    n.SetText(b.Label)
//	})
//
//	b, err := button.Build(ctx, &Button{Label: "Submit"})
//
// Accessors registered with Tag resolve once per instance and are cached.
// The Extract and Clear options detach or empty the matched node before the
// binder sees it, which is how list components turn a sample row into a
// reusable prototype.
//
// # Lifecycle
//
// A component may implement BeforeRender, Render and AfterRender, each in a
// synchronous or an asynchronous (ctx-aware, error-returning) variant. Build
// runs synchronous components; Await runs any component and waits for its
// asynchronous hooks. BuildWith and AwaitWith additionally run a function
// with the instance as the current target before AfterRender.
//
// # Templates
//
// Parsed templates are cached as msgpack snapshots keyed by source, so every
// instance receives an independent copy without reparsing. File templates
// are reloaded when their modification time changes.
package weba
