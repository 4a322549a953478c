package weba

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"slices"
)

// Component is the base type embedded by user components.
//
// A component is a reusable subtree loaded from markup. The instance is the
// root node of that subtree: the embedded *Node is the template's root, so
// every Node method is promoted onto the user's type.
//
// Example:
//
//	type Card struct {
//	    *weba.Component
//	    Title string
//	}
//
//	var card = weba.Define[*Card](`<div class="card"><h2></h2><p></p></div>`)
//
//	var cardTitle = card.Tag("title", "h2", func(c *Card, h2 *weba.Node) {
//	    h2.SetText(c.Title)
//	})
//
//	c, err := card.Build(ctx, &Card{Title: "Hello"})
//
// Instances are created only through the Definition's Build, Await,
// BuildWith and AwaitWith methods, which fill in the embedded field.
type Component struct {
	*Node

	def   *definition
	self  any
	state HookState
	cache map[string]*Node
}

func (c *Component) component() *Component {
	return c
}

// ComponentName returns the name of the component type.
func (c *Component) ComponentName() string {
	return c.def.name
}

// State returns the last lifecycle phase the component completed.
func (c *Component) State() HookState {
	return c.state
}

// Tag returns the node bound to the accessor registered as name, resolving
// it on first use. It returns nil for unknown names.
func (c *Component) Tag(name string) *Node {
	a, ok := c.def.byName[name]
	if !ok {
		return nil
	}
	return a.resolve(c)
}

// embedsComponent is satisfied by every type embedding *Component.
type embedsComponent interface {
	component() *Component
}

// definition holds everything about a component type that does not depend
// on its Go type parameter.
type definition struct {
	name      string
	src       source
	cfg       Config
	hooks     hookSet
	typ       reflect.Type
	field     []int
	accessors []accessor
	byName    map[string]accessor
}

// Definition describes a component type T: its markup source, its
// accessors and the lifecycle hooks T implements. Create one per type with
// Define, typically in a package-level variable, and register accessors
// before building instances.
type Definition[T any] struct {
	core *definition
}

// Define creates the definition of component type T, which must be a
// pointer to a struct embedding *weba.Component.
//
// src is the component's markup:
//   - a string holding markup, or a path ending in .html or .htm
//   - a []byte, decoded using its byte order mark or <meta charset>
//   - a templ.Component, rendered for every instance
//
// Relative paths are resolved against the directory of the file calling
// Define, or inside the FS given with WithFS.
//
// Define inspects T once for the lifecycle hooks it implements. It panics
// if T does not embed *weba.Component or declares both variants of a hook.
func Define[T any](src any, opts ...Option) *Definition[T] {
	var zero T
	typ := reflect.TypeOf(zero)
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("weba: component type %v must be a pointer to a struct", typ))
	}
	field, ok := findEmbeddedComponent(typ.Elem())
	if !ok {
		panic(fmt.Sprintf("weba: %v does not embed *weba.Component", typ))
	}

	cfg := newConfig(opts)
	dir := ""
	if cfg.FS == nil {
		dir = callerDir(1)
	}
	s := classifySource(src, dir)
	if cfg.FS != nil {
		s.scope = nextFSScope()
	}
	name := typ.Elem().Name()
	return &Definition[T]{core: &definition{
		name:   name,
		src:    s,
		cfg:    cfg,
		hooks:  detectHooks(name, any(zero)),
		typ:    typ.Elem(),
		field:  field,
		byName: make(map[string]accessor),
	}}
}

// Name returns the component name used in errors and logs.
func (d *Definition[T]) Name() string {
	return d.core.name
}

// Hooks reports how T declares each lifecycle phase.
func (d *Definition[T]) Hooks() (before, render, after HookKind) {
	hs := d.core.hooks
	return hs[PhaseBeforeRender], hs[PhaseRender], hs[PhaseAfterRender]
}

// Async reports whether any hook of T is asynchronous. Asynchronous
// components must be built with Await or AwaitWith.
func (d *Definition[T]) Async() bool {
	return d.core.hooks.async()
}

// Build constructs t and runs its hooks in order: BeforeRender, Render,
// AfterRender. If t is nil a new instance is allocated.
//
// The instance is appended to the current target of ctx, if any, before
// any hook runs. Build fails with ErrComponentAsync when T declares an
// asynchronous hook.
func (d *Definition[T]) Build(ctx context.Context, t T) (T, error) {
	if d.core.hooks.async() {
		return t, componentError(d.core.name, ErrComponentAsync)
	}
	t, c, err := d.start(ctx, t)
	if err != nil {
		return t, err
	}
	return t, c.run(ctx, PhaseBeforeRender, PhaseRender, PhaseAfterRender)
}

// Await constructs t and runs its hooks in order, waiting for asynchronous
// hooks and calling synchronous ones inline. It returns ctx.Err() if ctx is
// done while a hook is pending; the partially built instance stays
// attached.
func (d *Definition[T]) Await(ctx context.Context, t T) (T, error) {
	t, c, err := d.start(ctx, t)
	if err != nil {
		return t, err
	}
	return t, c.run(ctx, PhaseBeforeRender, PhaseRender, PhaseAfterRender)
}

// BuildWith constructs t, runs BeforeRender and Render, then calls fn with
// the instance as the current target:
//
//	list, err := listDef.BuildWith(ctx, nil, func(ctx context.Context, l *List) error {
//	    weba.Li(ctx, "item 1")
//	    weba.Li(ctx, "item 2")
//	    return nil
//	})
//
// A synchronous scope cannot defer AfterRender until fn returns, so
// BuildWith fails with ErrComponentAfterRender when T declares AfterRender,
// and with ErrComponentAsync when any hook is asynchronous. Both checks run
// before anything is constructed.
func (d *Definition[T]) BuildWith(ctx context.Context, t T, fn func(ctx context.Context, t T) error) (T, error) {
	if d.core.hooks.async() {
		return t, componentError(d.core.name, ErrComponentAsync)
	}
	if d.core.hooks[PhaseAfterRender] != HookAbsent {
		return t, componentError(d.core.name, ErrComponentAfterRender)
	}
	t, c, err := d.start(ctx, t)
	if err != nil {
		return t, err
	}
	if err := c.run(ctx, PhaseBeforeRender, PhaseRender); err != nil {
		return t, err
	}
	if err := scope(ctx, c, t, fn); err != nil {
		return t, err
	}
	return t, c.run(ctx, PhaseAfterRender)
}

// AwaitWith is BuildWith for components with asynchronous hooks.
// AfterRender, when declared, runs after fn has returned and sees
// everything fn added. It is skipped if fn fails.
func (d *Definition[T]) AwaitWith(ctx context.Context, t T, fn func(ctx context.Context, t T) error) (T, error) {
	t, c, err := d.start(ctx, t)
	if err != nil {
		return t, err
	}
	if err := c.run(ctx, PhaseBeforeRender, PhaseRender); err != nil {
		return t, err
	}
	if err := scope(ctx, c, t, fn); err != nil {
		return t, err
	}
	return t, c.run(ctx, PhaseAfterRender)
}

// start allocates or adopts t, sets its embedded *Component and builds the
// tree from the component source.
func (d *Definition[T]) start(ctx context.Context, t T) (T, *Component, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	v := reflect.ValueOf(any(t))
	if !v.IsValid() || v.IsNil() {
		v = reflect.New(d.core.typ)
		t = v.Interface().(T)
	}
	field := v.Elem().FieldByIndex(d.core.field)
	if !field.IsNil() {
		return t, nil, componentError(d.core.name, ErrComponentBuilt)
	}

	c := &Component{
		Node:  newFragment(),
		def:   d.core,
		self:  t,
		cache: make(map[string]*Node),
	}
	field.Set(reflect.ValueOf(c))

	if err := d.core.construct(ctx, c); err != nil {
		return t, nil, err
	}
	return t, c, nil
}

func (d *definition) construct(ctx context.Context, c *Component) error {
	root, err := d.src.load(ctx, d.cfg, d.name)
	if err != nil {
		return componentError(d.name, err)
	}
	if root.IsFragment() && len(root.Elements()) == 0 {
		return componentError(d.name, ErrRootNotFound)
	}
	c.Node = root
	if cur := Current(ctx); cur != nil {
		cur.Append(c.Node)
	}
	for _, a := range d.accessors {
		a.resolve(c)
	}
	return nil
}

// scope calls fn with the component as the current target.
func scope[T any](ctx context.Context, c *Component, t T, fn func(context.Context, T) error) error {
	if fn == nil {
		return nil
	}
	return c.Node.With(ctx, func(ctx context.Context) error {
		return fn(ctx, t)
	})
}

// run executes the given phases in order. Each phase runs with the
// component as the current target.
func (c *Component) run(ctx context.Context, phases ...Phase) error {
	hctx, _ := Enter(ctx, c.Node)
	for _, p := range phases {
		if c.state > HookState(p) {
			continue
		}
		kind := c.def.hooks[p]
		val, err := c.def.hooks.call(hctx, p, c.self)
		if err != nil {
			return &HookError{Component: c.def.name, Phase: p, Err: err}
		}
		if p == PhaseRender {
			if err := c.apply(val); err != nil {
				return err
			}
		}
		c.state = HookState(p + 1)
		if kind != HookAbsent {
			c.def.cfg.Logger.Debug("weba: hook complete", "component", c.def.name, "phase", p.String(), "kind", kind.String())
		}
	}
	return nil
}

// apply installs the value returned by Render.
func (c *Component) apply(val any) error {
	var n *Node
	switch v := val.(type) {
	case nil:
		return nil
	case Noder:
		n = v.AsNode()
	default:
		return componentError(c.def.name, fmt.Errorf("%w: expected a node, got %T", ErrComponentType, val))
	}
	if n == nil || n == c.Node {
		return nil
	}
	if n.contains(c.Node) {
		return componentError(c.def.name, fmt.Errorf("%w: render returned an ancestor", ErrParentReplacement))
	}
	c.Node.adopt(n)
	return nil
}

// adopt replaces the name, attributes and children of n with those of src.
// The children are moved, not copied.
func (n *Node) adopt(src *Node) {
	kids := src.Children()
	n.Clear()
	n.elem.Type = src.elem.Type
	n.elem.Data = src.elem.Data
	n.elem.DataAtom = src.elem.DataAtom
	n.elem.Namespace = src.elem.Namespace
	n.elem.Attr = slices.Clone(src.elem.Attr)
	n.Append(kids...)
}

var componentType = reflect.TypeOf((*Component)(nil))

// findEmbeddedComponent finds the embedded *Component field of struct type t.
func findEmbeddedComponent(t reflect.Type) ([]int, bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type == componentType {
			return field.Index, true
		}
	}
	return nil, false
}

// callerDir returns the directory of the source file skip frames above the
// caller of callerDir.
func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}
