package weba

import (
	"context"
	"fmt"
)

// BeforeRenderer is implemented by components that prepare state before
// rendering, such as loading data their accessors depend on.
//
// The context passed to BeforeRender has the component as its current
// target, so nodes created with it are appended to the component.
type BeforeRenderer interface {
	BeforeRender(ctx context.Context) error
}

// AsyncBeforeRenderer is the asynchronous variant of BeforeRenderer. A
// component declaring it can only be built with Await or AwaitWith.
type AsyncBeforeRenderer interface {
	BeforeRenderAsync(ctx context.Context) error
}

// Renderer is implemented by components that fill in their tree.
//
// Render may return nil to keep the current tree, or a node (or another
// component) that replaces the component's name, attributes and children:
//
//	func (c *Greeting) Render(ctx context.Context) (any, error) {
//	    return weba.H1(weba.Detach(ctx), "Hello, ", c.Name), nil
//	}
//
// Any other return value fails with ErrComponentType.
type Renderer interface {
	Render(ctx context.Context) (any, error)
}

// AsyncRenderer is the asynchronous variant of Renderer.
type AsyncRenderer interface {
	RenderAsync(ctx context.Context) (any, error)
}

// AfterRenderer is implemented by components that inspect or adjust the
// finished tree.
//
// When the component is built with AwaitWith, AfterRender runs after the
// caller's block has returned. A synchronous scope cannot defer it, so
// BuildWith rejects components that declare it.
type AfterRenderer interface {
	AfterRender(ctx context.Context) error
}

// AsyncAfterRenderer is the asynchronous variant of AfterRenderer.
type AsyncAfterRenderer interface {
	AfterRenderAsync(ctx context.Context) error
}

// HookKind describes how a component declares a lifecycle hook.
type HookKind int

const (
	HookAbsent HookKind = iota
	HookSync
	HookAsync
)

func (k HookKind) String() string {
	switch k {
	case HookAbsent:
		return "absent"
	case HookSync:
		return "sync"
	case HookAsync:
		return "async"
	}
	return fmt.Sprintf("HookKind(%d)", int(k))
}

// Phase identifies one lifecycle hook.
type Phase int

const (
	PhaseBeforeRender Phase = iota
	PhaseRender
	PhaseAfterRender
)

func (p Phase) String() string {
	switch p {
	case PhaseBeforeRender:
		return "before-render"
	case PhaseRender:
		return "render"
	case PhaseAfterRender:
		return "after-render"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// HookState records the last lifecycle phase a component completed.
// It only moves forward.
type HookState int

const (
	Pending HookState = iota
	BeforeRenderDone
	RenderDone
	AfterRenderDone
)

func (s HookState) String() string {
	switch s {
	case Pending:
		return "pending"
	case BeforeRenderDone:
		return "before-render-done"
	case RenderDone:
		return "render-done"
	case AfterRenderDone:
		return "after-render-done"
	}
	return fmt.Sprintf("HookState(%d)", int(s))
}

// hookSet holds the declared kind of each phase, indexed by Phase.
type hookSet [3]HookKind

// detectHooks inspects the methods of v. Declaring both variants of one
// hook is a programming error and panics.
func detectHooks(name string, v any) hookSet {
	var hs hookSet
	pick := func(p Phase, sync, async bool) {
		switch {
		case sync && async:
			panic(fmt.Sprintf("weba: component (%s): declares both sync and async %s hooks", name, p))
		case sync:
			hs[p] = HookSync
		case async:
			hs[p] = HookAsync
		}
	}
	_, before := v.(BeforeRenderer)
	_, beforeAsync := v.(AsyncBeforeRenderer)
	pick(PhaseBeforeRender, before, beforeAsync)

	_, render := v.(Renderer)
	_, renderAsync := v.(AsyncRenderer)
	pick(PhaseRender, render, renderAsync)

	_, after := v.(AfterRenderer)
	_, afterAsync := v.(AsyncAfterRenderer)
	pick(PhaseAfterRender, after, afterAsync)
	return hs
}

func (hs hookSet) async() bool {
	for _, k := range hs {
		if k == HookAsync {
			return true
		}
	}
	return false
}

// call invokes the hook for phase p on v. Synchronous hooks run inline;
// asynchronous hooks run on their own goroutine and are awaited. When ctx
// is done call still waits for the hook to return, so nothing touches the
// tree after call does, and reports ctx.Err().
func (hs hookSet) call(ctx context.Context, p Phase, v any) (any, error) {
	kind := hs[p]
	if kind == HookAbsent {
		return nil, nil
	}
	fn := hookFunc(p, kind, v)
	if kind == HookSync {
		return fn(ctx)
	}

	type result struct {
		val any
		err error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		val, err := fn(ctx)
		done <- result{val: val, err: err}
	}()
	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		<-done
		return nil, ctx.Err()
	}
}

func hookFunc(p Phase, kind HookKind, v any) func(context.Context) (any, error) {
	noValue := func(f func(context.Context) error) func(context.Context) (any, error) {
		return func(ctx context.Context) (any, error) { return nil, f(ctx) }
	}
	switch {
	case p == PhaseBeforeRender && kind == HookSync:
		return noValue(v.(BeforeRenderer).BeforeRender)
	case p == PhaseBeforeRender:
		return noValue(v.(AsyncBeforeRenderer).BeforeRenderAsync)
	case p == PhaseRender && kind == HookSync:
		return v.(Renderer).Render
	case p == PhaseRender:
		return v.(AsyncRenderer).RenderAsync
	case p == PhaseAfterRender && kind == HookSync:
		return noValue(v.(AfterRenderer).AfterRender)
	default:
		return noValue(v.(AsyncAfterRenderer).AfterRenderAsync)
	}
}
