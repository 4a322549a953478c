package components

import (
	"context"

	"github.com/pthm/weba"
)

// Page is the full document: a sidebar and the todo list.
type Page struct {
	*weba.Component

	Store  TodoStore
	Status string
}

var page = weba.Define[*Page]("layout.html", weba.WithFS(templates))

var (
	pageTitle   = page.Tag("title", "title", nil)
	pageSidebar = page.Tag("sidebar", "<!-- sidebar -->", nil)
	pageMain    = page.Tag("main", "<!-- content -->", nil)
)

// NewPage builds the page, waiting for the sidebar statistics.
func NewPage(ctx context.Context, store TodoStore, status string) (*Page, error) {
	return page.Await(ctx, &Page{Store: store, Status: status})
}

// RenderAsync builds the child components into their slots.
func (p *Page) RenderAsync(ctx context.Context) (any, error) {
	if p.Status != "" {
		pageTitle.Get(p).SetText("Todos: " + p.Status)
	}

	err := pageSidebar.Get(p).With(ctx, func(ctx context.Context) error {
		_, err := sidebar.Await(ctx, &Sidebar{Store: p.Store, Current: p.Status})
		return err
	})
	if err != nil {
		return nil, err
	}

	err = pageMain.Get(p).With(ctx, func(ctx context.Context) error {
		_, err := NewTodoList(ctx, p.Store, p.Status)
		return err
	})
	return nil, err
}
