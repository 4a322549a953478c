package components

import (
	"context"
	"fmt"

	"github.com/pthm/weba"
)

// Sidebar shows the status filters and counts.
type Sidebar struct {
	*weba.Component

	Store   TodoStore
	Current string

	stats TodoStats
}

var sidebar = weba.Define[*Sidebar](`<nav class="sidebar"><h3>Filter</h3><ul></ul><p class="summary"></p></nav>`)

var (
	sidebarFilters = sidebar.Tag("filters", "ul", nil)
	sidebarSummary = sidebar.Tag("summary", "p.summary", nil)
)

// BeforeRenderAsync loads the statistics shown in the sidebar.
func (s *Sidebar) BeforeRenderAsync(ctx context.Context) error {
	s.stats = s.Store.Stats()
	return ctx.Err()
}

// Render adds one link per filter.
func (s *Sidebar) Render(ctx context.Context) (any, error) {
	filters := []struct {
		label, status string
		count         int
	}{
		{"All", "", s.stats.Total},
		{"Pending", string(StatusPending), s.stats.Pending},
		{"Completed", string(StatusCompleted), s.stats.Completed},
	}

	err := sidebarFilters.Get(s).With(ctx, func(ctx context.Context) error {
		for _, f := range filters {
			li := weba.Li(ctx)
			if f.status == s.Current {
				li.SetAttr("class", "active")
			}
			href := "/"
			if f.status != "" {
				href = "/?status=" + f.status
			}
			li.Append(weba.A(weba.Detach(ctx), weba.Attr("href", href), fmt.Sprintf("%s (%d)", f.label, f.count)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sidebarSummary.Get(s).SetText(fmt.Sprintf("%d of %d done", s.stats.Completed, s.stats.Total))
	return nil, nil
}
