package components

import (
	"context"
	"strings"

	"github.com/pthm/weba"
)

// TodoList displays the todos matching a status filter.
type TodoList struct {
	*weba.Component

	Store  TodoStore
	Status string

	todos []*Todo
}

var todoList = weba.Define[*TodoList]("todolist.html", weba.WithFS(templates))

// The row is extracted before the list is cleared, so it survives as a
// prototype.
var (
	todoRow   = todoList.Tag("row", "li.todo", nil, weba.Extract())
	todoItems = todoList.Tag("items", "ul.todos", nil, weba.Clear())
	todoCount = todoList.Tag("count", ".count", nil)
	todoEmpty = todoList.Tag("empty", "<!-- empty -->", nil)
)

// NewTodoList builds a todo list as a child of the current target of ctx.
func NewTodoList(ctx context.Context, store TodoStore, status string) (*TodoList, error) {
	return todoList.Build(ctx, &TodoList{Store: store, Status: status})
}

// BeforeRender loads the todos to display.
func (l *TodoList) BeforeRender(ctx context.Context) error {
	var status *Status
	if l.Status != "" {
		s := Status(l.Status)
		status = &s
	}
	l.todos = l.Store.List(status)
	return nil
}

// Render fills one row per todo.
func (l *TodoList) Render(ctx context.Context) (any, error) {
	todoCount.Get(l).SetText(len(l.todos))
	if len(l.todos) > 0 {
		todoEmpty.Get(l).Extract()
	}

	items := todoItems.Get(l)
	for _, todo := range l.todos {
		row := todoRow.Get(l).Clone()
		if err := fillRow(row, todo); err != nil {
			return nil, err
		}
		items.Append(row)
	}
	return nil, nil
}

func fillRow(row *weba.Node, todo *Todo) error {
	row.SetAttr("id", todo.ID)
	if todo.Status == StatusCompleted {
		classes, err := row.Classes()
		if err != nil {
			return err
		}
		classes.Add("done")
	}

	if box, err := row.SelectOne("input"); err != nil {
		return err
	} else if box != nil {
		box.SetAttr("checked", todo.Status == StatusCompleted)
	}
	if title, err := row.SelectOne(".title"); err != nil {
		return err
	} else if title != nil {
		title.SetText(todo.Title)
	}
	if tags, err := row.SelectOne(".tags"); err != nil {
		return err
	} else if tags != nil {
		names := make([]string, len(todo.Tags))
		for i, t := range todo.Tags {
			names[i] = string(t)
		}
		tags.SetText(strings.Join(names, ", "))
	}
	return nil
}
