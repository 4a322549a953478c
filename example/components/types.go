package components

import "embed"

//go:embed *.html
var templates embed.FS

// Status is the completion state of a todo.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Tag labels a todo.
type Tag string

const (
	TagWork     Tag = "work"
	TagPersonal Tag = "personal"
	TagUrgent   Tag = "urgent"
)

// Todo is a single task.
type Todo struct {
	ID     string
	Title  string
	Status Status
	Tags   []Tag
}

// TodoStats summarizes the store.
type TodoStats struct {
	Total     int
	Completed int
	Pending   int
}

// TodoStore is the data source the components read from. A nil status
// lists every todo.
type TodoStore interface {
	List(status *Status) []*Todo
	Stats() TodoStats
}
