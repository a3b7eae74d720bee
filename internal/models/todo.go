package models

import "time"

type TodoListStatus string

const (
	TodoListStatusOngoing   TodoListStatus = "ONGOING"
	TodoListStatusCompleted TodoListStatus = "COMPLETED"
)

func (s TodoListStatus) String() string {
	return string(s)
}

// TodoList is a dated checklist. Status is derived from its tasks and never set directly.
type TodoList struct {
	ID          string         `json:"id" db:"id"`
	UserID      string         `json:"user_id" db:"user_id"`
	Title       string         `json:"title" db:"title"`
	Description *string        `json:"description" db:"description"`
	Status      TodoListStatus `json:"status" db:"status"`
	Date        Date           `json:"date" db:"date"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
	Tasks       []Task         `json:"tasks" db:"-"`
}

type Task struct {
	ID         string    `json:"id" db:"id"`
	TodoListID string    `json:"todo_list_id" db:"todo_list_id"`
	Title      string    `json:"title" db:"title"`
	Completed  bool      `json:"completed" db:"completed"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// TaskToggleResponse reports a toggled task together with the recomputed list status.
type TaskToggleResponse struct {
	Task       *Task          `json:"task"`
	ListStatus TodoListStatus `json:"list_status"`
}
