package analyzer

import (
	"testing"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/stretchr/testify/assert"
)

func tasks(completed ...bool) []models.Task {
	out := make([]models.Task, 0, len(completed))
	for _, c := range completed {
		out = append(out, models.Task{Completed: c})
	}
	return out
}

func TestDeriveListStatus(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		want  models.TodoListStatus
	}{
		{name: "no tasks", want: models.TodoListStatusOngoing},
		{name: "all done", tasks: tasks(true, true), want: models.TodoListStatusCompleted},
		{name: "one open", tasks: tasks(true, false), want: models.TodoListStatusOngoing},
		{name: "none done", tasks: tasks(false, false, false), want: models.TodoListStatusOngoing},
		{name: "single done", tasks: tasks(true), want: models.TodoListStatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveListStatus(tt.tasks))
		})
	}
}

func TestDeriveListStatusIdempotent(t *testing.T) {
	list := tasks(true, false)
	first := DeriveListStatus(list)

	list[1].Completed = !list[1].Completed
	list[1].Completed = !list[1].Completed

	assert.Equal(t, first, DeriveListStatus(list))
	assert.Equal(t, DeriveListStatus(list), DeriveListStatus(list))
}
