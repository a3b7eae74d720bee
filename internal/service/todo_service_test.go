package service

import (
	"context"
	"testing"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoListStatusFollowsTasks(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")
	ctx := context.Background()

	list, err := f.todos.CreateList(ctx, user.ID, &models.TodoListRequest{Title: "Finals week", Date: "2024-05-20"})
	require.NoError(t, err)
	assert.Equal(t, models.TodoListStatusOngoing, list.Status)
	assert.Equal(t, "2024-05-20", list.Date.String())

	first, err := f.todos.AddTask(ctx, user.ID, list.ID, &models.TaskRequest{Title: "Revise"})
	require.NoError(t, err)
	second, err := f.todos.AddTask(ctx, user.ID, list.ID, &models.TaskRequest{Title: "Sleep"})
	require.NoError(t, err)

	resp, err := f.todos.ToggleTask(ctx, user.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, resp.Task.Completed)
	assert.Equal(t, models.TodoListStatusOngoing, resp.ListStatus)

	resp, err = f.todos.ToggleTask(ctx, user.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TodoListStatusCompleted, resp.ListStatus)

	got, err := f.todos.GetList(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TodoListStatusCompleted, got.Status)
	require.Len(t, got.Tasks, 2)

	_, err = f.todos.AddTask(ctx, user.ID, list.ID, &models.TaskRequest{Title: "Celebrate"})
	require.NoError(t, err)
	got, err = f.todos.GetList(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TodoListStatusOngoing, got.Status)

	require.Len(t, f.publisher.statusChanges, 2)
	assert.Equal(t, models.TodoListStatusCompleted, f.publisher.statusChanges[0].Status)
	assert.Equal(t, models.TodoListStatusOngoing, f.publisher.statusChanges[1].Status)
}

func TestToggleTaskTwiceRestoresState(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")
	ctx := context.Background()

	list, err := f.todos.CreateList(ctx, user.ID, &models.TodoListRequest{Title: "Chores"})
	require.NoError(t, err)
	task, err := f.todos.AddTask(ctx, user.ID, list.ID, &models.TaskRequest{Title: "Laundry"})
	require.NoError(t, err)

	before, err := f.todos.GetList(ctx, user.ID, list.ID)
	require.NoError(t, err)

	_, err = f.todos.ToggleTask(ctx, user.ID, task.ID)
	require.NoError(t, err)
	resp, err := f.todos.ToggleTask(ctx, user.ID, task.ID)
	require.NoError(t, err)

	assert.False(t, resp.Task.Completed)
	assert.Equal(t, before.Status, resp.ListStatus)

	after, err := f.todos.GetList(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.Tasks[0].Completed, after.Tasks[0].Completed)
}

func TestDeleteLastIncompleteTaskCompletesList(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")
	ctx := context.Background()

	list, err := f.todos.CreateList(ctx, user.ID, &models.TodoListRequest{Title: "Errands"})
	require.NoError(t, err)
	done, err := f.todos.AddTask(ctx, user.ID, list.ID, &models.TaskRequest{Title: "Post office"})
	require.NoError(t, err)
	pending, err := f.todos.AddTask(ctx, user.ID, list.ID, &models.TaskRequest{Title: "Bank"})
	require.NoError(t, err)

	_, err = f.todos.ToggleTask(ctx, user.ID, done.ID)
	require.NoError(t, err)
	require.NoError(t, f.todos.DeleteTask(ctx, user.ID, pending.ID))

	got, err := f.todos.GetList(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TodoListStatusCompleted, got.Status)

	require.NoError(t, f.todos.DeleteTask(ctx, user.ID, done.ID))
	got, err = f.todos.GetList(ctx, user.ID, list.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TodoListStatusOngoing, got.Status)
	assert.Empty(t, got.Tasks)
}

func TestTodoListsAreScopedToOwner(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	ctx := context.Background()

	list, err := f.todos.CreateList(ctx, alice.ID, &models.TodoListRequest{Title: "Private"})
	require.NoError(t, err)
	task, err := f.todos.AddTask(ctx, alice.ID, list.ID, &models.TaskRequest{Title: "Secret"})
	require.NoError(t, err)

	_, err = f.todos.GetList(ctx, bob.ID, list.ID)
	assert.ErrorIs(t, err, ErrTodoListNotFound)
	_, err = f.todos.AddTask(ctx, bob.ID, list.ID, &models.TaskRequest{Title: "Intrude"})
	assert.ErrorIs(t, err, ErrTodoListNotFound)
	_, err = f.todos.ToggleTask(ctx, bob.ID, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, f.todos.DeleteTask(ctx, bob.ID, task.ID), ErrTaskNotFound)

	page, err := f.todos.GetLists(ctx, bob.ID, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestUpdateAndDeleteTodoList(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")
	ctx := context.Background()

	list, err := f.todos.CreateList(ctx, user.ID, &models.TodoListRequest{Title: "Draft", Date: "2024-01-01"})
	require.NoError(t, err)
	task, err := f.todos.AddTask(ctx, user.ID, list.ID, &models.TaskRequest{Title: "Outline"})
	require.NoError(t, err)

	updated, err := f.todos.UpdateList(ctx, user.ID, list.ID, &models.TodoListRequest{Title: "Final"})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "2024-01-01", updated.Date.String())

	_, err = f.todos.UpdateList(ctx, user.ID, list.ID, &models.TodoListRequest{Title: "Final", Date: "01/02/2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	page, err := f.todos.GetLists(ctx, user.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Len(t, page.Items[0].Tasks, 1)

	require.NoError(t, f.todos.DeleteList(ctx, user.ID, list.ID))
	_, err = f.todos.ToggleTask(ctx, user.ID, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
