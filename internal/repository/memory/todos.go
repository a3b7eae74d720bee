package memory

import (
	"context"
	"sort"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
)

type todoListRepository struct {
	*Store
}

func (r *todoListRepository) Create(_ context.Context, list *models.TodoList) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := *list
	stored.Tasks = nil
	r.todoLists[list.ID] = stored
	return nil
}

func (r *todoListRepository) GetByID(_ context.Context, userID, id string) (*models.TodoList, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if list, ok := r.todoLists[id]; ok && list.UserID == userID {
		return &list, nil
	}
	return nil, nil
}

func (r *todoListRepository) GetAll(_ context.Context, userID string, limit, offset int) ([]models.TodoList, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	matched := []models.TodoList{}
	for _, l := range r.todoLists {
		if l.UserID == userID {
			matched = append(matched, l)
		}
	}
	newestFirst(matched, func(l models.TodoList) time.Time { return l.CreatedAt })
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date.Time)
	})

	return paginate(matched, limit, offset), len(matched), nil
}

func (r *todoListRepository) Update(_ context.Context, list *models.TodoList) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, ok := r.todoLists[list.ID]
	if !ok || existing.UserID != list.UserID {
		return nil
	}
	existing.Title = list.Title
	existing.Description = list.Description
	existing.Date = list.Date
	existing.UpdatedAt = list.UpdatedAt
	r.todoLists[list.ID] = existing
	return nil
}

func (r *todoListRepository) UpdateStatus(_ context.Context, id string, status models.TodoListStatus) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, ok := r.todoLists[id]; ok {
		existing.Status = status
		existing.UpdatedAt = time.Now()
		r.todoLists[id] = existing
	}
	return nil
}

// Delete removes the list and its tasks, mirroring ON DELETE CASCADE.
func (r *todoListRepository) Delete(_ context.Context, userID, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	list, ok := r.todoLists[id]
	if !ok || list.UserID != userID {
		return nil
	}
	delete(r.todoLists, id)
	for taskID, task := range r.tasks {
		if task.TodoListID == id {
			delete(r.tasks, taskID)
		}
	}
	return nil
}

type taskRepository struct {
	*Store
}

func (r *taskRepository) Create(_ context.Context, task *models.Task) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.tasks[task.ID] = *task
	return nil
}

func (r *taskRepository) GetByID(_ context.Context, userID, id string) (*models.Task, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	if list, ok := r.todoLists[task.TodoListID]; !ok || list.UserID != userID {
		return nil, nil
	}
	return &task, nil
}

func (r *taskRepository) GetByTodoList(ctx context.Context, todoListID string) ([]models.Task, error) {
	grouped, err := r.GetByTodoLists(ctx, []string{todoListID})
	if err != nil {
		return nil, err
	}
	return grouped[todoListID], nil
}

func (r *taskRepository) GetByTodoLists(_ context.Context, todoListIDs []string) (map[string][]models.Task, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	wanted := make(map[string]bool, len(todoListIDs))
	for _, id := range todoListIDs {
		wanted[id] = true
	}

	grouped := make(map[string][]models.Task, len(todoListIDs))
	for _, task := range r.tasks {
		if wanted[task.TodoListID] {
			grouped[task.TodoListID] = append(grouped[task.TodoListID], task)
		}
	}
	for _, tasks := range grouped {
		sort.Slice(tasks, func(i, j int) bool {
			if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
				return tasks[i].ID < tasks[j].ID
			}
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	}
	return grouped, nil
}

func (r *taskRepository) SetCompleted(_ context.Context, id string, completed bool) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if task, ok := r.tasks[id]; ok {
		task.Completed = completed
		task.UpdatedAt = time.Now()
		r.tasks[id] = task
	}
	return nil
}

func (r *taskRepository) Delete(_ context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.tasks, id)
	return nil
}
