package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	// GetByID returns the task only when its list belongs to userID.
	GetByID(ctx context.Context, userID, id string) (*models.Task, error)
	GetByTodoList(ctx context.Context, todoListID string) ([]models.Task, error)
	GetByTodoLists(ctx context.Context, todoListIDs []string) (map[string][]models.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}

type taskRepository struct {
	*PostgresRepository
}

func NewTaskRepository(db *sql.DB, logger zerolog.Logger) TaskRepository {
	return &taskRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, todo_list_id, title, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.TodoListID,
		task.Title,
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
	)

	return err
}

func (r *taskRepository) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	query := `
		SELECT t.id, t.todo_list_id, t.title, t.completed, t.created_at, t.updated_at
		FROM tasks t
		JOIN todo_lists l ON t.todo_list_id = l.id
		WHERE t.id = $1 AND l.user_id = $2
	`

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID,
		&task.TodoListID,
		&task.Title,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return task, err
}

func (r *taskRepository) GetByTodoList(ctx context.Context, todoListID string) ([]models.Task, error) {
	grouped, err := r.GetByTodoLists(ctx, []string{todoListID})
	if err != nil {
		return nil, err
	}
	return grouped[todoListID], nil
}

// tasksByTodoListsQuery compares the uuid column directly so idx_tasks_todo_list_id applies.
const tasksByTodoListsQuery = `
	SELECT id, todo_list_id, title, completed, created_at, updated_at
	FROM tasks
	WHERE todo_list_id = ANY($1::uuid[])
	ORDER BY created_at, id
`

func (r *taskRepository) GetByTodoLists(ctx context.Context, todoListIDs []string) (map[string][]models.Task, error) {
	grouped := make(map[string][]models.Task, len(todoListIDs))
	if len(todoListIDs) == 0 {
		return grouped, nil
	}

	rows, err := r.db.QueryContext(ctx, tasksByTodoListsQuery, pq.Array(todoListIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.TodoListID,
			&task.Title,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		grouped[task.TodoListID] = append(grouped[task.TodoListID], task)
	}

	return grouped, rows.Err()
}

func (r *taskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	query := `
		UPDATE tasks
		SET completed = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, completed, time.Now(), id)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}
