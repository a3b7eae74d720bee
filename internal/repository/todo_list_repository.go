package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/rs/zerolog"
)

type TodoListRepository interface {
	Create(ctx context.Context, list *models.TodoList) error
	GetByID(ctx context.Context, userID, id string) (*models.TodoList, error)
	GetAll(ctx context.Context, userID string, limit, offset int) ([]models.TodoList, int, error)
	// Update writes title, description and date. Status is only written by UpdateStatus.
	Update(ctx context.Context, list *models.TodoList) error
	UpdateStatus(ctx context.Context, id string, status models.TodoListStatus) error
	Delete(ctx context.Context, userID, id string) error
}

type todoListRepository struct {
	*PostgresRepository
}

func NewTodoListRepository(db *sql.DB, logger zerolog.Logger) TodoListRepository {
	return &todoListRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *todoListRepository) Create(ctx context.Context, list *models.TodoList) error {
	query := `
		INSERT INTO todo_lists (id, user_id, title, description, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		list.ID,
		list.UserID,
		list.Title,
		list.Description,
		list.Status,
		list.Date,
		list.CreatedAt,
		list.UpdatedAt,
	)

	return err
}

func (r *todoListRepository) GetByID(ctx context.Context, userID, id string) (*models.TodoList, error) {
	query := `
		SELECT id, user_id, title, description, status, date, created_at, updated_at
		FROM todo_lists
		WHERE id = $1 AND user_id = $2
	`

	list := &models.TodoList{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&list.ID,
		&list.UserID,
		&list.Title,
		&list.Description,
		&list.Status,
		&list.Date,
		&list.CreatedAt,
		&list.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return list, err
}

func (r *todoListRepository) GetAll(ctx context.Context, userID string, limit, offset int) ([]models.TodoList, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todo_lists WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, title, description, status, date, created_at, updated_at
		FROM todo_lists
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	lists := []models.TodoList{}
	for rows.Next() {
		var list models.TodoList
		err := rows.Scan(
			&list.ID,
			&list.UserID,
			&list.Title,
			&list.Description,
			&list.Status,
			&list.Date,
			&list.CreatedAt,
			&list.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		lists = append(lists, list)
	}

	return lists, total, rows.Err()
}

func (r *todoListRepository) Update(ctx context.Context, list *models.TodoList) error {
	query := `
		UPDATE todo_lists
		SET title = $1, description = $2, date = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		list.Title,
		list.Description,
		list.Date,
		list.UpdatedAt,
		list.ID,
		list.UserID,
	)

	return err
}

func (r *todoListRepository) UpdateStatus(ctx context.Context, id string, status models.TodoListStatus) error {
	query := `
		UPDATE todo_lists
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *todoListRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todo_lists WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
