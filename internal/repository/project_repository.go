package repository

import (
	"context"
	"database/sql"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/rs/zerolog"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, userID, id string) (*models.Project, error)
	GetAll(ctx context.Context, userID, status string, limit, offset int) ([]models.Project, int, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, userID, id string) error
}

type projectRepository struct {
	*PostgresRepository
}

func NewProjectRepository(db *sql.DB, logger zerolog.Logger) ProjectRepository {
	return &projectRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, user_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		project.ID,
		project.UserID,
		project.Title,
		project.Description,
		project.Status,
		project.CreatedAt,
		project.UpdatedAt,
	)

	return err
}

func (r *projectRepository) GetByID(ctx context.Context, userID, id string) (*models.Project, error) {
	query := `
		SELECT id, user_id, title, description, status, created_at, updated_at
		FROM projects
		WHERE id = $1 AND user_id = $2
	`

	project := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&project.ID,
		&project.UserID,
		&project.Title,
		&project.Description,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return project, err
}

func (r *projectRepository) GetAll(ctx context.Context, userID, status string, limit, offset int) ([]models.Project, int, error) {
	countQuery := `SELECT COUNT(*) FROM projects WHERE user_id = $1 AND ($2 = '' OR status = $2)`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, userID, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, title, description, status, created_at, updated_at
		FROM projects
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, query, userID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.UserID,
			&project.Title,
			&project.Description,
			&project.Status,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, project)
	}

	return projects, total, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		project.Title,
		project.Description,
		project.Status,
		project.UpdatedAt,
		project.ID,
		project.UserID,
	)

	return err
}

func (r *projectRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
