package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/rs/zerolog"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, userID, id string) (*models.Subject, error)
	GetAll(ctx context.Context, userID string, filter models.SubjectFilter, limit, offset int) ([]models.Subject, int, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, userID, id string) error
	Exists(ctx context.Context, userID, id string) (bool, error)
	// GradeTotalsByCategory sums non-null grades per category for one user.
	GradeTotalsByCategory(ctx context.Context, userID string) ([]models.CategoryTotal, error)
}

type subjectRepository struct {
	*PostgresRepository
}

func NewSubjectRepository(db *sql.DB, logger zerolog.Logger) SubjectRepository {
	return &subjectRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const subjectColumns = `id, user_id, category, subject_name, description, grade, semester, school_year, status, priority, created_at, updated_at`

func scanSubject(row interface{ Scan(...interface{}) error }, subject *models.Subject) error {
	return row.Scan(
		&subject.ID,
		&subject.UserID,
		&subject.Category,
		&subject.Name,
		&subject.Description,
		&subject.Grade,
		&subject.Semester,
		&subject.SchoolYear,
		&subject.Status,
		&subject.Priority,
		&subject.CreatedAt,
		&subject.UpdatedAt,
	)
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (` + subjectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		subject.ID,
		subject.UserID,
		subject.Category,
		subject.Name,
		subject.Description,
		subject.Grade,
		subject.Semester,
		subject.SchoolYear,
		subject.Status,
		subject.Priority,
		subject.CreatedAt,
		subject.UpdatedAt,
	)

	return err
}

func (r *subjectRepository) GetByID(ctx context.Context, userID, id string) (*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE id = $1 AND user_id = $2`

	subject := &models.Subject{}
	err := scanSubject(r.db.QueryRowContext(ctx, query, id, userID), subject)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return subject, err
}

func (r *subjectRepository) GetAll(ctx context.Context, userID string, filter models.SubjectFilter, limit, offset int) ([]models.Subject, int, error) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}

	addCondition := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addCondition("category", filter.Category)
	addCondition("status", filter.Status)
	addCondition("priority", filter.Priority)

	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subjects WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM subjects
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, subjectColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var subject models.Subject
		if err := scanSubject(rows, &subject); err != nil {
			return nil, 0, err
		}
		subjects = append(subjects, subject)
	}

	return subjects, total, rows.Err()
}

func (r *subjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET category = $1, subject_name = $2, description = $3, grade = $4, semester = $5,
			school_year = $6, status = $7, priority = $8, updated_at = $9
		WHERE id = $10 AND user_id = $11
	`

	_, err := r.db.ExecContext(ctx, query,
		subject.Category,
		subject.Name,
		subject.Description,
		subject.Grade,
		subject.Semester,
		subject.SchoolYear,
		subject.Status,
		subject.Priority,
		subject.UpdatedAt,
		subject.ID,
		subject.UserID,
	)

	return err
}

func (r *subjectRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *subjectRepository) Exists(ctx context.Context, userID, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1 AND user_id = $2)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&exists)
	return exists, err
}

func (r *subjectRepository) GradeTotalsByCategory(ctx context.Context, userID string) ([]models.CategoryTotal, error) {
	query := `
		SELECT category, SUM(grade) AS grade_sum, COUNT(grade) AS grade_count
		FROM subjects
		WHERE user_id = $1 AND grade IS NOT NULL
		GROUP BY category
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var total models.CategoryTotal
		if err := rows.Scan(&total.Category, &total.Sum, &total.Count); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}

	return totals, rows.Err()
}
