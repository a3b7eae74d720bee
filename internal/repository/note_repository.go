package repository

import (
	"context"
	"database/sql"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/rs/zerolog"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, userID, id string) (*models.Note, error)
	// GetAll lists a user's notes; an empty subjectID lists across all subjects.
	GetAll(ctx context.Context, userID, subjectID string, limit, offset int) ([]models.Note, int, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, userID, id string) error
}

type noteRepository struct {
	*PostgresRepository
}

func NewNoteRepository(db *sql.DB, logger zerolog.Logger) NoteRepository {
	return &noteRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (id, user_id, subject_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		note.ID,
		note.UserID,
		note.SubjectID,
		note.Title,
		note.Content,
		note.CreatedAt,
		note.UpdatedAt,
	)

	return err
}

func (r *noteRepository) GetByID(ctx context.Context, userID, id string) (*models.Note, error) {
	query := `
		SELECT id, user_id, subject_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = $1 AND user_id = $2
	`

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&note.ID,
		&note.UserID,
		&note.SubjectID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return note, err
}

func (r *noteRepository) GetAll(ctx context.Context, userID, subjectID string, limit, offset int) ([]models.Note, int, error) {
	countQuery := `SELECT COUNT(*) FROM notes WHERE user_id = $1 AND ($2 = '' OR subject_id::text = $2)`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, userID, subjectID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, subject_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1 AND ($2 = '' OR subject_id::text = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, query, userID, subjectID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		err := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.SubjectID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		notes = append(notes, note)
	}

	return notes, total, rows.Err()
}

func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET subject_id = $1, title = $2, content = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		note.SubjectID,
		note.Title,
		note.Content,
		note.UpdatedAt,
		note.ID,
		note.UserID,
	)

	return err
}

func (r *noteRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
