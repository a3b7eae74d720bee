package repository

import (
	"context"
	"database/sql"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/rs/zerolog"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
}

type profileRepository struct {
	*PostgresRepository
}

func NewProfileRepository(db *sql.DB, logger zerolog.Logger) ProfileRepository {
	return &profileRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `
		SELECT user_id, profile_pic, address, school, course, bio, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	profile := &models.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.ProfilePic,
		&profile.Address,
		&profile.School,
		&profile.Course,
		&profile.Bio,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return profile, err
}

func (r *profileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, profile_pic, address, school, course, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET profile_pic = EXCLUDED.profile_pic,
			address = EXCLUDED.address,
			school = EXCLUDED.school,
			course = EXCLUDED.course,
			bio = EXCLUDED.bio,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.UserID,
		profile.ProfilePic,
		profile.Address,
		profile.School,
		profile.Course,
		profile.Bio,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	return err
}
