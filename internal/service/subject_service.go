package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/integration"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type SubjectService interface {
	CreateSubject(ctx context.Context, userID string, req *models.SubjectRequest) (*models.Subject, error)
	GetSubject(ctx context.Context, userID, id string) (*models.Subject, error)
	GetSubjects(ctx context.Context, userID string, filter models.SubjectFilter, page, limit int) (*models.PageResponse[models.Subject], error)
	UpdateSubject(ctx context.Context, userID, id string, req *models.SubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, userID, id string) error
}

type subjectService struct {
	subjectRepo repository.SubjectRepository
	publisher   integration.EventPublisher
	logger      zerolog.Logger
}

func NewSubjectService(
	subjectRepo repository.SubjectRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) SubjectService {
	return &subjectService{
		subjectRepo: subjectRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *subjectService) CreateSubject(ctx context.Context, userID string, req *models.SubjectRequest) (*models.Subject, error) {
	now := time.Now()
	subject := &models.Subject{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applySubjectRequest(subject, req); err != nil {
		return nil, err
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	s.logger.Info().
		Str("subject_id", subject.ID).
		Str("user_id", userID).
		Str("category", subject.Category.String()).
		Msg("Subject created")

	if subject.Grade.Valid {
		s.publishGraded(ctx, subject)
	}

	return subject, nil
}

func (s *subjectService) GetSubject(ctx context.Context, userID, id string) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	return subject, nil
}

func (s *subjectService) GetSubjects(ctx context.Context, userID string, filter models.SubjectFilter, page, limit int) (*models.PageResponse[models.Subject], error) {
	if filter.Category != "" && !models.IsValidCategory(filter.Category) {
		return nil, ErrInvalidCategory
	}
	if filter.Status != "" && !models.IsValidSubjectStatus(filter.Status) {
		return nil, ErrInvalidSubjectStatus
	}
	if filter.Priority != "" && !models.IsValidPriority(filter.Priority) {
		return nil, ErrInvalidPriority
	}

	page, limit, offset := normalizePage(page, limit)

	subjects, total, err := s.subjectRepo.GetAll(ctx, userID, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get subjects: %w", err)
	}

	return &models.PageResponse[models.Subject]{
		Items: subjects,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *subjectService) UpdateSubject(ctx context.Context, userID, id string, req *models.SubjectRequest) (*models.Subject, error) {
	subject, err := s.GetSubject(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	previousGrade := subject.Grade
	if err := applySubjectRequest(subject, req); err != nil {
		return nil, err
	}
	subject.UpdatedAt = time.Now()

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}

	s.logger.Info().
		Str("subject_id", subject.ID).
		Str("user_id", userID).
		Msg("Subject updated")

	if gradeChanged(previousGrade, subject.Grade) {
		s.publishGraded(ctx, subject)
	}

	return subject, nil
}

func (s *subjectService) DeleteSubject(ctx context.Context, userID, id string) error {
	exists, err := s.subjectRepo.Exists(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to check subject existence: %w", err)
	}
	if !exists {
		return ErrSubjectNotFound
	}

	if err := s.subjectRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	s.logger.Info().
		Str("subject_id", id).
		Str("user_id", userID).
		Msg("Subject deleted")

	return nil
}

func (s *subjectService) publishGraded(ctx context.Context, subject *models.Subject) {
	event := &models.SubjectGradedEvent{
		SubjectID: subject.ID,
		UserID:    subject.UserID,
		Category:  subject.Category,
		Grade:     subject.Grade.Decimal,
		Timestamp: time.Now().Unix(),
	}
	if err := s.publisher.PublishSubjectGraded(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("subject_id", subject.ID).Msg("Failed to publish subject graded event")
	}
}

// applySubjectRequest validates req and copies it onto subject. Nothing is
// changed when validation fails.
func applySubjectRequest(subject *models.Subject, req *models.SubjectRequest) error {
	category := models.CategoryProgramming
	if req.Category != "" {
		if !models.IsValidCategory(req.Category) {
			return ErrInvalidCategory
		}
		category = models.Category(req.Category)
	}

	status := models.SubjectStatusPending
	if req.Status != "" {
		if !models.IsValidSubjectStatus(req.Status) {
			return ErrInvalidSubjectStatus
		}
		status = models.SubjectStatus(req.Status)
	}

	priority := models.PriorityModerate
	if req.Priority != "" {
		if !models.IsValidPriority(req.Priority) {
			return ErrInvalidPriority
		}
		priority = models.Priority(req.Priority)
	}

	grade, err := normalizeGrade(req.Grade)
	if err != nil {
		return err
	}

	subject.Category = category
	subject.Name = req.Name
	subject.Description = req.Description
	subject.Grade = grade
	subject.Semester = req.Semester
	subject.SchoolYear = req.SchoolYear
	subject.Status = status
	subject.Priority = priority

	return nil
}

// normalizeGrade rounds to the column's two decimal places and enforces its range.
func normalizeGrade(grade decimal.NullDecimal) (decimal.NullDecimal, error) {
	if !grade.Valid {
		return grade, nil
	}

	rounded := grade.Decimal.Round(2)
	if rounded.IsNegative() || rounded.GreaterThan(models.MaxGrade) {
		return decimal.NullDecimal{}, ErrInvalidGrade
	}

	return decimal.NewNullDecimal(rounded), nil
}

func gradeChanged(before, after decimal.NullDecimal) bool {
	if !after.Valid {
		return false
	}
	return !before.Valid || !before.Decimal.Equal(after.Decimal)
}
