package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type NoteService interface {
	CreateNote(ctx context.Context, userID string, req *models.NoteRequest) (*models.Note, error)
	GetNote(ctx context.Context, userID, id string) (*models.Note, error)
	GetNotes(ctx context.Context, userID, subjectID string, page, limit int) (*models.PageResponse[models.Note], error)
	UpdateNote(ctx context.Context, userID, id string, req *models.NoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, userID, id string) error
}

type noteService struct {
	noteRepo    repository.NoteRepository
	subjectRepo repository.SubjectRepository
	logger      zerolog.Logger
}

func NewNoteService(
	noteRepo repository.NoteRepository,
	subjectRepo repository.SubjectRepository,
	logger zerolog.Logger,
) NoteService {
	return &noteService{
		noteRepo:    noteRepo,
		subjectRepo: subjectRepo,
		logger:      logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, userID string, req *models.NoteRequest) (*models.Note, error) {
	if err := s.checkSubject(ctx, userID, req.SubjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &models.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		SubjectID: req.SubjectID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info().
		Str("note_id", note.ID).
		Str("subject_id", note.SubjectID).
		Msg("Note created")

	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, userID, id string) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	return note, nil
}

func (s *noteService) GetNotes(ctx context.Context, userID, subjectID string, page, limit int) (*models.PageResponse[models.Note], error) {
	page, limit, offset := normalizePage(page, limit)

	notes, total, err := s.noteRepo.GetAll(ctx, userID, subjectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	return &models.PageResponse[models.Note]{
		Items: notes,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID, id string, req *models.NoteRequest) (*models.Note, error) {
	note, err := s.GetNote(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.SubjectID != note.SubjectID {
		if err := s.checkSubject(ctx, userID, req.SubjectID); err != nil {
			return nil, err
		}
	}

	note.SubjectID = req.SubjectID
	note.Title = req.Title
	note.Content = req.Content
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, id string) error {
	if _, err := s.GetNote(ctx, userID, id); err != nil {
		return err
	}

	if err := s.noteRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info().
		Str("note_id", id).
		Msg("Note deleted")

	return nil
}

func (s *noteService) checkSubject(ctx context.Context, userID, subjectID string) error {
	exists, err := s.subjectRepo.Exists(ctx, userID, subjectID)
	if err != nil {
		return fmt.Errorf("failed to check subject existence: %w", err)
	}
	if !exists {
		return ErrSubjectNotFound
	}
	return nil
}
