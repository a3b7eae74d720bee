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

type ProjectService interface {
	CreateProject(ctx context.Context, userID string, req *models.ProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, userID, id string) (*models.Project, error)
	GetProjects(ctx context.Context, userID, status string, page, limit int) (*models.PageResponse[models.Project], error)
	UpdateProject(ctx context.Context, userID, id string, req *models.ProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, userID, id string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	logger      zerolog.Logger
}

func NewProjectService(projectRepo repository.ProjectRepository, logger zerolog.Logger) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (s *projectService) CreateProject(ctx context.Context, userID string, req *models.ProjectRequest) (*models.Project, error) {
	status, err := projectStatusOrDefault(req.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project := &models.Project{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info().
		Str("project_id", project.ID).
		Str("status", project.Status.String()).
		Msg("Project created")

	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, userID, id string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	return project, nil
}

func (s *projectService) GetProjects(ctx context.Context, userID, status string, page, limit int) (*models.PageResponse[models.Project], error) {
	if status != "" && !models.IsValidProjectStatus(status) {
		return nil, ErrInvalidProjectStatus
	}

	page, limit, offset := normalizePage(page, limit)

	projects, total, err := s.projectRepo.GetAll(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	return &models.PageResponse[models.Project]{
		Items: projects,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *projectService) UpdateProject(ctx context.Context, userID, id string, req *models.ProjectRequest) (*models.Project, error) {
	status, err := projectStatusOrDefault(req.Status)
	if err != nil {
		return nil, err
	}

	project, err := s.GetProject(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Status = status
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.logger.Info().
		Str("project_id", project.ID).
		Str("status", project.Status.String()).
		Msg("Project updated")

	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, userID, id string) error {
	if _, err := s.GetProject(ctx, userID, id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

func projectStatusOrDefault(status string) (models.ProjectStatus, error) {
	if status == "" {
		return models.ProjectStatusNotStarted, nil
	}
	if !models.IsValidProjectStatus(status) {
		return "", ErrInvalidProjectStatus
	}
	return models.ProjectStatus(status), nil
}
