package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/analyzer"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/integration"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TodoService manages to-do lists and their tasks. A list's status is never
// written by callers; it is recomputed whenever its task set changes.
type TodoService interface {
	CreateList(ctx context.Context, userID string, req *models.TodoListRequest) (*models.TodoList, error)
	GetList(ctx context.Context, userID, id string) (*models.TodoList, error)
	GetLists(ctx context.Context, userID string, page, limit int) (*models.PageResponse[models.TodoList], error)
	UpdateList(ctx context.Context, userID, id string, req *models.TodoListRequest) (*models.TodoList, error)
	DeleteList(ctx context.Context, userID, id string) error

	AddTask(ctx context.Context, userID, listID string, req *models.TaskRequest) (*models.Task, error)
	ToggleTask(ctx context.Context, userID, taskID string) (*models.TaskToggleResponse, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

type todoService struct {
	listRepo  repository.TodoListRepository
	taskRepo  repository.TaskRepository
	publisher integration.EventPublisher
	logger    zerolog.Logger
}

func NewTodoService(
	listRepo repository.TodoListRepository,
	taskRepo repository.TaskRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) TodoService {
	return &todoService{
		listRepo:  listRepo,
		taskRepo:  taskRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *todoService) CreateList(ctx context.Context, userID string, req *models.TodoListRequest) (*models.TodoList, error) {
	date, err := parseListDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	list := &models.TodoList{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      analyzer.DeriveListStatus(nil),
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tasks:       []models.Task{},
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create todo list: %w", err)
	}

	s.logger.Info().
		Str("todo_list_id", list.ID).
		Str("user_id", userID).
		Msg("Todo list created")

	return list, nil
}

func (s *todoService) GetList(ctx context.Context, userID, id string) (*models.TodoList, error) {
	list, err := s.getOwnedList(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.GetByTodoList(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	list.Tasks = nonNilTasks(tasks)

	return list, nil
}

func (s *todoService) GetLists(ctx context.Context, userID string, page, limit int) (*models.PageResponse[models.TodoList], error) {
	page, limit, offset := normalizePage(page, limit)

	lists, total, err := s.listRepo.GetAll(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo lists: %w", err)
	}

	ids := make([]string, len(lists))
	for i := range lists {
		ids[i] = lists[i].ID
	}

	grouped, err := s.taskRepo.GetByTodoLists(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	for i := range lists {
		lists[i].Tasks = nonNilTasks(grouped[lists[i].ID])
	}

	return &models.PageResponse[models.TodoList]{
		Items: lists,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *todoService) UpdateList(ctx context.Context, userID, id string, req *models.TodoListRequest) (*models.TodoList, error) {
	list, err := s.GetList(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	date := list.Date
	if req.Date != "" {
		if date, err = parseListDate(req.Date); err != nil {
			return nil, err
		}
	}

	list.Title = req.Title
	list.Description = req.Description
	list.Date = date
	list.UpdatedAt = time.Now()

	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to update todo list: %w", err)
	}

	return list, nil
}

func (s *todoService) DeleteList(ctx context.Context, userID, id string) error {
	if _, err := s.getOwnedList(ctx, userID, id); err != nil {
		return err
	}

	if err := s.listRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete todo list: %w", err)
	}

	s.logger.Info().
		Str("todo_list_id", id).
		Msg("Todo list deleted")

	return nil
}

func (s *todoService) AddTask(ctx context.Context, userID, listID string, req *models.TaskRequest) (*models.Task, error) {
	list, err := s.getOwnedList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &models.Task{
		ID:         uuid.New().String(),
		TodoListID: list.ID,
		Title:      req.Title,
		Completed:  false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if _, err := s.refreshStatus(ctx, list); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *todoService) ToggleTask(ctx context.Context, userID, taskID string) (*models.TaskToggleResponse, error) {
	task, list, err := s.getOwnedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now()
	if err := s.taskRepo.SetCompleted(ctx, task.ID, task.Completed); err != nil {
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}

	status, err := s.refreshStatus(ctx, list)
	if err != nil {
		return nil, err
	}

	return &models.TaskToggleResponse{
		Task:       task,
		ListStatus: status,
	}, nil
}

func (s *todoService) DeleteTask(ctx context.Context, userID, taskID string) error {
	task, list, err := s.getOwnedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	_, err = s.refreshStatus(ctx, list)
	return err
}

// refreshStatus derives the list status from its stored tasks and persists it
// when it differs from what the list currently holds.
func (s *todoService) refreshStatus(ctx context.Context, list *models.TodoList) (models.TodoListStatus, error) {
	tasks, err := s.taskRepo.GetByTodoList(ctx, list.ID)
	if err != nil {
		return "", fmt.Errorf("failed to get tasks: %w", err)
	}

	status := analyzer.DeriveListStatus(tasks)
	if status == list.Status {
		return status, nil
	}

	if err := s.listRepo.UpdateStatus(ctx, list.ID, status); err != nil {
		return "", fmt.Errorf("failed to update todo list status: %w", err)
	}

	s.logger.Info().
		Str("todo_list_id", list.ID).
		Str("from", list.Status.String()).
		Str("to", status.String()).
		Msg("Todo list status changed")

	list.Status = status

	event := &models.TodoListStatusChangedEvent{
		TodoListID: list.ID,
		UserID:     list.UserID,
		Status:     status,
		Timestamp:  time.Now().Unix(),
	}
	if err := s.publisher.PublishTodoListStatusChanged(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("todo_list_id", list.ID).Msg("Failed to publish status changed event")
	}

	return status, nil
}

func (s *todoService) getOwnedList(ctx context.Context, userID, id string) (*models.TodoList, error) {
	list, err := s.listRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo list: %w", err)
	}
	if list == nil {
		return nil, ErrTodoListNotFound
	}
	return list, nil
}

func (s *todoService) getOwnedTask(ctx context.Context, userID, taskID string) (*models.Task, *models.TodoList, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, nil, ErrTaskNotFound
	}

	list, err := s.listRepo.GetByID(ctx, userID, task.TodoListID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get todo list: %w", err)
	}
	if list == nil {
		return nil, nil, ErrTaskNotFound
	}

	return task, list, nil
}

func parseListDate(value string) (models.Date, error) {
	if value == "" {
		return models.NewDate(time.Now()), nil
	}
	date, err := models.ParseDate(value)
	if err != nil {
		return models.Date{}, ErrInvalidDate
	}
	return date, nil
}

func nonNilTasks(tasks []models.Task) []models.Task {
	if tasks == nil {
		return []models.Task{}
	}
	return tasks
}
