package service

import (
	"errors"

	"github.com/alecxander567/Course-Tracker-Api/internal/service/integration"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrTodoListNotFound = errors.New("todo list not found")
	ErrTaskNotFound     = errors.New("task not found")

	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidSubjectStatus = errors.New("invalid subject status")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInvalidGrade         = errors.New("grade must be between 0 and 999.99")
	ErrInvalidDate          = errors.New("date must be formatted as YYYY-MM-DD")
	ErrUnsupportedImageType = errors.New("profile picture must be a jpeg, png, gif or webp image")
	ErrFileTooLarge         = errors.New("profile picture is too large")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionInvalid     = errors.New("session is missing or expired")

	ErrStorageDisabled = integration.ErrStorageDisabled
)
