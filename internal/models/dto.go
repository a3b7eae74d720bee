package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Data Transfer Objects

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50,alphanum_"`
	Email    string  `json:"email" validate:"required,email,max=100"`
	Password string  `json:"password" validate:"required,min=8,max=128"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=128"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type UpdateProfileRequest struct {
	Address *string `json:"address" validate:"omitempty,max=255"`
	School  *string `json:"school" validate:"omitempty,max=150"`
	Course  *string `json:"course" validate:"omitempty,max=150"`
	Bio     *string `json:"bio" validate:"omitempty,max=2000"`
}

type UploadPictureRequest struct {
	FileName    string
	ContentType string
	Content     []byte
}

// SubjectRequest creates or fully replaces a subject. Empty enum fields fall back to defaults.
type SubjectRequest struct {
	Category    string              `json:"category" validate:"omitempty,category"`
	Name        string              `json:"subject_name" validate:"required,max=100"`
	Description *string             `json:"description"`
	Grade       decimal.NullDecimal `json:"grade" validate:"-"`
	Semester    *string             `json:"semester" validate:"omitempty,max=20"`
	SchoolYear  *string             `json:"school_year" validate:"omitempty,max=20"`
	Status      string              `json:"status" validate:"omitempty,subject_status"`
	Priority    string              `json:"priority" validate:"omitempty,priority"`
}

type NoteRequest struct {
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	Title     string `json:"title" validate:"required,max=150"`
	Content   string `json:"content" validate:"required"`
}

type ProjectRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,project_status"`
}

type TodoListRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Description *string `json:"description"`
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type TaskRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type PageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// CareerRecommendationResponse is the outbound shape of a grade aggregation.
// BestCategory and RecommendedCareer are null when no subject is graded.
type CareerRecommendationResponse struct {
	HasData           bool                         `json:"has_data"`
	Averages          map[Category]decimal.Decimal `json:"averages"`
	SubjectCounts     map[Category]int64           `json:"subject_counts"`
	BestCategory      *Category                    `json:"best_category"`
	RecommendedCareer *string                      `json:"recommended_career"`
}
