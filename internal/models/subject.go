package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Grades and averages go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Category string

const (
	CategoryProgramming Category = "Programming"
	CategoryDatabase    Category = "Database"
	CategoryNetworking  Category = "Networking"
	CategorySecurity    Category = "Security"
	CategoryElectives   Category = "Electives"
)

// Categories lists every category in declaration order. Career selection breaks
// ties by this order.
var Categories = []Category{
	CategoryProgramming,
	CategoryDatabase,
	CategoryNetworking,
	CategorySecurity,
	CategoryElectives,
}

func (c Category) String() string {
	return string(c)
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if string(c) == category {
			return true
		}
	}
	return false
}

type SubjectStatus string

const (
	SubjectStatusPending   SubjectStatus = "Pending"
	SubjectStatusOngoing   SubjectStatus = "Ongoing"
	SubjectStatusCompleted SubjectStatus = "Completed"
)

func (s SubjectStatus) String() string {
	return string(s)
}

func IsValidSubjectStatus(status string) bool {
	switch SubjectStatus(status) {
	case SubjectStatusPending, SubjectStatusOngoing, SubjectStatusCompleted:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityModerate Priority = "Moderate"
	PriorityHigh     Priority = "High"
)

func (p Priority) String() string {
	return string(p)
}

func IsValidPriority(priority string) bool {
	switch Priority(priority) {
	case PriorityLow, PriorityModerate, PriorityHigh:
		return true
	default:
		return false
	}
}

// MaxGrade is the largest value a NUMERIC(5,2) grade column holds.
var MaxGrade = decimal.RequireFromString("999.99")

type Subject struct {
	ID          string              `json:"id" db:"id"`
	UserID      string              `json:"user_id" db:"user_id"`
	Category    Category            `json:"category" db:"category"`
	Name        string              `json:"subject_name" db:"subject_name"`
	Description *string             `json:"description" db:"description"`
	Grade       decimal.NullDecimal `json:"grade" db:"grade"`
	Semester    *string             `json:"semester" db:"semester"`
	SchoolYear  *string             `json:"school_year" db:"school_year"`
	Status      SubjectStatus       `json:"status" db:"status"`
	Priority    Priority            `json:"priority" db:"priority"`
	CreatedAt   time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at" db:"updated_at"`
}

// CategoryTotal is the sum and count of non-null grades within one category.
type CategoryTotal struct {
	Category Category        `db:"category"`
	Sum      decimal.Decimal `db:"grade_sum"`
	Count    int64           `db:"grade_count"`
}

type SubjectFilter struct {
	Category string
	Status   string
	Priority string
}
