package models

import "github.com/shopspring/decimal"

type SubjectGradedEvent struct {
	SubjectID string          `json:"subject_id"`
	UserID    string          `json:"user_id"`
	Category  Category        `json:"category"`
	Grade     decimal.Decimal `json:"grade"`
	Timestamp int64           `json:"timestamp"`
}

type TodoListStatusChangedEvent struct {
	TodoListID string         `json:"todo_list_id"`
	UserID     string         `json:"user_id"`
	Status     TodoListStatus `json:"status"`
	Timestamp  int64          `json:"timestamp"`
}
