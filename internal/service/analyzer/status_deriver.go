package analyzer

import "github.com/alecxander567/Course-Tracker-Api/internal/models"

// DeriveListStatus returns COMPLETED only for a non-empty list whose tasks are all done.
func DeriveListStatus(tasks []models.Task) models.TodoListStatus {
	if len(tasks) == 0 {
		return models.TodoListStatusOngoing
	}
	for _, t := range tasks {
		if !t.Completed {
			return models.TodoListStatusOngoing
		}
	}
	return models.TodoListStatusCompleted
}
