package memory

import (
	"context"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
)

type projectRepository struct {
	*Store
}

func (r *projectRepository) Create(_ context.Context, project *models.Project) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.projects[project.ID] = *project
	return nil
}

func (r *projectRepository) GetByID(_ context.Context, userID, id string) (*models.Project, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if project, ok := r.projects[id]; ok && project.UserID == userID {
		return &project, nil
	}
	return nil, nil
}

func (r *projectRepository) GetAll(_ context.Context, userID, status string, limit, offset int) ([]models.Project, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	matched := []models.Project{}
	for _, p := range r.projects {
		if p.UserID == userID && (status == "" || string(p.Status) == status) {
			matched = append(matched, p)
		}
	}
	newestFirst(matched, func(p models.Project) time.Time { return p.CreatedAt })

	return paginate(matched, limit, offset), len(matched), nil
}

func (r *projectRepository) Update(_ context.Context, project *models.Project) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, ok := r.projects[project.ID]; ok && existing.UserID == project.UserID {
		r.projects[project.ID] = *project
	}
	return nil
}

func (r *projectRepository) Delete(_ context.Context, userID, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if project, ok := r.projects[id]; ok && project.UserID == userID {
		delete(r.projects, id)
	}
	return nil
}
