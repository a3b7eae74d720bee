package memory

import (
	"context"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/analyzer"
)

type subjectRepository struct {
	*Store
}

func (r *subjectRepository) Create(_ context.Context, subject *models.Subject) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.subjects[subject.ID] = *subject
	return nil
}

func (r *subjectRepository) GetByID(_ context.Context, userID, id string) (*models.Subject, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if subject, ok := r.subjects[id]; ok && subject.UserID == userID {
		return &subject, nil
	}
	return nil, nil
}

func (r *subjectRepository) GetAll(_ context.Context, userID string, filter models.SubjectFilter, limit, offset int) ([]models.Subject, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	matched := []models.Subject{}
	for _, s := range r.subjects {
		if s.UserID != userID {
			continue
		}
		if filter.Category != "" && string(s.Category) != filter.Category {
			continue
		}
		if filter.Status != "" && string(s.Status) != filter.Status {
			continue
		}
		if filter.Priority != "" && string(s.Priority) != filter.Priority {
			continue
		}
		matched = append(matched, s)
	}
	newestFirst(matched, func(s models.Subject) time.Time { return s.CreatedAt })

	return paginate(matched, limit, offset), len(matched), nil
}

func (r *subjectRepository) Update(_ context.Context, subject *models.Subject) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, ok := r.subjects[subject.ID]; ok && existing.UserID == subject.UserID {
		r.subjects[subject.ID] = *subject
	}
	return nil
}

// Delete removes the subject and its notes, mirroring ON DELETE CASCADE.
func (r *subjectRepository) Delete(_ context.Context, userID, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	subject, ok := r.subjects[id]
	if !ok || subject.UserID != userID {
		return nil
	}
	delete(r.subjects, id)
	for noteID, note := range r.notes {
		if note.SubjectID == id {
			delete(r.notes, noteID)
		}
	}
	return nil
}

func (r *subjectRepository) Exists(_ context.Context, userID, id string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	subject, ok := r.subjects[id]
	return ok && subject.UserID == userID, nil
}

func (r *subjectRepository) GradeTotalsByCategory(_ context.Context, userID string) ([]models.CategoryTotal, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var owned []models.Subject
	for _, s := range r.subjects {
		if s.UserID == userID {
			owned = append(owned, s)
		}
	}
	return analyzer.TotalsFromSubjects(owned), nil
}
