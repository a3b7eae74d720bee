package memory

import (
	"context"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
)

type noteRepository struct {
	*Store
}

func (r *noteRepository) Create(_ context.Context, note *models.Note) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.notes[note.ID] = *note
	return nil
}

func (r *noteRepository) GetByID(_ context.Context, userID, id string) (*models.Note, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if note, ok := r.notes[id]; ok && note.UserID == userID {
		return &note, nil
	}
	return nil, nil
}

func (r *noteRepository) GetAll(_ context.Context, userID, subjectID string, limit, offset int) ([]models.Note, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	matched := []models.Note{}
	for _, n := range r.notes {
		if n.UserID == userID && (subjectID == "" || n.SubjectID == subjectID) {
			matched = append(matched, n)
		}
	}
	newestFirst(matched, func(n models.Note) time.Time { return n.CreatedAt })

	return paginate(matched, limit, offset), len(matched), nil
}

func (r *noteRepository) Update(_ context.Context, note *models.Note) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, ok := r.notes[note.ID]; ok && existing.UserID == note.UserID {
		r.notes[note.ID] = *note
	}
	return nil
}

func (r *noteRepository) Delete(_ context.Context, userID, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if note, ok := r.notes[id]; ok && note.UserID == userID {
		delete(r.notes, id)
	}
	return nil
}
