package memory

import (
	"context"
	"strings"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
)

type userRepository struct {
	*Store
}

func (r *userRepository) Create(_ context.Context, user *models.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.users {
		switch {
		case existing.Username == user.Username:
			return repository.ErrDuplicateUsername
		case strings.EqualFold(existing.Email, user.Email):
			return repository.ErrDuplicateEmail
		}
	}

	r.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) find(match func(models.User) bool) (*models.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, user := range r.users {
		if match(user) {
			return &user, nil
		}
	}
	return nil, nil
}

type sessionRepository struct {
	*Store
}

func (r *sessionRepository) Create(_ context.Context, session *models.Session) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepository) GetByID(_ context.Context, id string) (*models.Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if session, ok := r.sessions[id]; ok {
		return &session, nil
	}
	return nil, nil
}

func (r *sessionRepository) Delete(_ context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *sessionRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var removed int64
	for id, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

type profileRepository struct {
	*Store
}

func (r *profileRepository) GetByUserID(_ context.Context, userID string) (*models.UserProfile, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if profile, ok := r.profiles[userID]; ok {
		return &profile, nil
	}
	return nil, nil
}

func (r *profileRepository) Upsert(_ context.Context, profile *models.UserProfile) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := *profile
	if existing, ok := r.profiles[profile.UserID]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	stored.ProfilePicURL = ""
	r.profiles[profile.UserID] = stored
	return nil
}
