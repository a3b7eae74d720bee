// Package memory keeps every record in process memory. It backs the "memory"
// database driver and the service and handler tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
)

type Store struct {
	mutex sync.RWMutex

	users     map[string]models.User
	sessions  map[string]models.Session
	profiles  map[string]models.UserProfile
	subjects  map[string]models.Subject
	notes     map[string]models.Note
	projects  map[string]models.Project
	todoLists map[string]models.TodoList
	tasks     map[string]models.Task
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]models.User),
		sessions:  make(map[string]models.Session),
		profiles:  make(map[string]models.UserProfile),
		subjects:  make(map[string]models.Subject),
		notes:     make(map[string]models.Note),
		projects:  make(map[string]models.Project),
		todoLists: make(map[string]models.TodoList),
		tasks:     make(map[string]models.Task),
	}
}

func (s *Store) Users() repository.UserRepository { return &userRepository{s} }
func (s *Store) Sessions() repository.SessionRepository { return &sessionRepository{s} }
func (s *Store) Profiles() repository.ProfileRepository { return &profileRepository{s} }
func (s *Store) Subjects() repository.SubjectRepository { return &subjectRepository{s} }
func (s *Store) Notes() repository.NoteRepository { return &noteRepository{s} }
func (s *Store) Projects() repository.ProjectRepository { return &projectRepository{s} }
func (s *Store) TodoLists() repository.TodoListRepository { return &todoListRepository{s} }
func (s *Store) Tasks() repository.TaskRepository { return &taskRepository{s} }

// newestFirst orders records the way the SQL queries do: created_at DESC.
func newestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
