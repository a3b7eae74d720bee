package service

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu            sync.Mutex
	graded        []models.SubjectGradedEvent
	statusChanges []models.TodoListStatusChangedEvent
}

func (p *recordingPublisher) PublishSubjectGraded(_ context.Context, event *models.SubjectGradedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.graded = append(p.graded, *event)
	return nil
}

func (p *recordingPublisher) PublishTodoListStatusChanged(_ context.Context, event *models.TodoListStatusChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statusChanges = append(p.statusChanges, *event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fakeAvatarStorage struct {
	objects map[string][]byte
}

func newFakeAvatarStorage() *fakeAvatarStorage {
	return &fakeAvatarStorage{objects: make(map[string][]byte)}
}

func (f *fakeAvatarStorage) Upload(_ context.Context, key string, content io.Reader, _ int64, _ string) error {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return err
	}
	f.objects[key] = buf.Bytes()
	return nil
}

func (f *fakeAvatarStorage) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeAvatarStorage) PresignedURL(_ context.Context, key string) (string, error) {
	return "https://objects.test/" + key, nil
}

type fixture struct {
	store     *memory.Store
	publisher *recordingPublisher
	storage   *fakeAvatarStorage

	auth     AuthService
	users    UserService
	profiles ProfileService
	subjects SubjectService
	careers  CareerService
	notes    NoteService
	projects ProjectService
	todos    TodoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := zerolog.Nop()
	store := memory.NewStore()
	publisher := &recordingPublisher{}
	storage := newFakeAvatarStorage()

	return &fixture{
		store:     store,
		publisher: publisher,
		storage:   storage,
		auth:      NewAuthService(store.Users(), store.Sessions(), time.Hour, logger),
		users:     NewUserService(store.Users(), logger),
		profiles:  NewProfileService(store.Profiles(), storage, 1<<20, logger),
		subjects:  NewSubjectService(store.Subjects(), publisher, logger),
		careers:   NewCareerService(store.Subjects(), logger),
		notes:     NewNoteService(store.Notes(), store.Subjects(), logger),
		projects:  NewProjectService(store.Projects(), logger),
		todos:     NewTodoService(store.TodoLists(), store.Tasks(), publisher, logger),
	}
}

func (f *fixture) register(t *testing.T, username string) *models.User {
	t.Helper()

	user, err := f.auth.Register(context.Background(), &models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return user
}
