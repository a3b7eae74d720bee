package service

import (
	"context"
	"testing"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	_, err := f.auth.Register(ctx, &models.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = f.auth.Register(ctx, &models.RegisterRequest{
		Username: "alice2",
		Email:    "ALICE@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// blindUserRepository hides existing users from lookups, as seen by a
// registration racing another one for the same username or email.
type blindUserRepository struct {
	repository.UserRepository
}

func (blindUserRepository) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, nil
}

func (blindUserRepository) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, nil
}

func TestRegisterConflictOnInsert(t *testing.T) {
	store := memory.NewStore()
	auth := NewAuthService(blindUserRepository{store.Users()}, store.Sessions(), time.Hour, zerolog.Nop())
	ctx := context.Background()

	_, err := auth.Register(ctx, &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = auth.Register(ctx, &models.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = auth.Register(ctx, &models.RegisterRequest{
		Username: "bob",
		Email:    "Alice@Example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginAndAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "alice")

	resp, err := f.auth.Login(ctx, &models.LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Len(t, resp.Token, 2*sessionIDBytes)
	assert.Equal(t, user.ID, resp.User.ID)

	userID, err := f.auth.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	require.NoError(t, f.auth.Logout(ctx, resp.Token))
	_, err = f.auth.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	_, err := f.auth.Login(ctx, &models.LoginRequest{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, &models.LoginRequest{Username: "nobody", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "alice")

	sessions := f.store.Sessions()
	require.NoError(t, sessions.Create(ctx, &models.Session{
		ID:        "stale",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-time.Hour),
	}))

	_, err := f.auth.Authenticate(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionInvalid)

	stored, err := sessions.GetByID(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, stored)

	_, err = f.auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")

	got, err := f.users.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = f.users.GetUser(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
