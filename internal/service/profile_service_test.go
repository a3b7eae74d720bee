package service

import (
	"context"
	"testing"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/integration"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestProfileCreatedLazilyAndUpdated(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")
	ctx := context.Background()

	profile, err := f.profiles.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.School)

	school := "State University"
	profile, err = f.profiles.UpdateProfile(ctx, user.ID, &models.UpdateProfileRequest{School: &school})
	require.NoError(t, err)
	require.NotNil(t, profile.School)
	assert.Equal(t, school, *profile.School)
}

func TestUploadPictureReplacesPrevious(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")
	ctx := context.Background()

	first, err := f.profiles.UploadPicture(ctx, user.ID, &models.UploadPictureRequest{FileName: "a.png", Content: pngHeader})
	require.NoError(t, err)
	require.NotNil(t, first.ProfilePic)
	firstKey := *first.ProfilePic
	assert.Regexp(t, `^avatars/`+user.ID+`/[0-9a-f-]{36}\.png$`, firstKey)
	assert.Equal(t, "https://objects.test/"+firstKey, first.ProfilePicURL)

	second, err := f.profiles.UploadPicture(ctx, user.ID, &models.UploadPictureRequest{FileName: "b.png", Content: pngHeader})
	require.NoError(t, err)

	assert.NotContains(t, f.storage.objects, firstKey)
	assert.Contains(t, f.storage.objects, *second.ProfilePic)
}

func TestUploadPictureRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")
	ctx := context.Background()

	_, err := f.profiles.UploadPicture(ctx, user.ID, &models.UploadPictureRequest{Content: []byte("plain text, not an image")})
	assert.ErrorIs(t, err, ErrUnsupportedImageType)

	big := append(append([]byte{}, pngHeader...), make([]byte, 1<<20)...)
	_, err = f.profiles.UploadPicture(ctx, user.ID, &models.UploadPictureRequest{Content: big})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadPictureStorageDisabled(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")

	profiles := NewProfileService(f.store.Profiles(), integration.NewDisabledAvatarStorage(), 1<<20, zerolog.Nop())
	_, err := profiles.UploadPicture(context.Background(), user.ID, &models.UploadPictureRequest{Content: pngHeader})
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
