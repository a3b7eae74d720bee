package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextBackoffDoublesUpToCap(t *testing.T) {
	d := 500 * time.Millisecond
	var got []time.Duration
	for i := 0; i < 7; i++ {
		d = nextBackoff(d)
		got = append(got, d)
	}

	assert.Equal(t, []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		8 * time.Second,
		8 * time.Second,
		8 * time.Second,
	}, got)
}

func TestDisabledAvatarStorage(t *testing.T) {
	storage := NewDisabledAvatarStorage()
	ctx := context.Background()

	assert.ErrorIs(t, storage.Upload(ctx, "avatars/u/a.png", strings.NewReader("x"), 1, "image/png"), ErrStorageDisabled)
	_, err := storage.PresignedURL(ctx, "avatars/u/a.png")
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
