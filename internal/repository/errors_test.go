package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapUserConflict(t *testing.T) {
	other := errors.New("connection reset")
	pkey := &pq.Error{Code: "23505", Constraint: "users_pkey"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "username",
			err:  &pq.Error{Code: "23505", Constraint: "users_username_key"},
			want: ErrDuplicateUsername,
		},
		{
			name: "wrapped email",
			err:  fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "users_email_key"}),
			want: ErrDuplicateEmail,
		},
		{
			name: "other constraint",
			err:  pkey,
			want: pkey,
		},
		{name: "not a pq error", err: other, want: other},
		{name: "nil", err: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapUserConflict(tt.err))
		})
	}
}
