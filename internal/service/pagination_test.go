package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
		wantOffset          int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "third page", page: 3, limit: 10, wantPage: 3, wantLimit: 10, wantOffset: 20},
		{name: "limit over max", page: 1, limit: 500, wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "negative page", page: -4, limit: 5, wantPage: 1, wantLimit: 5, wantOffset: 0},
		{
			name:       "page beyond int32 offsets",
			page:       922337203685477581,
			limit:      maxPageLimit,
			wantPage:   maxPage,
			wantLimit:  maxPageLimit,
			wantOffset: (maxPage - 1) * maxPageLimit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := normalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}
