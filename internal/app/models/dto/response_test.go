package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalItems int
		wantPages  int
	}{
		{"exact division", 1, 10, 30, 3},
		{"remainder adds a page", 2, 10, 31, 4},
		{"no items", 1, 10, 0, 0},
		{"fewer items than a page", 1, 10, 3, 1},
		{"zero page size falls back to 10", 1, 0, 25, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.page, tt.pageSize, tt.totalItems)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.page, info.CurrentPage)
			assert.Equal(t, tt.totalItems, info.TotalItems)
		})
	}
}

func TestNewAPIResponse(t *testing.T) {
	resp := NewAPIResponse(map[string]string{"key": "value"}, "done")
	assert.True(t, resp.Success)
	assert.Equal(t, "done", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.False(t, resp.Timestamp.IsZero())
}
