package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		in       PageRequest
		wantPage int
		wantSize int
	}{
		{name: "defaults applied", in: PageRequest{}, wantPage: 0, wantSize: 20},
		{name: "size capped", in: PageRequest{Page: 2, Size: 500}, wantPage: 2, wantSize: 100},
		{name: "negative page clamped", in: PageRequest{Page: -1, Size: 10}, wantPage: 0, wantSize: 10},
		{name: "valid passes through", in: PageRequest{Page: 3, Size: 50}, wantPage: 3, wantSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.Size)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 40, PageRequest{Page: 2, Size: 20}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 20}.Offset())
}

func TestNewPage(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, PageRequest{Page: 0, Size: 3}, 7)

	assert.Equal(t, 3, len(page.Items))
	assert.Equal(t, int64(7), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
}
