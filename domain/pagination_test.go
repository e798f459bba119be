package domain_test

import (
	"testing"

	"github.com/pagetalk/comment-api/domain"
	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.PageRequest
		expected domain.PageRequest
	}{
		{"zero values use defaults", domain.PageRequest{}, domain.PageRequest{Page: 1, Limit: 10}},
		{"negative page clamps to 1", domain.PageRequest{Page: -3, Limit: 20}, domain.PageRequest{Page: 1, Limit: 20}},
		{"limit above max clamps to 100", domain.PageRequest{Page: 2, Limit: 500}, domain.PageRequest{Page: 2, Limit: 100}},
		{"valid values untouched", domain.PageRequest{Page: 4, Limit: 25}, domain.PageRequest{Page: 4, Limit: 25}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.in.Normalize())
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	p := domain.PageRequest{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())

	first := domain.PageRequest{}.Normalize()
	assert.Equal(t, 0, first.Offset())
}

func TestNewPagination(t *testing.T) {
	t.Run("first page of 25 items by 10", func(t *testing.T) {
		p := domain.NewPagination(domain.PageRequest{Page: 1, Limit: 10}, 25)

		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(25), p.TotalCount)
		assert.True(t, p.HasNextPage)
		assert.False(t, p.HasPrevPage)
	})

	t.Run("last page of 25 items by 10", func(t *testing.T) {
		p := domain.NewPagination(domain.PageRequest{Page: 3, Limit: 10}, 25)

		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.True(t, p.HasPrevPage)
	})

	t.Run("empty result set", func(t *testing.T) {
		p := domain.NewPagination(domain.PageRequest{Page: 1, Limit: 10}, 0)

		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.False(t, p.HasPrevPage)
	})

	t.Run("raw request is normalized, not a division by zero", func(t *testing.T) {
		p := domain.NewPagination(domain.PageRequest{}, 25)

		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 10, p.PageSize)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("exact multiple of limit", func(t *testing.T) {
		p := domain.NewPagination(domain.PageRequest{Page: 2, Limit: 10}, 20)

		assert.Equal(t, 2, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.True(t, p.HasPrevPage)
	})
}

func TestParseSortOption(t *testing.T) {
	for _, valid := range []string{"newest", "oldest", "mostLiked", "mostDisliked"} {
		sort, err := domain.ParseSortOption(valid)
		assert.NoError(t, err)
		assert.Equal(t, domain.SortOption(valid), sort)
	}

	sort, err := domain.ParseSortOption("")
	assert.NoError(t, err)
	assert.Equal(t, domain.SortNewest, sort)

	_, err = domain.ParseSortOption("trending")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
