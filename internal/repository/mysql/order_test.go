package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagetalk/comment-api/domain"
)

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "comments.created_at DESC", orderClause(domain.SortNewest))
	assert.Equal(t, "comments.created_at ASC", orderClause(domain.SortOldest))
	assert.Equal(t, "likes_count DESC, comments.created_at DESC", orderClause(domain.SortMostLiked))
	assert.Equal(t, "dislikes_count DESC, comments.created_at DESC", orderClause(domain.SortMostDisliked))

	// unknown values fall back to newest-first
	assert.Equal(t, "comments.created_at DESC", orderClause(domain.SortOption("trending")))
}
