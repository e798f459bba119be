package domain

import (
	"context"
	"time"
)

// ReactionKind is the membership a user can hold on a comment. A user holds
// at most one kind per comment, so likes and dislikes stay disjoint.
type ReactionKind string

const (
	ReactionNone    ReactionKind = ""
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// ReactionAction reports what a toggle actually did.
type ReactionAction string

const (
	ActionLiked      ReactionAction = "liked"
	ActionUnliked    ReactionAction = "unliked"
	ActionDisliked   ReactionAction = "disliked"
	ActionUndisliked ReactionAction = "undisliked"
)

// Comment domain model. ParentID == 0 means top-level; replies nest exactly
// one level deep. LikesCount and DislikesCount are derived from the reaction
// store by the repository, never kept as independent counters.
type Comment struct {
	ID            int64      `json:"id"`
	PageID        string     `json:"pageId"`
	Content       string     `json:"content"`
	ParentID      int64      `json:"parentCommentId,omitempty"`
	LikesCount    int64      `json:"likesCount"`
	DislikesCount int64      `json:"dislikesCount"`
	IsEdited      bool       `json:"isEdited"`
	EditedAt      *time.Time `json:"editedAt,omitempty"`
	IsDeleted     bool       `json:"-"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	// Author carries name/email only on read paths, never the password hash.
	Author User `json:"author"`
	// Parent is a short summary of the parent comment, present on single reads.
	Parent *ParentSummary `json:"parentComment,omitempty"`
}

// ParentSummary is the denormalized slice of a parent comment attached to
// single-comment reads.
type ParentSummary struct {
	ID       int64  `json:"id"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
}

// CreateCommentInput carries everything needed to submit a comment.
type CreateCommentInput struct {
	Content  string
	PageID   string
	ParentID int64
	AuthorID int64
}

// ListCommentsQuery selects one page of comments under (PageID, ParentID).
// ParentID == 0 selects top-level comments only.
type ListCommentsQuery struct {
	PageID   string
	ParentID int64
	Sort     SortOption
	Page     PageRequest
}

// CommentFilter is the repository-level shape of a listing query.
type CommentFilter struct {
	PageID   string
	ParentID int64
	Sort     SortOption
	Offset   int
	Limit    int
}

// ToggleResult is the outcome of a like/dislike toggle.
type ToggleResult struct {
	Comment *Comment
	Action  ReactionAction
}

// CommentUsecase defines the business logic contract for comment operations.
type CommentUsecase interface {
	// Create stores a new comment. When ParentID is set, the parent must
	// exist (ErrNotFound) and must not be soft-deleted (ErrBadParamInput).
	Create(ctx context.Context, in CreateCommentInput) (*Comment, error)

	// Fetch returns one page of non-deleted comments with pagination metadata.
	Fetch(ctx context.Context, q ListCommentsQuery) ([]Comment, Pagination, error)

	// GetByID returns a comment. Soft-deleted comments yield ErrNotFound.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Update replaces the content. Only the author may edit (ErrForbidden).
	Update(ctx context.Context, id int64, content string, userID int64) (*Comment, error)

	// Delete soft-deletes the comment. Only the author may delete.
	Delete(ctx context.Context, id int64, userID int64) error

	// ToggleLike flips the caller's like membership; an existing dislike is
	// dropped in the same mutation.
	ToggleLike(ctx context.Context, id int64, userID int64) (ToggleResult, error)

	// ToggleDislike mirrors ToggleLike for the dislike set.
	ToggleDislike(ctx context.Context, id int64, userID int64) (ToggleResult, error)

	// FetchReplies returns one page of direct, non-deleted children of the
	// given parent. The parent must exist and not be deleted.
	FetchReplies(ctx context.Context, parentID int64, sort SortOption, page PageRequest) ([]Comment, Pagination, error)
}

// CommentRepository defines the contract for comment data persistence.
type CommentRepository interface {
	// Store persists a new comment and backfills ID and timestamps.
	Store(ctx context.Context, c *Comment) error

	// GetByID fetches a comment with author, parent summary and reaction
	// counts. Soft-deleted rows are still returned; callers check IsDeleted.
	// Returns ErrNotFound if the row is absent.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// FetchByPage returns one page of non-deleted comments under
	// (PageID, ParentID), sorted and counted within the same query.
	FetchByPage(ctx context.Context, f CommentFilter) ([]Comment, error)

	// CountByPage counts the non-deleted comments under (pageID, parentID).
	CountByPage(ctx context.Context, pageID string, parentID int64) (int64, error)

	// FetchReplies returns one page of direct non-deleted children.
	FetchReplies(ctx context.Context, parentID int64, sort SortOption, offset, limit int) ([]Comment, error)

	// CountReplies counts the direct non-deleted children.
	CountReplies(ctx context.Context, parentID int64) (int64, error)

	// UpdateContent sets content, is_edited and edited_at on one comment.
	UpdateContent(ctx context.Context, id int64, content string, editedAt time.Time) error

	// SoftDelete marks the comment deleted; the row is retained.
	SoftDelete(ctx context.Context, id int64) error

	// GetReaction reports the caller's current membership on a comment.
	GetReaction(ctx context.Context, commentID, userID int64) (ReactionKind, error)

	// SetReaction upserts the caller's membership in a single atomic
	// statement, replacing the opposite kind if present.
	SetReaction(ctx context.Context, commentID, userID int64, kind ReactionKind) error

	// ClearReaction removes the caller's membership of the given kind.
	ClearReaction(ctx context.Context, commentID, userID int64, kind ReactionKind) error
}
