package response

import "github.com/pagetalk/comment-api/domain"

type Comment struct {
	ID            int64          `json:"id"`
	PageID        string         `json:"pageId"`
	Content       string         `json:"content"`
	ParentID      int64          `json:"parentCommentId,omitempty"`
	LikesCount    int64          `json:"likesCount"`
	DislikesCount int64          `json:"dislikesCount"`
	IsEdited      bool           `json:"isEdited"`
	EditedAt      string         `json:"editedAt,omitempty"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
	Author        CommentAuthor  `json:"author"`
	Parent        *ParentSummary `json:"parentComment,omitempty"`
}

// CommentAuthor is the denormalized author identity: name and email only.
type CommentAuthor struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ParentSummary struct {
	ID       int64  `json:"id"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	res := Comment{
		ID:            c.ID,
		PageID:        c.PageID,
		Content:       c.Content,
		ParentID:      c.ParentID,
		LikesCount:    c.LikesCount,
		DislikesCount: c.DislikesCount,
		IsEdited:      c.IsEdited,
		CreatedAt:     c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:     c.UpdatedAt.Format(DateTimeFormat),
		Author: CommentAuthor{
			ID:    c.Author.ID,
			Name:  c.Author.Name,
			Email: c.Author.Email,
		},
	}
	if c.EditedAt != nil {
		res.EditedAt = c.EditedAt.Format(DateTimeFormat)
	}
	if c.Parent != nil {
		res.Parent = &ParentSummary{
			ID:       c.Parent.ID,
			Content:  c.Parent.Content,
			AuthorID: c.Parent.AuthorID,
		}
	}
	return res
}

func NewCommentListFromDomain(comments []domain.Comment) []Comment {
	res := make([]Comment, len(comments))
	for i := range comments {
		res[i] = NewCommentFromDomain(&comments[i])
	}
	return res
}
