package request

import "github.com/pagetalk/comment-api/domain"

type CreateComment struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	PageID   string `json:"pageId" binding:"required"`
	ParentID int64  `json:"parentCommentId"`
}

// ToInput: Request -> Domain
func (r *CreateComment) ToInput(authorID int64) domain.CreateCommentInput {
	return domain.CreateCommentInput{
		Content:  r.Content,
		PageID:   r.PageID,
		ParentID: r.ParentID,
		AuthorID: authorID,
	}
}

type UpdateComment struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// ListComments binds the listing query string. Sort defaults to newest and
// page/limit are clamped downstream by domain.PageRequest.Normalize.
type ListComments struct {
	PageID   string `form:"pageId" binding:"required"`
	Sort     string `form:"sort" binding:"omitempty,oneof=newest oldest mostLiked mostDisliked"`
	ParentID int64  `form:"parentCommentId" binding:"omitempty,min=1"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ListReplies struct {
	Sort  string `form:"sort" binding:"omitempty,oneof=newest oldest mostLiked mostDisliked"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
