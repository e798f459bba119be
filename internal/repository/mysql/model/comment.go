package model

import (
	"time"

	"github.com/pagetalk/comment-api/domain"
)

type Comment struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	PageID    string     `gorm:"column:page_id;size:255;not null;index:idx_page_created,priority:1"`
	AuthorID  int64      `gorm:"column:author_id;not null;index"`
	Content   string     `gorm:"type:text;not null"`
	ParentID  int64      `gorm:"column:parent_id;not null;default:0;index:idx_parent_created,priority:1"`
	IsEdited  bool       `gorm:"not null;default:false"`
	EditedAt  *time.Time `gorm:"default:null"`
	IsDeleted bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"index:idx_page_created,priority:2;index:idx_parent_created,priority:2"`
	UpdatedAt time.Time
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:       c.ID,
		PageID:   c.PageID,
		AuthorID: c.Author.ID,
		Content:  c.Content,
		ParentID: c.ParentID,
	}
}

// CommentRow is the scan target for read queries: the comment columns plus
// the joined author identity and the reaction counts computed in-query.
type CommentRow struct {
	ID            int64
	PageID        string
	AuthorID      int64
	Content       string
	ParentID      int64
	IsEdited      bool
	EditedAt      *time.Time
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AuthorName    string
	AuthorEmail   string
	LikesCount    int64
	DislikesCount int64
}

func (r *CommentRow) ToDomain() domain.Comment {
	return domain.Comment{
		ID:            r.ID,
		PageID:        r.PageID,
		Content:       r.Content,
		ParentID:      r.ParentID,
		LikesCount:    r.LikesCount,
		DislikesCount: r.DislikesCount,
		IsEdited:      r.IsEdited,
		EditedAt:      r.EditedAt,
		IsDeleted:     r.IsDeleted,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Author: domain.User{
			ID:    r.AuthorID,
			Name:  r.AuthorName,
			Email: r.AuthorEmail,
		},
	}
}
