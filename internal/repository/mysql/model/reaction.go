package model

import "time"

// CommentReaction holds one row per (comment, user) membership. The composite
// primary key is what keeps the like and dislike sets disjoint: a user can
// hold only one kind per comment, and switching kinds is a single upsert.
type CommentReaction struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey;autoIncrement:false"`
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Kind      string    `gorm:"size:10;not null"`
	CreatedAt time.Time
}

func (CommentReaction) TableName() string {
	return "comment_reactions"
}
