package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/pagetalk/comment-api/domain"
	"github.com/pagetalk/comment-api/internal/repository/mysql/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commentSelect pulls the comment columns, the joined author identity
// (name/email only) and both reaction counts in a single query, so listings
// never need a count-per-row pass.
const commentSelect = "comments.*, users.name AS author_name, users.email AS author_email, " +
	"(SELECT COUNT(*) FROM comment_reactions cr WHERE cr.comment_id = comments.id AND cr.kind = 'like') AS likes_count, " +
	"(SELECT COUNT(*) FROM comment_reactions cr WHERE cr.comment_id = comments.id AND cr.kind = 'dislike') AS dislikes_count"

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

// orderClause maps the sort policy to SQL. Reaction sorts break ties by
// newer created_at first.
func orderClause(sort domain.SortOption) string {
	switch sort {
	case domain.SortOldest:
		return "comments.created_at ASC"
	case domain.SortMostLiked:
		return "likes_count DESC, comments.created_at DESC"
	case domain.SortMostDisliked:
		return "dislikes_count DESC, comments.created_at DESC"
	default:
		return "comments.created_at DESC"
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var row model.CommentRow
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select(commentSelect).
		Joins("LEFT JOIN users ON users.id = comments.author_id").
		Where("comments.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	res := row.ToDomain()
	if res.ParentID != 0 {
		var parent model.Comment
		err = c.DB.WithContext(ctx).
			Select("id", "content", "author_id").
			Take(&parent, "id = ?", res.ParentID).Error
		if err == nil {
			res.Parent = &domain.ParentSummary{
				ID:       parent.ID,
				Content:  parent.Content,
				AuthorID: parent.AuthorID,
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return &res, nil
}

func (c *commentRepository) FetchByPage(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, error) {
	var rows []model.CommentRow
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select(commentSelect).
		Joins("LEFT JOIN users ON users.id = comments.author_id").
		Where("comments.page_id = ? AND comments.parent_id = ? AND comments.is_deleted = ?", f.PageID, f.ParentID, false).
		Order(orderClause(f.Sort)).
		Offset(f.Offset).
		Limit(f.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) CountByPage(ctx context.Context, pageID string, parentID int64) (int64, error) {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("page_id = ? AND parent_id = ? AND is_deleted = ?", pageID, parentID, false).
		Count(&count).Error
	return count, err
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentID int64, sort domain.SortOption, offset, limit int) ([]domain.Comment, error) {
	var rows []model.CommentRow
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select(commentSelect).
		Joins("LEFT JOIN users ON users.id = comments.author_id").
		Where("comments.parent_id = ? AND comments.is_deleted = ?", parentID, false).
		Order(orderClause(sort)).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("parent_id = ? AND is_deleted = ?", parentID, false).
		Count(&count).Error
	return count, err
}

func (c *commentRepository) UpdateContent(ctx context.Context, id int64, content string, editedAt time.Time) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":   content,
			"is_edited": true,
			"edited_at": editedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) SoftDelete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) GetReaction(ctx context.Context, commentID, userID int64) (domain.ReactionKind, error) {
	var reaction model.CommentReaction
	err := c.DB.WithContext(ctx).
		Take(&reaction, "comment_id = ? AND user_id = ?", commentID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReactionNone, nil
		}
		return domain.ReactionNone, err
	}
	return domain.ReactionKind(reaction.Kind), nil
}

// SetReaction is a single INSERT ... ON DUPLICATE KEY UPDATE: the composite
// primary key turns a kind switch into an in-place update, so the opposite
// membership disappears in the same atomic statement.
func (c *commentRepository) SetReaction(ctx context.Context, commentID, userID int64, kind domain.ReactionKind) error {
	reaction := model.CommentReaction{
		CommentID: commentID,
		UserID:    userID,
		Kind:      string(kind),
	}
	return c.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "comment_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"kind": string(kind)}),
		}).
		Create(&reaction).Error
}

func (c *commentRepository) ClearReaction(ctx context.Context, commentID, userID int64, kind domain.ReactionKind) error {
	return c.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ? AND kind = ?", commentID, userID, string(kind)).
		Delete(&model.CommentReaction{}).Error
}
