package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pagetalk/comment-api/domain"
	"golang.org/x/sync/errgroup"
)

type service struct {
	commentRepo domain.CommentRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository) *service {
	return &service{
		commentRepo: commentRepo,
	}
}

func (s *service) Create(ctx context.Context, in domain.CreateCommentInput) (*domain.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", domain.ErrBadParamInput)
	}

	if in.ParentID != 0 {
		parent, err := s.commentRepo.GetByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.IsDeleted {
			return nil, fmt.Errorf("%w: cannot reply to a deleted comment", domain.ErrBadParamInput)
		}
	}

	comment := &domain.Comment{
		PageID:   in.PageID,
		Content:  content,
		ParentID: in.ParentID,
		Author:   domain.User{ID: in.AuthorID},
	}
	if err := s.commentRepo.Store(ctx, comment); err != nil {
		return nil, err
	}

	// Re-read so the caller gets the author identity resolved.
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// Fetch runs the page query and the total count in parallel; both hit the
// same filter so the metadata matches the rows.
func (s *service) Fetch(ctx context.Context, q domain.ListCommentsQuery) ([]domain.Comment, domain.Pagination, error) {
	page := q.Page.Normalize()
	filter := domain.CommentFilter{
		PageID:   q.PageID,
		ParentID: q.ParentID,
		Sort:     q.Sort,
		Offset:   page.Offset(),
		Limit:    page.Limit,
	}

	var (
		comments []domain.Comment
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		comments, err = s.commentRepo.FetchByPage(gctx, filter)
		return
	})
	g.Go(func() (err error) {
		total, err = s.commentRepo.CountByPage(gctx, q.PageID, q.ParentID)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, domain.Pagination{}, err
	}

	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, domain.NewPagination(page, total), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return comment, nil
}

func (s *service) Update(ctx context.Context, id int64, content string, userID int64) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", domain.ErrBadParamInput)
	}

	comment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Author.ID != userID {
		return nil, fmt.Errorf("%w: you can only edit your own comments", domain.ErrForbidden)
	}

	if err := s.commentRepo.UpdateContent(ctx, id, content, time.Now()); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64, userID int64) error {
	comment, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.Author.ID != userID {
		return fmt.Errorf("%w: you can only delete your own comments", domain.ErrForbidden)
	}

	// Soft delete only. Children stay in storage and remain fetchable by id.
	return s.commentRepo.SoftDelete(ctx, id)
}

func (s *service) ToggleLike(ctx context.Context, id int64, userID int64) (domain.ToggleResult, error) {
	return s.toggle(ctx, id, userID, domain.ReactionLike, domain.ActionLiked, domain.ActionUnliked)
}

func (s *service) ToggleDislike(ctx context.Context, id int64, userID int64) (domain.ToggleResult, error) {
	return s.toggle(ctx, id, userID, domain.ReactionDislike, domain.ActionDisliked, domain.ActionUndisliked)
}

func (s *service) toggle(ctx context.Context, id, userID int64, kind domain.ReactionKind, added, removed domain.ReactionAction) (domain.ToggleResult, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return domain.ToggleResult{}, err
	}

	current, err := s.commentRepo.GetReaction(ctx, id, userID)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	var action domain.ReactionAction
	if current == kind {
		if err := s.commentRepo.ClearReaction(ctx, id, userID, kind); err != nil {
			return domain.ToggleResult{}, err
		}
		action = removed
	} else {
		// Upsert: switching kinds replaces the opposite membership in the
		// same atomic statement.
		if err := s.commentRepo.SetReaction(ctx, id, userID, kind); err != nil {
			return domain.ToggleResult{}, err
		}
		action = added
	}

	updated, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.ToggleResult{}, err
	}
	return domain.ToggleResult{Comment: updated, Action: action}, nil
}

func (s *service) FetchReplies(ctx context.Context, parentID int64, sort domain.SortOption, page domain.PageRequest) ([]domain.Comment, domain.Pagination, error) {
	if _, err := s.GetByID(ctx, parentID); err != nil {
		return nil, domain.Pagination{}, err
	}

	page = page.Normalize()

	var (
		replies []domain.Comment
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		replies, err = s.commentRepo.FetchReplies(gctx, parentID, sort, page.Offset(), page.Limit)
		return
	})
	g.Go(func() (err error) {
		total, err = s.commentRepo.CountReplies(gctx, parentID)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, domain.Pagination{}, err
	}

	if replies == nil {
		replies = []domain.Comment{}
	}
	return replies, domain.NewPagination(page, total), nil
}
