package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pagetalk/comment-api/domain"
	"github.com/pagetalk/comment-api/internal/rest/request"
	"github.com/pagetalk/comment-api/internal/rest/response"
)

// CommentHandler represents the http handler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func commentID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

func authedUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.Err("User not authenticated"))
		return 0, false
	}
	return userID.(int64), true
}

// Create will store a comment, either top-level or a one-level reply
func (h *CommentHandler) Create(c *gin.Context) {
	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Create(ctx, req.ToInput(uid))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OKWithMessage("Comment created successfully", response.NewCommentFromDomain(comment)))
}

// Fetch lists one page of comments under (pageId, parentCommentId)
func (h *CommentHandler) Fetch(c *gin.Context) {
	var req request.ListComments
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	sort, err := domain.ParseSortOption(req.Sort)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	comments, pagination, err := h.Service.Fetch(ctx, domain.ListCommentsQuery{
		PageID:   req.PageID,
		ParentID: req.ParentID,
		Sort:     sort,
		Page:     domain.PageRequest{Page: req.Page, Limit: req.Limit},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(response.NewCommentListFromDomain(comments), pagination))
}

// GetByID will get a single comment by given id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, err := commentID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.NewCommentFromDomain(comment)))
}

// Update edits a comment's content; only the author may do this
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := commentID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Update(ctx, id, req.Content, uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OKWithMessage("Comment updated successfully", response.NewCommentFromDomain(comment)))
}

// Delete soft-deletes a comment; only the author may do this
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := commentID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, id, uid); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Envelope{Success: true, Message: "Comment deleted successfully"})
}

// Like toggles the caller's like on a comment
func (h *CommentHandler) Like(c *gin.Context) {
	h.toggle(c, h.Service.ToggleLike)
}

// Dislike toggles the caller's dislike on a comment
func (h *CommentHandler) Dislike(c *gin.Context) {
	h.toggle(c, h.Service.ToggleDislike)
}

func (h *CommentHandler) toggle(c *gin.Context, op func(ctx context.Context, id, userID int64) (domain.ToggleResult, error)) {
	id, err := commentID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	uid, ok := authedUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res, err := op(ctx, id, uid)
	if err != nil {
		respondError(c, err)
		return
	}

	message := fmt.Sprintf("Comment %s successfully", res.Action)
	c.JSON(http.StatusOK, response.OKWithMessage(message, response.NewCommentFromDomain(res.Comment)))
}

// FetchReplies lists one page of direct children of a comment
func (h *CommentHandler) FetchReplies(c *gin.Context) {
	id, err := commentID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req request.ListReplies
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	sort, err := domain.ParseSortOption(req.Sort)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	replies, pagination, err := h.Service.FetchReplies(ctx, id, sort, domain.PageRequest{Page: req.Page, Limit: req.Limit})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(response.NewCommentListFromDomain(replies), pagination))
}
