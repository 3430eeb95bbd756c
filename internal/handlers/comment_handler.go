package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterCommentRoutes registers comment-related routes on the protected
// group; RegisterPublicCommentRoutes registers the read path.
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// RegisterPublicCommentRoutes registers comment read routes
func (h *CommentHandler) RegisterPublicCommentRoutes(g *echo.Group) {
	g.GET("/posts/:id/comments", h.ListComments)
}

// CreateComment creates a new comment or reply on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.CreateComment(currentUserID, postID, req.Text, req.ParentID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListComments returns a page of a post's comments with author info and
// reply counts
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	page, limit := parsePagination(c)
	comments, total, err := h.commentService.ListComments(postID, page, limit)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comments":   comments,
		"totalCount": total,
	})
}

// DeleteComment deletes the current user's own comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentService.DeleteComment(currentUserID, commentID); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
