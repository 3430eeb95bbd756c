package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/services"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers mutating post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// RegisterPublicPostRoutes registers post read routes. They go through the
// optional auth middleware so the viewer decoration kicks in when a token
// is supplied.
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:id", h.GetPost)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.CreatePost(currentUserID, req.Title, req.Content)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost returns a single post decorated for the current viewer
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postService.GetPost(postID, getUserIDFromContext(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// ListPosts returns a page of posts decorated for the current viewer
func (h *PostHandler) ListPosts(c echo.Context) error {
	page, limit := parsePagination(c)

	posts, total, err := h.postService.ListPosts(page, limit, getUserIDFromContext(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"totalCount": total,
	})
}

// DeletePost deletes the current user's own post
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(currentUserID, postID); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
