package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tastebook/backend/internal/services"
)

// FavoriteHandler handles HTTP requests related to favorites
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// RegisterFavoriteRoutes registers favorite-related routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/posts/:id/favorite", h.FavoritePost)
	g.DELETE("/posts/:id/favorite", h.UnfavoritePost)
	g.GET("/users/me/favorites", h.ListFavorites)
}

// FavoritePost handles favoriting a post
func (h *FavoriteHandler) FavoritePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.favoriteService.FavoritePost(currentUserID, postID); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UnfavoritePost handles unfavoriting a post
func (h *FavoriteHandler) UnfavoritePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.favoriteService.UnfavoritePost(currentUserID, postID); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListFavorites returns the current user's favorited posts
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, limit := parsePagination(c)
	posts, total, err := h.favoriteService.ListUserFavorites(currentUserID, page, limit)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"totalCount": total,
	})
}
