package models

import "time"

// Post represents a food post. The three counters are denormalized
// aggregates; they are only ever written inside the interaction engine's
// transactions, together with the row change that justifies them.
type Post struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	AuthorID       uint      `json:"author_id" gorm:"index"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	LikesCount     int       `json:"likes_count" gorm:"default:0"`
	CommentsCount  int       `json:"comments_count" gorm:"default:0"`
	FavoritesCount int       `json:"favorites_count" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required,min=1,max=5000"`
}
