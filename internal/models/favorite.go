package models

import "time"

// Favorite represents a bookmarked post by a user
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_favorite_user_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_favorite_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
