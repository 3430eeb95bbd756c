package models

import "time"

// Like marks that a user has liked a post. The composite unique index is
// what makes the toggle idempotent under concurrent requests.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_like_user_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_like_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
