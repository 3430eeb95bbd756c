package models

import "time"

// Comment represents a comment on a post. Comments form a forest per post:
// ParentID is nil for root comments and must reference a comment on the
// same post otherwise.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	ParentID  *uint     `json:"parent_id" gorm:"index"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=500"`
	ParentID *uint  `json:"parentId,omitempty"`
}
