package models

import "time"

// Notification event types
const (
	NotificationTypeLike     = "LIKE"
	NotificationTypeComment  = "COMMENT"
	NotificationTypeReply    = "REPLY"
	NotificationTypeFavorite = "FAVORITE"
	NotificationTypeFollow   = "FOLLOW"
)

// Notification is a record fanned out to a recipient when someone interacts
// with their content. It is owned strictly by RecipientID: only the
// recipient may read, mark or delete it. PostID/CommentID are loose
// references; the content they point at may have been deleted since.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	SenderID    uint      `json:"sender_id" gorm:"index"`
	Type        string    `json:"type" gorm:"size:20;index"`
	PostID      *uint     `json:"post_id,omitempty"`
	CommentID   *uint     `json:"comment_id,omitempty"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
