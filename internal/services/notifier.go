package services

import (
	"log"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
	"github.com/tastebook/backend/pkg/metrics"
)

// Notifier is the fan-out component. It runs after the triggering
// mutation's transaction has committed and is strictly best-effort: a
// failed insert is logged and counted, never propagated, so the primary
// action cannot be undone by a notification problem.
type Notifier struct {
	notifications repositories.NotificationRepository
}

// NewNotifier creates a new Notifier
func NewNotifier(notifRepo repositories.NotificationRepository) *Notifier {
	return &Notifier{notifications: notifRepo}
}

// Notify creates a single notification for the recipient.
func (n *Notifier) Notify(recipientID, senderID uint, notifType string, postID, commentID *uint) {
	notification := &models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notifType,
		PostID:      postID,
		CommentID:   commentID,
	}
	if err := n.notifications.CreateNotification(notification); err != nil {
		metrics.FanoutFailures.WithLabelValues(notifType).Inc()
		log.Printf("Failed to create %s notification for user %d: %v", notifType, recipientID, err)
		return
	}
	metrics.NotificationsCreated.WithLabelValues(notifType).Inc()
}
