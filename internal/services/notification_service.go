package services

import (
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
)

// EnrichedNotification is a notification with its sender attached.
type EnrichedNotification struct {
	models.Notification
	Sender models.UserCompact `json:"sender"`
}

// NotificationService exposes the recipient-facing side of notifications.
// It never creates them; that is the Notifier's job.
type NotificationService struct {
	notifications repositories.NotificationRepository
	users         repositories.UserRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notifRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) *NotificationService {
	return &NotificationService{notifications: notifRepo, users: userRepo}
}

// List returns a page of the recipient's notifications, newest first,
// enriched with sender info.
func (s *NotificationService) List(recipientID uint, page, limit int, unreadOnly bool) ([]EnrichedNotification, int64, error) {
	notifications, total, err := s.notifications.GetByRecipientID(recipientID, page, limit, unreadOnly)
	if err != nil {
		return nil, 0, err
	}

	senderIDs := make([]uint, 0, len(notifications))
	seen := make(map[uint]bool)
	for _, n := range notifications {
		if !seen[n.SenderID] {
			seen[n.SenderID] = true
			senderIDs = append(senderIDs, n.SenderID)
		}
	}
	senders, err := s.users.GetUsersByIDs(senderIDs)
	if err != nil {
		return nil, 0, err
	}
	senderByID := make(map[uint]models.UserCompact, len(senders))
	for _, u := range senders {
		senderByID[u.ID] = u.ToCompact()
	}

	enriched := make([]EnrichedNotification, len(notifications))
	for i, n := range notifications {
		enriched[i] = EnrichedNotification{Notification: n, Sender: senderByID[n.SenderID]}
	}
	return enriched, total, nil
}

// UnreadCount returns the recipient's number of unread notifications.
func (s *NotificationService) UnreadCount(recipientID uint) (int64, error) {
	return s.notifications.GetUnreadCount(recipientID)
}

// MarkRead marks one of the recipient's unread notifications as read.
// A notification that is missing, already read, or owned by someone else
// reports ErrNotFound without mutating anything.
func (s *NotificationService) MarkRead(recipientID, notificationID uint) error {
	ok, err := s.notifications.MarkAsRead(recipientID, notificationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the recipient as read and
// returns how many were affected.
func (s *NotificationService) MarkAllRead(recipientID uint) (int64, error) {
	return s.notifications.MarkAllAsRead(recipientID)
}

// Delete removes one of the recipient's notifications; a foreign or
// missing notification reports ErrNotFound.
func (s *NotificationService) Delete(recipientID, notificationID uint) error {
	ok, err := s.notifications.Delete(recipientID, notificationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// ClearAll deletes all of the recipient's notifications and returns the
// count removed.
func (s *NotificationService) ClearAll(recipientID uint) (int64, error) {
	return s.notifications.ClearAll(recipientID)
}
