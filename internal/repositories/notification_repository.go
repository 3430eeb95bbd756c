package repositories

import (
	"github.com/tastebook/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations.
// Every read and mutation is scoped to the recipient: operations on rows
// the recipient does not own affect nothing and report zero rows.
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetByRecipientID(recipientID uint, page, limit int, unreadOnly bool) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(recipientID, notificationID uint) (bool, error)
	MarkAllAsRead(recipientID uint) (int64, error)
	Delete(recipientID, notificationID uint) (bool, error)
	ClearAll(recipientID uint) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a NotificationRepository backed
// by PostgreSQL
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint, page, limit int, unreadOnly bool) ([]models.Notification, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID)
		if unreadOnly {
			q = q.Where("is_read = ?", false)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	offset := (page - 1) * limit
	err := scope().
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead flips the read flag only when the notification belongs to the
// recipient and is still unread. Ownership is part of the predicate, not a
// separate check, so a foreign id never mutates anything.
func (r *postgresNotificationRepository) MarkAsRead(recipientID, notificationID uint) (bool, error) {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ? AND is_read = ?", notificationID, recipientID, false).
		Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *postgresNotificationRepository) Delete(recipientID, notificationID uint) (bool, error) {
	res := r.db.Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Delete(&models.Notification{})
	return res.RowsAffected > 0, res.Error
}

func (r *postgresNotificationRepository) ClearAll(recipientID uint) (int64, error) {
	res := r.db.Where("recipient_id = ?", recipientID).Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}
