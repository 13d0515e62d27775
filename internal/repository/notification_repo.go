package repository

import (
	"ripple/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var n models.Notification
	err := r.db.First(&n, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByRecipient returns all notifications for the user, newest first,
// with senders preloaded for serialization.
func (r *NotificationRepository) ListByRecipient(userID uint) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Preload("Sender").Where("recipient_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = ?", userID, false).Count(&c).Error
	return c, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}
