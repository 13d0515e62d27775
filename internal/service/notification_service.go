package service

import (
	"errors"

	"ripple/internal/domain"
	"ripple/internal/logging"
	"ripple/internal/models"
	"ripple/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NotificationService stores and serves notifications. It implements
// domain.NotificationSink for the user and post services.
type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Create records a notification. Self-actions produce no row. Failures
// are logged and swallowed: a broken notification must never fail the
// like/follow/repost that triggered it.
func (s *NotificationService) Create(recipientID, senderID uint, notifType, message string, postID *uint) {
	if recipientID == senderID {
		return
	}
	err := s.repo.Create(&models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notifType,
		Message:     message,
		PostID:      postID,
	})
	if err != nil {
		logging.L().Error("notification create failed",
			zap.Uint("recipient_id", recipientID),
			zap.Uint("sender_id", senderID),
			zap.String("type", notifType),
			zap.Error(err),
		)
	}
}

func (s *NotificationService) ListMine(userID uint) ([]models.Notification, error) {
	return s.repo.ListByRecipient(userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.repo.CountUnread(userID)
}

// MarkRead sets is_read on the notification; only its recipient may.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	n, err := s.repo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if n.RecipientID != userID {
		return domain.ErrForbidden
	}
	return s.repo.MarkRead(n.ID)
}

var _ domain.NotificationSink = (*NotificationService)(nil)
