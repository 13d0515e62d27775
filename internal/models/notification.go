package models

import "time"

type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	SenderID    uint      `gorm:"not null;index" json:"sender_id"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	Message     string    `gorm:"size:255" json:"message"`
	PostID      *uint     `gorm:"index" json:"post_id"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	Recipient User  `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
	Sender    User  `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Post      *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
