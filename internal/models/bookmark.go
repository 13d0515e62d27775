package models

import "time"

type PostBookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_post_bookmarks_user_post,unique" json:"user_id"`
	PostID    uint      `gorm:"not null;index:idx_post_bookmarks_user_post,unique" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PostBookmark) TableName() string {
	return "post_bookmarks"
}
