package models

import "time"

// Post is a publication or, when RepostID is set, a share of another
// post. Reposts are first-class rows so they can be reposted again,
// forming a chain. Rows are hard-deleted: removing a repost via the
// toggle must actually free the (user, repost) pair, and deleting an
// original cascades to its dependent reposts.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"size:280" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	RepostID  *uint     `gorm:"index" json:"repost_id"`

	User   User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Repost *Post `gorm:"foreignKey:RepostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// IsRepost reports whether this row represents a share of another post.
func (p *Post) IsRepost() bool {
	return p.RepostID != nil
}
