package models

import "time"

// Follow is a directed edge: follower follows followee. The composite
// unique index makes a concurrent duplicate add a constraint error
// instead of a double row.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index:idx_follows_follower_followee,unique" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;index:idx_follows_follower_followee,unique" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}
