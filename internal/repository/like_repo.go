package repository

import (
	"ripple/internal/models"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Add(userID, postID uint) error {
	return r.db.Create(&models.PostLike{UserID: userID, PostID: postID}).Error
}

func (r *LikeRepository) Remove(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.PostLike{}).Error
}

func (r *LikeRepository) Exists(userID, postID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.PostLike{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&c).Error
	return c > 0, err
}

type postCount struct {
	PostID uint
	N      int64
}

// CountByPosts returns like counts keyed by post ID for a batch of posts.
func (r *LikeRepository) CountByPosts(postIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []postCount
	err := r.db.Model(&models.PostLike{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = row.N
	}
	return out, nil
}

// MemberPostIDs returns which of postIDs the user has liked.
func (r *LikeRepository) MemberPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	out := make(map[uint]bool, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return out, nil
	}
	var ids []uint
	err := r.db.Model(&models.PostLike{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
