package repository

import (
	"ripple/internal/models"

	"gorm.io/gorm"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Add(followerID, followeeID uint) error {
	return r.db.Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error
}

func (r *FollowRepository) Remove(followerID, followeeID uint) error {
	return r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Delete(&models.Follow{}).Error
}

func (r *FollowRepository) Exists(followerID, followeeID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Count(&c).Error
	return c > 0, err
}

// ListFollowers returns the users following userID.
func (r *FollowRepository) ListFollowers(userID uint) ([]models.User, error) {
	var list []models.User
	err := r.db.Model(&models.User{}).
		Select("users.*").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Find(&list).Error
	return list, err
}

// ListFollowing returns the users userID follows.
func (r *FollowRepository) ListFollowing(userID uint) ([]models.User, error) {
	var list []models.User
	err := r.db.Model(&models.User{}).
		Select("users.*").
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&list).Error
	return list, err
}

// FolloweeIDs returns the IDs of everyone userID follows (for feed assembly).
func (r *FollowRepository) FolloweeIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followee_id", &ids).Error
	return ids, err
}

func (r *FollowRepository) CountFollowers(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&c).Error
	return c, err
}

func (r *FollowRepository) CountFollowing(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&c).Error
	return c, err
}
