package repository

import (
	"ripple/internal/models"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Add(userID, postID uint) error {
	return r.db.Create(&models.PostBookmark{UserID: userID, PostID: postID}).Error
}

func (r *BookmarkRepository) Remove(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.PostBookmark{}).Error
}

func (r *BookmarkRepository) Exists(userID, postID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.PostBookmark{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&c).Error
	return c > 0, err
}

func (r *BookmarkRepository) CountByPosts(postIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []postCount
	err := r.db.Model(&models.PostBookmark{}).
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

func (r *BookmarkRepository) MemberPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	out := make(map[uint]bool, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return out, nil
	}
	var ids []uint
	err := r.db.Model(&models.PostBookmark{}).
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
