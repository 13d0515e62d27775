package repository

import (
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// withAuthors preloads everything post rendering needs: the author and,
// for reposts, the original post with its author.
func (r *PostRepository) withAuthors() *gorm.DB {
	return r.db.Preload("User").Preload("Repost").Preload("Repost.User")
}

func (r *PostRepository) Create(p *models.Post) error {
	return r.db.Create(p).Error
}

func (r *PostRepository) GetByID(id uint) (*models.Post, error) {
	var p models.Post
	err := r.withAuthors().First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts newest first along with the total count.
func (r *PostRepository) List(limit, offset int) ([]models.Post, int64, error) {
	var total int64
	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Post
	err := r.withAuthors().Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

// ListByUserIDs returns posts authored by any of userIDs, newest first.
// This is the feed query: caller passes the viewer plus their followees.
func (r *PostRepository) ListByUserIDs(userIDs []uint, limit, offset int) ([]models.Post, int64, error) {
	var total int64
	if err := r.db.Model(&models.Post{}).Where("user_id IN ?", userIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Post
	err := r.withAuthors().Where("user_id IN ?", userIDs).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

func (r *PostRepository) ListByUser(userID uint, limit, offset int) ([]models.Post, int64, error) {
	return r.ListByUserIDs([]uint{userID}, limit, offset)
}

// ListBookmarked returns posts the user bookmarked, most recently
// bookmarked first.
func (r *PostRepository) ListBookmarked(userID uint, limit, offset int) ([]models.Post, int64, error) {
	base := r.db.Model(&models.Post{}).
		Joins("JOIN post_bookmarks ON post_bookmarks.post_id = posts.id").
		Where("post_bookmarks.user_id = ?", userID)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Post
	err := r.withAuthors().
		Select("posts.*").
		Joins("JOIN post_bookmarks ON post_bookmarks.post_id = posts.id").
		Where("post_bookmarks.user_id = ?", userID).
		Order("post_bookmarks.created_at DESC").
		Limit(limit).Offset(offset).Find(&list).Error
	return list, total, err
}

func (r *PostRepository) CountByUser(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&c).Error
	return c, err
}

// MostLiked returns the top n posts by like count, descending, ties
// broken by id.
func (r *PostRepository) MostLiked(n int) ([]models.Post, error) {
	var list []models.Post
	err := r.withAuthors().
		Select("posts.*").
		Joins("LEFT JOIN post_likes ON post_likes.post_id = posts.id").
		Group("posts.id").
		Order("COUNT(post_likes.id) DESC, posts.id ASC").
		Limit(n).Find(&list).Error
	return list, err
}

// FindRepostBy returns the caller's repost row targeting targetID, or
// nil when none exists.
func (r *PostRepository) FindRepostBy(userID, targetID uint) (*models.Post, error) {
	var p models.Post
	err := r.db.Where("user_id = ? AND repost_id = ?", userID, targetID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RepostedTargetIDs returns which of postIDs the user has an active
// repost of (for is_reposted flags over a batch of posts).
func (r *PostRepository) RepostedTargetIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	out := make(map[uint]bool, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return out, nil
	}
	var ids []uint
	err := r.db.Model(&models.Post{}).
		Where("user_id = ? AND repost_id IN ?", userID, postIDs).
		Pluck("repost_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *PostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
