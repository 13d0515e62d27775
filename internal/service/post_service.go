package service

import (
	"errors"
	"unicode/utf8"

	"ripple/config"
	"ripple/internal/domain"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/serializer"

	"gorm.io/gorm"
)

type PostService struct {
	posts     *repository.PostRepository
	likes     *repository.LikeRepository
	bookmarks *repository.BookmarkRepository
	follows   *repository.FollowRepository
	users     *repository.UserRepository
	notifier  domain.NotificationSink
	media     *config.MediaConfig
}

func NewPostService(
	posts *repository.PostRepository,
	likes *repository.LikeRepository,
	bookmarks *repository.BookmarkRepository,
	follows *repository.FollowRepository,
	users *repository.UserRepository,
	notifier domain.NotificationSink,
	media *config.MediaConfig,
) *PostService {
	return &PostService{
		posts:     posts,
		likes:     likes,
		bookmarks: bookmarks,
		follows:   follows,
		users:     users,
		notifier:  notifier,
		media:     media,
	}
}

// Create stores a post owned by the authenticated user. Ownership is
// server-assigned; any client-supplied owner is ignored upstream.
func (s *PostService) Create(userID uint, content string) (serializer.PostView, error) {
	if utf8.RuneCountInString(content) > domain.MaxPostContentLen {
		return serializer.PostView{}, domain.NewValidationError().Add("content", "ensure this field has no more than 280 characters")
	}
	p := &models.Post{UserID: userID, Content: content}
	if err := s.posts.Create(p); err != nil {
		return serializer.PostView{}, err
	}
	stored, err := s.posts.GetByID(p.ID)
	if err != nil {
		return serializer.PostView{}, err
	}
	views, err := s.render([]models.Post{*stored}, userID)
	if err != nil {
		return serializer.PostView{}, err
	}
	return views[0], nil
}

// List returns all posts newest first.
func (s *PostService) List(viewerID uint, limit, offset int) ([]serializer.PostView, int64, error) {
	posts, total, err := s.posts.List(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.render(posts, viewerID)
	return views, total, err
}

// Feed returns posts by the viewer and everyone they follow, newest first.
func (s *PostService) Feed(viewerID uint, limit, offset int) ([]serializer.PostView, int64, error) {
	followees, err := s.follows.FolloweeIDs(viewerID)
	if err != nil {
		return nil, 0, err
	}
	authorIDs := append(followees, viewerID)
	posts, total, err := s.posts.ListByUserIDs(authorIDs, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.render(posts, viewerID)
	return views, total, err
}

func (s *PostService) ByUser(username string, viewerID uint, limit, offset int) ([]serializer.PostView, int64, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, err
	}
	posts, total, err := s.posts.ListByUser(u.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.render(posts, viewerID)
	return views, total, err
}

func (s *PostService) Bookmarked(viewerID uint, limit, offset int) ([]serializer.PostView, int64, error) {
	posts, total, err := s.posts.ListBookmarked(viewerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.render(posts, viewerID)
	return views, total, err
}

// MostLiked returns the top posts by like count.
func (s *PostService) MostLiked(viewerID uint, n int) ([]serializer.PostView, error) {
	posts, err := s.posts.MostLiked(n)
	if err != nil {
		return nil, err
	}
	return s.render(posts, viewerID)
}

// ToggleLike flips the viewer's membership in the post's like set.
// Returns true when the like was added.
func (s *PostService) ToggleLike(viewerID, postID uint) (bool, error) {
	p, err := s.getPost(postID)
	if err != nil {
		return false, err
	}
	liked, err := s.likes.Exists(viewerID, p.ID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.likes.Remove(viewerID, p.ID)
	}
	if err := s.likes.Add(viewerID, p.ID); err != nil {
		return false, err
	}
	s.notify(p, viewerID, domain.NotifLike, " liked your post")
	return true, nil
}

// ToggleBookmark flips the viewer's membership in the post's bookmark set.
func (s *PostService) ToggleBookmark(viewerID, postID uint) (bool, error) {
	p, err := s.getPost(postID)
	if err != nil {
		return false, err
	}
	saved, err := s.bookmarks.Exists(viewerID, p.ID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.bookmarks.Remove(viewerID, p.ID)
	}
	if err := s.bookmarks.Add(viewerID, p.ID); err != nil {
		return false, err
	}
	s.notify(p, viewerID, domain.NotifBookmark, " saved your post")
	return true, nil
}

// ToggleRepost creates or removes the viewer's repost of the target.
// Unlike like/bookmark this writes a first-class Post row carrying only
// the self-reference, so repost chains stay possible.
func (s *PostService) ToggleRepost(viewerID, postID uint) (bool, error) {
	p, err := s.getPost(postID)
	if err != nil {
		return false, err
	}
	existing, err := s.posts.FindRepostBy(viewerID, p.ID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.posts.Delete(existing.ID)
	}
	target := p.ID
	if err := s.posts.Create(&models.Post{UserID: viewerID, RepostID: &target}); err != nil {
		return false, err
	}
	s.notify(p, viewerID, domain.NotifRepost, " reposted your post")
	return true, nil
}

func (s *PostService) getPost(postID uint) (*models.Post, error) {
	p, err := s.posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// notify dispatches a post-related notification to the post owner. The
// sink suppresses self-actions and swallows failures.
func (s *PostService) notify(p *models.Post, senderID uint, notifType, suffix string) {
	sender, err := s.users.GetByID(senderID)
	if err != nil {
		return
	}
	postID := p.ID
	s.notifier.Create(p.UserID, sender.ID, notifType, sender.Username+suffix, &postID)
}

// render builds viewer-relative post views with batched count and
// membership queries.
func (s *PostService) render(posts []models.Post, viewerID uint) ([]serializer.PostView, error) {
	ids := make([]uint, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	likeCounts, err := s.likes.CountByPosts(ids)
	if err != nil {
		return nil, err
	}
	bookmarkCounts, err := s.bookmarks.CountByPosts(ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.MemberPostIDs(viewerID, ids)
	if err != nil {
		return nil, err
	}
	bookmarked, err := s.bookmarks.MemberPostIDs(viewerID, ids)
	if err != nil {
		return nil, err
	}
	reposted, err := s.posts.RepostedTargetIDs(viewerID, ids)
	if err != nil {
		return nil, err
	}
	ctx := &serializer.PostContext{
		LikeCounts:     likeCounts,
		BookmarkCounts: bookmarkCounts,
		Liked:          liked,
		Bookmarked:     bookmarked,
		Reposted:       reposted,
	}
	return serializer.Posts(posts, ctx, s.media), nil
}
