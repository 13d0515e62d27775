package serializer

import (
	"testing"
	"time"

	"ripple/config"
	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
)

var testMedia = &config.MediaConfig{
	BaseURL:       "http://testserver",
	DefaultAvatar: "/media/avatars/default1.png",
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "http://testserver/media/avatars/default1.png", AvatarURL(testMedia, ""))
	assert.Equal(t, "http://testserver/media/avatars/alice.png", AvatarURL(testMedia, "/media/avatars/alice.png"))
	assert.Equal(t, "https://res.cloudinary.com/demo/x.png", AvatarURL(testMedia, "https://res.cloudinary.com/demo/x.png"))
}

func TestProfileNameTrimming(t *testing.T) {
	u := &models.User{ID: 1, Username: "alice", FirstName: "Alice", LastName: ""}
	view := Profile(u, 3, 2, 1, testMedia)
	assert.Equal(t, "Alice", view.Name)
	assert.Equal(t, int64(3), view.PostsCount)
	assert.Equal(t, int64(2), view.FollowersCount)
	assert.Equal(t, int64(1), view.FollowingCount)

	u.LastName = "Smith"
	assert.Equal(t, "Alice Smith", Profile(u, 0, 0, 0, testMedia).Name)
}

func TestPostView(t *testing.T) {
	createdAt := time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC)
	p := &models.Post{
		ID:        7,
		UserID:    1,
		Content:   "hello world",
		CreatedAt: createdAt,
		User:      models.User{ID: 1, Username: "alice", FirstName: "Alice", LastName: "Smith"},
	}
	ctx := &PostContext{
		LikeCounts:     map[uint]int64{7: 2},
		BookmarkCounts: map[uint]int64{7: 1},
		Liked:          map[uint]bool{7: true},
		Bookmarked:     map[uint]bool{},
		Reposted:       map[uint]bool{},
	}
	view := Post(p, ctx, testMedia)
	assert.Equal(t, uint(7), view.ID)
	assert.Equal(t, "Alice Smith", view.Name)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, "28/08/26 - 14:05", view.CreatedAt)
	assert.Equal(t, int64(2), view.Likes)
	assert.Equal(t, int64(1), view.Bookmark)
	assert.True(t, view.IsLiked)
	assert.False(t, view.IsBookmarked)
	assert.False(t, view.IsReposted)
	assert.Nil(t, view.Repost)
}

func TestPostViewRepostSummary(t *testing.T) {
	originalAt := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	originalID := uint(3)
	p := &models.Post{
		ID:       8,
		UserID:   2,
		RepostID: &originalID,
		User:     models.User{ID: 2, Username: "bob"},
		Repost: &models.Post{
			ID:        3,
			Content:   "the original",
			CreatedAt: originalAt,
			User:      models.User{ID: 1, Username: "alice"},
		},
	}
	ctx := &PostContext{
		LikeCounts:     map[uint]int64{},
		BookmarkCounts: map[uint]int64{},
		Liked:          map[uint]bool{},
		Bookmarked:     map[uint]bool{},
		Reposted:       map[uint]bool{},
	}
	view := Post(p, ctx, testMedia)
	if assert.NotNil(t, view.Repost) {
		assert.Equal(t, uint(3), view.Repost.ID)
		assert.Equal(t, "alice", view.Repost.Username)
		assert.Equal(t, "the original", view.Repost.Content)
		assert.Equal(t, originalAt, view.Repost.CreatedAt)
	}
	assert.Empty(t, view.Content)
}

func TestNotificationView(t *testing.T) {
	postID := uint(5)
	n := &models.Notification{
		ID:          1,
		RecipientID: 2,
		SenderID:    3,
		Type:        "LIKE",
		Message:     "bob liked your post",
		PostID:      &postID,
		Sender:      models.User{ID: 3, Username: "bob"},
	}
	view := Notification(n)
	assert.Equal(t, "bob", view.Sender.Username)
	assert.Equal(t, uint(2), view.Recipient)
	assert.Equal(t, &postID, view.Post)
	assert.False(t, view.IsRead)
}
