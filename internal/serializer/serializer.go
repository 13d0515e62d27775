// Package serializer shapes domain models into API response bodies.
// Builders are pure: callers supply any viewer-relative data (counts,
// membership sets) so rendering stays testable without a database.
package serializer

import (
	"strings"
	"time"

	"ripple/config"
	"ripple/internal/models"
)

// postTimeLayout renders post timestamps as "28/08/26 - 14:05".
const postTimeLayout = "02/01/06 - 15:04"

// AvatarURL resolves a stored avatar reference to an absolute URL,
// falling back to the shared default image when unset.
func AvatarURL(media *config.MediaConfig, raw string) string {
	if raw == "" {
		return media.BaseURL + media.DefaultAvatar
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return media.BaseURL + raw
}

// ProfileView is the profile summary used by /users/me, follower and
// following listings, and random profiles.
type ProfileView struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	PostsCount     int64  `json:"posts_count"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	Avatar         string `json:"avatar"`
}

func Profile(u *models.User, postsCount, followersCount, followingCount int64, media *config.MediaConfig) ProfileView {
	return ProfileView{
		ID:             u.ID,
		Name:           u.FullName(),
		Username:       u.Username,
		Email:          u.Email,
		PostsCount:     postsCount,
		FollowersCount: followersCount,
		FollowingCount: followingCount,
		Avatar:         AvatarURL(media, u.AvatarURL),
	}
}

// PublicProfileView is the by-username profile page payload.
type PublicProfileView struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Avatar         string `json:"avatar"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	IsMe           bool   `json:"is_me"`
	IsFollowing    bool   `json:"is_following"`
}

func PublicProfile(u *models.User, followersCount, followingCount int64, isMe, isFollowing bool, media *config.MediaConfig) PublicProfileView {
	return PublicProfileView{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Avatar:         AvatarURL(media, u.AvatarURL),
		FollowersCount: followersCount,
		FollowingCount: followingCount,
		IsMe:           isMe,
		IsFollowing:    isFollowing,
	}
}

// RepostView is the nested summary of the original post inside a repost.
type RepostView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostView is the uniform post payload. Likes and Bookmark are counts,
// the is_* flags are relative to the viewer (all false when anonymous).
type PostView struct {
	ID           uint        `json:"id"`
	User         uint        `json:"user"`
	Name         string      `json:"name"`
	Username     string      `json:"username"`
	UserAvatar   string      `json:"user_avatar"`
	Content      string      `json:"content"`
	CreatedAt    string      `json:"created_at"`
	Likes        int64       `json:"likes"`
	Bookmark     int64       `json:"bookmark"`
	Repost       *RepostView `json:"repost"`
	IsLiked      bool        `json:"is_liked"`
	IsBookmarked bool        `json:"is_bookmarked"`
	IsReposted   bool        `json:"is_reposted"`
}

// PostContext carries the viewer-relative batch data post rendering needs.
type PostContext struct {
	LikeCounts     map[uint]int64
	BookmarkCounts map[uint]int64
	Liked          map[uint]bool
	Bookmarked     map[uint]bool
	Reposted       map[uint]bool
}

func Post(p *models.Post, ctx *PostContext, media *config.MediaConfig) PostView {
	view := PostView{
		ID:           p.ID,
		User:         p.UserID,
		Name:         p.User.FullName(),
		Username:     p.User.Username,
		UserAvatar:   AvatarURL(media, p.User.AvatarURL),
		Content:      p.Content,
		CreatedAt:    p.CreatedAt.Format(postTimeLayout),
		Likes:        ctx.LikeCounts[p.ID],
		Bookmark:     ctx.BookmarkCounts[p.ID],
		IsLiked:      ctx.Liked[p.ID],
		IsBookmarked: ctx.Bookmarked[p.ID],
		IsReposted:   ctx.Reposted[p.ID],
	}
	if p.Repost != nil {
		view.Repost = &RepostView{
			ID:        p.Repost.ID,
			Username:  p.Repost.User.Username,
			Content:   p.Repost.Content,
			CreatedAt: p.Repost.CreatedAt,
		}
	}
	return view
}

func Posts(posts []models.Post, ctx *PostContext, media *config.MediaConfig) []PostView {
	out := make([]PostView, len(posts))
	for i := range posts {
		out[i] = Post(&posts[i], ctx, media)
	}
	return out
}

// NotificationSenderView exposes only the sender's username.
type NotificationSenderView struct {
	Username string `json:"username"`
}

type NotificationView struct {
	ID        uint                   `json:"id"`
	Recipient uint                   `json:"recipient"`
	Sender    NotificationSenderView `json:"sender"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	Post      *uint                  `json:"post"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

func Notification(n *models.Notification) NotificationView {
	return NotificationView{
		ID:        n.ID,
		Recipient: n.RecipientID,
		Sender:    NotificationSenderView{Username: n.Sender.Username},
		Message:   n.Message,
		Type:      n.Type,
		Post:      n.PostID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func Notifications(list []models.Notification) []NotificationView {
	out := make([]NotificationView, len(list))
	for i := range list {
		out[i] = Notification(&list[i])
	}
	return out
}
