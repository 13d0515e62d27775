package service

import (
	"errors"

	"ripple/config"
	"ripple/internal/domain"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/serializer"

	"gorm.io/gorm"
)

type UserService struct {
	users    *repository.UserRepository
	follows  *repository.FollowRepository
	posts    *repository.PostRepository
	notifier domain.NotificationSink
	media    *config.MediaConfig
}

func NewUserService(
	users *repository.UserRepository,
	follows *repository.FollowRepository,
	posts *repository.PostRepository,
	notifier domain.NotificationSink,
	media *config.MediaConfig,
) *UserService {
	return &UserService{users: users, follows: follows, posts: posts, notifier: notifier, media: media}
}

// Profile builds the summary view with live counts for a user row.
func (s *UserService) Profile(u *models.User) (serializer.ProfileView, error) {
	postsCount, err := s.posts.CountByUser(u.ID)
	if err != nil {
		return serializer.ProfileView{}, err
	}
	followers, err := s.follows.CountFollowers(u.ID)
	if err != nil {
		return serializer.ProfileView{}, err
	}
	following, err := s.follows.CountFollowing(u.ID)
	if err != nil {
		return serializer.ProfileView{}, err
	}
	return serializer.Profile(u, postsCount, followers, following, s.media), nil
}

func (s *UserService) Me(userID uint) (serializer.ProfileView, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return serializer.ProfileView{}, err
	}
	return s.Profile(u)
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Username  *string
	AvatarURL *string
}

// UpdateMe applies only the provided fields. A username change is
// validated for uniqueness.
func (s *UserService) UpdateMe(userID uint, in UpdateProfileInput) (serializer.ProfileView, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return serializer.ProfileView{}, err
	}
	if in.Username != nil && *in.Username != u.Username {
		existing, err := s.users.GetByUsername(*in.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return serializer.ProfileView{}, err
		}
		if existing != nil {
			return serializer.ProfileView{}, domain.NewValidationError().Add("username", "a user with that username already exists")
		}
		u.Username = *in.Username
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.AvatarURL != nil {
		u.AvatarURL = *in.AvatarURL
	}
	if err := s.users.Update(u); err != nil {
		return serializer.ProfileView{}, err
	}
	return s.Profile(u)
}

// PublicProfile returns the by-username profile page with viewer-relative
// is_me / is_following flags (both false for anonymous viewers).
func (s *UserService) PublicProfile(username string, viewerID uint) (serializer.PublicProfileView, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return serializer.PublicProfileView{}, domain.ErrNotFound
		}
		return serializer.PublicProfileView{}, err
	}
	followers, err := s.follows.CountFollowers(u.ID)
	if err != nil {
		return serializer.PublicProfileView{}, err
	}
	following, err := s.follows.CountFollowing(u.ID)
	if err != nil {
		return serializer.PublicProfileView{}, err
	}
	isFollowing := false
	if viewerID != 0 && viewerID != u.ID {
		isFollowing, err = s.follows.Exists(viewerID, u.ID)
		if err != nil {
			return serializer.PublicProfileView{}, err
		}
	}
	return serializer.PublicProfile(u, followers, following, viewerID == u.ID, isFollowing, s.media), nil
}

func (s *UserService) Followers(username string) ([]serializer.ProfileView, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	list, err := s.follows.ListFollowers(u.ID)
	if err != nil {
		return nil, err
	}
	return s.profiles(list)
}

func (s *UserService) Following(username string) ([]serializer.ProfileView, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	list, err := s.follows.ListFollowing(u.ID)
	if err != nil {
		return nil, err
	}
	return s.profiles(list)
}

// RandomProfiles returns a handful of random users for the discovery UI.
func (s *UserService) RandomProfiles(n int) ([]serializer.ProfileView, error) {
	list, err := s.users.Random(n)
	if err != nil {
		return nil, err
	}
	return s.profiles(list)
}

func (s *UserService) profiles(list []models.User) ([]serializer.ProfileView, error) {
	out := make([]serializer.ProfileView, 0, len(list))
	for i := range list {
		view, err := s.Profile(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

// ToggleFollow flips the currentID→targetID edge. Returns true when the
// call created the edge ("followed"), false when it removed one.
func (s *UserService) ToggleFollow(currentID, targetID uint) (bool, error) {
	if currentID == targetID {
		return false, domain.ErrForbidden
	}
	target, err := s.users.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	exists, err := s.follows.Exists(currentID, target.ID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.follows.Remove(currentID, target.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.follows.Add(currentID, target.ID); err != nil {
		return false, err
	}
	current, err := s.users.GetByID(currentID)
	if err != nil {
		return true, nil
	}
	s.notifier.Create(target.ID, current.ID, domain.NotifFollow, current.Username+" started following you", nil)
	return true, nil
}
