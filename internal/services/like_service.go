package services

import (
	"errors"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
	"gorm.io/gorm"
)

// LikeService implements the like half of the toggle component.
type LikeService struct {
	likes    repositories.LikeRepository
	notifier *Notifier
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repositories.LikeRepository, notifier *Notifier) *LikeService {
	return &LikeService{likes: likeRepo, notifier: notifier}
}

// LikePost records a like by the actor on the post. Liking a post twice is
// a no-op success. The post author is notified once per fresh like, unless
// they liked their own post.
func (s *LikeService) LikePost(actorID, postID uint) error {
	created, authorID, err := s.likes.LikePost(actorID, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if created && authorID != actorID {
		pid := postID
		s.notifier.Notify(authorID, actorID, models.NotificationTypeLike, &pid, nil)
	}
	return nil
}

// UnlikePost removes the actor's like. Unliking a post that was never
// liked is a no-op success, and no notification is generated either way.
func (s *LikeService) UnlikePost(actorID, postID uint) error {
	_, err := s.likes.UnlikePost(actorID, postID)
	return err
}
