package services

import (
	"errors"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService applies the toggle semantics to user-to-user follows.
type FollowService struct {
	follows  repositories.FollowRepository
	notifier *Notifier
}

// NewFollowService creates a new FollowService
func NewFollowService(followRepo repositories.FollowRepository, notifier *Notifier) *FollowService {
	return &FollowService{follows: followRepo, notifier: notifier}
}

// Follow makes the actor follow the target. Following twice is a no-op
// success; a fresh follow notifies the target. Following yourself is
// rejected.
func (s *FollowService) Follow(actorID, targetID uint) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	created, err := s.follows.Follow(actorID, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if created {
		s.notifier.Notify(targetID, actorID, models.NotificationTypeFollow, nil, nil)
	}
	return nil
}

// Unfollow removes the relationship; not following is a no-op success.
func (s *FollowService) Unfollow(actorID, targetID uint) error {
	_, err := s.follows.Unfollow(actorID, targetID)
	return err
}

// IsFollowing reports whether the actor follows the target.
func (s *FollowService) IsFollowing(actorID, targetID uint) (bool, error) {
	return s.follows.IsFollowing(actorID, targetID)
}
