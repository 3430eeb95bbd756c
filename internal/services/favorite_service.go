package services

import (
	"errors"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
	"gorm.io/gorm"
)

// FavoriteService implements the favorite half of the toggle component,
// symmetric with LikeService.
type FavoriteService struct {
	favorites repositories.FavoriteRepository
	posts     repositories.PostRepository
	likes     repositories.LikeRepository
	notifier  *Notifier
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	postRepo repositories.PostRepository,
	likeRepo repositories.LikeRepository,
	notifier *Notifier,
) *FavoriteService {
	return &FavoriteService{
		favorites: favoriteRepo,
		posts:     postRepo,
		likes:     likeRepo,
		notifier:  notifier,
	}
}

// FavoritePost records a favorite by the actor on the post, idempotently,
// and notifies the post author on a fresh favorite unless they favorited
// their own post.
func (s *FavoriteService) FavoritePost(actorID, postID uint) error {
	created, authorID, err := s.favorites.FavoritePost(actorID, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if created && authorID != actorID {
		pid := postID
		s.notifier.Notify(authorID, actorID, models.NotificationTypeFavorite, &pid, nil)
	}
	return nil
}

// UnfavoritePost removes the actor's favorite; a missing favorite is a
// no-op success.
func (s *FavoriteService) UnfavoritePost(actorID, postID uint) error {
	_, err := s.favorites.UnfavoritePost(actorID, postID)
	return err
}

// ListUserFavorites returns the page of posts the user has favorited,
// newest favorite first, each decorated with the user's own like/favorite
// flags.
func (s *FavoriteService) ListUserFavorites(userID uint, page, limit int) ([]DecoratedPost, int64, error) {
	ids, total, err := s.favorites.ListPostIDsByUser(userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []DecoratedPost{}, total, nil
	}

	posts, err := s.posts.GetPostsByIDs(ids)
	if err != nil {
		return nil, 0, err
	}
	liked, err := s.likes.LikedPostIDs(userID, ids)
	if err != nil {
		return nil, 0, err
	}

	byID := make(map[uint]models.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	// Preserve the favorite order; a post deleted since favoriting is
	// silently skipped.
	decorated := make([]DecoratedPost, 0, len(ids))
	for _, id := range ids {
		post, ok := byID[id]
		if !ok {
			continue
		}
		decorated = append(decorated, DecoratedPost{
			Post:        post,
			IsLiked:     liked[id],
			IsFavorited: true,
		})
	}
	return decorated, total, nil
}
