package services

import (
	"errors"
	"strings"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
	"gorm.io/gorm"
)

// DecoratedPost is a post enriched with viewer-relative flags. Both flags
// are false for anonymous viewers.
type DecoratedPost struct {
	models.Post
	IsLiked     bool `json:"is_liked"`
	IsFavorited bool `json:"is_favorited"`
}

// PostService covers post lifecycle and the decorated read paths.
type PostService struct {
	posts     repositories.PostRepository
	likes     repositories.LikeRepository
	favorites repositories.FavoriteRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	likeRepo repositories.LikeRepository,
	favoriteRepo repositories.FavoriteRepository,
) *PostService {
	return &PostService{posts: postRepo, likes: likeRepo, favorites: favoriteRepo}
}

// CreatePost creates a new post owned by the author.
func (s *PostService) CreatePost(authorID uint, title, content string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrEmptyText
	}

	post := &models.Post{AuthorID: authorID, Title: title, Content: content}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns the post decorated for the viewer. viewerID zero means
// anonymous.
func (s *PostService) GetPost(postID, viewerID uint) (*DecoratedPost, error) {
	post, err := s.posts.GetPostByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	decorated := &DecoratedPost{Post: *post}
	if viewerID != 0 {
		if decorated.IsLiked, err = s.likes.HasUserLikedPost(postID, viewerID); err != nil {
			return nil, err
		}
		if decorated.IsFavorited, err = s.favorites.HasUserFavoritedPost(postID, viewerID); err != nil {
			return nil, err
		}
	}
	return decorated, nil
}

// ListPosts returns a page of posts, newest first, decorated for the
// viewer with membership checked at query time.
func (s *PostService) ListPosts(page, limit int, viewerID uint) ([]DecoratedPost, int64, error) {
	posts, total, err := s.posts.ListPosts(page, limit)
	if err != nil {
		return nil, 0, err
	}

	decorated := make([]DecoratedPost, len(posts))
	for i, p := range posts {
		decorated[i] = DecoratedPost{Post: p}
	}
	if viewerID == 0 || len(posts) == 0 {
		return decorated, total, nil
	}

	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	liked, err := s.likes.LikedPostIDs(viewerID, ids)
	if err != nil {
		return nil, 0, err
	}
	favorited, err := s.favorites.FavoritedPostIDs(viewerID, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range decorated {
		decorated[i].IsLiked = liked[decorated[i].ID]
		decorated[i].IsFavorited = favorited[decorated[i].ID]
	}
	return decorated, total, nil
}

// DeletePost removes the actor's own post along with its likes, favorites
// and comments.
func (s *PostService) DeletePost(actorID, postID uint) error {
	post, err := s.posts.GetPostByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return ErrForbidden
	}

	err = s.posts.DeletePost(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
