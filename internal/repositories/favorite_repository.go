package repositories

import (
	"log"

	"github.com/tastebook/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines the interface for favorite data operations
type FavoriteRepository interface {
	FavoritePost(userID, postID uint) (created bool, postAuthorID uint, err error)
	UnfavoritePost(userID, postID uint) (deleted bool, err error)
	HasUserFavoritedPost(postID, userID uint) (bool, error)
	FavoritedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
	ListPostIDsByUser(userID uint, page, limit int) ([]uint, int64, error)
	CountByPostID(postID uint) (int64, error)
}

// PostgresFavoriteRepository implements FavoriteRepository for PostgreSQL
type PostgresFavoriteRepository struct {
	db *gorm.DB
}

// NewPostgresFavoriteRepository creates a new PostgresFavoriteRepository
func NewPostgresFavoriteRepository(db *gorm.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

// FavoritePost mirrors PostgresLikeRepository.LikePost for the favorites
// membership and counter.
func (r *PostgresFavoriteRepository) FavoritePost(userID, postID uint) (bool, uint, error) {
	var created bool
	var authorID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "author_id").First(&post, postID).Error; err != nil {
			return err
		}
		authorID = post.AuthorID

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Favorite{UserID: userID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // already favorited
		}
		created = true
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})
	return created, authorID, err
}

// UnfavoritePost deletes the membership row and decrements the counter in
// one transaction, flooring the counter at zero.
func (r *PostgresFavoriteRepository) UnfavoritePost(userID, postID uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		dec := tx.Model(&models.Post{}).
			Where("id = ? AND favorites_count > 0", postID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1"))
		if dec.Error != nil {
			return dec.Error
		}
		if dec.RowsAffected == 0 {
			log.Printf("favorites_count for post %d already zero while deleting a favorite row, skipping decrement", postID)
		}
		return nil
	})
	return deleted, err
}

// HasUserFavoritedPost checks if a user has favorited a specific post
func (r *PostgresFavoriteRepository) HasUserFavoritedPost(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Favorite{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FavoritedPostIDs returns which of the given posts the user has favorited
func (r *PostgresFavoriteRepository) FavoritedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	favorited := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return favorited, nil
	}
	var ids []uint
	if err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		favorited[id] = true
	}
	return favorited, nil
}

// ListPostIDsByUser returns the ids of posts the user favorited, newest
// favorite first, with the total favorite count for pagination.
func (r *PostgresFavoriteRepository) ListPostIDsByUser(userID uint, page, limit int) ([]uint, int64, error) {
	var total int64
	if err := r.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint
	offset := (page - 1) * limit
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Pluck("post_id", &ids).Error
	return ids, total, err
}

// CountByPostID retrieves the number of favorite rows for a specific post
func (r *PostgresFavoriteRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Favorite{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
