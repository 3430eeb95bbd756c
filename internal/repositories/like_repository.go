package repositories

import (
	"log"

	"github.com/tastebook/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	LikePost(userID, postID uint) (created bool, postAuthorID uint, err error)
	UnlikePost(userID, postID uint) (deleted bool, err error)
	HasUserLikedPost(postID, userID uint) (bool, error)
	LikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
	CountByPostID(postID uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// LikePost inserts the membership row and bumps the post's likes counter in
// one transaction. An insert that finds the row already present (including
// losing a concurrent race to the unique index) leaves created false and
// the counter untouched. Returns gorm.ErrRecordNotFound if the post does
// not exist.
func (r *PostgresLikeRepository) LikePost(userID, postID uint) (bool, uint, error) {
	var created bool
	var authorID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "author_id").First(&post, postID).Error; err != nil {
			return err
		}
		authorID = post.AuthorID

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{UserID: userID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // already liked
		}
		created = true
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	return created, authorID, err
}

// UnlikePost deletes the membership row and decrements the counter in one
// transaction. A missing row is a no-op. The counter never drops below
// zero; a floored decrement indicates an upstream consistency bug and is
// logged rather than surfaced.
func (r *PostgresLikeRepository) UnlikePost(userID, postID uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		dec := tx.Model(&models.Post{}).
			Where("id = ? AND likes_count > 0", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - 1"))
		if dec.Error != nil {
			return dec.Error
		}
		if dec.RowsAffected == 0 {
			log.Printf("likes_count for post %d already zero while deleting a like row, skipping decrement", postID)
		}
		return nil
	})
	return deleted, err
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// LikedPostIDs returns which of the given posts the user has liked
func (r *PostgresLikeRepository) LikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}
	var ids []uint
	if err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// CountByPostID retrieves the number of like rows for a specific post
func (r *PostgresLikeRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
