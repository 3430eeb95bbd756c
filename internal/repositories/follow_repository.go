package repositories

import (
	"log"

	"github.com/tastebook/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	Follow(followerID, followingID uint) (created bool, err error)
	Unfollow(followerID, followingID uint) (deleted bool, err error)
	IsFollowing(followerID, followingID uint) (bool, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// Follow inserts the relationship and bumps both users' counters in one
// transaction, with the same insert-if-absent idempotency as the post
// toggles. Returns gorm.ErrRecordNotFound if the target user does not
// exist.
func (r *PostgresFollowRepository) Follow(followerID, followingID uint) (bool, error) {
	var created bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.Select("id").First(&target, followingID).Error; err != nil {
			return err
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Follow{FollowerID: followerID, FollowingID: followingID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // already following
		}
		created = true

		if err := tx.Model(&models.User{}).Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", followingID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + 1")).Error
	})
	return created, err
}

// Unfollow deletes the relationship and decrements both counters, flooring
// them at zero.
func (r *PostgresFollowRepository) Unfollow(followerID, followingID uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true

		dec := tx.Model(&models.User{}).
			Where("id = ? AND following_count > 0", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count - 1"))
		if dec.Error != nil {
			return dec.Error
		}
		if dec.RowsAffected == 0 {
			log.Printf("following_count for user %d already zero while unfollowing, skipping decrement", followerID)
		}

		dec = tx.Model(&models.User{}).
			Where("id = ? AND followers_count > 0", followingID).
			UpdateColumn("followers_count", gorm.Expr("followers_count - 1"))
		if dec.Error != nil {
			return dec.Error
		}
		if dec.RowsAffected == 0 {
			log.Printf("followers_count for user %d already zero while unfollowing, skipping decrement", followingID)
		}
		return nil
	})
	return deleted, err
}

// IsFollowing checks whether the relationship exists
func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}
