package repositories

import (
	"errors"
	"log"

	"github.com/tastebook/backend/internal/models"
	"gorm.io/gorm"
)

// ErrParentMismatch is returned when a comment's parent does not exist or
// belongs to a different post.
var ErrParentMismatch = errors.New("parent comment does not belong to the post")

// CommentRefs carries the author ids a comment mutation touched, for the
// notification fan-out decision that happens after the transaction.
type CommentRefs struct {
	PostAuthorID   uint
	ParentAuthorID *uint
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) (*CommentRefs, error)
	GetCommentByID(id uint) (*models.Comment, error)
	DeleteComment(id uint) error
	ListByPostID(postID uint, page, limit int) ([]models.Comment, int64, error)
	RepliesCounts(commentIDs []uint) (map[uint]int64, error)
	CountByPostID(postID uint) (int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment inserts the comment and increments the post's comments
// counter in one transaction, validating the parent reference inside the
// same transaction. Returns gorm.ErrRecordNotFound if the post does not
// exist and ErrParentMismatch for a missing or cross-post parent.
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) (*CommentRefs, error) {
	refs := &CommentRefs{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "author_id").First(&post, comment.PostID).Error; err != nil {
			return err
		}
		refs.PostAuthorID = post.AuthorID

		if comment.ParentID != nil {
			var parent models.Comment
			err := tx.Select("id", "post_id", "author_id").First(&parent, *comment.ParentID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && parent.PostID != comment.PostID) {
				return ErrParentMismatch
			}
			if err != nil {
				return err
			}
			parentAuthor := parent.AuthorID
			refs.ParentAuthorID = &parentAuthor
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// GetCommentByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment deletes the comment, promotes its direct replies to root
// comments, and decrements the post's comments counter, all in one
// transaction. Replies are re-rooted rather than cascade-deleted so a
// thread never silently loses other users' comments.
func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.Select("id", "post_id").First(&comment, id).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Comment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&models.Comment{}).Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}

		dec := tx.Model(&models.Post{}).
			Where("id = ? AND comments_count > 0", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count - 1"))
		if dec.Error != nil {
			return dec.Error
		}
		if dec.RowsAffected == 0 {
			log.Printf("comments_count for post %d already zero while deleting comment %d, skipping decrement", comment.PostID, id)
		}
		return nil
	})
}

// ListByPostID retrieves a page of comments for a post, oldest first so
// threads read top-down, with the total count for pagination.
func (r *PostgresCommentRepository) ListByPostID(postID uint, page, limit int) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	offset := (page - 1) * limit
	err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	return comments, total, err
}

// RepliesCounts returns the live number of direct replies for each of the
// given comment ids. Ids with no replies are absent from the map.
func (r *PostgresCommentRepository) RepliesCounts(commentIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ParentID uint
		Total    int64
	}
	err := r.db.Model(&models.Comment{}).
		Select("parent_id, COUNT(*) AS total").
		Where("parent_id IN ?", commentIDs).
		Group("parent_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ParentID] = row.Total
	}
	return counts, nil
}

// CountByPostID retrieves the number of comment rows for a specific post
func (r *PostgresCommentRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
