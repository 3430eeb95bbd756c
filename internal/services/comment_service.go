package services

import (
	"errors"
	"strings"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
	"gorm.io/gorm"
)

// DecoratedComment is a comment enriched with its author and the live
// count of direct replies.
type DecoratedComment struct {
	models.Comment
	Author       models.UserCompact `json:"author"`
	RepliesCount int64              `json:"replies_count"`
}

// CommentService implements the comment component: threaded creation with
// fan-out, author-only deletion, and the decorated listing read path.
type CommentService struct {
	comments repositories.CommentRepository
	users    repositories.UserRepository
	notifier *Notifier
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	notifier *Notifier,
) *CommentService {
	return &CommentService{comments: commentRepo, users: userRepo, notifier: notifier}
}

// CreateComment adds a comment (or a reply, when parentID is set) to the
// post. Two notifications may fan out independently: one to the post
// author and one to the parent comment's author, each suppressed when the
// recipient is the actor, and collapsed when both would target the same
// user.
func (s *CommentService) CreateComment(actorID, postID uint, text string, parentID *uint) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: actorID,
		ParentID: parentID,
		Text:     text,
	}
	refs, err := s.comments.CreateComment(comment)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if errors.Is(err, repositories.ErrParentMismatch) {
		return nil, ErrInvalidParent
	}
	if err != nil {
		return nil, err
	}

	notifType := models.NotificationTypeComment
	if parentID != nil {
		notifType = models.NotificationTypeReply
	}

	pid := postID
	cid := comment.ID
	if refs.PostAuthorID != actorID {
		s.notifier.Notify(refs.PostAuthorID, actorID, notifType, &pid, &cid)
	}
	if refs.ParentAuthorID != nil && *refs.ParentAuthorID != actorID && *refs.ParentAuthorID != refs.PostAuthorID {
		s.notifier.Notify(*refs.ParentAuthorID, actorID, models.NotificationTypeReply, &pid, &cid)
	}

	return comment, nil
}

// DeleteComment removes the actor's own comment. Direct replies are
// promoted to root comments; notifications that referenced the comment are
// left dangling on purpose.
func (s *CommentService) DeleteComment(actorID, commentID uint) error {
	comment, err := s.comments.GetCommentByID(commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if comment.AuthorID != actorID {
		return ErrForbidden
	}

	err = s.comments.DeleteComment(commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Deleted concurrently between the ownership check and here.
		return ErrNotFound
	}
	return err
}

// ListComments returns a page of the post's comments, oldest first, each
// decorated with author info and a replies count computed at query time.
func (s *CommentService) ListComments(postID uint, page, limit int) ([]DecoratedComment, int64, error) {
	comments, total, err := s.comments.ListByPostID(postID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	if len(comments) == 0 {
		return []DecoratedComment{}, total, nil
	}

	ids := make([]uint, 0, len(comments))
	authorIDs := make([]uint, 0, len(comments))
	seen := make(map[uint]bool)
	for _, c := range comments {
		ids = append(ids, c.ID)
		if !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}

	replies, err := s.comments.RepliesCounts(ids)
	if err != nil {
		return nil, 0, err
	}
	authors, err := s.users.GetUsersByIDs(authorIDs)
	if err != nil {
		return nil, 0, err
	}
	authorByID := make(map[uint]models.UserCompact, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = u.ToCompact()
	}

	decorated := make([]DecoratedComment, len(comments))
	for i, c := range comments {
		decorated[i] = DecoratedComment{
			Comment:      c,
			Author:       authorByID[c.AuthorID],
			RepliesCount: replies[c.ID],
		}
	}
	return decorated, total, nil
}
