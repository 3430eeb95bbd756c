package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
)

// failingNotificationRepository rejects every insert while delegating the
// rest, simulating a notification store outage.
type failingNotificationRepository struct {
	repositories.NotificationRepository
	attempts int
}

func (r *failingNotificationRepository) CreateNotification(*models.Notification) error {
	r.attempts++
	return errors.New("notification store unavailable")
}

// A notification insert failure must never surface to the caller: the like
// commits, the counter moves, and only the fan-out is lost.
func TestNotifyFailureDoesNotFailPrimaryAction(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	fan := env.createUser(t, "fan")
	post := env.createPost(t, author.ID)

	failing := &failingNotificationRepository{NotificationRepository: env.notifications}
	likeService := NewLikeService(env.likes, NewNotifier(failing))

	require.NoError(t, likeService.LikePost(fan.ID, post.ID))

	assert.Equal(t, 1, failing.attempts)
	assert.Equal(t, 1, env.reloadPost(t, post.ID).LikesCount)
	liked, err := env.likes.HasUserLikedPost(post.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Empty(t, env.notificationsFor(t, author.ID))
}

func TestNotifyFailureDoesNotFailCommentCreation(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	fan := env.createUser(t, "fan")
	post := env.createPost(t, author.ID)

	failing := &failingNotificationRepository{NotificationRepository: env.notifications}
	commentService := NewCommentService(env.comments, env.users, NewNotifier(failing))

	comment, err := commentService.CreateComment(fan.ID, post.ID, "still works", nil)
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, 1, env.reloadPost(t, post.ID).CommentsCount)
	assert.Empty(t, env.notificationsFor(t, author.ID))
}
