package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastebook/backend/internal/models"
)

// seedNotifications drives real interactions so the recipient ends up with
// three notifications: a LIKE, a COMMENT, and a FOLLOW, oldest first.
func seedNotifications(t *testing.T, env *testEnv) (recipient, sender *models.User) {
	t.Helper()
	recipient = env.createUser(t, "recipient")
	sender = env.createUser(t, "sender")
	post := env.createPost(t, recipient.ID)

	require.NoError(t, env.likeService.LikePost(sender.ID, post.ID))
	_, err := env.commentService.CreateComment(sender.ID, post.ID, "Nice crust", nil)
	require.NoError(t, err)
	require.NoError(t, env.followService.Follow(sender.ID, recipient.ID))
	return recipient, sender
}

func TestListNotificationsNewestFirstWithSender(t *testing.T) {
	env := newTestEnv(t)
	recipient, sender := seedNotifications(t, env)

	list, total, err := env.notificationService.List(recipient.ID, 1, 10, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, list, 3)

	assert.Equal(t, models.NotificationTypeFollow, list[0].Type)
	assert.Equal(t, models.NotificationTypeComment, list[1].Type)
	assert.Equal(t, models.NotificationTypeLike, list[2].Type)
	for _, n := range list {
		assert.Equal(t, sender.Name, n.Sender.Name)
		assert.False(t, n.IsRead)
	}
}

func TestListNotificationsUnreadOnlyAndPagination(t *testing.T) {
	env := newTestEnv(t)
	recipient, _ := seedNotifications(t, env)

	all, _, err := env.notificationService.List(recipient.ID, 1, 10, false)
	require.NoError(t, err)
	require.NoError(t, env.notificationService.MarkRead(recipient.ID, all[0].ID))

	unread, total, err := env.notificationService.List(recipient.ID, 1, 10, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, unread, 2)
	for _, n := range unread {
		assert.False(t, n.IsRead)
		assert.NotEqual(t, all[0].ID, n.ID)
	}

	page2, total, err := env.notificationService.List(recipient.ID, 2, 2, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page2, 1)
}

func TestUnreadCountTracksReadTransitions(t *testing.T) {
	env := newTestEnv(t)
	recipient, _ := seedNotifications(t, env)

	count, err := env.notificationService.UnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	all, _, err := env.notificationService.List(recipient.ID, 1, 10, false)
	require.NoError(t, err)
	require.NoError(t, env.notificationService.MarkRead(recipient.ID, all[1].ID))

	count, err = env.notificationService.UnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestMarkReadIsOwnershipScopedAndSingleShot(t *testing.T) {
	env := newTestEnv(t)
	recipient, _ := seedNotifications(t, env)
	stranger := env.createUser(t, "stranger")

	all, _, err := env.notificationService.List(recipient.ID, 1, 10, false)
	require.NoError(t, err)
	target := all[0].ID

	// Someone else's token cannot touch the notification.
	assert.ErrorIs(t, env.notificationService.MarkRead(stranger.ID, target), ErrNotFound)
	count, err := env.notificationService.UnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	require.NoError(t, env.notificationService.MarkRead(recipient.ID, target))
	// Already read: reported as not found, same as missing.
	assert.ErrorIs(t, env.notificationService.MarkRead(recipient.ID, target), ErrNotFound)
	assert.ErrorIs(t, env.notificationService.MarkRead(recipient.ID, 9999), ErrNotFound)
}

func TestMarkAllReadReportsAffectedCount(t *testing.T) {
	env := newTestEnv(t)
	recipient, _ := seedNotifications(t, env)

	affected, err := env.notificationService.MarkAllRead(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, affected)

	count, err := env.notificationService.UnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	affected, err = env.notificationService.MarkAllRead(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDeleteNotificationIsOwnershipScoped(t *testing.T) {
	env := newTestEnv(t)
	recipient, _ := seedNotifications(t, env)
	stranger := env.createUser(t, "stranger")

	all, _, err := env.notificationService.List(recipient.ID, 1, 10, false)
	require.NoError(t, err)
	target := all[0].ID

	assert.ErrorIs(t, env.notificationService.Delete(stranger.ID, target), ErrNotFound)
	require.NoError(t, env.notificationService.Delete(recipient.ID, target))
	assert.ErrorIs(t, env.notificationService.Delete(recipient.ID, target), ErrNotFound)

	_, total, err := env.notificationService.List(recipient.ID, 1, 10, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestClearAllRemovesOnlyOwnNotifications(t *testing.T) {
	env := newTestEnv(t)
	recipient, sender := seedNotifications(t, env)

	// Give the sender a notification of their own.
	require.NoError(t, env.followService.Follow(recipient.ID, sender.ID))

	removed, err := env.notificationService.ClearAll(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)

	assert.Empty(t, env.notificationsFor(t, recipient.ID))
	assert.Len(t, env.notificationsFor(t, sender.ID), 1)

	removed, err = env.notificationService.ClearAll(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}
