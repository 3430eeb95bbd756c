package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastebook/backend/internal/models"
)

func TestLikePostIncrementsCounterAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	liker := env.createUser(t, "liker")
	post := env.createPost(t, author.ID)

	require.NoError(t, env.likeService.LikePost(liker.ID, post.ID))

	assert.Equal(t, 1, env.reloadPost(t, post.ID).LikesCount)

	notifications := env.notificationsFor(t, author.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeLike, notifications[0].Type)
	assert.Equal(t, liker.ID, notifications[0].SenderID)
	require.NotNil(t, notifications[0].PostID)
	assert.Equal(t, post.ID, *notifications[0].PostID)
	assert.False(t, notifications[0].IsRead)
}

func TestLikePostIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	liker := env.createUser(t, "liker")
	post := env.createPost(t, author.ID)

	require.NoError(t, env.likeService.LikePost(liker.ID, post.ID))
	require.NoError(t, env.likeService.LikePost(liker.ID, post.ID))

	assert.Equal(t, 1, env.reloadPost(t, post.ID).LikesCount)
	count, err := env.likes.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Len(t, env.notificationsFor(t, author.ID), 1)
}

func TestLikeOwnPostDoesNotNotify(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	post := env.createPost(t, author.ID)

	require.NoError(t, env.likeService.LikePost(author.ID, post.ID))

	assert.Equal(t, 1, env.reloadPost(t, post.ID).LikesCount)
	assert.Empty(t, env.notificationsFor(t, author.ID))
}

func TestLikeMissingPostFails(t *testing.T) {
	env := newTestEnv(t)
	liker := env.createUser(t, "liker")

	err := env.likeService.LikePost(liker.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnlikeNeverLikedPostIsNoop(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	stranger := env.createUser(t, "stranger")
	post := env.createPost(t, author.ID)

	require.NoError(t, env.likeService.UnlikePost(stranger.ID, post.ID))
	assert.Equal(t, 0, env.reloadPost(t, post.ID).LikesCount)
}

func TestUnlikeRemovesRowAndDecrementsCounter(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	liker := env.createUser(t, "liker")
	post := env.createPost(t, author.ID)

	require.NoError(t, env.likeService.LikePost(liker.ID, post.ID))
	require.NoError(t, env.likeService.UnlikePost(liker.ID, post.ID))

	assert.Equal(t, 0, env.reloadPost(t, post.ID).LikesCount)
	count, err := env.likes.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

// Covers the end-to-end like scenario: fresh like notifies once, a repeat
// changes nothing, a self-like counts without notifying, and an unlike by
// someone who never liked is harmless.
func TestLikeScenario(t *testing.T) {
	env := newTestEnv(t)
	a := env.createUser(t, "a")
	b := env.createUser(t, "b")
	c := env.createUser(t, "c")
	post := env.createPost(t, a.ID)

	require.NoError(t, env.likeService.LikePost(b.ID, post.ID))
	assert.Equal(t, 1, env.reloadPost(t, post.ID).LikesCount)
	require.Len(t, env.notificationsFor(t, a.ID), 1)

	require.NoError(t, env.likeService.LikePost(b.ID, post.ID))
	assert.Equal(t, 1, env.reloadPost(t, post.ID).LikesCount)
	assert.Len(t, env.notificationsFor(t, a.ID), 1)

	require.NoError(t, env.likeService.LikePost(a.ID, post.ID))
	assert.Equal(t, 2, env.reloadPost(t, post.ID).LikesCount)
	assert.Len(t, env.notificationsFor(t, a.ID), 1)

	require.NoError(t, env.likeService.UnlikePost(c.ID, post.ID))
	assert.Equal(t, 2, env.reloadPost(t, post.ID).LikesCount)
}

func TestUnlikeNeverDropsCounterBelowZero(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	liker := env.createUser(t, "liker")
	post := env.createPost(t, author.ID)

	require.NoError(t, env.likeService.LikePost(liker.ID, post.ID))
	// Simulate a drifted counter; the decrement must floor instead of
	// going negative.
	require.NoError(t, env.db.Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("likes_count", 0).Error)

	require.NoError(t, env.likeService.UnlikePost(liker.ID, post.ID))

	assert.Equal(t, 0, env.reloadPost(t, post.ID).LikesCount)
	rows, err := env.likes.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestLikesCounterMatchesRowsAfterMixedSequence(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "author")
	post := env.createPost(t, author.ID)

	users := make([]*models.User, 5)
	for i := range users {
		users[i] = env.createUser(t, string(rune('u'+i)))
		require.NoError(t, env.likeService.LikePost(users[i].ID, post.ID))
	}
	require.NoError(t, env.likeService.UnlikePost(users[1].ID, post.ID))
	require.NoError(t, env.likeService.UnlikePost(users[3].ID, post.ID))
	// Repeat unlike is a no-op.
	require.NoError(t, env.likeService.UnlikePost(users[3].ID, post.ID))

	rows, err := env.likes.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, rows, env.reloadPost(t, post.ID).LikesCount)
	assert.EqualValues(t, 3, rows)
}
