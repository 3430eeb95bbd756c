package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastebook/backend/internal/models"
)

func TestFollowNotifiesTargetAndBumpsCounters(t *testing.T) {
	env := newTestEnv(t)
	actor := env.createUser(t, "actor")
	target := env.createUser(t, "target")

	require.NoError(t, env.followService.Follow(actor.ID, target.ID))

	following, err := env.followService.IsFollowing(actor.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, following)

	reloadedActor, err := env.users.GetUserByID(actor.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloadedActor.FollowingCount)
	reloadedTarget, err := env.users.GetUserByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloadedTarget.FollowersCount)

	notifications := env.notificationsFor(t, target.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeFollow, notifications[0].Type)
	assert.Equal(t, actor.ID, notifications[0].SenderID)
	assert.Nil(t, notifications[0].PostID)
	assert.Nil(t, notifications[0].CommentID)
}

func TestFollowTwiceIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	actor := env.createUser(t, "actor")
	target := env.createUser(t, "target")

	require.NoError(t, env.followService.Follow(actor.ID, target.ID))
	require.NoError(t, env.followService.Follow(actor.ID, target.ID))

	reloadedTarget, err := env.users.GetUserByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloadedTarget.FollowersCount)
	assert.Len(t, env.notificationsFor(t, target.ID), 1)
}

func TestFollowSelfRejected(t *testing.T) {
	env := newTestEnv(t)
	actor := env.createUser(t, "actor")

	assert.ErrorIs(t, env.followService.Follow(actor.ID, actor.ID), ErrSelfFollow)
}

func TestFollowMissingTargetFails(t *testing.T) {
	env := newTestEnv(t)
	actor := env.createUser(t, "actor")

	assert.ErrorIs(t, env.followService.Follow(actor.ID, 404), ErrNotFound)
}

func TestUnfollowReversesCountersAndTolerateRepeat(t *testing.T) {
	env := newTestEnv(t)
	actor := env.createUser(t, "actor")
	target := env.createUser(t, "target")

	require.NoError(t, env.followService.Follow(actor.ID, target.ID))
	require.NoError(t, env.followService.Unfollow(actor.ID, target.ID))

	following, err := env.followService.IsFollowing(actor.ID, target.ID)
	require.NoError(t, err)
	assert.False(t, following)

	reloadedActor, err := env.users.GetUserByID(actor.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloadedActor.FollowingCount)
	reloadedTarget, err := env.users.GetUserByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloadedTarget.FollowersCount)

	// Unfollowing again is a no-op success, counters stay floored.
	require.NoError(t, env.followService.Unfollow(actor.ID, target.ID))
	reloadedTarget, err = env.users.GetUserByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloadedTarget.FollowersCount)
}
