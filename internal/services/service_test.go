package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full engine against an in-memory sqlite store so the
// transactional and unique-constraint behavior is exercised for real.
type testEnv struct {
	db *gorm.DB

	users         repositories.UserRepository
	posts         repositories.PostRepository
	likes         repositories.LikeRepository
	favorites     repositories.FavoriteRepository
	comments      repositories.CommentRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository

	likeService         *LikeService
	favoriteService     *FavoriteService
	commentService      *CommentService
	followService       *FollowService
	postService         *PostService
	notificationService *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
		&models.Follow{},
		&models.Notification{},
	))

	env := &testEnv{
		db:            db,
		users:         repositories.NewPostgresUserRepository(db),
		posts:         repositories.NewPostgresPostRepository(db),
		likes:         repositories.NewPostgresLikeRepository(db),
		favorites:     repositories.NewPostgresFavoriteRepository(db),
		comments:      repositories.NewPostgresCommentRepository(db),
		follows:       repositories.NewPostgresFollowRepository(db),
		notifications: repositories.NewPostgresNotificationRepository(db),
	}

	notifier := NewNotifier(env.notifications)
	env.likeService = NewLikeService(env.likes, notifier)
	env.favoriteService = NewFavoriteService(env.favorites, env.posts, env.likes, notifier)
	env.commentService = NewCommentService(env.comments, env.users, notifier)
	env.followService = NewFollowService(env.follows, notifier)
	env.postService = NewPostService(env.posts, env.likes, env.favorites)
	env.notificationService = NewNotificationService(env.notifications, env.users)

	return env
}

func (e *testEnv) createUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, e.users.CreateUser(user))
	return user
}

func (e *testEnv) createPost(t *testing.T, authorID uint) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Title: "Shakshuka", Content: "Eggs poached in tomato sauce."}
	require.NoError(t, e.posts.CreatePost(post))
	return post
}

func (e *testEnv) reloadPost(t *testing.T, id uint) *models.Post {
	t.Helper()
	post, err := e.posts.GetPostByID(id)
	require.NoError(t, err)
	return post
}

func (e *testEnv) notificationsFor(t *testing.T, recipientID uint) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	require.NoError(t, e.db.Where("recipient_id = ?", recipientID).Order("id").Find(&notifications).Error)
	return notifications
}
