package services

import (
	"fmt"
	"testing"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The shared-cache
// DSN keyed by test name keeps connections within one test on the same
// database while keeping tests apart.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Series{},
		&models.SeriesPhoto{},
		&models.Collection{},
		&models.CollectionPhoto{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// testEnv bundles every service over one database so a test can drive an
// interaction through one service and observe the side effects through
// another.
type testEnv struct {
	db *gorm.DB

	notifications *NotificationService
	likes         *LikeService
	follows       *FollowService
	comments      *CommentService
	collections   *CollectionService
	series        *SeriesService
	users         *UserService
	auth          *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	userRepo := repositories.NewPostgresUserRepository(db)
	photoRepo := repositories.NewPostgresPhotoRepository(db)
	seriesRepo := repositories.NewPostgresSeriesRepository(db)
	collectionRepo := repositories.NewPostgresCollectionRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	notifications := NewNotificationService(notificationRepo, userRepo)
	return &testEnv{
		db:            db,
		notifications: notifications,
		likes:         NewLikeService(likeRepo, photoRepo, seriesRepo, commentRepo, notifications),
		follows:       NewFollowService(followRepo, userRepo, notifications),
		comments:      NewCommentService(commentRepo, photoRepo, seriesRepo, notifications),
		collections:   NewCollectionService(collectionRepo, photoRepo),
		series:        NewSeriesService(seriesRepo, photoRepo),
		users:         NewUserService(userRepo),
		auth:          NewAuthService(userRepo, "test-secret"),
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		PasswordHash:   "not-a-real-hash",
		NotifyLikes:    true,
		NotifyComments: true,
		NotifyFollows:  true,
		NotifySeries:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPhoto(t *testing.T, db *gorm.DB, userID uint, isPublic bool) *models.Photo {
	t.Helper()

	photo := &models.Photo{
		UserID:       userID,
		Title:        "seeded",
		ImageKey:     "photos/seeded.jpg",
		ThumbnailKey: "thumbnails/seeded.jpg",
		IsPublic:     isPublic,
	}
	require.NoError(t, db.Create(photo).Error)
	return photo
}

func seedSeries(t *testing.T, db *gorm.DB, userID uint, isPublic bool) *models.Series {
	t.Helper()

	series := &models.Series{
		UserID:   userID,
		Title:    "seeded series",
		IsPublic: isPublic,
	}
	require.NoError(t, db.Create(series).Error)
	return series
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func uintPtr(v uint) *uint { return &v }

func boolPtr(v bool) *bool { return &v }
