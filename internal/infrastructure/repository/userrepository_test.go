package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gavel/internal/domain/geo"
	"gavel/internal/domain/user"
	"gavel/internal/infrastructure/persistence/models"
	"gavel/internal/interfaces/http/handlers/testutil"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/id"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.LoginEventModel{},
		&models.AuctionModel{},
		&models.BidModel{},
		&models.ContactMessageModel{},
	)
	require.NoError(t, err)

	return db
}

func newTestUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.NewUser("Test User", email)
	require.NoError(t, err)
	require.NoError(t, u.SetSID(id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength)))
	return u
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testutil.NewMockLogger())
	ctx := context.Background()

	u := newTestUser(t, "alice@example.com")
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID())

	t.Run("get by id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alice@example.com", found.Email())
		assert.True(t, found.LastGeo().IsDefault())
	})

	t.Run("get by sid", func(t *testing.T) {
		found, err := repo.GetBySID(ctx, u.SID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("get by email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.SID(), found.SID())
	})

	t.Run("missing rows return nil without error", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.GetBySID(ctx, "usr_missing")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testutil.NewMockLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser(t, "alice@example.com")))

	err := repo.Create(ctx, newTestUser(t, "alice@example.com"))
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testutil.NewMockLogger())
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, newTestUser(t, "alice@example.com")))

	exists, err = repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_UpdateLastSeen(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testutil.NewMockLogger())
	ctx := context.Background()

	u := newTestUser(t, "alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	at := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	record := geo.Record{Country: "France", Region: "IDF", City: "Paris", ISP: "Orange"}
	require.NoError(t, repo.UpdateLastSeen(ctx, u.ID(), "203.0.113.7", "agent/1.0", record, at))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", found.LastIPAddress())
	assert.Equal(t, "agent/1.0", found.LastUserAgent())
	assert.Equal(t, record, found.LastGeo())
	require.NotNil(t, found.LastLoginAt())
	assert.True(t, at.Equal(found.LastLoginAt().UTC()))
}

func TestUserRepository_UpdateLastSeen_PartialGeoNormalized(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testutil.NewMockLogger())
	ctx := context.Background()

	u := newTestUser(t, "alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.UpdateLastSeen(ctx, u.ID(), "1.2.3.4", "", geo.Record{Country: "Germany"}, time.Now().UTC()))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Germany", found.LastGeo().Country)
	assert.Equal(t, geo.Unknown, found.LastGeo().City)
}

func TestUserRepository_UpdateLastSeen_MissingUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testutil.NewMockLogger())

	err := repo.UpdateLastSeen(context.Background(), 999, "1.2.3.4", "", geo.DefaultRecord(), time.Now().UTC())
	assert.Error(t, err)
}

func TestUserRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testutil.NewMockLogger())
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, repo.Create(ctx, newTestUser(t, email)))
	}

	users, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)

	users, _, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
