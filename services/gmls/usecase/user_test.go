package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gmls/domain"
	"gmls/services/gmls/repository"
)

func setupCacheDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to sqlite test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	err = db.AutoMigrate(
		&domain.UserProfile{},
		&domain.HouseholdMemberRow{},
		&domain.DisasterRecord{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func newUserTestStack(t *testing.T) (domain.UserUseCase, domain.RemoteStore, domain.AuthService) {
	t.Helper()

	repo := repository.NewUserRepository(setupCacheDB(t))
	remote := repository.NewMemoryRemoteStore()
	auth := repository.NewSessionAuthService()

	return NewUserUseCase(repo, remote, auth, 5*time.Second), remote, auth
}

func TestSyncProfilePersistsRemoteDocument(t *testing.T) {
	uc, remote, auth := newUserTestStack(t)
	ctx := context.Background()

	require.NoError(t, auth.SignIn(ctx, "uid-1"))
	require.NoError(t, remote.Set(ctx, domain.CollectionUsers, "uid-1", domain.Document{
		"email":             "budi@example.com",
		"fullName":          "Budi Santoso",
		"bloodType":         "O",
		"medicalConditions": []interface{}{"asthma"},
		"isVerified":        true,
		"householdMembers": []interface{}{
			map[string]interface{}{
				"name":         "Ani",
				"relationship": "child",
				"age":          float64(9),
			},
		},
	}))

	user, err := uc.SyncProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", user.FullName)
	assert.True(t, user.IsVerified)
	require.Len(t, user.HouseholdMembers, 1)
	assert.NotEmpty(t, user.HouseholdMembers[0].ID, "member identifier generated during sync")

	cached, err := uc.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", cached.FullName)
	assert.Equal(t, []string{"asthma"}, cached.MedicalConditions)
	require.Len(t, cached.HouseholdMembers, 1)
	assert.Equal(t, "Ani", cached.HouseholdMembers[0].Name)
	assert.Equal(t, user.HouseholdMembers[0].ID, cached.HouseholdMembers[0].ID)
	assert.Equal(t, 1, cached.FamilyMemberCount)
}

func TestSyncProfileRequiresAuthentication(t *testing.T) {
	uc, _, _ := newUserTestStack(t)

	_, err := uc.SyncProfile(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestSyncProfileRemoteFailurePropagates(t *testing.T) {
	uc, _, auth := newUserTestStack(t)
	ctx := context.Background()

	require.NoError(t, auth.SignIn(ctx, "uid-1"))

	_, err := uc.SyncProfile(ctx)
	require.Error(t, err, "remote failure surfaces so the caller can serve the stale cache")

	_, err = uc.GetUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound, "failed sync leaves the cache untouched")
}

func TestSaveProfileWritesThroughToRemote(t *testing.T) {
	uc, remote, auth := newUserTestStack(t)
	ctx := context.Background()

	require.NoError(t, auth.SignIn(ctx, "uid-1"))

	user := &domain.User{
		UID:      "uid-1",
		FullName: "Budi Santoso",
		Religion: "islam",
		IsActive: true,
		HouseholdMembers: []domain.HouseholdMember{
			{Name: "Ani", Relationship: "child", Age: 9},
		},
	}
	require.NoError(t, uc.SaveProfile(ctx, user))

	doc, err := remote.Get(ctx, domain.CollectionUsers, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", doc["fullName"])
	assert.Equal(t, "islam", doc["religion"], "remote keeps the fields the row drops")

	cached, err := uc.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", cached.FullName)
	assert.Empty(t, cached.Religion, "relational projection is lossy by design")
}

func TestUpdatePushToken(t *testing.T) {
	uc, remote, auth := newUserTestStack(t)
	ctx := context.Background()

	require.NoError(t, auth.SignIn(ctx, "uid-1"))
	require.NoError(t, remote.Set(ctx, domain.CollectionUsers, "uid-1", domain.Document{
		"fullName": "Budi Santoso",
	}))

	require.NoError(t, uc.UpdatePushToken(ctx, "token-abc"))

	doc, err := remote.Get(ctx, domain.CollectionUsers, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", doc["fcmToken"])
	assert.Equal(t, "Budi Santoso", doc["fullName"], "partial update leaves other fields alone")
}

func TestLogoutClearsLocalCache(t *testing.T) {
	uc, remote, auth := newUserTestStack(t)
	ctx := context.Background()

	require.NoError(t, auth.SignIn(ctx, "uid-1"))
	require.NoError(t, remote.Set(ctx, domain.CollectionUsers, "uid-1", domain.Document{
		"fullName": "Budi Santoso",
	}))

	_, err := uc.SyncProfile(ctx)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))

	_, err = uc.GetUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
