package database

import (
	"testing"

	"rewear/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCacheConstants(t *testing.T) {
	assert.Equal(t, 0, GENERAL_CACHE_INDEX)
	assert.Equal(t, 1, SESSION_CACHE_INDEX)
	assert.Equal(t, 2, USER_CACHE_INDEX)
}

func TestNewTestDBMigratesModels(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"users", "user_roles", "clothes", "rentals"} {
		assert.True(t, db.SQL.Migrator().HasTable(table), table)
	}
}

func TestCreateAssignsUUID(t *testing.T) {
	db := NewTestDB(t)

	user := &models.User{Email: "id@dtu.ac.in", PasswordHash: "x", FullName: "Id Assign"}
	assert.NoError(t, db.SQL.Create(user).Error)
	assert.NotEqual(t, uuid.Nil, user.ID, "insert assigns the ID without a database default")

	var reloaded models.User
	assert.NoError(t, db.SQL.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, user.ID, reloaded.ID)
}

func TestTestDBSoftDelete(t *testing.T) {
	db := NewTestDB(t)

	user := &models.User{Email: "soft@dtu.ac.in", PasswordHash: "x", FullName: "Soft Delete"}
	assert.NoError(t, db.SQL.Create(user).Error)

	assert.NoError(t, db.SQL.Delete(user).Error)

	var count int64
	db.SQL.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count, "soft deleted rows are hidden from default queries")

	db.SQL.Unscoped().Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count, "soft deleted rows remain in the table")
}
