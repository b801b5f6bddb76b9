package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/memorywall/backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  display_name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  last_login_at DATETIME,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		DisplayName:  "A",
		PasswordHash: "$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := &Repository{db: db}
	seeded := seedUser(t, db, "a@memorywall.local")

	found, err := repo.FindByEmail(context.Background(), "A@MemoryWall.LOCAL")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)
}

func TestFindByEmailNotFound(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := &Repository{db: db}

	_, err := repo.FindByEmail(context.Background(), "ghost@memorywall.local")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByEmail(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLastLogin(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := &Repository{db: db}
	seeded := seedUser(t, db, "a@memorywall.local")

	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(context.Background(), seeded.ID, at))

	found, err := repo.FindByEmail(context.Background(), seeded.Email)
	require.NoError(t, err)
	require.NotNil(t, found.LastLoginAt)
	assert.True(t, found.LastLoginAt.Equal(at))
}
