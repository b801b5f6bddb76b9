package memories

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

func setupMemoriesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS memories (
  id TEXT PRIMARY KEY,
  title TEXT,
  caption TEXT,
  date DATETIME NOT NULL,
  media_url TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func insertMemory(t *testing.T, db *gorm.DB, id string, date time.Time) {
	t.Helper()
	row := &models.Memory{
		ID:   uuid.MustParse(id),
		Date: date,
	}
	require.NoError(t, db.Create(row).Error)
}

func TestRepositoryCreateAndList(t *testing.T) {
	db := setupMemoriesTestDB(t)
	repo := &Repository{db: db}

	title := "Beach Day"
	created, err := repo.Create(context.Background(), &models.Memory{
		ID:    uuid.New(),
		Title: &title,
		Date:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	rows, err := repo.ListOrdered(context.Background(), Ascending, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].ID)
	require.NotNil(t, rows[0].Title)
	assert.Equal(t, title, *rows[0].Title)
}

func TestRepositoryListOrderedByDate(t *testing.T) {
	db := setupMemoriesTestDB(t)
	repo := &Repository{db: db}

	insertMemory(t, db, "33333333-3333-3333-3333-333333333333", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	insertMemory(t, db, "11111111-1111-1111-1111-111111111111", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	insertMemory(t, db, "22222222-2222-2222-2222-222222222222", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	asc, err := repo.ListOrdered(context.Background(), Ascending, 0)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", asc[0].ID.String())
	assert.Equal(t, "33333333-3333-3333-3333-333333333333", asc[2].ID.String())

	desc, err := repo.ListOrdered(context.Background(), Descending, 0)
	require.NoError(t, err)
	assert.Equal(t, "33333333-3333-3333-3333-333333333333", desc[0].ID.String())
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", desc[2].ID.String())
}

func TestRepositoryListTieBreaksOnID(t *testing.T) {
	db := setupMemoriesTestDB(t)
	repo := &Repository{db: db}

	sameDay := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	insertMemory(t, db, "bbbbbbbb-0000-0000-0000-000000000000", sameDay)
	insertMemory(t, db, "aaaaaaaa-0000-0000-0000-000000000000", sameDay)

	rows, err := repo.ListOrdered(context.Background(), Ascending, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "aaaaaaaa-0000-0000-0000-000000000000", rows[0].ID.String())
	assert.Equal(t, "bbbbbbbb-0000-0000-0000-000000000000", rows[1].ID.String())
}

func TestRepositoryListHonorsLimit(t *testing.T) {
	db := setupMemoriesTestDB(t)
	repo := &Repository{db: db}

	for i, id := range []string{
		"11111111-1111-1111-1111-111111111111",
		"22222222-2222-2222-2222-222222222222",
		"33333333-3333-3333-3333-333333333333",
	} {
		insertMemory(t, db, id, time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC))
	}

	rows, err := repo.ListOrdered(context.Background(), Descending, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "33333333-3333-3333-3333-333333333333", rows[0].ID.String())
}
