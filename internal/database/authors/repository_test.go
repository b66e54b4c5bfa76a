package authors

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aosadchuk/library-catalog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_authors_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Author{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateAuthor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	author, err := repo.CreateAuthor("Andriy", "Osadchuk")

	require.NoError(t, err)
	assert.NotZero(t, author.ID)
	assert.Equal(t, "Andriy", author.FirstName)
	assert.Equal(t, "Osadchuk", author.LastName)
}

func TestRepository_CreateAuthor_Roundtrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateAuthor("Andriy", "Osadchuk")
	require.NoError(t, err)

	fetched, err := repo.GetAuthorByID(created.ID)

	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestRepository_ListAuthors(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateAuthor("Dmitriy", "First")
	require.NoError(t, err)
	_, err = repo.CreateAuthor("Taras", "Second")
	require.NoError(t, err)

	list, err := repo.ListAuthors()

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRepository_UpdateAuthor_OverwritesAllFields(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateAuthor("Andriy", "Osadchuk")
	require.NoError(t, err)

	// Replace-all contract: an empty last name is written, not skipped
	updated, err := repo.UpdateAuthor(created.ID, UpdateParams{FirstName: "Taras", LastName: ""})

	require.NoError(t, err)
	assert.Equal(t, "Taras", updated.FirstName)
	assert.Equal(t, "", updated.LastName)
}

func TestRepository_UpdateAuthor_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpdateAuthor(999, UpdateParams{FirstName: "Ghost", LastName: "Writer"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteAuthor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateAuthor("Andriy", "Osadchuk")
	require.NoError(t, err)

	removed, err := repo.DeleteAuthor(created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = repo.GetAuthorByID(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteAuthor_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.DeleteAuthor(999)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
