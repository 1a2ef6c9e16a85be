package settings

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/lectio/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_settings_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Save_Upserts(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Save(map[string]string{"theme": "light"}))
	require.NoError(t, repo.Save(map[string]string{"theme": "dark"}))

	setting, err := repo.GetSetting("theme")
	require.NoError(t, err)
	assert.Equal(t, "theme", setting.Key)
	assert.Equal(t, "dark", setting.Value)
}

func TestUpsert(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, Upsert(repo.db, "backup_schedule", "0 3 * * *"))
	require.NoError(t, Upsert(repo.db, "backup_schedule", "0 */6 * * *"))

	var count int64
	require.NoError(t, repo.db.Model(&entities.Setting{}).Where("key = ?", "backup_schedule").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	value, ok, err := repo.Load("backup_schedule")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0 */6 * * *", value)
}

func TestRepository_Load(t *testing.T) {
	t.Run("missing key is not an error", func(t *testing.T) {
		repo, cleanup := setupTestDB(t)
		defer cleanup()

		value, ok, err := repo.Load(entities.SettingKeyFavorites)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("returns stored value", func(t *testing.T) {
		repo, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repo.Save(map[string]string{entities.SettingKeyNotes: `[{"note":"x"}]`}))

		value, ok, err := repo.Load(entities.SettingKeyNotes)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"note":"x"}]`, value)
	})
}

func TestRepository_Save(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Save(map[string]string{entities.SettingKeyFavorites: "[]"}))

	err := repo.Save(map[string]string{
		entities.SettingKeyFavorites:  `[{"id":"Juan 3:16"}]`,
		entities.SettingKeyHighlights: "[]",
	})
	require.NoError(t, err)

	value, ok, err := repo.Load(entities.SettingKeyFavorites)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"Juan 3:16"}]`, value)

	value, ok, err = repo.Load(entities.SettingKeyHighlights)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}
