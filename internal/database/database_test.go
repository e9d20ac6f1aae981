package database

import (
	"testing"

	"starcatalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost:5432/db"))
	assert.True(t, IsPostgres("postgresql://u:p@localhost:5432/db"))
	assert.False(t, IsPostgres("/tmp/test.db"))
	assert.False(t, IsPostgres(":memory:"))
}

func TestConnectAndMigrate_SQLiteMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "people", "planets", "favorites"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestMigrate_NoForeignKeyCheckOnFavorites(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))

	planetID := int64(999999)
	fav := domain.Favorite{UserID: 1, PlanetID: &planetID}
	require.NoError(t, db.Create(&fav).Error)
	assert.NotZero(t, fav.ID)
}
