package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"garden.db", "garden.db?_foreign_keys=on"},
		{"garden.db?cache=shared", "garden.db?cache=shared&_foreign_keys=on"},
		{"garden.db?_foreign_keys=off", "garden.db?_foreign_keys=off"},
		{"garden.db?_fk=1", "garden.db?_fk=1"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, SQLiteDSN(tt.file))
		})
	}
}

func TestOpen(t *testing.T) {
	database, err := Open(sqlite.Open(SQLiteDSN(filepath.Join(t.TempDir(), "test.db"))))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	assert.True(t, database.Config.TranslateError)
	assert.True(t, database.Config.SkipDefaultTransaction)

	var foreignKeys int
	require.NoError(t, database.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	assert.Equal(t, 1, foreignKeys)
}
