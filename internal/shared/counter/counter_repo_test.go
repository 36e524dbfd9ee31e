package counter_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mirak10/PeopleIQ/internal/shared/counter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "counter.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE employee_counters (
		counter_type TEXT PRIMARY KEY,
		last_value INTEGER NOT NULL,
		updated_at DATETIME NOT NULL
	)`).Error)
	return db
}

func TestRepository_GetNextValue(t *testing.T) {
	repo := counter.NewRepository(openTestDB(t))
	ctx := context.Background()

	first, err := repo.GetNextValue(ctx, counter.EmployeeCode)
	require.NoError(t, err)
	second, err := repo.GetNextValue(ctx, counter.EmployeeCode)
	require.NoError(t, err)
	other, err := repo.GetNextValue(ctx, "other")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(1), other)
}

func TestFormatEmployeeCode(t *testing.T) {
	assert.Equal(t, "EMP-000042", counter.FormatEmployeeCode(42))
	assert.Equal(t, "EMP-1234567", counter.FormatEmployeeCode(1234567))
}
