package repository

import (
	"edu_resources_backend/internal/model"
	"edu_resources_backend/pkg/database"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a private in-memory database with the full schema and the
// default settings seeded.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createContent(t *testing.T, db *gorm.DB, title string, status model.ContentStatus, terms ...model.Term) *model.ContentItem {
	t.Helper()

	item := &model.ContentItem{
		Title:  title,
		Status: status,
		Terms:  terms,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func createMeta(t *testing.T, db *gorm.DB, meta *model.ResourceMeta) *model.ResourceMeta {
	t.Helper()

	if meta.DifficultyLevel == "" {
		meta.DifficultyLevel = model.DifficultyBeginner
	}
	require.NoError(t, db.Create(meta).Error)
	return meta
}
