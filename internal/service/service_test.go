package service

import (
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/repository"
	"edu_resources_backend/pkg/database"
	"edu_resources_backend/pkg/logger"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// testEnv wires the full service graph over one test database.
type testEnv struct {
	db       *gorm.DB
	meta     *repository.ResourceMetaRepository
	content  *repository.ContentRepository
	terms    *repository.TermRepository
	events   *repository.EventRepository
	settings *SettingsService
	query    *ResourceQueryService
	tracking *TrackingService
	stats    *StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	meta := repository.NewResourceMetaRepository(db)
	content := repository.NewContentRepository(db)
	terms := repository.NewTermRepository(db)
	events := repository.NewEventRepository(db)
	settings := NewSettingsService(repository.NewSettingRepository(db, nil))

	return &testEnv{
		db:       db,
		meta:     meta,
		content:  content,
		terms:    terms,
		events:   events,
		settings: settings,
		query:    NewResourceQueryService(meta, content, settings),
		tracking: NewTrackingService(meta, content, events, settings),
		stats:    NewStatsService(meta, content, events),
	}
}

func (e *testEnv) createContent(t *testing.T, title string, status model.ContentStatus, terms ...model.Term) *model.ContentItem {
	t.Helper()

	item := &model.ContentItem{Title: title, Status: status, Terms: terms}
	require.NoError(t, e.db.Create(item).Error)
	return item
}

func (e *testEnv) createMeta(t *testing.T, meta *model.ResourceMeta) *model.ResourceMeta {
	t.Helper()

	if meta.DifficultyLevel == "" {
		meta.DifficultyLevel = model.DifficultyBeginner
	}
	require.NoError(t, e.db.Create(meta).Error)
	return meta
}
