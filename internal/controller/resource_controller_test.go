package controller

import (
	"context"
	"edu_resources_backend/internal/middleware"
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/repository"
	"edu_resources_backend/internal/service"
	"edu_resources_backend/pkg/database"
	"edu_resources_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

var testDBSeq int64

type fixture struct {
	db       *gorm.DB
	router   *gin.Engine
	settings *service.SettingsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:ctrltest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	meta := repository.NewResourceMetaRepository(db)
	content := repository.NewContentRepository(db)
	events := repository.NewEventRepository(db)
	settings := service.NewSettingsService(repository.NewSettingRepository(db, nil))
	query := service.NewResourceQueryService(meta, content, settings)
	tracking := service.NewTrackingService(meta, content, events, settings)

	rc := NewResourceController(query, tracking)

	router := gin.New()
	public := router.Group("/api/resources")
	public.Use(middleware.RESTEnabled(settings))
	{
		public.GET("", rc.GetResources)
		public.GET("/:id", rc.GetResource)
		public.POST("/:id/download", rc.RecordDownload)
	}

	return &fixture{db: db, router: router, settings: settings}
}

func (f *fixture) seedResource(t *testing.T, title string) *model.ContentItem {
	t.Helper()

	item := &model.ContentItem{Title: title, Status: model.StatusPublish}
	require.NoError(t, f.db.Create(item).Error)
	require.NoError(t, f.db.Create(&model.ResourceMeta{
		ContentID:       item.ID,
		DifficultyLevel: model.DifficultyBeginner,
	}).Error)
	return item
}

func (f *fixture) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGetResourcesSetsPaginationHeaders(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 15; i++ {
		f.seedResource(t, fmt.Sprintf("Resource %d", i))
	}

	w := f.do(http.MethodGet, "/api/resources?per_page=10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "15", w.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", w.Header().Get("X-Total-Pages"))

	var body struct {
		Data struct {
			List []json.RawMessage `json:"list"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.List, 10)
}

func TestGetResourceRecordsView(t *testing.T) {
	f := newFixture(t)
	item := f.seedResource(t, "Guide")

	w := f.do(http.MethodGet, fmt.Sprintf("/api/resources/%d", item.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var views int64
	require.NoError(t, f.db.Model(&model.ResourceEvent{}).
		Where("resource_id = ? AND action_type = ?", item.ID, model.ActionView).
		Count(&views).Error)
	assert.EqualValues(t, 1, views)
}

func TestGetResourceUnknownID(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/resources/9999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodGet, "/api/resources/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadReportsRecordedFlag(t *testing.T) {
	f := newFixture(t)
	item := f.seedResource(t, "Guide")

	w := f.do(http.MethodPost, fmt.Sprintf("/api/resources/%d/download", item.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Recorded bool `json:"recorded"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.Recorded)

	// Flip the tracking switch off and the same call reports recorded=false.
	disabled := false
	_, err := f.settings.Save(context.Background(), service.SettingsPatch{EnableDownloadCount: &disabled})
	require.NoError(t, err)

	w = f.do(http.MethodPost, fmt.Sprintf("/api/resources/%d/download", item.ID))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Data.Recorded)
}

func TestDisabledRestAPIAnswers404(t *testing.T) {
	f := newFixture(t)
	item := f.seedResource(t, "Guide")

	disabled := false
	_, err := f.settings.Save(context.Background(), service.SettingsPatch{EnableRestAPI: &disabled})
	require.NoError(t, err)

	for _, path := range []string{
		"/api/resources",
		fmt.Sprintf("/api/resources/%d", item.ID),
	} {
		w := f.do(http.MethodGet, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
