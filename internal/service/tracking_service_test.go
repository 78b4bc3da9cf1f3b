package service

import (
	"context"
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDownloadBumpsCounterAndLogsEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := env.createContent(t, "Guide", model.StatusPublish)
	env.createMeta(t, &model.ResourceMeta{ContentID: item.ID})

	recorded, err := env.tracking.RecordDownload(ctx, item.ID, 5, "203.0.113.77")
	require.NoError(t, err)
	assert.True(t, recorded)

	meta, err := env.meta.Get(item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, meta.DownloadCount)

	var event model.ResourceEvent
	require.NoError(t, env.db.Where("resource_id = ?", item.ID).First(&event).Error)
	assert.Equal(t, model.ActionDownload, event.ActionType)
	assert.Equal(t, "203.0.113.0", event.UserIP)
	require.NotNil(t, event.UserID)
	assert.EqualValues(t, 5, *event.UserID)
}

func TestRecordDownloadDisabledByTrackingSetting(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := env.createContent(t, "Guide", model.StatusPublish)
	env.createMeta(t, &model.ResourceMeta{ContentID: item.ID})

	disabled := false
	_, err := env.settings.Save(ctx, SettingsPatch{EnableDownloadCount: &disabled})
	require.NoError(t, err)

	recorded, err := env.tracking.RecordDownload(ctx, item.ID, 0, "203.0.113.77")
	require.NoError(t, err)
	assert.False(t, recorded)

	meta, err := env.meta.Get(item.ID)
	require.NoError(t, err)
	assert.Zero(t, meta.DownloadCount)

	var count int64
	require.NoError(t, env.db.Model(&model.ResourceEvent{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordDownloadUnknownContent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tracking.RecordDownload(context.Background(), 9999, 0, "")
	assert.ErrorIs(t, err, util.ErrResourceNotFound)
}

func TestRecordDownloadWithoutMetaRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := env.createContent(t, "Bare content", model.StatusPublish)

	recorded, err := env.tracking.RecordDownload(ctx, item.ID, 0, "")
	require.NoError(t, err)
	// No counter to bump, but the event is still logged.
	assert.False(t, recorded)

	var count int64
	require.NoError(t, env.db.Model(&model.ResourceEvent{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecordViewLogsEvent(t *testing.T) {
	env := newTestEnv(t)

	env.tracking.RecordView(42, 0, "2001:db8:85a3::8a2e:370:7334")

	var event model.ResourceEvent
	require.NoError(t, env.db.Where("resource_id = ?", 42).First(&event).Error)
	assert.Equal(t, model.ActionView, event.ActionType)
	assert.Equal(t, "2001:db8:85a3::", event.UserIP)
	assert.Nil(t, event.UserID)
}
