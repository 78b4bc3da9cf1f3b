package repository

import (
	"context"
	"edu_resources_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllReturnsSeededDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db, nil)

	values, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12", values[model.SettingResourcesPerPage])
	assert.Equal(t, "true", values[model.SettingEnableRestAPI])
	assert.Equal(t, "beginner", values[model.SettingDefaultDifficulty])
	assert.Equal(t, "true", values[model.SettingEnableDownloadCount])
}

func TestSetPersistsWithoutCache(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db, nil)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, model.SettingResourcesPerPage, "24"))

	values, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "24", values[model.SettingResourcesPerPage])
}
