package service

import (
	"context"
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReturnsSeededDefaults(t *testing.T) {
	env := newTestEnv(t)

	settings, err := env.settings.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, settings.ResourcesPerPage)
	assert.True(t, settings.EnableRestAPI)
	assert.Equal(t, model.DifficultyBeginner, settings.DefaultDifficulty)
	assert.True(t, settings.EnableDownloadCount)
}

func TestLoadNormalizesCorruptValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.db.Save(&model.Setting{Key: model.SettingResourcesPerPage, Value: "not-a-number"}).Error)
	require.NoError(t, env.db.Save(&model.Setting{Key: model.SettingDefaultDifficulty, Value: "expert"}).Error)

	settings, err := env.settings.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, settings.ResourcesPerPage)
	assert.Equal(t, model.DifficultyBeginner, settings.DefaultDifficulty)
}

func TestLoadClampsStoredPerPage(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.db.Save(&model.Setting{Key: model.SettingResourcesPerPage, Value: "5000"}).Error)

	settings, err := env.settings.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, settings.ResourcesPerPage)
}

func TestSavePersistsValidPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	perPage := 24
	difficulty := "advanced"
	disabled := false
	settings, err := env.settings.Save(ctx, SettingsPatch{
		ResourcesPerPage:    &perPage,
		DefaultDifficulty:   &difficulty,
		EnableDownloadCount: &disabled,
	})
	require.NoError(t, err)
	assert.Equal(t, 24, settings.ResourcesPerPage)
	assert.Equal(t, model.DifficultyAdvanced, settings.DefaultDifficulty)
	assert.False(t, settings.EnableDownloadCount)
	// Untouched fields keep their values.
	assert.True(t, settings.EnableRestAPI)
}

func TestSaveRejectsOutOfRangePerPage(t *testing.T) {
	env := newTestEnv(t)

	tooBig := 150
	_, err := env.settings.Save(context.Background(), SettingsPatch{ResourcesPerPage: &tooBig})
	assert.ErrorIs(t, err, util.ErrInvalidSetting)

	zero := 0
	_, err = env.settings.Save(context.Background(), SettingsPatch{ResourcesPerPage: &zero})
	assert.ErrorIs(t, err, util.ErrInvalidSetting)
}

func TestSaveRejectsUnknownDifficulty(t *testing.T) {
	env := newTestEnv(t)

	bogus := "expert"
	_, err := env.settings.Save(context.Background(), SettingsPatch{DefaultDifficulty: &bogus})
	assert.ErrorIs(t, err, util.ErrInvalidSetting)
}
