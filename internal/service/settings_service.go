package service

import (
	"context"
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/repository"
	"edu_resources_backend/internal/util"
	"strconv"
)

// Settings are the four persisted configuration scalars. They are loaded per
// request rather than held in process-wide state.
type Settings struct {
	ResourcesPerPage    int                   `json:"resourcesPerPage"`
	EnableRestAPI       bool                  `json:"enableRestApi"`
	DefaultDifficulty   model.DifficultyLevel `json:"defaultDifficulty"`
	EnableDownloadCount bool                  `json:"enableDownloadCount"`
}

// SettingsPatch is a sparse settings update; nil fields keep current values.
type SettingsPatch struct {
	ResourcesPerPage    *int    `json:"resourcesPerPage"`
	EnableRestAPI       *bool   `json:"enableRestApi"`
	DefaultDifficulty   *string `json:"defaultDifficulty"`
	EnableDownloadCount *bool   `json:"enableDownloadCount"`
}

func DefaultSettings() Settings {
	return Settings{
		ResourcesPerPage:    12,
		EnableRestAPI:       true,
		DefaultDifficulty:   model.DifficultyBeginner,
		EnableDownloadCount: true,
	}
}

type SettingsService struct {
	Repo *repository.SettingRepository
}

func NewSettingsService(repo *repository.SettingRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

// Load parses the stored values, normalizing anything missing or malformed
// to its default rather than failing the request.
func (s *SettingsService) Load(ctx context.Context) (Settings, error) {
	settings := DefaultSettings()

	values, err := s.Repo.GetAll(ctx)
	if err != nil {
		return settings, err
	}

	if raw, ok := values[model.SettingResourcesPerPage]; ok {
		if n, err := strconv.Atoi(raw); err == nil {
			settings.ResourcesPerPage = clampPerPage(n)
		}
	}
	if raw, ok := values[model.SettingEnableRestAPI]; ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			settings.EnableRestAPI = b
		}
	}
	if raw, ok := values[model.SettingDefaultDifficulty]; ok {
		settings.DefaultDifficulty = model.NormalizeDifficulty(raw, model.DifficultyBeginner)
	}
	if raw, ok := values[model.SettingEnableDownloadCount]; ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			settings.EnableDownloadCount = b
		}
	}

	return settings, nil
}

// Save validates and persists the supplied fields. Out-of-range values are
// rejected here because this is an explicit admin write, not untrusted
// browse input.
func (s *SettingsService) Save(ctx context.Context, patch SettingsPatch) (Settings, error) {
	if patch.ResourcesPerPage != nil {
		n := *patch.ResourcesPerPage
		if n < 1 || n > 100 {
			return Settings{}, util.ErrInvalidSetting
		}
		if err := s.Repo.Set(ctx, model.SettingResourcesPerPage, strconv.Itoa(n)); err != nil {
			return Settings{}, err
		}
	}
	if patch.DefaultDifficulty != nil {
		d := model.DifficultyLevel(*patch.DefaultDifficulty)
		if !d.Valid() {
			return Settings{}, util.ErrInvalidSetting
		}
		if err := s.Repo.Set(ctx, model.SettingDefaultDifficulty, string(d)); err != nil {
			return Settings{}, err
		}
	}
	if patch.EnableRestAPI != nil {
		if err := s.Repo.Set(ctx, model.SettingEnableRestAPI, strconv.FormatBool(*patch.EnableRestAPI)); err != nil {
			return Settings{}, err
		}
	}
	if patch.EnableDownloadCount != nil {
		if err := s.Repo.Set(ctx, model.SettingEnableDownloadCount, strconv.FormatBool(*patch.EnableDownloadCount)); err != nil {
			return Settings{}, err
		}
	}

	return s.Load(ctx)
}

func clampPerPage(n int) int {
	if n < 1 {
		return 1
	}
	if n > 100 {
		return 100
	}
	return n
}
