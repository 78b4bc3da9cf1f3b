package model

import "time"

// Setting keys. Values are stored as strings and parsed on read.
const (
	SettingResourcesPerPage    = "resources_per_page"
	SettingEnableRestAPI       = "enable_rest_api"
	SettingDefaultDifficulty   = "default_difficulty"
	SettingEnableDownloadCount = "enable_download_count"
)

type Setting struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"size:255" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Setting) TableName() string {
	return "settings"
}
