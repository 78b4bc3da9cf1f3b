package model

import "time"

type ResourceType string

const (
	TypeArticle     ResourceType = "article"
	TypeVideo       ResourceType = "video"
	TypePodcast     ResourceType = "podcast"
	TypePDF         ResourceType = "pdf"
	TypeCourse      ResourceType = "course"
	TypeBook        ResourceType = "book"
	TypeInfographic ResourceType = "infographic"
	TypeTool        ResourceType = "tool"
	TypeOther       ResourceType = "other"
)

var resourceTypes = map[ResourceType]bool{
	TypeArticle:     true,
	TypeVideo:       true,
	TypePodcast:     true,
	TypePDF:         true,
	TypeCourse:      true,
	TypeBook:        true,
	TypeInfographic: true,
	TypeTool:        true,
	TypeOther:       true,
}

func (t ResourceType) Valid() bool {
	return resourceTypes[t]
}

// NormalizeResourceType maps unknown values to the empty (unset) type.
func NormalizeResourceType(s string) ResourceType {
	t := ResourceType(s)
	if t.Valid() {
		return t
	}
	return ""
}

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// NormalizeDifficulty falls back to the given default for unknown values.
func NormalizeDifficulty(s string, fallback DifficultyLevel) DifficultyLevel {
	d := DifficultyLevel(s)
	if d.Valid() {
		return d
	}
	if fallback.Valid() {
		return fallback
	}
	return DifficultyBeginner
}

// ResourceMeta augments a content item with resource attributes.
// At most one row exists per content item.
type ResourceMeta struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID       uint            `gorm:"uniqueIndex;not null" json:"contentId"`
	ResourceURL     string          `gorm:"size:2083" json:"resourceUrl"`
	ResourceType    ResourceType    `gorm:"size:50;index" json:"resourceType"`
	DifficultyLevel DifficultyLevel `gorm:"size:20;default:beginner;index" json:"difficultyLevel"`
	DurationMinutes int             `gorm:"default:0" json:"durationMinutes"`
	DownloadCount   int64           `gorm:"default:0" json:"downloadCount"`
	IsFeatured      bool            `gorm:"index" json:"isFeatured"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (ResourceMeta) TableName() string {
	return "resource_meta"
}

// ResourceMetaPatch is a sparse update: nil fields are left untouched.
type ResourceMetaPatch struct {
	ResourceURL     *string          `json:"resourceUrl"`
	ResourceType    *ResourceType    `json:"resourceType"`
	DifficultyLevel *DifficultyLevel `json:"difficultyLevel"`
	DurationMinutes *int             `json:"durationMinutes"`
	IsFeatured      *bool            `json:"isFeatured"`
}
