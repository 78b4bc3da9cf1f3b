package model

type ContentStatus string

const (
	StatusPublish ContentStatus = "publish"
	StatusDraft   ContentStatus = "draft"
)

func NormalizeContentStatus(s string) ContentStatus {
	if ContentStatus(s) == StatusPublish {
		return StatusPublish
	}
	return StatusDraft
}

// ContentItem is the title/body entity a ResourceMeta row augments.
type ContentItem struct {
	BaseModel
	Title        string        `gorm:"size:255;not null" json:"title"`
	Excerpt      string        `gorm:"size:1000" json:"excerpt"`
	Permalink    string        `gorm:"size:255" json:"permalink"`
	ThumbnailURL string        `gorm:"size:255" json:"thumbnailUrl"`
	Status       ContentStatus `gorm:"size:20;default:draft;index" json:"status"`
	Terms        []Term        `gorm:"many2many:content_terms" json:"terms,omitempty"`
}

func (ContentItem) TableName() string {
	return "content_items"
}
