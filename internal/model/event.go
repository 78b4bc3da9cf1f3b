package model

import "time"

type ActionType string

const (
	ActionView     ActionType = "view"
	ActionDownload ActionType = "download"
)

func (a ActionType) Valid() bool {
	return a == ActionView || a == ActionDownload
}

// ResourceEvent is one recorded view or download. The table is append-only
// and resource_id carries no foreign key: content may be deleted after
// events are logged, so dangling references are expected.
type ResourceEvent struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ResourceID uint       `gorm:"index;not null" json:"resourceId"`
	UserID     *uint      `gorm:"index" json:"userId"`
	ActionType ActionType `gorm:"size:20;not null;index" json:"actionType"`
	ActionDate time.Time  `gorm:"index;not null" json:"actionDate"`
	UserIP     string     `gorm:"size:64" json:"-"`
}

func (ResourceEvent) TableName() string {
	return "resource_events"
}
