package repository

import (
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

// Record appends one event. An unknown action type writes nothing and
// returns id 0 without an error. The raw address is anonymized before it
// touches the table; a user id of zero is stored as NULL.
func (r *EventRepository) Record(resourceID uint, action model.ActionType, userID uint, rawIP string) (uint, error) {
	if !action.Valid() {
		return 0, nil
	}

	event := model.ResourceEvent{
		ResourceID: resourceID,
		ActionType: action,
		ActionDate: time.Now().UTC(),
		UserIP:     util.AnonymizeIP(rawIP),
	}
	if userID != 0 {
		event.UserID = &userID
	}

	if err := r.DB.Create(&event).Error; err != nil {
		return 0, err
	}
	return event.ID, nil
}

type TrackingSummary struct {
	Views     int64 `json:"views"`
	Downloads int64 `json:"downloads"`
}

func (r *EventRepository) Summary() (TrackingSummary, error) {
	var rows []struct {
		ActionType model.ActionType
		Total      int64
	}
	err := r.DB.Model(&model.ResourceEvent{}).
		Select("action_type, COUNT(*) AS total").
		Group("action_type").
		Scan(&rows).Error
	if err != nil {
		return TrackingSummary{}, err
	}

	var summary TrackingSummary
	for _, row := range rows {
		switch row.ActionType {
		case model.ActionView:
			summary.Views = row.Total
		case model.ActionDownload:
			summary.Downloads = row.Total
		}
	}
	return summary, nil
}

// TopViewedRow joins view counts against content titles. Title is nil for
// events whose content item no longer exists.
type TopViewedRow struct {
	ResourceID uint    `json:"resourceId"`
	ViewCount  int64   `json:"viewCount"`
	Title      *string `json:"title"`
}

func (r *EventRepository) TopViewed(limit int) ([]TopViewedRow, error) {
	if limit < 1 {
		limit = 5
	}

	var rows []TopViewedRow
	err := r.DB.Table("resource_events").
		Select("resource_events.resource_id AS resource_id, COUNT(*) AS view_count, content_items.title AS title").
		Joins("LEFT JOIN content_items ON content_items.id = resource_events.resource_id AND content_items.deleted_at IS NULL").
		Where("resource_events.action_type = ?", model.ActionView).
		Group("resource_events.resource_id, content_items.title").
		Order("view_count DESC, resource_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
