package service

import (
	"context"
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/repository"
	"edu_resources_backend/internal/util"
	"edu_resources_backend/pkg/logger"
	"edu_resources_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// TrackingService records view/download activity. Event writes are
// fire-and-forget from the caller's perspective: a failed write is logged
// and never fails the surrounding request.
type TrackingService struct {
	Meta     *repository.ResourceMetaRepository
	Content  *repository.ContentRepository
	Events   *repository.EventRepository
	Settings *SettingsService
}

func NewTrackingService(
	meta *repository.ResourceMetaRepository,
	content *repository.ContentRepository,
	events *repository.EventRepository,
	settings *SettingsService,
) *TrackingService {
	return &TrackingService{
		Meta:     meta,
		Content:  content,
		Events:   events,
		Settings: settings,
	}
}

// RecordDownload bumps the counter and logs a download event. Returns false
// without error when download tracking is disabled; ErrResourceNotFound when
// the content item does not exist; false when no meta row was there to bump.
func (s *TrackingService) RecordDownload(ctx context.Context, contentID uint, userID uint, rawIP string) (bool, error) {
	settings, err := s.Settings.Load(ctx)
	if err != nil {
		return false, err
	}
	if !settings.EnableDownloadCount {
		return false, nil
	}

	content, err := s.Content.FindByID(contentID)
	if err != nil {
		return false, err
	}
	if content == nil {
		return false, util.ErrResourceNotFound
	}

	updated, err := s.Meta.IncrementDownloadCount(contentID)
	if err != nil {
		return false, err
	}

	s.logEvent(contentID, model.ActionDownload, userID, rawIP)
	return updated, nil
}

// RecordView logs a view event. Nothing here can fail the request.
func (s *TrackingService) RecordView(contentID uint, userID uint, rawIP string) {
	s.logEvent(contentID, model.ActionView, userID, rawIP)
}

func (s *TrackingService) logEvent(resourceID uint, action model.ActionType, userID uint, rawIP string) {
	id, err := s.Events.Record(resourceID, action, userID, rawIP)
	if err != nil {
		logger.Log.Warn("event write failed",
			zap.Uint("resourceId", resourceID),
			zap.String("action", string(action)),
			zap.Error(err))
		return
	}
	if id != 0 {
		monitoring.ResourceEventCounter.WithLabelValues(string(action)).Inc()
	}
}
