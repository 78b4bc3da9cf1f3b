package service

import (
	"edu_resources_backend/internal/repository"
	"time"
)

// StatsService derives the admin dashboard aggregates from the event log and
// content metadata. All operations are pure reads.
type StatsService struct {
	Meta    *repository.ResourceMetaRepository
	Content *repository.ContentRepository
	Events  *repository.EventRepository
}

func NewStatsService(
	meta *repository.ResourceMetaRepository,
	content *repository.ContentRepository,
	events *repository.EventRepository,
) *StatsService {
	return &StatsService{Meta: meta, Content: content, Events: events}
}

func (s *StatsService) TrackingSummary() (repository.TrackingSummary, error) {
	return s.Events.Summary()
}

func (s *StatsService) TopViewed(limit int) ([]repository.TopViewedRow, error) {
	return s.Events.TopViewed(limit)
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// PublishedPerMonth returns exactly `months` buckets ending at the current
// UTC month, ascending, with zero-count months present. The expected keys
// are computed first and actual counts joined onto them, so callers never
// see a gap.
func (s *StatsService) PublishedPerMonth(months int) ([]MonthCount, error) {
	if months < 1 {
		months = 1
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	stamps, err := s.Content.PublishedCreatedSince(start)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, stamp := range stamps {
		counts[stamp.UTC().Format("2006-01")]++
	}

	series := make([]MonthCount, 0, months)
	for i := 0; i < months; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		series = append(series, MonthCount{Month: key, Count: counts[key]})
	}
	return series, nil
}

type StatsOverview struct {
	TotalMetaRecords int64                      `json:"totalMetaRecords"`
	Published        int64                      `json:"published"`
	Draft            int64                      `json:"draft"`
	Tracking         repository.TrackingSummary `json:"tracking"`
	TopViewed        []repository.TopViewedRow  `json:"topViewed"`
	PublishedByMonth []MonthCount               `json:"publishedByMonth"`
}

// Overview bundles everything the admin dashboard shows.
func (s *StatsService) Overview() (*StatsOverview, error) {
	totalMeta, err := s.Meta.Count(repository.ResourceFilter{})
	if err != nil {
		return nil, err
	}

	published, draft, err := s.Content.CountByStatus()
	if err != nil {
		return nil, err
	}

	tracking, err := s.Events.Summary()
	if err != nil {
		return nil, err
	}

	topViewed, err := s.Events.TopViewed(5)
	if err != nil {
		return nil, err
	}

	monthly, err := s.PublishedPerMonth(6)
	if err != nil {
		return nil, err
	}

	return &StatsOverview{
		TotalMetaRecords: totalMeta,
		Published:        published,
		Draft:            draft,
		Tracking:         tracking,
		TopViewed:        topViewed,
		PublishedByMonth: monthly,
	}, nil
}
