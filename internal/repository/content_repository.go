package repository

import (
	"edu_resources_backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) Create(item *model.ContentItem) error {
	return r.DB.Create(item).Error
}

func (r *ContentRepository) Save(item *model.ContentItem) error {
	return r.DB.Save(item).Error
}

func (r *ContentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ContentItem{}, id).Error
}

// FindByID returns the item regardless of status, or nil when absent.
func (r *ContentRepository) FindByID(id uint) (*model.ContentItem, error) {
	var item model.ContentItem
	err := r.DB.Preload("Terms").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindPublishedByID returns the item only when it is published.
func (r *ContentRepository) FindPublishedByID(id uint) (*model.ContentItem, error) {
	var item model.ContentItem
	err := r.DB.Preload("Terms").
		Where("status = ?", model.StatusPublish).
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs loads items with their terms, keyed by id.
func (r *ContentRepository) FindByIDs(ids []uint) (map[uint]model.ContentItem, error) {
	result := make(map[uint]model.ContentItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var items []model.ContentItem
	if err := r.DB.Preload("Terms").Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

// PublishedIDs lists ids of published content, optionally constrained to a
// taxonomy term slug. An unknown slug yields an empty set, not an error.
func (r *ContentRepository) PublishedIDs(termSlug string) ([]uint, error) {
	q := r.DB.Model(&model.ContentItem{}).Where("content_items.status = ?", model.StatusPublish)

	if termSlug != "" {
		q = q.Joins("JOIN content_terms ON content_terms.content_item_id = content_items.id").
			Joins("JOIN terms ON terms.id = content_terms.term_id").
			Where("terms.slug = ?", termSlug)
	}

	var ids []uint
	err := q.Pluck("content_items.id", &ids).Error
	return ids, err
}

// PublishedCreatedSince returns the creation timestamps of published content
// from the given instant onward. Bucketing happens in the aggregator so the
// query stays portable across backends.
func (r *ContentRepository) PublishedCreatedSince(since time.Time) ([]time.Time, error) {
	var stamps []time.Time
	err := r.DB.Model(&model.ContentItem{}).
		Where("status = ? AND created_at >= ?", model.StatusPublish, since).
		Pluck("created_at", &stamps).Error
	return stamps, err
}

// CountByStatus returns published and draft totals.
func (r *ContentRepository) CountByStatus() (published, draft int64, err error) {
	if err = r.DB.Model(&model.ContentItem{}).Where("status = ?", model.StatusPublish).Count(&published).Error; err != nil {
		return
	}
	err = r.DB.Model(&model.ContentItem{}).Where("status = ?", model.StatusDraft).Count(&draft).Error
	return
}
