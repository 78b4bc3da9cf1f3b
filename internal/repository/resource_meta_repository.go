package repository

import (
	"edu_resources_backend/internal/model"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// resourceSortColumns whitelists the fields exposed for ordering. Anything
// else falls back to created_at so external input never reaches the SQL text.
var resourceSortColumns = map[string]string{
	"created_at":       "created_at",
	"download_count":   "download_count",
	"duration_minutes": "duration_minutes",
	"id":               "id",
}

// ResourceFilter narrows List/Count. Zero values mean "no filter". ContentIDs
// is an opaque constraint resolved upstream (published status, taxonomy term).
type ResourceFilter struct {
	Type       model.ResourceType
	Difficulty model.DifficultyLevel
	Featured   *bool
	ContentIDs []uint

	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

type ResourceMetaRepository struct {
	DB *gorm.DB
}

func NewResourceMetaRepository(db *gorm.DB) *ResourceMetaRepository {
	return &ResourceMetaRepository{DB: db}
}

// Get returns the meta row for a content item, or nil when none exists.
func (r *ResourceMetaRepository) Get(contentID uint) (*model.ResourceMeta, error) {
	var meta model.ResourceMeta
	err := r.DB.Where("content_id = ?", contentID).First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// Upsert updates only the supplied patch fields when a row exists for the
// content item, and inserts a full row otherwise.
func (r *ResourceMetaRepository) Upsert(contentID uint, patch model.ResourceMetaPatch) error {
	existing, err := r.Get(contentID)
	if err != nil {
		return err
	}

	if existing == nil {
		meta := model.ResourceMeta{ContentID: contentID}
		applyPatch(&meta, patch)
		if meta.DifficultyLevel == "" {
			meta.DifficultyLevel = model.DifficultyBeginner
		}
		return r.DB.Create(&meta).Error
	}

	updates := patchUpdates(patch)
	updates["updated_at"] = time.Now()
	return r.DB.Model(&model.ResourceMeta{}).
		Where("content_id = ?", contentID).
		Updates(updates).Error
}

func applyPatch(meta *model.ResourceMeta, patch model.ResourceMetaPatch) {
	if patch.ResourceURL != nil {
		meta.ResourceURL = *patch.ResourceURL
	}
	if patch.ResourceType != nil {
		meta.ResourceType = *patch.ResourceType
	}
	if patch.DifficultyLevel != nil {
		meta.DifficultyLevel = *patch.DifficultyLevel
	}
	if patch.DurationMinutes != nil {
		meta.DurationMinutes = *patch.DurationMinutes
	}
	if patch.IsFeatured != nil {
		meta.IsFeatured = *patch.IsFeatured
	}
}

func patchUpdates(patch model.ResourceMetaPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.ResourceURL != nil {
		updates["resource_url"] = *patch.ResourceURL
	}
	if patch.ResourceType != nil {
		updates["resource_type"] = *patch.ResourceType
	}
	if patch.DifficultyLevel != nil {
		updates["difficulty_level"] = *patch.DifficultyLevel
	}
	if patch.DurationMinutes != nil {
		updates["duration_minutes"] = *patch.DurationMinutes
	}
	if patch.IsFeatured != nil {
		updates["is_featured"] = *patch.IsFeatured
	}
	return updates
}

func (r *ResourceMetaRepository) Delete(contentID uint) error {
	return r.DB.Where("content_id = ?", contentID).Delete(&model.ResourceMeta{}).Error
}

// IncrementDownloadCount bumps the counter in a single statement. Returns
// false without error when no row exists for the content item.
func (r *ResourceMetaRepository) IncrementDownloadCount(contentID uint) (bool, error) {
	tx := r.DB.Model(&model.ResourceMeta{}).
		Where("content_id = ?", contentID).
		Update("download_count", gorm.Expr("download_count + 1"))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ResourceMetaRepository) applyFilter(q *gorm.DB, f ResourceFilter) *gorm.DB {
	if f.Type != "" {
		q = q.Where("resource_type = ?", f.Type)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty_level = ?", f.Difficulty)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	if len(f.ContentIDs) > 0 {
		q = q.Where("content_id IN ?", f.ContentIDs)
	}
	return q
}

// List returns one page of meta rows ordered by the whitelisted sort field.
func (r *ResourceMetaRepository) List(f ResourceFilter) ([]model.ResourceMeta, error) {
	column, ok := resourceSortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		direction = "ASC"
	}

	perPage := f.PerPage
	if perPage < 1 {
		perPage = 1
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	var rows []model.ResourceMeta
	err := r.applyFilter(r.DB.Model(&model.ResourceMeta{}), f).
		Order(column + " " + direction).
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rows).Error
	return rows, err
}

// Count applies the same filter semantics as List without pagination.
func (r *ResourceMetaRepository) Count(f ResourceFilter) (int64, error) {
	var total int64
	err := r.applyFilter(r.DB.Model(&model.ResourceMeta{}), f).Count(&total).Error
	return total, err
}
