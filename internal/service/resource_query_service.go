package service

import (
	"context"
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/repository"
	"edu_resources_backend/internal/util"
	"time"
)

// ResourceQueryService is the boundary between untrusted request parameters
// and the meta store: it whitelists enums, clamps pagination, resolves the
// category slug into a content-id constraint and joins meta rows with their
// published content for the response.
type ResourceQueryService struct {
	Meta     *repository.ResourceMetaRepository
	Content  *repository.ContentRepository
	Settings *SettingsService
}

func NewResourceQueryService(
	meta *repository.ResourceMetaRepository,
	content *repository.ContentRepository,
	settings *SettingsService,
) *ResourceQueryService {
	return &ResourceQueryService{
		Meta:     meta,
		Content:  content,
		Settings: settings,
	}
}

// ListParams carries raw request input. Invalid enum values are treated as
// "no filter" so stale UI state keeps browsing functional.
type ListParams struct {
	Page       int
	PerPage    int
	Type       string
	Difficulty string
	Category   string
	Featured   *bool
	OrderBy    string
	Order      string
}

type TermResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ResourceResponse struct {
	ID              uint           `json:"id"`
	Title           string         `json:"title"`
	Excerpt         string         `json:"excerpt"`
	Permalink       string         `json:"permalink"`
	Thumbnail       *string        `json:"thumbnail"`
	Date            time.Time      `json:"date"`
	Modified        time.Time      `json:"modified"`
	ResourceURL     *string        `json:"resourceUrl"`
	ResourceType    *string        `json:"resourceType"`
	DifficultyLevel *string        `json:"difficultyLevel"`
	DurationMinutes *int           `json:"durationMinutes"`
	DownloadCount   int64          `json:"downloadCount"`
	IsFeatured      bool           `json:"isFeatured"`
	Categories      []TermResponse `json:"categories"`
	Tags            []TermResponse `json:"tags"`
}

type ListResult struct {
	Items      []ResourceResponse
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

func (s *ResourceQueryService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	settings, err := s.Settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	perPage := params.PerPage
	if perPage <= 0 {
		perPage = settings.ResourcesPerPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > 100 {
		perPage = 100
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	result := &ListResult{
		Items:   []ResourceResponse{},
		Page:    page,
		PerPage: perPage,
	}

	// Published status and the optional category both constrain which
	// content ids the meta query may return.
	contentIDs, err := s.Content.PublishedIDs(params.Category)
	if err != nil {
		return nil, err
	}
	if len(contentIDs) == 0 {
		return result, nil
	}

	filter := repository.ResourceFilter{
		Type:       model.NormalizeResourceType(params.Type),
		Difficulty: normalizeDifficultyFilter(params.Difficulty),
		Featured:   params.Featured,
		ContentIDs: contentIDs,
		SortBy:     params.OrderBy,
		SortOrder:  params.Order,
		Page:       page,
		PerPage:    perPage,
	}

	total, err := s.Meta.Count(filter)
	if err != nil {
		return nil, err
	}

	metas, err := s.Meta.List(filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(metas))
	for i, meta := range metas {
		ids[i] = meta.ContentID
	}
	contents, err := s.Content.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	for _, meta := range metas {
		content, ok := contents[meta.ContentID]
		if !ok {
			continue
		}
		m := meta
		result.Items = append(result.Items, buildResourceResponse(&content, &m))
	}

	result.Total = total
	result.TotalPages = int((total + int64(perPage) - 1) / int64(perPage))
	return result, nil
}

// GetByContentID returns a published resource or ErrResourceNotFound. The
// meta row is optional: content without one still resolves, with null meta
// fields.
func (s *ResourceQueryService) GetByContentID(ctx context.Context, contentID uint) (*ResourceResponse, error) {
	content, err := s.Content.FindPublishedByID(contentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, util.ErrResourceNotFound
	}

	meta, err := s.Meta.Get(contentID)
	if err != nil {
		return nil, err
	}

	response := buildResourceResponse(content, meta)
	return &response, nil
}

// Filter input is more lenient than the default-difficulty setting: an
// unknown value means "don't filter", never "beginner".
func normalizeDifficultyFilter(s string) model.DifficultyLevel {
	d := model.DifficultyLevel(s)
	if d.Valid() {
		return d
	}
	return ""
}

func buildResourceResponse(content *model.ContentItem, meta *model.ResourceMeta) ResourceResponse {
	response := ResourceResponse{
		ID:         content.ID,
		Title:      content.Title,
		Excerpt:    content.Excerpt,
		Permalink:  content.Permalink,
		Date:       content.CreatedAt,
		Modified:   content.UpdatedAt,
		Categories: []TermResponse{},
		Tags:       []TermResponse{},
	}

	if content.ThumbnailURL != "" {
		thumbnail := content.ThumbnailURL
		response.Thumbnail = &thumbnail
	}

	for _, term := range content.Terms {
		entry := TermResponse{ID: term.ID, Name: term.Name, Slug: term.Slug}
		if term.Taxonomy == model.TaxonomyTag {
			response.Tags = append(response.Tags, entry)
		} else {
			response.Categories = append(response.Categories, entry)
		}
	}

	if meta != nil {
		if meta.ResourceURL != "" {
			url := meta.ResourceURL
			response.ResourceURL = &url
		}
		if meta.ResourceType != "" {
			t := string(meta.ResourceType)
			response.ResourceType = &t
		}
		if meta.DifficultyLevel != "" {
			d := string(meta.DifficultyLevel)
			response.DifficultyLevel = &d
		}
		if meta.DurationMinutes > 0 {
			minutes := meta.DurationMinutes
			response.DurationMinutes = &minutes
		}
		response.DownloadCount = meta.DownloadCount
		response.IsFeatured = meta.IsFeatured
	}

	return response
}
