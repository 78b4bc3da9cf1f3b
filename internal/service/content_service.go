package service

import (
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/repository"
	"edu_resources_backend/internal/util"
)

// ContentService owns the content-item lifecycle for admins. Deleting a
// content item cascades its resource meta row; events are deliberately left
// behind (the log tolerates dangling references).
type ContentService struct {
	Content *repository.ContentRepository
	Meta    *repository.ResourceMetaRepository
	Terms   *repository.TermRepository
}

func NewContentService(
	content *repository.ContentRepository,
	meta *repository.ResourceMetaRepository,
	terms *repository.TermRepository,
) *ContentService {
	return &ContentService{Content: content, Meta: meta, Terms: terms}
}

type ContentInput struct {
	Title        string `json:"title" binding:"required,max=255"`
	Excerpt      string `json:"excerpt" binding:"max=1000"`
	Permalink    string `json:"permalink" binding:"max=255"`
	ThumbnailURL string `json:"thumbnailUrl" binding:"max=255"`
	Status       string `json:"status"`
	TermIDs      []uint `json:"termIds"`
}

func (s *ContentService) Create(input ContentInput) (*model.ContentItem, error) {
	terms, err := s.Terms.FindByIDs(input.TermIDs)
	if err != nil {
		return nil, err
	}

	item := &model.ContentItem{
		Title:        input.Title,
		Excerpt:      input.Excerpt,
		Permalink:    input.Permalink,
		ThumbnailURL: input.ThumbnailURL,
		Status:       model.NormalizeContentStatus(input.Status),
		Terms:        terms,
	}
	if err := s.Content.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ContentService) Update(id uint, input ContentInput) (*model.ContentItem, error) {
	item, err := s.Content.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, util.ErrContentNotFound
	}

	terms, err := s.Terms.FindByIDs(input.TermIDs)
	if err != nil {
		return nil, err
	}

	item.Title = input.Title
	item.Excerpt = input.Excerpt
	item.Permalink = input.Permalink
	item.ThumbnailURL = input.ThumbnailURL
	item.Status = model.NormalizeContentStatus(input.Status)
	item.Terms = terms

	if err := s.Content.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ContentService) Delete(id uint) error {
	item, err := s.Content.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return util.ErrContentNotFound
	}

	if err := s.Content.Delete(id); err != nil {
		return err
	}

	// Caller-side cascade: the meta table holds no foreign key.
	return s.Meta.Delete(id)
}
