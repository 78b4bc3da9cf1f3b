package repository

import (
	"edu_resources_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type TermRepository struct {
	DB *gorm.DB
}

func NewTermRepository(db *gorm.DB) *TermRepository {
	return &TermRepository{DB: db}
}

// FindBySlug returns nil when the slug is unknown.
func (r *TermRepository) FindBySlug(slug string) (*model.Term, error) {
	var term model.Term
	err := r.DB.Where("slug = ?", slug).First(&term).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *TermRepository) FindOrCreate(name, slug string, taxonomy model.TermTaxonomy) (*model.Term, error) {
	term, err := r.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if term != nil {
		return term, nil
	}

	created := model.Term{Name: name, Slug: slug, Taxonomy: taxonomy}
	if err := r.DB.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *TermRepository) FindByIDs(ids []uint) ([]model.Term, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var terms []model.Term
	err := r.DB.Where("id IN ?", ids).Find(&terms).Error
	return terms, err
}
