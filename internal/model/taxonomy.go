package model

type TermTaxonomy string

const (
	TaxonomyCategory TermTaxonomy = "category"
	TaxonomyTag      TermTaxonomy = "tag"
)

// Term is a category or tag attached to content items.
type Term struct {
	ID       uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string       `gorm:"size:100;not null" json:"name"`
	Slug     string       `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Taxonomy TermTaxonomy `gorm:"size:20;index;default:category" json:"taxonomy"`
}

func (Term) TableName() string {
	return "terms"
}
