package taxonomy

import (
	"arton360/internal/models"

	"gorm.io/gorm"
)

// Store reads attribute terms for the fixed classification axes.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Terms returns every term on a taxonomy in enumeration order. A missing
// taxonomy yields an empty set, never an error.
func (s *Store) Terms(taxonomy string) ([]models.AttributeTerm, error) {
	var terms []models.AttributeTerm
	err := s.db.
		Where("taxonomy = ?", taxonomy).
		Order("position asc, created_at asc").
		Find(&terms).Error
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// Slugs extracts the slug of each term, preserving order.
func Slugs(terms []models.AttributeTerm) []string {
	slugs := make([]string, 0, len(terms))
	for _, t := range terms {
		slugs = append(slugs, t.Slug)
	}
	return slugs
}
