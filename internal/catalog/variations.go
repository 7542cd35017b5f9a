package catalog

import (
	"arton360/internal/logger"
	"arton360/internal/models"
	"arton360/internal/taxonomy"

	"gorm.io/gorm"
)

// MaxVariations caps how many attribute combinations are materialized for
// one product. Enumeration past the cap is dropped silently.
const MaxVariations = 300

// Generator converts a freshly created product into a variable product
// with one variation per color/size combination.
type Generator struct {
	db       *gorm.DB
	logger   *logger.Logger
	terms    *taxonomy.Store
	colorTax string
	sizeTax  string
}

func NewGenerator(db *gorm.DB, logger *logger.Logger, terms *taxonomy.Store, colorTax, sizeTax string) *Generator {
	return &Generator{
		db:       db,
		logger:   logger,
		terms:    terms,
		colorTax: colorTax,
		sizeTax:  sizeTax,
	}
}

// Result reports what one generation run produced.
type Result struct {
	Created   int `json:"created"`
	Truncated int `json:"truncated"`
}

// Generate materializes variations for the product at the given base
// price. With no terms on either axis the product stays simple. Order is
// color-major, size-minor; defaults are the first slug of each axis.
func (g *Generator) Generate(product *models.Product, basePrice float64) (*Result, error) {
	colorTerms, err := g.terms.Terms(g.colorTax)
	if err != nil {
		return nil, err
	}
	sizeTerms, err := g.terms.Terms(g.sizeTax)
	if err != nil {
		return nil, err
	}

	if len(colorTerms) == 0 && len(sizeTerms) == 0 {
		return &Result{}, nil
	}

	colorSlugs := taxonomy.Slugs(colorTerms)
	sizeSlugs := taxonomy.Slugs(sizeTerms)

	var attributes models.AttributeList
	position := 0
	if len(colorSlugs) > 0 {
		attributes = append(attributes, models.ProductAttribute{
			Taxonomy:  g.colorTax,
			Options:   colorSlugs,
			Position:  position,
			Visible:   true,
			Variation: true,
		})
		position++
	}
	if len(sizeSlugs) > 0 {
		attributes = append(attributes, models.ProductAttribute{
			Taxonomy:  g.sizeTax,
			Options:   sizeSlugs,
			Position:  position,
			Visible:   true,
			Variation: true,
		})
	}

	product.Type = models.ProductTypeVariable
	product.Attributes = attributes
	product.Status = models.ProductStatusPublish

	combos := enumerate(g.colorTax, g.sizeTax, colorSlugs, sizeSlugs)

	created := 0
	for _, attrs := range combos {
		if created >= MaxVariations {
			break
		}
		variation := models.Variation{
			ProductID:  product.ID,
			Status:     "publish",
			Price:      basePrice,
			Attributes: attrs,
			Position:   created,
		}
		if err := g.db.Create(&variation).Error; err != nil {
			return nil, err
		}
		created++
	}

	defaults := models.StringMap{}
	if len(colorSlugs) > 0 {
		defaults[g.colorTax] = colorSlugs[0]
	}
	if len(sizeSlugs) > 0 {
		defaults[g.sizeTax] = sizeSlugs[0]
	}
	product.DefaultAttributes = defaults

	if err := g.db.Save(product).Error; err != nil {
		return nil, err
	}

	result := &Result{Created: created, Truncated: len(combos) - created}
	if result.Truncated > 0 {
		g.logger.Warn("variation cap reached for product %s: dropped %d combinations", product.ID, result.Truncated)
	}
	return result, nil
}

// enumerate builds the combination list: color x size when both axes are
// populated, otherwise the single populated axis.
func enumerate(colorTax, sizeTax string, colorSlugs, sizeSlugs []string) []models.StringMap {
	var combos []models.StringMap

	switch {
	case len(colorSlugs) > 0 && len(sizeSlugs) > 0:
		for _, c := range colorSlugs {
			for _, s := range sizeSlugs {
				combos = append(combos, models.StringMap{colorTax: c, sizeTax: s})
			}
		}
	case len(colorSlugs) > 0:
		for _, c := range colorSlugs {
			combos = append(combos, models.StringMap{colorTax: c})
		}
	case len(sizeSlugs) > 0:
		for _, s := range sizeSlugs {
			combos = append(combos, models.StringMap{sizeTax: s})
		}
	}

	return combos
}
