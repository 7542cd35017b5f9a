package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeSimple   ProductType = "simple"
	ProductTypeVariable ProductType = "variable"
)

type ProductStatus string

const (
	ProductStatusPublish ProductStatus = "publish"
	ProductStatusDraft   ProductStatus = "draft"
)

type Product struct {
	ID          string        `json:"id" gorm:"type:uuid;primary_key"`
	VendorID    string        `json:"vendor_id" gorm:"not null"`
	SKU         string        `json:"sku" gorm:"unique"`
	Title       string        `json:"title" gorm:"not null"`
	Slug        string        `json:"slug" gorm:"not null"`
	Description string        `json:"description"`
	Type        ProductType   `json:"type" gorm:"default:simple"`
	Status      ProductStatus `json:"status" gorm:"default:publish"`
	Price       float64       `json:"price" gorm:"type:decimal(10,2)"`
	Currency    string        `json:"currency" gorm:"default:USD"`
	Category    string        `json:"category"`
	Tags        StringList    `json:"tags" gorm:"type:text"`

	// Designer metadata
	ArtType    string `json:"art_type"`
	Style      string `json:"style"`
	MatureFlag bool   `json:"mature_flag" gorm:"default:false"`
	CanvasJSON string `json:"canvas_json" gorm:"type:text"`
	PrintBox   string `json:"print_box" gorm:"type:text"`

	// Variable-product state
	Attributes        AttributeList `json:"attributes" gorm:"type:text"`
	DefaultAttributes StringMap     `json:"default_attributes" gorm:"type:text"`

	ThumbnailID *string   `json:"thumbnail_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Variations []Variation `json:"variations,omitempty" gorm:"-"`
}

// ProductAttribute is one attribute axis declared on a variable product.
type ProductAttribute struct {
	Taxonomy  string   `json:"taxonomy"`
	Options   []string `json:"options"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// URL returns the public product page for a given site base URL.
func (p *Product) URL(siteURL string) string {
	return siteURL + "/product/" + p.Slug
}
