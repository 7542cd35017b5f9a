package designer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"arton360/internal/catalog"
	"arton360/internal/events"
	"arton360/internal/logger"
	"arton360/internal/models"

	"gorm.io/gorm"
)

// ImageIngestor persists a data-URL preview image and returns the stored
// asset. Satisfied by media.Ingestor.
type ImageIngestor interface {
	SaveDataURLImage(dataURL, designName, authorID string) (*models.MediaAsset, error)
}

// Submission is the payload the designer front-end posts when a vendor
// saves a design.
type Submission struct {
	DesignName    string          `json:"designName"`
	PreviewPNG    string          `json:"previewPng"`
	TshirtDesigns json.RawMessage `json:"tshirtDesigns"`
	PrintBox      json.RawMessage `json:"printBox"`
	ProductMeta   ProductMeta     `json:"productMeta"`
}

type ProductMeta struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	CategorySlug     string          `json:"categorySlug"`
	Tags             json.RawMessage `json:"tags"`
	Price            *float64        `json:"price"`
	Currency         string          `json:"currency"`
	ArtType          string          `json:"artType"`
	Style            string          `json:"style"`
	VendorMatureFlag bool            `json:"vendorMatureFlag"`
}

// SaveResult is the success response of a save-design call.
type SaveResult struct {
	OK         bool   `json:"ok"`
	ProductID  string `json:"product_id"`
	Status     string `json:"status"`
	ProductURL string `json:"product_url"`
}

// Service orchestrates the save-design workflow: pricing guard, image
// ingest, product creation, variation generation, event publish.
type Service struct {
	db         *gorm.DB
	logger     *logger.Logger
	ingestor   ImageIngestor
	variations *catalog.Generator
	publisher  *events.Publisher
	siteURL    string
}

func NewService(db *gorm.DB, logger *logger.Logger, ingestor ImageIngestor, variations *catalog.Generator, publisher *events.Publisher, siteURL string) *Service {
	return &Service{
		db:         db,
		logger:     logger,
		ingestor:   ingestor,
		variations: variations,
		publisher:  publisher,
		siteURL:    strings.TrimRight(siteURL, "/"),
	}
}

const defaultPrice = 499.0

// SaveDesign runs the full workflow for an authenticated vendor. Each step
// depends on the previous one succeeding; validation failures happen
// before any persistence.
func (s *Service) SaveDesign(ctx context.Context, vendor *models.User, sub *Submission) (*SaveResult, error) {
	if vendor == nil || !vendor.IsVendor() {
		return nil, ErrNotVendor()
	}

	if strings.TrimSpace(sub.DesignName) == "" || sub.PreviewPNG == "" {
		return nil, ErrBadRequest("designName and previewPng are required")
	}

	meta := sub.ProductMeta
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = strings.TrimSpace(sub.DesignName)
	}

	category := Slugify(meta.CategorySlug)
	currency := meta.Currency
	if currency == "" {
		currency = "USD"
	}

	price := defaultPrice
	if meta.Price != nil {
		price = *meta.Price
	}

	if err := CheckMinPrice(category, price, currency); err != nil {
		return nil, err
	}

	tags := normalizeTags(meta.Tags)

	asset, err := s.ingestor.SaveDataURLImage(sub.PreviewPNG, title, vendor.ID)
	if err != nil {
		return nil, err
	}

	// Always a new product; resubmission never reuses an existing record.
	product := &models.Product{
		VendorID:    vendor.ID,
		Title:       title,
		Slug:        Slugify(title),
		Description: meta.Description,
		Type:        models.ProductTypeSimple,
		Status:      models.ProductStatusPublish,
		Price:       price,
		Currency:    currency,
		Category:    category,
		Tags:        tags,
		ArtType:     meta.ArtType,
		Style:       meta.Style,
		MatureFlag:  meta.VendorMatureFlag,
		CanvasJSON:  rawJSON(sub.TshirtDesigns),
		PrintBox:    rawJSON(sub.PrintBox),
		ThumbnailID: &asset.ID,
	}

	if product.SKU == "" {
		product.SKU = fmt.Sprintf("TSHIRT-%s-%d", vendor.ID, time.Now().Unix())
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	result, err := s.variations.Generate(product, price)
	if err != nil {
		return nil, fmt.Errorf("failed to generate variations: %w", err)
	}
	s.logger.Info("Created product %s with %d variations", product.ID, result.Created)

	if s.publisher != nil {
		if err := s.publisher.ProductCreated(ctx, product); err != nil {
			// Event delivery is best effort; the product already exists.
			s.logger.Warn("product.created not published for %s: %v", product.ID, err)
		}
	}

	return &SaveResult{
		OK:         true,
		ProductID:  product.ID,
		Status:     string(product.Status),
		ProductURL: product.URL(s.siteURL),
	}, nil
}

// normalizeTags accepts either an array of strings or one comma-joined
// string, mirroring what the designer front-end has been known to send.
func normalizeTags(raw json.RawMessage) models.StringList {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return trimTags(list)
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		return trimTags(strings.Split(joined, ","))
	}

	return nil
}

func trimTags(in []string) models.StringList {
	var out models.StringList
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func rawJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	return string(raw)
}
