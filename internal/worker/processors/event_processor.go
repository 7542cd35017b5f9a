package processors

import (
	"encoding/json"
	"fmt"
	"strings"

	"arton360/internal/config"
	"arton360/internal/events"
	"arton360/internal/logger"
	"arton360/internal/models"

	"gorm.io/gorm"
)

// EventProcessor audits consumed catalog events: it re-loads the product,
// notes anything a healthy designer product should not be missing, and
// persists an event row.
type EventProcessor struct {
	config *config.Config
	logger *logger.Logger
	db     *gorm.DB
}

func NewEventProcessor(cfg *config.Config, logger *logger.Logger, db *gorm.DB) *EventProcessor {
	return &EventProcessor{
		config: cfg,
		logger: logger,
		db:     db,
	}
}

func (ep *EventProcessor) Process(event events.Event) error {
	switch event.Type {
	case models.EventProductCreated:
		return ep.processCreated(event)
	default:
		ep.logger.Debug("Ignoring event type %s", event.Type)
		return nil
	}
}

func (ep *EventProcessor) processCreated(event events.Event) error {
	notes := ep.auditProduct(event.ProductID)

	payload, err := json.Marshal(event.Data)
	if err != nil {
		return err
	}

	row := models.ProductEvent{
		Type:      event.Type,
		ProductID: event.ProductID,
		Payload:   string(payload),
		Notes:     strings.Join(notes, "; "),
	}
	if err := ep.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}

	for _, n := range notes {
		ep.logger.Warn("product %s: %s", event.ProductID, n)
	}
	return nil
}

// auditProduct returns human-readable gaps for a created product.
func (ep *EventProcessor) auditProduct(productID string) []string {
	var notes []string

	var product models.Product
	if err := ep.db.First(&product, "id = ?", productID).Error; err != nil {
		return []string{"product row missing"}
	}

	if product.ThumbnailID == nil || *product.ThumbnailID == "" {
		notes = append(notes, "no thumbnail")
	}

	if product.Type == models.ProductTypeVariable {
		var count int64
		ep.db.Model(&models.Variation{}).Where("product_id = ?", product.ID).Count(&count)
		if count == 0 {
			notes = append(notes, "variable product with zero variations")
		}
	}

	return notes
}
