package handlers

import (
	"html/template"
	"net/http"

	"arton360/internal/api/middleware"
	"arton360/internal/config"
	"arton360/internal/logger"
	"arton360/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WidgetHandler renders the embeddable designer widget: a sandboxed
// iframe plus the script that hands the designer its one-time config.
type WidgetHandler struct {
	db     *gorm.DB
	logger *logger.Logger
	config *config.Config
}

func NewWidgetHandler(db *gorm.DB, logger *logger.Logger, cfg *config.Config) *WidgetHandler {
	return &WidgetHandler{
		db:     db,
		logger: logger,
		config: cfg,
	}
}

var widgetTemplate = template.Must(template.New("widget").Parse(`<div id="arton360-wrapper" style="height: calc(100vh - 120px);">
    <iframe
        id="arton360-iframe"
        src="{{.AppURL}}"
        style="width:100%;height:100%;border:0;"
        sandbox="allow-scripts allow-same-origin allow-forms"
        allow="clipboard-write"
    ></iframe>
</div>

<script>
    (function () {
        const iframe = document.getElementById('arton360-iframe');
        iframe.addEventListener('load', function () {
            const payload = {
                type: 'ARTON360_CONFIG',
                site: '{{.Site}}',
                apiBase: '{{.APIBase}}',
                nonce: '{{.Token}}',
                vendorId: '{{.VendorID}}',
            };
            iframe.contentWindow.postMessage(payload, '{{.Origin}}');
        });
    })();
</script>
`))

type widgetData struct {
	AppURL   string
	Site     string
	APIBase  string
	Token    string
	VendorID string
	Origin   string
}

// Render mints a one-time token for the vendor and returns the widget
// fragment. The config message is restricted to the allowed origin.
func (h *WidgetHandler) Render(c *gin.Context) {
	vendor := middleware.CurrentUser(c)

	token := models.AccessToken{
		UserID:  vendor.ID,
		OneTime: true,
	}
	if err := h.db.Create(&token).Error; err != nil {
		h.logger.Error("Failed to mint widget token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare widget"})
		return
	}

	data := widgetData{
		AppURL:   h.config.DesignerAppURL,
		Site:     h.config.SiteURL,
		APIBase:  h.config.SiteURL + "/arton360/v1",
		Token:    token.Token,
		VendorID: vendor.ID,
		Origin:   h.config.DesignerOrigin,
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := widgetTemplate.Execute(c.Writer, data); err != nil {
		h.logger.Error("Failed to render widget: %v", err)
	}
}
