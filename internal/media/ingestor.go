package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"arton360/internal/designer"
	"arton360/internal/logger"
	"arton360/internal/models"

	"github.com/disintegration/imaging"
	"gorm.io/gorm"
)

const thumbnailSize = 300

// Ingestor persists data-URL images into the media store: the original
// file, a thumbnail rendition, and a MediaAsset row.
type Ingestor struct {
	db        *gorm.DB
	logger    *logger.Logger
	uploadDir string
	baseURL   string
}

func NewIngestor(db *gorm.DB, logger *logger.Logger, uploadDir, baseURL string) *Ingestor {
	return &Ingestor{
		db:        db,
		logger:    logger,
		uploadDir: uploadDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// DecodeDataURL extracts the binary payload of a base64 image data URL.
func DecodeDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, "data:image") {
		return nil, designer.ErrBadImage("Invalid data URL")
	}

	idx := strings.Index(dataURL, ",")
	if idx < 0 {
		return nil, designer.ErrBadImage("Invalid data URL")
	}

	bin, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil || len(bin) == 0 {
		return nil, designer.ErrBadImage("Base64 decode failed")
	}

	return bin, nil
}

// SaveDataURLImage decodes and stores a preview image for a design,
// returning the created asset. The file name is derived from the design
// name plus the upload timestamp, so resubmissions never collide.
func (i *Ingestor) SaveDataURLImage(dataURL, designName, authorID string) (*models.MediaAsset, error) {
	bin, err := DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(bin))
	if err != nil {
		return nil, designer.ErrBadImage("Image decode failed")
	}

	if err := os.MkdirAll(i.uploadDir, 0o755); err != nil {
		return nil, designer.ErrUpload(err.Error())
	}

	fileName := fmt.Sprintf("%s-%d.png", designer.Slugify(designName), time.Now().Unix())
	filePath := filepath.Join(i.uploadDir, fileName)

	if err := os.WriteFile(filePath, bin, 0o644); err != nil {
		return nil, designer.ErrUpload(err.Error())
	}

	thumbURL, err := i.writeThumbnail(img, fileName)
	if err != nil {
		i.logger.Warn("thumbnail generation failed for %s: %v", fileName, err)
	}

	bounds := img.Bounds()
	asset := &models.MediaAsset{
		AuthorID:     authorID,
		FileName:     fileName,
		FilePath:     filePath,
		URL:          i.baseURL + "/uploads/" + fileName,
		ThumbnailURL: thumbURL,
		MimeType:     "image/png",
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
	}

	if err := i.db.Create(asset).Error; err != nil {
		return nil, designer.ErrUpload(err.Error())
	}

	i.logger.Debug("stored media asset %s (%dx%d)", asset.ID, asset.Width, asset.Height)
	return asset, nil
}

// writeThumbnail stores a bounded rendition next to the original, the way
// a CMS generates attachment sizes on upload.
func (i *Ingestor) writeThumbnail(img image.Image, fileName string) (string, error) {
	bounds := img.Bounds()
	if bounds.Dx() > thumbnailSize || bounds.Dy() > thumbnailSize {
		img = imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	}

	thumbName := strings.TrimSuffix(fileName, ".png") + "-thumb.png"
	thumbPath := filepath.Join(i.uploadDir, thumbName)

	if err := imaging.Save(img, thumbPath); err != nil {
		return "", err
	}

	return i.baseURL + "/uploads/" + thumbName, nil
}
