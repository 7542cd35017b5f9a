package designer_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"arton360/internal/catalog"
	"arton360/internal/database"
	"arton360/internal/designer"
	"arton360/internal/logger"
	"arton360/internal/media"
	"arton360/internal/models"
	"arton360/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*designer.Service, *database.Database) {
	t.Helper()

	dir := t.TempDir()
	db, err := database.New("sqlite://" + filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.New("error")
	ingestor := media.NewIngestor(db.DB, log, filepath.Join(dir, "uploads"), "http://shop.test")
	terms := taxonomy.NewStore(db.DB)
	generator := catalog.NewGenerator(db.DB, log, terms, "pa_color", "pa_size")

	svc := designer.NewService(db.DB, log, ingestor, generator, nil, "http://shop.test")
	return svc, db
}

func seedTerms(t *testing.T, db *database.Database, taxonomy string, slugs ...string) {
	t.Helper()
	for i, slug := range slugs {
		term := models.AttributeTerm{Taxonomy: taxonomy, Slug: slug, Name: slug, Position: i}
		require.NoError(t, db.DB.Create(&term).Error)
	}
}

func vendorUser(t *testing.T, db *database.Database) *models.User {
	t.Helper()
	user := models.User{Email: "vendor@shop.test", Name: "Vendor", Roles: models.StringList{"seller"}}
	require.NoError(t, db.DB.Create(&user).Error)
	return &user
}

func pngDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func price(v float64) *float64 { return &v }

func TestSaveDesignRejectsNonVendor(t *testing.T) {
	svc, db := newTestService(t)

	customer := models.User{Email: "buyer@shop.test", Name: "Buyer", Roles: models.StringList{"customer"}}
	require.NoError(t, db.DB.Create(&customer).Error)

	_, err := svc.SaveDesign(context.Background(), &customer, &designer.Submission{
		DesignName: "Skull",
		PreviewPNG: pngDataURL(t),
	})

	var derr *designer.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, designer.KindNotVendor, derr.Kind)
	assert.Equal(t, 403, derr.Status)
}

func TestSaveDesignRequiresNameAndPreview(t *testing.T) {
	svc, db := newTestService(t)
	vendor := vendorUser(t, db)

	for _, sub := range []*designer.Submission{
		{DesignName: "", PreviewPNG: pngDataURL(t)},
		{DesignName: "Skull", PreviewPNG: ""},
	} {
		_, err := svc.SaveDesign(context.Background(), vendor, sub)
		var derr *designer.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, designer.KindBadRequest, derr.Kind)
	}

	// Nothing was persisted
	var products, assets int64
	db.DB.Model(&models.Product{}).Count(&products)
	db.DB.Model(&models.MediaAsset{}).Count(&assets)
	assert.Zero(t, products)
	assert.Zero(t, assets)
}

func TestSaveDesignEnforcesCategoryMinimum(t *testing.T) {
	svc, db := newTestService(t)
	vendor := vendorUser(t, db)

	_, err := svc.SaveDesign(context.Background(), vendor, &designer.Submission{
		DesignName: "Skull",
		PreviewPNG: pngDataURL(t),
		ProductMeta: designer.ProductMeta{
			CategorySlug: "graphic-tshirt",
			Price:        price(10),
			Currency:     "USD",
		},
	})

	var derr *designer.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, designer.KindPriceTooLow, derr.Kind)
	assert.Contains(t, derr.Message, "$30.00")
	assert.Contains(t, derr.Message, "$10.00")

	var products, assets int64
	db.DB.Model(&models.Product{}).Count(&products)
	db.DB.Model(&models.MediaAsset{}).Count(&assets)
	assert.Zero(t, products, "rejected submission must not create a product")
	assert.Zero(t, assets, "rejected submission must not store media")
}

func TestSaveDesignCreatesVariableProduct(t *testing.T) {
	svc, db := newTestService(t)
	vendor := vendorUser(t, db)
	seedTerms(t, db, "pa_color", "white", "black", "red")
	seedTerms(t, db, "pa_size", "s", "m")

	tags, _ := json.Marshal([]string{"skull", "street"})
	result, err := svc.SaveDesign(context.Background(), vendor, &designer.Submission{
		DesignName:    "Neon Skull",
		PreviewPNG:    pngDataURL(t),
		TshirtDesigns: json.RawMessage(`{"layers":[1,2]}`),
		PrintBox:      json.RawMessage(`{"w":10,"h":12}`),
		ProductMeta: designer.ProductMeta{
			Title:            "Neon Skull Tee",
			Description:      "Glow in the dark.",
			CategorySlug:     "graphic-tshirt",
			Tags:             tags,
			Price:            price(35),
			Currency:         "USD",
			ArtType:          "vector",
			Style:            "street",
			VendorMatureFlag: true,
		},
	})
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Equal(t, "publish", result.Status)
	assert.Equal(t, "http://shop.test/product/neon-skull-tee", result.ProductURL)

	var product models.Product
	require.NoError(t, db.DB.First(&product, "id = ?", result.ProductID).Error)
	assert.Equal(t, vendor.ID, product.VendorID)
	assert.Equal(t, models.ProductTypeVariable, product.Type)
	assert.Equal(t, 35.0, product.Price)
	assert.Equal(t, models.StringList{"skull", "street"}, product.Tags)
	assert.True(t, product.MatureFlag)
	assert.Equal(t, `{"layers":[1,2]}`, product.CanvasJSON)
	assert.True(t, strings.HasPrefix(product.SKU, "TSHIRT-"+vendor.ID+"-"), "sku %q", product.SKU)
	require.NotNil(t, product.ThumbnailID)

	var asset models.MediaAsset
	require.NoError(t, db.DB.First(&asset, "id = ?", *product.ThumbnailID).Error)
	assert.Equal(t, vendor.ID, asset.AuthorID)

	var variations []models.Variation
	require.NoError(t, db.DB.Where("product_id = ?", product.ID).Order("position asc").Find(&variations).Error)
	require.Len(t, variations, 6)

	// Color-major, size-minor enumeration; price copied from base price
	assert.Equal(t, models.StringMap{"pa_color": "white", "pa_size": "s"}, variations[0].Attributes)
	assert.Equal(t, models.StringMap{"pa_color": "white", "pa_size": "m"}, variations[1].Attributes)
	assert.Equal(t, models.StringMap{"pa_color": "black", "pa_size": "s"}, variations[2].Attributes)
	for _, v := range variations {
		assert.Equal(t, 35.0, v.Price)
		assert.False(t, v.ManageStock)
		assert.False(t, v.Virtual)
		assert.False(t, v.Downloadable)
	}

	assert.Equal(t, models.StringMap{"pa_color": "white", "pa_size": "s"}, product.DefaultAttributes)
}

func TestSaveDesignWithoutTermsStaysSimple(t *testing.T) {
	svc, db := newTestService(t)
	vendor := vendorUser(t, db)

	result, err := svc.SaveDesign(context.Background(), vendor, &designer.Submission{
		DesignName: "Plain",
		PreviewPNG: pngDataURL(t),
	})
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, db.DB.First(&product, "id = ?", result.ProductID).Error)
	assert.Equal(t, models.ProductTypeSimple, product.Type)
	// Price defaults when the meta carries none
	assert.Equal(t, 499.0, product.Price)

	var count int64
	db.DB.Model(&models.Variation{}).Count(&count)
	assert.Zero(t, count)
}

func TestSaveDesignAcceptsCommaJoinedTags(t *testing.T) {
	svc, db := newTestService(t)
	vendor := vendorUser(t, db)

	tags, _ := json.Marshal("skull, street , ")
	result, err := svc.SaveDesign(context.Background(), vendor, &designer.Submission{
		DesignName:  "Tagged",
		PreviewPNG:  pngDataURL(t),
		ProductMeta: designer.ProductMeta{Tags: tags},
	})
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, db.DB.First(&product, "id = ?", result.ProductID).Error)
	assert.Equal(t, models.StringList{"skull", "street"}, product.Tags)
}
