package catalog_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"arton360/internal/catalog"
	"arton360/internal/database"
	"arton360/internal/logger"
	"arton360/internal/models"
	"arton360/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T) (*catalog.Generator, *database.Database) {
	t.Helper()

	db, err := database.New("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.New("error")
	gen := catalog.NewGenerator(db.DB, log, taxonomy.NewStore(db.DB), "pa_color", "pa_size")
	return gen, db
}

func seed(t *testing.T, db *database.Database, tax string, slugs ...string) {
	t.Helper()
	for i, slug := range slugs {
		term := models.AttributeTerm{Taxonomy: tax, Slug: slug, Name: slug, Position: i}
		require.NoError(t, db.DB.Create(&term).Error)
	}
}

func newProduct(t *testing.T, db *database.Database) *models.Product {
	t.Helper()
	product := &models.Product{
		VendorID: "vendor-1",
		SKU:      fmt.Sprintf("SKU-%s", t.Name()),
		Title:    "Tee",
		Slug:     "tee",
		Type:     models.ProductTypeSimple,
		Status:   models.ProductStatusPublish,
	}
	require.NoError(t, db.DB.Create(product).Error)
	return product
}

func TestGenerateBothAxes(t *testing.T) {
	gen, db := newGenerator(t)
	seed(t, db, "pa_color", "white", "black")
	seed(t, db, "pa_size", "s", "m", "l")
	product := newProduct(t, db)

	result, err := gen.Generate(product, 20)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Created)
	assert.Zero(t, result.Truncated)

	assert.Equal(t, models.ProductTypeVariable, product.Type)
	require.Len(t, product.Attributes, 2)
	assert.Equal(t, "pa_color", product.Attributes[0].Taxonomy)
	assert.Equal(t, []string{"white", "black"}, product.Attributes[0].Options)
	assert.True(t, product.Attributes[0].Visible)
	assert.True(t, product.Attributes[0].Variation)
	assert.Equal(t, "pa_size", product.Attributes[1].Taxonomy)
	assert.Equal(t, 1, product.Attributes[1].Position)

	var variations []models.Variation
	require.NoError(t, db.DB.Where("product_id = ?", product.ID).Order("position asc").Find(&variations).Error)
	require.Len(t, variations, 6)

	// Outer loop is color, inner loop is size
	want := []models.StringMap{
		{"pa_color": "white", "pa_size": "s"},
		{"pa_color": "white", "pa_size": "m"},
		{"pa_color": "white", "pa_size": "l"},
		{"pa_color": "black", "pa_size": "s"},
		{"pa_color": "black", "pa_size": "m"},
		{"pa_color": "black", "pa_size": "l"},
	}
	for i, v := range variations {
		assert.Equal(t, want[i], v.Attributes)
		assert.Equal(t, 20.0, v.Price)
	}

	assert.Equal(t, models.StringMap{"pa_color": "white", "pa_size": "s"}, product.DefaultAttributes)
}

func TestGenerateColorOnly(t *testing.T) {
	gen, db := newGenerator(t)
	seed(t, db, "pa_color", "white", "black", "navy")
	product := newProduct(t, db)

	result, err := gen.Generate(product, 15)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)

	require.Len(t, product.Attributes, 1)
	assert.Equal(t, "pa_color", product.Attributes[0].Taxonomy)
	assert.Equal(t, models.StringMap{"pa_color": "white"}, product.DefaultAttributes)

	var variations []models.Variation
	require.NoError(t, db.DB.Where("product_id = ?", product.ID).Order("position asc").Find(&variations).Error)
	require.Len(t, variations, 3)
	assert.Equal(t, models.StringMap{"pa_color": "navy"}, variations[2].Attributes)
}

func TestGenerateSizeOnly(t *testing.T) {
	gen, db := newGenerator(t)
	seed(t, db, "pa_size", "s", "m")
	product := newProduct(t, db)

	result, err := gen.Generate(product, 15)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, models.StringMap{"pa_size": "s"}, product.DefaultAttributes)
}

func TestGenerateNoTermsKeepsProductSimple(t *testing.T) {
	gen, db := newGenerator(t)
	product := newProduct(t, db)

	result, err := gen.Generate(product, 15)
	require.NoError(t, err)
	assert.Zero(t, result.Created)

	var reloaded models.Product
	require.NoError(t, db.DB.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, models.ProductTypeSimple, reloaded.Type)

	var count int64
	db.DB.Model(&models.Variation{}).Count(&count)
	assert.Zero(t, count)
}

func TestGenerateCapsAtMaxVariations(t *testing.T) {
	gen, db := newGenerator(t)

	colors := make([]string, 20)
	for i := range colors {
		colors[i] = fmt.Sprintf("color-%02d", i)
	}
	sizes := make([]string, 20)
	for i := range sizes {
		sizes[i] = fmt.Sprintf("size-%02d", i)
	}
	seed(t, db, "pa_color", colors...)
	seed(t, db, "pa_size", sizes...)
	product := newProduct(t, db)

	result, err := gen.Generate(product, 10)
	require.NoError(t, err)
	assert.Equal(t, catalog.MaxVariations, result.Created)
	assert.Equal(t, 100, result.Truncated)

	var count int64
	db.DB.Model(&models.Variation{}).Where("product_id = ?", product.ID).Count(&count)
	assert.EqualValues(t, catalog.MaxVariations, count)

	// Defaults still point at the first terms despite truncation
	assert.Equal(t, models.StringMap{"pa_color": "color-00", "pa_size": "size-00"}, product.DefaultAttributes)
}
