package designer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinPriceForCategory(t *testing.T) {
	cases := []struct {
		slug string
		want float64
	}{
		{"graphic-tshirt", BasePriceGraphicTshirt},
		{"graphic_tshirt", BasePriceGraphicTshirt},
		{"Graphic Tshirt", BasePriceGraphicTshirt},
		{"tshirts", BasePriceTshirt},
		{"tshirt", BasePriceTshirt},
		{"t-shirt", BasePriceTshirt},
		{"hoodies", 0},
		{"", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MinPriceForCategory(tc.slug), "slug %q", tc.slug)
	}
}

func TestCheckMinPrice(t *testing.T) {
	err := CheckMinPrice("graphic-tshirt", 12.5, "USD")
	require.NotNil(t, err)
	assert.Equal(t, KindPriceTooLow, err.Kind)
	assert.Equal(t, 400, err.Status)
	assert.Equal(t, "Minimum price for this category is $30.00, but you entered $12.50.", err.Message)

	// At the minimum is allowed
	assert.Nil(t, CheckMinPrice("tshirts", BasePriceTshirt, "USD"))

	// Unknown categories have no floor
	assert.Nil(t, CheckMinPrice("stickers", 0.01, "USD"))
}

func TestCurrencySymbolFallsBackToCode(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "AUD", CurrencySymbol("AUD"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "neon-skull-tee", Slugify("Neon Skull Tee"))
	assert.Equal(t, "graphic-tshirt", Slugify("graphic_tshirt"))
	assert.Equal(t, "abc-123", Slugify("  ABC -- 123!! "))
	assert.Equal(t, "", Slugify("***"))
}
