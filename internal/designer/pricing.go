package designer

import "fmt"

// Base prices in store currency.
const (
	BasePriceTshirt        = 15.00
	BasePriceGraphicTshirt = 30.00
)

var graphicTshirtSlugs = []string{"graphic-tshirt", "graphic_tshirt", "graphic tshirt"}

var tshirtSlugs = []string{"tshirts", "tshirt", "t-shirt"}

// MinPriceForCategory returns the minimum allowed price for a category
// slug. Categories outside the known synonym sets have no minimum.
func MinPriceForCategory(slug string) float64 {
	slug = Slugify(slug)

	for _, s := range graphicTshirtSlugs {
		if slug == Slugify(s) {
			return BasePriceGraphicTshirt
		}
	}

	for _, s := range tshirtSlugs {
		if slug == Slugify(s) {
			return BasePriceTshirt
		}
	}

	return 0
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

// CurrencySymbol returns the display symbol for a currency code, falling
// back to the code itself.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// CheckMinPrice validates a declared price against the category minimum
// and returns the displayable rejection when it is too low.
func CheckMinPrice(categorySlug string, price float64, currency string) *Error {
	min := MinPriceForCategory(categorySlug)
	if min > 0 && price < min {
		sym := CurrencySymbol(currency)
		return ErrPriceTooLow(fmt.Sprintf(
			"Minimum price for this category is %s%.2f, but you entered %s%.2f.",
			sym, min, sym, price,
		))
	}
	return nil
}
