// Package pricing quotes luminaire prices from a product's base price and
// the selected finish, size and colour temperature.
//
// All arithmetic is exact decimal. The three multipliers are applied to the
// base in one product and the result is rounded once to two places, half
// away from zero.
package pricing

import (
	"context"
	"fmt"

	"github.com/princinho/arcadiabackend/models"
	"github.com/shopspring/decimal"
)

// DefaultBasePrice is used for products stored without a base price.
var DefaultBasePrice = decimal.NewFromInt(1000)

var one = decimal.NewFromInt(1)

var finishMultipliers = map[string]decimal.Decimal{
	models.FinishGold:   decimal.RequireFromString("1.15"),
	models.FinishBlack:  decimal.RequireFromString("1.00"),
	models.FinishSilver: decimal.RequireFromString("1.08"),
}

var sizeMultipliers = map[string]decimal.Decimal{
	models.SizeS:  decimal.RequireFromString("0.90"),
	models.SizeM:  decimal.RequireFromString("1.00"),
	models.SizeL:  decimal.RequireFromString("1.20"),
	models.SizeXL: decimal.RequireFromString("1.45"),
}

// Temperatures in Kelvin that carry no surcharge.
var standardTemperatures = map[int]bool{3000: true, 4000: true}

var temperatureSurcharge = decimal.RequireFromString("1.05")

// Selection is the set of options a customer picked for a quote. Values
// outside the known sets are accepted.
type Selection struct {
	Finish      string
	Size        string
	Temperature int
}

func FinishMultiplier(finish string) decimal.Decimal {
	if m, ok := finishMultipliers[finish]; ok {
		return m
	}
	return one
}

func SizeMultiplier(size string) decimal.Decimal {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return one
}

func TemperatureMultiplier(kelvin int) decimal.Decimal {
	if standardTemperatures[kelvin] {
		return one
	}
	return temperatureSurcharge
}

// Price computes the quoted price for base and sel.
func Price(base decimal.Decimal, sel Selection) decimal.Decimal {
	factor := FinishMultiplier(sel.Finish).
		Mul(SizeMultiplier(sel.Size)).
		Mul(TemperatureMultiplier(sel.Temperature))
	return base.Mul(factor).Round(2)
}

// BasePrice returns the product's base price, or DefaultBasePrice when unset.
func BasePrice(p *models.Product) decimal.Decimal {
	if p.BasePrice == nil {
		return DefaultBasePrice
	}
	return decimal.NewFromFloat(*p.BasePrice)
}

type ProductFinder interface {
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

// Calculator resolves products by slug and prices them.
type Calculator struct {
	products ProductFinder
}

func NewCalculator(products ProductFinder) *Calculator {
	return &Calculator{products: products}
}

// Quote prices sel for the product identified by slug. Lookup errors are
// wrapped, so errors.Is(err, database.ErrNotFound) holds for unknown slugs.
func (c *Calculator) Quote(ctx context.Context, slug string, sel Selection) (decimal.Decimal, error) {
	p, err := c.products.ProductBySlug(ctx, slug)
	if err != nil {
		return decimal.Zero, fmt.Errorf("quote %q: %w", slug, err)
	}
	return Price(BasePrice(p), sel), nil
}
