package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountKind selects how a line discount is computed.
type DiscountKind string

const (
	// DiscountPercentage deducts a percentage of the line gross.
	DiscountPercentage DiscountKind = "percentage"
	// DiscountFlat deducts a fixed amount per unit.
	DiscountFlat DiscountKind = "flat"
)

// Discount describes an optional per-line discount.
type Discount struct {
	Kind  DiscountKind
	Value decimal.Decimal
}

// LineItem is one product entry in a cart. Items are owned by their cart and
// mutated only through cart operations.
type LineItem struct {
	ProductID      string
	Qty            int
	UnitPrice      decimal.Decimal
	TaxRatePercent decimal.Decimal
	Discount       *Discount
}

// NewLineItem validates and constructs a line item. The returned error names
// the offending field.
func NewLineItem(productID string, qty int, unitPrice, taxRatePercent decimal.Decimal, discount *Discount) (LineItem, error) {
	if strings.TrimSpace(productID) == "" {
		return LineItem{}, fmt.Errorf("productId must not be empty: %w", ErrInvalidInput)
	}
	if qty <= 0 {
		return LineItem{}, fmt.Errorf("qty must be positive: %w", ErrInvalidInput)
	}
	if unitPrice.IsNegative() {
		return LineItem{}, fmt.Errorf("unitPrice must not be negative: %w", ErrInvalidInput)
	}
	if taxRatePercent.IsNegative() || taxRatePercent.GreaterThan(hundred) {
		return LineItem{}, fmt.Errorf("taxRatePercent must be within [0,100]: %w", ErrInvalidInput)
	}
	if discount != nil {
		if discount.Kind != DiscountPercentage && discount.Kind != DiscountFlat {
			return LineItem{}, fmt.Errorf("discount kind must be percentage or flat: %w", ErrInvalidInput)
		}
		if discount.Value.IsNegative() {
			return LineItem{}, fmt.Errorf("discount value must not be negative: %w", ErrInvalidInput)
		}
		copied := *discount
		discount = &copied
	}
	return LineItem{
		ProductID:      productID,
		Qty:            qty,
		UnitPrice:      unitPrice,
		TaxRatePercent: taxRatePercent,
		Discount:       discount,
	}, nil
}

// Gross is quantity times unit price before discount and tax.
func (li LineItem) Gross() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Qty)))
}

// DiscountAmount computes the deduction for this line. A flat discount is a
// per-unit amount and scales with quantity.
func (li LineItem) DiscountAmount() decimal.Decimal {
	if li.Discount == nil {
		return decimal.Zero
	}
	switch li.Discount.Kind {
	case DiscountPercentage:
		return li.Gross().Mul(li.Discount.Value).Div(hundred)
	case DiscountFlat:
		return li.Discount.Value.Mul(decimal.NewFromInt(int64(li.Qty)))
	default:
		return decimal.Zero
	}
}

// Taxable is the gross less the discount.
func (li LineItem) Taxable() decimal.Decimal {
	return li.Gross().Sub(li.DiscountAmount())
}

// Tax applies the line's tax rate to the taxable amount.
func (li LineItem) Tax() decimal.Decimal {
	return li.Taxable().Mul(li.TaxRatePercent).Div(hundred)
}
