package api

import (
	"github.com/dukaan-labs/billing-api/internal/billing"
	"github.com/dukaan-labs/billing-api/internal/currency"
)

// cartView renders a session's full state: items with per-line amounts,
// customer, ledger, and the derived totals both raw and display-formatted.
func cartView(id string, cart *billing.Cart) map[string]any {
	items := cart.Items()
	itemViews := make([]map[string]any, 0, len(items))
	for _, item := range items {
		view := map[string]any{
			"productId":      item.ProductID,
			"qty":            item.Qty,
			"unitPrice":      item.UnitPrice.String(),
			"taxRatePercent": item.TaxRatePercent.String(),
			"gross":          item.Gross().String(),
			"discountAmount": item.DiscountAmount().String(),
			"taxable":        item.Taxable().String(),
			"tax":            item.Tax().String(),
		}
		if item.Discount != nil {
			view["discount"] = map[string]any{
				"kind":  string(item.Discount.Kind),
				"value": item.Discount.Value.String(),
			}
		}
		itemViews = append(itemViews, view)
	}

	payments := cart.Payments()
	paymentViews := make([]map[string]any, 0, len(payments))
	for _, record := range payments {
		view := map[string]any{
			"mode":   string(record.Mode),
			"amount": record.Amount.String(),
		}
		if record.Reference != "" {
			view["reference"] = record.Reference
		}
		paymentViews = append(paymentViews, view)
	}

	grandTotal := cart.GrandTotal()
	out := map[string]any{
		"sessionId": id,
		"items":     itemViews,
		"payments":  paymentViews,
		"pricing": map[string]any{
			"subtotal":      cart.Subtotal().String(),
			"totalDiscount": cart.TotalDiscount().String(),
			"totalTax":      cart.TotalTax().String(),
			"grandTotal":    grandTotal.String(),
			"display":       currency.Format(grandTotal),
			"inWords":       currency.AmountInWords(grandTotal),
		},
		"settlement": map[string]any{
			"paidAmount": cart.PaidAmount().String(),
			"balanceDue": cart.BalanceDue().String(),
		},
	}
	if customer := cart.Customer(); customer != (billing.CustomerInfo{}) {
		out["customer"] = map[string]any{
			"name":  customer.Name,
			"phone": customer.Phone,
			"email": customer.Email,
		}
	}
	return out
}
