package billing

import "github.com/shopspring/decimal"

// Subtotal sums line gross amounts before discounts and tax.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Gross())
	}
	return total
}

// TotalDiscount sums per-line discount amounts.
func (c *Cart) TotalDiscount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.DiscountAmount())
	}
	return total
}

// TotalTax sums per-line tax amounts.
func (c *Cart) TotalTax() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Tax())
	}
	return total
}

// GrandTotal is subtotal less total discount plus total tax.
func (c *Cart) GrandTotal() decimal.Decimal {
	return c.Subtotal().Sub(c.TotalDiscount()).Add(c.TotalTax())
}

// AddPayment appends a payment record. Overpayment is representable; callers
// decide whether to reject it.
func (c *Cart) AddPayment(record PaymentRecord) {
	c.payments = append(c.payments, record)
}

// RemovePayment deletes the record at index. Out-of-range indexes are a
// no-op.
func (c *Cart) RemovePayment(index int) {
	if index < 0 || index >= len(c.payments) {
		return
	}
	c.payments = append(c.payments[:index], c.payments[index+1:]...)
}

// Payments returns a copy of the ledger in insertion order.
func (c *Cart) Payments() []PaymentRecord {
	out := make([]PaymentRecord, len(c.payments))
	copy(out, c.payments)
	return out
}

// PaidAmount sums all recorded payments.
func (c *Cart) PaidAmount() decimal.Decimal {
	total := decimal.Zero
	for _, record := range c.payments {
		total = total.Add(record.Amount)
	}
	return total
}

// BalanceDue is the grand total less the paid amount. A negative balance
// signals overpayment and is intentionally left unclamped.
func (c *Cart) BalanceDue() decimal.Decimal {
	return c.GrandTotal().Sub(c.PaidAmount())
}
