// Package billing implements the order pricing and settlement engine: a cart
// of line items with derived totals and a ledger of payments against the
// grand total. Totals are pure folds over current state, recomputed on every
// query so they can never drift after a mutation.
//
// A cart models one checkout session. It is not safe for concurrent use;
// callers owning a session must serialize access.
package billing

import "errors"

// ErrInvalidInput is returned when a value cannot be constructed from the
// provided fields.
var ErrInvalidInput = errors.New("invalid input")

// CustomerInfo optionally identifies the buyer. It is replaced wholesale or
// cleared, never patched field by field.
type CustomerInfo struct {
	Name  string
	Phone string
	Email string
}

// Cart is the aggregate root owning line items, the customer reference and
// the payment ledger for a single checkout session.
type Cart struct {
	items    []LineItem
	customer CustomerInfo
	payments []PaymentRecord
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends item, or when an item with the same product id already
// exists, accumulates its quantity and leaves every other field untouched.
func (c *Cart) AddItem(item LineItem) {
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Qty += item.Qty
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateItem replaces the item matching productID wholesale. Missing ids are
// a silent no-op.
func (c *Cart) UpdateItem(productID string, item LineItem) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i] = item
			return
		}
	}
}

// RemoveItem deletes the item matching productID. Missing ids are a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// SetCustomer replaces the customer reference wholesale.
func (c *Cart) SetCustomer(info CustomerInfo) {
	c.customer = info
}

// ClearCustomer resets the customer reference.
func (c *Cart) ClearCustomer() {
	c.customer = CustomerInfo{}
}

// Customer returns the current customer reference.
func (c *Cart) Customer() CustomerInfo {
	return c.customer
}

// Clear atomically empties items, customer and payments. There is no partial
// clear that could leave the cart and its ledger out of sync.
func (c *Cart) Clear() {
	c.items = nil
	c.customer = CustomerInfo{}
	c.payments = nil
}
