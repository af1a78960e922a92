package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentMode enumerates the accepted tender types.
type PaymentMode string

const (
	ModeCash         PaymentMode = "cash"
	ModeCard         PaymentMode = "card"
	ModeUPI          PaymentMode = "upi"
	ModeWallet       PaymentMode = "wallet"
	ModeCredit       PaymentMode = "credit"
	ModeBankTransfer PaymentMode = "bank_transfer"
)

// Modes lists every accepted payment mode.
var Modes = []PaymentMode{ModeCash, ModeCard, ModeUPI, ModeWallet, ModeCredit, ModeBankTransfer}

// ParseMode resolves a mode string, rejecting unknown values.
func ParseMode(value string) (PaymentMode, error) {
	for _, mode := range Modes {
		if string(mode) == value {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown payment mode %q: %w", value, ErrInvalidInput)
}

// PaymentRecord is one tender applied against a cart's grand total. Order is
// insertion order and matters only for display.
type PaymentRecord struct {
	Mode      PaymentMode
	Amount    decimal.Decimal
	Reference string
}

// NewPayment validates and constructs a payment record.
func NewPayment(mode PaymentMode, amount decimal.Decimal, reference string) (PaymentRecord, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return PaymentRecord{}, err
	}
	if amount.IsNegative() {
		return PaymentRecord{}, fmt.Errorf("amount must not be negative: %w", ErrInvalidInput)
	}
	return PaymentRecord{Mode: mode, Amount: amount, Reference: reference}, nil
}
