// Package api exposes the billing engine over HTTP for the POS frontend.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dukaan-labs/billing-api/internal/billing"
	"github.com/dukaan-labs/billing-api/internal/common"
	"github.com/dukaan-labs/billing-api/internal/currency"
	"github.com/dukaan-labs/billing-api/internal/gstin"
	"github.com/dukaan-labs/billing-api/internal/numerals"
	"github.com/dukaan-labs/billing-api/internal/obs"
)

// Handler wires the session store to HTTP.
type Handler struct {
	Store    *Store
	Validate *validator.Validate
	Metrics  *obs.DomainMetrics
}

type discountPayload struct {
	Kind  string `json:"kind" validate:"required,oneof=percentage flat"`
	Value string `json:"value" validate:"required"`
}

type itemPayload struct {
	ProductID      string           `json:"productId" validate:"required"`
	Qty            int              `json:"qty" validate:"required,gt=0"`
	UnitPrice      string           `json:"unitPrice" validate:"required"`
	TaxRatePercent string           `json:"taxRatePercent"`
	Discount       *discountPayload `json:"discount"`
}

type customerPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

type paymentPayload struct {
	Mode      string `json:"mode" validate:"required,oneof=cash card upi wallet credit bank_transfer"`
	Amount    string `json:"amount" validate:"required"`
	Reference string `json:"reference"`
}

// CreateSession opens a new checkout session.
func (h *Handler) CreateSession(w http.ResponseWriter, _ *http.Request) {
	id := h.Store.Create()
	if h.Metrics != nil {
		h.Metrics.SessionsCreated.Inc()
	}
	common.JSONData(w, http.StatusCreated, map[string]any{"sessionId": id})
}

// GetSession returns cart contents, totals and settlement state.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.renderSession(w, chi.URLParam(r, "id"), func(*billing.Cart) {})
}

// DeleteSession discards a session entirely.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.Store.Delete(chi.URLParam(r, "id")) {
		h.sessionNotFound(w)
		return
	}
	if h.Metrics != nil {
		h.Metrics.SessionsCleared.Inc()
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem appends a line item, merging quantity into an existing line with
// the same product id.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decodeItem(w, r, "")
	if !ok {
		return
	}
	h.renderSession(w, chi.URLParam(r, "id"), func(cart *billing.Cart) {
		cart.AddItem(item)
	})
}

// UpdateItem replaces the addressed line item wholesale.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	item, ok := h.decodeItem(w, r, productID)
	if !ok {
		return
	}
	h.renderSession(w, chi.URLParam(r, "id"), func(cart *billing.Cart) {
		cart.UpdateItem(productID, item)
	})
}

// RemoveItem deletes the addressed line item.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	h.renderSession(w, chi.URLParam(r, "id"), func(cart *billing.Cart) {
		cart.RemoveItem(productID)
	})
}

// SetCustomer replaces the session's customer reference.
func (h *Handler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	var payload customerPayload
	if !h.decode(w, r, &payload) {
		return
	}
	h.renderSession(w, chi.URLParam(r, "id"), func(cart *billing.Cart) {
		cart.SetCustomer(billing.CustomerInfo{Name: payload.Name, Phone: payload.Phone, Email: payload.Email})
	})
}

// ClearCustomer resets the session's customer reference.
func (h *Handler) ClearCustomer(w http.ResponseWriter, r *http.Request) {
	h.renderSession(w, chi.URLParam(r, "id"), func(cart *billing.Cart) {
		cart.ClearCustomer()
	})
}

// AddPayment appends a payment record to the session ledger.
func (h *Handler) AddPayment(w http.ResponseWriter, r *http.Request) {
	var payload paymentPayload
	if !h.decode(w, r, &payload) {
		return
	}
	amount, err := parseAmount("amount", payload.Amount)
	if err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return
	}
	record, err := billing.NewPayment(billing.PaymentMode(payload.Mode), amount, payload.Reference)
	if err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return
	}
	h.renderSession(w, chi.URLParam(r, "id"), func(cart *billing.Cart) {
		cart.AddPayment(record)
		if h.Metrics != nil {
			h.Metrics.PaymentsRecorded.WithLabelValues(string(record.Mode)).Inc()
		}
	})
}

// RemovePayment deletes a payment record by position. Out-of-range indexes
// are a no-op, mirroring the engine's forgiving mutation style.
func (h *Handler) RemovePayment(w http.ResponseWriter, r *http.Request) {
	index := common.AtoiDefault(chi.URLParam(r, "index"), -1)
	h.renderSession(w, chi.URLParam(r, "id"), func(cart *billing.Cart) {
		cart.RemovePayment(index)
	})
}

// ClearCart atomically empties items, customer and payments while keeping
// the session open.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if h.Metrics != nil {
		h.Metrics.SessionsCleared.Inc()
	}
	h.renderSession(w, chi.URLParam(r, "id"), func(cart *billing.Cart) {
		cart.Clear()
	})
}

// GSTIN validates a tax identifier and returns its structural parts.
func (h *Handler) GSTIN(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	view := map[string]any{
		"gstin": id,
		"valid": gstin.Validate(id),
	}
	if code, ok := gstin.StateCode(id); ok {
		view["stateCode"] = code
		view["stateName"] = gstin.StateName(code)
	}
	if pan, ok := gstin.PAN(id); ok {
		view["pan"] = pan
	}
	common.JSONData(w, http.StatusOK, view)
}

// FormatAmount renders an amount in every display shape the frontend needs.
// Malformed values degrade to zero, never to an error.
func (h *Handler) FormatAmount(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	decimals := int32(common.AtoiDefault(r.URL.Query().Get("decimals"), 2))
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		parsed = decimal.Zero
	}
	common.JSONData(w, http.StatusOK, map[string]any{
		"grouped":  numerals.FormatGrouped(value, decimals),
		"currency": currency.FormatString(value),
		"inWords":  currency.AmountInWords(parsed),
	})
}

// FormatWords spells out an integer in the Indian numbering system.
func (h *Handler) FormatWords(w http.ResponseWriter, r *http.Request) {
	n := common.ParseInt64Default(r.URL.Query().Get("n"), 0)
	common.JSONData(w, http.StatusOK, map[string]any{
		"n":     n,
		"words": numerals.ToWords(n),
	})
}

func (h *Handler) renderSession(w http.ResponseWriter, id string, mutate func(*billing.Cart)) {
	var view map[string]any
	found := h.Store.With(id, func(cart *billing.Cart) {
		mutate(cart)
		view = cartView(id, cart)
	})
	if !found {
		h.sessionNotFound(w)
		return
	}
	common.JSONData(w, http.StatusOK, view)
}

var errSessionNotFound = common.NewAppError("NOT_FOUND", "session not found", http.StatusNotFound, nil)

func (h *Handler) sessionNotFound(w http.ResponseWriter) {
	h.writeError(w, errSessionNotFound)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if appErr, ok := common.AsAppError(err); ok {
		common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, payload any) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid payload", validationDetails(err))
			return false
		}
	}
	return true
}

// decodeItem parses and validates an item payload. When productID is
// non-empty it overrides the payload's product id (update-by-path).
func (h *Handler) decodeItem(w http.ResponseWriter, r *http.Request, productID string) (billing.LineItem, bool) {
	var payload itemPayload
	if productID != "" {
		payload.ProductID = productID
	}
	if !h.decode(w, r, &payload) {
		return billing.LineItem{}, false
	}
	if productID != "" {
		payload.ProductID = productID
	}

	unitPrice, err := parseAmount("unitPrice", payload.UnitPrice)
	if err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return billing.LineItem{}, false
	}
	taxRate := decimal.Zero
	if strings.TrimSpace(payload.TaxRatePercent) != "" {
		taxRate, err = parseAmount("taxRatePercent", payload.TaxRatePercent)
		if err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
			return billing.LineItem{}, false
		}
	}
	var discount *billing.Discount
	if payload.Discount != nil {
		value, err := parseAmount("discount.value", payload.Discount.Value)
		if err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
			return billing.LineItem{}, false
		}
		discount = &billing.Discount{Kind: billing.DiscountKind(payload.Discount.Kind), Value: value}
	}

	item, err := billing.NewLineItem(payload.ProductID, payload.Qty, unitPrice, taxRate, discount)
	if err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return billing.LineItem{}, false
	}
	return item, true
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a decimal number", field)
	}
	return parsed, nil
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]map[string]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, map[string]string{
			"field": fe.Field(),
			"rule":  fe.Tag(),
		})
	}
	return details
}
