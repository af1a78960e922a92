package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/dukaan-labs/billing-api/internal/api"
)

func newServer(t *testing.T) (*httptest.Server, *api.Store) {
	t.Helper()
	store := api.NewStore()
	handler := &api.Handler{Store: store, Validate: validator.New()}
	srv := httptest.NewServer(handler.Routes())
	t.Cleanup(srv.Close)
	return srv, store
}

func do(t *testing.T, method, url, body string) (int, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp.StatusCode, decoded
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	status, body := do(t, http.MethodPost, srv.URL+"/sessions", "")
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]any)
	return data["sessionId"].(string)
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	srv, store := newServer(t)

	id := createSession(t, srv)
	require.Equal(t, 1, store.Len())

	status, body := do(t, http.MethodGet, srv.URL+"/sessions/"+id, "")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	require.Empty(t, data["items"])

	status, _ = do(t, http.MethodDelete, srv.URL+"/sessions/"+id, "")
	require.Equal(t, http.StatusNoContent, status)
	require.Equal(t, 0, store.Len())

	status, _ = do(t, http.MethodGet, srv.URL+"/sessions/"+id, "")
	require.Equal(t, http.StatusNotFound, status)
}

func TestItemFlowAndTotals(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)
	id := createSession(t, srv)

	st, _ := do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items",
		`{"productId":"A","qty":2,"unitPrice":"100","taxRatePercent":"10","discount":{"kind":"percentage","value":"10"}}`)
	require.Equal(t, http.StatusOK, st)

	st, body := do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items",
		`{"productId":"B","qty":1,"unitPrice":"50","taxRatePercent":"5"}`)
	require.Equal(t, http.StatusOK, st)

	pricing := body["data"].(map[string]any)["pricing"].(map[string]any)
	require.Equal(t, "250", pricing["subtotal"])
	require.Equal(t, "20", pricing["totalDiscount"])
	require.Equal(t, "20.5", pricing["totalTax"])
	require.Equal(t, "250.5", pricing["grandTotal"])
	require.Equal(t, "₹250.50", pricing["display"])
	require.Equal(t, "Two Hundred Fifty Rupees and Fifty Paise", pricing["inWords"])
}

func TestAddItemMergesQuantity(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)
	id := createSession(t, srv)

	payload := `{"productId":"A","qty":3,"unitPrice":"10"}`
	do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items", payload)
	st, body := do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items", payload)
	require.Equal(t, http.StatusOK, st)

	items := body["data"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, float64(6), items[0].(map[string]any)["qty"])
}

func TestItemValidation(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)
	id := createSession(t, srv)

	st, _ := do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items",
		`{"productId":"A","qty":0,"unitPrice":"10"}`)
	require.Equal(t, http.StatusUnprocessableEntity, st)

	st, _ = do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items",
		`{"productId":"A","qty":1,"unitPrice":"ten"}`)
	require.Equal(t, http.StatusUnprocessableEntity, st)

	st, _ = do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items",
		`{"productId":"A","qty":1,"unitPrice":"10","taxRatePercent":"120"}`)
	require.Equal(t, http.StatusUnprocessableEntity, st)
}

func TestSettlementFlow(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)
	id := createSession(t, srv)

	do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items",
		`{"productId":"A","qty":2,"unitPrice":"100","taxRatePercent":"10","discount":{"kind":"percentage","value":"10"}}`)
	do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items",
		`{"productId":"B","qty":1,"unitPrice":"50","taxRatePercent":"5"}`)

	pay := `{"mode":"cash","amount":"100"}`
	do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/payments", pay)
	st, body := do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/payments", pay)
	require.Equal(t, http.StatusOK, st)
	settlement := body["data"].(map[string]any)["settlement"].(map[string]any)
	require.Equal(t, "200", settlement["paidAmount"])
	require.Equal(t, "50.5", settlement["balanceDue"])

	st, body = do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/payments", `{"mode":"upi","amount":"60","reference":"UPI-1"}`)
	require.Equal(t, http.StatusOK, st)
	settlement = body["data"].(map[string]any)["settlement"].(map[string]any)
	require.Equal(t, "-9.5", settlement["balanceDue"])

	// Out-of-range removal is a no-op.
	st, body = do(t, http.MethodDelete, srv.URL+"/sessions/"+id+"/payments/9", "")
	require.Equal(t, http.StatusOK, st)
	require.Len(t, body["data"].(map[string]any)["payments"].([]any), 3)

	st, _ = do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/payments", `{"mode":"cheque","amount":"1"}`)
	require.Equal(t, http.StatusUnprocessableEntity, st)
}

func TestCustomerAndClear(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)
	id := createSession(t, srv)

	do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/items", `{"productId":"A","qty":1,"unitPrice":"10"}`)
	st, body := do(t, http.MethodPut, srv.URL+"/sessions/"+id+"/customer", `{"name":"Asha","phone":"9800000000"}`)
	require.Equal(t, http.StatusOK, st)
	customer := body["data"].(map[string]any)["customer"].(map[string]any)
	require.Equal(t, "Asha", customer["name"])

	do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/payments", `{"mode":"card","amount":"5"}`)

	st, body = do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/clear", "")
	require.Equal(t, http.StatusOK, st)
	data := body["data"].(map[string]any)
	require.Empty(t, data["items"])
	require.Empty(t, data["payments"])
	require.NotContains(t, data, "customer")
}

func TestGSTINEndpoint(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)

	st, body := do(t, http.MethodGet, srv.URL+"/gstin/22AAAAA0000A1Z5", "")
	require.Equal(t, http.StatusOK, st)
	data := body["data"].(map[string]any)
	require.Equal(t, true, data["valid"])
	require.Equal(t, "22", data["stateCode"])
	require.Equal(t, "Chhattisgarh", data["stateName"])
	require.Equal(t, "AAAAA0000A", data["pan"])

	st, body = do(t, http.MethodGet, srv.URL+"/gstin/short", "")
	require.Equal(t, http.StatusOK, st)
	data = body["data"].(map[string]any)
	require.Equal(t, false, data["valid"])
	require.NotContains(t, data, "pan")
}

func TestFormatEndpoints(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)

	st, body := do(t, http.MethodGet, srv.URL+"/format/amount?value=1234567", "")
	require.Equal(t, http.StatusOK, st)
	data := body["data"].(map[string]any)
	require.Equal(t, "12,34,567.00", data["grouped"])
	require.Equal(t, "₹12,34,567.00", data["currency"])

	st, body = do(t, http.MethodGet, srv.URL+"/format/amount?value=junk", "")
	require.Equal(t, http.StatusOK, st)
	data = body["data"].(map[string]any)
	require.Equal(t, "0.00", data["grouped"])
	require.Equal(t, "₹0.00", data["currency"])
	require.Equal(t, "Zero Rupees", data["inWords"])

	st, body = do(t, http.MethodGet, srv.URL+"/format/words?n=-42", "")
	require.Equal(t, http.StatusOK, st)
	require.Equal(t, "Minus Forty Two", body["data"].(map[string]any)["words"])
}
