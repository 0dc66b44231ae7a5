package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/mmeshcher/partspos-system/internal/middleware"
	"github.com/mmeshcher/partspos-system/internal/model"
	"github.com/mmeshcher/partspos-system/internal/service"
	"github.com/mmeshcher/partspos-system/internal/store"
)

type stubService struct {
	session  model.Session
	loginErr error

	products []model.Product

	adjustProduct model.Product
	adjustErr     error

	orders        []model.OnlineOrder
	orderResp     model.OnlineOrder
	transitionErr error

	invoice    model.Invoice
	confirmErr error

	reportData service.ReportData
	reportErr  error
}

func (s *stubService) Login(ctx context.Context, username, password, role string) (model.Session, error) {
	return s.session, s.loginErr
}

func (s *stubService) Logout(ctx context.Context) {}

func (s *stubService) SessionByID(id string) (model.Session, bool) {
	if s.session.ID != id {
		return model.Session{}, false
	}
	return s.session, true
}

func (s *stubService) SearchProducts(ctx context.Context, query string) []model.Product {
	return s.products
}

func (s *stubService) AdjustStock(ctx context.Context, productID string, delta int) (model.Product, error) {
	return s.adjustProduct, s.adjustErr
}

func (s *stubService) SetStock(ctx context.Context, productID string, quantity int) (model.Product, error) {
	return s.adjustProduct, s.adjustErr
}

func (s *stubService) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	return s.adjustProduct, s.adjustErr
}

func (s *stubService) LowStockProducts(ctx context.Context, threshold int) []model.Product {
	return s.products
}

func (s *stubService) Orders(ctx context.Context) []model.OnlineOrder {
	return s.orders
}

func (s *stubService) ConfirmOrder(ctx context.Context, orderID string) (model.OnlineOrder, error) {
	return s.orderResp, s.transitionErr
}

func (s *stubService) RejectOrder(ctx context.Context, orderID string) (model.OnlineOrder, error) {
	return s.orderResp, s.transitionErr
}

func (s *stubService) ShipOrder(ctx context.Context, orderID string) (model.OnlineOrder, error) {
	return s.orderResp, s.transitionErr
}

func (s *stubService) ApproveOrderInvoice(ctx context.Context, orderID string) (string, error) {
	return s.invoice.Number, s.transitionErr
}

func (s *stubService) QuoteSale(ctx context.Context, productID string, quantity int) (service.SaleQuote, error) {
	return service.SaleQuote{}, s.confirmErr
}

func (s *stubService) GenerateInvoice(ctx context.Context, draft model.SaleDraft) (model.Invoice, error) {
	return s.invoice, s.confirmErr
}

func (s *stubService) ConfirmSale(ctx context.Context, draft model.SaleDraft) (model.Invoice, error) {
	return s.invoice, s.confirmErr
}

func (s *stubService) ReportSummary(ctx context.Context, start, end string) (service.ReportData, error) {
	return s.reportData, s.reportErr
}

func (s *stubService) MonthlyMetrics(ctx context.Context) model.ReportSummary {
	return s.reportData.Summary
}

func newTestRouter(stub *stubService) (http.Handler, *middleware.AuthMiddleware) {
	auth := middleware.NewAuthMiddleware("test-secret", stub)
	h := NewHandler(stub, zap.NewNop(), auth)
	return h.SetupRouter(), auth
}

func authCookie(auth *middleware.AuthMiddleware, sessionID string) *http.Cookie {
	w := httptest.NewRecorder()
	auth.SetAuthCookie(w, sessionID)
	return w.Result().Cookies()[0]
}

func TestLoginSuccess(t *testing.T) {
	stub := &stubService{session: model.Session{
		ID:       "sess-1",
		Username: "cashier",
		Role:     model.RoleSalesEmployee,
	}}
	router, _ := newTestRouter(stub)

	body, _ := json.Marshal(map[string]string{
		"username": "cashier",
		"password": "1234",
		"role":     "sales_employee",
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	router.ServeHTTP(w, r)

	res := w.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	if len(res.Cookies()) == 0 {
		t.Fatalf("login did not set session cookie")
	}

	var resp struct {
		Session      model.Session `json:"session"`
		DefaultRoute string        `json:"defaultRoute"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.DefaultRoute != "/sale" {
		t.Fatalf("defaultRoute = %q, want /sale", resp.DefaultRoute)
	}
	if resp.Session.ID != "sess-1" {
		t.Fatalf("session id = %q, want sess-1", resp.Session.ID)
	}
}

func TestLoginValidationErrorCode(t *testing.T) {
	stub := &stubService{loginErr: service.ErrPasswordTooShort}
	router, _ := newTestRouter(stub)

	body, _ := json.Marshal(map[string]string{"username": "cashier", "password": "abc", "role": "sales_employee"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

	res := w.Result()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "password_too_short" {
		t.Fatalf("error code = %q, want password_too_short", resp.Error)
	}
}

func TestUnauthenticatedRequest(t *testing.T) {
	router, _ := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestRouteAccessByRole(t *testing.T) {
	tests := []struct {
		name   string
		role   model.Role
		method string
		path   string
		want   int
	}{
		{"sales employee lists orders", model.RoleSalesEmployee, http.MethodGet, "/api/orders", http.StatusOK},
		{"sales employee searches products", model.RoleSalesEmployee, http.MethodGet, "/api/products", http.StatusOK},
		{"sales employee blocked from low stock", model.RoleSalesEmployee, http.MethodGet, "/api/products/low-stock", http.StatusForbidden},
		{"sales employee blocked from reports", model.RoleSalesEmployee, http.MethodGet, "/api/reports/summary?start=2025-12-01&end=2025-12-05", http.StatusForbidden},
		{"inventory manager searches products", model.RoleInventoryManager, http.MethodGet, "/api/products", http.StatusOK},
		{"inventory manager blocked from orders", model.RoleInventoryManager, http.MethodGet, "/api/orders", http.StatusForbidden},
		{"general manager reads reports", model.RoleGeneralManager, http.MethodGet, "/api/reports/summary?start=2025-12-01&end=2025-12-05", http.StatusOK},
		{"general manager blocked from products", model.RoleGeneralManager, http.MethodGet, "/api/products", http.StatusForbidden},
		{"general manager blocked from orders", model.RoleGeneralManager, http.MethodGet, "/api/orders", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubService{session: model.Session{ID: "sess-1", Role: tt.role}}
			router, auth := newTestRouter(stub)

			r := httptest.NewRequest(tt.method, tt.path, nil)
			r.AddCookie(authCookie(auth, "sess-1"))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			if w.Result().StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", w.Result().StatusCode, tt.want)
			}
		})
	}
}

func TestRejectShippedOrderMapsToConflict(t *testing.T) {
	stub := &stubService{
		session:       model.Session{ID: "sess-1", Role: model.RoleSalesEmployee},
		transitionErr: store.ErrInvalidTransition,
	}
	router, auth := newTestRouter(stub)

	r := httptest.NewRequest(http.MethodPost, "/api/orders/ORD-003/reject", nil)
	r.AddCookie(authCookie(auth, "sess-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	res := w.Result()
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusConflict)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "invalid_transition" {
		t.Fatalf("error code = %q, want invalid_transition", resp.Error)
	}
}

func TestUpdateStockNegativeMapsToConflict(t *testing.T) {
	stub := &stubService{
		session:   model.Session{ID: "sess-1", Role: model.RoleInventoryManager},
		adjustErr: store.ErrNegativeStock,
	}
	router, auth := newTestRouter(stub)

	body, _ := json.Marshal(map[string]int{"adjustment": -100})
	r := httptest.NewRequest(http.MethodPost, "/api/products/AP-001/stock", bytes.NewReader(body))
	r.AddCookie(authCookie(auth, "sess-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Result().StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Result().StatusCode, http.StatusConflict)
	}
}

func TestConfirmSaleMissingCustomerName(t *testing.T) {
	stub := &stubService{
		session:    model.Session{ID: "sess-1", Role: model.RoleSalesEmployee},
		confirmErr: service.ErrMissingCustomerName,
	}
	router, auth := newTestRouter(stub)

	body, _ := json.Marshal(model.SaleDraft{ProductID: "AP-001", Quantity: 1})
	r := httptest.NewRequest(http.MethodPost, "/api/sale/confirm", bytes.NewReader(body))
	r.AddCookie(authCookie(auth, "sess-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	res := w.Result()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "missing_customer_name" {
		t.Fatalf("error code = %q, want missing_customer_name", resp.Error)
	}
}

func TestSearchProductsIncludesStockStatus(t *testing.T) {
	stub := &stubService{
		session: model.Session{ID: "sess-1", Role: model.RoleSalesEmployee},
		products: []model.Product{
			{ID: "AP-005", Name: "Air Filter - Performance", QuantityInStock: 3},
		},
	}
	router, auth := newTestRouter(stub)

	r := httptest.NewRequest(http.MethodGet, "/api/products?q=air", nil)
	r.AddCookie(authCookie(auth, "sess-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	res := w.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var resp []struct {
		ID          string            `json:"id"`
		StockStatus model.StockStatus `json:"stockStatus"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].StockStatus != model.StockStatusCritical {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
