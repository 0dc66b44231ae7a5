// Package handler содержит HTTP-обработчики API POS-системы.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mmeshcher/partspos-system/internal/middleware"
	"github.com/mmeshcher/partspos-system/internal/model"
	"github.com/mmeshcher/partspos-system/internal/rbac"
	"github.com/mmeshcher/partspos-system/internal/service"
	"github.com/mmeshcher/partspos-system/internal/store"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Login(ctx context.Context, username, password, role string) (model.Session, error)
	Logout(ctx context.Context)

	SearchProducts(ctx context.Context, query string) []model.Product
	AdjustStock(ctx context.Context, productID string, delta int) (model.Product, error)
	SetStock(ctx context.Context, productID string, quantity int) (model.Product, error)
	AddProduct(ctx context.Context, p model.Product) (model.Product, error)
	LowStockProducts(ctx context.Context, threshold int) []model.Product

	Orders(ctx context.Context) []model.OnlineOrder
	ConfirmOrder(ctx context.Context, orderID string) (model.OnlineOrder, error)
	RejectOrder(ctx context.Context, orderID string) (model.OnlineOrder, error)
	ShipOrder(ctx context.Context, orderID string) (model.OnlineOrder, error)
	ApproveOrderInvoice(ctx context.Context, orderID string) (string, error)

	QuoteSale(ctx context.Context, productID string, quantity int) (service.SaleQuote, error)
	GenerateInvoice(ctx context.Context, draft model.SaleDraft) (model.Invoice, error)
	ConfirmSale(ctx context.Context, draft model.SaleDraft) (model.Invoice, error)

	ReportSummary(ctx context.Context, start, end string) (service.ReportData, error)
	MonthlyMetrics(ctx context.Context) model.ReportSummary
}

// Handler реализует HTTP-обработчики API POS-системы.
type Handler struct {
	service        Service
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{
		service:        s,
		logger:         logger,
		authMiddleware: auth,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorCode переводит ошибку бизнес-логики в HTTP-статус и код для клиента.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrMissingUsername):
		return http.StatusBadRequest, "missing_username"
	case errors.Is(err, service.ErrMissingPassword):
		return http.StatusBadRequest, "missing_password"
	case errors.Is(err, service.ErrPasswordTooShort):
		return http.StatusBadRequest, "password_too_short"
	case errors.Is(err, service.ErrUnknownRole):
		return http.StatusBadRequest, "unknown_role"
	case errors.Is(err, service.ErrNoProductSelected):
		return http.StatusBadRequest, "no_product_selected"
	case errors.Is(err, service.ErrMissingCustomerName):
		return http.StatusBadRequest, "missing_customer_name"
	case errors.Is(err, service.ErrQuantityOutOfRange):
		return http.StatusBadRequest, "quantity_out_of_range"
	case errors.Is(err, store.ErrMissingRequiredField):
		return http.StatusBadRequest, "missing_required_field"
	case errors.Is(err, store.ErrProductNotFound):
		return http.StatusNotFound, "product_not_found"
	case errors.Is(err, store.ErrOrderNotFound):
		return http.StatusNotFound, "order_not_found"
	case errors.Is(err, store.ErrNegativeStock):
		return http.StatusConflict, "negative_stock"
	case errors.Is(err, store.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, service.ErrOrderCancelled):
		return http.StatusConflict, "order_cancelled"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, code := errorCode(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: code})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Session      model.Session `json:"session"`
	DefaultRoute string        `json:"defaultRoute"`
}

// Login выполняет вход пользователя и установку cookie сессии. В ответе
// передаётся маршрут, на который клиент переходит после входа.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.authMiddleware.SetAuthCookie(w, session.ID)
	writeJSON(w, http.StatusOK, loginResponse{
		Session:      session,
		DefaultRoute: rbac.DefaultRoute(session.Role),
	})
}

// Logout завершает текущую сессию и сбрасывает cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	h.authMiddleware.ClearAuthCookie(w)
	w.WriteHeader(http.StatusOK)
}

// GetSession возвращает активную сессию текущего пользователя.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type productResponse struct {
	model.Product
	StockStatus model.StockStatus `json:"stockStatus"`
}

func toProductResponses(products []model.Product) []productResponse {
	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, productResponse{Product: p, StockStatus: store.StockStatusFor(p.QuantityInStock)})
	}
	return resp
}

// SearchProducts возвращает товары каталога по строке поиска.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products := h.service.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// AddProduct добавляет новый товар в каталог.
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.service.AddProduct(r.Context(), p)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, productResponse{Product: created, StockStatus: store.StockStatusFor(created.QuantityInStock)})
}

type stockUpdateRequest struct {
	Adjustment *int `json:"adjustment,omitempty"`
	Quantity   *int `json:"quantity,omitempty"`
}

// UpdateStock меняет остаток товара: либо знаковой поправкой, либо
// установкой абсолютного значения.
func (h *Handler) UpdateStock(w http.ResponseWriter, r *http.Request, productID string) {
	var req stockUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var (
		updated model.Product
		err     error
	)
	switch {
	case req.Adjustment != nil:
		updated, err = h.service.AdjustStock(r.Context(), productID, *req.Adjustment)
	case req.Quantity != nil:
		updated, err = h.service.SetStock(r.Context(), productID, *req.Quantity)
	default:
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productResponse{Product: updated, StockStatus: store.StockStatusFor(updated.QuantityInStock)})
}

// LowStock возвращает товары с остатком не выше порога.
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold := 0
	if v := r.URL.Query().Get("threshold"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	products := h.service.LowStockProducts(r.Context(), threshold)
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// GetOrders возвращает список онлайн-заказов.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Orders(r.Context()))
}

func (h *Handler) orderTransition(w http.ResponseWriter, r *http.Request, orderID string,
	fn func(context.Context, string) (model.OnlineOrder, error)) {
	order, err := fn(r.Context(), orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// ConfirmOrder подтверждает онлайн-заказ.
func (h *Handler) ConfirmOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	h.orderTransition(w, r, orderID, h.service.ConfirmOrder)
}

// RejectOrder отклоняет онлайн-заказ.
func (h *Handler) RejectOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	h.orderTransition(w, r, orderID, h.service.RejectOrder)
}

// ShipOrder отмечает заказ отгруженным.
func (h *Handler) ShipOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	h.orderTransition(w, r, orderID, h.service.ShipOrder)
}

type invoiceRefResponse struct {
	Invoice string `json:"invoice"`
}

// ApproveOrderInvoice формирует счёт по онлайн-заказу без смены статуса.
func (h *Handler) ApproveOrderInvoice(w http.ResponseWriter, r *http.Request, orderID string) {
	ref, err := h.service.ApproveOrderInvoice(r.Context(), orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoiceRefResponse{Invoice: ref})
}

type quoteRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// QuoteSale рассчитывает суммы по выбранному товару и количеству.
func (h *Handler) QuoteSale(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	quote, err := h.service.QuoteSale(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *Handler) saleAction(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, model.SaleDraft) (model.Invoice, error)) {
	var draft model.SaleDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	invoice, err := fn(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

// GenerateInvoice формирует счёт по черновику продажи без списания остатка.
func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	h.saleAction(w, r, h.service.GenerateInvoice)
}

// ConfirmSale завершает продажу в магазине.
func (h *Handler) ConfirmSale(w http.ResponseWriter, r *http.Request) {
	h.saleAction(w, r, h.service.ConfirmSale)
}

// ReportSummary строит отчёт за период, указанный параметрами start и end.
func (h *Handler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	data, err := h.service.ReportSummary(r.Context(), start, end)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// MonthlyMetrics возвращает агрегированные метрики по всей истории.
func (h *Handler) MonthlyMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.MonthlyMetrics(r.Context()))
}
