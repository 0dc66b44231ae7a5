package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/partspos-system/internal/middleware"
	"github.com/mmeshcher/partspos-system/internal/rbac"
)

// SetupRouter настраивает HTTP-маршруты и middleware POS-системы.
// Каждая группа маршрутов закрыта проверкой доступа роли к
// соответствующему экрану — на уровне API, а не интерфейса.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Middleware)

			r.Post("/auth/logout", h.Logout)
			r.Get("/auth/session", h.GetSession)

			// Поиск по каталогу нужен и кассиру, и кладовщику.
			r.With(custommiddleware.RequireRoute(rbac.RouteSale, rbac.RouteManageInventory)).
				Get("/products", h.SearchProducts)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireRoute(rbac.RouteManageInventory))

				r.Post("/products", h.AddProduct)
				r.Get("/products/low-stock", h.LowStock)
				r.Post("/products/{productID}/stock", func(w http.ResponseWriter, r *http.Request) {
					h.UpdateStock(w, r, chi.URLParam(r, "productID"))
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireRoute(rbac.RouteSale))

				r.Post("/sale/quote", h.QuoteSale)
				r.Post("/sale/invoice", h.GenerateInvoice)
				r.Post("/sale/confirm", h.ConfirmSale)
			})

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireRoute(rbac.RouteOnlineOrders))

				r.Get("/orders", h.GetOrders)
				r.Post("/orders/{orderID}/confirm", func(w http.ResponseWriter, r *http.Request) {
					h.ConfirmOrder(w, r, chi.URLParam(r, "orderID"))
				})
				r.Post("/orders/{orderID}/reject", func(w http.ResponseWriter, r *http.Request) {
					h.RejectOrder(w, r, chi.URLParam(r, "orderID"))
				})
				r.Post("/orders/{orderID}/ship", func(w http.ResponseWriter, r *http.Request) {
					h.ShipOrder(w, r, chi.URLParam(r, "orderID"))
				})
				r.Post("/orders/{orderID}/invoice", func(w http.ResponseWriter, r *http.Request) {
					h.ApproveOrderInvoice(w, r, chi.URLParam(r, "orderID"))
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireRoute(rbac.RouteReports))

				r.Get("/reports/summary", h.ReportSummary)
				r.Get("/reports/metrics", h.MonthlyMetrics)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
