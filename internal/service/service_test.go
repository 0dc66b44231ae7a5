package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/mmeshcher/partspos-system/internal/model"
	"github.com/mmeshcher/partspos-system/internal/store"
)

func newTestService() *Service {
	inv := store.NewInventory(store.SeedProducts())
	orders := store.NewOrders(store.SeedOrders())
	log := store.NewReportLog(nil, nil, nil)
	return NewService(inv, orders, log, nil, Options{})
}

func TestLoginValidationOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// имя проверяется раньше пароля
	_, err := svc.Login(ctx, "", "", "sales_employee")
	if !errors.Is(err, ErrMissingUsername) {
		t.Fatalf("expected ErrMissingUsername, got %v", err)
	}

	_, err = svc.Login(ctx, "cashier", "", "sales_employee")
	if !errors.Is(err, ErrMissingPassword) {
		t.Fatalf("expected ErrMissingPassword, got %v", err)
	}

	_, err = svc.Login(ctx, "cashier", "abc", "sales_employee")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	_, err = svc.Login(ctx, "cashier", "1234", "superuser")
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestLoginCreatesSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Login(ctx, "cashier", "1234", "sales_employee")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if session.ID == "" {
		t.Fatalf("session id is empty")
	}
	if session.Role != model.RoleSalesEmployee {
		t.Fatalf("session role = %s, want sales_employee", session.Role)
	}
	if session.DisplayName != "cashier" {
		t.Fatalf("display name = %q, want cashier", session.DisplayName)
	}

	current, ok := svc.CurrentSession(ctx)
	if !ok || current.ID != session.ID {
		t.Fatalf("CurrentSession does not match login result")
	}

	got, ok := svc.SessionByID(session.ID)
	if !ok || got.Username != "cashier" {
		t.Fatalf("SessionByID failed for active session")
	}

	svc.Logout(ctx)
	if _, ok := svc.CurrentSession(ctx); ok {
		t.Fatalf("session survived logout")
	}
}

func TestConfirmSaleValidationOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// без товара — даже при пустом имени покупателя
	_, err := svc.ConfirmSale(ctx, model.SaleDraft{Quantity: 1})
	if !errors.Is(err, ErrNoProductSelected) {
		t.Fatalf("expected ErrNoProductSelected, got %v", err)
	}

	_, err = svc.ConfirmSale(ctx, model.SaleDraft{ProductID: "AP-001", Quantity: 1})
	if !errors.Is(err, ErrMissingCustomerName) {
		t.Fatalf("expected ErrMissingCustomerName, got %v", err)
	}

	_, err = svc.ConfirmSale(ctx, model.SaleDraft{
		ProductID: "AP-001",
		Quantity:  0,
		Customer:  model.Customer{Name: "Ahmed"},
	})
	if !errors.Is(err, ErrQuantityOutOfRange) {
		t.Fatalf("expected ErrQuantityOutOfRange for zero quantity, got %v", err)
	}

	_, err = svc.ConfirmSale(ctx, model.SaleDraft{
		ProductID: "AP-005",
		Quantity:  100,
		Customer:  model.Customer{Name: "Ahmed"},
	})
	if !errors.Is(err, ErrQuantityOutOfRange) {
		t.Fatalf("expected ErrQuantityOutOfRange above stock, got %v", err)
	}
}

var invoicePattern = regexp.MustCompile(`^INV-[A-Z0-9]+$`)

func TestConfirmSaleDebitsStock(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, err := svc.GetProduct(ctx, "AP-001")
	if err != nil {
		t.Fatalf("GetProduct error: %v", err)
	}

	invoice, err := svc.ConfirmSale(ctx, model.SaleDraft{
		ProductID: "AP-001",
		Quantity:  3,
		Customer:  model.Customer{Name: "Ahmed Al-Hassan"},
	})
	if err != nil {
		t.Fatalf("ConfirmSale error: %v", err)
	}

	if !invoicePattern.MatchString(invoice.Number) {
		t.Fatalf("invoice number %q does not match INV-[A-Z0-9]+", invoice.Number)
	}

	after, err := svc.GetProduct(ctx, "AP-001")
	if err != nil {
		t.Fatalf("GetProduct error: %v", err)
	}
	if after.QuantityInStock != before.QuantityInStock-3 {
		t.Fatalf("stock = %d, want %d", after.QuantityInStock, before.QuantityInStock-3)
	}

	wantTotal := before.Price * 3
	if invoice.GrandTotal != wantTotal {
		t.Fatalf("grand total = %v, want %v", invoice.GrandTotal, wantTotal)
	}
}

func TestConfirmSaleAppendsReportRecords(t *testing.T) {
	inv := store.NewInventory(store.SeedProducts())
	orders := store.NewOrders(nil)
	log := store.NewReportLog(nil, nil, nil)
	svc := NewService(inv, orders, log, nil, Options{})
	ctx := context.Background()

	// AP-012: остаток 12, продажа 3 опускает его до 9 — ниже порога
	_, err := svc.ConfirmSale(ctx, model.SaleDraft{
		ProductID: "AP-012",
		Quantity:  3,
		Customer:  model.Customer{Name: "Omar"},
	})
	if err != nil {
		t.Fatalf("ConfirmSale error: %v", err)
	}

	sales := log.Sales()
	if len(sales) != 1 {
		t.Fatalf("sales records = %d, want 1", len(sales))
	}
	if sales[0].Channel != model.ChannelInStore {
		t.Fatalf("channel = %s, want In-Store", sales[0].Channel)
	}

	movements := log.Movements()
	if len(movements) != 1 || movements[0].Type != model.MovementSale {
		t.Fatalf("unexpected movements: %+v", movements)
	}
	if movements[0].QuantityChange != -3 || movements[0].NewStock != 9 {
		t.Fatalf("movement change/newStock = %d/%d, want -3/9", movements[0].QuantityChange, movements[0].NewStock)
	}

	events := log.LowStockEvents()
	if len(events) != 1 || events[0].ProductID != "AP-012" {
		t.Fatalf("expected low stock event for AP-012, got %+v", events)
	}
}

func TestGenerateInvoiceDoesNotDebitStock(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, _ := svc.GetProduct(ctx, "AP-002")

	invoice, err := svc.GenerateInvoice(ctx, model.SaleDraft{
		ProductID: "AP-002",
		Quantity:  2,
		Customer:  model.Customer{Name: "Saad"},
	})
	if err != nil {
		t.Fatalf("GenerateInvoice error: %v", err)
	}
	if !invoicePattern.MatchString(invoice.Number) {
		t.Fatalf("invoice number %q does not match INV-[A-Z0-9]+", invoice.Number)
	}

	after, _ := svc.GetProduct(ctx, "AP-002")
	if after.QuantityInStock != before.QuantityInStock {
		t.Fatalf("stock changed from %d to %d", before.QuantityInStock, after.QuantityInStock)
	}
}

func TestAdjustStockRecordsMovementType(t *testing.T) {
	inv := store.NewInventory(store.SeedProducts())
	log := store.NewReportLog(nil, nil, nil)
	svc := NewService(inv, store.NewOrders(nil), log, nil, Options{})
	ctx := context.Background()

	if _, err := svc.AdjustStock(ctx, "AP-002", 50); err != nil {
		t.Fatalf("AdjustStock error: %v", err)
	}
	if _, err := svc.AdjustStock(ctx, "AP-002", -20); err != nil {
		t.Fatalf("AdjustStock error: %v", err)
	}

	movements := log.Movements()
	if len(movements) != 2 {
		t.Fatalf("movements = %d, want 2", len(movements))
	}
	if movements[0].Type != model.MovementRestock {
		t.Fatalf("positive delta type = %s, want Restock", movements[0].Type)
	}
	if movements[1].Type != model.MovementAdjustment {
		t.Fatalf("negative delta type = %s, want Adjustment", movements[1].Type)
	}
}

func TestApproveOrderInvoice(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ref, err := svc.ApproveOrderInvoice(ctx, "ORD-001")
	if err != nil {
		t.Fatalf("ApproveOrderInvoice error: %v", err)
	}
	if !invoicePattern.MatchString(ref) {
		t.Fatalf("invoice ref %q does not match INV-[A-Z0-9]+", ref)
	}

	// статус не меняется
	orders := svc.Orders(ctx)
	if orders[0].Status != model.OrderStatusPending {
		t.Fatalf("approve invoice changed status to %s", orders[0].Status)
	}

	// по отменённому заказу счёт не формируется
	_, err = svc.ApproveOrderInvoice(ctx, "ORD-004")
	if !errors.Is(err, ErrOrderCancelled) {
		t.Fatalf("expected ErrOrderCancelled, got %v", err)
	}
}

func TestReportSummarySeedData(t *testing.T) {
	inv := store.NewInventory(store.SeedProducts())
	log := store.NewReportLog(store.SeedSalesRecords(), store.SeedInventoryMovements(), store.SeedLowStockEvents())
	svc := NewService(inv, store.NewOrders(nil), log, nil, Options{})
	ctx := context.Background()

	data, err := svc.ReportSummary(ctx, "2025-12-01", "2025-12-05")
	if err != nil {
		t.Fatalf("ReportSummary error: %v", err)
	}

	if data.Summary.TotalTransactions != 10 {
		t.Fatalf("transactions = %d, want 10", data.Summary.TotalTransactions)
	}
	if data.Summary.TotalInventoryMovements != 6 {
		t.Fatalf("movements = %d, want 6", data.Summary.TotalInventoryMovements)
	}
	if data.Summary.LowStockEvents != 4 {
		t.Fatalf("low stock events = %d, want 4", data.Summary.LowStockEvents)
	}
	if data.Summary.AverageTransactionValue != data.Summary.TotalSales/10 {
		t.Fatalf("average does not match total/count")
	}

	narrow, err := svc.ReportSummary(ctx, "2025-12-05", "2025-12-05")
	if err != nil {
		t.Fatalf("ReportSummary error: %v", err)
	}
	if narrow.Summary.TotalTransactions != 2 {
		t.Fatalf("transactions on 2025-12-05 = %d, want 2", narrow.Summary.TotalTransactions)
	}

	if _, err := svc.ReportSummary(ctx, "bad", "2025-12-05"); err == nil {
		t.Fatalf("expected error for invalid date range")
	}
}

func TestQuoteSale(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	quote, err := svc.QuoteSale(ctx, "AP-003", 2)
	if err != nil {
		t.Fatalf("QuoteSale error: %v", err)
	}
	if quote.LineTotal != 131.21*2 {
		t.Fatalf("line total = %v, want %v", quote.LineTotal, 131.21*2)
	}
	if quote.GrandTotal != quote.LineTotal {
		t.Fatalf("grand total = %v, want %v", quote.GrandTotal, quote.LineTotal)
	}

	if _, err := svc.QuoteSale(ctx, "", 1); !errors.Is(err, ErrNoProductSelected) {
		t.Fatalf("expected ErrNoProductSelected, got %v", err)
	}
	if _, err := svc.QuoteSale(ctx, "AP-003", 0); !errors.Is(err, ErrQuantityOutOfRange) {
		t.Fatalf("expected ErrQuantityOutOfRange, got %v", err)
	}
}

func TestLowStockProductsDefaultThreshold(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	low := svc.LowStockProducts(ctx, 0)
	if len(low) != 5 {
		t.Fatalf("low stock products = %d, want 5", len(low))
	}

	critical := svc.LowStockProducts(ctx, 5)
	if len(critical) != 3 {
		t.Fatalf("critical products = %d, want 3", len(critical))
	}
}
