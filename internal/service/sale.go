package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/partspos-system/internal/model"
	"github.com/mmeshcher/partspos-system/internal/report"
)

// SaleQuote содержит расчёт сумм по незавершённой продаже.
type SaleQuote struct {
	Product    model.Product `json:"product"`
	Quantity   int           `json:"quantity"`
	UnitPrice  float64       `json:"unitPrice"`
	LineTotal  float64       `json:"lineTotal"`
	GrandTotal float64       `json:"grandTotal"`
}

// newInvoiceNumber формирует номер счёта вида INV-<метка времени в base36>.
func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
}

// QuoteSale рассчитывает суммы по выбранному товару и количеству.
// Количество вне диапазона от 1 до остатка отклоняется, а не ограничивается.
func (s *Service) QuoteSale(ctx context.Context, productID string, quantity int) (SaleQuote, error) {
	if productID == "" {
		return SaleQuote{}, ErrNoProductSelected
	}

	p, err := s.inventory.Get(productID)
	if err != nil {
		return SaleQuote{}, err
	}
	if quantity < 1 || quantity > p.QuantityInStock {
		return SaleQuote{}, ErrQuantityOutOfRange
	}

	lineTotal := p.Price * float64(quantity)
	return SaleQuote{
		Product:    p,
		Quantity:   quantity,
		UnitPrice:  p.Price,
		LineTotal:  lineTotal,
		GrandTotal: lineTotal,
	}, nil
}

func (s *Service) validateDraft(draft model.SaleDraft) error {
	if draft.ProductID == "" {
		return ErrNoProductSelected
	}
	if strings.TrimSpace(draft.Customer.Name) == "" {
		return ErrMissingCustomerName
	}
	return nil
}

// GenerateInvoice формирует номер счёта по черновику продажи без списания
// остатка. Продажа остаётся незавершённой.
func (s *Service) GenerateInvoice(ctx context.Context, draft model.SaleDraft) (model.Invoice, error) {
	if err := s.validateDraft(draft); err != nil {
		return model.Invoice{}, err
	}

	quote, err := s.QuoteSale(ctx, draft.ProductID, draft.Quantity)
	if err != nil {
		return model.Invoice{}, err
	}

	inv, err, _ := s.sf.Do("generate-invoice", func() (interface{}, error) {
		s.simulateLatency()
		return s.invoiceFromQuote(quote, draft.Customer.Name), nil
	})
	if err != nil {
		return model.Invoice{}, err
	}
	return inv.(model.Invoice), nil
}

// ConfirmSale завершает продажу в магазине: формирует счёт, списывает
// остаток проданного товара и дописывает записи в журнал отчётности.
// Списание атомарно, при нехватке остатка продажа не применяется.
// Повторная отправка во время обработки получает результат первого вызова.
func (s *Service) ConfirmSale(ctx context.Context, draft model.SaleDraft) (model.Invoice, error) {
	if err := s.validateDraft(draft); err != nil {
		return model.Invoice{}, err
	}

	quote, err := s.QuoteSale(ctx, draft.ProductID, draft.Quantity)
	if err != nil {
		return model.Invoice{}, err
	}

	inv, err, _ := s.sf.Do("confirm-sale", func() (interface{}, error) {
		s.simulateLatency()

		prev := quote.Product.QuantityInStock
		updated, err := s.inventory.AdjustStock(draft.ProductID, -draft.Quantity)
		if err != nil {
			return model.Invoice{}, err
		}

		invoice := s.invoiceFromQuote(quote, draft.Customer.Name)

		s.log.AppendSale(model.SalesRecord{
			Date:         time.Now().Format(report.DateLayout),
			ProductID:    updated.ID,
			ProductName:  updated.Name,
			Quantity:     draft.Quantity,
			UnitPrice:    quote.UnitPrice,
			Total:        quote.GrandTotal,
			Channel:      model.ChannelInStore,
			CustomerName: draft.Customer.Name,
		})
		s.recordMovement(updated, model.MovementSale, -draft.Quantity, prev)
		s.recordLowStockCrossing(prev, updated)

		s.logger.Info("sale confirmed",
			zap.String("invoice", invoice.Number),
			zap.String("productID", updated.ID),
			zap.Int("quantity", draft.Quantity),
			zap.Float64("total", invoice.GrandTotal))

		return invoice, nil
	})
	if err != nil {
		return model.Invoice{}, err
	}
	return inv.(model.Invoice), nil
}

func (s *Service) invoiceFromQuote(q SaleQuote, customerName string) model.Invoice {
	return model.Invoice{
		Number:       newInvoiceNumber(),
		ProductID:    q.Product.ID,
		Quantity:     q.Quantity,
		UnitPrice:    q.UnitPrice,
		LineTotal:    q.LineTotal,
		GrandTotal:   q.GrandTotal,
		CustomerName: customerName,
		CreatedAt:    time.Now(),
	}
}
