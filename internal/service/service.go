// Package service реализует бизнес-логику POS-системы магазина автозапчастей.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mmeshcher/partspos-system/internal/model"
	"github.com/mmeshcher/partspos-system/internal/report"
	"github.com/mmeshcher/partspos-system/internal/store"
)

// ErrMissingUsername возвращается при входе без имени пользователя.
var (
	ErrMissingUsername = errors.New("username is required")
	// ErrMissingPassword возвращается при входе без пароля.
	ErrMissingPassword = errors.New("password is required")
	// ErrPasswordTooShort возвращается, если пароль короче четырёх символов.
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
	// ErrUnknownRole возвращается при входе с неизвестной ролью.
	ErrUnknownRole = errors.New("unknown role")
	// ErrNoProductSelected возвращается при продаже без выбранного товара.
	ErrNoProductSelected = errors.New("no product selected")
	// ErrMissingCustomerName возвращается при продаже без имени покупателя.
	ErrMissingCustomerName = errors.New("customer name is required")
	// ErrQuantityOutOfRange возвращается, если количество вне диапазона от 1 до остатка.
	ErrQuantityOutOfRange = errors.New("quantity out of range")
	// ErrOrderCancelled возвращается при формировании счёта по отменённому заказу.
	ErrOrderCancelled = errors.New("order is cancelled")
)

// Service содержит бизнес-логику POS-системы. Все хранилища принадлежат
// сервису и передаются при создании, глобального состояния нет.
type Service struct {
	inventory *store.Inventory
	orders    *store.Orders
	log       *store.ReportLog
	logger    *zap.Logger

	threshold   int
	actionDelay time.Duration

	sessions *sessionState
	sf       singleflight.Group
}

// Options задают параметры поведения сервиса.
type Options struct {
	// LowStockThreshold — порог остатка для оповещений, по умолчанию 10.
	LowStockThreshold int
	// ActionDelay — имитация задержки интерактивных действий (вход,
	// подтверждение продажи, формирование счёта). Ноль отключает задержку.
	ActionDelay time.Duration
}

// NewService создаёт сервис поверх переданных хранилищ.
func NewService(inv *store.Inventory, orders *store.Orders, log *store.ReportLog, logger *zap.Logger, opts Options) *Service {
	if opts.LowStockThreshold <= 0 {
		opts.LowStockThreshold = store.DefaultLowStockThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		inventory:   inv,
		orders:      orders,
		log:         log,
		logger:      logger,
		threshold:   opts.LowStockThreshold,
		actionDelay: opts.ActionDelay,
		sessions:    newSessionState(),
	}
}

// simulateLatency имитирует задержку интерактивного действия.
// Задержка всегда доходит до конца, отмена не поддерживается.
func (s *Service) simulateLatency() {
	if s.actionDelay > 0 {
		time.Sleep(s.actionDelay)
	}
}

// SearchProducts возвращает товары каталога по подстроке запроса.
func (s *Service) SearchProducts(ctx context.Context, query string) []model.Product {
	return s.inventory.Search(query)
}

// GetProduct возвращает товар по идентификатору.
func (s *Service) GetProduct(ctx context.Context, id string) (model.Product, error) {
	return s.inventory.Get(id)
}

// AdjustStock корректирует остаток товара и записывает движение в журнал.
// Положительная корректировка считается пополнением, отрицательная — списанием.
func (s *Service) AdjustStock(ctx context.Context, productID string, delta int) (model.Product, error) {
	prev, err := s.inventory.Get(productID)
	if err != nil {
		return model.Product{}, err
	}

	updated, err := s.inventory.AdjustStock(productID, delta)
	if err != nil {
		return model.Product{}, err
	}

	movementType := model.MovementRestock
	if delta < 0 {
		movementType = model.MovementAdjustment
	}
	s.recordMovement(updated, movementType, delta, prev.QuantityInStock)
	s.recordLowStockCrossing(prev.QuantityInStock, updated)

	return updated, nil
}

// SetStock устанавливает абсолютное значение остатка товара и записывает
// движение в журнал как корректировку.
func (s *Service) SetStock(ctx context.Context, productID string, quantity int) (model.Product, error) {
	prev, err := s.inventory.Get(productID)
	if err != nil {
		return model.Product{}, err
	}

	updated, err := s.inventory.SetStock(productID, quantity)
	if err != nil {
		return model.Product{}, err
	}

	s.recordMovement(updated, model.MovementAdjustment, quantity-prev.QuantityInStock, prev.QuantityInStock)
	s.recordLowStockCrossing(prev.QuantityInStock, updated)

	return updated, nil
}

// AddProduct добавляет новый товар в каталог.
func (s *Service) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	return s.inventory.AddProduct(p)
}

// LowStockProducts возвращает товары с остатком не выше порога.
// Неположительный порог заменяется настроенным значением по умолчанию.
func (s *Service) LowStockProducts(ctx context.Context, threshold int) []model.Product {
	if threshold <= 0 {
		threshold = s.threshold
	}
	return s.inventory.LowStock(threshold)
}

// Orders возвращает все онлайн-заказы.
func (s *Service) Orders(ctx context.Context) []model.OnlineOrder {
	return s.orders.List()
}

// ConfirmOrder подтверждает онлайн-заказ в статусе Pending.
func (s *Service) ConfirmOrder(ctx context.Context, orderID string) (model.OnlineOrder, error) {
	return s.orders.Confirm(orderID)
}

// RejectOrder отменяет онлайн-заказ, если он ещё не отгружен и не отменён.
func (s *Service) RejectOrder(ctx context.Context, orderID string) (model.OnlineOrder, error) {
	return s.orders.Reject(orderID)
}

// ShipOrder отмечает подтверждённый заказ отгруженным.
func (s *Service) ShipOrder(ctx context.Context, orderID string) (model.OnlineOrder, error) {
	return s.orders.Ship(orderID)
}

// ApproveOrderInvoice формирует счёт по онлайн-заказу. Статус заказа не
// меняется; по отменённому заказу счёт не формируется. Повторное нажатие
// во время обработки получает результат первого вызова.
func (s *Service) ApproveOrderInvoice(ctx context.Context, orderID string) (string, error) {
	ref, err, _ := s.sf.Do("approve-invoice:"+orderID, func() (interface{}, error) {
		order, err := s.orders.Get(orderID)
		if err != nil {
			return "", err
		}
		if order.Status == model.OrderStatusCancelled {
			return "", fmt.Errorf("%w: %s", ErrOrderCancelled, orderID)
		}

		s.simulateLatency()
		return newInvoiceNumber(), nil
	})
	if err != nil {
		return "", err
	}
	return ref.(string), nil
}

func (s *Service) recordMovement(p model.Product, t model.MovementType, change, previous int) {
	s.log.AppendMovement(model.InventoryMovement{
		Date:           time.Now().Format(report.DateLayout),
		ProductID:      p.ID,
		ProductName:    p.Name,
		Type:           t,
		QuantityChange: change,
		PreviousStock:  previous,
		NewStock:       p.QuantityInStock,
	})
}

// recordLowStockCrossing фиксирует событие, когда остаток пересёк порог сверху вниз.
func (s *Service) recordLowStockCrossing(previous int, p model.Product) {
	if previous <= s.threshold || p.QuantityInStock > s.threshold {
		return
	}
	s.log.AppendLowStock(model.LowStockEvent{
		Date:        time.Now().Format(report.DateLayout),
		ProductID:   p.ID,
		ProductName: p.Name,
		StockLevel:  p.QuantityInStock,
		Threshold:   s.threshold,
	})
	s.logger.Warn("product stock is low",
		zap.String("productID", p.ID),
		zap.Int("stock", p.QuantityInStock),
		zap.Int("threshold", s.threshold))
}
