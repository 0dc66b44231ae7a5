package store

import (
	"fmt"
	"sync"

	"github.com/mmeshcher/partspos-system/internal/model"
)

// Допустимые переходы статусов заказа. Shipped и Cancelled — терминальные.
var validNext = map[model.OrderStatus]map[model.OrderStatus]bool{
	model.OrderStatusPending:   {model.OrderStatusConfirmed: true, model.OrderStatusCancelled: true},
	model.OrderStatusConfirmed: {model.OrderStatusShipped: true, model.OrderStatusCancelled: true},
	model.OrderStatusShipped:   {},
	model.OrderStatusCancelled: {},
}

// CanTransition сообщает, допустим ли переход заказа из одного статуса в другой.
func CanTransition(from, to model.OrderStatus) bool {
	return validNext[from][to]
}

// Orders хранит онлайн-заказы в памяти. Заказы никогда не удаляются,
// меняется только их статус.
type Orders struct {
	mu     sync.RWMutex
	orders []model.OnlineOrder
	index  map[string]int
}

// NewOrders создаёт хранилище заказов с указанными стартовыми данными.
func NewOrders(seed []model.OnlineOrder) *Orders {
	o := &Orders{
		orders: make([]model.OnlineOrder, 0, len(seed)),
		index:  make(map[string]int, len(seed)),
	}
	for _, ord := range seed {
		o.index[ord.ID] = len(o.orders)
		o.orders = append(o.orders, ord)
	}
	return o
}

// Get возвращает заказ по идентификатору.
func (o *Orders) Get(id string) (model.OnlineOrder, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	i, ok := o.index[id]
	if !ok {
		return model.OnlineOrder{}, ErrOrderNotFound
	}
	return o.orders[i], nil
}

// List возвращает все заказы в порядке добавления.
func (o *Orders) List() []model.OnlineOrder {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]model.OnlineOrder, len(o.orders))
	copy(out, o.orders)
	return out
}

func (o *Orders) transition(id string, to model.OrderStatus) (model.OnlineOrder, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	i, ok := o.index[id]
	if !ok {
		return model.OnlineOrder{}, ErrOrderNotFound
	}

	from := o.orders[i].Status
	if !CanTransition(from, to) {
		return model.OnlineOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	o.orders[i].Status = to
	return o.orders[i], nil
}

// Confirm подтверждает заказ. Допустимо только из статуса Pending.
func (o *Orders) Confirm(id string) (model.OnlineOrder, error) {
	return o.transition(id, model.OrderStatusConfirmed)
}

// Reject отклоняет заказ. Недопустимо для отгруженных и уже отменённых заказов.
func (o *Orders) Reject(id string) (model.OnlineOrder, error) {
	return o.transition(id, model.OrderStatusCancelled)
}

// Ship отмечает заказ отгруженным. Допустимо только из статуса Confirmed.
func (o *Orders) Ship(id string) (model.OnlineOrder, error) {
	return o.transition(id, model.OrderStatusShipped)
}
