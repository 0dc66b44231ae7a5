package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mmeshcher/partspos-system/internal/model"
)

// DefaultLowStockThreshold — порог остатка, ниже которого товар считается заканчивающимся.
const DefaultLowStockThreshold = 10

// Inventory хранит каталог товаров в памяти с сохранением порядка добавления.
type Inventory struct {
	mu       sync.RWMutex
	products []model.Product
	index    map[string]int
}

// NewInventory создаёт хранилище каталога с указанными стартовыми товарами.
func NewInventory(seed []model.Product) *Inventory {
	inv := &Inventory{
		products: make([]model.Product, 0, len(seed)),
		index:    make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		inv.index[p.ID] = len(inv.products)
		inv.products = append(inv.products, p)
	}
	return inv
}

// Get возвращает товар по идентификатору.
func (inv *Inventory) Get(id string) (model.Product, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	i, ok := inv.index[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return inv.products[i], nil
}

// Search возвращает товары, в которых подстрока запроса встречается в
// названии, идентификаторе, категории или бренде. Регистр не учитывается,
// пустой запрос возвращает весь каталог. Порядок — порядок добавления.
func (inv *Inventory) Search(query string) []model.Product {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]model.Product, len(inv.products))
		copy(out, inv.products)
		return out
	}

	var out []model.Product
	for _, p := range inv.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.ID), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.Brand), query) {
			out = append(out, p)
		}
	}
	return out
}

// AdjustStock применяет знаковую корректировку к остатку товара.
// Корректировка атомарна: при отрицательном итоге остаток не меняется.
func (inv *Inventory) AdjustStock(id string, delta int) (model.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	i, ok := inv.index[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}

	next := inv.products[i].QuantityInStock + delta
	if next < 0 {
		return model.Product{}, fmt.Errorf("%w: %s has %d, delta %d", ErrNegativeStock, id, inv.products[i].QuantityInStock, delta)
	}

	inv.products[i].QuantityInStock = next
	return inv.products[i], nil
}

// SetStock устанавливает абсолютное значение остатка товара.
func (inv *Inventory) SetStock(id string, quantity int) (model.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	i, ok := inv.index[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	if quantity < 0 {
		return model.Product{}, fmt.Errorf("%w: %s set to %d", ErrNegativeStock, id, quantity)
	}

	inv.products[i].QuantityInStock = quantity
	return inv.products[i], nil
}

// AddProduct добавляет новый товар в каталог. Название, категория,
// положительная цена и неотрицательный остаток обязательны. Пустой
// идентификатор заменяется последовательным вида AP-NNN.
func (inv *Inventory) AddProduct(p model.Product) (model.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return model.Product{}, fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	if strings.TrimSpace(p.Category) == "" {
		return model.Product{}, fmt.Errorf("%w: category", ErrMissingRequiredField)
	}
	if p.Price < 0 {
		return model.Product{}, fmt.Errorf("%w: price", ErrMissingRequiredField)
	}
	if p.QuantityInStock < 0 {
		return model.Product{}, fmt.Errorf("%w: quantityInStock", ErrMissingRequiredField)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if p.ID == "" {
		p.ID = fmt.Sprintf("AP-%03d", len(inv.products)+1)
	}
	if _, exists := inv.index[p.ID]; exists {
		return model.Product{}, fmt.Errorf("product %s already exists", p.ID)
	}

	inv.index[p.ID] = len(inv.products)
	inv.products = append(inv.products, p)
	return p, nil
}

// LowStock возвращает товары с остатком не выше порога.
func (inv *Inventory) LowStock(threshold int) []model.Product {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	var out []model.Product
	for _, p := range inv.products {
		if p.QuantityInStock <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// Len возвращает количество товаров в каталоге.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.products)
}

// StockStatusFor классифицирует остаток по трёхуровневой шкале.
// Исторический двухуровневый вариант экрана поиска (<10 — низкий, иначе в
// наличии) сознательно не используется: канонической считается трёхуровневая.
func StockStatusFor(quantity int) model.StockStatus {
	switch {
	case quantity == 0:
		return model.StockStatusOut
	case quantity <= 5:
		return model.StockStatusCritical
	case quantity <= DefaultLowStockThreshold:
		return model.StockStatusLow
	default:
		return model.StockStatusIn
	}
}
