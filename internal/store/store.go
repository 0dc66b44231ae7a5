// Package store содержит in-memory хранилища каталога, заказов и
// исторических записей. Состояние инициализируется из стартовых данных
// и живёт только до завершения процесса.
package store

import "errors"

// ErrProductNotFound возвращается, если товар с указанным идентификатором не найден.
var (
	ErrProductNotFound = errors.New("product not found")
	// ErrNegativeStock возвращается, если корректировка привела бы к отрицательному остатку.
	ErrNegativeStock = errors.New("resulting stock would be negative")
	// ErrMissingRequiredField возвращается при создании товара без обязательных полей.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrOrderNotFound возвращается, если заказ с указанным идентификатором не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidTransition возвращается при недопустимом переходе статуса заказа.
	ErrInvalidTransition = errors.New("invalid order status transition")
)
