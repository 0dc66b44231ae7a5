// Package model содержит доменные сущности POS-системы магазина автозапчастей.
package model

import "time"

// Role определяет роль пользователя и набор доступных ему экранов.
type Role string

const (
	RoleSalesEmployee    Role = "sales_employee"
	RoleInventoryManager Role = "inventory_manager"
	RoleGeneralManager   Role = "general_manager"
)

// Session описывает активную сессию вошедшего пользователя.
type Session struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
}

// Location указывает место хранения товара на складе.
type Location struct {
	Aisle string `json:"aisle"`
	Shelf string `json:"shelf"`
}

// Product описывает товарную позицию каталога.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	QuantityInStock int      `json:"quantityInStock"`
	Location        Location `json:"location"`
	Description     string   `json:"description,omitempty"`
	Brand           string   `json:"brand,omitempty"`
	SKU             string   `json:"sku,omitempty"`
}

// StockStatus описывает уровень складского остатка товара.
type StockStatus string

const (
	StockStatusOut      StockStatus = "Out of Stock"
	StockStatusCritical StockStatus = "Critical"
	StockStatusLow      StockStatus = "Low Stock"
	StockStatusIn       StockStatus = "In Stock"
)

// OrderStatus описывает статус обработки онлайн-заказа.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// PaymentStatus описывает статус оплаты онлайн-заказа.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// OrderItem описывает одну позицию онлайн-заказа со снимком товара.
type OrderItem struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// OnlineOrder описывает онлайн-заказ покупателя.
type OnlineOrder struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	OrderDate       string        `json:"orderDate"`
	Channel         string        `json:"channel"`
	Status          OrderStatus   `json:"status"`
	TotalAmount     float64       `json:"totalAmount"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	Notes           string        `json:"notes,omitempty"`
	Items           []OrderItem   `json:"items"`
}

// Customer содержит данные покупателя при продаже в магазине.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// SaleDraft описывает незавершённую продажу в магазине. Черновик живёт
// только на время одного взаимодействия кассира и не сохраняется.
type SaleDraft struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Customer  Customer `json:"customer"`
}

// Invoice описывает сформированный счёт по завершённой продаже.
type Invoice struct {
	Number       string    `json:"number"`
	ProductID    string    `json:"productId"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unitPrice"`
	LineTotal    float64   `json:"lineTotal"`
	GrandTotal   float64   `json:"grandTotal"`
	CustomerName string    `json:"customerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SalesChannel описывает канал продажи в исторических записях.
type SalesChannel string

const (
	ChannelInStore SalesChannel = "In-Store"
	ChannelOnline  SalesChannel = "Online"
)

// SalesRecord описывает историческую запись о продаже для отчётности.
type SalesRecord struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	ProductID    string       `json:"productId"`
	ProductName  string       `json:"productName"`
	Quantity     int          `json:"quantity"`
	UnitPrice    float64      `json:"unitPrice"`
	Total        float64      `json:"total"`
	Channel      SalesChannel `json:"channel"`
	CustomerName string       `json:"customerName"`
}

// MovementType описывает тип движения складского остатка.
type MovementType string

const (
	MovementSale       MovementType = "Sale"
	MovementRestock    MovementType = "Restock"
	MovementAdjustment MovementType = "Adjustment"
)

// InventoryMovement описывает историческую запись движения остатка.
type InventoryMovement struct {
	ID             string       `json:"id"`
	Date           string       `json:"date"`
	ProductID      string       `json:"productId"`
	ProductName    string       `json:"productName"`
	Type           MovementType `json:"type"`
	QuantityChange int          `json:"quantityChange"`
	PreviousStock  int          `json:"previousStock"`
	NewStock       int          `json:"newStock"`
}

// LowStockEvent описывает факт снижения остатка товара до порога.
type LowStockEvent struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	StockLevel  int    `json:"stockLevel"`
	Threshold   int    `json:"threshold"`
}

// ReportSummary содержит агрегированные метрики по продажам и складу.
type ReportSummary struct {
	TotalSales              float64 `json:"totalSales"`
	TotalTransactions       int     `json:"totalTransactions"`
	InStoreSales            float64 `json:"inStoreSales"`
	OnlineSales             float64 `json:"onlineSales"`
	TotalInventoryMovements int     `json:"totalInventoryMovements"`
	LowStockEvents          int     `json:"lowStockEvents"`
	AverageTransactionValue float64 `json:"averageTransactionValue"`
}
