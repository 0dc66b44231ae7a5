package store

import "github.com/mmeshcher/partspos-system/internal/model"

// SeedProducts возвращает стартовый каталог товаров.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID: "AP-001", Name: "Brake Pad Set - Front", Category: "Brakes",
			Price: 337.46, QuantityInStock: 24,
			Location:    model.Location{Aisle: "A", Shelf: "1"},
			Description: "High-performance ceramic brake pads for front wheels. Compatible with most sedan models.",
			Brand:       "Bosch", SKU: "BSH-BP-2024",
		},
		{
			ID: "AP-002", Name: "Oil Filter - Universal", Category: "Filters",
			Price: 48.71, QuantityInStock: 156,
			Location:    model.Location{Aisle: "A", Shelf: "2"},
			Description: "Universal fit oil filter for 4-cylinder engines.",
			Brand:       "Fram", SKU: "FRM-OF-1001",
		},
		{
			ID: "AP-003", Name: "Spark Plug Set (4pc)", Category: "Ignition",
			Price: 131.21, QuantityInStock: 48,
			Location:    model.Location{Aisle: "B", Shelf: "1"},
			Description: "Iridium spark plugs for improved performance and fuel efficiency.",
			Brand:       "NGK", SKU: "NGK-SP-4001",
		},
		{
			ID: "AP-004", Name: "Alternator - 12V 150A", Category: "Electrical",
			Price: 918.75, QuantityInStock: 8,
			Location:    model.Location{Aisle: "B", Shelf: "2"},
			Description: "High-output alternator for vehicles with heavy electrical loads.",
			Brand:       "Denso", SKU: "DNS-ALT-150",
		},
		{
			ID: "AP-005", Name: "Air Filter - Performance", Category: "Filters",
			Price: 172.46, QuantityInStock: 3,
			Location:    model.Location{Aisle: "A", Shelf: "3"},
			Description: "Reusable high-flow air filter for increased horsepower.",
			Brand:       "K&N", SKU: "KN-AF-2024",
		},
		{
			ID: "AP-006", Name: "Transmission Fluid - ATF", Category: "Fluids",
			Price: 108.71, QuantityInStock: 64,
			Location:    model.Location{Aisle: "C", Shelf: "1"},
			Description: "Synthetic automatic transmission fluid, 1 gallon.",
			Brand:       "Valvoline", SKU: "VAL-ATF-1G",
		},
		{
			ID: "AP-007", Name: "Serpentine Belt", Category: "Belts & Hoses",
			Price: 121.88, QuantityInStock: 5,
			Location:    model.Location{Aisle: "C", Shelf: "2"},
			Description: "EPDM rubber serpentine belt, 6-rib design.",
			Brand:       "Gates", SKU: "GTS-SB-6RB",
		},
		{
			ID: "AP-008", Name: "Wheel Bearing Hub Assembly", Category: "Suspension",
			Price: 667.50, QuantityInStock: 6,
			Location:    model.Location{Aisle: "B", Shelf: "3"},
			Description: "Complete wheel bearing hub assembly for front wheels.",
			Brand:       "Timken", SKU: "TMK-WBH-001",
		},
		{
			ID: "AP-009", Name: "Headlight Bulb - LED", Category: "Lighting",
			Price: 337.46, QuantityInStock: 42,
			Location:    model.Location{Aisle: "C", Shelf: "3"},
			Description: "6000K white LED headlight bulbs, pair.",
			Brand:       "Philips", SKU: "PHL-LED-6K",
		},
		{
			ID: "AP-010", Name: "Coolant - 50/50 Premix", Category: "Fluids",
			Price: 71.21, QuantityInStock: 72,
			Location:    model.Location{Aisle: "D", Shelf: "1"},
			Description: "Ready-to-use antifreeze coolant, 1 gallon.",
			Brand:       "Prestone", SKU: "PRS-CL-1G",
		},
		{
			ID: "AP-011", Name: "Shock Absorber - Rear", Category: "Suspension",
			Price: 468.71, QuantityInStock: 4,
			Location:    model.Location{Aisle: "D", Shelf: "2"},
			Description: "Gas-charged shock absorber for rear suspension.",
			Brand:       "Monroe", SKU: "MNR-SH-R01",
		},
		{
			ID: "AP-012", Name: "Battery - 12V 650CCA", Category: "Electrical",
			Price: 599.96, QuantityInStock: 12,
			Location:    model.Location{Aisle: "D", Shelf: "3"},
			Description: "Maintenance-free automotive battery with 3-year warranty.",
			Brand:       "DieHard", SKU: "DH-BAT-650",
		},
	}
}

// SeedOrders возвращает стартовый список онлайн-заказов.
func SeedOrders() []model.OnlineOrder {
	return []model.OnlineOrder{
		{
			ID: "ORD-001", CustomerName: "Ahmed Al-Hassan", CustomerPhone: "+966 50 123 4567",
			CustomerAddress: "123 King Fahd Road, Riyadh, Saudi Arabia",
			OrderDate:       "2025-12-05 09:30", Channel: "Online",
			Status: model.OrderStatusPending, TotalAmount: 285.00,
			PaymentStatus: model.PaymentStatusPaid,
			Notes:         "Please deliver before 5 PM",
			Items: []model.OrderItem{
				{
					Product:  model.Product{ID: "SKU-001", Name: "Brake Pad Set - Front", Category: "Brakes", Price: 85.00, QuantityInStock: 45, Location: model.Location{Aisle: "A1", Shelf: "S2"}},
					Quantity: 2, UnitPrice: 85.00, LineTotal: 170.00,
				},
				{
					Product:  model.Product{ID: "SKU-003", Name: "Engine Oil 5W-30 (5L)", Category: "Fluids", Price: 45.00, QuantityInStock: 120, Location: model.Location{Aisle: "B2", Shelf: "S1"}},
					Quantity: 1, UnitPrice: 45.00, LineTotal: 45.00,
				},
				{
					Product:  model.Product{ID: "SKU-005", Name: "Air Filter - Universal", Category: "Filters", Price: 35.00, QuantityInStock: 80, Location: model.Location{Aisle: "C1", Shelf: "S3"}},
					Quantity: 2, UnitPrice: 35.00, LineTotal: 70.00,
				},
			},
		},
		{
			ID: "ORD-002", CustomerName: "Fatima Mohammed", CustomerPhone: "+966 55 987 6543",
			CustomerAddress: "456 Olaya Street, Jeddah, Saudi Arabia",
			OrderDate:       "2025-12-05 11:15", Channel: "Online",
			Status: model.OrderStatusConfirmed, TotalAmount: 420.00,
			PaymentStatus: model.PaymentStatusPaid,
			Items: []model.OrderItem{
				{
					Product:  model.Product{ID: "SKU-002", Name: "Oil Filter - Toyota", Category: "Filters", Price: 25.00, QuantityInStock: 78, Location: model.Location{Aisle: "A2", Shelf: "S1"}},
					Quantity: 3, UnitPrice: 25.00, LineTotal: 75.00,
				},
				{
					Product:  model.Product{ID: "SKU-006", Name: "Spark Plug Set (4pc)", Category: "Ignition", Price: 55.00, QuantityInStock: 60, Location: model.Location{Aisle: "D1", Shelf: "S2"}},
					Quantity: 2, UnitPrice: 55.00, LineTotal: 110.00,
				},
				{
					Product:  model.Product{ID: "SKU-007", Name: "Alternator Belt", Category: "Belts", Price: 65.00, QuantityInStock: 35, Location: model.Location{Aisle: "E1", Shelf: "S1"}},
					Quantity: 1, UnitPrice: 65.00, LineTotal: 65.00,
				},
				{
					Product:  model.Product{ID: "SKU-001", Name: "Brake Pad Set - Front", Category: "Brakes", Price: 85.00, QuantityInStock: 45, Location: model.Location{Aisle: "A1", Shelf: "S2"}},
					Quantity: 2, UnitPrice: 85.00, LineTotal: 170.00,
				},
			},
		},
		{
			ID: "ORD-003", CustomerName: "Omar Abdullah", CustomerPhone: "+966 56 555 1234",
			CustomerAddress: "789 Tahlia Street, Dammam, Saudi Arabia",
			OrderDate:       "2025-12-04 16:45", Channel: "Online",
			Status: model.OrderStatusShipped, TotalAmount: 195.00,
			PaymentStatus: model.PaymentStatusPaid,
			Notes:         "Customer requested express shipping",
			Items: []model.OrderItem{
				{
					Product:  model.Product{ID: "SKU-004", Name: "Coolant Antifreeze (4L)", Category: "Fluids", Price: 38.00, QuantityInStock: 95, Location: model.Location{Aisle: "B2", Shelf: "S2"}},
					Quantity: 2, UnitPrice: 38.00, LineTotal: 76.00,
				},
				{
					Product:  model.Product{ID: "SKU-008", Name: "Headlight Bulb H7", Category: "Lighting", Price: 28.00, QuantityInStock: 150, Location: model.Location{Aisle: "F1", Shelf: "S1"}},
					Quantity: 4, UnitPrice: 28.00, LineTotal: 112.00,
				},
			},
		},
		{
			ID: "ORD-004", CustomerName: "Khalid Ibrahim", CustomerPhone: "+966 54 777 8899",
			CustomerAddress: "321 Prince Sultan Road, Riyadh, Saudi Arabia",
			OrderDate:       "2025-12-04 10:20", Channel: "Online",
			Status: model.OrderStatusCancelled, TotalAmount: 130.00,
			PaymentStatus: model.PaymentStatusFailed,
			Notes:         "Payment failed - customer requested cancellation",
			Items: []model.OrderItem{
				{
					Product:  model.Product{ID: "SKU-009", Name: "Windshield Wipers (Pair)", Category: "Accessories", Price: 42.00, QuantityInStock: 65, Location: model.Location{Aisle: "G1", Shelf: "S2"}},
					Quantity: 1, UnitPrice: 42.00, LineTotal: 42.00,
				},
				{
					Product:  model.Product{ID: "SKU-010", Name: "Battery Terminal Cleaner", Category: "Maintenance", Price: 18.00, QuantityInStock: 200, Location: model.Location{Aisle: "H1", Shelf: "S1"}},
					Quantity: 2, UnitPrice: 18.00, LineTotal: 36.00,
				},
				{
					Product:  model.Product{ID: "SKU-005", Name: "Air Filter - Universal", Category: "Filters", Price: 35.00, QuantityInStock: 80, Location: model.Location{Aisle: "C1", Shelf: "S3"}},
					Quantity: 1, UnitPrice: 35.00, LineTotal: 35.00,
				},
			},
		},
		{
			ID: "ORD-005", CustomerName: "Noura Al-Qahtani", CustomerPhone: "+966 50 333 4455",
			CustomerAddress: "567 Corniche Road, Jeddah, Saudi Arabia",
			OrderDate:       "2025-12-05 14:00", Channel: "Online",
			Status: model.OrderStatusPending, TotalAmount: 310.00,
			PaymentStatus: model.PaymentStatusPending,
			Items: []model.OrderItem{
				{
					Product:  model.Product{ID: "SKU-006", Name: "Spark Plug Set (4pc)", Category: "Ignition", Price: 55.00, QuantityInStock: 60, Location: model.Location{Aisle: "D1", Shelf: "S2"}},
					Quantity: 4, UnitPrice: 55.00, LineTotal: 220.00,
				},
				{
					Product:  model.Product{ID: "SKU-003", Name: "Engine Oil 5W-30 (5L)", Category: "Fluids", Price: 45.00, QuantityInStock: 120, Location: model.Location{Aisle: "B2", Shelf: "S1"}},
					Quantity: 2, UnitPrice: 45.00, LineTotal: 90.00,
				},
			},
		},
	}
}

// SeedSalesRecords возвращает стартовую историю продаж.
func SeedSalesRecords() []model.SalesRecord {
	return []model.SalesRecord{
		{ID: "SR-001", Date: "2025-12-01", ProductID: "AP-001", ProductName: "Brake Pad Set - Front", Quantity: 2, UnitPrice: 337.46, Total: 674.92, Channel: model.ChannelInStore, CustomerName: "Ahmed Al-Hassan"},
		{ID: "SR-002", Date: "2025-12-01", ProductID: "AP-002", ProductName: "Oil Filter - Universal", Quantity: 5, UnitPrice: 48.71, Total: 243.55, Channel: model.ChannelInStore, CustomerName: "Saad Al-Qahtani"},
		{ID: "SR-003", Date: "2025-12-02", ProductID: "AP-003", ProductName: "Spark Plug Set (4pc)", Quantity: 3, UnitPrice: 131.21, Total: 393.63, Channel: model.ChannelOnline, CustomerName: "Abdullah Al-Rashid"},
		{ID: "SR-004", Date: "2025-12-02", ProductID: "AP-004", ProductName: "Alternator - 12V 150A", Quantity: 1, UnitPrice: 918.75, Total: 918.75, Channel: model.ChannelInStore, CustomerName: "Mohammed Al-Saud"},
		{ID: "SR-005", Date: "2025-12-03", ProductID: "AP-005", ProductName: "Air Filter - Performance", Quantity: 4, UnitPrice: 172.46, Total: 689.84, Channel: model.ChannelOnline, CustomerName: "Khalid bin Hamad"},
		{ID: "SR-006", Date: "2025-12-03", ProductID: "AP-006", ProductName: "Transmission Fluid - ATF", Quantity: 6, UnitPrice: 108.71, Total: 652.26, Channel: model.ChannelInStore, CustomerName: "Omar Al-Faisal"},
		{ID: "SR-007", Date: "2025-12-04", ProductID: "AP-007", ProductName: "Serpentine Belt", Quantity: 2, UnitPrice: 121.88, Total: 243.76, Channel: model.ChannelInStore, CustomerName: "Youssef Al-Ahmad"},
		{ID: "SR-008", Date: "2025-12-04", ProductID: "AP-008", ProductName: "Wheel Bearing Hub Assembly", Quantity: 1, UnitPrice: 667.50, Total: 667.50, Channel: model.ChannelOnline, CustomerName: "Fahad Al-Turki"},
		{ID: "SR-009", Date: "2025-12-05", ProductID: "AP-009", ProductName: "Headlight Bulb - LED", Quantity: 3, UnitPrice: 337.46, Total: 1012.38, Channel: model.ChannelInStore, CustomerName: "Nasser Al-Dossary"},
		{ID: "SR-010", Date: "2025-12-05", ProductID: "AP-010", ProductName: "Coolant - 50/50 Premix", Quantity: 8, UnitPrice: 71.21, Total: 569.68, Channel: model.ChannelOnline, CustomerName: "Sultan Al-Otaibi"},
	}
}

// SeedInventoryMovements возвращает стартовую историю движений остатков.
func SeedInventoryMovements() []model.InventoryMovement {
	return []model.InventoryMovement{
		{ID: "IM-001", Date: "2025-12-01", ProductID: "AP-001", ProductName: "Brake Pad Set - Front", Type: model.MovementSale, QuantityChange: -2, PreviousStock: 26, NewStock: 24},
		{ID: "IM-002", Date: "2025-12-01", ProductID: "AP-002", ProductName: "Oil Filter - Universal", Type: model.MovementRestock, QuantityChange: 50, PreviousStock: 106, NewStock: 156},
		{ID: "IM-003", Date: "2025-12-02", ProductID: "AP-005", ProductName: "Air Filter - Performance", Type: model.MovementSale, QuantityChange: -4, PreviousStock: 7, NewStock: 3},
		{ID: "IM-004", Date: "2025-12-03", ProductID: "AP-007", ProductName: "Serpentine Belt", Type: model.MovementSale, QuantityChange: -2, PreviousStock: 7, NewStock: 5},
		{ID: "IM-005", Date: "2025-12-04", ProductID: "AP-011", ProductName: "Shock Absorber - Rear", Type: model.MovementAdjustment, QuantityChange: -2, PreviousStock: 6, NewStock: 4},
		{ID: "IM-006", Date: "2025-12-05", ProductID: "AP-003", ProductName: "Spark Plug Set (4pc)", Type: model.MovementRestock, QuantityChange: 20, PreviousStock: 28, NewStock: 48},
	}
}

// SeedLowStockEvents возвращает стартовые события низкого остатка.
func SeedLowStockEvents() []model.LowStockEvent {
	return []model.LowStockEvent{
		{ID: "LS-001", Date: "2025-12-02", ProductID: "AP-005", ProductName: "Air Filter - Performance", StockLevel: 3, Threshold: 10},
		{ID: "LS-002", Date: "2025-12-03", ProductID: "AP-007", ProductName: "Serpentine Belt", StockLevel: 5, Threshold: 10},
		{ID: "LS-003", Date: "2025-12-04", ProductID: "AP-011", ProductName: "Shock Absorber - Rear", StockLevel: 4, Threshold: 10},
		{ID: "LS-004", Date: "2025-12-05", ProductID: "AP-008", ProductName: "Wheel Bearing Hub Assembly", StockLevel: 6, Threshold: 10},
	}
}
