package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartLowStockMonitor запускает фоновый обход каталога: по товарам с
// остатком не выше порога пишется предупреждение в лог. Записи журнала
// событий добавляются в момент изменения остатка, а не при обходе.
// Каждый товар фиксируется один раз на уровень остатка.
func (s *Service) StartLowStockMonitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		seen := make(map[string]int)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.scanLowStock(seen)
			}
		}
	}()
}

func (s *Service) scanLowStock(seen map[string]int) {
	for _, p := range s.inventory.LowStock(s.threshold) {
		if level, ok := seen[p.ID]; ok && level == p.QuantityInStock {
			continue
		}
		seen[p.ID] = p.QuantityInStock

		s.logger.Warn("low stock detected",
			zap.String("productID", p.ID),
			zap.String("product", p.Name),
			zap.Int("stock", p.QuantityInStock),
			zap.Int("threshold", s.threshold))
	}
}
