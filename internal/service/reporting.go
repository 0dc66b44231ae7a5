package service

import (
	"context"

	"github.com/mmeshcher/partspos-system/internal/model"
	"github.com/mmeshcher/partspos-system/internal/report"
)

// ReportData содержит отчёт за период: агрегированные метрики и
// отфильтрованные исторические записи.
type ReportData struct {
	Start     string                    `json:"start"`
	End       string                    `json:"end"`
	Summary   model.ReportSummary       `json:"summary"`
	Sales     []model.SalesRecord       `json:"sales"`
	Movements []model.InventoryMovement `json:"movements"`
	LowStock  []model.LowStockEvent     `json:"lowStock"`
}

// ReportSummary строит отчёт за период. Обе границы включаются,
// конечная дата — до конца суток.
func (s *Service) ReportSummary(ctx context.Context, start, end string) (ReportData, error) {
	from, to, err := report.ParseRange(start, end)
	if err != nil {
		return ReportData{}, err
	}

	sales := report.FilterSales(s.log.Sales(), from, to)
	movements := report.FilterMovements(s.log.Movements(), from, to)
	lowStock := report.FilterLowStock(s.log.LowStockEvents(), from, to)

	summary := report.Aggregate(sales)
	summary.TotalInventoryMovements = len(movements)
	summary.LowStockEvents = len(lowStock)

	return ReportData{
		Start:     start,
		End:       end,
		Summary:   summary,
		Sales:     sales,
		Movements: movements,
		LowStock:  lowStock,
	}, nil
}

// MonthlyMetrics возвращает агрегированные метрики по всей истории без
// фильтра по датам.
func (s *Service) MonthlyMetrics(ctx context.Context) model.ReportSummary {
	summary := report.Aggregate(s.log.Sales())
	summary.TotalInventoryMovements = len(s.log.Movements())
	summary.LowStockEvents = len(s.log.LowStockEvents())
	return summary
}
