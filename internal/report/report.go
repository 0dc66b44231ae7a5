// Package report содержит фильтрацию и агрегацию исторических записей
// продаж и склада для построения отчётов.
package report

import (
	"fmt"
	"time"

	"github.com/mmeshcher/partspos-system/internal/model"
)

// DateLayout — формат дат в исторических записях.
const DateLayout = "2006-01-02"

// ParseRange разбирает границы периода отчёта. Конечная дата включается
// целиком, до конца суток.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start date: %w", err)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end date: %w", err)
	}
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}

func inRange(date string, from, to time.Time) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(from) && !d.After(to)
}

// FilterSales возвращает записи о продажах, попадающие в период.
func FilterSales(records []model.SalesRecord, from, to time.Time) []model.SalesRecord {
	var out []model.SalesRecord
	for _, r := range records {
		if inRange(r.Date, from, to) {
			out = append(out, r)
		}
	}
	return out
}

// FilterMovements возвращает движения остатков, попадающие в период.
func FilterMovements(movements []model.InventoryMovement, from, to time.Time) []model.InventoryMovement {
	var out []model.InventoryMovement
	for _, m := range movements {
		if inRange(m.Date, from, to) {
			out = append(out, m)
		}
	}
	return out
}

// FilterLowStock возвращает события низкого остатка, попадающие в период.
func FilterLowStock(events []model.LowStockEvent, from, to time.Time) []model.LowStockEvent {
	var out []model.LowStockEvent
	for _, e := range events {
		if inRange(e.Date, from, to) {
			out = append(out, e)
		}
	}
	return out
}

// Aggregate сводит записи о продажах в итоговые метрики. На пустом входе
// средний чек равен нулю, деления на ноль не происходит.
func Aggregate(records []model.SalesRecord) model.ReportSummary {
	var s model.ReportSummary
	for _, r := range records {
		s.TotalSales += r.Total
		s.TotalTransactions++
		switch r.Channel {
		case model.ChannelInStore:
			s.InStoreSales += r.Total
		case model.ChannelOnline:
			s.OnlineSales += r.Total
		}
	}
	if s.TotalTransactions > 0 {
		s.AverageTransactionValue = s.TotalSales / float64(s.TotalTransactions)
	}
	return s
}
