package store

import (
	"fmt"
	"sync"

	"github.com/mmeshcher/partspos-system/internal/model"
)

// ReportLog хранит неизменяемые исторические записи для отчётности:
// продажи, движения остатков и события низкого остатка. Записи только
// добавляются, ранее добавленные никогда не изменяются.
type ReportLog struct {
	mu        sync.RWMutex
	sales     []model.SalesRecord
	movements []model.InventoryMovement
	lowStock  []model.LowStockEvent
}

// NewReportLog создаёт журнал отчётности со стартовыми записями.
func NewReportLog(sales []model.SalesRecord, movements []model.InventoryMovement, lowStock []model.LowStockEvent) *ReportLog {
	return &ReportLog{
		sales:     append([]model.SalesRecord(nil), sales...),
		movements: append([]model.InventoryMovement(nil), movements...),
		lowStock:  append([]model.LowStockEvent(nil), lowStock...),
	}
}

// Sales возвращает все записи о продажах.
func (l *ReportLog) Sales() []model.SalesRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.SalesRecord, len(l.sales))
	copy(out, l.sales)
	return out
}

// Movements возвращает все записи движения остатков.
func (l *ReportLog) Movements() []model.InventoryMovement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.InventoryMovement, len(l.movements))
	copy(out, l.movements)
	return out
}

// LowStockEvents возвращает все события низкого остатка.
func (l *ReportLog) LowStockEvents() []model.LowStockEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.LowStockEvent, len(l.lowStock))
	copy(out, l.lowStock)
	return out
}

// AppendSale добавляет запись о продаже с последовательным идентификатором SR-NNN.
func (l *ReportLog) AppendSale(rec model.SalesRecord) model.SalesRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec.ID = fmt.Sprintf("SR-%03d", len(l.sales)+1)
	l.sales = append(l.sales, rec)
	return rec
}

// AppendMovement добавляет запись движения остатка с идентификатором IM-NNN.
func (l *ReportLog) AppendMovement(m model.InventoryMovement) model.InventoryMovement {
	l.mu.Lock()
	defer l.mu.Unlock()
	m.ID = fmt.Sprintf("IM-%03d", len(l.movements)+1)
	l.movements = append(l.movements, m)
	return m
}

// AppendLowStock добавляет событие низкого остатка с идентификатором LS-NNN.
func (l *ReportLog) AppendLowStock(e model.LowStockEvent) model.LowStockEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.ID = fmt.Sprintf("LS-%03d", len(l.lowStock)+1)
	l.lowStock = append(l.lowStock, e)
	return e
}
