package usecase

import (
	"context"

	"github.com/sekolahku/inventaris-api/internal/application/dto"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
)

// ReportUseCase builds the monitoring view: per item, how many units are
// in stock and how many are still out on loan. For every item,
// in_stock + outstanding never exceeds the provisioned total.
type ReportUseCase struct {
	itemRepo   repository.ItemRepository
	borrowRepo repository.BorrowRequestRepository
}

// NewReportUseCase builds the report usecase.
func NewReportUseCase(itemRepo repository.ItemRepository, borrowRepo repository.BorrowRequestRepository) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, borrowRepo: borrowRepo}
}

// InventorySummary returns one row per item with current stock and the
// outstanding borrowed quantity.
func (uc *ReportUseCase) InventorySummary(ctx context.Context) ([]dto.InventoryReportRow, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	outstanding, err := uc.borrowRepo.SumOutstandingByItem(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.InventoryReportRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, dto.InventoryReportRow{
			ItemID:      item.ID,
			Name:        item.Name,
			Type:        item.Type,
			InStock:     item.Quantity,
			Outstanding: outstanding[item.ID],
		})
	}
	return rows, nil
}
