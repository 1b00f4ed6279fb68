package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sekolahku/inventaris-api/internal/application/usecase"
)

// ReportHandler serves the inventory monitoring view.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventorySummary godoc
// @Summary      Stock and outstanding loans per item
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryReportRow
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventorySummary(c *fiber.Ctx) error {
	rows, err := h.uc.InventorySummary(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}
