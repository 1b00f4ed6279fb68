package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sekolahku/inventaris-api/internal/application/dto"
	"github.com/sekolahku/inventaris-api/internal/application/requests"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

// RequestHandler exposes the three request workflows over one route family.
// The kind path segment selects the state machine.
type RequestHandler struct {
	uc *requests.UseCase
}

// NewRequestHandler builds the handler.
func NewRequestHandler(uc *requests.UseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

func parseKind(c *fiber.Ctx) (workflow.Kind, bool) {
	kind := workflow.Kind(c.Params("kind"))
	return kind, kind.IsValid()
}

func badKind(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_KIND", Message: "jenis permintaan tidak dikenal"})
}

// CreateConsumable godoc
// @Summary      Submit a consumable request
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsumableRequest  true  "item_id, quantity"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/requests/consumable [post]
func (h *RequestHandler) CreateConsumable(c *fiber.Ctx) error {
	var in dto.CreateConsumableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	id, err := h.uc.CreateConsumable(c.Context(), actorFromCtx(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// CreateBorrow godoc
// @Summary      Submit a borrow request
// @Tags         requests
// @Security     Bearer
// @Router       /api/requests/borrow [post]
func (h *RequestHandler) CreateBorrow(c *fiber.Ctx) error {
	var in dto.CreateBorrowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	id, err := h.uc.CreateBorrow(c.Context(), actorFromCtx(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// CreateReturn godoc
// @Summary      Submit a return request against an active loan
// @Tags         requests
// @Security     Bearer
// @Router       /api/requests/return [post]
func (h *RequestHandler) CreateReturn(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	id, err := h.uc.CreateReturn(c.Context(), actorFromCtx(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// List godoc
// @Summary      List requests of a kind
// @Description  Admin and Kepala Sekolah see every request; Pengguna only their own.
// @Tags         requests
// @Security     Bearer
// @Param        kind  path  string  true  "consumable | borrow | return"
// @Router       /api/requests/{kind} [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return badKind(c)
	}
	actor := actorFromCtx(c)
	switch kind {
	case workflow.KindConsumable:
		reqs, err := h.uc.ListConsumables(c.Context(), actor)
		if err != nil {
			return errorResponse(c, err)
		}
		out := make([]dto.ConsumableRequestResponse, 0, len(reqs))
		for _, r := range reqs {
			out = append(out, toConsumableResponse(r))
		}
		return c.JSON(out)
	case workflow.KindBorrow:
		reqs, err := h.uc.ListBorrows(c.Context(), actor)
		if err != nil {
			return errorResponse(c, err)
		}
		out := make([]dto.BorrowRequestResponse, 0, len(reqs))
		for _, r := range reqs {
			out = append(out, toBorrowResponse(r))
		}
		return c.JSON(out)
	default:
		reqs, err := h.uc.ListReturns(c.Context(), actor)
		if err != nil {
			return errorResponse(c, err)
		}
		out := make([]dto.ReturnRequestResponse, 0, len(reqs))
		for _, r := range reqs {
			out = append(out, toReturnResponse(r))
		}
		return c.JSON(out)
	}
}

// GetByID godoc
// @Summary      Get one request
// @Tags         requests
// @Security     Bearer
// @Router       /api/requests/{kind}/{id} [get]
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return badKind(c)
	}
	actor := actorFromCtx(c)
	id := c.Params("id")
	switch kind {
	case workflow.KindConsumable:
		r, err := h.uc.GetConsumable(c.Context(), actor, id)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(toConsumableResponse(r))
	case workflow.KindBorrow:
		r, err := h.uc.GetBorrow(c.Context(), actor, id)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(toBorrowResponse(r))
	default:
		r, err := h.uc.GetReturn(c.Context(), actor, id)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(toReturnResponse(r))
	}
}

// Transitions godoc
// @Summary      List the statuses the caller may move a request to
// @Tags         requests
// @Security     Bearer
// @Router       /api/requests/{kind}/{id}/transitions [get]
func (h *RequestHandler) Transitions(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return badKind(c)
	}
	targets, err := h.uc.PermittedTransitions(c.Context(), actorFromCtx(c).Role, kind, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	if targets == nil {
		targets = []string{}
	}
	return c.JSON(fiber.Map{"permitted": targets})
}

// Transition godoc
// @Summary      Move a request to a new status
// @Description  Applies the tied inventory adjustment and writes an audit record in the same transaction.
// @Tags         requests
// @Security     Bearer
// @Param        body  body  dto.TransitionRequest  true  "target_status, notes"
// @Router       /api/requests/{kind}/{id}/transition [post]
func (h *RequestHandler) Transition(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return badKind(c)
	}
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if err := h.uc.Transition(c.Context(), kind, c.Params("id"), actorFromCtx(c), in.TargetStatus, in.Notes); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"status": in.TargetStatus})
}

// History godoc
// @Summary      Audit trail of a request
// @Tags         requests
// @Security     Bearer
// @Router       /api/requests/{kind}/{id}/history [get]
func (h *RequestHandler) History(c *fiber.Ctx) error {
	kind, ok := parseKind(c)
	if !ok {
		return badKind(c)
	}
	events, err := h.uc.History(c.Context(), actorFromCtx(c), kind, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.TransitionEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return c.JSON(out)
}

func toConsumableResponse(r *entity.ConsumableRequest) dto.ConsumableRequestResponse {
	return dto.ConsumableRequestResponse{
		ID:           r.ID,
		ItemID:       r.ItemID,
		RequesterID:  r.RequesterID,
		Quantity:     r.Quantity,
		RequestDate:  r.RequestDate,
		Status:       r.Status,
		AdminNotes:   r.AdminNotes,
		ApproverID:   r.ApproverID,
		ApprovalDate: r.ApprovalDate,
	}
}

func toBorrowResponse(r *entity.BorrowRequest) dto.BorrowRequestResponse {
	return dto.BorrowRequestResponse{
		ID:                r.ID,
		ItemID:            r.ItemID,
		RequesterID:       r.RequesterID,
		Quantity:          r.Quantity,
		RemainingQuantity: r.RemainingQuantity,
		RequestDate:       r.RequestDate,
		BorrowStartDate:   r.BorrowStartDate,
		DueDate:           r.DueDate,
		Status:            r.Status,
		AdminNotes:        r.AdminNotes,
		ApproverID:        r.ApproverID,
		ApprovalDate:      r.ApprovalDate,
		ReturnedDate:      r.ReturnedDate,
		ReturnedBy:        r.ReturnedBy,
	}
}

func toReturnResponse(r *entity.ReturnRequest) dto.ReturnRequestResponse {
	return dto.ReturnRequestResponse{
		ID:              r.ID,
		BorrowRequestID: r.BorrowRequestID,
		ItemID:          r.ItemID,
		RequesterID:     r.RequesterID,
		Quantity:        r.Quantity,
		RequestDate:     r.RequestDate,
		Status:          r.Status,
		AdminNotes:      r.AdminNotes,
		ApproverID:      r.ApproverID,
		ApprovalDate:    r.ApprovalDate,
	}
}

func toEventResponse(ev *entity.TransitionEvent) dto.TransitionEventResponse {
	return dto.TransitionEventResponse{
		ID:            ev.ID,
		RequestKind:   ev.RequestKind,
		RequestID:     ev.RequestID,
		ItemID:        ev.ItemID,
		ActorID:       ev.ActorID,
		ActorRole:     string(ev.ActorRole),
		FromStatus:    ev.FromStatus,
		ToStatus:      ev.ToStatus,
		QuantityDelta: ev.QuantityDelta,
		Notes:         ev.Notes,
		CreatedAt:     ev.CreatedAt,
	}
}
