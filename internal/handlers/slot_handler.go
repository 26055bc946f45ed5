package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httpresp"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/middleware"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/timezone"
	ucSlot "github.com/RenanMEleoterio/BarberPro-sub000/internal/usecase/slot"
)

type SlotHandler struct {
	openUC   *ucSlot.Open
	batchUC  *ucSlot.OpenBatch
	markUC   *ucSlot.MarkAvailability
	removeUC *ucSlot.Remove
	listUC   *ucSlot.List
}

func NewSlotHandler(
	openUC *ucSlot.Open,
	batchUC *ucSlot.OpenBatch,
	markUC *ucSlot.MarkAvailability,
	removeUC *ucSlot.Remove,
	listUC *ucSlot.List,
) *SlotHandler {
	return &SlotHandler{
		openUC:   openUC,
		batchUC:  batchUC,
		markUC:   markUC,
		removeUC: removeUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OpenSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
}

type OpenSlotsBatchRequest struct {
	StartTimes []string `json:"start_times" binding:"required,min=1"`
}

type MarkAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// ======================================================
// OPEN
// ======================================================

func (h *SlotHandler) Open(c *gin.Context) {
	p := middleware.Principal(c)

	var req OpenSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
		return
	}

	start, err := timezone.ParseInstant(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Data ou hora inválida.")
		return
	}

	slot, err := h.openUC.Execute(c.Request.Context(), p, start)
	if err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível abrir o horário.")
		return
	}

	httpresp.Created(c, slot)
}

func (h *SlotHandler) OpenBatch(c *gin.Context) {
	p := middleware.Principal(c)

	var req OpenSlotsBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
		return
	}

	starts := make([]time.Time, 0, len(req.StartTimes))
	for _, raw := range req.StartTimes {
		start, err := timezone.ParseInstant(raw)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeValidation, "Data ou hora inválida.")
			return
		}
		starts = append(starts, start)
	}

	created, err := h.batchUC.Execute(c.Request.Context(), p, starts)
	if err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível abrir os horários.")
		return
	}

	httpresp.List(c, created)
}

// ======================================================
// AVAILABILITY / REMOVE
// ======================================================

func (h *SlotHandler) SetAvailability(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return
	}

	var req MarkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
		return
	}

	if err := h.markUC.Execute(c.Request.Context(), p, id, *req.IsAvailable); err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível alterar o horário.")
		return
	}

	c.Status(204)
}

func (h *SlotHandler) Remove(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), p, id); err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível remover o horário.")
		return
	}

	c.Status(204)
}

// ======================================================
// LIST
// ======================================================

// List returns a barber's calendar for one day (shop-local date) or an
// explicit [from, to) range of RFC 3339 instants.
func (h *SlotHandler) List(c *gin.Context) {
	barberID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return
	}

	var from, to time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		from, to, err = timezone.DayBounds(dateStr, c.Query("tz"))
		if err != nil {
			httperr.BadRequest(c, httperr.CodeValidation, "Data inválida.")
			return
		}
	} else {
		from, err = timezone.ParseInstant(c.Query("from"))
		if err != nil {
			httperr.BadRequest(c, httperr.CodeValidation, "Período inválido.")
			return
		}
		to, err = timezone.ParseInstant(c.Query("to"))
		if err != nil {
			httperr.BadRequest(c, httperr.CodeValidation, "Período inválido.")
			return
		}
	}

	slots, err := h.listUC.Execute(c.Request.Context(), barberID, from, to)
	if err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível listar os horários.")
		return
	}

	httpresp.List(c, slots)
}
