package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httpresp"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/middleware"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/timezone"
	ucBooking "github.com/RenanMEleoterio/BarberPro-sub000/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC     *ucBooking.Book
	cancelUC   *ucBooking.Cancel
	updateUC   *ucBooking.Update
	completeUC *ucBooking.Complete
	listUC     *ucBooking.ListForPrincipal
	getUC      *ucBooking.Get
}

func NewAppointmentHandler(
	bookUC *ucBooking.Book,
	cancelUC *ucBooking.Cancel,
	updateUC *ucBooking.Update,
	completeUC *ucBooking.Complete,
	listUC *ucBooking.ListForPrincipal,
	getUC *ucBooking.Get,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:     bookUC,
		cancelUC:   cancelUC,
		updateUC:   updateUC,
		completeUC: completeUC,
		listUC:     listUC,
		getUC:      getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	BarberID      uint     `json:"barber_id" binding:"required"`
	StartTime     string   `json:"start_time" binding:"required"`
	ServiceID     *uint    `json:"service_id"`
	ServiceType   string   `json:"service_type"`
	ServicePrice  *float64 `json:"service_price"`
	PaymentMethod *string  `json:"payment_method"`
	Notes         string   `json:"notes"`
}

type UpdateAppointmentRequest struct {
	StartTime *string `json:"start_time"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	p := middleware.Principal(c)
	if p.Role != models.RoleClient {
		httperr.Forbidden(c, httperr.CodeForbidden, "Apenas clientes podem agendar.")
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
		return
	}

	start, err := timezone.ParseInstant(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Data ou hora inválida.")
		return
	}

	view, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookInput{
		ClientID:      p.UserID,
		BarberID:      req.BarberID,
		StartTime:     start,
		ServiceID:     req.ServiceID,
		ServiceType:   req.ServiceType,
		ServicePrice:  req.ServicePrice,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível agendar este horário.")
		return
	}

	httpresp.Created(c, view)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	p := middleware.Principal(c)

	views, err := h.listUC.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível listar os agendamentos.")
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return
	}

	view, err := h.getUC.Execute(c.Request.Context(), p, id)
	if err != nil {
		httperr.WriteBusiness(c, err, "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
		return
	}

	var startTime *time.Time
	if req.StartTime != nil {
		start, err := timezone.ParseInstant(*req.StartTime)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeValidation, "Data ou hora inválida.")
			return
		}
		startTime = &start
	}

	view, err := h.updateUC.Execute(c.Request.Context(), p, id, ucBooking.UpdateInput{
		StartTime: startTime,
		Notes:     req.Notes,
		Status:    req.Status,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível atualizar o agendamento.")
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), p, id); err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível cancelar o agendamento.")
		return
	}

	c.Status(204)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	p := middleware.Principal(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return
	}

	view, err := h.completeUC.Execute(c.Request.Context(), p, id)
	if err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível concluir o agendamento.")
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
