package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/dto"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	cancel *ucAppointment.CancelAppointment
	byDate *ucAppointment.ListAppointmentsByDate
	agenda *ucAppointment.ListAgenda
	log    *zap.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	byDate *ucAppointment.ListAppointmentsByDate,
	agenda *ucAppointment.ListAgenda,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		cancel: cancel,
		byDate: byDate,
		agenda: agenda,
		log:    log,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "JSON inválido.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), req.ToCommit())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

// List answers the side-panel agenda: today's appointments plus later ones
// grouped by date, after the service-type filter and text search.
func (h *AppointmentHandler) List(c *gin.Context) {
	today, err := todayParam(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	spec := domain.FilterSpec{
		ServiceType: c.DefaultQuery("service_type", domain.AllServices),
		Query:       c.Query("query"),
	}

	httpresp.OK(c, h.agenda.Execute(c.Request.Context(), spec, today))
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	aps, err := h.byDate.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.List(c, dto.ToAppointmentList(aps))
}
