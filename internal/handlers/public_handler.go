package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/appointment-scheduler/internal/ics"
	"github.com/BruksfildServices01/appointment-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the read-only views: day availability, the month
// grid and the ICS feed.
type PublicHandler struct {
	availability *ucAppointment.GetAvailability
	calendar     *ucAppointment.GetCalendarMonth
	store        *domain.Store
	loc          *time.Location
	clock        timezone.Clock
	log          *zap.Logger
}

func NewPublicHandler(
	availability *ucAppointment.GetAvailability,
	calendar *ucAppointment.GetCalendarMonth,
	store *domain.Store,
	loc *time.Location,
	clock timezone.Clock,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		calendar:     calendar,
		store:        store,
		loc:          loc,
		clock:        clock,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	av, err := h.availability.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, av)
}

////////////////////////////////////////////////////////
// CALENDAR
////////////////////////////////////////////////////////

// Calendar defaults year and month to the month containing today.
func (h *PublicHandler) Calendar(c *gin.Context) {
	today, err := todayParam(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	ref := today
	if ref.IsZero() {
		ref = h.clock.Today()
	}

	year, err := intParam(c, "year", ref.Year, domain.CodeInvalidYear)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	month, err := intParam(c, "month", int(ref.Month), domain.CodeInvalidMonth)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out, err := h.calendar.Execute(c.Request.Context(), year, month, today)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

////////////////////////////////////////////////////////
// ICS
////////////////////////////////////////////////////////

func (h *PublicHandler) ExportICS(c *gin.Context) {
	body := ics.Export(h.store.Snapshot(), h.loc, ics.DefaultSlotLength, h.clock())

	c.Header("Content-Disposition", `attachment; filename="appointments.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
