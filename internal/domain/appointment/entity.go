package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

// ===============================
// Service types
// ===============================

type ServiceType string

const (
	ServiceHaircut ServiceType = "haircut"
	ServiceDental  ServiceType = "dental"
	ServiceFitness ServiceType = "fitness"
	ServiceSpa     ServiceType = "spa"
	ServiceMedical ServiceType = "medical"
)

// AllServices is the filter sentinel that keeps every service type.
const AllServices = "all"

func DefaultServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceHaircut,
		ServiceDental,
		ServiceFitness,
		ServiceSpa,
		ServiceMedical,
	}
}

// ===============================
// Appointment
// ===============================

type Appointment struct {
	ID          string      `json:"id"`
	Date        Date        `json:"date"`
	Time        string      `json:"time"`
	ServiceType ServiceType `json:"service_type"`
	ServiceName string      `json:"service_name"`
	Location    string      `json:"location,omitempty"`
	ClientName  string      `json:"client_name,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type slotKey struct {
	date Date
	time string
}

func (a Appointment) slot() slotKey {
	return slotKey{date: a.Date, time: a.Time}
}

// ===============================
// Commit request
// ===============================

type CommitRequest struct {
	Date        string
	Time        string
	ServiceType string
	ServiceName string
	Notes       string
	ClientName  string
	Location    string
}

// Build validates the request against the schedule and returns the
// appointment it describes, still without an identity.
func (r CommitRequest) Build(schedule Schedule) (Appointment, error) {
	dateStr := strings.TrimSpace(r.Date)
	timeStr := strings.TrimSpace(r.Time)
	serviceTypeStr := strings.TrimSpace(r.ServiceType)
	serviceName := strings.TrimSpace(r.ServiceName)

	switch {
	case dateStr == "":
		return Appointment{}, httperr.ErrValidation(CodeMissingDate)
	case timeStr == "":
		return Appointment{}, httperr.ErrValidation(CodeMissingTime)
	case serviceTypeStr == "":
		return Appointment{}, httperr.ErrValidation(CodeMissingServiceType)
	case serviceName == "":
		return Appointment{}, httperr.ErrValidation(CodeMissingServiceName)
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		return Appointment{}, httperr.ErrValidation(CodeInvalidDate)
	}

	if !schedule.HasSlot(timeStr) {
		return Appointment{}, httperr.ErrValidation(CodeUnknownTimeSlot)
	}

	serviceType, ok := schedule.LookupServiceType(serviceTypeStr)
	if !ok {
		return Appointment{}, httperr.ErrValidation(CodeUnknownServiceType)
	}

	return Appointment{
		Date:        date,
		Time:        timeStr,
		ServiceType: serviceType,
		ServiceName: serviceName,
		Location:    strings.TrimSpace(r.Location),
		ClientName:  strings.TrimSpace(r.ClientName),
		Notes:       strings.TrimSpace(r.Notes),
	}, nil
}
