package dto

import (
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

type CreateAppointmentRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // slot label, e.g. "10:00 AM"
	ServiceType string `json:"service_type"`
	ServiceName string `json:"service_name"`
	Notes       string `json:"notes"`
	ClientName  string `json:"client_name"`
	Location    string `json:"location"`
}

func (r CreateAppointmentRequest) ToCommit() domain.CommitRequest {
	return domain.CommitRequest{
		Date:        r.Date,
		Time:        r.Time,
		ServiceType: r.ServiceType,
		ServiceName: r.ServiceName,
		Notes:       r.Notes,
		ClientName:  r.ClientName,
		Location:    r.Location,
	}
}

type AppointmentListDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ServiceType string `json:"service_type"`
	ServiceName string `json:"service_name"`
	ClientName  string `json:"client_name,omitempty"`
	Location    string `json:"location,omitempty"`
}

func ToAppointmentList(aps []domain.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date.String(),
			Time:        ap.Time,
			ServiceType: string(ap.ServiceType),
			ServiceName: ap.ServiceName,
			ClientName:  ap.ClientName,
			Location:    ap.Location,
		})
	}
	return out
}
