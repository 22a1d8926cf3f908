package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]domain.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, row := range rows {
		ap, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap domain.Appointment,
) error {

	row := toModel(ap)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrConflict(domain.CodeSlotConflict)
		}
		return fmt.Errorf("create appointment %s: %w", ap.ID, err)
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return fmt.Errorf("delete appointment %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(domain.CodeNotFound)
	}
	return nil
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func toModel(ap domain.Appointment) models.Appointment {
	return models.Appointment{
		ID:          ap.ID,
		Date:        ap.Date.String(),
		Time:        ap.Time,
		ServiceType: string(ap.ServiceType),
		ServiceName: ap.ServiceName,
		Location:    ap.Location,
		ClientName:  ap.ClientName,
		Notes:       ap.Notes,
		CreatedAt:   ap.CreatedAt,
	}
}

func toDomain(row models.Appointment) (domain.Appointment, error) {
	date, err := domain.ParseDate(row.Date)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("appointment %s: %w", row.ID, err)
	}
	return domain.Appointment{
		ID:          row.ID,
		Date:        date,
		Time:        row.Time,
		ServiceType: domain.ServiceType(row.ServiceType),
		ServiceName: row.ServiceName,
		Location:    row.Location,
		ClientName:  row.ClientName,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
	}, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
