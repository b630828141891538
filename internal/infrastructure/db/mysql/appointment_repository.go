package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/agendly/booking-system/internal/core/domain"
)

// appointmentRow carries the slot uniqueness trick for MySQL: active is 1
// while the appointment is booked and NULL once canceled, so the composite
// unique index rejects a second active booking for the same provider slot
// while letting any number of canceled rows coexist.
type appointmentRow struct {
	ID          uint      `gorm:"primaryKey"`
	RequesterID uint      `gorm:"not null;index"`
	ProviderID  uint      `gorm:"not null;uniqueIndex:uniq_provider_slot,priority:1"`
	ScheduledAt time.Time `gorm:"not null;uniqueIndex:uniq_provider_slot,priority:2"`
	Active      *bool     `gorm:"uniqueIndex:uniq_provider_slot,priority:3"`
	CanceledAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Requester *userRow `gorm:"foreignKey:RequesterID"`
	Provider  *userRow `gorm:"foreignKey:ProviderID"`
}

func (appointmentRow) TableName() string { return "appointments" }

// AppointmentRepository implements ports.AppointmentRepository on MySQL.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	active := true
	row := &appointmentRow{
		RequesterID: appt.RequesterID,
		ProviderID:  appt.ProviderID,
		ScheduledAt: appt.ScheduledAt.UTC(),
		Active:      &active,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrSlotUnavailable
		}
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return toDomainAppointment(row), nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	var row appointmentRow
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Provider").
		First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return toDomainAppointment(&row), nil
}

func (r *AppointmentRepository) FindActiveSlot(ctx context.Context, providerID uint, slot time.Time) (*domain.Appointment, error) {
	var row appointmentRow
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND scheduled_at = ? AND canceled_at IS NULL", providerID, slot.UTC()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find slot: %w", err)
	}
	return toDomainAppointment(&row), nil
}

func (r *AppointmentRepository) ListByRequester(ctx context.Context, requesterID uint, page, perPage int) ([]*domain.Appointment, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&appointmentRow{}).
		Where("requester_id = ? AND canceled_at IS NULL", requesterID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	var rows []appointmentRow
	err := base.
		Preload("Provider").
		Order("scheduled_at ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	return toDomainAppointments(rows), total, nil
}

func (r *AppointmentRepository) ListProviderDay(ctx context.Context, providerID uint, from, to time.Time) ([]*domain.Appointment, error) {
	var rows []appointmentRow
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND canceled_at IS NULL AND scheduled_at BETWEEN ? AND ?",
			providerID, from.UTC(), to.UTC()).
		Preload("Requester").
		Order("scheduled_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list provider day: %w", err)
	}
	return toDomainAppointments(rows), nil
}

// MarkCanceled flips a still-active appointment to canceled. The canceled_at
// guard makes the update a no-op for rows that were already canceled, which
// doubles as the double-cancel check.
func (r *AppointmentRepository) MarkCanceled(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&appointmentRow{}).
		Where("id = ? AND canceled_at IS NULL", id).
		Updates(map[string]any{
			"canceled_at": at.UTC(),
			"active":      nil,
		})
	if res.Error != nil {
		return fmt.Errorf("cancel appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func toDomainAppointment(row *appointmentRow) *domain.Appointment {
	appt := &domain.Appointment{
		ID:          row.ID,
		RequesterID: row.RequesterID,
		ProviderID:  row.ProviderID,
		ScheduledAt: row.ScheduledAt.UTC(),
		CreatedAt:   row.CreatedAt.UTC(),
	}
	if row.CanceledAt != nil {
		t := row.CanceledAt.UTC()
		appt.CanceledAt = &t
	}
	if row.Requester != nil {
		appt.Requester = toDomainUser(row.Requester)
	}
	if row.Provider != nil {
		appt.Provider = toDomainUser(row.Provider)
	}
	return appt
}

func toDomainAppointments(rows []appointmentRow) []*domain.Appointment {
	out := make([]*domain.Appointment, len(rows))
	for i := range rows {
		out[i] = toDomainAppointment(&rows[i])
	}
	return out
}
