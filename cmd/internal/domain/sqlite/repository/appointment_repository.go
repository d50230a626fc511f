package repository

import (
	"errors"
	"vanails/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) FindByID(id string) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := a.db.First(&appt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// FindByDay returns every appointment on the given "YYYY-MM-DD" day,
// in slot order.
func (a *DefaultAppointmentRepository) FindByDay(day string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.
		Where("date LIKE ?", day+" %").
		Order("date asc").
		Find(&appts).Error
	return appts, err
}

// FindFiltered returns all appointments, optionally narrowed to a date
// prefix, ascending by date. Lexicographic order is chronological order
// because the composite format is zero-padded and fixed-width.
func (a *DefaultAppointmentRepository) FindFiltered(datePrefix string) ([]*entity.Appointment, error) {
	q := a.db.Order("date asc")
	if datePrefix != "" {
		q = q.Where("date LIKE ?", datePrefix+"%")
	}

	var appts []*entity.Appointment
	err := q.Find(&appts).Error
	return appts, err
}

// IsSlotTaken reports whether some other appointment already holds the
// exact composite date. excludeID may be empty for create checks.
func (a *DefaultAppointmentRepository) IsSlotTaken(date, excludeID string) (bool, error) {
	q := a.db.Model(&entity.Appointment{}).Where("date = ?", date)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new appointment. A lost race against a concurrent
// booking for the same slot surfaces as gorm.ErrDuplicatedKey.
func (a *DefaultAppointmentRepository) Create(appointment *entity.Appointment) error {
	return a.db.Create(appointment).Error
}

func (a *DefaultAppointmentRepository) Save(appointment *entity.Appointment) error {
	return a.db.Save(appointment).Error
}

func (a *DefaultAppointmentRepository) Delete(appointment *entity.Appointment) error {
	return a.db.Delete(appointment).Error
}
