package service

import (
	"errors"
	"net/http"
	"time"

	"vanails/cmd/internal/domain/catalog"
	"vanails/cmd/internal/domain/entity"
	"vanails/cmd/internal/metrics"
	"vanails/cmd/internal/utils"
	"vanails/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	FindByID(id string) (*entity.Appointment, error)
	FindByDay(day string) ([]*entity.Appointment, error)
	FindFiltered(datePrefix string) ([]*entity.Appointment, error)
	IsSlotTaken(date, excludeID string) (bool, error)
	Create(appointment *entity.Appointment) error
	Save(appointment *entity.Appointment) error
	Delete(appointment *entity.Appointment) error
}

type BookingRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Phone       string  `json:"phone" validate:"required,min=8,max=20"`
	Email       string  `json:"email" validate:"required,email"`
	Service     string  `json:"service" validate:"required,serviceid"`
	Date        string  `json:"date" validate:"required,slotdate"`
	Observation *string `json:"observation" validate:"omitempty,max=500"`
}

type AppointmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Service     string  `json:"service"`
	Date        string  `json:"date"`
	Observation *string `json:"observation"`
	CreatedAt   string  `json:"created_at"`
}

type AvailabilityResponse struct {
	Date               string   `json:"date"`
	AvailableTimeSlots []string `json:"availableTimeSlots"`
	OccupiedTimes      []string `json:"occupiedTimes"`
}

var slotNotBookableError = apierror.NewSimple(http.StatusBadRequest, "Time is not a bookable slot")

type DefaultBookingService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
	Metrics         *metrics.Metrics
}

func NewBookingService(apptRepo AppointmentRepository, validate *validator.Validate, m *metrics.Metrics) *DefaultBookingService {
	return &DefaultBookingService{AppointmentRepo: apptRepo, Validate: validate, Metrics: m}
}

// GetAvailability computes the free slots for a calendar day: the fixed
// catalog minus the times already booked that day, in catalog order.
// A day with no bookings yields the full catalog; a fully booked day
// yields an empty (not nil) set.
func (b *DefaultBookingService) GetAvailability(day string) (*AvailabilityResponse, apierror.ErrorResponse) {
	if _, err := time.Parse(utils.DayLayout, day); err != nil {
		return nil, apierror.NewSimple(http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
	}

	appts, err := b.AppointmentRepo.FindByDay(day)
	if err != nil {
		log.Errorf("failed to fetch appointments for day %s: %v", day, err)
		b.countError("availability")
		return nil, apierror.InternalServerError
	}

	occupied := make([]string, 0, len(appts))
	taken := make(map[string]bool, len(appts))
	for _, appt := range appts {
		_, hhmm := utils.SplitComposite(appt.Date)
		occupied = append(occupied, hhmm)
		taken[hhmm] = true
	}

	available := make([]string, 0, len(catalog.TimeSlots))
	for _, slot := range catalog.TimeSlots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	return &AvailabilityResponse{
		Date:               day,
		AvailableTimeSlots: available,
		OccupiedTimes:      occupied,
	}, nil
}

// CreateAppointment books a slot. The pre-insert probe gives the common
// conflict a friendly answer; the unique index on date is what actually
// guarantees the invariant when two requests race for the same slot.
func (b *DefaultBookingService) CreateAppointment(req *BookingRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	_, hhmm := utils.SplitComposite(req.Date)
	if !catalog.IsTimeSlot(hhmm) {
		return nil, slotNotBookableError
	}

	taken, err := b.AppointmentRepo.IsSlotTaken(req.Date, "")
	if err != nil {
		log.Errorf("failed to check slot %q: %v", req.Date, err)
		b.countError("booking")
		return nil, apierror.InternalServerError
	}
	if taken {
		b.countConflict()
		return nil, apierror.SlotTakenError
	}

	appointment := &entity.Appointment{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Service:     req.Service,
		Date:        req.Date,
		Observation: req.Observation,
		CreatedAt:   utils.NowUTC(),
	}

	err = b.AppointmentRepo.Create(appointment)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race between the probe and the insert.
		b.countConflict()
		return nil, apierror.SlotTakenError
	}
	if err != nil {
		log.Errorf("failed to save appointment: %v", err)
		b.countError("booking")
		return nil, apierror.InternalServerError
	}

	if b.Metrics != nil {
		b.Metrics.BookingsCreated.Inc()
	}
	return toAppointmentResponse(appointment), nil
}

func (b *DefaultBookingService) countConflict() {
	if b.Metrics != nil {
		b.Metrics.BookingConflicts.Inc()
	}
}

func (b *DefaultBookingService) countError(operation string) {
	if b.Metrics != nil {
		b.Metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          appt.ID,
		Name:        appt.Name,
		Phone:       appt.Phone,
		Email:       appt.Email,
		Service:     appt.Service,
		Date:        appt.Date,
		Observation: appt.Observation,
		CreatedAt:   utils.FormatEpoch(appt.CreatedAt),
	}
}
