package service

import (
	"errors"
	"time"

	"vanails/cmd/internal/domain/catalog"
	"vanails/cmd/internal/domain/entity"
	"vanails/cmd/internal/metrics"
	"vanails/cmd/internal/utils"
	"vanails/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// Derived appointment classification. Never persisted; recomputed from
// the composite date on every read.
const (
	StatusPast     = "past"
	StatusToday    = "today"
	StatusUpcoming = "upcoming"
)

type UpdateAppointmentRequest struct {
	ID          string  `json:"id" validate:"required"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Phone       *string `json:"phone" validate:"omitempty,min=8,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Service     *string `json:"service" validate:"omitempty,serviceid"`
	Date        *string `json:"date" validate:"omitempty,slotdate"`
	Observation *string `json:"observation" validate:"omitempty,max=500"`
}

// AdminAppointmentResponse decorates an appointment with display fields
// derived purely from the stored composite date.
type AdminAppointmentResponse struct {
	AppointmentResponse
	DateOnly      string `json:"dateOnly"`
	TimeOnly      string `json:"timeOnly"`
	FormattedDate string `json:"formattedDate"`
	FormattedTime string `json:"formattedTime"`
	Status        string `json:"status"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
	Metrics         *metrics.Metrics
	Location        *time.Location
}

func NewAppointmentService(apptRepo AppointmentRepository, validate *validator.Validate, m *metrics.Metrics, loc *time.Location) *DefaultAppointmentService {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, Validate: validate, Metrics: m, Location: loc}
}

// GetAppointments lists appointments ascending by date, optionally
// narrowed to a date prefix and/or a derived status.
func (a *DefaultAppointmentService) GetAppointments(datePrefix, status string) ([]*AdminAppointmentResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindFiltered(datePrefix)
	if err != nil {
		log.Errorf("failed to fetch appointments (prefix %q): %v", datePrefix, err)
		a.countError("list")
		return nil, apierror.InternalServerError
	}

	now := time.Now().In(a.Location)
	response := make([]*AdminAppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		decorated := a.decorate(appt, now)
		if status != "" && decorated.Status != status {
			continue
		}
		response = append(response, decorated)
	}
	return response, nil
}

// UpdateAppointment applies a partial update. When the date changes,
// the conflict check runs again with the record itself excluded, so
// re-saving an appointment on its own slot always succeeds.
func (a *DefaultAppointmentService) UpdateAppointment(req *UpdateAppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	appt, err := a.AppointmentRepo.FindByID(req.ID)
	if err != nil {
		log.Errorf("failed to fetch appointment %s: %v", req.ID, err)
		a.countError("update")
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NotFoundError
	}

	if req.Date != nil && *req.Date != appt.Date {
		_, hhmm := utils.SplitComposite(*req.Date)
		if !catalog.IsTimeSlot(hhmm) {
			return nil, slotNotBookableError
		}

		taken, err := a.AppointmentRepo.IsSlotTaken(*req.Date, appt.ID)
		if err != nil {
			log.Errorf("failed to check slot %q: %v", *req.Date, err)
			a.countError("update")
			return nil, apierror.InternalServerError
		}
		if taken {
			a.countConflict()
			return nil, apierror.SlotTakenError
		}
	}

	applyUpdate(appt, req)

	err = a.AppointmentRepo.Save(appt)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		a.countConflict()
		return nil, apierror.SlotTakenError
	}
	if err != nil {
		log.Errorf("failed to update appointment %s: %v", appt.ID, err)
		a.countError("update")
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

// DeleteAppointment cancels an appointment and returns the removed
// record. Cancellation keeps no soft-delete state or audit trail.
func (a *DefaultAppointmentService) DeleteAppointment(id string) (*AppointmentResponse, apierror.ErrorResponse) {
	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment %s: %v", id, err)
		a.countError("delete")
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NotFoundError
	}

	err = a.AppointmentRepo.Delete(appt)
	if err != nil {
		log.Errorf("failed to delete appointment %s: %v", id, err)
		a.countError("delete")
		return nil, apierror.InternalServerError
	}

	if a.Metrics != nil {
		a.Metrics.BookingsCancelled.Inc()
	}
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) decorate(appt *entity.Appointment, now time.Time) *AdminAppointmentResponse {
	day, hhmm := utils.SplitComposite(appt.Date)
	return &AdminAppointmentResponse{
		AppointmentResponse: *toAppointmentResponse(appt),
		DateOnly:            day,
		TimeOnly:            hhmm,
		FormattedDate:       utils.FormatDayPtBR(day),
		FormattedTime:       hhmm,
		Status:              a.deriveStatus(appt.Date, now),
	}
}

func (a *DefaultAppointmentService) deriveStatus(date string, now time.Time) string {
	t, err := utils.ParseComposite(date, a.Location)
	if err != nil {
		// Malformed stored dates should not exist; classify as past
		// so they sink to the archive section instead of breaking.
		return StatusPast
	}

	if sameDay(t, now) {
		return StatusToday
	}
	if t.Before(now) {
		return StatusPast
	}
	return StatusUpcoming
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func applyUpdate(appt *entity.Appointment, req *UpdateAppointmentRequest) {
	if req.Name != nil {
		appt.Name = *req.Name
	}
	if req.Phone != nil {
		appt.Phone = *req.Phone
	}
	if req.Email != nil {
		appt.Email = *req.Email
	}
	if req.Service != nil {
		appt.Service = *req.Service
	}
	if req.Date != nil {
		appt.Date = *req.Date
	}
	if req.Observation != nil {
		appt.Observation = req.Observation
	}
}

func (a *DefaultAppointmentService) countConflict() {
	if a.Metrics != nil {
		a.Metrics.BookingConflicts.Inc()
	}
}

func (a *DefaultAppointmentService) countError(operation string) {
	if a.Metrics != nil {
		a.Metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
