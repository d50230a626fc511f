package routes

import (
	"net/http"
	"strings"

	"vanails/cmd/internal/domain/catalog"
	"vanails/cmd/internal/service"
	"vanails/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type BookingService interface {
	GetAvailability(day string) (*service.AvailabilityResponse, apierror.ErrorResponse)
	CreateAppointment(req *service.BookingRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
}

type DefaultClientRoute struct {
	BookingService BookingService
}

func NewClientDefault(bookingService BookingService) *DefaultClientRoute {
	return &DefaultClientRoute{BookingService: bookingService}
}

// GetAvailability serves the booking page's slot picker.
func (r *DefaultClientRoute) GetAvailability(c echo.Context) error {
	day := strings.TrimSpace(c.QueryParam("date"))
	if day == "" {
		apierr := apierror.NewMissingParamError("date")
		return c.JSON(apierr.Code(), apierr)
	}

	availability, apierr := r.BookingService.GetAvailability(day)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, availability)
}

func (r *DefaultClientRoute) CreateClient(c echo.Context) error {
	var req service.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := r.BookingService.CreateAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

// GetServices exposes the static service catalog to the marketing and
// booking pages.
func (r *DefaultClientRoute) GetServices(c echo.Context) error {
	resp := echo.Map{"services": catalog.Services}
	return c.JSON(http.StatusOK, &resp)
}
