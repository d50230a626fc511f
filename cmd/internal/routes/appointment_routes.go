package routes

import (
	"net/http"
	"strings"

	"vanails/cmd/internal/service"
	"vanails/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	GetAppointments(datePrefix, status string) ([]*service.AdminAppointmentResponse, apierror.ErrorResponse)
	UpdateAppointment(req *service.UpdateAppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	DeleteAppointment(id string) (*service.AppointmentResponse, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	datePrefix := strings.TrimSpace(c.QueryParam("date"))
	status := strings.TrimSpace(c.QueryParam("status"))

	appts, apierr := a.AppointmentService.GetAppointments(datePrefix, status)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appts, "total": len(appts)}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) UpdateAppointment(c echo.Context) error {
	var req service.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.UpdateAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) DeleteAppointment(c echo.Context) error {
	id := strings.TrimSpace(c.QueryParam("id"))
	if id == "" {
		apierr := apierror.NewMissingParamError("id")
		return c.JSON(apierr.Code(), apierr)
	}

	appt, apierr := a.AppointmentService.DeleteAppointment(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Appointment cancelled", "appointment": appt}
	return c.JSON(http.StatusOK, &resp)
}
