package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

func TestListAppointments(t *testing.T) {
	e := newTestServer(t)

	for _, date := range []string{"2024-06-10 14:00", "2024-06-09 09:00"} {
		body := fmt.Sprintf(`{"name":"Maria Silva","phone":"(11) 99999-9999","email":"maria@example.com","service":"manicure","date":%q}`, date)
		if w := doJSON(t, e, http.MethodPost, "/api/clients", body); w.Code != http.StatusCreated {
			t.Fatalf("booking %s failed: %d", date, w.Code)
		}
	}

	w := doJSON(t, e, http.MethodGet, "/api/appointments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Appointments []struct {
			ID            string `json:"id"`
			Date          string `json:"date"`
			DateOnly      string `json:"dateOnly"`
			TimeOnly      string `json:"timeOnly"`
			FormattedDate string `json:"formattedDate"`
			Status        string `json:"status"`
		} `json:"appointments"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if body.Total != 2 || len(body.Appointments) != 2 {
		t.Fatalf("expected 2 appointments, got total=%d len=%d", body.Total, len(body.Appointments))
	}
	if body.Appointments[0].Date != "2024-06-09 09:00" {
		t.Fatalf("expected ascending order, got %s first", body.Appointments[0].Date)
	}
	if body.Appointments[0].FormattedDate != "09/06/2024" || body.Appointments[0].TimeOnly != "09:00" {
		t.Fatalf("missing decoration: %+v", body.Appointments[0])
	}

	// Date filter narrows to a single day.
	w = doJSON(t, e, http.MethodGet, "/api/appointments?date=2024-06-10", "")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Total != 1 || body.Appointments[0].DateOnly != "2024-06-10" {
		t.Fatalf("date filter failed: %s", w.Body.String())
	}
}

func TestUpdateAppointmentRoute(t *testing.T) {
	e := newTestServer(t)

	w := doJSON(t, e, http.MethodPost, "/api/clients",
		`{"name":"Maria Silva","phone":"(11) 99999-9999","email":"maria@example.com","service":"gel","date":"2024-06-10 09:00"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d", w.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, e, http.MethodPost, "/api/clients",
		`{"name":"Ana Souza","phone":"(11) 98888-8888","email":"ana@example.com","service":"gel","date":"2024-06-10 09:30"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d", w.Code)
	}

	t.Run("missing id", func(t *testing.T) {
		w := doJSON(t, e, http.MethodPut, "/api/appointments", `{"name":"X Y"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doJSON(t, e, http.MethodPut, "/api/appointments", `{"id":"nope","name":"X Y"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("slot conflict", func(t *testing.T) {
		body := fmt.Sprintf(`{"id":%q,"date":"2024-06-10 09:30"}`, created.ID)
		w := doJSON(t, e, http.MethodPut, "/api/appointments", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		body := fmt.Sprintf(`{"id":%q,"date":"2024-06-10 10:00","observation":"bring samples"}`, created.ID)
		w := doJSON(t, e, http.MethodPut, "/api/appointments", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var updated struct {
			Date        string  `json:"date"`
			Observation *string `json:"observation"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &updated)
		if updated.Date != "2024-06-10 10:00" || updated.Observation == nil {
			t.Fatalf("unexpected updated body: %s", w.Body.String())
		}
	})
}

func TestDeleteAppointmentRoute(t *testing.T) {
	e := newTestServer(t)

	w := doJSON(t, e, http.MethodPost, "/api/clients",
		`{"name":"Maria Silva","phone":"(11) 99999-9999","email":"maria@example.com","service":"pedicure","date":"2024-06-10 17:00"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("booking failed: %d", w.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	t.Run("missing id", func(t *testing.T) {
		w := doJSON(t, e, http.MethodDelete, "/api/appointments", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doJSON(t, e, http.MethodDelete, "/api/appointments?id=nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		target := "/api/appointments?id=" + url.QueryEscape(created.ID)
		w := doJSON(t, e, http.MethodDelete, target, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Message     string `json:"message"`
			Appointment struct {
				ID string `json:"id"`
			} `json:"appointment"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Message == "" || body.Appointment.ID != created.ID {
			t.Fatalf("unexpected delete body: %s", w.Body.String())
		}

		// Gone for real.
		w = doJSON(t, e, http.MethodDelete, target, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d", w.Code)
		}
	})
}
