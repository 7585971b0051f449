package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lekithkishore/MINDLY/internal/models"
	"github.com/lekithkishore/MINDLY/internal/services"
)

type stubLifecycle struct {
	listResult []models.Appointment
	err        error

	startedID     string
	completedID   string
	status        string
	rescheduledTo [2]string
	deletedID     string
}

func (s *stubLifecycle) List(_ context.Context, _ string, _ int) ([]models.Appointment, error) {
	return s.listResult, s.err
}

func (s *stubLifecycle) Start(_ context.Context, id, _ string) error {
	s.startedID = id
	return s.err
}

func (s *stubLifecycle) Complete(_ context.Context, id, _ string) error {
	s.completedID = id
	return s.err
}

func (s *stubLifecycle) UpdateStatus(_ context.Context, id, _, status string) error {
	s.status = status
	return s.err
}

func (s *stubLifecycle) Reschedule(_ context.Context, _, _, newDate, newTime string) error {
	s.rescheduledTo = [2]string{newDate, newTime}
	return s.err
}

func (s *stubLifecycle) Delete(_ context.Context, id, _ string) error {
	s.deletedID = id
	return s.err
}

func newAppointmentApp(service *stubLifecycle) *fiber.App {
	app := fiber.New()
	h := &AppointmentHandler{service: service, log: zerolog.Nop()}
	group := app.Group("/api/counsellor/appointments")
	group.Get("/", h.List)
	group.Patch("/:id/start", h.Start)
	group.Patch("/:id/complete", h.Complete)
	group.Patch("/:id/status", h.UpdateStatus)
	group.Patch("/:id/reschedule", h.Reschedule)
	group.Delete("/:id", h.Delete)
	return app
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(b)
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestListRequiresCounsellorIDQuery(t *testing.T) {
	app := newAppointmentApp(&stubLifecycle{})

	req := httptest.NewRequest("GET", "/api/counsellor/appointments/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["error"] != "counsellorId is required" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestListReturnsEmptyArrayNotNull(t *testing.T) {
	app := newAppointmentApp(&stubLifecycle{})

	req := httptest.NewRequest("GET", "/api/counsellor/appointments/?counsellorId=c-1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	appointments, ok := body["appointments"].([]any)
	if !ok {
		t.Fatalf("appointments should be an array, got %T", body["appointments"])
	}
	if len(appointments) != 0 {
		t.Fatalf("expected empty array, got %v", appointments)
	}
}

func TestStartRequiresCounsellorIDInBody(t *testing.T) {
	service := &stubLifecycle{}
	app := newAppointmentApp(service)

	req := httptest.NewRequest("PATCH", "/api/counsellor/appointments/a1/start",
		jsonBody(t, map[string]string{}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.startedID != "" {
		t.Fatal("service must not be called without a counsellorId")
	}
}

func TestStartHappyPath(t *testing.T) {
	service := &stubLifecycle{}
	app := newAppointmentApp(service)

	req := httptest.NewRequest("PATCH", "/api/counsellor/appointments/a1/start",
		jsonBody(t, map[string]string{"counsellorId": "c-1"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.startedID != "a1" {
		t.Fatalf("expected start for a1, got %q", service.startedID)
	}
}

func TestForbiddenMapsTo403(t *testing.T) {
	service := &stubLifecycle{err: services.ErrForbidden}
	app := newAppointmentApp(service)

	req := httptest.NewRequest("PATCH", "/api/counsellor/appointments/a1/complete",
		jsonBody(t, map[string]string{"counsellorId": "other"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["error"] != "Not your appointment" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestNotFoundMapsTo404(t *testing.T) {
	service := &stubLifecycle{err: services.ErrNotFound}
	app := newAppointmentApp(service)

	req := httptest.NewRequest("DELETE", "/api/counsellor/appointments/missing",
		jsonBody(t, map[string]string{"counsellorId": "c-1"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["error"] != "Not found" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestUpdateStatusInvalidMapsTo400(t *testing.T) {
	service := &stubLifecycle{err: services.ErrInvalidInput}
	app := newAppointmentApp(service)

	req := httptest.NewRequest("PATCH", "/api/counsellor/appointments/a1/status",
		jsonBody(t, map[string]string{"counsellorId": "c-1", "status": "in_progress"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["error"] != "Invalid status" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestRescheduleRequiresDateAndTimeFields(t *testing.T) {
	service := &stubLifecycle{}
	app := newAppointmentApp(service)

	req := httptest.NewRequest("PATCH", "/api/counsellor/appointments/a1/reschedule",
		jsonBody(t, map[string]string{"counsellorId": "c-1", "appointmentDate": "2026-02-11"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["error"] != "appointmentDate and appointmentTime required" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestInternalErrorMapsTo500(t *testing.T) {
	service := &stubLifecycle{err: errors.New("mongo timeout")}
	app := newAppointmentApp(service)

	req := httptest.NewRequest("DELETE", "/api/counsellor/appointments/a1",
		jsonBody(t, map[string]string{"counsellorId": "c-1"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["error"] != "Internal server error" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}
