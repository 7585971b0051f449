package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type stubAppointmentStore struct {
	appt       *models.Appointment
	getErr     error
	listResult []models.Appointment
	listErr    error
	statusErr  error
	deleteErr  error

	calls        []string
	lastStatus   string
	lastDate     string
	lastTime     string
	deletedID    string
	statusSetFor string
}

func (s *stubAppointmentStore) GetByID(_ context.Context, _ string) (*models.Appointment, error) {
	s.calls = append(s.calls, "get")
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.appt, nil
}

func (s *stubAppointmentStore) List(_ context.Context, _ string, _ int64) ([]models.Appointment, error) {
	s.calls = append(s.calls, "list")
	return s.listResult, s.listErr
}

func (s *stubAppointmentStore) SetStatus(_ context.Context, id, status string, _ time.Time) error {
	s.calls = append(s.calls, "setStatus")
	s.statusSetFor = id
	s.lastStatus = status
	return s.statusErr
}

func (s *stubAppointmentStore) SetSchedule(_ context.Context, _, date, timeStr string, _ time.Time) error {
	s.calls = append(s.calls, "setSchedule")
	s.lastDate = date
	s.lastTime = timeStr
	return nil
}

func (s *stubAppointmentStore) Delete(_ context.Context, id string) error {
	s.calls = append(s.calls, "delete")
	s.deletedID = id
	return s.deleteErr
}

type stubSlotFreer struct {
	err    error
	called bool
	date   string
	time   string
}

func (s *stubSlotFreer) Free(_ context.Context, _, dateKey, timeStr string, _ time.Time) error {
	s.called = true
	s.date = dateKey
	s.time = timeStr
	return s.err
}

type stubNotifier struct {
	completed []string
	statuses  []string
	cancelled []string
	order     *[]string
}

func (s *stubNotifier) AppointmentCompleted(_ context.Context, appt *models.Appointment) {
	s.completed = append(s.completed, appt.ID)
	if s.order != nil {
		*s.order = append(*s.order, "notifyCompleted")
	}
}

func (s *stubNotifier) AppointmentStatusChanged(_ context.Context, appt *models.Appointment, status string) {
	s.statuses = append(s.statuses, status)
	if s.order != nil {
		*s.order = append(*s.order, "notifyStatus")
	}
}

func (s *stubNotifier) AppointmentCancelled(_ context.Context, appt *models.Appointment) {
	s.cancelled = append(s.cancelled, appt.ID)
	if s.order != nil {
		*s.order = append(*s.order, "notifyCancelled")
	}
}

func newTestService(store *stubAppointmentStore, slots *stubSlotFreer, notifier *stubNotifier) *AppointmentService {
	return NewAppointmentService(store, slots, notifier, zerolog.Nop())
}

func ownedAppt() *models.Appointment {
	return &models.Appointment{
		ID:              "appt-1",
		CounsellorID:    "c-1",
		StudentID:       "s-1",
		AppointmentDate: "2026-02-10",
		AppointmentTime: "09:30",
		Status:          "pending",
	}
}

func TestStartRejectsNonOwner(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt()}
	service := newTestService(store, &stubSlotFreer{}, &stubNotifier{})

	err := service.Start(context.Background(), "appt-1", "someone-else")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	for _, call := range store.calls {
		if call == "setStatus" {
			t.Fatal("status must not be written for a non-owner")
		}
	}
}

func TestStartMissingAppointmentIsNotFound(t *testing.T) {
	store := &stubAppointmentStore{getErr: mongo.ErrNoDocuments}
	service := newTestService(store, &stubSlotFreer{}, &stubNotifier{})

	if err := service.Start(context.Background(), "nope", "c-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStartSetsInProgress(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt()}
	service := newTestService(store, &stubSlotFreer{}, &stubNotifier{})

	if err := service.Start(context.Background(), "appt-1", "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastStatus != "in_progress" {
		t.Fatalf("expected status in_progress, got %q", store.lastStatus)
	}
}

func TestCompleteWritesStatusBeforeNotifying(t *testing.T) {
	var order []string
	store := &stubAppointmentStore{appt: ownedAppt()}
	notifier := &stubNotifier{order: &order}
	service := newTestService(store, &stubSlotFreer{}, notifier)

	if err := service.Complete(context.Background(), "appt-1", "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastStatus != "completed" {
		t.Fatalf("expected status completed, got %q", store.lastStatus)
	}
	if len(notifier.completed) != 1 || notifier.completed[0] != "appt-1" {
		t.Fatalf("expected one completion notification for appt-1, got %v", notifier.completed)
	}
	// The notifier must only run after the write committed.
	sawWrite := false
	for _, call := range store.calls {
		if call == "setStatus" {
			sawWrite = true
		}
	}
	if !sawWrite {
		t.Fatal("status write never happened")
	}
	if len(order) == 0 || order[len(order)-1] != "notifyCompleted" {
		t.Fatalf("expected notification after write, order=%v", order)
	}
}

func TestCompleteWriteFailureSkipsNotification(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt(), statusErr: errors.New("boom")}
	notifier := &stubNotifier{}
	service := newTestService(store, &stubSlotFreer{}, notifier)

	if err := service.Complete(context.Background(), "appt-1", "c-1"); err == nil {
		t.Fatal("expected error when the status write fails")
	}
	if len(notifier.completed) != 0 {
		t.Fatal("notification must not fire when the authoritative write failed")
	}
}

func TestUpdateStatusNormalizesAndStoresLowercase(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt()}
	notifier := &stubNotifier{}
	service := newTestService(store, &stubSlotFreer{}, notifier)

	if err := service.UpdateStatus(context.Background(), "appt-1", "c-1", "Approved"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastStatus != "approved" {
		t.Fatalf("expected stored status approved, got %q", store.lastStatus)
	}
	if len(notifier.statuses) != 1 || notifier.statuses[0] != "approved" {
		t.Fatalf("expected notifier to see approved, got %v", notifier.statuses)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt()}
	service := newTestService(store, &stubSlotFreer{}, &stubNotifier{})

	err := service.UpdateStatus(context.Background(), "appt-1", "c-1", "in_progress")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	for _, call := range store.calls {
		if call == "setStatus" {
			t.Fatal("invalid status must not be written")
		}
	}
}

func TestRescheduleRequiresDateAndTime(t *testing.T) {
	service := newTestService(&stubAppointmentStore{appt: ownedAppt()}, &stubSlotFreer{}, &stubNotifier{})

	if err := service.Reschedule(context.Background(), "appt-1", "c-1", "", "10:00"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := service.Reschedule(context.Background(), "appt-1", "c-1", "2026-02-11", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRescheduleWritesWithoutNotifying(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt()}
	notifier := &stubNotifier{}
	service := newTestService(store, &stubSlotFreer{}, notifier)

	if err := service.Reschedule(context.Background(), "appt-1", "c-1", "2026-02-11", "10:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastDate != "2026-02-11" || store.lastTime != "10:00" {
		t.Fatalf("schedule not written: %q %q", store.lastDate, store.lastTime)
	}
	if len(notifier.statuses)+len(notifier.completed)+len(notifier.cancelled) != 0 {
		t.Fatal("reschedule must not notify")
	}
}

func TestDeleteMissingAppointmentIsNoOp(t *testing.T) {
	store := &stubAppointmentStore{getErr: mongo.ErrNoDocuments}
	notifier := &stubNotifier{}
	service := newTestService(store, &stubSlotFreer{}, notifier)

	if err := service.Delete(context.Background(), "gone", "c-1"); err != nil {
		t.Fatalf("deleting an absent appointment must succeed, got %v", err)
	}
	if store.deletedID != "" {
		t.Fatal("nothing should be deleted")
	}
	if len(notifier.cancelled) != 0 {
		t.Fatal("no notification for an absent appointment")
	}
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt()}
	service := newTestService(store, &stubSlotFreer{}, &stubNotifier{})

	if err := service.Delete(context.Background(), "appt-1", "other"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.deletedID != "" {
		t.Fatal("appointment must not be deleted for a non-owner")
	}
}

func TestDeleteContinuesWhenSlotFreeFails(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt()}
	slots := &stubSlotFreer{err: errors.New("slot unavailable")}
	notifier := &stubNotifier{}
	service := newTestService(store, slots, notifier)

	if err := service.Delete(context.Background(), "appt-1", "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slots.called {
		t.Fatal("slot free should have been attempted")
	}
	if len(notifier.cancelled) != 1 {
		t.Fatal("cancellation notification should still fire")
	}
	if store.deletedID != "appt-1" {
		t.Fatal("appointment should still be deleted")
	}
}

func TestDeleteFreesTheBookedSlot(t *testing.T) {
	store := &stubAppointmentStore{appt: ownedAppt()}
	slots := &stubSlotFreer{}
	service := newTestService(store, slots, &stubNotifier{})

	if err := service.Delete(context.Background(), "appt-1", "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots.date != "2026-02-10" || slots.time != "09:30" {
		t.Fatalf("slot freed with wrong key: %q %q", slots.date, slots.time)
	}
}

func TestListSortsByDateThenTime(t *testing.T) {
	store := &stubAppointmentStore{listResult: []models.Appointment{
		{ID: "c", AppointmentDate: "2026-02-11", AppointmentTime: "09:00"},
		{ID: "a", AppointmentDate: "2026-02-10", AppointmentTime: "14:00"},
		{ID: "b", AppointmentDate: "2026-02-10", AppointmentTime: "09:00"},
	}}
	service := newTestService(store, &stubSlotFreer{}, &stubNotifier{})

	appointments, err := service.List(context.Background(), "c-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{appointments[0].ID, appointments[1].ID, appointments[2].ID}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestListRequiresCounsellorID(t *testing.T) {
	service := newTestService(&stubAppointmentStore{}, &stubSlotFreer{}, &stubNotifier{})
	if _, err := service.List(context.Background(), "", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
