package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

const defaultAppointmentLimit = 100

var allowedStatuses = map[string]struct{}{
	"pending":   {},
	"approved":  {},
	"confirmed": {},
	"cancelled": {},
	"canceled":  {},
}

type appointmentStore interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context, counsellorID string, limit int64) ([]models.Appointment, error)
	SetStatus(ctx context.Context, id, status string, at time.Time) error
	SetSchedule(ctx context.Context, id, date, timeStr string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type slotFreer interface {
	Free(ctx context.Context, counsellorID, dateKey, timeStr string, at time.Time) error
}

type transitionNotifier interface {
	AppointmentCompleted(ctx context.Context, appt *models.Appointment)
	AppointmentStatusChanged(ctx context.Context, appt *models.Appointment, status string)
	AppointmentCancelled(ctx context.Context, appt *models.Appointment)
}

// AppointmentService owns the appointment lifecycle: every transition checks
// that the acting counsellor owns the record, commits the authoritative write
// first, and only then runs notification side effects, which are best-effort.
type AppointmentService struct {
	appointments appointmentStore
	slots        slotFreer
	notifier     transitionNotifier
	log          zerolog.Logger
}

func NewAppointmentService(
	appointments appointmentStore,
	slots slotFreer,
	notifier transitionNotifier,
	log zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		slots:        slots,
		notifier:     notifier,
		log:          log,
	}
}

func (s *AppointmentService) List(ctx context.Context, counsellorID string, limit int) ([]models.Appointment, error) {
	if counsellorID == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultAppointmentLimit
	}

	appointments, err := s.appointments.List(ctx, counsellorID, int64(limit))
	if err != nil {
		return nil, err
	}

	// Sorted here rather than in the store; date then time, both plain
	// strings, so no composite index is needed.
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].AppointmentDate != appointments[j].AppointmentDate {
			return appointments[i].AppointmentDate < appointments[j].AppointmentDate
		}
		return appointments[i].AppointmentTime < appointments[j].AppointmentTime
	})
	return appointments, nil
}

// Start marks the session as running. No side effects beyond the write.
func (s *AppointmentService) Start(ctx context.Context, id, counsellorID string) error {
	if _, err := s.ownedAppointment(ctx, id, counsellorID); err != nil {
		return err
	}
	return s.appointments.SetStatus(ctx, id, "in_progress", time.Now().UTC())
}

// Complete marks the session finished, then asks the student for feedback.
func (s *AppointmentService) Complete(ctx context.Context, id, counsellorID string) error {
	appt, err := s.ownedAppointment(ctx, id, counsellorID)
	if err != nil {
		return err
	}
	if err := s.appointments.SetStatus(ctx, id, "completed", time.Now().UTC()); err != nil {
		return err
	}
	s.notifier.AppointmentCompleted(ctx, appt)
	return nil
}

// UpdateStatus moves the appointment to one of the caller-settable statuses
// and notifies the student. Input is case-insensitive and stored lower-cased.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id, counsellorID, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if _, ok := allowedStatuses[status]; !ok {
		return ErrInvalidInput
	}

	appt, err := s.ownedAppointment(ctx, id, counsellorID)
	if err != nil {
		return err
	}
	if err := s.appointments.SetStatus(ctx, id, status, time.Now().UTC()); err != nil {
		return err
	}
	s.notifier.AppointmentStatusChanged(ctx, appt, status)
	return nil
}

// Reschedule overwrites the appointment's date and time. Unlike the other
// transitions it sends no notification; flagged with product, preserved
// until they decide otherwise.
func (s *AppointmentService) Reschedule(ctx context.Context, id, counsellorID, newDate, newTime string) error {
	if newDate == "" || newTime == "" {
		return ErrInvalidInput
	}
	if _, err := s.ownedAppointment(ctx, id, counsellorID); err != nil {
		return err
	}
	return s.appointments.SetSchedule(ctx, id, newDate, newTime, time.Now().UTC())
}

// Delete hard-cancels an appointment: frees the availability slot, notifies
// the student and removes the record. An already-absent appointment is a
// successful no-op. Slot-free and notification steps are independent and
// best-effort; only the final delete can fail the operation.
func (s *AppointmentService) Delete(ctx context.Context, id, counsellorID string) error {
	if id == "" || counsellorID == "" {
		return ErrInvalidInput
	}

	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		return err
	}
	if appt.CounsellorID != counsellorID {
		return ErrForbidden
	}

	now := time.Now().UTC()
	if appt.AppointmentDate != "" && appt.AppointmentTime != "" {
		if err := s.slots.Free(ctx, appt.CounsellorID, appt.AppointmentDate, appt.AppointmentTime, now); err != nil {
			s.log.Warn().Err(err).Str("appointmentId", id).Msg("free slot failed")
		}
	}

	s.notifier.AppointmentCancelled(ctx, appt)

	return s.appointments.Delete(ctx, id)
}

func (s *AppointmentService) ownedAppointment(ctx context.Context, id, counsellorID string) (*models.Appointment, error) {
	if id == "" || counsellorID == "" {
		return nil, ErrInvalidInput
	}
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if appt.CounsellorID != counsellorID {
		return nil, ErrForbidden
	}
	return appt, nil
}
