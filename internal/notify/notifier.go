package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/email"
	"github.com/lekithkishore/MINDLY/internal/models"
)

type notificationWriter interface {
	Insert(ctx context.Context, n models.Notification) (*models.Notification, error)
}

type userReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type pusher interface {
	Push(userID string, payload any) error
}

// Notifier performs the email + notification-record + live-push side effects
// of an appointment transition. Every step is best-effort: the authoritative
// status write has already committed by the time these run, so failures are
// logged and swallowed, never surfaced to the caller.
type Notifier struct {
	sender        email.Sender
	notifications notificationWriter
	users         userReader
	hub           pusher
	log           zerolog.Logger
}

func NewNotifier(sender email.Sender, notifications notificationWriter, users userReader, hub pusher, log zerolog.Logger) *Notifier {
	return &Notifier{
		sender:        sender,
		notifications: notifications,
		users:         users,
		hub:           hub,
		log:           log,
	}
}

// DisplayStatus normalizes a stored status for student-facing copy.
func DisplayStatus(status string) string {
	switch status {
	case "approved", "confirmed":
		return "confirmed"
	case "cancelled", "canceled":
		return "cancelled"
	default:
		return status
	}
}

// AppointmentCompleted asks the student for feedback. The email address is
// taken from the appointment only; completion predates the profile-fallback
// behavior the other transitions have.
func (n *Notifier) AppointmentCompleted(ctx context.Context, appt *models.Appointment) {
	name := orDefault(appt.StudentName, "there")
	counsellor := orDefault(appt.CounsellorName, "your counsellor")

	subject := "We value your feedback for today's session"
	html := fmt.Sprintf(
		"<div><p>Hi %s,</p><p>Your session with <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> is now marked as <strong>completed</strong>.</p><p>Please open Mindly and leave quick feedback for your counsellor.</p><p>— MINDLY</p></div>",
		name, counsellor, appt.AppointmentDate, appt.AppointmentTime,
	)
	text := fmt.Sprintf(
		"Hi %s,\nYour session on %s at %s is completed. Please open Mindly and leave feedback.\n— MINDLY",
		name, appt.AppointmentDate, appt.AppointmentTime,
	)

	n.sendEmail(appt.ContactEmail(), subject, html, text)
	n.writeAndPush(ctx, appt.StudentRef(), models.Notification{
		Type:          models.NotificationAppointmentCompleted,
		Title:         "Session completed",
		Body:          "Please leave quick feedback for your counsellor.",
		AppointmentID: appt.ID,
	})
}

// AppointmentStatusChanged tells the student their session was confirmed,
// cancelled or otherwise moved; status is the raw stored value.
func (n *Notifier) AppointmentStatusChanged(ctx context.Context, appt *models.Appointment, status string) {
	to, name := n.resolveStudent(ctx, appt)
	name = orDefault(name, "there")
	counsellor := orDefault(appt.CounsellorName, "your counsellor")
	nice := DisplayStatus(status)

	subject := fmt.Sprintf("Your session on %s %s was %s", appt.AppointmentDate, appt.AppointmentTime, nice)
	html := fmt.Sprintf(
		"<div><p>Hi %s,</p><p>Your counselling session with <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> was <strong>%s</strong>.</p><p>Please check your bookings page for details.</p><p>— MINDLY</p></div>",
		name, counsellor, appt.AppointmentDate, appt.AppointmentTime, nice,
	)
	text := fmt.Sprintf(
		"Hi %s,\nYour counselling session on %s at %s was %s.\nPlease check your bookings page for details.\n— MINDLY",
		name, appt.AppointmentDate, appt.AppointmentTime, nice,
	)

	n.sendEmail(to, subject, html, text)
	n.writeAndPush(ctx, appt.StudentRef(), models.Notification{
		Type:          models.NotificationAppointmentStatus,
		Title:         fmt.Sprintf("Appointment %s", nice),
		Body:          fmt.Sprintf("Your session on %s at %s is %s.", appt.AppointmentDate, appt.AppointmentTime, nice),
		AppointmentID: appt.ID,
		Status:        status,
	})
}

// AppointmentCancelled tells the student a hard-cancelled session is gone
// and asks them to rebook.
func (n *Notifier) AppointmentCancelled(ctx context.Context, appt *models.Appointment) {
	to, name := n.resolveStudent(ctx, appt)
	name = orDefault(name, "there")
	counsellor := orDefault(appt.CounsellorName, "your counsellor")

	subject := fmt.Sprintf("Your session on %s %s was cancelled", appt.AppointmentDate, appt.AppointmentTime)
	html := fmt.Sprintf(
		"<div><p>Hi %s,</p><p>Your counselling session with <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> was <strong>cancelled</strong>.</p><p>Please rebook another slot in the app if needed.</p><p>— MINDLY</p></div>",
		name, counsellor, appt.AppointmentDate, appt.AppointmentTime,
	)
	text := fmt.Sprintf(
		"Hi %s,\nYour counselling session on %s at %s was cancelled.\nPlease rebook another slot if needed.\n— MINDLY",
		name, appt.AppointmentDate, appt.AppointmentTime,
	)

	n.sendEmail(to, subject, html, text)
	n.writeAndPush(ctx, appt.StudentRef(), models.Notification{
		Type:          models.NotificationAppointmentDeleted,
		Title:         "Appointment cancelled",
		Body:          fmt.Sprintf("Your session on %s at %s was cancelled.", appt.AppointmentDate, appt.AppointmentTime),
		AppointmentID: appt.ID,
	})
}

// resolveStudent returns the student's email and name, falling back to the
// user profile when the appointment record has no email.
func (n *Notifier) resolveStudent(ctx context.Context, appt *models.Appointment) (string, string) {
	to := appt.ContactEmail()
	name := appt.StudentName
	if to != "" {
		return to, name
	}

	studentID := appt.StudentRef()
	if studentID == "" {
		return "", name
	}
	user, err := n.users.GetByID(ctx, studentID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			n.log.Warn().Err(err).Str("studentId", studentID).Msg("lookup user email failed")
		}
		return "", name
	}
	if name == "" {
		name = user.BestName()
	}
	return user.Email, name
}

func (n *Notifier) sendEmail(to, subject, html, text string) {
	if n.sender == nil {
		n.log.Info().Msg("email not sent: SMTP not configured")
		return
	}
	if to == "" {
		n.log.Info().Msg("email not sent: missing recipient")
		return
	}
	n.bestEffort("send email", func() error {
		if err := n.sender.Send(to, subject, html, text); err != nil {
			return err
		}
		n.log.Info().Str("to", to).Msg("email sent")
		return nil
	})
}

func (n *Notifier) writeAndPush(ctx context.Context, studentID string, notification models.Notification) {
	if studentID == "" {
		return
	}
	notification.UserID = studentID
	notification.CreatedAt = time.Now().UTC()
	notification.Read = false

	var written *models.Notification
	n.bestEffort("write notification", func() error {
		var err error
		written, err = n.notifications.Insert(ctx, notification)
		return err
	})
	if written == nil || n.hub == nil {
		return
	}
	n.bestEffort("push notification", func() error {
		return n.hub.Push(studentID, written)
	})
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// bestEffort isolates one side-effect step: errors are logged as warnings
// and swallowed so the committed core write is never reported as failed.
func (n *Notifier) bestEffort(step string, fn func() error) {
	if err := fn(); err != nil {
		n.log.Warn().Err(err).Str("step", step).Msg("side effect failed")
	}
}
