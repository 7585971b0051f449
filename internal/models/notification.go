package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationAppointmentCompleted = "appointment_completed"
	NotificationAppointmentDeleted   = "appointment_deleted"
	NotificationAppointmentStatus    = "appointment_status"
)

// Notification records are written as a side effect of appointment
// transitions and never mutated here afterwards.
type Notification struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        string             `bson:"userId" json:"userId"`
	Type          string             `bson:"type" json:"type"`
	Title         string             `bson:"title" json:"title"`
	Body          string             `bson:"body" json:"body"`
	AppointmentID string             `bson:"appointmentId" json:"appointmentId"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	Read          bool               `bson:"read" json:"read"`
}
