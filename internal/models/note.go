package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentNote is a counsellor's private note on an appointment, keyed by
// (appointmentId, counsellorId).
type AppointmentNote struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AppointmentID string             `bson:"appointmentId" json:"-"`
	CounsellorID  string             `bson:"counsellorId" json:"-"`
	Text          string             `bson:"text" json:"text"`
	UpdatedAt     *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
