package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailabilitySlot is keyed by (counsellorId, dateKey, slotKey). SlotKey is
// the raw time string the slot was created under; Time may be blank on
// documents written by older app versions, in which case SlotKey carries it.
type AvailabilitySlot struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CounsellorID string             `bson:"counsellorId" json:"-"`
	DateKey      string             `bson:"dateKey" json:"-"`
	SlotKey      string             `bson:"slotKey" json:"id"`
	Time         string             `bson:"time,omitempty" json:"time"`
	Booked       bool               `bson:"booked" json:"booked"`
	BookedBy     *string            `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"`
	SessionID    *string            `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Active       *bool              `bson:"active,omitempty" json:"active,omitempty"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
