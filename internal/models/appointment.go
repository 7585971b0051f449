package models

import "time"

// Appointment documents are created by the student app; this service only
// mutates them. Several fields exist in two spellings because older app
// versions wrote userId/email instead of studentId/studentEmail.
type Appointment struct {
	ID              string     `bson:"_id" json:"id"`
	CounsellorID    string     `bson:"counsellorId" json:"counsellorId"`
	StudentID       string     `bson:"studentId,omitempty" json:"studentId,omitempty"`
	UserID          string     `bson:"userId,omitempty" json:"userId,omitempty"`
	StudentEmail    string     `bson:"studentEmail,omitempty" json:"studentEmail,omitempty"`
	Email           string     `bson:"email,omitempty" json:"email,omitempty"`
	StudentName     string     `bson:"studentName,omitempty" json:"studentName,omitempty"`
	CounsellorName  string     `bson:"counsellorName,omitempty" json:"counsellorName,omitempty"`
	AppointmentDate string     `bson:"appointmentDate,omitempty" json:"appointmentDate,omitempty"`
	AppointmentTime string     `bson:"appointmentTime,omitempty" json:"appointmentTime,omitempty"`
	Status          string     `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt       *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// StudentRef returns the student id, preferring the current field over the
// legacy userId spelling.
func (a *Appointment) StudentRef() string {
	if a.StudentID != "" {
		return a.StudentID
	}
	return a.UserID
}

// ContactEmail returns the email stored on the appointment itself, if any.
func (a *Appointment) ContactEmail() string {
	if a.StudentEmail != "" {
		return a.StudentEmail
	}
	return a.Email
}
