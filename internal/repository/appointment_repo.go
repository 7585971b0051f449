package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection("appointments")}
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&appt)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// List fetches with an equality filter only; the service sorts in memory so
// the store needs no composite index.
func (r *AppointmentRepository) List(ctx context.Context, counsellorID string, limit int64) ([]models.Appointment, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := r.col.Find(ctx, bson.M{"counsellorId": counsellorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) SetStatus(ctx context.Context, id, status string, at time.Time) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": at},
	})
	return err
}

func (r *AppointmentRepository) SetSchedule(ctx context.Context, id, date, timeStr string, at time.Time) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"appointmentDate": date,
			"appointmentTime": timeStr,
			"updatedAt":       at,
		},
	})
	return err
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
