package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection("appointment_notes")}
}

func (r *NoteRepository) Get(ctx context.Context, appointmentID, counsellorID string) (*models.AppointmentNote, error) {
	var note models.AppointmentNote
	err := r.col.FindOne(ctx, bson.M{
		"appointmentId": appointmentID,
		"counsellorId":  counsellorID,
	}).Decode(&note)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) Put(ctx context.Context, appointmentID, counsellorID, text string, at time.Time) error {
	update := bson.M{"$set": bson.M{"text": text, "updatedAt": at}}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{
		"appointmentId": appointmentID,
		"counsellorId":  counsellorID,
	}, update, opts)
	return err
}
