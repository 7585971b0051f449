package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type AvailabilityRepository struct {
	col *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) *AvailabilityRepository {
	return &AvailabilityRepository{col: db.Collection("availability_slots")}
}

func slotFilter(counsellorID, dateKey, timeStr string) bson.M {
	return bson.M{
		"counsellorId": counsellorID,
		"dateKey":      dateKey,
		"slotKey":      timeStr,
	}
}

// Upsert creates the slot as available or refreshes an existing one. The
// booked flag is only set on insert so re-upserting a booked slot does not
// silently free it.
func (r *AvailabilityRepository) Upsert(ctx context.Context, counsellorID, dateKey, timeStr string, at time.Time) error {
	update := bson.M{
		"$set":         bson.M{"time": timeStr, "updatedAt": at},
		"$setOnInsert": bson.M{"booked": false},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, slotFilter(counsellorID, dateKey, timeStr), update, opts)
	return err
}

// SetActive flips the active flag, creating the slot as unbooked if absent.
func (r *AvailabilityRepository) SetActive(ctx context.Context, counsellorID, dateKey, timeStr string, active bool, at time.Time) error {
	update := bson.M{
		"$set":         bson.M{"active": active, "updatedAt": at},
		"$setOnInsert": bson.M{"time": timeStr, "booked": false},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, slotFilter(counsellorID, dateKey, timeStr), update, opts)
	return err
}

// Free clears the booking on an existing slot. A missing slot is not an
// error; there is simply nothing to free.
func (r *AvailabilityRepository) Free(ctx context.Context, counsellorID, dateKey, timeStr string, at time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"booked":    false,
			"bookedBy":  nil,
			"sessionId": nil,
			"updatedAt": at,
		},
	}
	_, err := r.col.UpdateOne(ctx, slotFilter(counsellorID, dateKey, timeStr), update)
	return err
}

func (r *AvailabilityRepository) ListByDay(ctx context.Context, counsellorID, dateKey string) ([]models.AvailabilitySlot, error) {
	cursor, err := r.col.Find(ctx, bson.M{"counsellorId": counsellorID, "dateKey": dateKey})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
