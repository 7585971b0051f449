package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type MoodScoreRepository struct {
	col *mongo.Collection
}

func NewMoodScoreRepository(db *mongo.Database) *MoodScoreRepository {
	return &MoodScoreRepository{col: db.Collection("mood_scores")}
}

func (r *MoodScoreRepository) ListByUser(ctx context.Context, userID string) ([]models.MoodScore, error) {
	cursor, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scores []models.MoodScore
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// MoodSampleRepository reads the legacy moods collection, where the user id
// field name varies by app version.
type MoodSampleRepository struct {
	col *mongo.Collection
}

func NewMoodSampleRepository(db *mongo.Database) *MoodSampleRepository {
	return &MoodSampleRepository{col: db.Collection("moods")}
}

func (r *MoodSampleRepository) ListByUserField(ctx context.Context, field, userID string) ([]models.MoodSample, error) {
	cursor, err := r.col.Find(ctx, bson.M{field: userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var samples []models.MoodSample
	if err := cursor.All(ctx, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}
