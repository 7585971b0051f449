package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type AssessmentRepository struct {
	col *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{col: db.Collection("assessments")}
}

func (r *AssessmentRepository) Insert(ctx context.Context, record models.AssessmentRecord) error {
	_, err := r.col.InsertOne(ctx, record)
	return err
}

func (r *AssessmentRepository) ListByUserField(ctx context.Context, field, userID string) ([]models.AssessmentRecord, error) {
	cursor, err := r.col.Find(ctx, bson.M{field: userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AssessmentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
