package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type EscalationRepository struct {
	col *mongo.Collection
}

func NewEscalationRepository(db *mongo.Database) *EscalationRepository {
	return &EscalationRepository{col: db.Collection("escalations")}
}

func (r *EscalationRepository) Insert(ctx context.Context, escalation models.Escalation) error {
	_, err := r.col.InsertOne(ctx, escalation)
	return err
}
