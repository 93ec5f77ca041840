package bookingattempts

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingAttemptMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingAttemptMongoRepository(db *mongo.Database, collectionName string) contracts.BookingAttemptRepository {
	return &BookingAttemptMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

func (repo *BookingAttemptMongoRepository) Insert(ctx context.Context, attempt *models.BookingAttempt) error {
	attempt.SetCreatedAtUpdatedAt()
	result, err := repo.Collection.InsertOne(ctx, attempt)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		attempt.ID = id
	}
	return nil
}

// CountByOutcome groups every recorded attempt by its outcome.
func (repo *BookingAttemptMongoRepository) CountByOutcome(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$outcome"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Outcome string `bson:"_id"`
		Count   int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Outcome] = row.Count
	}
	return counts, nil
}
