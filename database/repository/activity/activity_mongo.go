package activityRepo

import (
	"context"
	"fmt"
	"time"

	"growlife/database"
	"growlife/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository records and reads the recent-activity feed.
type ActivityRepository interface {
	Create(text string) (*models.Activity, error)
	// Recent returns the newest entries, most recent first.
	Recent(limit int64) ([]models.Activity, error)
}

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo creates a new instance of ActivityRepository using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	return &MongoActivityRepo{coll: database.Collection("activities")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create appends one activity line.
func (r *MongoActivityRepo) Create(text string) (*models.Activity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	activity := models.Activity{
		ID:        uuid.New().String(),
		Text:      text,
		Timestamp: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}
	return &activity, nil
}

// Recent returns the newest entries, most recent first.
func (r *MongoActivityRepo) Recent(limit int64) ([]models.Activity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recent activity: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}
