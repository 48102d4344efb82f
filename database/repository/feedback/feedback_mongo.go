package feedbackRepo

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

// FeedbackRepository stores and lists customer feedback.
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	// GetAll returns all feedback, newest first.
	GetAll() ([]models.Feedback, error)
}

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	return &MongoFeedbackRepo{coll: database.Collection("feedback")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a feedback document.
func (r *MongoFeedbackRepo) Create(feedback *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	feedback.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, feedback); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// GetAll returns all feedback, newest first.
func (r *MongoFeedbackRepo) GetAll() ([]models.Feedback, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedbacks, nil
}
