package policyRepo

import (
	"context"
	"fmt"
	"time"

	"growlife/database"
	"growlife/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPolicyRepo implements PolicyRepository using MongoDB.
type MongoPolicyRepo struct {
	coll *mongo.Collection
}

// NewMongoPolicyRepo creates a new instance of PolicyRepository using MongoDB.
func NewMongoPolicyRepo() PolicyRepository {
	coll := database.Collection("policies")
	repo := &MongoPolicyRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPolicyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "displayId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts the policy, assigning a display id when none is set.
func (r *MongoPolicyRepo) Create(policy *models.Policy) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if policy.DisplayID == "" {
		policy.DisplayID = models.NewDisplayID()
	}
	now := time.Now()
	policy.CreatedAt = now
	policy.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, policy)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields of an existing policy document.
// The display id is deliberately excluded: it is immutable once assigned.
func (r *MongoPolicyRepo) Update(policy *models.Policy) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	policy.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"policyName":        policy.PolicyName,
		"policyDescription": policy.PolicyDescription,
		"premium":           policy.Premium,
		"policySpecs":       policy.PolicySpecs,
		"customer":          policy.Customer,
		"agent":             policy.Agent,
		"validUntil":        policy.ValidUntil,
		"updatedAt":         policy.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": policy.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update policy with id %s: %w", policy.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("policy with id %s: %w", policy.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a policy document by its ID.
func (r *MongoPolicyRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete policy with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("policy with id %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *MongoPolicyRepo) findOne(filter bson.M) (*models.Policy, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var policy models.Policy
	if err := r.coll.FindOne(ctx, filter).Decode(&policy); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch policy: %w", err)
	}
	return &policy, nil
}

// GetByID retrieves a policy by its internal record id.
func (r *MongoPolicyRepo) GetByID(id string) (*models.Policy, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByDisplayID retrieves a policy by its human-facing policy code.
func (r *MongoPolicyRepo) GetByDisplayID(displayID string) (*models.Policy, error) {
	return r.findOne(bson.M{"displayId": displayID})
}

// GetAll lists policies, optionally restricted to a category.
func (r *MongoPolicyRepo) GetAll(category string) ([]models.Policy, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve policies: %w", err)
	}
	defer cursor.Close(ctx)

	var policies []models.Policy
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, fmt.Errorf("failed to decode policies: %w", err)
	}
	return policies, nil
}

// GetByIDs resolves a list of record ids, preserving the input order and
// silently skipping ids that no longer resolve (deleted policies leave
// dangling references behind in user documents).
func (r *MongoPolicyRepo) GetByIDs(ids []string) ([]models.Policy, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve policies: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]models.Policy, len(ids))
	for cursor.Next(ctx) {
		var p models.Policy
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode policy: %w", err)
		}
		byID[p.ID] = p
	}

	policies := make([]models.Policy, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			policies = append(policies, p)
		}
	}
	return policies, nil
}

// Count returns the total number of policies.
func (r *MongoPolicyRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
