package userRepo

import (
	"context"
	"fmt"
	"time"

	"growlife/database"
	"growlife/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// agentUsernamePattern matches usernames that mark an account as an agent.
var agentUsernamePattern = primitive.Regex{Pattern: "@agent", Options: "i"}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mobile", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "claims.claimId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// findOne retrieves a single user matching the filter, nil if absent.
func (r *MongoUserRepo) findOne(filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// findMany retrieves all users matching the filter with an optional projection.
func (r *MongoUserRepo) findMany(filter bson.M, projection bson.M) ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update modifies an existing user document.
func (r *MongoUserRepo) Update(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	user.UpdatedAt = time.Now()
	filter := bson.M{"id": user.ID}
	update := bson.M{"$set": user}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", user.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s: %w", user.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a user document by its ID.
func (r *MongoUserRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("user with id %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByUsername retrieves a user by username.
func (r *MongoUserRepo) GetByUsername(username string) (*models.User, error) {
	return r.findOne(bson.M{"username": username})
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

// GetAll retrieves all users.
func (r *MongoUserRepo) GetAll() ([]models.User, error) {
	return r.findMany(bson.M{}, nil)
}

// GetCustomers retrieves every account that is neither the admin nor an agent.
func (r *MongoUserRepo) GetCustomers() ([]models.User, error) {
	filter := bson.M{
		"username": bson.M{
			"$ne":  "admin",
			"$not": agentUsernamePattern,
		},
	}
	return r.findMany(filter, nil)
}

// GetAgents retrieves accounts whose username marks them as agents.
func (r *MongoUserRepo) GetAgents(projection bson.M) ([]models.User, error) {
	return r.findMany(bson.M{"username": agentUsernamePattern}, projection)
}

// GetByClaimID locates the account owning the claim with the given id.
func (r *MongoUserRepo) GetByClaimID(claimID string) (*models.User, error) {
	return r.findOne(bson.M{"claims.claimId": claimID})
}

// RemoveClaim pulls the claim out of its owning account.
func (r *MongoUserRepo) RemoveClaim(claimID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"claims.claimId": claimID}
	update := bson.M{"$pull": bson.M{"claims": bson.M{"claimId": claimID}}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove claim %s: %w", claimID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("claim %s: %w", claimID, ErrNotFound)
	}
	return nil
}

// CountAgents counts accounts whose username marks them as agents.
func (r *MongoUserRepo) CountAgents() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"username": agentUsernamePattern})
}

// CountCustomers counts accounts that are neither the admin nor agents.
func (r *MongoUserRepo) CountCustomers() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{
		"username": bson.M{
			"$ne":  "admin",
			"$not": agentUsernamePattern,
		},
	}
	return r.coll.CountDocuments(ctx, filter)
}

// CountPendingClaims counts claims with status Pending across all accounts.
func (r *MongoUserRepo) CountPendingClaims() (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$claims"}},
		{{Key: "$match", Value: bson.M{"claims.status": models.ClaimPending}}},
		{{Key: "$count", Value: "totalPending"}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending claims: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalPending int64 `bson:"totalPending"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode pending claim count: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalPending, nil
}

// CountRegisteredBy counts customer accounts registered by the given label.
func (r *MongoUserRepo) CountRegisteredBy(label string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"registeredBy": label, "role": models.RoleUser})
}
