package utils_test

import (
	"context"
	"testing"
	"time"

	"growlife/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestStartHealthMonitor_ChecksBeforeFirstTick(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	// Nothing listens on this address, so the mongo ping fails fast.
	mongoClient, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(200*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { mongoClient.Disconnect(context.Background()) })

	utils.StartHealthMonitor(redisClient, mongoClient)

	// The first snapshot must land well before the 60s ticker fires.
	require.Eventually(t, func() bool {
		status := utils.GetHealthStatus()
		return status.Redis && !status.CheckedAt.IsZero()
	}, 2*time.Second, 50*time.Millisecond)
}
