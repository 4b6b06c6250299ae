package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest snapshot of external service reachability.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor records an immediate health snapshot, then keeps it
// fresh with periodic checks. The first check runs synchronously so /health
// never serves a zero-value status.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	ctx := context.Background()
	recordHealth(ctx, redisClients, mongoClient)

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			recordHealth(ctx, redisClients, mongoClient)
		}
	}()
}

func recordHealth(ctx context.Context, redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	redisHealth := make(map[string]bool, len(redisClients))
	for name, client := range redisClients {
		redisHealth[name] = client.Ping(ctx).Err() == nil
	}

	mongoHealthy := mongoClient != nil && mongoClient.Ping(ctx, nil) == nil

	healthMu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	healthMu.Unlock()
}
