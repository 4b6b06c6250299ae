package utils

import (
	"testing"

	"github.com/go-redis/redis/v8"
)

func TestHealthSnapshotAvailableImmediately(t *testing.T) {
	StartHealthMonitor(map[string]*redis.Client{}, nil)

	status := GetHealthStatus()
	if status.CheckedAt.IsZero() {
		t.Fatal("expected a snapshot before the first ticker interval")
	}
	if status.Mongo {
		t.Error("an absent mongo client must report unhealthy")
	}
}
