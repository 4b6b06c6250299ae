package notificationRepo

import (
	"context"
	"time"

	"tutorhive/database"
	"tutorhive/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository stores in-app notification records written by the
// reminder worker.
type NotificationRepository interface {
	Insert(ctx context.Context, n models.Notification) error
	ListByTarget(ctx context.Context, target, targetID string) ([]models.Notification, error)
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a Mongo-backed NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{coll: database.Collection("notifications")}
}

func (r *mongoNotificationRepo) Insert(ctx context.Context, n models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func (r *mongoNotificationRepo) ListByTarget(ctx context.Context, target, targetID string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"target": target, "targetId": targetID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Notification
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
