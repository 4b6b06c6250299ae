package tutorRepo

import (
	"context"
	"errors"
	"time"

	"tutorhive/database"
	"tutorhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrTutorNotFound is returned when no tutor matches the given ID.
var ErrTutorNotFound = errors.New("tutor not found")

type mongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo returns a Mongo-backed TutorRepository.
func NewMongoTutorRepo() TutorRepository {
	return &mongoTutorRepo{coll: database.Collection("tutors")}
}

func (r *mongoTutorRepo) Create(ctx context.Context, t models.Tutor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Schedule == nil {
		t.Schedule = models.NewWeeklySchedule()
	}
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoTutorRepo) GetByID(ctx context.Context, id string) (*models.Tutor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t models.Tutor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, ErrTutorNotFound
	}
	if err != nil {
		return nil, err
	}
	if t.Schedule == nil {
		t.Schedule = models.NewWeeklySchedule()
	}
	return &t, nil
}

func (r *mongoTutorRepo) GetSchedule(ctx context.Context, id string) (models.WeeklySchedule, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t models.Tutor
	opts := options.FindOne().SetProjection(bson.M{"schedule": 1, "scheduleRev": 1})
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, 0, ErrTutorNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	if t.Schedule == nil {
		t.Schedule = models.NewWeeklySchedule()
	}
	return t.Schedule, t.ScheduleRev, nil
}

func (r *mongoTutorRepo) UpdateSchedule(ctx context.Context, id string, sched models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"schedule": sched, "updatedAt": time.Now()},
		"$inc": bson.M{"scheduleRev": 1},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTutorNotFound
	}
	return nil
}
