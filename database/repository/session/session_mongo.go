package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tutorhive/database"
	"tutorhive/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrConflict is returned when a session request overlaps an existing
// pending or confirmed session on the tutor's calendar.
var ErrConflict = errors.New("requested time overlaps an existing session")

// ErrSessionNotFound is returned when no session matches the given ID.
var ErrSessionNotFound = errors.New("session not found")

// blockingStatuses are the statuses that occupy calendar time.
var blockingStatuses = []string{models.SessionPending, models.SessionConfirmed}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo returns a Mongo-backed SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	return &mongoSessionRepo{coll: database.Collection("sessions")}
}

func (r *mongoSessionRepo) Create(ctx context.Context, req models.SessionRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = models.SessionPending
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	// The conflict check and the insert must be one atomic unit: two
	// concurrent submissions for overlapping ranges would otherwise both
	// observe an empty count and both insert.
	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(req))
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrConflict
		}
		_, err = r.coll.InsertOne(sc, req)
		return err
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// overlapFilter matches blocking sessions colliding with the request's
// half-open interval: [a,b) collides with [c,d) iff a < d && c < b.
func overlapFilter(req models.SessionRequest) bson.M {
	return bson.M{
		"tutorId": req.TutorID,
		"status":  bson.M{"$in": blockingStatuses},
		"start":   bson.M{"$lt": req.End},
		"end":     bson.M{"$gt": req.Start},
	}
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, id string) (*models.SessionRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var req models.SessionRequest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *mongoSessionRepo) ListIntervals(ctx context.Context, tutorID, date string, loc *time.Location) ([]models.BookedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := bson.M{
		"tutorId": tutorID,
		"status":  bson.M{"$in": blockingStatuses},
		"start":   bson.M{"$lt": dayEnd},
		"end":     bson.M{"$gt": dayStart},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.SessionRequest
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}

	intervals := make([]models.BookedInterval, 0, len(sessions))
	for _, s := range sessions {
		intervals = append(intervals, s.Interval())
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
	return intervals, nil
}

func (r *mongoSessionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *mongoSessionRepo) SetPaymentID(ctx context.Context, id, paymentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"paymentId": paymentID, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}
