package booking

import (
	"context"
	"encoding/json"
	"time"

	"tutorhive/models"
	"tutorhive/services/availability"
	"tutorhive/utils"

	"github.com/go-redis/redis/v8"
)

// SelectionSession is the explicit context object for one user's in-progress
// booking against one tutor: the cached schedule, the booked intervals
// fetched for the selected date, and the selection state machine. It is
// loaded, transitioned and saved on every click; nothing about the flow
// lives in ambient globals.
type SelectionSession struct {
	SessionID   string                  `json:"sessionId"`
	UserID      string                  `json:"userId"`
	TutorID     string                  `json:"tutorId"`
	Timezone    string                  `json:"timezone"`
	Schedule    models.WeeklySchedule   `json:"schedule"`
	ScheduleRev int                     `json:"scheduleRev"`
	Selection   availability.Selection  `json:"selection"`
	Slots       []models.Slot           `json:"slots,omitempty"`
	Booked      []models.BookedInterval `json:"booked,omitempty"`
	// Version increments on every save. Background writers save through
	// SaveIfVersion so a stale copy never overwrites a newer one.
	Version int `json:"version"`
	// BookedFetchedAt records when Booked was last confirmed against the
	// session repository.
	BookedFetchedAt time.Time `json:"bookedFetchedAt,omitzero"`
	// BookedStale marks that the last interval fetch failed. Slots are still
	// rendered, but submission is blocked until a fetch succeeds.
	BookedStale bool `json:"bookedStale,omitempty"`
}

// Location resolves the session's timezone (the tutor's), falling back to UTC.
func (s *SelectionSession) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Day assembles the engine's validation context from the session's cached data.
func (s *SelectionSession) Day() availability.Day {
	return availability.Day{
		Date:   s.Selection.Date,
		Loc:    s.Location(),
		Slots:  s.Slots,
		Booked: s.Booked,
	}
}

// SessionStore persists selection sessions between clicks. Save is
// last-writer-wins for the request path; SaveIfVersion is the guarded write
// for background refreshes, failing with ErrConcurrentUpdate when the stored
// session moved past the expected version.
type SessionStore interface {
	Save(ctx context.Context, s *SelectionSession) error
	SaveIfVersion(ctx context.Context, s *SelectionSession, expected int) error
	Get(ctx context.Context, sessionID string) (*SelectionSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a Redis-backed SessionStore. Each save
// refreshes the TTL, so an active selection never expires mid-flow.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (st *redisSessionStore) Save(ctx context.Context, s *SelectionSession) error {
	s.Version++
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return st.client.Set(ctx, utils.SelectionSessionPrefix+s.SessionID, data, st.ttl).Err()
}

func (st *redisSessionStore) SaveIfVersion(ctx context.Context, s *SelectionSession, expected int) error {
	key := utils.SelectionSessionPrefix + s.SessionID
	return st.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrSelectionSessionNotFound
		}
		if err != nil {
			return err
		}
		var current SelectionSession
		if err := json.Unmarshal([]byte(data), &current); err != nil {
			return err
		}
		if current.Version != expected {
			return ErrConcurrentUpdate
		}
		s.Version = expected + 1
		payload, err := json.Marshal(s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, st.ttl)
			return nil
		})
		return err
	}, key)
}

func (st *redisSessionStore) Get(ctx context.Context, sessionID string) (*SelectionSession, error) {
	data, err := st.client.Get(ctx, utils.SelectionSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSelectionSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var s SelectionSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (st *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return st.client.Del(ctx, utils.SelectionSessionPrefix+sessionID).Err()
}
