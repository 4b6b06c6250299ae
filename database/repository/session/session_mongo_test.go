package sessionRepo

import (
	"testing"
	"time"

	"tutorhive/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestOverlapFilterHalfOpen(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	req := models.SessionRequest{TutorID: "tutor-1", Start: start, End: end}

	filter := overlapFilter(req)

	if got := filter["tutorId"]; got != "tutor-1" {
		t.Errorf("tutorId = %v, want tutor-1", got)
	}

	// [a,b) collides with [c,d) iff a < d && c < b: an existing session
	// ending exactly at our start (or starting exactly at our end) must
	// not match.
	startCond, ok := filter["start"].(bson.M)
	if !ok || !startCond["$lt"].(time.Time).Equal(end) {
		t.Errorf("start condition = %v, want $lt %v", filter["start"], end)
	}
	endCond, ok := filter["end"].(bson.M)
	if !ok || !endCond["$gt"].(time.Time).Equal(start) {
		t.Errorf("end condition = %v, want $gt %v", filter["end"], start)
	}

	statusCond, ok := filter["status"].(bson.M)
	if !ok {
		t.Fatalf("status condition = %v, want $in", filter["status"])
	}
	statuses, ok := statusCond["$in"].([]string)
	if !ok || len(statuses) != 2 {
		t.Fatalf("blocking statuses = %v, want pending and confirmed", statusCond["$in"])
	}
	for _, s := range statuses {
		if s != models.SessionPending && s != models.SessionConfirmed {
			t.Errorf("unexpected blocking status %q", s)
		}
	}
}
