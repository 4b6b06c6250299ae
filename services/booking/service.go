package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	sessionRepo "tutorhive/database/repository/session"
	"tutorhive/models"
	"tutorhive/services/availability"
	"tutorhive/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession loads the tutor's schedule into a fresh selection session and
// caches it. The schedule is fetched once per session; date changes reuse it.
func (svc *DefaultBookingFlowService) StartSession(ctx context.Context, userID, tutorID string) (*SelectionSession, error) {
	tutor, err := svc.TutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor: %w", err)
	}

	session := &SelectionSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		TutorID:     tutor.ID,
		Timezone:    tutor.Timezone,
		Schedule:    tutor.Schedule,
		ScheduleRev: tutor.ScheduleRev,
		Selection:   availability.NewSelection(""),
	}
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to cache selection session: %w", err)
	}

	if svc.Refreshers != nil {
		svc.Refreshers.Start(session.SessionID)
	}
	return session, nil
}

// SelectDate runs a fresh resolver and conflict-filter pass for the date and
// unconditionally resets the selection. If the booked-interval fetch fails
// the day still renders, flagged unconfirmed, and submission stays blocked.
func (svc *DefaultBookingFlowService) SelectDate(ctx context.Context, sessionID, date string) (*DayAvailability, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	loc := session.Location()
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, availability.NewRejection(availability.CodeDateUnavailable, "That date is not valid.")
	}
	now := time.Now().In(loc)
	if !availability.WithinHorizon(day, now, svc.horizonDays()) {
		return nil, availability.NewRejection(availability.CodeDateUnavailable,
			fmt.Sprintf("Sessions can be booked up to %d days ahead.", svc.horizonDays()))
	}

	session.Selection = availability.NewSelection(date)
	session.Slots = availability.ResolveSlots(session.Schedule, day)

	booked, err := svc.SessionRepo.ListIntervals(ctx, session.TutorID, date, loc)
	if err != nil {
		utils.GetLogger().Warn("booked-interval fetch failed, flagging day unconfirmed",
			zap.String("tutorID", session.TutorID), zap.String("date", date), zap.Error(err))
		session.Booked = nil
		session.BookedStale = true
	} else {
		session.Booked = booked
		session.BookedStale = false
		session.BookedFetchedAt = now
	}

	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save selection session: %w", err)
	}
	return svc.dayAvailability(session, now), nil
}

// ClickSlot applies one slot click. Validation rejections come back as
// *availability.SelectionError with the session state already persisted
// (a rejected click leaves the selection unchanged except for start expiry,
// which resets it).
func (svc *DefaultBookingFlowService) ClickSlot(ctx context.Context, sessionID string, slot models.Slot) (*DayAvailability, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Selection.Date == "" {
		return nil, availability.NewRejection(availability.CodeDateUnavailable, "Pick a date first.")
	}

	now := time.Now().In(session.Location())
	next, clickErr := session.Selection.Click(session.Day(), slot, now)
	session.Selection = next
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save selection session: %w", err)
	}
	if clickErr != nil {
		return nil, clickErr
	}
	return svc.dayAvailability(session, now), nil
}

// Windows returns the current day view without changing any state.
func (svc *DefaultBookingFlowService) Windows(ctx context.Context, sessionID string) (*DayAvailability, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := time.Now().In(session.Location())
	return svc.dayAvailability(session, now), nil
}

// Confirm submits the validated range as a session request. The range is
// re-validated against freshly fetched booked intervals first, and the
// repository performs the authoritative conflict check at insert. On a late
// conflict the session's intervals are refreshed before the error surfaces,
// so the caller's next render reflects the new booking.
func (svc *DefaultBookingFlowService) Confirm(ctx context.Context, sessionID, subject, message string) (*ConfirmResult, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Selection.Phase != availability.PhaseRange {
		return nil, ErrNoRangeSelected
	}

	loc := session.Location()
	now := time.Now().In(loc)

	// The local conflict view is advisory; refuse to submit against data
	// that was never confirmed, and re-fetch so the final validation sees
	// the latest intervals.
	booked, err := svc.SessionRepo.ListIntervals(ctx, session.TutorID, session.Selection.Date, loc)
	if err != nil {
		session.BookedStale = true
		_ = svc.Store.Save(ctx, session)
		return nil, ErrUnconfirmedBookings
	}
	session.Booked = booked
	session.BookedStale = false
	session.BookedFetchedAt = now

	if err := availability.ValidateRange(session.Day(), session.Selection.Start, session.Selection.End, now); err != nil {
		session.Selection = availability.NewSelection(session.Selection.Date)
		_ = svc.Store.Save(ctx, session)
		return nil, err
	}

	start, err := session.Selection.Start.Time(loc)
	if err != nil {
		return nil, err
	}
	end, err := session.Selection.End.Time(loc)
	if err != nil {
		return nil, err
	}

	tutor, err := svc.TutorRepo.GetByID(ctx, session.TutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor: %w", err)
	}

	req := models.SessionRequest{
		ID:       uuid.New().String(),
		TutorID:  session.TutorID,
		UserID:   session.UserID,
		Start:    start,
		End:      end,
		Subject:  subject,
		Message:  message,
		Status:   models.SessionPending,
		Amount:   tutor.HourlyRate * end.Sub(start).Hours(),
		Currency: tutor.Currency,
	}

	if err := svc.SessionRepo.Create(ctx, req); err != nil {
		if errors.Is(err, sessionRepo.ErrConflict) {
			// Our conflict view is now known stale; refresh it before the
			// user tries again.
			if fresh, ferr := svc.SessionRepo.ListIntervals(ctx, session.TutorID, session.Selection.Date, loc); ferr == nil {
				session.Booked = fresh
				session.BookedFetchedAt = time.Now().In(loc)
			}
			session.Selection = availability.NewSelection(session.Selection.Date)
			_ = svc.Store.Save(ctx, session)
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}

	result := &ConfirmResult{Session: req}
	if svc.Payments != nil {
		secret, paymentID, perr := svc.Payments.CreatePaymentIntent(ctx, req)
		if perr != nil {
			// The request stands; payment is retried at checkout.
			utils.GetLogger().Error("payment intent creation failed",
				zap.String("sessionRequestID", req.ID), zap.Error(perr))
		} else {
			result.PaymentClientSecret = secret
			result.Session.PaymentID = paymentID
			if uerr := svc.SessionRepo.SetPaymentID(ctx, req.ID, paymentID); uerr != nil {
				utils.GetLogger().Warn("failed to attach payment id",
					zap.String("sessionRequestID", req.ID), zap.Error(uerr))
			}
		}
	}

	if svc.NotifRepo != nil {
		if nerr := svc.NotifRepo.Insert(ctx, models.Notification{
			Target:    "tutor",
			TargetID:  req.TutorID,
			Title:     "New session request",
			Body:      fmt.Sprintf("%s on %s", req.Subject, req.Start.Format("Jan 2 at 3:04 PM")),
			SessionID: req.ID,
		}); nerr != nil {
			utils.GetLogger().Warn("failed to write request notification",
				zap.String("sessionRequestID", req.ID), zap.Error(nerr))
		}
	}

	if svc.Reminders != nil {
		if rerr := svc.Reminders.ScheduleSessionReminder(ctx, req); rerr != nil {
			utils.GetLogger().Warn("failed to schedule session reminder",
				zap.String("sessionRequestID", req.ID), zap.Error(rerr))
		}
	}

	if svc.Refreshers != nil {
		svc.Refreshers.Stop(sessionID)
	}
	if derr := svc.Store.Delete(ctx, sessionID); derr != nil {
		utils.GetLogger().Warn("failed to drop selection session",
			zap.String("sessionID", sessionID), zap.Error(derr))
	}
	return result, nil
}

// CancelSession drops the cached selection and stops its refresher.
func (svc *DefaultBookingFlowService) CancelSession(ctx context.Context, sessionID string) error {
	if svc.Refreshers != nil {
		svc.Refreshers.Stop(sessionID)
	}
	return svc.Store.Delete(ctx, sessionID)
}

// RefreshIntervals re-fetches booked intervals for the session's current
// date. The fetch is checked against the date the session points at when the
// result lands; a stale result for a previously selected date is discarded.
func (svc *DefaultBookingFlowService) RefreshIntervals(ctx context.Context, sessionID string) error {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	date := session.Selection.Date
	if date == "" {
		return nil
	}
	loc := session.Location()

	booked, err := svc.SessionRepo.ListIntervals(ctx, session.TutorID, date, loc)

	// Reload: the user may have switched dates while the fetch ran. The
	// save is version-guarded so a click handled after the reload is never
	// overwritten; the next tick refreshes against the new state.
	session, rerr := svc.Store.Get(ctx, sessionID)
	if rerr != nil {
		return rerr
	}
	if session.Selection.Date != date {
		return nil
	}
	loaded := session.Version

	if err != nil {
		session.BookedStale = true
		if serr := svc.Store.SaveIfVersion(ctx, session, loaded); serr != nil && !errors.Is(serr, ErrConcurrentUpdate) {
			return serr
		}
		return err
	}
	session.Booked = booked
	session.BookedStale = false
	session.BookedFetchedAt = time.Now().In(loc)
	if serr := svc.Store.SaveIfVersion(ctx, session, loaded); serr != nil {
		if errors.Is(serr, ErrConcurrentUpdate) {
			return nil
		}
		return serr
	}
	return nil
}

func (svc *DefaultBookingFlowService) horizonDays() int {
	if svc.HorizonDays <= 0 {
		return 90
	}
	return svc.HorizonDays
}

// dayAvailability builds the render model for the session's current date.
func (svc *DefaultBookingFlowService) dayAvailability(session *SelectionSession, now time.Time) *DayAvailability {
	day := session.Day()
	return &DayAvailability{
		Date:        session.Selection.Date,
		Windows:     availability.GroupWindows(session.Slots),
		Selectable:  day.SelectableSlots(now),
		Selection:   session.Selection,
		Unconfirmed: session.BookedStale,
	}
}
