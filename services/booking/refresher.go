package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"tutorhive/utils"

	"go.uber.org/zap"
)

// IntervalRefresher is the slice of the booking flow the refresher drives.
type IntervalRefresher interface {
	RefreshIntervals(ctx context.Context, sessionID string) error
}

// RefresherManager runs one background loop per active selection session,
// periodically re-fetching booked intervals so long-lived sessions do not
// validate against a conflict view frozen at date selection. Each loop is
// tied to a cancelable context; Stop tears it down, and the loop also exits
// on its own once the session expires from the cache.
type RefresherManager struct {
	mu       sync.Mutex
	active   map[string]context.CancelFunc
	flow     IntervalRefresher
	interval time.Duration
	logger   *zap.Logger
}

func NewRefresherManager(flow IntervalRefresher, interval time.Duration) *RefresherManager {
	return &RefresherManager{
		active:   make(map[string]context.CancelFunc),
		flow:     flow,
		interval: interval,
		logger:   utils.GetLogger(),
	}
}

// Start launches a refresh loop for the session, replacing any existing one.
func (m *RefresherManager) Start(sessionID string) {
	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	if prev, ok := m.active[sessionID]; ok {
		prev()
	}
	m.active[sessionID] = cancel
	m.mu.Unlock()

	go m.run(ctx, sessionID)
}

// Stop cancels the session's refresh loop, if one is running.
func (m *RefresherManager) Stop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cancel, ok := m.active[sessionID]; ok {
		cancel()
		delete(m.active, sessionID)
	}
}

// StopAll cancels every refresh loop. Called at shutdown.
func (m *RefresherManager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, cancel := range m.active {
		cancel()
		delete(m.active, id)
	}
}

func (m *RefresherManager) run(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := m.flow.RefreshIntervals(ctx, sessionID)
			if errors.Is(err, ErrSelectionSessionNotFound) {
				m.logger.Debug("selection session gone, stopping refresher",
					zap.String("sessionID", sessionID))
				m.Stop(sessionID)
				return
			}
			if err != nil {
				m.logger.Warn("interval refresh failed",
					zap.String("sessionID", sessionID), zap.Error(err))
			}
		}
	}
}
