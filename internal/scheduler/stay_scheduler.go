package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/grafnet-dev/hotel-management-extension/internal/application"
	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

// StayScheduler periodically checks out stays whose checkout time has
// passed. The sweep goes through the state machine, so only legal
// transitions are performed and booking statuses stay in sync.
type StayScheduler struct {
	store   *application.Store
	machine *application.StateMachine
	gate    sync.Locker
	ticker  *time.Ticker
}

// NewStayScheduler creates a scheduler. gate is the mutex serializing access
// to the store's command surface, shared with the HTTP layer.
func NewStayScheduler(store *application.Store, machine *application.StateMachine, gate sync.Locker) *StayScheduler {
	return &StayScheduler{
		store:   store,
		machine: machine,
		gate:    gate,
	}
}

// Start runs one sweep immediately, then schedules a daily run shortly after
// midnight.
func (s *StayScheduler) Start() {
	log.Println("scheduler: stay expiry sweep started, runs daily")

	s.SweepExpiredStays(time.Now())

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	log.Printf("scheduler: next run at %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(time.Until(nextRun), func() {
		s.SweepExpiredStays(time.Now())

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.SweepExpiredStays(time.Now())
			}
		}()
	})
}

// Stop halts the periodic sweep
func (s *StayScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("scheduler: stay expiry sweep stopped")
	}
}

// SweepExpiredStays checks out every checked-in stay whose checkout time is
// in the past
func (s *StayScheduler) SweepExpiredStays(now time.Time) {
	s.gate.Lock()
	defer s.gate.Unlock()

	swept := 0
	for _, stay := range s.store.Stays() {
		if stay.Status != domain.StayCheckedIn {
			continue
		}
		if stay.CheckOut.IsZero() || stay.CheckOut.After(now) {
			continue
		}
		if s.machine.UpdateStayStatus(stay.ID, domain.StayCheckedOut) {
			swept++
		}
	}
	if swept > 0 {
		log.Printf("scheduler: checked out %d expired stays", swept)
	}
}
