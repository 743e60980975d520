package application

import (
	"log"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
	"github.com/grafnet-dev/hotel-management-extension/internal/email"
)

// bookingTransitions is the closed transition table for bookings. No
// transition outside the table is ever performed.
var bookingTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:    {domain.BookingConfirmed, domain.BookingCancelled},
	domain.BookingConfirmed:  {domain.BookingInProgress, domain.BookingCancelled},
	domain.BookingInProgress: {domain.BookingCompleted, domain.BookingCancelled},
	domain.BookingCompleted:  {},
	domain.BookingCancelled:  {},
}

// stayTransitions is the closed transition table for stays
var stayTransitions = map[domain.StayStatus][]domain.StayStatus{
	domain.StayPending:    {domain.StayCheckedIn, domain.StayCancelled},
	domain.StayCheckedIn:  {domain.StayCheckedOut, domain.StayCancelled},
	domain.StayCheckedOut: {},
	domain.StayCancelled:  {},
}

// bookingPromotionPath is the forward path the synchronizer walks when the
// aggregate child state requires a status the table does not reach in one
// step (e.g. pending -> in_progress goes through confirmed)
var bookingPromotionPath = []domain.BookingStatus{
	domain.BookingPending,
	domain.BookingConfirmed,
	domain.BookingInProgress,
	domain.BookingCompleted,
}

func bookingTransitionAllowed(from, to domain.BookingStatus) bool {
	for _, s := range bookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func stayTransitionAllowed(from, to domain.StayStatus) bool {
	for _, s := range stayTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ConfirmationSender delivers booking confirmation notifications. Failures
// are logged and never fail the transition that triggered them.
type ConfirmationSender interface {
	SendBookingConfirmation(conf email.BookingConfirmation) error
}

// StateMachine governs status transitions for bookings and stays and keeps
// the parent booking status consistent with its children
type StateMachine struct {
	store    *Store
	notifier ConfirmationSender
}

// NewStateMachine creates a state machine bound to the given store
func NewStateMachine(store *Store) *StateMachine {
	return &StateMachine{store: store}
}

// SetNotifier installs the confirmation sender. A nil notifier disables
// notifications.
func (m *StateMachine) SetNotifier(n ConfirmationSender) {
	m.notifier = n
}

// UpdateBookingStatus moves a booking to next if the transition table allows
// it. It returns false without mutating anything otherwise. Cancelling a
// booking cascades to every linked stay; stays already in a terminal state
// are left untouched and never fail the parent transition.
func (m *StateMachine) UpdateBookingStatus(bookingID int, next domain.BookingStatus) bool {
	b, ok := m.store.Booking(bookingID)
	if !ok {
		log.Printf("state: booking %d not found", bookingID)
		return false
	}
	if !bookingTransitionAllowed(b.Status, next) {
		log.Printf("state: booking %d rejected transition %s -> %s", bookingID, b.Status, next)
		return false
	}

	b.Status = next

	switch next {
	case domain.BookingCancelled:
		m.cascadeCancellation(b)
	case domain.BookingConfirmed:
		m.sendConfirmation(b)
	}
	return true
}

// cascadeCancellation cancels every non-terminal stay linked to the booking.
// The cascade applies the stay transition table: a stay that cannot legally
// move to cancelled is simply skipped.
func (m *StateMachine) cascadeCancellation(b *domain.Booking) {
	for _, stayID := range b.StayIDs {
		stay, ok := m.store.Stay(stayID)
		if !ok {
			log.Printf("state: booking %d cascade skips missing stay %d", b.ID, stayID)
			continue
		}
		if stayTransitionAllowed(stay.Status, domain.StayCancelled) {
			stay.Status = domain.StayCancelled
		}
	}
}

// UpdateStayStatus moves a stay to next if the transition table allows it,
// then re-synchronizes the parent booking from its children. Returns false
// without mutating anything on an illegal transition.
func (m *StateMachine) UpdateStayStatus(stayID int, next domain.StayStatus) bool {
	stay, ok := m.store.Stay(stayID)
	if !ok {
		log.Printf("state: stay %d not found", stayID)
		return false
	}
	if !stayTransitionAllowed(stay.Status, next) {
		log.Printf("state: stay %d rejected transition %s -> %s", stayID, stay.Status, next)
		return false
	}

	stay.Status = next
	m.SyncBookingFromStays(stay.BookingID)
	return true
}

// SyncBookingFromStays recomputes the booking status from the aggregate
// state of its linked stays. Priority order: all cancelled, then all checked
// out, then any checked in; all-pending leaves the booking unchanged. The
// function is idempotent: re-running it with unchanged children performs no
// further transitions, because the table reports no legal move into the
// current state.
func (m *StateMachine) SyncBookingFromStays(bookingID int) {
	b, ok := m.store.Booking(bookingID)
	if !ok {
		log.Printf("state: sync skipped, booking %d not found", bookingID)
		return
	}

	var stays []*domain.Stay
	for _, id := range b.StayIDs {
		stay, ok := m.store.Stay(id)
		if !ok {
			log.Printf("state: booking %d sync skips missing stay %d", bookingID, id)
			continue
		}
		stays = append(stays, stay)
	}
	if len(stays) == 0 {
		return
	}

	allCancelled, allCheckedOut := true, true
	anyCheckedIn := false
	for _, stay := range stays {
		if stay.Status != domain.StayCancelled {
			allCancelled = false
		}
		if stay.Status != domain.StayCheckedOut {
			allCheckedOut = false
		}
		if stay.Status == domain.StayCheckedIn {
			anyCheckedIn = true
		}
	}

	switch {
	case allCancelled:
		if bookingTransitionAllowed(b.Status, domain.BookingCancelled) {
			b.Status = domain.BookingCancelled
		}
	case allCheckedOut:
		m.promoteBooking(b, domain.BookingCompleted)
	case anyCheckedIn:
		m.promoteBooking(b, domain.BookingInProgress)
	}
}

// promoteBooking walks the booking forward along the promotion path until it
// reaches target, applying each intermediate transition under the table's
// rules. A booking already at or past the target, or in a terminal state, is
// left unchanged.
func (m *StateMachine) promoteBooking(b *domain.Booking, target domain.BookingStatus) {
	for b.Status != target {
		next, ok := nextPromotionStep(b.Status)
		if !ok {
			return
		}
		if !bookingTransitionAllowed(b.Status, next) {
			return
		}
		b.Status = next
		if next == domain.BookingConfirmed {
			m.sendConfirmation(b)
		}
	}
}

// nextPromotionStep returns the status following cur on the promotion path
func nextPromotionStep(cur domain.BookingStatus) (domain.BookingStatus, bool) {
	for i, s := range bookingPromotionPath {
		if s == cur && i+1 < len(bookingPromotionPath) {
			return bookingPromotionPath[i+1], true
		}
	}
	return "", false
}

// sendConfirmation notifies the client that their booking is confirmed.
// Missing client data or a delivery failure only produces a log line.
func (m *StateMachine) sendConfirmation(b *domain.Booking) {
	if m.notifier == nil {
		return
	}
	client, ok := m.store.Client(b.ClientID)
	if !ok || client.Email == "" {
		log.Printf("state: booking %d confirmed but no client email available", b.ID)
		return
	}

	conf := email.BookingConfirmation{
		GroupCode:   b.GroupCode,
		ClientName:  client.Name,
		ClientEmail: client.Email,
		BookingDate: b.BookingDate,
		Total:       b.TotalAmount,
	}
	for _, stay := range m.store.EnrichedStays(b.ID) {
		summary := email.StaySummary{
			CheckIn:  stay.CheckIn,
			CheckOut: stay.CheckOut,
			Amount:   stay.TotalAmount,
		}
		if stay.Room != nil {
			summary.RoomName = stay.Room.Name
		}
		conf.Stays = append(conf.Stays, summary)
	}

	if err := m.notifier.SendBookingConfirmation(conf); err != nil {
		log.Printf("state: confirmation email for booking %d failed: %v", b.ID, err)
	}
}
