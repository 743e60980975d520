package application

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

// Store is the in-memory state container of a reception session. Entities
// live in indexed maps keyed by id (arena + index); ordered id slices keep
// insertion order where it matters. All mutations run to completion before
// any other operation observes the store, so the store itself carries no
// locking. The composition root serializes access to the command surface.
type Store struct {
	rooms   map[int]domain.Room
	roomIDs []int

	clients   map[int]*domain.Client
	clientIDs []int

	bookings   map[int]*domain.Booking
	bookingIDs []int

	stays   map[int]*domain.Stay
	stayIDs []int

	lines map[int]*domain.ConsumptionLine

	forms   map[string]*domain.PoliceForm
	formIDs []string

	activities []domain.Activity

	reservationTypes []domain.ReservationTypeInfo

	seq *SequenceGenerator

	roomRepo     domain.RoomRepository
	activityRepo domain.ActivityRepository

	// refreshSeq orders data source fetches so that a stale response can
	// never overwrite the result of a newer one
	refreshSeq uint64
}

// NewStore creates an empty store. The repositories may be nil; Refresh then
// degrades to empty collections.
func NewStore(roomRepo domain.RoomRepository, activityRepo domain.ActivityRepository) *Store {
	return &Store{
		rooms:        make(map[int]domain.Room),
		clients:      make(map[int]*domain.Client),
		bookings:     make(map[int]*domain.Booking),
		stays:        make(map[int]*domain.Stay),
		lines:        make(map[int]*domain.ConsumptionLine),
		forms:        make(map[string]*domain.PoliceForm),
		seq:          NewSequenceGenerator(),
		roomRepo:     roomRepo,
		activityRepo: activityRepo,
		reservationTypes: []domain.ReservationTypeInfo{
			{Code: domain.ReservationOvernight, Name: "Overnight", CheckInHour: 14.0, CheckOutHour: 12.0},
			{Code: domain.ReservationDayUse, Name: "Day use", CheckInHour: 9.0, CheckOutHour: 18.0},
			{Code: domain.ReservationFlexible, Name: "Flexible", IsFlexible: true},
		},
	}
}

// SetRooms replaces the room reference collection
func (s *Store) SetRooms(rooms []domain.Room) {
	s.rooms = make(map[int]domain.Room, len(rooms))
	s.roomIDs = s.roomIDs[:0]
	for _, r := range rooms {
		if _, dup := s.rooms[r.ID]; dup {
			log.Printf("store: duplicate room id %d ignored", r.ID)
			continue
		}
		s.rooms[r.ID] = r
		s.roomIDs = append(s.roomIDs, r.ID)
	}
}

// SetActivities replaces the activity collection
func (s *Store) SetActivities(activities []domain.Activity) {
	s.activities = append(s.activities[:0:0], activities...)
}

// Refresh pulls rooms and activities from the data source and swaps them in.
// A fetch failure is treated as "no data available": the collection falls
// back to empty with a log line, it never propagates as fatal. Responses are
// ordered by a sequence number so a stale fetch finishing after a newer one
// is discarded.
func (s *Store) Refresh(windowStart, windowEnd time.Time) {
	s.refreshSeq++
	seq := s.refreshSeq

	var rooms []domain.Room
	if s.roomRepo != nil {
		fetched, err := s.roomRepo.FetchRooms()
		if err != nil {
			log.Printf("store: room fetch failed, falling back to empty collection: %v", err)
		} else {
			rooms = fetched
		}
	}

	var activities []domain.Activity
	if s.activityRepo != nil {
		fetched, err := s.activityRepo.FetchActivities(0, windowStart, windowEnd)
		if err != nil {
			log.Printf("store: activity fetch failed, falling back to empty collection: %v", err)
		} else {
			activities = fetched
		}
	}

	if seq != s.refreshSeq {
		log.Printf("store: refresh %d superseded by a newer fetch, discarding response", seq)
		return
	}

	s.SetRooms(rooms)
	s.SetActivities(activities)
	log.Printf("store: refreshed %d rooms, %d activities", len(rooms), len(activities))
}

// Rooms returns the room collection in fetch order
func (s *Store) Rooms() []domain.Room {
	out := make([]domain.Room, 0, len(s.roomIDs))
	for _, id := range s.roomIDs {
		out = append(out, s.rooms[id])
	}
	return out
}

// Room returns the room with the given id
func (s *Store) Room(id int) (domain.Room, bool) {
	r, ok := s.rooms[id]
	return r, ok
}

// Activities returns the current activity collection
func (s *Store) Activities() []domain.Activity {
	return append([]domain.Activity(nil), s.activities...)
}

// ReservationTypes returns the reservation type catalog
func (s *Store) ReservationTypes() []domain.ReservationTypeInfo {
	return append([]domain.ReservationTypeInfo(nil), s.reservationTypes...)
}

// ReservationType looks up a catalog entry by code
func (s *Store) ReservationType(code domain.ReservationType) (domain.ReservationTypeInfo, bool) {
	for _, rt := range s.reservationTypes {
		if rt.Code == code {
			return rt, true
		}
	}
	return domain.ReservationTypeInfo{}, false
}

// AddClient registers a new client and returns it
func (s *Store) AddClient(name, email, phone, tier string) *domain.Client {
	c := &domain.Client{
		ID:             s.seq.Next(),
		Name:           name,
		Email:          email,
		Phone:          phone,
		MembershipTier: tier,
		CreatedAt:      time.Now(),
	}
	s.clients[c.ID] = c
	s.clientIDs = append(s.clientIDs, c.ID)
	return c
}

// Client returns the client with the given id
func (s *Store) Client(id int) (*domain.Client, bool) {
	c, ok := s.clients[id]
	return c, ok
}

// Clients returns all registered clients in insertion order
func (s *Store) Clients() []domain.Client {
	out := make([]domain.Client, 0, len(s.clientIDs))
	for _, id := range s.clientIDs {
		out = append(out, *s.clients[id])
	}
	return out
}

// DeleteClient removes a client. Bookings referencing it keep their id and
// degrade to a missing-occupant enrichment.
func (s *Store) DeleteClient(id int) error {
	if _, ok := s.clients[id]; !ok {
		return fmt.Errorf("delete client %d: %w", id, domain.ErrUnknownClient)
	}
	delete(s.clients, id)
	for i, cid := range s.clientIDs {
		if cid == id {
			s.clientIDs = append(s.clientIDs[:i], s.clientIDs[i+1:]...)
			break
		}
	}
	return nil
}

// newGroupCode builds a human-readable booking reference
func newGroupCode(date time.Time) string {
	frag := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("BK%s-%s", date.Format("20060102"), frag)
}

// AddBooking creates a booking with an empty stay list in pending status.
// An unknown client id is logged as a referential gap, not rejected:
// incremental construction is an expected transient state.
func (s *Store) AddBooking(clientID int, bookingDate time.Time) *domain.Booking {
	if _, ok := s.clients[clientID]; !ok {
		log.Printf("store: booking references unknown client %d", clientID)
	}
	if bookingDate.IsZero() {
		bookingDate = time.Now()
	}
	b := &domain.Booking{
		ID:          s.seq.Next(),
		GroupCode:   newGroupCode(bookingDate),
		ClientID:    clientID,
		BookingDate: bookingDate,
		Status:      domain.BookingPending,
		StayIDs:     []int{},
	}
	s.bookings[b.ID] = b
	s.bookingIDs = append(s.bookingIDs, b.ID)
	return b
}

// Booking returns the booking with the given id
func (s *Store) Booking(id int) (*domain.Booking, bool) {
	b, ok := s.bookings[id]
	return b, ok
}

// Bookings returns all bookings in creation order
func (s *Store) Bookings() []domain.Booking {
	out := make([]domain.Booking, 0, len(s.bookingIDs))
	for _, id := range s.bookingIDs {
		out = append(out, *s.bookings[id])
	}
	return out
}

// StayInput carries the caller-supplied fields of a new stay
type StayInput struct {
	RoomID          int
	OccupantID      int
	OccupantName    string
	ReservationType domain.ReservationType
	CheckIn         time.Time
	CheckOut        time.Time

	EarlyCheckInRequested bool
	EarlyCheckInHour      *float64
	LateCheckOutRequested bool
	LateCheckOutHour      *float64

	Notes string
}

// AddStay creates a stay under the given booking, links it into the parent's
// stay list and returns the enriched projection. Linking to a non-existent
// booking is a reported gap: the stay is still created in the flat
// collection so it can be relinked later.
func (s *Store) AddStay(bookingID int, in StayInput) domain.EnrichedStay {
	stay := &domain.Stay{
		ID:              s.seq.Next(),
		BookingID:       bookingID,
		RoomID:          in.RoomID,
		OccupantID:      in.OccupantID,
		OccupantName:    in.OccupantName,
		ReservationType: in.ReservationType,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Status:          domain.StayPending,

		EarlyCheckInRequested: in.EarlyCheckInRequested,
		EarlyCheckInHour:      in.EarlyCheckInHour,
		LateCheckOutRequested: in.LateCheckOutRequested,
		LateCheckOutHour:      in.LateCheckOutHour,

		Notes: in.Notes,

		FoodLineIDs:    []int{},
		EventLineIDs:   []int{},
		ServiceLineIDs: []int{},
	}

	s.qualifyHourRequests(stay)

	s.stays[stay.ID] = stay
	s.stayIDs = append(s.stayIDs, stay.ID)

	if b, ok := s.bookings[bookingID]; ok {
		b.StayIDs = append(b.StayIDs, stay.ID)
	} else {
		log.Printf("store: stay %d links to unknown booking %d", stay.ID, bookingID)
	}

	enriched := s.EnrichStay(*stay)
	s.recomputeBookingTotal(bookingID)
	return enriched
}

// qualifyHourRequests applies the early/late hour policy to a new stay,
// flagging extra-night requirements and flexible requalification
func (s *Store) qualifyHourRequests(stay *domain.Stay) {
	room, ok := s.rooms[stay.RoomID]
	if !ok {
		return
	}

	var reasons []string

	if stay.EarlyCheckInRequested && stay.EarlyCheckInHour != nil {
		eval := EvaluateHourRequest(HourRequestEarly, *stay.EarlyCheckInHour, room)
		if eval.ExtraNight {
			stay.ExtraNightRequired = true
			reasons = append(reasons, fmt.Sprintf("early check-in at %.2fh < limit %.2fh", *stay.EarlyCheckInHour, eval.LimitHour))
		} else {
			stay.WasRequalifiedFlexible = true
			reasons = append(reasons, fmt.Sprintf("early check-in requested at %.2fh", *stay.EarlyCheckInHour))
		}
	}

	if stay.LateCheckOutRequested && stay.LateCheckOutHour != nil {
		eval := EvaluateHourRequest(HourRequestLate, *stay.LateCheckOutHour, room)
		if eval.ExtraNight {
			stay.ExtraNightRequired = true
			reasons = append(reasons, fmt.Sprintf("late checkout at %.2fh > limit %.2fh", *stay.LateCheckOutHour, eval.LimitHour))
		} else {
			stay.WasRequalifiedFlexible = true
			reasons = append(reasons, fmt.Sprintf("late checkout requested at %.2fh", *stay.LateCheckOutHour))
		}
	}

	if len(reasons) > 0 {
		stay.RequalificationReason = strings.Join(reasons, " | ")
	}
}

// Stay returns the stay with the given id
func (s *Store) Stay(id int) (*domain.Stay, bool) {
	st, ok := s.stays[id]
	return st, ok
}

// Stays returns all stays in creation order
func (s *Store) Stays() []domain.Stay {
	out := make([]domain.Stay, 0, len(s.stayIDs))
	for _, id := range s.stayIDs {
		out = append(out, *s.stays[id])
	}
	return out
}

// AddConsumptionLine attaches a food, event or service line to a stay and
// returns it. An unknown stay id is logged; the line is still recorded in
// the flat collection per the same gap rule as stays.
func (s *Store) AddConsumptionLine(stayID int, kind domain.LineKind, item string, quantity int, unitPrice float64) domain.ConsumptionLine {
	line := &domain.ConsumptionLine{
		ID:        s.seq.Next(),
		StayID:    stayID,
		Kind:      kind,
		Item:      item,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	s.lines[line.ID] = line

	if stay, ok := s.stays[stayID]; ok {
		switch kind {
		case domain.LineFood:
			stay.FoodLineIDs = append(stay.FoodLineIDs, line.ID)
		case domain.LineEvent:
			stay.EventLineIDs = append(stay.EventLineIDs, line.ID)
		case domain.LineService:
			stay.ServiceLineIDs = append(stay.ServiceLineIDs, line.ID)
		default:
			log.Printf("store: consumption line %d has unknown kind %q", line.ID, kind)
		}
		s.recomputeBookingTotal(stay.BookingID)
	} else {
		log.Printf("store: consumption line %d links to unknown stay %d", line.ID, stayID)
	}

	return *line
}

// AddFoodLine attaches a food line to a stay
func (s *Store) AddFoodLine(stayID int, item string, quantity int, unitPrice float64) domain.ConsumptionLine {
	return s.AddConsumptionLine(stayID, domain.LineFood, item, quantity, unitPrice)
}

// AddEventLine attaches an event line to a stay
func (s *Store) AddEventLine(stayID int, item string, quantity int, unitPrice float64) domain.ConsumptionLine {
	return s.AddConsumptionLine(stayID, domain.LineEvent, item, quantity, unitPrice)
}

// AddServiceLine attaches a service line to a stay
func (s *Store) AddServiceLine(stayID int, item string, quantity int, unitPrice float64) domain.ConsumptionLine {
	return s.AddConsumptionLine(stayID, domain.LineService, item, quantity, unitPrice)
}

// resolveLines joins line ids to their records, skipping gaps with a log line
func (s *Store) resolveLines(ids []int) []domain.ConsumptionLine {
	out := make([]domain.ConsumptionLine, 0, len(ids))
	for _, id := range ids {
		line, ok := s.lines[id]
		if !ok {
			log.Printf("store: consumption line %d missing, skipped", id)
			continue
		}
		out = append(out, *line)
	}
	return out
}

// EnrichStay joins a raw stay to its room, occupant and consumption lines
// and attaches the derived totals. It is a pure projection over the current
// collections: applying it twice with unchanged inputs yields the same
// result. A missing room degrades to a zero price, a missing occupant to a
// nil reference; neither is an error.
func (s *Store) EnrichStay(stay domain.Stay) domain.EnrichedStay {
	enriched := domain.EnrichedStay{
		Stay:         stay,
		FoodLines:    s.resolveLines(stay.FoodLineIDs),
		EventLines:   s.resolveLines(stay.EventLineIDs),
		ServiceLines: s.resolveLines(stay.ServiceLineIDs),
	}

	if room, ok := s.rooms[stay.RoomID]; ok {
		r := room
		enriched.Room = &r
		enriched.RoomPriceTotal = ComputeStayTotal(stay, room)
	} else {
		enriched.MissingRoom = true
		log.Printf("store: stay %d references unknown room %d, price falls back to 0", stay.ID, stay.RoomID)
	}

	if stay.OccupantID != 0 {
		if c, ok := s.clients[stay.OccupantID]; ok {
			occ := *c
			enriched.Occupant = &occ
		} else {
			log.Printf("store: stay %d references unknown occupant %d", stay.ID, stay.OccupantID)
		}
	}

	for _, line := range enriched.FoodLines {
		enriched.ConsumptionTotal += line.Total()
	}
	for _, line := range enriched.EventLines {
		enriched.ConsumptionTotal += line.Total()
	}
	for _, line := range enriched.ServiceLines {
		enriched.ConsumptionTotal += line.Total()
	}

	enriched.TotalAmount = enriched.RoomPriceTotal + enriched.ConsumptionTotal
	return enriched
}

// EnrichedStays returns the enriched projection of every stay linked to the
// given booking, in link order. Missing stay ids are skipped with a log line.
func (s *Store) EnrichedStays(bookingID int) []domain.EnrichedStay {
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil
	}
	out := make([]domain.EnrichedStay, 0, len(b.StayIDs))
	for _, id := range b.StayIDs {
		stay, ok := s.stays[id]
		if !ok {
			log.Printf("store: booking %d links to missing stay %d", bookingID, id)
			continue
		}
		out = append(out, s.EnrichStay(*stay))
	}
	return out
}

// recomputeBookingTotal refreshes the aggregate total of a booking from its
// linked stays
func (s *Store) recomputeBookingTotal(bookingID int) {
	b, ok := s.bookings[bookingID]
	if !ok {
		return
	}
	total := 0.0
	for _, st := range s.EnrichedStays(bookingID) {
		total += st.TotalAmount
	}
	b.TotalAmount = total
}

// AddPoliceForm opens a draft police form for a stay. The booking id is
// resolved from the stay when it exists; an unknown stay is logged and the
// form is still recorded.
func (s *Store) AddPoliceForm(stayID int, form domain.PoliceForm) *domain.PoliceForm {
	form.ID = uuid.NewString()
	form.StayID = stayID
	form.Status = domain.PoliceFormDraft
	form.CreatedAt = time.Now()

	if stay, ok := s.stays[stayID]; ok {
		form.BookingID = stay.BookingID
	} else {
		log.Printf("store: police form %s links to unknown stay %d", form.ID, stayID)
	}

	f := form
	s.forms[f.ID] = &f
	s.formIDs = append(s.formIDs, f.ID)
	return &f
}

// PoliceForm returns the form with the given id
func (s *Store) PoliceForm(id string) (*domain.PoliceForm, bool) {
	f, ok := s.forms[id]
	return f, ok
}

// PoliceForms returns all police forms in creation order
func (s *Store) PoliceForms() []domain.PoliceForm {
	out := make([]domain.PoliceForm, 0, len(s.formIDs))
	for _, id := range s.formIDs {
		out = append(out, *s.forms[id])
	}
	return out
}
