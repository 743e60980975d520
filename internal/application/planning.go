package application

import (
	"log"
	"time"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

// Block is an activity positioned on the planning axis. Left and Width are
// fractions of the display window, so rendering stays device and resolution
// independent.
type Block struct {
	ActivityID int                 `json:"activityId"`
	RoomID     int                 `json:"roomId"`
	Kind       domain.ActivityKind `json:"kind"`
	Label      string              `json:"label"`
	Start      time.Time           `json:"start"`
	End        time.Time           `json:"end"`
	Left       float64             `json:"left"`
	Width      float64             `json:"width"`
}

// ProjectBlocks maps activities onto the [windowStart, windowEnd) display
// window for one room (roomID zero keeps every room). Activities are clipped
// to the window; those wholly outside are discarded. Ids are deduplicated:
// when the same activity id appears more than once, only the first
// occurrence is kept and the rest are dropped with a diagnostic, so a
// projection never emits two blocks for one activity. The result is
// recomputed fresh on every call.
func ProjectBlocks(activities []domain.Activity, roomID int, windowStart, windowEnd time.Time) []Block {
	if !windowEnd.After(windowStart) {
		return nil
	}
	windowLen := windowEnd.Sub(windowStart).Seconds()

	seen := make(map[int]struct{}, len(activities))
	var blocks []Block

	for _, a := range activities {
		if roomID != 0 && a.RoomID != roomID {
			continue
		}
		if _, dup := seen[a.ID]; dup {
			log.Printf("planning: duplicate activity id %d skipped", a.ID)
			continue
		}
		seen[a.ID] = struct{}{}

		effStart := a.Start
		if effStart.Before(windowStart) {
			effStart = windowStart
		}
		effEnd := a.End
		if effEnd.After(windowEnd) {
			effEnd = windowEnd
		}
		if !effEnd.After(effStart) {
			// Wholly outside the window
			continue
		}

		blocks = append(blocks, Block{
			ActivityID: a.ID,
			RoomID:     a.RoomID,
			Kind:       a.Kind,
			Label:      a.Label,
			Start:      effStart,
			End:        effEnd,
			Left:       effStart.Sub(windowStart).Seconds() / windowLen,
			Width:      effEnd.Sub(effStart).Seconds() / windowLen,
		})
	}
	return blocks
}

// DayStatus is the state of one room on one calendar day
type DayStatus string

const (
	DayAvailable   DayStatus = "available"
	DayReserved    DayStatus = "reserved"
	DayOccupied    DayStatus = "occupied"
	DayCheckIn     DayStatus = "checkin"
	DayCheckOut    DayStatus = "checkout"
	DayMaintenance DayStatus = "maintenance"
	DayCleaning    DayStatus = "cleaning"
	DayOutOfOrder  DayStatus = "out_of_order"
)

// DayCell is one cell of the per-room per-day occupancy grid
type DayCell struct {
	RoomID int       `json:"roomId"`
	Date   time.Time `json:"date"`
	Status DayStatus `json:"status"`
	StayID int       `json:"stayId,omitempty"`
	Label  string    `json:"label,omitempty"`
}

// KPISummary carries the dashboard counters
type KPISummary struct {
	TotalConfirmed    int `json:"totalConfirmed"`
	TotalCheckedOut   int `json:"totalCheckedOut"`
	TodayAvailability int `json:"todayAvailability"`
	TotalReservations int `json:"totalReservations"`
}

// PlanningService builds calendar views over the store's collections
type PlanningService struct {
	store *Store
}

// NewPlanningService creates a planning service bound to the given store
func NewPlanningService(store *Store) *PlanningService {
	return &PlanningService{store: store}
}

// ProjectBlocks projects the store's current activities for one room onto
// the given window
func (p *PlanningService) ProjectBlocks(roomID int, windowStart, windowEnd time.Time) []Block {
	return ProjectBlocks(p.store.Activities(), roomID, windowStart, windowEnd)
}

// BuildDayGrid builds the per-room per-day occupancy grid over [start, end).
// Cell status priority: maintenance and housekeeping on the room itself win
// over reservations, which win over availability. The first day of a stay
// shows as check-in, the last occupied day as check-out.
func (p *PlanningService) BuildDayGrid(start, end time.Time) []DayCell {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if !end.After(start) {
		return nil
	}

	staysByRoom := make(map[int][]*domain.Stay)
	for _, id := range p.store.stayIDs {
		stay := p.store.stays[id]
		if stay.Status == domain.StayCancelled {
			continue
		}
		staysByRoom[stay.RoomID] = append(staysByRoom[stay.RoomID], stay)
	}

	var cells []DayCell
	for _, room := range p.store.Rooms() {
		for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
			cells = append(cells, p.dayCell(room, staysByRoom[room.ID], day))
		}
	}
	return cells
}

// dayCell resolves the status of one room on one day
func (p *PlanningService) dayCell(room domain.Room, stays []*domain.Stay, day time.Time) DayCell {
	cell := DayCell{RoomID: room.ID, Date: day, Status: DayAvailable}

	switch {
	case room.InMaintenance:
		cell.Status = DayMaintenance
		return cell
	case room.OutOfOrder:
		cell.Status = DayOutOfOrder
		return cell
	case room.InCleaning:
		cell.Status = DayCleaning
		return cell
	}

	for _, stay := range stays {
		checkinDay := truncateToDay(stay.CheckIn)
		checkoutDay := truncateToDay(stay.CheckOut)
		if day.Before(checkinDay) || !day.Before(checkoutDay.AddDate(0, 0, 1)) {
			continue
		}

		cell.StayID = stay.ID
		cell.Label = stay.OccupantName
		switch {
		case day.Equal(checkinDay):
			cell.Status = DayCheckIn
		case day.Equal(checkoutDay):
			cell.Status = DayCheckOut
		case stay.Status == domain.StayCheckedIn:
			cell.Status = DayOccupied
		default:
			cell.Status = DayReserved
		}
		return cell
	}
	return cell
}

// KPIs computes the dashboard counters from the current collections
func (p *PlanningService) KPIs(today time.Time) KPISummary {
	today = truncateToDay(today)

	var kpi KPISummary
	for _, b := range p.store.Bookings() {
		kpi.TotalReservations++
		if b.Status == domain.BookingConfirmed {
			kpi.TotalConfirmed++
		}
	}

	occupiedRooms := make(map[int]struct{})
	for _, stay := range p.store.Stays() {
		if stay.Status == domain.StayCheckedOut {
			kpi.TotalCheckedOut++
		}
		if stay.Status == domain.StayCancelled || stay.Status == domain.StayCheckedOut {
			continue
		}
		if !truncateToDay(stay.CheckIn).After(today) && today.Before(truncateToDay(stay.CheckOut).AddDate(0, 0, 1)) {
			occupiedRooms[stay.RoomID] = struct{}{}
		}
	}

	for _, room := range p.store.Rooms() {
		if room.InMaintenance || room.OutOfOrder || room.InCleaning {
			continue
		}
		if _, busy := occupiedRooms[room.ID]; !busy {
			kpi.TodayAvailability++
		}
	}
	return kpi
}

// truncateToDay drops the time-of-day component
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
