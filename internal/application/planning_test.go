package application

import (
	"math"
	"testing"
	"time"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

func day(d int, h int) time.Time {
	return time.Date(2025, 8, d, h, 0, 0, 0, time.UTC)
}

func TestProjectBlocksClipsToWindow(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, RoomID: 1, Kind: domain.ActivityStayOngoing, Start: day(1, 0), End: day(3, 0)},
	}
	blocks := ProjectBlocks(activities, 0, day(2, 0), day(4, 0))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if !b.Start.Equal(day(2, 0)) || !b.End.Equal(day(3, 0)) {
		t.Errorf("clipped to [%v, %v]", b.Start, b.End)
	}
	if math.Abs(b.Left-0) > 1e-9 || math.Abs(b.Width-0.5) > 1e-9 {
		t.Errorf("Left = %v, Width = %v, want 0 and 0.5", b.Left, b.Width)
	}
}

func TestProjectBlocksDiscardsOutsideWindow(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, RoomID: 1, Start: day(1, 0), End: day(2, 0)},
		{ID: 2, RoomID: 1, Start: day(10, 0), End: day(11, 0)},
	}
	blocks := ProjectBlocks(activities, 0, day(3, 0), day(5, 0))
	if len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
}

func TestProjectBlocksFiltersByRoom(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, RoomID: 1, Start: day(1, 6), End: day(1, 12)},
		{ID: 2, RoomID: 2, Start: day(1, 6), End: day(1, 12)},
	}
	blocks := ProjectBlocks(activities, 2, day(1, 0), day(2, 0))
	if len(blocks) != 1 || blocks[0].RoomID != 2 {
		t.Fatalf("room filter failed: %+v", blocks)
	}
	if all := ProjectBlocks(activities, 0, day(1, 0), day(2, 0)); len(all) != 2 {
		t.Errorf("roomID 0 should keep every room, got %d blocks", len(all))
	}
}

func TestProjectBlocksDeduplicatesIDs(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, RoomID: 1, Label: "first", Start: day(1, 6), End: day(1, 12)},
		{ID: 1, RoomID: 1, Label: "second", Start: day(1, 14), End: day(1, 18)},
	}
	blocks := ProjectBlocks(activities, 0, day(1, 0), day(2, 0))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks for one activity id, want 1", len(blocks))
	}
	if blocks[0].Label != "first" {
		t.Errorf("kept %q, want the first occurrence", blocks[0].Label)
	}
}

func TestProjectBlocksInvalidWindow(t *testing.T) {
	activities := []domain.Activity{{ID: 1, RoomID: 1, Start: day(1, 0), End: day(2, 0)}}
	if blocks := ProjectBlocks(activities, 0, day(2, 0), day(2, 0)); blocks != nil {
		t.Errorf("empty window should yield nil, got %v", blocks)
	}
	if blocks := ProjectBlocks(activities, 0, day(3, 0), day(2, 0)); blocks != nil {
		t.Errorf("inverted window should yield nil, got %v", blocks)
	}
}

func TestProjectBlocksFractionsSumWithinWindow(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, RoomID: 1, Start: day(1, 3), End: day(1, 9)},
	}
	blocks := ProjectBlocks(activities, 0, day(1, 0), day(2, 0))
	b := blocks[0]
	if math.Abs(b.Left-3.0/24) > 1e-9 {
		t.Errorf("Left = %v, want %v", b.Left, 3.0/24)
	}
	if math.Abs(b.Width-6.0/24) > 1e-9 {
		t.Errorf("Width = %v, want %v", b.Width, 6.0/24)
	}
	if b.Left+b.Width > 1+1e-9 {
		t.Errorf("block extends past the window: left %v width %v", b.Left, b.Width)
	}
}

func planningFixture(t *testing.T) (*Store, *PlanningService, *StateMachine) {
	t.Helper()
	s := NewStore(nil, nil)
	s.SetRooms([]domain.Room{
		{ID: 1, Name: "Suite 101", PricePerNight: 15000, DefaultCheckInHour: 14, DefaultCheckOutHour: 12},
		{ID: 2, Name: "Suite 102", PricePerNight: 15000, InMaintenance: true},
		{ID: 3, Name: "Suite 103", PricePerNight: 15000, InCleaning: true},
	})
	return s, NewPlanningService(s), NewStateMachine(s)
}

func gridCell(cells []DayCell, roomID int, date time.Time) (DayCell, bool) {
	for _, c := range cells {
		if c.RoomID == roomID && c.Date.Equal(date) {
			return c, true
		}
	}
	return DayCell{}, false
}

func TestBuildDayGridStatuses(t *testing.T) {
	s, p, m := planningFixture(t)
	client := s.AddClient("Awa Diallo", "awa@example.com", "", "")
	b := s.AddBooking(client.ID, time.Now())
	stay := s.AddStay(b.ID, StayInput{
		RoomID:          1,
		OccupantID:      client.ID,
		OccupantName:    "Awa Diallo",
		ReservationType: domain.ReservationOvernight,
		CheckIn:         day(2, 14),
		CheckOut:        day(5, 12),
	})
	m.UpdateStayStatus(stay.ID, domain.StayCheckedIn)

	cells := p.BuildDayGrid(day(1, 0), day(7, 0))
	if len(cells) != 3*6 {
		t.Fatalf("got %d cells, want 18", len(cells))
	}

	tests := []struct {
		roomID int
		date   time.Time
		want   DayStatus
	}{
		{1, day(1, 0), DayAvailable},
		{1, day(2, 0), DayCheckIn},
		{1, day(3, 0), DayOccupied},
		{1, day(4, 0), DayOccupied},
		{1, day(5, 0), DayCheckOut},
		{1, day(6, 0), DayAvailable},
		{2, day(3, 0), DayMaintenance},
		{3, day(3, 0), DayCleaning},
	}
	for _, tt := range tests {
		cell, ok := gridCell(cells, tt.roomID, tt.date)
		if !ok {
			t.Fatalf("no cell for room %d on %v", tt.roomID, tt.date)
		}
		if cell.Status != tt.want {
			t.Errorf("room %d on %v = %s, want %s", tt.roomID, tt.date, cell.Status, tt.want)
		}
	}

	cell, _ := gridCell(cells, 1, day(3, 0))
	if cell.StayID != stay.ID || cell.Label != "Awa Diallo" {
		t.Errorf("occupied cell = %+v, want stay %d labelled with the occupant", cell, stay.ID)
	}
}

func TestBuildDayGridPendingStayShowsReserved(t *testing.T) {
	s, p, _ := planningFixture(t)
	b := s.AddBooking(1, time.Now())
	s.AddStay(b.ID, StayInput{
		RoomID:          1,
		ReservationType: domain.ReservationOvernight,
		CheckIn:         day(2, 14),
		CheckOut:        day(5, 12),
	})

	cells := p.BuildDayGrid(day(3, 0), day(4, 0))
	cell, _ := gridCell(cells, 1, day(3, 0))
	if cell.Status != DayReserved {
		t.Errorf("pending stay mid-interval = %s, want reserved", cell.Status)
	}
}

func TestBuildDayGridIgnoresCancelledStays(t *testing.T) {
	s, p, m := planningFixture(t)
	b := s.AddBooking(1, time.Now())
	stay := s.AddStay(b.ID, StayInput{
		RoomID:          1,
		ReservationType: domain.ReservationOvernight,
		CheckIn:         day(2, 14),
		CheckOut:        day(5, 12),
	})
	m.UpdateStayStatus(stay.ID, domain.StayCancelled)

	cells := p.BuildDayGrid(day(3, 0), day(4, 0))
	cell, _ := gridCell(cells, 1, day(3, 0))
	if cell.Status != DayAvailable {
		t.Errorf("cancelled stay still shows as %s", cell.Status)
	}
}

func TestBuildDayGridMaintenanceWinsOverStay(t *testing.T) {
	s, p, _ := planningFixture(t)
	b := s.AddBooking(1, time.Now())
	s.AddStay(b.ID, StayInput{
		RoomID:          2, // in maintenance
		ReservationType: domain.ReservationOvernight,
		CheckIn:         day(2, 14),
		CheckOut:        day(5, 12),
	})

	cells := p.BuildDayGrid(day(3, 0), day(4, 0))
	cell, _ := gridCell(cells, 2, day(3, 0))
	if cell.Status != DayMaintenance {
		t.Errorf("got %s, maintenance must win over the stay", cell.Status)
	}
}

func TestKPIs(t *testing.T) {
	s, p, m := planningFixture(t)
	client := s.AddClient("Awa Diallo", "awa@example.com", "", "")

	b1 := s.AddBooking(client.ID, time.Now())
	s.AddStay(b1.ID, StayInput{
		RoomID:          1,
		OccupantID:      client.ID,
		ReservationType: domain.ReservationOvernight,
		CheckIn:         day(2, 14),
		CheckOut:        day(5, 12),
	})
	m.UpdateBookingStatus(b1.ID, domain.BookingConfirmed)

	b2 := s.AddBooking(client.ID, time.Now())
	stay2 := s.AddStay(b2.ID, StayInput{
		RoomID:          1,
		OccupantID:      client.ID,
		ReservationType: domain.ReservationOvernight,
		CheckIn:         day(1, 14),
		CheckOut:        day(2, 12),
	})
	m.UpdateStayStatus(stay2.ID, domain.StayCheckedIn)
	m.UpdateStayStatus(stay2.ID, domain.StayCheckedOut)

	kpi := p.KPIs(day(3, 0))
	if kpi.TotalReservations != 2 {
		t.Errorf("TotalReservations = %d, want 2", kpi.TotalReservations)
	}
	if kpi.TotalConfirmed != 1 {
		t.Errorf("TotalConfirmed = %d, want 1", kpi.TotalConfirmed)
	}
	if kpi.TotalCheckedOut != 1 {
		t.Errorf("TotalCheckedOut = %d, want 1", kpi.TotalCheckedOut)
	}
	// Room 1 is taken on day 3; rooms 2 and 3 are in maintenance and
	// cleaning, so nothing is free.
	if kpi.TodayAvailability != 0 {
		t.Errorf("TodayAvailability = %d, want 0", kpi.TodayAvailability)
	}
}
