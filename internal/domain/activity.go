package domain

import "time"

// ActivityKind categorizes a time-ranged activity shown on the planning
// timeline
type ActivityKind string

const (
	ActivityStayOngoing  ActivityKind = "stay_ongoing"
	ActivityUpcomingStay ActivityKind = "upcoming_stay"
	ActivityDayUse       ActivityKind = "day_use"
	ActivityCleaning     ActivityKind = "cleaning"
	ActivityMaintenance  ActivityKind = "maintenance"
)

// Activity is a time-ranged event attached to a room, projected onto the
// planning view. The interval is half-open: [Start, End).
type Activity struct {
	ID     int          `json:"id"`
	RoomID int          `json:"roomId"`
	Kind   ActivityKind `json:"kind"`
	Label  string       `json:"label"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
}

// ActivityRepository defines the interface for fetching room activities
type ActivityRepository interface {
	// FetchActivities returns activities overlapping the given window.
	// A roomID of zero means all rooms.
	FetchActivities(roomID int, start, end time.Time) ([]Activity, error)
}
