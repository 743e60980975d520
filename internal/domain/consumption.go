package domain

// LineKind distinguishes the three structurally identical consumption line
// collections attached to a stay
type LineKind string

const (
	LineFood    LineKind = "food"
	LineEvent   LineKind = "event"
	LineService LineKind = "service"
)

// ConsumptionLine is a billable add-on (food, event or service) attached to
// a stay
type ConsumptionLine struct {
	ID        int      `json:"id"`
	StayID    int      `json:"stayId"`
	Kind      LineKind `json:"kind"`
	Item      string   `json:"item"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
}

// Total returns quantity x unit price. The line total is always recomputed,
// never stored, so it can not go stale.
func (l ConsumptionLine) Total() float64 {
	return float64(l.Quantity) * l.UnitPrice
}
