package dreamteam

// Position is one of the five dream-team slots.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists the slots in their fixed scan order.
var Positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

var labels = map[Position]string{
	PointGuard:    "Point Guard",
	ShootingGuard: "Shooting Guard",
	SmallForward:  "Small Forward",
	PowerForward:  "Power Forward",
	Center:        "Center",
}

// Label is the display name, e.g. "Point Guard".
func (p Position) Label() string {
	return labels[p]
}

// Valid reports whether p is one of the five slots. Matching is exact.
func (p Position) Valid() bool {
	_, ok := labels[p]
	return ok
}
