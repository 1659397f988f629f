package core

// EventKind identifies a simulation event raised during a tick.
type EventKind int

const (
	EventRelease  EventKind = iota // Egg dropped out of the nest
	EventLaunch                    // Egg launched from a perch
	EventCatch                     // Egg caught by a perch
	EventBounce                    // Egg bounced off a tree
	EventMiss                      // Egg left the world and returned to the ground
	EventWin                       // Egg reached the nest with the timer running
	EventTeleport                  // Debug teleport
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRelease:
		return "release"
	case EventLaunch:
		return "launch"
	case EventCatch:
		return "catch"
	case EventBounce:
		return "bounce"
	case EventMiss:
		return "miss"
	case EventWin:
		return "win"
	case EventTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for the platform (audio, logs,
// score persistence). Value meaning depends on Kind: perch ID for catches,
// wall side for bounces (-1 left, 1 right), round duration in milliseconds
// for wins.
type Event struct {
	Kind  EventKind
	Value int64
}
