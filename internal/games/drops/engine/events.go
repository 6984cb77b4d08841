package engine

// Event is something the presentation layer may want to show or play.
// Events are queued by the controller and drained with Controller.Events.
type Event interface {
	event()
}

// StartedEvent is emitted when a round begins.
type StartedEvent struct {
	Difficulty string
}

func (StartedEvent) event() {}

// SpawnedEvent is emitted when a drop enters the field.
type SpawnedEvent struct {
	Drop Drop
}

func (SpawnedEvent) event() {}

// CaughtEvent is emitted when a drop touches the slider. The presentation
// layer plays the catch sound and splash in response.
type CaughtEvent struct {
	Drop  Drop
	Score int
}

func (CaughtEvent) event() {}

// MissedEvent is emitted when an uncaught drop finishes its fall.
type MissedEvent struct {
	Drop      Drop
	Strikes   int  // Strike count after this miss, 0 when misses are not counted
	Indicator bool // Whether a miss indicator should be shown
}

func (MissedEvent) event() {}

// RemovedEvent is emitted exactly once per drop when it leaves the live set.
type RemovedEvent struct {
	ID     DropID
	Caught bool
}

func (RemovedEvent) event() {}

// CountdownEvent is emitted on every countdown tick.
type CountdownEvent struct {
	Remaining int
}

func (CountdownEvent) event() {}

// EndedEvent is emitted when a round ends.
type EndedEvent struct {
	Message string
	Score   int
	Won     bool
	Forced  bool
}

func (EndedEvent) event() {}
