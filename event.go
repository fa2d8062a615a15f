package context7

// Event is a sealed interface representing a lookup lifecycle notification.
// Events are purely informational. Failures of a lookup come from the error
// return of Lookup, not from events.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventRejected signals that a lookup ended before any bridge call.
type EventRejected struct {
	RequestID string
	Reason    string
}

func (EventRejected) event() {}

// EventResolveStarted signals the resolve call is about to be made.
type EventResolveStarted struct {
	RequestID string
	Search    string
}

func (EventResolveStarted) event() {}

// EventResolved signals a library ID was extracted from resolver output.
type EventResolved struct {
	RequestID string
	LibraryID string
}

func (EventResolved) event() {}

// EventUnresolved signals resolver output contained no library ID.
type EventUnresolved struct {
	RequestID string
	Chars     int // length of the resolver text in runes
}

func (EventUnresolved) event() {}

// EventQueryStarted signals the docs query is about to be made.
type EventQueryStarted struct {
	RequestID   string
	LibraryID   string
	Query       string
	VersionHint string
}

func (EventQueryStarted) event() {}

// EventQueryFinished signals the docs query returned.
type EventQueryFinished struct {
	RequestID string
	LibraryID string
	Chars     int  // length of the docs text in runes, before clipping
	Clipped   bool // whether the docs text exceeded MaxChars
}

func (EventQueryFinished) event() {}

// Interface compliance checks.
var (
	_ Event = EventRejected{}
	_ Event = EventResolveStarted{}
	_ Event = EventResolved{}
	_ Event = EventUnresolved{}
	_ Event = EventQueryStarted{}
	_ Event = EventQueryFinished{}
)
