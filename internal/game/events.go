package game

type EventType int

const (
	EventQuestionsLoaded EventType = iota
	EventOptionSelected
	EventAnswerSubmitted
	EventResultSeeded
	EventRestarted
)

func (t EventType) String() string {
	switch t {
	case EventQuestionsLoaded:
		return "questions_loaded"
	case EventOptionSelected:
		return "option_selected"
	case EventAnswerSubmitted:
		return "answer_submitted"
	case EventResultSeeded:
		return "result_seeded"
	case EventRestarted:
		return "restarted"
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	X, Y    float64
	Data    int // option index, question count or score depending on Type
	Correct bool
	Tier    Tier
}

type EventHandler func(Event)

// EventBus fans events out synchronously on the caller's goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventQuestionsLoaded; t <= EventRestarted; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
