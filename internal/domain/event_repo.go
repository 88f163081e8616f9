package domain

type EventRepository interface {
	CreateEvent(event *Event) error
	GetEventByID(eventID string) (*Event, error)
}
