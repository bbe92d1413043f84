package models

import "time"

var now = time.Now

// IEvent is a broker envelope. Subject names the entity the event is about, launcher ID for browser events.
type IEvent interface {
	EventTime() time.Time
	EventType() string
	Subject() string
}

type Event[T any] struct {
	eventTime  time.Time
	eventType  string
	subject    string
	Attributes T
}

func (e *Event[T]) EventTime() time.Time {
	return e.eventTime
}

func (e *Event[T]) EventType() string {
	return e.eventType
}

func (e *Event[T]) Subject() string {
	return e.subject
}

func (e *Event[T]) String() string {
	return e.eventType + "(" + e.subject + ")"
}

func NewEvent[T any](eventType, subject string, evTime time.Time, attributes T) *Event[T] {
	return &Event[T]{
		eventTime:  evTime,
		eventType:  eventType,
		subject:    subject,
		Attributes: attributes,
	}
}
