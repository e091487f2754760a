package model

// Event is anything the messaging gateway can publish; the id becomes the
// kafka message key so events for one aggregate stay ordered.
type Event interface {
	GetId() string
}
