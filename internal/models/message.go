package models

import (
	"sync"
	"time"
)

// EventMetadata holds the CloudEvents context attributes of an inbound message.
type EventMetadata struct {
	ID              string
	Source          string
	Type            string
	SpecVersion     string
	DataContentType string
	Time            time.Time
}

// Message is a transport-neutral envelope handed to the update pipeline by a
// bus adapter. Metadata is nil when the transport message is not a CloudEvent.
type Message struct {
	Metadata *EventMetadata
	Payload  []byte

	ack *ackOnce
}

type ackOnce struct {
	once sync.Once
	fn   func()
}

// NewMessage wraps a payload and its transport acknowledgment.
func NewMessage(metadata *EventMetadata, payload []byte, ack func()) Message {
	return Message{
		Metadata: metadata,
		Payload:  payload,
		ack:      &ackOnce{fn: ack},
	}
}

// Ack acknowledges the message to the transport. Only the first call reaches
// the transport.
func (m Message) Ack() {
	if m.ack == nil || m.ack.fn == nil {
		return
	}
	m.ack.once.Do(m.ack.fn)
}
