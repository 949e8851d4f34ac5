package amqp

import (
	"encoding/json"
	"time"
)

const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// EntryEventMessage is a lightweight notification that an entry changed.
// It carries only the id and operation; the worker fetches the current row
// from the database before mirroring.
type EntryEventMessage struct {
	Op        string    `json:"op"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEntryEventMessage(op string, id int64) *EntryEventMessage {
	return &EntryEventMessage{
		Op:        op,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *EntryEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func EntryEventMessageFromJSON(data []byte) (*EntryEventMessage, error) {
	var msg EntryEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
