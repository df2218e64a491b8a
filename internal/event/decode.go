package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload at all
var ErrNilPayload = errors.New("event payload is nil")

// DecodePayload returns the payload of an event as T.
// Events published in-process carry the typed payload struct itself. Events
// read back from a dead-letter file carry a generic map, which is converted
// through JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var out T
	if payload == nil {
		return out, fmt.Errorf(ErrFmtDecodePayload, out, ErrNilPayload)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf(ErrFmtDecodePayload, out, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf(ErrFmtDecodePayload, out, err)
	}
	return out, nil
}
