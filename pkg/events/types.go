package events

import (
	"encoding/json"

	"github.com/rclab/rclab/pkg/circuit"
)

// Event name constants
const (
	// ParamsChanged fires whenever the stored default parameters are
	// updated through the API.
	ParamsChanged = "params.changed"
)

// Event is a generic SSE event from the server.
type Event struct {
	Name string          // SSE event name
	Data json.RawMessage // Raw JSON payload
}

// ParamsChangedEvent is the typed payload for params.changed. It
// carries the recomputed τ and summary along with the new parameters,
// so a renderer can refresh its info panel without another round trip.
type ParamsChangedEvent struct {
	Parameters circuit.Parameters `json:"parameters"`
	TauMs      float64            `json:"tauMs"`
	Summary    string             `json:"summary"`
	Ts         int64              `json:"ts"`
}

// DecodeAs decodes the event payload into the caller-specified generic type T.
// It ignores the event name and simply unmarshals Data into T. If Data is empty,
// it returns the zero value of T with a nil error.
//
// Example:
//
//	payload, err := events.DecodeAs[events.ParamsChangedEvent](ev)
//	if err != nil { /* handle */ }
//	fmt.Println(payload.Summary)
func DecodeAs[T any](e Event) (T, error) {
	var zero T
	if len(e.Data) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
