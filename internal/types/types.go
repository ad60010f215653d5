// Package types contains the value types shared across the cytomat_exporter packages.
package types

// IncubationReading is a nominal/actual pair as reported by the device for one
// climate channel (temperature, CO2, humidity, ...).
type IncubationReading struct {
	Nominal float64 `json:"nominal_value" yaml:"nominal_value"`
	Actual  float64 `json:"actual_value" yaml:"actual_value"`
}

// Deviation returns Actual - Nominal.
func (r IncubationReading) Deviation() float64 {
	return r.Actual - r.Nominal
}

// ActionOutcome is the device's verdict on one commanded action.
type ActionOutcome uint8

const (
	// ActionOK is reported as the token "ok".
	ActionOK ActionOutcome = iota + 1
	// ActionError is reported as the token "er".
	ActionError
)

// Wire tokens for ActionOutcome.
const (
	TokenOK    = "ok"
	TokenError = "er"
)

// String returns the wire token of the outcome.
func (o ActionOutcome) String() string {
	switch o {
	case ActionOK:
		return TokenOK
	case ActionError:
		return TokenError
	default:
		return "unknown"
	}
}

// Succeeded reports whether the outcome is ActionOK.
func (o ActionOutcome) Succeeded() bool { return o == ActionOK }

// RackGeometry describes one storage rack: how many plate locations it has
// and the distance between two of them. Build it with rack.FromRecord.
type RackGeometry struct {
	Slots int     `json:"num_slots" yaml:"num_slots"`
	Pitch float64 `json:"pitch" yaml:"pitch"`
}

// Height returns the span covered by all slots.
func (g RackGeometry) Height() float64 {
	return float64(g.Slots) * g.Pitch
}

// NamedRack is a rack geometry with the identifier it was configured under.
type NamedRack struct {
	Name     string
	Geometry RackGeometry
}
