// Package rack builds rack geometries from external configuration records.
package rack

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"cytomat_exporter/internal/types"
)

// Record keys.
const (
	KeyNumSlots = "num_slots"
	KeyPitch    = "pitch"
	KeyName     = "name"
)

// ErrMalformedRecord is matched by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed rack record")

// MalformedRecordError reports a missing or invalid field of a rack record.
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("rack record: %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedRecord) hold.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// FromRecord builds a RackGeometry from a record with keys num_slots and
// pitch. Both must be present and positive; num_slots must be a whole number.
// Nothing is returned on failure.
func FromRecord(rec map[string]any) (types.RackGeometry, error) {
	rawSlots, ok := rec[KeyNumSlots]
	if !ok {
		return types.RackGeometry{}, &MalformedRecordError{Field: KeyNumSlots, Reason: "missing"}
	}
	rawPitch, ok := rec[KeyPitch]
	if !ok {
		return types.RackGeometry{}, &MalformedRecordError{Field: KeyPitch, Reason: "missing"}
	}

	slots, ok := toFloat(rawSlots)
	if !ok {
		return types.RackGeometry{}, &MalformedRecordError{Field: KeyNumSlots, Reason: fmt.Sprintf("not a number: %v", rawSlots)}
	}
	if slots != math.Trunc(slots) || slots > math.MaxInt32 {
		return types.RackGeometry{}, &MalformedRecordError{Field: KeyNumSlots, Reason: fmt.Sprintf("not a whole number: %v", rawSlots)}
	}
	if slots <= 0 {
		return types.RackGeometry{}, &MalformedRecordError{Field: KeyNumSlots, Reason: "must be > 0"}
	}

	pitch, ok := toFloat(rawPitch)
	if !ok {
		return types.RackGeometry{}, &MalformedRecordError{Field: KeyPitch, Reason: fmt.Sprintf("not a number: %v", rawPitch)}
	}
	if !(pitch > 0) || math.IsInf(pitch, 0) {
		return types.RackGeometry{}, &MalformedRecordError{Field: KeyPitch, Reason: "must be > 0"}
	}

	return types.RackGeometry{Slots: int(slots), Pitch: pitch}, nil
}

// toFloat accepts the numeric types produced by YAML and JSON decoders.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// file is the layout of a rack definition file.
type file struct {
	Racks []map[string]any `yaml:"racks"`
}

// Parse reads rack records from YAML and builds each geometry. Every entry
// needs a unique name.
func Parse(data []byte) ([]types.NamedRack, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal racks: %w", err)
	}

	racks := make([]types.NamedRack, 0, len(f.Racks))
	seen := make(map[string]bool, len(f.Racks))
	for i, rec := range f.Racks {
		name, _ := rec[KeyName].(string)
		if name == "" {
			return nil, fmt.Errorf("rack %d: %w", i, &MalformedRecordError{Field: KeyName, Reason: "missing"})
		}
		if seen[name] {
			return nil, fmt.Errorf("rack %q: duplicate name", name)
		}
		seen[name] = true

		geom, err := FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("rack %q: %w", name, err)
		}
		racks = append(racks, types.NamedRack{Name: name, Geometry: geom})
	}

	return racks, nil
}

// LoadFile reads and parses a rack definition file.
func LoadFile(path string) ([]types.NamedRack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rack file: %w", err)
	}
	return Parse(data)
}
