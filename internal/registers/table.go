// Package registers holds the Cytomat register code tables and the decoders that
// turn raw register values and response tokens into typed conditions.
package registers

import (
	"errors"
	"fmt"
)

// Family identifies one register code family.
type Family uint8

const (
	FamilyOverview Family = iota
	FamilyWarning
	FamilyError
	FamilyActionStep
	FamilyActionType
	FamilySensorBit
	FamilySwapStationPosition
	FamilyGateLoadStatus
	FamilyProcessorLoadStatus
	// FamilyIncubation has no code table; it labels unreadable nominal/actual pairs.
	FamilyIncubation
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyOverview:
		return "overview"
	case FamilyWarning:
		return "warning"
	case FamilyError:
		return "error"
	case FamilyActionStep:
		return "action_step"
	case FamilyActionType:
		return "action_type"
	case FamilySensorBit:
		return "sensor"
	case FamilySwapStationPosition:
		return "swap_station_position"
	case FamilyGateLoadStatus:
		return "gate_load_status"
	case FamilyProcessorLoadStatus:
		return "processor_load_status"
	case FamilyIncubation:
		return "incubation"
	default:
		return "unknown"
	}
}

// ErrUnknownCode is matched by every UnknownCodeError.
var ErrUnknownCode = errors.New("unknown register code")

// ErrMalformedToken is returned when a raw response token cannot be parsed at all.
var ErrMalformedToken = errors.New("malformed response token")

// UnknownCodeError reports a code that is not defined in its family's table.
type UnknownCodeError struct {
	Family Family
	Code   string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%s: unknown code %q", e.Family, e.Code)
}

// Is makes errors.Is(err, ErrUnknownCode) hold.
func (e *UnknownCodeError) Is(target error) bool {
	return target == ErrUnknownCode
}

// Code is the constraint for register code types. rawCode renders the value
// as it appears on the wire, without the table lookup String does.
type Code interface {
	comparable
	rawCode() string
}

// Entry is one row of a code table.
type Entry[K Code] struct {
	Code        K
	Name        string
	Description string
}

// Table is an immutable code -> entry mapping for one family.
type Table[K Code] struct {
	family  Family
	byCode  map[K]Entry[K]
	entries []Entry[K]
}

// newTable builds a table and rejects duplicate codes.
func newTable[K Code](family Family, entries ...Entry[K]) (*Table[K], error) {
	t := &Table[K]{
		family:  family,
		byCode:  make(map[K]Entry[K], len(entries)),
		entries: make([]Entry[K], 0, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.byCode[e.Code]; dup {
			return nil, fmt.Errorf("%s: duplicate code %s", family, e.Code.rawCode())
		}
		t.byCode[e.Code] = e
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// mustTable is newTable for package-level tables. A duplicate is an authoring bug.
func mustTable[K Code](family Family, entries ...Entry[K]) *Table[K] {
	t, err := newTable(family, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Family returns the family the table belongs to.
func (t *Table[K]) Family() Family { return t.family }

// Lookup returns the entry for code or an *UnknownCodeError.
func (t *Table[K]) Lookup(code K) (Entry[K], error) {
	e, ok := t.byCode[code]
	if !ok {
		return Entry[K]{}, &UnknownCodeError{Family: t.family, Code: code.rawCode()}
	}
	return e, nil
}

// Entries returns a copy of all entries in protocol order.
func (t *Table[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of codes in the table.
func (t *Table[K]) Len() int { return len(t.entries) }

// name returns the symbolic name for code, or UNKNOWN(code).
func (t *Table[K]) name(code K) string {
	if e, ok := t.byCode[code]; ok {
		return e.Name
	}
	return "UNKNOWN(" + code.rawCode() + ")"
}
