// Package capability holds the per-variant capability matrix of the Cytomat
// family and the gate that checks a requested operation against it.
package capability

import (
	"errors"
	"fmt"
	"strings"
)

// Variant is a Cytomat hardware model.
type Variant uint8

const (
	C6000 Variant = iota
	C6002
	C2C50       // temperature range 25-50, incubator only
	C2C425      // temperature range 4-25, fridge only
	C2C450Shake // temperature range 4-50 with shaker plugs
	C5C

	variantCount
)

var variantNames = [variantCount]string{
	C6000:       "C6000",
	C6002:       "C6002",
	C2C50:       "C2C_50",
	C2C425:      "C2C_425",
	C2C450Shake: "C2C_450_SHAKE",
	C5C:         "C5C",
}

// String returns the model name as used in configuration.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
	return variantNames[v]
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool { return v < variantCount }

// Variants returns all known variants.
func Variants() []Variant {
	out := make([]Variant, 0, variantCount)
	for v := Variant(0); v < variantCount; v++ {
		out = append(out, v)
	}
	return out
}

// ErrUnknownVariant is returned for a model name or value outside the known set.
var ErrUnknownVariant = errors.New("unknown cytomat variant")

// ParseVariant converts a model name such as "C2C_450_SHAKE". Case is ignored.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Capability is a physical feature a variant may have.
type Capability uint8

const (
	Incubate Capability = iota
	Cool
	Shake
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case Incubate:
		return "incubate"
	case Cool:
		return "cool"
	case Shake:
		return "shake"
	default:
		return "unknown"
	}
}

// All returns every capability in a fixed order.
func All() []Capability {
	return []Capability{Incubate, Cool, Shake}
}

// ParseCapability converts a capability name such as "shake".
func ParseCapability(s string) (Capability, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range All() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", s)
}

// Set is the capability row of one variant.
type Set struct {
	Incubate bool
	Cool     bool
	Shake    bool
}

// Supports reports whether the set includes c.
func (s Set) Supports(c Capability) bool {
	switch c {
	case Incubate:
		return s.Incubate
	case Cool:
		return s.Cool
	case Shake:
		return s.Shake
	default:
		return false
	}
}

// matrix is indexed by Variant; its length ties it to the enum.
var matrix = [variantCount]Set{
	C6000:       {Incubate: true, Cool: false, Shake: false},
	C6002:       {Incubate: false, Cool: true, Shake: false},
	C2C50:       {Incubate: true, Cool: false, Shake: false},
	C2C425:      {Incubate: false, Cool: true, Shake: false},
	C2C450Shake: {Incubate: true, Cool: true, Shake: true},
	C5C:         {Incubate: true, Cool: true, Shake: false},
}

// CapabilitiesOf returns the capability row of v. Values outside the enum get
// the empty set, and Authorize rejects them before consulting it.
func CapabilitiesOf(v Variant) Set {
	if !v.Valid() {
		return Set{}
	}
	return matrix[v]
}
