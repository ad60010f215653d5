package capability

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCapability is matched by every CapabilityError.
var ErrUnsupportedCapability = errors.New("capability not supported")

// CapabilityError reports an operation the variant cannot perform.
// Retrying it cannot succeed.
type CapabilityError struct {
	Variant    Variant
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s does not support %s", e.Variant, e.Capability)
}

// Is makes errors.Is(err, ErrUnsupportedCapability) hold.
func (e *CapabilityError) Is(target error) bool {
	return target == ErrUnsupportedCapability
}

// Authorize checks a requested operation against the variant's capability
// row. It must be called before the command is handed to the transport.
// No I/O, no side effects.
func Authorize(v Variant, c Capability) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	if !CapabilitiesOf(v).Supports(c) {
		return &CapabilityError{Variant: v, Capability: c}
	}
	return nil
}

// AuthorizeAll runs Authorize for each capability and joins the failures.
func AuthorizeAll(v Variant, caps ...Capability) error {
	var errs []error
	for _, c := range caps {
		if err := Authorize(v, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
