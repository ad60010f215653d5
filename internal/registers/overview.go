package registers

import (
	"fmt"
	"strconv"
	"strings"
)

// OverviewBit is a bit position in the 8-bit overview register.
// The register is returned by the check-register command and by every move command.
type OverviewBit uint8

const (
	TransferStationOccupied OverviewBit = 0
	DeviceDoorOpen          OverviewBit = 1
	AutomaticGateOpen       OverviewBit = 2
	HandlerOccupied         OverviewBit = 3
	ErrorRegisterSet        OverviewBit = 4
	WarningRegisterSet      OverviewBit = 5
	ReadyBitSet             OverviewBit = 6
	BusyBitSet              OverviewBit = 7
)

// OverviewTable is the overview register family.
var OverviewTable = mustTable(FamilyOverview,
	Entry[OverviewBit]{TransferStationOccupied, "TRANSFER_STATION_OCCUPIED", "Transfer station occupied"},
	Entry[OverviewBit]{DeviceDoorOpen, "DEVICE_DOOR_OPEN", "Device door open"},
	Entry[OverviewBit]{AutomaticGateOpen, "AUTOMATIC_GATE_OPEN", "Automatic gate open"},
	Entry[OverviewBit]{HandlerOccupied, "HANDLER_OCCUPIED", "Handler occupied"},
	Entry[OverviewBit]{ErrorRegisterSet, "ERROR_REGISTER_SET", "Error register set"},
	Entry[OverviewBit]{WarningRegisterSet, "WARNING_REGISTER_SET", "Warning register set"},
	Entry[OverviewBit]{ReadyBitSet, "READY_BIT_SET", "Ready bit set"},
	Entry[OverviewBit]{BusyBitSet, "BUSY_BIT_SET", "Busy bit set"},
)

// String returns the symbolic bit name.
func (b OverviewBit) String() string { return OverviewTable.name(b) }

func (b OverviewBit) rawCode() string { return strconv.Itoa(int(b)) }

// OverviewSet is the set of active overview bits.
type OverviewSet uint8

// Has reports whether bit is active.
func (s OverviewSet) Has(bit OverviewBit) bool {
	return bit < 8 && s&(1<<bit) != 0
}

// Bits returns the active bits in ascending order.
func (s OverviewSet) Bits() []OverviewBit {
	out := make([]OverviewBit, 0, 8)
	for _, e := range OverviewTable.entries {
		if s.Has(e.Code) {
			out = append(out, e.Code)
		}
	}
	return out
}

// DecodedStatus is one interpretation of the overview register, optionally
// completed with the warning and error sub-codes read afterwards.
// It is a value: the With* methods return modified copies.
type DecodedStatus struct {
	Active  OverviewSet
	Warning WarningCode // empty when not read
	Error   ErrorCode   // empty when not read
}

// Has reports whether the condition is active.
func (d DecodedStatus) Has(bit OverviewBit) bool { return d.Active.Has(bit) }

// Conditions returns the active conditions in bit order.
func (d DecodedStatus) Conditions() []OverviewBit { return d.Active.Bits() }

// Busy and Ready are reported independently. A status with both set is
// passed through unchanged; callers decide what that means.
func (d DecodedStatus) Busy() bool  { return d.Has(BusyBitSet) }
func (d DecodedStatus) Ready() bool { return d.Has(ReadyBitSet) }

// NeedsWarningQuery reports whether the warning bit is set but no code was attached yet.
func (d DecodedStatus) NeedsWarningQuery() bool {
	return d.Has(WarningRegisterSet) && d.Warning == ""
}

// NeedsErrorQuery reports whether the error bit is set but no code was attached yet.
func (d DecodedStatus) NeedsErrorQuery() bool {
	return d.Has(ErrorRegisterSet) && d.Error == ""
}

// WithWarning decodes a warning register token and returns a copy carrying it.
func (d DecodedStatus) WithWarning(token string) (DecodedStatus, error) {
	code, err := DecodeWarning(token)
	if err != nil {
		return d, err
	}
	d.Warning = code
	return d, nil
}

// WithError decodes an error register token and returns a copy carrying it.
func (d DecodedStatus) WithError(token string) (DecodedStatus, error) {
	code, err := DecodeError(token)
	if err != nil {
		return d, err
	}
	d.Error = code
	return d, nil
}

// String renders the status as "COND|COND warning=.. error=..".
func (d DecodedStatus) String() string {
	bits := d.Conditions()
	names := make([]string, len(bits))
	for i, b := range bits {
		names[i] = b.String()
	}
	s := strings.Join(names, "|")
	if s == "" {
		s = "NONE"
	}
	if d.Warning != "" {
		s += " warning=" + d.Warning.String()
	}
	if d.Error != "" {
		s += " error=" + d.Error.String()
	}
	return s
}

// DecodeOverview interprets a raw overview register value. Only bits 0-7 are
// defined; higher bits of a wider carrier are ignored.
func DecodeOverview(raw uint16) DecodedStatus {
	var set OverviewSet
	for _, e := range OverviewTable.entries {
		if raw&(1<<e.Code) != 0 {
			set |= 1 << e.Code
		}
	}
	return DecodedStatus{Active: set}
}

// ParseOverview decodes the hex token the device returns for the overview
// register, e.g. "C0". At most two digits; the register is 8 bits wide.
func ParseOverview(token string) (DecodedStatus, error) {
	raw, err := parseHex(token, 2)
	if err != nil {
		return DecodedStatus{}, fmt.Errorf("overview register: %w", err)
	}
	return DecodeOverview(uint16(raw)), nil
}

// checkCode accepts exactly two upper-case hex digits, the form every code
// register uses on the wire.
func checkCode(token string) error {
	if len(token) != 2 || !isHex(token) {
		return fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	return nil
}

// parseHex parses one to maxDigits upper-case hex digits.
func parseHex(token string, maxDigits int) (uint64, error) {
	if token == "" || len(token) > maxDigits || !isHex(token) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	return strconv.ParseUint(token, 16, maxDigits*4)
}

func isHex(token string) bool {
	for i := 0; i < len(token); i++ {
		c := token[i]
		if !('0' <= c && c <= '9' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
