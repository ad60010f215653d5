package registers

import "strconv"

// SwapStationPosition says which plate of the swap station faces the automatic gate.
type SwapStationPosition uint8

const (
	SwapPlate1InFrontOfGate SwapStationPosition = 1
	SwapPlate2InFrontOfGate SwapStationPosition = 2
)

var SwapStationTable = mustTable(FamilySwapStationPosition,
	Entry[SwapStationPosition]{SwapPlate1InFrontOfGate, "PLATE_1_IN_FRONT_OF_AUTOMATIC_GATE", "Plate 1 in front of automatic gate"},
	Entry[SwapStationPosition]{SwapPlate2InFrontOfGate, "PLATE_2_IN_FRONT_OF_AUTOMATIC_GATE", "Plate 2 in front of automatic gate"},
)

func (p SwapStationPosition) String() string { return SwapStationTable.name(p) }

func (p SwapStationPosition) rawCode() string { return strconv.Itoa(int(p)) }

// GateLoadStatus is the load state of the position in front of the gate.
type GateLoadStatus uint8

const (
	GateEmpty    GateLoadStatus = 0
	GateOccupied GateLoadStatus = 1
)

var GateLoadTable = mustTable(FamilyGateLoadStatus,
	Entry[GateLoadStatus]{GateEmpty, "EMPTY", "Empty"},
	Entry[GateLoadStatus]{GateOccupied, "OCCUPIED", "Occupied (microtiter plate loaded)"},
)

func (s GateLoadStatus) String() string { return GateLoadTable.name(s) }

func (s GateLoadStatus) rawCode() string { return strconv.Itoa(int(s)) }

// ProcessorLoadStatus is the load state at the processor. Same values as
// GateLoadStatus, different register.
type ProcessorLoadStatus uint8

const (
	ProcessorEmpty    ProcessorLoadStatus = 0
	ProcessorOccupied ProcessorLoadStatus = 1
)

var ProcessorLoadTable = mustTable(FamilyProcessorLoadStatus,
	Entry[ProcessorLoadStatus]{ProcessorEmpty, "EMPTY", "Empty"},
	Entry[ProcessorLoadStatus]{ProcessorOccupied, "OCCUPIED", "Occupied (microtiter plate loaded)"},
)

func (s ProcessorLoadStatus) String() string { return ProcessorLoadTable.name(s) }

func (s ProcessorLoadStatus) rawCode() string { return strconv.Itoa(int(s)) }

// DecodeSwapStationPosition decodes a raw swap station value.
func DecodeSwapStationPosition(raw int) (SwapStationPosition, error) {
	if raw < 0 || raw > 0xFF {
		return 0, &UnknownCodeError{Family: FamilySwapStationPosition, Code: strconv.Itoa(raw)}
	}
	e, err := SwapStationTable.Lookup(SwapStationPosition(raw))
	if err != nil {
		return 0, err
	}
	return e.Code, nil
}

// DecodeGateLoadStatus decodes a raw gate load value.
func DecodeGateLoadStatus(raw int) (GateLoadStatus, error) {
	if raw < 0 || raw > 0xFF {
		return 0, &UnknownCodeError{Family: FamilyGateLoadStatus, Code: strconv.Itoa(raw)}
	}
	e, err := GateLoadTable.Lookup(GateLoadStatus(raw))
	if err != nil {
		return 0, err
	}
	return e.Code, nil
}

// DecodeProcessorLoadStatus decodes a raw processor load value.
func DecodeProcessorLoadStatus(raw int) (ProcessorLoadStatus, error) {
	if raw < 0 || raw > 0xFF {
		return 0, &UnknownCodeError{Family: FamilyProcessorLoadStatus, Code: strconv.Itoa(raw)}
	}
	e, err := ProcessorLoadTable.Lookup(ProcessorLoadStatus(raw))
	if err != nil {
		return 0, err
	}
	return e.Code, nil
}

// ParseSwapStationPosition decodes the decimal token form, e.g. "1".
func ParseSwapStationPosition(token string) (SwapStationPosition, error) {
	v, err := parseSmall(token)
	if err != nil {
		return 0, err
	}
	return DecodeSwapStationPosition(v)
}

func ParseGateLoadStatus(token string) (GateLoadStatus, error) {
	v, err := parseSmall(token)
	if err != nil {
		return 0, err
	}
	return DecodeGateLoadStatus(v)
}

func ParseProcessorLoadStatus(token string) (ProcessorLoadStatus, error) {
	v, err := parseSmall(token)
	if err != nil {
		return 0, err
	}
	return DecodeProcessorLoadStatus(v)
}
