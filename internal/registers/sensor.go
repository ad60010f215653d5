package registers

import (
	"fmt"
	"strconv"
)

// SensorBit is a bit position in the 16-bit sensor register.
type SensorBit uint8

const (
	SensorInitHeightMotor            SensorBit = 0
	SensorInitCarousel               SensorBit = 1
	SensorShovelRetracted            SensorBit = 2
	SensorShovelExtended             SensorBit = 3
	SensorShovelOccupied             SensorBit = 4
	SensorGateOpened                 SensorBit = 5
	SensorGateClosed                 SensorBit = 6
	SensorTransferStationOccupied    SensorBit = 7
	SensorTransferStationPosition1   SensorBit = 8
	SensorTransferStationPosition2   SensorBit = 9
	SensorInnerDoorOpened            SensorBit = 10
	SensorCarouselPosition           SensorBit = 11
	SensorHandlerTowardsStacker      SensorBit = 12
	SensorHandlerTowardsGate         SensorBit = 13
	SensorTransferStationSecondPlate SensorBit = 14
)

// SensorTable is the sensor register family.
var SensorTable = mustTable(FamilySensorBit,
	Entry[SensorBit]{SensorInitHeightMotor, "INIT_SENSOR_HEIGHT_MOTOR", "Init sensor height motor"},
	Entry[SensorBit]{SensorInitCarousel, "INIT_SENSOR_CAROUSEL", "Init sensor carousel"},
	Entry[SensorBit]{SensorShovelRetracted, "SHOVEL_RETRACTED", "Shovel retracted"},
	Entry[SensorBit]{SensorShovelExtended, "SHOVEL_EXTENDED", "Shovel extended"},
	Entry[SensorBit]{SensorShovelOccupied, "SHOVEL_OCCUPIED", "Shovel occupied"},
	Entry[SensorBit]{SensorGateOpened, "GATE_OPENED", "Gate opened"},
	Entry[SensorBit]{SensorGateClosed, "GATE_CLOSED", "Gate closed"},
	Entry[SensorBit]{SensorTransferStationOccupied, "TRANSFER_STATION_OCCUPIED", "Transfer station occupied"},
	Entry[SensorBit]{SensorTransferStationPosition1, "TRANSFER_STATION_POSITION_1", "Transfer station in position 1"},
	Entry[SensorBit]{SensorTransferStationPosition2, "TRANSFER_STATION_POSITION_2", "Transfer station in position 2"},
	Entry[SensorBit]{SensorInnerDoorOpened, "INNER_DOOR_OPENED", "Inner door opened"},
	Entry[SensorBit]{SensorCarouselPosition, "CAROUSEL_POSITION", "Carousel position"},
	Entry[SensorBit]{SensorHandlerTowardsStacker, "HANDLER_POSITIONED_TOWARDS_STACKER", "Handler positioned towards stacker"},
	Entry[SensorBit]{SensorHandlerTowardsGate, "HANDLER_POSITIONED_TOWARDS_GATE", "Handler positioned towards gate"},
	Entry[SensorBit]{SensorTransferStationSecondPlate, "TRANSFER_STATION_SECOND_PLATE_OCCUPIED", "Second plate on transfer station"},
)

func (b SensorBit) String() string { return SensorTable.name(b) }

func (b SensorBit) rawCode() string { return strconv.Itoa(int(b)) }

// SensorState is the set of active sensor bits.
type SensorState uint16

// Has reports whether the sensor bit is set.
func (s SensorState) Has(bit SensorBit) bool {
	return bit < 16 && s&(1<<bit) != 0
}

// Bits returns the active sensor bits in ascending order.
func (s SensorState) Bits() []SensorBit {
	out := make([]SensorBit, 0, SensorTable.Len())
	for _, e := range SensorTable.entries {
		if s.Has(e.Code) {
			out = append(out, e.Code)
		}
	}
	return out
}

// DecodeSensorRegister interprets a raw sensor register value. A set bit
// without a table entry (bit 15) is reported as an unknown code.
func DecodeSensorRegister(raw uint16) (SensorState, error) {
	var state SensorState
	for bit := 0; bit < 16; bit++ {
		if raw&(1<<bit) == 0 {
			continue
		}
		e, err := SensorTable.Lookup(SensorBit(bit))
		if err != nil {
			return 0, err
		}
		state |= 1 << e.Code
	}
	return state, nil
}

// ParseSensorRegister decodes the hex token returned for the sensor register,
// up to four digits.
func ParseSensorRegister(token string) (SensorState, error) {
	raw, err := parseHex(token, 4)
	if err != nil {
		return 0, fmt.Errorf("sensor register: %w", err)
	}
	return DecodeSensorRegister(uint16(raw))
}

// parseSmall parses a small decimal value token as sent for positions and load states.
func parseSmall(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	return v, nil
}
