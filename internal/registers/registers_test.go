package registers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cytomat_exporter/internal/types"
)

func TestNewTable_RejectsDuplicate(t *testing.T) {
	_, err := newTable(FamilyWarning,
		Entry[WarningCode]{"01", "A", ""},
		Entry[WarningCode]{"01", "B", ""},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestMustTable_PanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		mustTable(FamilyOverview,
			Entry[OverviewBit]{1, "A", ""},
			Entry[OverviewBit]{1, "B", ""},
		)
	})
}

func TestTableSizes(t *testing.T) {
	assert.Equal(t, 8, OverviewTable.Len())
	assert.Equal(t, 13, WarningTable.Len())
	assert.Equal(t, 14, ErrorTable.Len())
	assert.Equal(t, 26, ActionStepTable.Len())
	assert.Equal(t, 4, ActionTypeTable.Len())
	assert.Equal(t, 15, SensorTable.Len())
	assert.Equal(t, 2, SwapStationTable.Len())
	assert.Equal(t, 2, GateLoadTable.Len())
	assert.Equal(t, 2, ProcessorLoadTable.Len())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	entries := WarningTable.Entries()
	entries[0].Name = "MUTATED"
	assert.Equal(t, "NO_WARNING", WarningNone.String())
}

func TestDecodeOverview(t *testing.T) {
	tests := []struct {
		name string
		raw  uint16
		want []OverviewBit
	}{
		{"none", 0, []OverviewBit{}},
		{"ready and busy", 0b11000000, []OverviewBit{ReadyBitSet, BusyBitSet}},
		{"door open", 0b00000010, []OverviewBit{DeviceDoorOpen}},
		{"error and warning", 0b00110000, []OverviewBit{ErrorRegisterSet, WarningRegisterSet}},
		{"high bits ignored", 0xFF01, []OverviewBit{TransferStationOccupied}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeOverview(tt.raw)
			assert.Equal(t, tt.want, got.Conditions())
		})
	}
}

func TestDecodeOverview_BusyAndReadyNotExclusive(t *testing.T) {
	s := DecodeOverview(0b11000000)
	assert.True(t, s.Busy())
	assert.True(t, s.Ready())
	assert.False(t, s.Has(ErrorRegisterSet))
	assert.Equal(t, "READY_BIT_SET|BUSY_BIT_SET", s.String())
}

func TestDecodeOverview_Idempotent(t *testing.T) {
	for raw := uint16(0); raw < 256; raw++ {
		assert.Equal(t, DecodeOverview(raw), DecodeOverview(raw))
	}
}

func TestParseOverview(t *testing.T) {
	s, err := ParseOverview("C0")
	require.NoError(t, err)
	assert.Equal(t, DecodeOverview(0xC0), s)

	s, err = ParseOverview("1")
	require.NoError(t, err)
	assert.Equal(t, []OverviewBit{TransferStationOccupied}, s.Conditions())

	// wider than the 8-bit register, lower case, or not hex at all
	for _, token := range []string{"1C0", "01C0", "c0", "zz", "", " C0"} {
		_, err := ParseOverview(token)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", token)
	}
}

func TestDecodeWarning(t *testing.T) {
	got, err := DecodeWarning("0C")
	require.NoError(t, err)
	assert.Equal(t, WarningTransferStationNotRotated, got)

	for _, code := range []string{"0A", "0B", "FF", "10"} {
		_, err := DecodeWarning(code)
		assert.ErrorIs(t, err, ErrUnknownCode, "code %q", code)
	}
}

func TestDecodeCodes_MalformedTokens(t *testing.T) {
	decoders := map[string]func(string) error{
		"warning":     func(s string) error { _, err := DecodeWarning(s); return err },
		"error":       func(s string) error { _, err := DecodeError(s); return err },
		"action_step": func(s string) error { _, err := DecodeActionStep(s); return err },
		"action_type": func(s string) error { _, err := DecodeActionType(s); return err },
	}
	tokens := []string{"0c", "ff", "1d", " 0C ", "0C\r", "C", "00C", "", "xyz", "G0"}

	for name, decode := range decoders {
		for _, token := range tokens {
			err := decode(token)
			assert.ErrorIs(t, err, ErrMalformedToken, "%s %q", name, token)
			assert.NotErrorIs(t, err, ErrUnknownCode, "%s %q", name, token)
		}
	}
}

func TestDecodeError(t *testing.T) {
	got, err := DecodeError("0C")
	require.NoError(t, err)
	assert.Equal(t, "TRANSFER_STATION_NOT_ROTATED", got.String())

	got, err = DecodeError("FF")
	require.NoError(t, err)
	assert.Equal(t, ErrorFatalDuringErrorRoutine, got)

	_, err = DecodeError("0E")
	var unknown *UnknownCodeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, FamilyError, unknown.Family)
	assert.Equal(t, "0E", unknown.Code)
}

func TestWarningAndErrorAreSeparateFamilies(t *testing.T) {
	// Same number, different meaning per register.
	w, err := DecodeWarning("04")
	require.NoError(t, err)
	e, err := DecodeError("04")
	require.NoError(t, err)
	assert.NotEqual(t, w.String(), e.String())
}

func TestDecodedStatus_AttachCodes(t *testing.T) {
	s := DecodeOverview(1<<ErrorRegisterSet | 1<<WarningRegisterSet)
	assert.True(t, s.NeedsErrorQuery())
	assert.True(t, s.NeedsWarningQuery())

	withErr, err := s.WithError("0D")
	require.NoError(t, err)
	withBoth, err := withErr.WithWarning("0E")
	require.NoError(t, err)

	assert.Equal(t, ErrorHeatingAndGasCommunicationFailure, withBoth.Error)
	assert.Equal(t, WarningCarouselReinitialization, withBoth.Warning)
	assert.False(t, withBoth.NeedsErrorQuery())
	assert.False(t, withBoth.NeedsWarningQuery())

	// original value untouched
	assert.Equal(t, ErrorCode(""), s.Error)

	_, err = s.WithError("99")
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestDecodeSensorRegister(t *testing.T) {
	state, err := DecodeSensorRegister(1<<SensorShovelRetracted | 1<<SensorGateClosed)
	require.NoError(t, err)
	assert.Equal(t, []SensorBit{SensorShovelRetracted, SensorGateClosed}, state.Bits())

	_, err = DecodeSensorRegister(1 << 15)
	assert.ErrorIs(t, err, ErrUnknownCode)

	state, err = ParseSensorRegister("4000")
	require.NoError(t, err)
	assert.True(t, state.Has(SensorTransferStationSecondPlate))

	for _, token := range []string{"14000", "4000h", "00ff", ""} {
		_, err := ParseSensorRegister(token)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", token)
	}
}

func TestDecodeActionStep(t *testing.T) {
	got, err := DecodeActionStep("07")
	require.NoError(t, err)
	assert.Equal(t, "MOVEMENT_EXTEND_SHOVEL", got.String())

	got, err = DecodeActionStep("1D")
	require.NoError(t, err)
	assert.Equal(t, StepMotorParameterSetChanged, got)

	for _, code := range []string{"00", "16", "17", "18", "1E"} {
		_, err := DecodeActionStep(code)
		assert.ErrorIs(t, err, ErrUnknownCode, "code %q", code)
	}
}

func TestDecodeActionType(t *testing.T) {
	got, err := DecodeActionType("03")
	require.NoError(t, err)
	assert.Equal(t, ActionStacker, got)

	_, err = DecodeActionType("05")
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestDecodeTransferFamilies(t *testing.T) {
	pos, err := DecodeSwapStationPosition(2)
	require.NoError(t, err)
	assert.Equal(t, "PLATE_2_IN_FRONT_OF_AUTOMATIC_GATE", pos.String())

	_, err = DecodeSwapStationPosition(0)
	assert.ErrorIs(t, err, ErrUnknownCode)
	_, err = DecodeSwapStationPosition(257)
	assert.ErrorIs(t, err, ErrUnknownCode)

	gate, err := ParseGateLoadStatus("1")
	require.NoError(t, err)
	assert.Equal(t, GateOccupied, gate)

	proc, err := DecodeProcessorLoadStatus(0)
	require.NoError(t, err)
	assert.Equal(t, ProcessorEmpty, proc)

	_, err = DecodeProcessorLoadStatus(2)
	var unknown *UnknownCodeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, FamilyProcessorLoadStatus, unknown.Family)

	_, err = ParseGateLoadStatus("x")
	assert.ErrorIs(t, err, ErrMalformedToken)
	_, err = ParseGateLoadStatus(" 1")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestParseActionOutcome(t *testing.T) {
	tests := []struct {
		token   string
		want    types.ActionOutcome
		wantErr bool
	}{
		{"ok", types.ActionOK, false},
		{"er", types.ActionError, false},
		{" ok\r", types.ActionOK, false},
		{"xx", 0, true},
		{"OK", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseActionOutcome(tt.token)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownCode, "token %q", tt.token)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestUnknownNames(t *testing.T) {
	assert.Equal(t, "UNKNOWN(0B)", WarningCode("0B").String())
	assert.Equal(t, "UNKNOWN(15)", SensorBit(15).String())
}

// assertNames checks every code of golden against the decoder and the table,
// and that the table holds no code beyond golden.
func assertNames[K Code](t *testing.T, table *Table[K], golden map[K]string, decode func(K) (K, error)) {
	t.Helper()

	for code, name := range golden {
		got, err := decode(code)
		if !assert.NoError(t, err, "code %s", code.rawCode()) {
			continue
		}
		assert.Equal(t, code, got)
		assert.Equal(t, name, fmt.Sprint(got), "code %s", code.rawCode())
	}

	assert.Equal(t, len(golden), table.Len())
	for _, e := range table.Entries() {
		_, ok := golden[e.Code]
		assert.True(t, ok, "unexpected code %s (%s)", e.Code.rawCode(), e.Name)
	}
}

func TestCodeNames(t *testing.T) {
	t.Run("overview", func(t *testing.T) {
		assertNames(t, OverviewTable, map[OverviewBit]string{
			0: "TRANSFER_STATION_OCCUPIED",
			1: "DEVICE_DOOR_OPEN",
			2: "AUTOMATIC_GATE_OPEN",
			3: "HANDLER_OCCUPIED",
			4: "ERROR_REGISTER_SET",
			5: "WARNING_REGISTER_SET",
			6: "READY_BIT_SET",
			7: "BUSY_BIT_SET",
		}, func(b OverviewBit) (OverviewBit, error) {
			bits := DecodeOverview(1 << b).Conditions()
			if len(bits) != 1 {
				return 0, fmt.Errorf("decoded %v", bits)
			}
			return bits[0], nil
		})
	})

	t.Run("warning", func(t *testing.T) {
		assertNames(t, WarningTable, map[WarningCode]string{
			"00": "NO_WARNING",
			"01": "COMMUNICATION_WITH_MOTOR_CONTROLLERS_INTERRUPTED",
			"02": "MTP_NOT_LOADED_ON_HANDLER_SHOVEL",
			"03": "MTP_NOT_UNLOADED_FROM_HANDLER_SHOVEL",
			"04": "SHOVEL_NOT_EXTENDED_HANDLER_MOVEMENT_ERROR",
			"05": "PROCESS_TIMEOUT",
			"06": "AUTOMATIC_LIFT_DOOR_NOT_OPEN",
			"07": "AUTOMATIC_LIFT_DOOR_NOT_CLOSED",
			"08": "SHOVEL_NOT_RETRACTED",
			"09": "INITIALIZATION_DUE_TO_OPEN_DEVICE_DOOR",
			"0C": "TRANSFER_STATION_NOT_ROTATED",
			"0D": "OTHER_MOTOR_FAULT_INIT_PHYTRON",
			"0E": "REINITIALIZATION_CAROUSEL",
		}, func(c WarningCode) (WarningCode, error) {
			return DecodeWarning(string(c))
		})
	})

	t.Run("error", func(t *testing.T) {
		assertNames(t, ErrorTable, map[ErrorCode]string{
			"00": "NO_ERROR",
			"01": "COMMUNICATION_WITH_MOTOR_CONTROLLERS_INTERRUPTED",
			"02": "NO_MTP_LOADED_ON_HANDLER_SHOVEL",
			"03": "NO_MTP_UNLOADED_FROM_HANDLER_SHOVEL",
			"04": "SHOVEL_NOT_EXTENDED_AUTOMATIC_UNIT_POSITION_ERROR",
			"05": "PROCESS_TIMEOUT",
			"06": "AUTOMATIC_LIFT_DOOR_NOT_OPEN",
			"07": "AUTOMATIC_LIFT_DOOR_NOT_CLOSED",
			"08": "SHOVEL_NOT_RETRACTED",
			"0A": "STEPPER_MOTOR_CONTROLLER_TEMPERATURE_TOO_HIGH",
			"0B": "OTHER_STEPPER_MOTOR_CONTROLLER_ERROR",
			"0C": "TRANSFER_STATION_NOT_ROTATED",
			"0D": "COMMUNICATION_WITH_HEATING_CONTROLLERS_AND_GAS_SUPPLY_DISTURBED",
			"FF": "FATAL_ERROR_OCCURRED_DURING_ERROR_ROUTINE",
		}, func(c ErrorCode) (ErrorCode, error) {
			return DecodeError(string(c))
		})
	})

	t.Run("action_step", func(t *testing.T) {
		assertNames(t, ActionStepTable, map[ActionStep]string{
			"01": "MOVEMENT_HEIGHT_MOTOR_TO_STORAGE_MINUS_OFFSET",
			"02": "QUERY_HEIGHT_POSITION_REACHED_MINUS_OFFSET",
			"03": "MOVEMENT_HEIGHT_MOTOR_TO_STORAGE_PLUS_OFFSET",
			"04": "QUERY_HEIGHT_POSITION_REACHED_PLUS_OFFSET",
			"05": "MOVEMENT_ROTATION_MOTOR_TO_STORAGE_LOCATION",
			"06": "QUERY_ROTATION_POSITION_REACHED",
			"07": "MOVEMENT_EXTEND_SHOVEL",
			"08": "QUERY_SHOVEL_EXTENDED",
			"09": "QUERY_SHOVEL_EXTENSION_LIMIT_SWITCH",
			"0A": "MOVEMENT_RETRACT_SHOVEL",
			"0B": "QUERY_SHOVEL_RETRACTED",
			"0C": "CLOSE_AUTOMATIC_LIFT_DOOR",
			"0D": "QUERY_AUTOMATIC_LIFT_DOOR_CLOSED",
			"0E": "OPEN_AUTOMATIC_LIFT_DOOR",
			"0F": "QUERY_AUTOMATIC_LIFT_DOOR_OPEN",
			"10": "TRANSFER_STATION_IN_POSITION_1",
			"11": "QUERY_TRANSFER_STATION_IN_POSITION_1",
			"12": "TRANSFER_STATION_IN_POSITION_2",
			"13": "QUERY_TRANSFER_STATION_IN_POSITION_2",
			"14": "CHECK_MTP_ON_SHOVEL",
			"15": "CHECK_MTP_ON_TRANSFER_STATION",
			"19": "MOVEMENT_TURNTABLE",
			"1A": "TURNTABLE_POSITION_QUERY",
			"1B": "TURNTABLE_INIT_MOVEMENT",
			"1C": "TURNTABLE_INIT_POSITION_QUERY",
			"1D": "PARAMETER_SET_FOR_MOTOR_CONTROLLER_CHANGED",
		}, func(s ActionStep) (ActionStep, error) {
			return DecodeActionStep(string(s))
		})
	})

	t.Run("action_type", func(t *testing.T) {
		assertNames(t, ActionTypeTable, map[ActionType]string{
			"01": "INIT_POSITION",
			"02": "WAIT_POSITION",
			"03": "STACKER",
			"04": "TRANSFER_STATION",
		}, func(a ActionType) (ActionType, error) {
			return DecodeActionType(string(a))
		})
	})

	t.Run("sensor", func(t *testing.T) {
		assertNames(t, SensorTable, map[SensorBit]string{
			0:  "INIT_SENSOR_HEIGHT_MOTOR",
			1:  "INIT_SENSOR_CAROUSEL",
			2:  "SHOVEL_RETRACTED",
			3:  "SHOVEL_EXTENDED",
			4:  "SHOVEL_OCCUPIED",
			5:  "GATE_OPENED",
			6:  "GATE_CLOSED",
			7:  "TRANSFER_STATION_OCCUPIED",
			8:  "TRANSFER_STATION_POSITION_1",
			9:  "TRANSFER_STATION_POSITION_2",
			10: "INNER_DOOR_OPENED",
			11: "CAROUSEL_POSITION",
			12: "HANDLER_POSITIONED_TOWARDS_STACKER",
			13: "HANDLER_POSITIONED_TOWARDS_GATE",
			14: "TRANSFER_STATION_SECOND_PLATE_OCCUPIED",
		}, func(b SensorBit) (SensorBit, error) {
			state, err := DecodeSensorRegister(1 << b)
			if err != nil {
				return 0, err
			}
			bits := state.Bits()
			if len(bits) != 1 {
				return 0, fmt.Errorf("decoded %v", bits)
			}
			return bits[0], nil
		})
	})

	t.Run("swap_station_position", func(t *testing.T) {
		assertNames(t, SwapStationTable, map[SwapStationPosition]string{
			1: "PLATE_1_IN_FRONT_OF_AUTOMATIC_GATE",
			2: "PLATE_2_IN_FRONT_OF_AUTOMATIC_GATE",
		}, func(p SwapStationPosition) (SwapStationPosition, error) {
			return DecodeSwapStationPosition(int(p))
		})
	})

	t.Run("gate_load_status", func(t *testing.T) {
		assertNames(t, GateLoadTable, map[GateLoadStatus]string{
			0: "EMPTY",
			1: "OCCUPIED",
		}, func(s GateLoadStatus) (GateLoadStatus, error) {
			return DecodeGateLoadStatus(int(s))
		})
	})

	t.Run("processor_load_status", func(t *testing.T) {
		assertNames(t, ProcessorLoadTable, map[ProcessorLoadStatus]string{
			0: "EMPTY",
			1: "OCCUPIED",
		}, func(s ProcessorLoadStatus) (ProcessorLoadStatus, error) {
			return DecodeProcessorLoadStatus(int(s))
		})
	})
}
