package registers

// ActionStep is a two-digit hex code naming one micro-operation of the
// transport sequence. Steps 16-18 are not assigned.
type ActionStep string

const (
	StepHeightToStorageMinusOffset      ActionStep = "01"
	StepQueryHeightReachedMinusOffset   ActionStep = "02"
	StepHeightToStoragePlusOffset       ActionStep = "03"
	StepQueryHeightReachedPlusOffset    ActionStep = "04"
	StepRotationToStorageLocation       ActionStep = "05"
	StepQueryRotationReached            ActionStep = "06"
	StepExtendShovel                    ActionStep = "07"
	StepQueryShovelExtended             ActionStep = "08"
	StepQueryShovelExtensionLimitSwitch ActionStep = "09"
	StepRetractShovel                   ActionStep = "0A"
	StepQueryShovelRetracted            ActionStep = "0B"
	StepCloseLiftDoor                   ActionStep = "0C"
	StepQueryLiftDoorClosed             ActionStep = "0D"
	StepOpenLiftDoor                    ActionStep = "0E"
	StepQueryLiftDoorOpen               ActionStep = "0F"
	StepTransferStationPosition1        ActionStep = "10"
	StepQueryTransferStationPosition1   ActionStep = "11"
	StepTransferStationPosition2        ActionStep = "12"
	StepQueryTransferStationPosition2   ActionStep = "13"
	StepCheckMTPOnShovel                ActionStep = "14"
	StepCheckMTPOnTransferStation       ActionStep = "15"
	StepMoveTurntable                   ActionStep = "19"
	StepQueryTurntablePosition          ActionStep = "1A"
	StepTurntableInitMovement           ActionStep = "1B"
	StepQueryTurntableInitPosition      ActionStep = "1C"
	StepMotorParameterSetChanged        ActionStep = "1D"
)

// ActionStepTable is the action step family.
var ActionStepTable = mustTable(FamilyActionStep,
	Entry[ActionStep]{StepHeightToStorageMinusOffset, "MOVEMENT_HEIGHT_MOTOR_TO_STORAGE_MINUS_OFFSET", "Move height motor to storage position minus offset"},
	Entry[ActionStep]{StepQueryHeightReachedMinusOffset, "QUERY_HEIGHT_POSITION_REACHED_MINUS_OFFSET", "Query height position reached (minus offset)"},
	Entry[ActionStep]{StepHeightToStoragePlusOffset, "MOVEMENT_HEIGHT_MOTOR_TO_STORAGE_PLUS_OFFSET", "Move height motor to storage position plus offset"},
	Entry[ActionStep]{StepQueryHeightReachedPlusOffset, "QUERY_HEIGHT_POSITION_REACHED_PLUS_OFFSET", "Query height position reached (plus offset)"},
	Entry[ActionStep]{StepRotationToStorageLocation, "MOVEMENT_ROTATION_MOTOR_TO_STORAGE_LOCATION", "Move rotation motor to storage location"},
	Entry[ActionStep]{StepQueryRotationReached, "QUERY_ROTATION_POSITION_REACHED", "Query rotation position reached"},
	Entry[ActionStep]{StepExtendShovel, "MOVEMENT_EXTEND_SHOVEL", "Extend shovel"},
	Entry[ActionStep]{StepQueryShovelExtended, "QUERY_SHOVEL_EXTENDED", "Query shovel extended"},
	Entry[ActionStep]{StepQueryShovelExtensionLimitSwitch, "QUERY_SHOVEL_EXTENSION_LIMIT_SWITCH", "Query shovel extension limit switch"},
	Entry[ActionStep]{StepRetractShovel, "MOVEMENT_RETRACT_SHOVEL", "Retract shovel"},
	Entry[ActionStep]{StepQueryShovelRetracted, "QUERY_SHOVEL_RETRACTED", "Query shovel retracted"},
	Entry[ActionStep]{StepCloseLiftDoor, "CLOSE_AUTOMATIC_LIFT_DOOR", "Close automatic lift door"},
	Entry[ActionStep]{StepQueryLiftDoorClosed, "QUERY_AUTOMATIC_LIFT_DOOR_CLOSED", "Query automatic lift door closed"},
	Entry[ActionStep]{StepOpenLiftDoor, "OPEN_AUTOMATIC_LIFT_DOOR", "Open automatic lift door"},
	Entry[ActionStep]{StepQueryLiftDoorOpen, "QUERY_AUTOMATIC_LIFT_DOOR_OPEN", "Query automatic lift door open"},
	Entry[ActionStep]{StepTransferStationPosition1, "TRANSFER_STATION_IN_POSITION_1", "Transfer station to position 1"},
	Entry[ActionStep]{StepQueryTransferStationPosition1, "QUERY_TRANSFER_STATION_IN_POSITION_1", "Query transfer station in position 1"},
	Entry[ActionStep]{StepTransferStationPosition2, "TRANSFER_STATION_IN_POSITION_2", "Transfer station to position 2"},
	Entry[ActionStep]{StepQueryTransferStationPosition2, "QUERY_TRANSFER_STATION_IN_POSITION_2", "Query transfer station in position 2"},
	Entry[ActionStep]{StepCheckMTPOnShovel, "CHECK_MTP_ON_SHOVEL", "Check MTP on shovel"},
	Entry[ActionStep]{StepCheckMTPOnTransferStation, "CHECK_MTP_ON_TRANSFER_STATION", "Check MTP on transfer station"},
	Entry[ActionStep]{StepMoveTurntable, "MOVEMENT_TURNTABLE", "Move turntable"},
	Entry[ActionStep]{StepQueryTurntablePosition, "TURNTABLE_POSITION_QUERY", "Query turntable position"},
	Entry[ActionStep]{StepTurntableInitMovement, "TURNTABLE_INIT_MOVEMENT", "Turntable init movement"},
	Entry[ActionStep]{StepQueryTurntableInitPosition, "TURNTABLE_INIT_POSITION_QUERY", "Query turntable init position"},
	Entry[ActionStep]{StepMotorParameterSetChanged, "PARAMETER_SET_FOR_MOTOR_CONTROLLER_CHANGED", "Parameter set for motor controller changed"},
)

func (s ActionStep) String() string { return ActionStepTable.name(s) }

func (s ActionStep) rawCode() string { return string(s) }

// ActionType groups action sequences by where the handler operates.
type ActionType string

const (
	ActionInitPosition    ActionType = "01"
	ActionWaitPosition    ActionType = "02"
	ActionStacker         ActionType = "03"
	ActionTransferStation ActionType = "04"
)

// ActionTypeTable is the action type family.
var ActionTypeTable = mustTable(FamilyActionType,
	Entry[ActionType]{ActionInitPosition, "INIT_POSITION", "Init position"},
	Entry[ActionType]{ActionWaitPosition, "WAIT_POSITION", "Wait position"},
	Entry[ActionType]{ActionStacker, "STACKER", "Stacker"},
	Entry[ActionType]{ActionTransferStation, "TRANSFER_STATION", "Transfer station"},
)

func (t ActionType) String() string { return ActionTypeTable.name(t) }

func (t ActionType) rawCode() string { return string(t) }

// DecodeActionStep decodes an action step token such as "07".
func DecodeActionStep(token string) (ActionStep, error) {
	if err := checkCode(token); err != nil {
		return "", err
	}
	e, err := ActionStepTable.Lookup(ActionStep(token))
	if err != nil {
		return "", err
	}
	return e.Code, nil
}

// DecodeActionType decodes an action type token such as "03".
func DecodeActionType(token string) (ActionType, error) {
	if err := checkCode(token); err != nil {
		return "", err
	}
	e, err := ActionTypeTable.Lookup(ActionType(token))
	if err != nil {
		return "", err
	}
	return e.Code, nil
}
